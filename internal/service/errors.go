package service

import "errors"

// 业务层错误，handler 层通过 errors.Is 映射为接口错误码，
// 不向客户端透出底层错误文本。
var (
	ErrNotFound             = errors.New("记录不存在")
	ErrInvalidCredentials   = errors.New("用户名或密码错误")
	ErrInvalidPassword      = errors.New("密码错误")
	ErrWeakPassword         = errors.New("密码强度不足")
	ErrInvalidEmail         = errors.New("邮箱格式无效")
	ErrEmailExists          = errors.New("邮箱已注册")
	ErrPasswordMismatch     = errors.New("两次输入的密码不一致")
	ErrProductNotFound      = errors.New("商品不存在")
	ErrProductNameRequired  = errors.New("商品名称不能为空")
	ErrSizeNotAvailable     = errors.New("所选尺码不可售")
	ErrInvalidCartItem      = errors.New("购物车项无效")
	ErrCartItemNotFound     = errors.New("购物车项不存在")
	ErrInvalidQuantity      = errors.New("数量无效")
	ErrOrderNotFound        = errors.New("订单不存在")
	ErrOrderAlreadyClosed   = errors.New("订单已结算，不可修改")
	ErrEmptyCart            = errors.New("购物车为空，无法结算")
	ErrPaymentMethodInvalid = errors.New("不支持的支付方式")
	ErrShippingIncomplete   = errors.New("收货信息不完整")
	ErrInvalidRating        = errors.New("评分超出范围")
	ErrCommentRequired      = errors.New("评论内容不能为空")
	ErrAlreadySubscribed    = errors.New("邮箱已订阅")
	ErrSizeExists           = errors.New("尺码已存在")
	ErrInvalidSizeCode      = errors.New("尺码编码无效")
	ErrSearchQueryRequired  = errors.New("搜索词不能为空")

	ErrEmailServiceDisabled      = errors.New("邮件服务未启用")
	ErrEmailServiceNotConfigured = errors.New("邮件服务未配置")
	ErrEmailRecipientRejected    = errors.New("收件地址被拒绝")
)
