package constants

// 订单状态常量
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// 支付方式常量
const (
	PaymentMethodCOD = "cod"
)

// 队列常量
const (
	QueueDefault         = "default"
	TaskOrderPlacedEmail = "order:placed_email"
)

// 搜索匹配结果常量
const (
	SearchMatchNone = "none"
	SearchMatchOne  = "one"
	SearchMatchMany = "many"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "ws"
)

// 币种常量
const (
	SiteCurrencyDefault = "INR"
)

// 新商品默认开放的尺码
var DefaultAvailableSizes = []string{"M", "L", "XL"}
