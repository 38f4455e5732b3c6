package service

import (
	"errors"
	"strings"

	"github.com/wabi-shop/internal/models"
	"github.com/wabi-shop/internal/repository"

	"github.com/shopspring/decimal"
)

// CartItemDetail 购物车项详情（用于响应）
type CartItemDetail struct {
	ItemID    uint            `json:"item_id"`
	ProductID uint            `json:"product_id"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	UnitPrice models.Money    `json:"unit_price"`
	ItemTotal models.Money    `json:"item_total"`
	Product   *models.Product `json:"product,omitempty"`
}

// CartDetail 购物车详情，金额均由订单项实时推导
type CartDetail struct {
	OrderID        uint             `json:"order_id"`
	Items          []CartItemDetail `json:"items"`
	ItemCount      int              `json:"item_count"`
	CartTotal      models.Money     `json:"cart_total"`
	ShippingCharge models.Money     `json:"shipping_charge"`
	GrandTotal     models.Money     `json:"grand_total"`
}

// AddCartItemInput 加购输入
type AddCartItemInput struct {
	CustomerID uint
	ProductID  uint
	Size       string
	Quantity   int
}

// CartService 购物车服务。购物车即顾客的未结算订单。
type CartService struct {
	orderRepo      repository.OrderRepository
	productRepo    repository.ProductRepository
	sizeRepo       repository.SizeRepository
	shippingCharge decimal.Decimal
}

// NewCartService 创建购物车服务
func NewCartService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, sizeRepo repository.SizeRepository, shippingCharge decimal.Decimal) *CartService {
	return &CartService{
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		sizeRepo:       sizeRepo,
		shippingCharge: shippingCharge,
	}
}

// GetOrCreateOpenOrder 获取顾客的未结算订单，没有则创建。
// 并发创建由 (customer_id, open_slot) 唯一索引兜底，冲突后重查。
func (s *CartService) GetOrCreateOpenOrder(customerID uint) (*models.Order, error) {
	if customerID == 0 {
		return nil, ErrNotFound
	}
	order, err := s.orderRepo.GetOpenByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	if order != nil {
		return order, nil
	}

	order, err = s.orderRepo.CreateOpen(customerID)
	if err != nil {
		existing, getErr := s.orderRepo.GetOpenByCustomer(customerID)
		if getErr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}
	return order, nil
}

// GetCart 获取购物车详情
func (s *CartService) GetCart(customerID uint) (*CartDetail, error) {
	order, err := s.GetOrCreateOpenOrder(customerID)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(order.ID)
}

// AddItem 加购。相同 (商品, 尺码) 的订单项合并累加数量。
func (s *CartService) AddItem(input AddCartItemInput) (*CartDetail, error) {
	if input.CustomerID == 0 || input.ProductID == 0 {
		return nil, ErrInvalidCartItem
	}
	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	size := strings.ToUpper(strings.TrimSpace(input.Size))
	if size == "" {
		return nil, ErrInvalidCartItem
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if err := s.checkSizeAvailable(product.ID, size); err != nil {
		return nil, err
	}

	order, err := s.GetOrCreateOpenOrder(input.CustomerID)
	if err != nil {
		return nil, err
	}

	item, err := s.orderRepo.GetItem(order.ID, product.ID, size)
	if err != nil {
		return nil, err
	}
	if item == nil {
		item = &models.OrderItem{
			OrderID:   order.ID,
			ProductID: product.ID,
			Size:      size,
			Quantity:  quantity,
		}
		if err := s.orderRepo.CreateItem(item); err != nil {
			return nil, err
		}
	} else {
		if err := s.orderRepo.UpdateItemQuantity(item.ID, item.Quantity+quantity); err != nil {
			return nil, err
		}
	}

	return s.buildDetail(order.ID)
}

// SetQuantity 设置购物车项数量，0 及以下视为删除。
// 订单项必须属于该顾客的未结算订单。
func (s *CartService) SetQuantity(customerID, itemID uint, quantity int) (*CartDetail, error) {
	order, item, err := s.ownedOpenItem(customerID, itemID)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		if err := s.orderRepo.DeleteItem(item.ID); err != nil {
			return nil, err
		}
	} else if err := s.orderRepo.UpdateItemQuantity(item.ID, quantity); err != nil {
		return nil, err
	}

	return s.buildDetail(order.ID)
}

// RemoveItem 删除购物车项（越权直接视为不存在）
func (s *CartService) RemoveItem(customerID, itemID uint) (*CartDetail, error) {
	order, item, err := s.ownedOpenItem(customerID, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.DeleteItem(item.ID); err != nil {
		return nil, err
	}
	return s.buildDetail(order.ID)
}

func (s *CartService) ownedOpenItem(customerID, itemID uint) (*models.Order, *models.OrderItem, error) {
	if customerID == 0 || itemID == 0 {
		return nil, nil, ErrCartItemNotFound
	}
	order, err := s.orderRepo.GetOpenByCustomer(customerID)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, ErrCartItemNotFound
	}
	item, err := s.orderRepo.GetItemByID(itemID)
	if err != nil {
		return nil, nil, err
	}
	if item == nil || item.OrderID != order.ID {
		return nil, nil, ErrCartItemNotFound
	}
	return order, item, nil
}

func (s *CartService) checkSizeAvailable(productID uint, size string) error {
	option, err := s.sizeRepo.GetOptionByCode(size)
	if err != nil {
		return err
	}
	if option == nil {
		return ErrSizeNotAvailable
	}
	row, err := s.sizeRepo.GetProductSize(productID, option.ID)
	if err != nil {
		return err
	}
	if row == nil || !row.IsAvailable {
		return ErrSizeNotAvailable
	}
	return nil
}

func (s *CartService) buildDetail(orderID uint) (*CartDetail, error) {
	items, err := s.orderRepo.ListItems(orderID)
	if err != nil {
		return nil, err
	}

	detail := &CartDetail{
		OrderID: orderID,
		Items:   make([]CartItemDetail, 0, len(items)),
	}
	cartTotal := decimal.Zero
	for _, item := range items {
		product := item.Product
		if product == nil {
			p, err := s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			if p == nil {
				// 商品已下架，购物车项顺带清理
				_ = s.orderRepo.DeleteItem(item.ID)
				continue
			}
			product = p
		}

		itemTotal := product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
		cartTotal = cartTotal.Add(itemTotal)
		detail.ItemCount += item.Quantity
		detail.Items = append(detail.Items, CartItemDetail{
			ItemID:    item.ID,
			ProductID: item.ProductID,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
			ItemTotal: models.NewMoneyFromDecimal(itemTotal),
			Product:   product,
		})
	}

	detail.CartTotal = models.NewMoneyFromDecimal(cartTotal)
	if len(detail.Items) > 0 {
		detail.ShippingCharge = models.NewMoneyFromDecimal(s.shippingCharge)
		detail.GrandTotal = models.NewMoneyFromDecimal(cartTotal.Add(s.shippingCharge))
	} else {
		detail.ShippingCharge = models.NewMoneyFromDecimal(decimal.Zero)
		detail.GrandTotal = models.NewMoneyFromDecimal(decimal.Zero)
	}
	return detail, nil
}

// ItemTotal 单项金额（服务端推导，供数量更新接口返回）
func (s *CartService) ItemTotal(customerID, itemID uint) (models.Money, error) {
	_, item, err := s.ownedOpenItem(customerID, itemID)
	if err != nil {
		if errors.Is(err, ErrCartItemNotFound) {
			return models.NewMoneyFromDecimal(decimal.Zero), err
		}
		return models.Money{}, err
	}
	product := item.Product
	if product == nil {
		p, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return models.Money{}, err
		}
		if p == nil {
			return models.Money{}, ErrProductNotFound
		}
		product = p
	}
	total := product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
	return models.NewMoneyFromDecimal(total), nil
}
