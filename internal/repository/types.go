package repository

import "time"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page         int
	PageSize     int
	Category     string
	Search       string
	FeaturedOnly bool
	DigitalOnly  bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page         int
	PageSize     int
	CustomerID   uint
	Status       string
	OrderNo      string
	CompleteOnly bool
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
}

// ReviewListFilter 查询评价列表的过滤条件
type ReviewListFilter struct {
	Page      int
	PageSize  int
	ProductID uint
	UserID    uint
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string
}

// LeadListFilter 查询线索列表的过滤条件
type LeadListFilter struct {
	Page     int
	PageSize int
	Keyword  string
}
