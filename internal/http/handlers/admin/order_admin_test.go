package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newOrderListQueryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/orders?"+rawQuery, nil)
	return c
}

func TestAdminOrderListFilterDefaultsToCompleteOnly(t *testing.T) {
	filter := adminOrderListFilter(newOrderListQueryContext(t, ""), 1, 20)
	if !filter.CompleteOnly {
		t.Fatalf("default listing must exclude open carts")
	}
	// complete=true 与默认等价
	filter = adminOrderListFilter(newOrderListQueryContext(t, "complete=true"), 1, 20)
	if !filter.CompleteOnly {
		t.Fatalf("complete=true should keep complete-only")
	}
	// 显式 complete=false 才带上进行中的购物车
	filter = adminOrderListFilter(newOrderListQueryContext(t, "complete=false"), 1, 20)
	if filter.CompleteOnly {
		t.Fatalf("complete=false should include open carts")
	}
}

func TestAdminOrderListFilterParsesQuery(t *testing.T) {
	c := newOrderListQueryContext(t,
		"status=pending&order_no=ORD-20260829-ABCDEF&customer_id=7&created_from=2026-08-01&created_to=2026-08-29")
	filter := adminOrderListFilter(c, 2, 10)

	if filter.Page != 2 || filter.PageSize != 10 {
		t.Fatalf("pagination want 2/10 got %d/%d", filter.Page, filter.PageSize)
	}
	if filter.Status != "pending" || filter.OrderNo != "ORD-20260829-ABCDEF" {
		t.Fatalf("status/order_no wrong: %s / %s", filter.Status, filter.OrderNo)
	}
	if filter.CustomerID != 7 {
		t.Fatalf("customer id want 7 got %d", filter.CustomerID)
	}
	if filter.CreatedFrom == nil || !filter.CreatedFrom.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("created_from wrong: %v", filter.CreatedFrom)
	}
	// created_to 含当天整天
	wantTo := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC).Add(24*time.Hour - time.Nanosecond)
	if filter.CreatedTo == nil || !filter.CreatedTo.Equal(wantTo) {
		t.Fatalf("created_to should cover the whole day, got %v", filter.CreatedTo)
	}

	// 非法的 customer_id 忽略
	filter = adminOrderListFilter(newOrderListQueryContext(t, "customer_id=abc"), 1, 20)
	if filter.CustomerID != 0 {
		t.Fatalf("bad customer_id should be ignored, got %d", filter.CustomerID)
	}
}
