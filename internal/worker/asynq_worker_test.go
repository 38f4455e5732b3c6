package worker

import (
	"strings"
	"testing"

	"github.com/wabi-shop/internal/models"

	"github.com/shopspring/decimal"
)

func TestBuildOrderPlacedEmailInput(t *testing.T) {
	order := &models.Order{
		OrderNo:        "ORD-20260829-ABCDEF",
		ShippingCharge: models.NewMoneyFromDecimal(decimal.NewFromInt(99)),
		Items: []models.OrderItem{
			{
				Quantity: 2,
				Size:     "M",
				Product: &models.Product{
					Name:  "Oversized Graphic Tee",
					Price: models.NewMoneyFromDecimal(decimal.NewFromInt(500)),
				},
			},
		},
		ShippingAddress: &models.ShippingAddress{
			FirstName: "Asha",
			LastName:  "Rao",
			Address:   "12 MG Road",
			City:      "Bengaluru",
			State:     "Karnataka",
			Zipcode:   "560001",
		},
	}
	customer := &models.Customer{Name: "Asha Rao", Email: "asha@example.com"}

	input := buildOrderPlacedEmailInput(order, customer, "INR")

	if input.OrderNo != "ORD-20260829-ABCDEF" || input.Currency != "INR" {
		t.Fatalf("order no / currency wrong: %s %s", input.OrderNo, input.Currency)
	}
	if input.CustomerName != "Asha Rao" || input.CustomerEmail != "asha@example.com" {
		t.Fatalf("customer fields wrong: %s <%s>", input.CustomerName, input.CustomerEmail)
	}
	if len(input.ItemLines) != 1 || input.ItemLines[0] != "Oversized Graphic Tee x2 (M)" {
		t.Fatalf("item lines wrong: %v", input.ItemLines)
	}
	// 2×500 + 运费 99
	if !input.GrandTotal.Decimal.Equal(decimal.NewFromInt(1099)) {
		t.Fatalf("grand total want 1099 got %s", input.GrandTotal.Decimal)
	}
	if !strings.Contains(input.ShipTo, "Bengaluru") || !strings.Contains(input.ShipTo, "560001") {
		t.Fatalf("ship to wrong: %s", input.ShipTo)
	}
}

func TestBuildOrderPlacedEmailInputMissingProduct(t *testing.T) {
	order := &models.Order{
		OrderNo:        "ORD-20260829-AAAAAA",
		ShippingCharge: models.NewMoneyFromDecimal(decimal.NewFromInt(99)),
		Items: []models.OrderItem{
			{ID: 11, ProductID: 42, Quantity: 1, Size: "L"},
			{
				Quantity: 1,
				Size:     "M",
				Product: &models.Product{
					Name:  "Linen Camp Shirt",
					Price: models.NewMoneyFromDecimal(decimal.NewFromInt(500)),
				},
			},
		},
	}

	input := buildOrderPlacedEmailInput(order, nil, "INR")

	// 已删除商品的行仍列出，按商品 ID 标注
	if len(input.ItemLines) != 2 {
		t.Fatalf("item lines want 2 got %d", len(input.ItemLines))
	}
	if input.ItemLines[0] != "#42 x1 (L)" {
		t.Fatalf("unpriced line wrong: %s", input.ItemLines[0])
	}
	// 合计只含可计价的行与运费
	if !input.GrandTotal.Decimal.Equal(decimal.NewFromInt(599)) {
		t.Fatalf("grand total want 599 got %s", input.GrandTotal.Decimal)
	}
	if input.CustomerName != "" || input.CustomerEmail != "" {
		t.Fatalf("nil customer should leave fields empty")
	}
}
