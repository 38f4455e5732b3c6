package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wabi-shop/internal/cache"
	"github.com/wabi-shop/internal/constants"
	"github.com/wabi-shop/internal/repository"
)

func TestNormalizeQuery(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase", input: "TEE", want: "tee"},
		{name: "strip punctuation", input: "t-shirt!!", want: "tshirt"},
		{name: "collapse whitespace", input: "  denim   jacket  ", want: "denim jacket"},
		{name: "mixed", input: " Washed-DENIM  Jacket ", want: "washeddenim jacket"},
		{name: "only punctuation", input: "!!!", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeQuery(tc.input); got != tc.want {
				t.Fatalf("normalize %q want %q got %q", tc.input, tc.want, got)
			}
		})
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	db := openTestDB(t)
	svc := NewSearchService(repository.NewProductRepository(db), cache.NewSearchStash(time.Minute))
	if _, err := svc.Search(context.Background(), "  !!! ", "session-a"); !errors.Is(err, ErrSearchQueryRequired) {
		t.Fatalf("want ErrSearchQueryRequired got %v", err)
	}
}

func TestSearchMatchForms(t *testing.T) {
	db := openTestDB(t)
	svc := NewSearchService(repository.NewProductRepository(db), cache.NewSearchStash(time.Minute))
	createTestProduct(t, db, "Oversized Graphic Tee", 799)
	createTestProduct(t, db, "Washed Denim Jacket", 2499)
	createTestProduct(t, db, "Denim Shirt", 1499)

	ctx := context.Background()

	none, err := svc.Search(ctx, "trousers", "s1")
	if err != nil {
		t.Fatalf("search none failed: %v", err)
	}
	if none.Match != constants.SearchMatchNone {
		t.Fatalf("match want none got %s", none.Match)
	}

	one, err := svc.Search(ctx, "graphic TEE", "s1")
	if err != nil {
		t.Fatalf("search one failed: %v", err)
	}
	if one.Match != constants.SearchMatchOne || one.Product == nil {
		t.Fatalf("match want one with product, got %+v", one)
	}
	if one.Product.Name != "Oversized Graphic Tee" {
		t.Fatalf("unique match wrong product: %s", one.Product.Name)
	}

	many, err := svc.Search(ctx, "denim", "s1")
	if err != nil {
		t.Fatalf("search many failed: %v", err)
	}
	if many.Match != constants.SearchMatchMany || len(many.Products) != 2 {
		t.Fatalf("match want many with 2 products, got %+v", many)
	}
}

func TestTakeStashedConsumesResults(t *testing.T) {
	db := openTestDB(t)
	svc := NewSearchService(repository.NewProductRepository(db), cache.NewSearchStash(time.Minute))
	createTestProduct(t, db, "Washed Denim Jacket", 2499)
	createTestProduct(t, db, "Denim Shirt", 1499)

	ctx := context.Background()
	if _, err := svc.Search(ctx, "denim", "session-take"); err != nil {
		t.Fatalf("search failed: %v", err)
	}

	products, query, found, err := svc.TakeStashed(ctx, "session-take")
	if err != nil {
		t.Fatalf("take failed: %v", err)
	}
	if !found || len(products) != 2 {
		t.Fatalf("first take want 2 products, got found=%v n=%d", found, len(products))
	}
	if query != "denim" {
		t.Fatalf("stash should replay the normalized query, got %q", query)
	}

	// 一次性消费
	_, _, found, err = svc.TakeStashed(ctx, "session-take")
	if err != nil {
		t.Fatalf("second take failed: %v", err)
	}
	if found {
		t.Fatalf("stash should be consumed after first take")
	}

	// 其他会话键看不到
	_, _, found, err = svc.TakeStashed(ctx, "session-other")
	if err != nil {
		t.Fatalf("other session take failed: %v", err)
	}
	if found {
		t.Fatalf("other session should not see stashed results")
	}
}
