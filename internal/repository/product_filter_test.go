package repository

import (
	"reflect"
	"testing"

	"github.com/brewnext/internal/constants"
	"github.com/brewnext/internal/models"
	"github.com/brewnext/internal/seed"
)

func productIDs(products []models.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestFilterProductsSearchMatchesNameOrDescription(t *testing.T) {
	products := seed.Products()

	// 名称命中（不区分大小写）
	result := FilterProducts(products, ProductQuery{Search: "ETHIOPIAN"})
	if len(result) != 1 || result[0].ID != "ethiopian-yirgacheffe" {
		t.Fatalf("expected name match, got %v", productIDs(result))
	}

	// 仅描述命中也算命中
	result = FilterProducts(products, ProductQuery{Search: "crema"})
	found := false
	for _, p := range result {
		if p.ID == "espresso-classico" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected description match for espresso-classico, got %v", productIDs(result))
	}

	// 无命中返回空集而非错误
	result = FilterProducts(products, ProductQuery{Search: "no-such-coffee"})
	if len(result) != 0 {
		t.Fatalf("expected empty result, got %v", productIDs(result))
	}
}

func TestFilterProductsCategoryExactMatch(t *testing.T) {
	products := seed.Products()

	result := FilterProducts(products, ProductQuery{Category: "espresso"})
	if len(result) != 1 || result[0].ID != "espresso-classico" {
		t.Fatalf("category must match exactly, got %v", productIDs(result))
	}

	// all 不过滤
	result = FilterProducts(products, ProductQuery{Category: constants.CategoryAll})
	if len(result) != len(products) {
		t.Fatalf("category all must keep all products, got %d", len(result))
	}
}

func TestFilterProductsIsIdempotentAndPure(t *testing.T) {
	products := seed.Products()
	original := productIDs(products)
	query := ProductQuery{Category: "single-origin", Sort: constants.SortPriceAsc}

	first := FilterProducts(products, query)
	second := FilterProducts(products, query)
	if !reflect.DeepEqual(productIDs(first), productIDs(second)) {
		t.Fatalf("same query must give same result: %v vs %v", productIDs(first), productIDs(second))
	}
	if !reflect.DeepEqual(productIDs(products), original) {
		t.Fatalf("input slice must not be mutated")
	}

	// 对结果再过滤一次仍是同一结果
	again := FilterProducts(first, query)
	if !reflect.DeepEqual(productIDs(first), productIDs(again)) {
		t.Fatalf("filtering a filtered result must be stable")
	}
}

func TestFilterProductsPriceSortsAreExactReverses(t *testing.T) {
	// 构造无重复价格的数据集，升序与降序互为镜像
	products := []models.Product{
		{ID: "a", Name: "A", Price: models.NewMoneyFromFloat(12.50)},
		{ID: "b", Name: "B", Price: models.NewMoneyFromFloat(9.99)},
		{ID: "c", Name: "C", Price: models.NewMoneyFromFloat(30.00)},
		{ID: "d", Name: "D", Price: models.NewMoneyFromFloat(18.75)},
	}

	asc := FilterProducts(products, ProductQuery{Sort: constants.SortPriceAsc})
	desc := FilterProducts(products, ProductQuery{Sort: constants.SortPriceDesc})

	if !reflect.DeepEqual(productIDs(asc), []string{"b", "a", "d", "c"}) {
		t.Fatalf("unexpected ascending order: %v", productIDs(asc))
	}
	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Fatalf("price-desc must be exact reverse of price-asc: %v vs %v", productIDs(asc), productIDs(desc))
		}
	}
}

func TestFilterProductsRatingAndNameSorts(t *testing.T) {
	products := seed.Products()

	byRating := FilterProducts(products, ProductQuery{Sort: constants.SortRatingDesc})
	for i := 1; i < len(byRating); i++ {
		if byRating[i-1].Rating < byRating[i].Rating {
			t.Fatalf("rating-desc out of order at %d: %v", i, productIDs(byRating))
		}
	}

	byName := FilterProducts(products, ProductQuery{Sort: constants.SortNameAsc})
	if byName[0].ID != "brazil-santos" {
		t.Fatalf("expected Brazil Santos first in name-asc, got %v", byName[0].ID)
	}
}

func TestMemoryProductRepository(t *testing.T) {
	repo := NewMemoryProductRepository(seed.Products())

	if product := repo.GetByID("kenya-aa"); product == nil || product.Name != "Kenya AA" {
		t.Fatalf("expected kenya-aa, got %+v", product)
	}
	if product := repo.GetByID("missing"); product != nil {
		t.Fatalf("expected nil for unknown id")
	}

	if err := repo.Insert(models.Product{ID: "kenya-aa"}); err != ErrProductExists {
		t.Fatalf("expected ErrProductExists, got %v", err)
	}
	if err := repo.Insert(models.Product{ID: "house-blend", Name: "House Blend"}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if product := repo.GetByID("house-blend"); product == nil {
		t.Fatalf("inserted product not found")
	}

	if ok := repo.UpdateRating("house-blend", 4.5, 2); !ok {
		t.Fatalf("expected rating update to hit")
	}
	if product := repo.GetByID("house-blend"); product.Rating != 4.5 || product.ReviewCount != 2 {
		t.Fatalf("rating not applied: %+v", product)
	}
	if ok := repo.UpdateRating("missing", 1, 1); ok {
		t.Fatalf("expected rating update miss")
	}
}
