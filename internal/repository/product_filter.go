package repository

import (
	"sort"
	"strings"

	"github.com/brewnext/internal/constants"
	"github.com/brewnext/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterProducts 按查询条件筛选并排序商品。纯函数：不修改入参，
// 同一输入重复调用结果一致；未知排序键保持数据集原始顺序。
func FilterProducts(products []models.Product, query ProductQuery) []models.Product {
	search := strings.ToLower(strings.TrimSpace(query.Search))
	category := strings.TrimSpace(query.Category)

	result := make([]models.Product, 0, len(products))
	for _, product := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(product.Name), search) &&
			!strings.Contains(strings.ToLower(product.Description), search) {
			continue
		}
		if category != "" && category != constants.CategoryAll && product.Category != category {
			continue
		}
		result = append(result, product)
	}

	switch query.Sort {
	case constants.SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.LessThan(result[j].Price.Decimal)
		})
	case constants.SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[j].Price.LessThan(result[i].Price.Decimal)
		})
	case constants.SortRatingDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	case constants.SortNameAsc:
		collator := collate.New(language.English)
		sort.SliceStable(result, func(i, j int) bool {
			return collator.CompareString(result[i].Name, result[j].Name) < 0
		})
	}

	return result
}
