package public

import (
	"strconv"
	"strings"

	"github.com/brewnext/internal/constants"
	"github.com/brewnext/internal/http/response"
	"github.com/brewnext/internal/repository"

	"github.com/gin-gonic/gin"
)

// Health 健康检查
func (h *Handler) Health(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}

// ListProducts 商品列表，支持搜索、分类与排序
func (h *Handler) ListProducts(c *gin.Context) {
	query := repository.ProductQuery{
		Search:   strings.TrimSpace(c.Query("search")),
		Category: strings.TrimSpace(c.Query("category")),
		Sort:     strings.TrimSpace(c.Query("sort")),
	}
	products := h.ProductService.Query(query)
	response.Success(c, gin.H{
		"products": products,
		"total":    len(products),
	})
}

// FeaturedProducts 推荐商品（评分最高的若干条）
func (h *Handler) FeaturedProducts(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, ok := parsePositiveInt(raw); ok {
			limit = parsed
		}
	}
	response.Success(c, gin.H{"products": h.ProductService.Featured(limit)})
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.ProductService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, response.CodeNotFound, "product not found", nil)
		return
	}
	response.Success(c, product)
}

// ProductReviews 商品评论列表与汇总
func (h *Handler) ProductReviews(c *gin.Context) {
	productID := c.Param("id")
	if _, err := h.ProductService.GetByID(productID); err != nil {
		respondError(c, response.CodeNotFound, "product not found", nil)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, ok := parsePositiveInt(raw); ok {
			limit = parsed
		}
	}

	var reviews interface{}
	switch strings.TrimSpace(c.Query("sort")) {
	case constants.ReviewSortHelpful:
		reviews = h.ReviewService.MostHelpful(productID, limit)
	case constants.ReviewSortRecent:
		reviews = h.ReviewService.Recent(productID, limit)
	default:
		reviews = h.ReviewService.ByProduct(productID)
	}

	response.Success(c, gin.H{
		"reviews": reviews,
		"summary": h.ReviewService.Summary(productID),
	})
}

func parsePositiveInt(raw string) (int, bool) {
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}
