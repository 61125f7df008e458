package admin

import (
	"github.com/brewnext/internal/http/response"
	"github.com/brewnext/internal/repository"
	"github.com/brewnext/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminListProducts 管理端商品列表
func (h *Handler) AdminListProducts(c *gin.Context) {
	products := h.ProductService.Query(repository.ProductQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	})
	response.Success(c, gin.H{
		"products": products,
		"total":    len(products),
	})
}

// AdminGetProduct 管理端商品详情
func (h *Handler) AdminGetProduct(c *gin.Context) {
	product, err := h.ProductService.GetByID(c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, adminProductErrorRules, response.CodeInternal, "fetch product failed")
		return
	}
	response.Success(c, product)
}

// AdminCreateProduct 新增目录商品
func (h *Handler) AdminCreateProduct(c *gin.Context) {
	var req service.CreateProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request payload", err)
		return
	}

	product, err := h.ProductService.Create(req)
	if err != nil {
		respondWithMappedError(c, err, adminProductErrorRules, response.CodeInternal, "create product failed")
		return
	}
	response.Success(c, product)
}
