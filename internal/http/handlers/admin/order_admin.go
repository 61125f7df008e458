package admin

import (
	"sort"
	"strconv"
	"strings"

	"github.com/brewnext/internal/http/response"
	"github.com/brewnext/internal/models"

	"github.com/gin-gonic/gin"
)

// AdminListOrders 管理端订单列表，支持状态与用户过滤
func (h *Handler) AdminListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	status := strings.TrimSpace(c.Query("status"))
	userID := strings.TrimSpace(c.Query("user_id"))

	orders := h.OrderService.ListAll()
	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if status != "" && order.Status != status {
			continue
		}
		if userID != "" && order.UserID != userID {
			continue
		}
		filtered = append(filtered, order)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	total := int64(len(filtered))
	start := (page - 1) * pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, filtered[start:end], pagination)
}

// AdminGetOrder 管理端订单详情
func (h *Handler) AdminGetOrder(c *gin.Context) {
	order, err := h.OrderService.GetByID(c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, adminOrderErrorRules, response.CodeInternal, "fetch order failed")
		return
	}
	response.Success(c, order)
}

// UpdateOrderStatusRequest 更新订单状态请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdminUpdateOrderStatus 推进订单状态
func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request payload", err)
		return
	}

	order, err := h.OrderService.UpdateStatus(c.Param("id"), strings.TrimSpace(req.Status))
	if err != nil {
		respondWithMappedError(c, err, adminOrderErrorRules, response.CodeInternal, "update order status failed")
		return
	}
	response.Success(c, order)
}

// AdminCancelOrder 管理端取消订单
func (h *Handler) AdminCancelOrder(c *gin.Context) {
	order, err := h.OrderService.Cancel(c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, adminOrderErrorRules, response.CodeInternal, "cancel order failed")
		return
	}
	response.Success(c, order)
}
