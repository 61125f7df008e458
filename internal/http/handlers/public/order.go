package public

import (
	"strings"

	"github.com/brewnext/internal/http/response"
	"github.com/brewnext/internal/logger"
	"github.com/brewnext/internal/models"

	"github.com/gin-gonic/gin"
)

// AddressPayload 订单地址载荷
type AddressPayload struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

func (p AddressPayload) toModel() models.Address {
	return models.Address{
		Street:  p.Street,
		City:    p.City,
		State:   p.State,
		ZipCode: p.ZipCode,
		Country: p.Country,
	}
}

// PaymentMethodPayload 模拟支付方式描述（不接入真实支付渠道）
type PaymentMethodPayload struct {
	Type           string `json:"type" binding:"required"`
	LastFourDigits string `json:"last_four_digits"`
	ExpiryDate     string `json:"expiry_date"`
	CardholderName string `json:"cardholder_name"`
}

// CreateOrderRequest 结算请求：订单行项目来自当前购物车
type CreateOrderRequest struct {
	ShippingAddress AddressPayload       `json:"shipping_address" binding:"required"`
	BillingAddress  *AddressPayload      `json:"billing_address"`
	PaymentMethod   PaymentMethodPayload `json:"payment_method" binding:"required"`
}

// CreateOrder 由购物车结算生成订单，成功后清空购物车
func (h *Handler) CreateOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	userKey, _ := getUserKey(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request payload", err)
		return
	}

	shipping := req.ShippingAddress.toModel()
	billing := shipping
	if req.BillingAddress != nil {
		billing = req.BillingAddress.toModel()
	}
	payment := models.PaymentMethod{
		Type:           strings.TrimSpace(req.PaymentMethod.Type),
		LastFourDigits: req.PaymentMethod.LastFourDigits,
		ExpiryDate:     req.PaymentMethod.ExpiryDate,
		CardholderName: req.PaymentMethod.CardholderName,
	}

	cart := h.CartService.Get(userID)
	order, err := h.OrderService.CreateOrder(userKey, cart.Items, shipping, billing, payment)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "create order failed")
		return
	}

	if _, err := h.CartService.Clear(userID); err != nil {
		logger.Warnw("cart_clear_after_checkout_failed", "user_id", userID, "error", err)
	}
	response.Success(c, order)
}

// ListOrders 当前用户订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	userKey, ok := getUserKey(c)
	if !ok {
		return
	}
	if raw := c.Query("limit"); raw != "" {
		if limit, valid := parsePositiveInt(raw); valid {
			response.Success(c, gin.H{"orders": h.OrderService.Recent(userKey, limit)})
			return
		}
	}
	response.Success(c, gin.H{"orders": h.OrderService.ListByUser(userKey)})
}

// GetOrder 当前用户订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	userKey, ok := getUserKey(c)
	if !ok {
		return
	}
	order, err := h.OrderService.GetByID(c.Param("id"))
	if err != nil || order.UserID != userKey {
		respondError(c, response.CodeNotFound, "order not found", nil)
		return
	}
	response.Success(c, order)
}

// CancelOrder 取消当前用户订单
func (h *Handler) CancelOrder(c *gin.Context) {
	userKey, ok := getUserKey(c)
	if !ok {
		return
	}
	order, err := h.OrderService.GetByID(c.Param("id"))
	if err != nil || order.UserID != userKey {
		respondError(c, response.CodeNotFound, "order not found", nil)
		return
	}

	cancelled, err := h.OrderService.Cancel(order.ID)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "cancel order failed")
		return
	}
	response.Success(c, cancelled)
}

// ReorderOrder 以历史订单重新下单
func (h *Handler) ReorderOrder(c *gin.Context) {
	userKey, ok := getUserKey(c)
	if !ok {
		return
	}
	source, err := h.OrderService.GetByID(c.Param("id"))
	if err != nil || source.UserID != userKey {
		respondError(c, response.CodeNotFound, "order not found", nil)
		return
	}

	clone, err := h.OrderService.Reorder(source.ID, userKey)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "reorder failed")
		return
	}
	response.Success(c, clone)
}

// ListNotifications 当前用户订单状态通知
func (h *Handler) ListNotifications(c *gin.Context) {
	userKey, ok := getUserKey(c)
	if !ok {
		return
	}
	response.Success(c, gin.H{"notifications": h.NotificationService.ListByUser(userKey)})
}
