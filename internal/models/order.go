package models

import "time"

// OrderItem 订单行项目（下单时的商品快照，后续商品变动不影响历史订单）
type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"unitPrice"`
	ImageURL  string `json:"imageUrl"`
}

// PaymentMethod 支付方式描述（仅快照展示，不做真实扣款）
type PaymentMethod struct {
	Type           string `json:"type"` // credit_card / paypal / bank_transfer
	LastFourDigits string `json:"lastFourDigits,omitempty"`
	ExpiryDate     string `json:"expiryDate,omitempty"`
	CardholderName string `json:"cardholderName,omitempty"`
}

// Order 订单文档（键值存储 orders 集合内的条目）
type Order struct {
	ID              string        `json:"id"`     // ORD-NNNN 递增编号
	UserID          string        `json:"userId"` // 下单用户
	Items           []OrderItem   `json:"items"`
	Status          string        `json:"status"` // processing / shipped / delivered / cancelled
	Total           Money         `json:"total"`  // Σ 单价 × 数量
	ShippingAddress Address       `json:"shippingAddress"`
	BillingAddress  Address       `json:"billingAddress"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
	ShippedAt       *time.Time    `json:"shippedAt,omitempty"`   // 首次到达 shipped 时落章
	DeliveredAt     *time.Time    `json:"deliveredAt,omitempty"` // 首次到达 delivered 时落章
}

// Notification 订单状态变更通知文档（键值存储 notifications 集合内的条目）
type Notification struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	UserID    string    `json:"userId"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
