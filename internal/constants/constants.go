package constants

// 订单状态常量
const (
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// 支付方式常量（订单中的描述性快照，不接入真实支付渠道）
const (
	PaymentMethodCreditCard   = "credit_card"
	PaymentMethodPaypal       = "paypal"
	PaymentMethodBankTransfer = "bank_transfer"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 商品排序键常量
const (
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortRatingDesc = "rating-desc"
	SortNameAsc    = "name-asc"
)

// 商品分类筛选：all 表示不过滤分类
const CategoryAll = "all"

// 键值存储文档键常量
const (
	StoreKeyCart          = "cart"
	StoreKeyOrders        = "orders"
	StoreKeyReviews       = "reviews"
	StoreKeyUser          = "user"
	StoreKeyNotifications = "notifications"
)

// 键值存储命名空间前缀
const (
	StoreScopeUser    = "u:"
	StoreScopeSession = "s:"
)

// 评论排序方式常量
const (
	ReviewSortRecent  = "recent"
	ReviewSortHelpful = "helpful"
)

// 队列常量
const (
	QueueDefault          = "default"
	TaskOrderStatusNotify = "order:status_notify"
)

// 验证码提供方常量
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// 验证码校验场景常量
const (
	CaptchaSceneLogin    = "login"
	CaptchaSceneRegister = "register"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "bn"
)
