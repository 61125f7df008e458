package models

// CartLineItem 购物车行项目：商品快照加数量
type CartLineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartState 购物车状态文档（键值存储 cart 键下的内容）
type CartState struct {
	Items     []CartLineItem `json:"items"`
	ItemCount int            `json:"itemCount"` // 各行数量之和
	Total     Money          `json:"total"`     // Σ 单价 × 数量
}

// EmptyCartState 返回空购物车状态
func EmptyCartState() CartState {
	return CartState{Items: []CartLineItem{}}
}
