package models

// Product 商品目录条目（内存数据集，JSON 形状与持久化文档一致）
type Product struct {
	ID          string  `json:"id"`                   // 商品标识（slug 形式）
	Name        string  `json:"name"`                 // 名称
	Description string  `json:"description"`          // 描述
	Price       Money   `json:"price"`                // 单价
	ImageURL    string  `json:"imageUrl"`             // 图片地址
	Category    string  `json:"category"`             // 分类（single-origin/blend/espresso/decaf/equipment）
	Origin      string  `json:"origin,omitempty"`     // 产地
	RoastLevel  string  `json:"roastLevel,omitempty"` // 烘焙度
	Rating      float64 `json:"rating"`               // 平均评分（1 位小数）
	ReviewCount int     `json:"reviewCount"`          // 评论数
}
