package models

import "time"

// Review 商品评论文档（键值存储 reviews 集合内的条目）
type Review struct {
	ID           string    `json:"id"`       // 递增编号
	ProductID    string    `json:"productId"`
	UserID       string    `json:"userId"`
	UserName     string    `json:"userName"` // 发表时的用户名快照
	Rating       int       `json:"rating"`   // 1-5 整数
	Title        string    `json:"title,omitempty"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
	HelpfulCount int       `json:"helpfulCount"` // 只增不减
}

// ReviewSummary 商品评论汇总
type ReviewSummary struct {
	Average      float64 `json:"average"`      // 平均分（1 位小数）
	Count        int     `json:"count"`        // 评论总数
	Distribution [5]int  `json:"distribution"` // 各星级数量，下标 0 对应 1 星
}
