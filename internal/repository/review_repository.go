package repository

import (
	"github.com/brewnext/internal/constants"
	"github.com/brewnext/internal/kvstore"
	"github.com/brewnext/internal/models"
	"github.com/brewnext/internal/seed"
)

// ReviewRepository 评论集合数据访问接口
type ReviewRepository interface {
	List() []models.Review
	Replace(reviews []models.Review) error
}

// KVReviewRepository 键值存储实现：reviews 键下保存整个集合
type KVReviewRepository struct {
	store kvstore.Store
}

// NewReviewRepository 创建评论仓库
func NewReviewRepository(store kvstore.Store) *KVReviewRepository {
	return &KVReviewRepository{store: store}
}

// List 读取评论集合。存储未命中或文档损坏时回退到内置示例数据。
func (r *KVReviewRepository) List() []models.Review {
	reviews, ok := kvstore.LoadJSON(r.store, constants.StoreKeyReviews, func(list *[]models.Review) bool {
		return *list != nil
	})
	if !ok {
		return seed.Reviews()
	}
	return reviews
}

// Replace 覆盖写入评论集合
func (r *KVReviewRepository) Replace(reviews []models.Review) error {
	return kvstore.SaveJSON(r.store, constants.StoreKeyReviews, reviews)
}
