package repository

import (
	"github.com/brewnext/internal/constants"
	"github.com/brewnext/internal/kvstore"
	"github.com/brewnext/internal/models"
)

// NotificationRepository 通知集合数据访问接口
type NotificationRepository interface {
	List() []models.Notification
	Replace(notifications []models.Notification) error
}

// KVNotificationRepository 键值存储实现：notifications 键下保存整个集合
type KVNotificationRepository struct {
	store kvstore.Store
}

// NewNotificationRepository 创建通知仓库
func NewNotificationRepository(store kvstore.Store) *KVNotificationRepository {
	return &KVNotificationRepository{store: store}
}

// List 读取通知集合，未命中或损坏时回退为空集合
func (r *KVNotificationRepository) List() []models.Notification {
	notifications, ok := kvstore.LoadJSON(r.store, constants.StoreKeyNotifications, func(list *[]models.Notification) bool {
		return *list != nil
	})
	if !ok {
		return []models.Notification{}
	}
	return notifications
}

// Replace 覆盖写入通知集合
func (r *KVNotificationRepository) Replace(notifications []models.Notification) error {
	return kvstore.SaveJSON(r.store, constants.StoreKeyNotifications, notifications)
}
