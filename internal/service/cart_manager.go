package service

import (
	"github.com/brewnext/internal/constants"
	"github.com/brewnext/internal/kvstore"
	"github.com/brewnext/internal/logger"
	"github.com/brewnext/internal/models"
)

// CartManager 单个购物车的状态机。快照持久化在注入的键值存储 cart 键下；
// 加载完成前所有变更操作返回 false。持久化失败只记日志，内存状态仍然生效。
type CartManager struct {
	store  kvstore.Store
	state  models.CartState
	loaded bool
}

// NewCartManager 创建购物车管理器（尚未加载）
func NewCartManager(store kvstore.Store) *CartManager {
	return &CartManager{
		store: store,
		state: models.EmptyCartState(),
	}
}

// Load 从存储加载快照。未命中、损坏或形状不对时回退为空购物车；
// 汇总字段一律按行项目重算，不信任存储里的值。
func (m *CartManager) Load() {
	snapshot, ok := kvstore.LoadJSON(m.store, constants.StoreKeyCart, func(s *models.CartState) bool {
		return s.Items != nil
	})
	if ok {
		m.state = snapshot
		m.recompute()
	} else {
		m.state = models.EmptyCartState()
	}
	m.loaded = true
}

// Loaded 返回快照是否已加载
func (m *CartManager) Loaded() bool {
	return m.loaded
}

// AddItem 加入商品：已有行合并数量，否则追加新行。
// 数量不是正整数、商品标识为空或尚未加载时返回 false。
func (m *CartManager) AddItem(product models.Product, quantity int) bool {
	if !m.loaded || product.ID == "" || quantity <= 0 {
		return false
	}
	merged := false
	for i := range m.state.Items {
		if m.state.Items[i].Product.ID == product.ID {
			m.state.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		m.state.Items = append(m.state.Items, models.CartLineItem{Product: product, Quantity: quantity})
	}
	m.recompute()
	m.persist()
	return true
}

// RemoveItem 移除商品行，未找到时无操作
func (m *CartManager) RemoveItem(productID string) bool {
	if !m.loaded {
		return false
	}
	items := m.state.Items[:0]
	for _, item := range m.state.Items {
		if item.Product.ID != productID {
			items = append(items, item)
		}
	}
	m.state.Items = items
	m.recompute()
	m.persist()
	return true
}

// UpdateQuantity 替换商品行数量。数量小于 1 时无操作（应改用 RemoveItem）。
func (m *CartManager) UpdateQuantity(productID string, quantity int) bool {
	if !m.loaded {
		return false
	}
	if quantity < 1 {
		return true
	}
	for i := range m.state.Items {
		if m.state.Items[i].Product.ID == productID {
			m.state.Items[i].Quantity = quantity
			break
		}
	}
	m.recompute()
	m.persist()
	return true
}

// Clear 清空购物车
func (m *CartManager) Clear() bool {
	if !m.loaded {
		return false
	}
	m.state = models.EmptyCartState()
	m.persist()
	return true
}

// IsInCart 返回商品是否在购物车中
func (m *CartManager) IsInCart(productID string) bool {
	for _, item := range m.state.Items {
		if item.Product.ID == productID {
			return true
		}
	}
	return false
}

// Quantity 返回商品数量，不在购物车时为 0
func (m *CartManager) Quantity(productID string) int {
	for _, item := range m.state.Items {
		if item.Product.ID == productID {
			return item.Quantity
		}
	}
	return 0
}

// State 返回当前状态副本
func (m *CartManager) State() models.CartState {
	copied := m.state
	copied.Items = make([]models.CartLineItem, len(m.state.Items))
	copy(copied.Items, m.state.Items)
	return copied
}

// recompute 由行项目重算 itemCount 与 total，两者永不独立更新
func (m *CartManager) recompute() {
	count := 0
	total := models.Money{}
	for _, item := range m.state.Items {
		count += item.Quantity
		total = total.AddMoney(item.Product.Price.MulInt(item.Quantity))
	}
	m.state.ItemCount = count
	m.state.Total = total
}

// persist 尽力而为地写入快照，失败不回滚内存状态
func (m *CartManager) persist() {
	if err := kvstore.SaveJSON(m.store, constants.StoreKeyCart, m.state); err != nil {
		logger.Warnw("cart_persist_failed", "error", err)
	}
}
