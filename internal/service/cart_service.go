package service

import (
	"strconv"
	"sync"

	"github.com/brewnext/internal/constants"
	"github.com/brewnext/internal/kvstore"
	"github.com/brewnext/internal/models"
	"github.com/brewnext/internal/repository"
)

// CartService 购物车服务：每个用户一个管理器，首次访问时从存储加载。
// 管理器本身不加锁，并发保护在这一层完成。
type CartService struct {
	store       kvstore.Store
	productRepo repository.ProductRepository

	mu       sync.Mutex
	managers map[uint]*CartManager
}

// NewCartService 创建购物车服务
func NewCartService(store kvstore.Store, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		store:       store,
		productRepo: productRepo,
		managers:    make(map[uint]*CartManager),
	}
}

// managerFor 返回用户的购物车管理器，必要时创建并加载。
// 调用方必须持有 s.mu。
func (s *CartService) managerFor(userID uint) *CartManager {
	manager, ok := s.managers[userID]
	if !ok {
		scope := constants.StoreScopeUser + strconv.FormatUint(uint64(userID), 10)
		manager = NewCartManager(kvstore.Scoped(s.store, scope))
		manager.Load()
		s.managers[userID] = manager
	}
	return manager
}

// Get 返回用户当前购物车状态
func (s *CartService) Get(userID uint) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.managerFor(userID).State()
}

// AddItem 向购物车加入商品
func (s *CartService) AddItem(userID uint, productID string, quantity int) (models.CartState, error) {
	if quantity <= 0 {
		return models.CartState{}, ErrInvalidQuantity
	}
	product := s.productRepo.GetByID(productID)
	if product == nil {
		return models.CartState{}, ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	manager := s.managerFor(userID)
	if !manager.AddItem(*product, quantity) {
		return models.CartState{}, ErrCartNotLoaded
	}
	return manager.State(), nil
}

// UpdateQuantity 更新购物车中商品数量
func (s *CartService) UpdateQuantity(userID uint, productID string, quantity int) (models.CartState, error) {
	if quantity < 1 {
		return models.CartState{}, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	manager := s.managerFor(userID)
	if !manager.UpdateQuantity(productID, quantity) {
		return models.CartState{}, ErrCartNotLoaded
	}
	return manager.State(), nil
}

// RemoveItem 从购物车移除商品，不存在时静默成功
func (s *CartService) RemoveItem(userID uint, productID string) (models.CartState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	manager := s.managerFor(userID)
	if !manager.RemoveItem(productID) {
		return models.CartState{}, ErrCartNotLoaded
	}
	return manager.State(), nil
}

// Clear 清空购物车
func (s *CartService) Clear(userID uint) (models.CartState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	manager := s.managerFor(userID)
	if !manager.Clear() {
		return models.CartState{}, ErrCartNotLoaded
	}
	return manager.State(), nil
}

// IsInCart 返回商品是否在用户购物车中
func (s *CartService) IsInCart(userID uint, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.managerFor(userID).IsInCart(productID)
}

// Quantity 返回商品在用户购物车中的数量
func (s *CartService) Quantity(userID uint, productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.managerFor(userID).Quantity(productID)
}
