package repository

import (
	"errors"
	"sync"

	"github.com/brewnext/internal/models"
)

// ErrProductExists 商品标识已存在
var ErrProductExists = errors.New("product id already exists")

// ProductRepository 商品目录数据访问接口
type ProductRepository interface {
	List() []models.Product
	GetByID(id string) *models.Product
	Insert(product models.Product) error
	UpdateRating(id string, rating float64, reviewCount int) bool
}

// MemoryProductRepository 内存实现：目录数据集常驻内存，评论汇总回写评分
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewMemoryProductRepository 以给定数据集创建商品仓库
func NewMemoryProductRepository(products []models.Product) *MemoryProductRepository {
	copied := make([]models.Product, len(products))
	copy(copied, products)
	return &MemoryProductRepository{products: copied}
}

// List 返回全部商品（副本，调用方可自由排序）
func (r *MemoryProductRepository) List() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	copied := make([]models.Product, len(r.products))
	copy(copied, r.products)
	return copied
}

// GetByID 按标识获取商品，未找到返回 nil
func (r *MemoryProductRepository) GetByID(id string) *models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.products {
		if r.products[i].ID == id {
			product := r.products[i]
			return &product
		}
	}
	return nil
}

// Insert 追加商品，标识重复时返回 ErrProductExists
func (r *MemoryProductRepository) Insert(product models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == product.ID {
			return ErrProductExists
		}
	}
	r.products = append(r.products, product)
	return nil
}

// UpdateRating 回写评分汇总，返回是否找到商品
func (r *MemoryProductRepository) UpdateRating(id string, rating float64, reviewCount int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			r.products[i].Rating = rating
			r.products[i].ReviewCount = reviewCount
			return true
		}
	}
	return false
}
