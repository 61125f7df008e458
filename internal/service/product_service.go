package service

import (
	"errors"
	"sort"
	"strings"

	"github.com/brewnext/internal/models"
	"github.com/brewnext/internal/repository"
)

// ProductService 商品目录服务
type ProductService struct {
	productRepo   repository.ProductRepository
	featuredLimit int
}

// NewProductService 创建商品目录服务
func NewProductService(productRepo repository.ProductRepository, featuredLimit int) *ProductService {
	if featuredLimit <= 0 {
		featuredLimit = 4
	}
	return &ProductService{productRepo: productRepo, featuredLimit: featuredLimit}
}

// Query 按条件筛选并排序商品
func (s *ProductService) Query(query repository.ProductQuery) []models.Product {
	return repository.FilterProducts(s.productRepo.List(), query)
}

// GetByID 获取单个商品
func (s *ProductService) GetByID(id string) (*models.Product, error) {
	product := s.productRepo.GetByID(id)
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Featured 返回评分最高的若干商品
func (s *ProductService) Featured(limit int) []models.Product {
	if limit <= 0 {
		limit = s.featuredLimit
	}
	products := s.productRepo.List()
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Rating > products[j].Rating
	})
	if len(products) > limit {
		products = products[:limit]
	}
	return products
}

// CreateProductInput 新增商品入参
type CreateProductInput struct {
	ID          string  `json:"id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category" binding:"required"`
	Origin      string  `json:"origin"`
	RoastLevel  string  `json:"roast_level"`
}

// Create 新增目录商品（后台能力）
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	product := models.Product{
		ID:          strings.TrimSpace(input.ID),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       models.NewMoneyFromFloat(input.Price),
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		Origin:      input.Origin,
		RoastLevel:  input.RoastLevel,
	}
	if err := s.productRepo.Insert(product); err != nil {
		if errors.Is(err, repository.ErrProductExists) {
			return nil, ErrProductExists
		}
		return nil, err
	}
	return &product, nil
}
