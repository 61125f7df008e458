package service

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/brewnext/internal/logger"
	"github.com/brewnext/internal/models"
	"github.com/brewnext/internal/repository"
)

// ReviewService 商品评论服务。评论集合整体读改写，由互斥锁串行化；
// 每次变更后把评分汇总回写到商品目录。
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository

	mu sync.Mutex
}

// NewReviewService 创建评论服务
func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, productRepo: productRepo}
}

// Add 发表评论。评分必须是 1-5 的整数，商品必须存在。
func (s *ReviewService) Add(productID, userID, userName string, rating int, title, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if s.productRepo.GetByID(productID) == nil {
		return nil, ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reviews := s.reviewRepo.List()
	review := models.Review{
		ID:        nextReviewID(reviews),
		ProductID: productID,
		UserID:    userID,
		UserName:  userName,
		Rating:    rating,
		Title:     strings.TrimSpace(title),
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	reviews = append(reviews, review)
	if err := s.reviewRepo.Replace(reviews); err != nil {
		return nil, err
	}

	s.syncProductRating(reviews, productID)
	logger.Infow("review_added", "review_id", review.ID, "product_id", productID, "rating", rating)
	return &review, nil
}

// UpdateReviewInput 更新评论入参，nil 字段表示不修改
type UpdateReviewInput struct {
	Rating  *int    `json:"rating"`
	Title   *string `json:"title"`
	Comment *string `json:"comment"`
}

// Update 更新自己的评论
func (s *ReviewService) Update(reviewID, userID string, input UpdateReviewInput) (*models.Review, error) {
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		return nil, ErrInvalidRating
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reviews := s.reviewRepo.List()
	index := indexOfReview(reviews, reviewID)
	if index < 0 || reviews[index].UserID != userID {
		return nil, ErrReviewNotFound
	}

	if input.Rating != nil {
		reviews[index].Rating = *input.Rating
	}
	if input.Title != nil {
		reviews[index].Title = strings.TrimSpace(*input.Title)
	}
	if input.Comment != nil {
		reviews[index].Comment = *input.Comment
	}
	if err := s.reviewRepo.Replace(reviews); err != nil {
		return nil, err
	}

	s.syncProductRating(reviews, reviews[index].ProductID)
	updated := reviews[index]
	return &updated, nil
}

// Delete 删除自己的评论
func (s *ReviewService) Delete(reviewID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reviews := s.reviewRepo.List()
	index := indexOfReview(reviews, reviewID)
	if index < 0 || reviews[index].UserID != userID {
		return ErrReviewNotFound
	}
	productID := reviews[index].ProductID
	reviews = append(reviews[:index], reviews[index+1:]...)
	if err := s.reviewRepo.Replace(reviews); err != nil {
		return err
	}

	s.syncProductRating(reviews, productID)
	logger.Infow("review_deleted", "review_id", reviewID, "product_id", productID)
	return nil
}

// MarkHelpful 有用计数加一（只增不减）
func (s *ReviewService) MarkHelpful(reviewID string) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reviews := s.reviewRepo.List()
	index := indexOfReview(reviews, reviewID)
	if index < 0 {
		return nil, ErrReviewNotFound
	}
	reviews[index].HelpfulCount++
	if err := s.reviewRepo.Replace(reviews); err != nil {
		return nil, err
	}
	updated := reviews[index]
	return &updated, nil
}

// ByProduct 返回商品的全部评论
func (s *ReviewService) ByProduct(productID string) []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterReviews(s.reviewRepo.List(), func(r models.Review) bool {
		return r.ProductID == productID
	})
}

// ByUser 返回用户发表的全部评论
func (s *ReviewService) ByUser(userID string) []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterReviews(s.reviewRepo.List(), func(r models.Review) bool {
		return r.UserID == userID
	})
}

// MostHelpful 返回商品最有用的若干评论
func (s *ReviewService) MostHelpful(productID string, limit int) []models.Review {
	reviews := s.ByProduct(productID)
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].HelpfulCount > reviews[j].HelpfulCount
	})
	return limitReviews(reviews, limit, 3)
}

// Recent 返回商品最新的若干评论
func (s *ReviewService) Recent(productID string, limit int) []models.Review {
	reviews := s.ByProduct(productID)
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return limitReviews(reviews, limit, 5)
}

// Summary 返回商品评论汇总（平均分 1 位小数、总数、星级分布）
func (s *ReviewService) Summary(productID string) models.ReviewSummary {
	reviews := s.ByProduct(productID)
	return summarize(reviews)
}

// HasUserReviewed 判断用户是否已评论过该商品
func (s *ReviewService) HasUserReviewed(userID, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, review := range s.reviewRepo.List() {
		if review.UserID == userID && review.ProductID == productID {
			return true
		}
	}
	return false
}

// syncProductRating 把评分汇总回写目录条目，调用方需持有 s.mu
func (s *ReviewService) syncProductRating(reviews []models.Review, productID string) {
	productReviews := filterReviews(reviews, func(r models.Review) bool {
		return r.ProductID == productID
	})
	summary := summarize(productReviews)
	if !s.productRepo.UpdateRating(productID, summary.Average, summary.Count) {
		logger.Warnw("product_rating_sync_missed", "product_id", productID)
	}
}

func summarize(reviews []models.Review) models.ReviewSummary {
	summary := models.ReviewSummary{Count: len(reviews)}
	if len(reviews) == 0 {
		return summary
	}
	sum := 0
	for _, review := range reviews {
		sum += review.Rating
		if review.Rating >= 1 && review.Rating <= 5 {
			summary.Distribution[review.Rating-1]++
		}
	}
	summary.Average = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	return summary
}

func filterReviews(reviews []models.Review, keep func(models.Review) bool) []models.Review {
	result := []models.Review{}
	for _, review := range reviews {
		if keep(review) {
			result = append(result, review)
		}
	}
	return result
}

func limitReviews(reviews []models.Review, limit, fallback int) []models.Review {
	if limit <= 0 {
		limit = fallback
	}
	if len(reviews) > limit {
		reviews = reviews[:limit]
	}
	return reviews
}

func indexOfReview(reviews []models.Review, reviewID string) int {
	for i := range reviews {
		if reviews[i].ID == reviewID {
			return i
		}
	}
	return -1
}

// nextReviewID 取集合末条编号递增；空集合或编号无法解析时从 100 起步
func nextReviewID(reviews []models.Review) string {
	last := 100
	if len(reviews) > 0 {
		if n, err := strconv.Atoi(reviews[len(reviews)-1].ID); err == nil {
			last = n
		}
	}
	return strconv.Itoa(last + 1)
}
