package service

import (
	"testing"

	"github.com/brewnext/internal/kvstore"
	"github.com/brewnext/internal/models"
	"github.com/brewnext/internal/repository"
)

func setupReviewServiceTest(t *testing.T) (*ReviewService, *repository.MemoryProductRepository) {
	t.Helper()
	reviewRepo := repository.NewReviewRepository(kvstore.NewMemoryStore())
	// 清空内置示例数据，从空集合开始
	if err := reviewRepo.Replace([]models.Review{}); err != nil {
		t.Fatalf("reset reviews failed: %v", err)
	}
	productRepo := repository.NewMemoryProductRepository([]models.Product{
		{ID: "house-blend", Name: "House Blend", Price: models.NewMoneyFromFloat(14.50), Rating: 4.0, ReviewCount: 10},
	})
	return NewReviewService(reviewRepo, productRepo), productRepo
}

func TestAddReviewValidatesInput(t *testing.T) {
	svc, _ := setupReviewServiceTest(t)

	if _, err := svc.Add("house-blend", "5", "John", 0, "", "bad"); err != ErrInvalidRating {
		t.Fatalf("expected ErrInvalidRating, got: %v", err)
	}
	if _, err := svc.Add("house-blend", "5", "John", 6, "", "bad"); err != ErrInvalidRating {
		t.Fatalf("expected ErrInvalidRating, got: %v", err)
	}
	if _, err := svc.Add("no-such-product", "5", "John", 4, "", "ok"); err != ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got: %v", err)
	}
}

func TestAddReviewSequentialIDsAndRatingSync(t *testing.T) {
	svc, productRepo := setupReviewServiceTest(t)

	first, err := svc.Add("house-blend", "5", "John", 5, "Great", "Really good")
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if first.ID != "101" {
		t.Fatalf("expected id 101, got %s", first.ID)
	}
	second, err := svc.Add("house-blend", "6", "Jane", 4, "", "Solid")
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if second.ID != "102" {
		t.Fatalf("expected id 102, got %s", second.ID)
	}

	product := productRepo.GetByID("house-blend")
	if product.Rating != 4.5 || product.ReviewCount != 2 {
		t.Fatalf("rating not synced: rating=%v count=%d", product.Rating, product.ReviewCount)
	}
}

func TestSummaryAverageAndDistribution(t *testing.T) {
	svc, _ := setupReviewServiceTest(t)
	for _, rating := range []int{5, 4, 4} {
		if _, err := svc.Add("house-blend", "5", "John", rating, "", "x"); err != nil {
			t.Fatalf("Add error: %v", err)
		}
	}

	summary := svc.Summary("house-blend")
	if summary.Count != 3 {
		t.Fatalf("expected count 3, got %d", summary.Count)
	}
	if summary.Average != 4.3 {
		t.Fatalf("expected average 4.3, got %v", summary.Average)
	}
	want := [5]int{0, 0, 0, 2, 1}
	if summary.Distribution != want {
		t.Fatalf("unexpected distribution: %v", summary.Distribution)
	}
}

func TestSummaryEmptyProduct(t *testing.T) {
	svc, _ := setupReviewServiceTest(t)
	summary := svc.Summary("house-blend")
	if summary.Count != 0 || summary.Average != 0 {
		t.Fatalf("expected empty summary, got: %+v", summary)
	}
}

func TestMarkHelpfulIncrements(t *testing.T) {
	svc, _ := setupReviewServiceTest(t)
	review, err := svc.Add("house-blend", "5", "John", 4, "", "ok")
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}

	for i := 1; i <= 3; i++ {
		updated, err := svc.MarkHelpful(review.ID)
		if err != nil {
			t.Fatalf("MarkHelpful error: %v", err)
		}
		if updated.HelpfulCount != i {
			t.Fatalf("expected helpful count %d, got %d", i, updated.HelpfulCount)
		}
	}
	if _, err := svc.MarkHelpful("no-such-review"); err != ErrReviewNotFound {
		t.Fatalf("expected ErrReviewNotFound, got: %v", err)
	}
}

func TestUpdateReviewOwnership(t *testing.T) {
	svc, productRepo := setupReviewServiceTest(t)
	review, err := svc.Add("house-blend", "5", "John", 5, "Great", "Really good")
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}

	rating := 3
	if _, err := svc.Update(review.ID, "6", UpdateReviewInput{Rating: &rating}); err != ErrReviewNotFound {
		t.Fatalf("expected ErrReviewNotFound for other user, got: %v", err)
	}

	updated, err := svc.Update(review.ID, "5", UpdateReviewInput{Rating: &rating})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Rating != 3 {
		t.Fatalf("rating not updated: %d", updated.Rating)
	}
	if product := productRepo.GetByID("house-blend"); product.Rating != 3.0 {
		t.Fatalf("rating not resynced: %v", product.Rating)
	}

	bad := 9
	if _, err := svc.Update(review.ID, "5", UpdateReviewInput{Rating: &bad}); err != ErrInvalidRating {
		t.Fatalf("expected ErrInvalidRating, got: %v", err)
	}
}

func TestDeleteReviewOwnership(t *testing.T) {
	svc, productRepo := setupReviewServiceTest(t)
	review, err := svc.Add("house-blend", "5", "John", 5, "", "x")
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}

	if err := svc.Delete(review.ID, "6"); err != ErrReviewNotFound {
		t.Fatalf("expected ErrReviewNotFound for other user, got: %v", err)
	}
	if err := svc.Delete(review.ID, "5"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if len(svc.ByProduct("house-blend")) != 0 {
		t.Fatalf("review not deleted")
	}
	if product := productRepo.GetByID("house-blend"); product.ReviewCount != 0 {
		t.Fatalf("review count not resynced: %d", product.ReviewCount)
	}
}

func TestMostHelpfulAndRecentLimits(t *testing.T) {
	svc, _ := setupReviewServiceTest(t)
	var ids []string
	for i := 0; i < 6; i++ {
		review, err := svc.Add("house-blend", "5", "John", 4, "", "x")
		if err != nil {
			t.Fatalf("Add error: %v", err)
		}
		ids = append(ids, review.ID)
	}
	// 让最后一条成为最有用的评论
	for i := 0; i < 2; i++ {
		if _, err := svc.MarkHelpful(ids[5]); err != nil {
			t.Fatalf("MarkHelpful error: %v", err)
		}
	}

	helpful := svc.MostHelpful("house-blend", 0)
	if len(helpful) != 3 {
		t.Fatalf("expected default limit 3, got %d", len(helpful))
	}
	if helpful[0].ID != ids[5] {
		t.Fatalf("expected most helpful first, got %s", helpful[0].ID)
	}

	recent := svc.Recent("house-blend", 0)
	if len(recent) != 5 {
		t.Fatalf("expected default limit 5, got %d", len(recent))
	}
}

func TestHasUserReviewed(t *testing.T) {
	svc, _ := setupReviewServiceTest(t)
	if _, err := svc.Add("house-blend", "5", "John", 4, "", "x"); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if !svc.HasUserReviewed("5", "house-blend") {
		t.Fatalf("expected true for reviewer")
	}
	if svc.HasUserReviewed("6", "house-blend") {
		t.Fatalf("expected false for other user")
	}
}
