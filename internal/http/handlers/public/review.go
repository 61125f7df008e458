package public

import (
	"github.com/brewnext/internal/http/response"
	"github.com/brewnext/internal/service"

	"github.com/gin-gonic/gin"
)

// AddReviewRequest 发表评论请求
type AddReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Title   string `json:"title"`
	Comment string `json:"comment" binding:"required"`
}

// AddReview 发表商品评论
func (h *Handler) AddReview(c *gin.Context) {
	userKey, ok := getUserKey(c)
	if !ok {
		return
	}
	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request payload", err)
		return
	}

	review, err := h.ReviewService.Add(c.Param("id"), userKey, getUserName(c), req.Rating, req.Title, req.Comment)
	if err != nil {
		respondWithMappedError(c, err, reviewErrorRules, response.CodeInternal, "add review failed")
		return
	}
	response.Success(c, review)
}

// UpdateReview 更新自己的评论
func (h *Handler) UpdateReview(c *gin.Context) {
	userKey, ok := getUserKey(c)
	if !ok {
		return
	}
	var req service.UpdateReviewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request payload", err)
		return
	}

	review, err := h.ReviewService.Update(c.Param("id"), userKey, req)
	if err != nil {
		respondWithMappedError(c, err, reviewErrorRules, response.CodeInternal, "update review failed")
		return
	}
	response.Success(c, review)
}

// DeleteReview 删除自己的评论
func (h *Handler) DeleteReview(c *gin.Context) {
	userKey, ok := getUserKey(c)
	if !ok {
		return
	}
	if err := h.ReviewService.Delete(c.Param("id"), userKey); err != nil {
		respondWithMappedError(c, err, reviewErrorRules, response.CodeInternal, "delete review failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// MarkReviewHelpful 评论有用计数加一
func (h *Handler) MarkReviewHelpful(c *gin.Context) {
	review, err := h.ReviewService.MarkHelpful(c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, reviewErrorRules, response.CodeInternal, "mark review helpful failed")
		return
	}
	response.Success(c, review)
}

// MyReviews 当前用户发表的评论
func (h *Handler) MyReviews(c *gin.Context) {
	userKey, ok := getUserKey(c)
	if !ok {
		return
	}
	response.Success(c, gin.H{"reviews": h.ReviewService.ByUser(userKey)})
}
