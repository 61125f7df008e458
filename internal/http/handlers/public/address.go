package public

import (
	"github.com/brewnext/internal/http/response"
	"github.com/brewnext/internal/models"

	"github.com/gin-gonic/gin"
)

// ListAddresses 当前用户地址列表
func (h *Handler) ListAddresses(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	addresses, err := h.UserService.ListAddresses(userID)
	if err != nil {
		respondWithMappedError(c, err, profileErrorRules, response.CodeInternal, "fetch addresses failed")
		return
	}
	response.Success(c, gin.H{"addresses": addresses})
}

// AddAddressRequest 新增地址请求
type AddAddressRequest struct {
	Street    string `json:"street" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
	IsDefault bool   `json:"is_default"`
}

// AddAddress 新增地址
func (h *Handler) AddAddress(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request payload", err)
		return
	}

	addresses, err := h.UserService.AddAddress(userID, models.Address{
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		respondWithMappedError(c, err, profileErrorRules, response.CodeInternal, "add address failed")
		return
	}
	response.Success(c, gin.H{"addresses": addresses})
}

// SetDefaultAddressRequest 设置默认地址请求
type SetDefaultAddressRequest struct {
	Index *int `json:"index" binding:"required"`
}

// SetDefaultAddress 把指定地址设为默认
func (h *Handler) SetDefaultAddress(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req SetDefaultAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request payload", err)
		return
	}

	addresses, err := h.UserService.SetDefaultAddress(userID, *req.Index)
	if err != nil {
		respondWithMappedError(c, err, profileErrorRules, response.CodeInternal, "set default address failed")
		return
	}
	response.Success(c, gin.H{"addresses": addresses})
}
