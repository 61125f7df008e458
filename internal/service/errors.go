package service

import "errors"

// 业务语义错误，由 handler 映射为响应码
var (
	ErrNotFound             = errors.New("resource not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrProductExists        = errors.New("product already exists")
	ErrInvalidQuantity      = errors.New("quantity must be a positive integer")
	ErrCartNotLoaded        = errors.New("cart is not loaded yet")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderEmpty           = errors.New("order must contain at least one item")
	ErrOrderStatusInvalid   = errors.New("invalid order status transition")
	ErrOrderDelivered       = errors.New("delivered orders cannot be cancelled")
	ErrReviewNotFound       = errors.New("review not found")
	ErrInvalidRating        = errors.New("rating must be an integer between 1 and 5")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrEmailExists          = errors.New("email already registered")
	ErrUsernameExists       = errors.New("username already taken")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserDisabled         = errors.New("user account disabled")
	ErrWeakPassword         = errors.New("password does not meet the policy")
	ErrAddressNotFound      = errors.New("address not found")
	ErrCaptchaRequired      = errors.New("captcha verification required")
	ErrCaptchaInvalid       = errors.New("captcha verification failed")
	ErrCaptchaConfigInvalid = errors.New("captcha provider is not configured")
)
