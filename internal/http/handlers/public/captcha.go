package public

import (
	"github.com/brewnext/internal/http/response"
	"github.com/brewnext/internal/service"

	"github.com/gin-gonic/gin"
)

// CaptchaPayloadRequest 请求中携带的验证码载荷
type CaptchaPayloadRequest struct {
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// ToServicePayload 转换为服务层载荷
func (r CaptchaPayloadRequest) ToServicePayload() service.CaptchaVerifyPayload {
	return service.CaptchaVerifyPayload{
		CaptchaID:   r.CaptchaID,
		CaptchaCode: r.CaptchaCode,
	}
}

// CaptchaImage 生成图片验证码挑战
func (h *Handler) CaptchaImage(c *gin.Context) {
	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		if err == service.ErrCaptchaConfigInvalid {
			respondError(c, response.CodeBadRequest, "captcha is not enabled", nil)
			return
		}
		respondError(c, response.CodeInternal, "generate captcha failed", err)
		return
	}
	response.Success(c, challenge)
}

// verifyCaptcha 按场景校验验证码，未通过时写好响应并返回 false
func (h *Handler) verifyCaptcha(c *gin.Context, scene string, payload CaptchaPayloadRequest) bool {
	if h.CaptchaService == nil {
		return true
	}
	err := h.CaptchaService.Verify(scene, payload.ToServicePayload())
	if err == nil {
		return true
	}
	switch err {
	case service.ErrCaptchaRequired:
		respondError(c, response.CodeBadRequest, "captcha verification required", nil)
	case service.ErrCaptchaInvalid:
		respondError(c, response.CodeBadRequest, "captcha verification failed", nil)
	default:
		respondError(c, response.CodeInternal, "captcha verification failed", err)
	}
	return false
}
