package admin

import (
	"errors"

	"github.com/brewnext/internal/http/response"
	"github.com/brewnext/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var adminOrderErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "order not found"},
	{target: service.ErrOrderDelivered, code: response.CodeBadRequest, msg: "delivered orders cannot be cancelled"},
	{target: service.ErrOrderStatusInvalid, code: response.CodeBadRequest, msg: "invalid order status transition"},
}

var adminProductErrorRules = []mappedHandlerError{
	{target: service.ErrProductExists, code: response.CodeConflict, msg: "product id already exists"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
}
