package public

import (
	"strconv"

	handlershared "github.com/brewnext/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, "user_id")
}

// getUserKey 返回文档集合里使用的字符串用户标识
func getUserKey(c *gin.Context) (string, bool) {
	userID, ok := getUserID(c)
	if !ok {
		return "", false
	}
	return strconv.FormatUint(uint64(userID), 10), true
}

func getSessionID(c *gin.Context) string {
	return handlershared.GetContextString(c, "session_id")
}

func getUserName(c *gin.Context) string {
	return handlershared.GetContextString(c, "user_name")
}
