package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func Success(c *gin.Context, data any, msg ...string) {
	SuccessWithStatus(c, http.StatusOK, data, msg...)
}

func SuccessWithStatus(c *gin.Context, status int, data any, msg ...string) {
	message := "ok"
	if len(msg) > 0 {
		message = msg[0]
	}
	c.JSON(status, Response{
		Success: true,
		Code:    status,
		Message: message,
		Data:    data,
	})
}

func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, Response{
		Success: false,
		Code:    status,
		Message: msg,
	})
}
