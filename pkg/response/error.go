package response

import (
	"Agora/pkg/log"
	"Agora/pkg/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BizError is returned by services and handlers; Code is the http status.
type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func Validation(msg string) *BizError   { return NewError(http.StatusBadRequest, msg) }
func Unauthorized(msg string) *BizError { return NewError(http.StatusUnauthorized, msg) }
func Forbidden(msg string) *BizError    { return NewError(http.StatusForbidden, msg) }
func NotFound(msg string) *BizError     { return NewError(http.StatusNotFound, msg) }
func Conflict(msg string) *BizError     { return NewError(http.StatusConflict, msg) }
func Internal(msg string) *BizError     { return NewError(http.StatusInternalServerError, msg) }

var (
	ErrTokenExpired = NewError(http.StatusUnauthorized, "token expired")
	ErrTokenInvalid = NewError(http.StatusForbidden, "invalid token")
)

// CodeOf returns the status carried by err, 500 for anything that is not a BizError.
func CodeOf(err error) int {
	var be *BizError
	if errors.As(err, &be) {
		return be.Code
	}
	return http.StatusInternalServerError
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered", zap.String("path", c.Request.URL.Path), zap.String("trace", utils.PanicTrace(r)))
				Abort(c, http.StatusInternalServerError, "internal server error")
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err

			var be *BizError
			if errors.As(err, &be) {
				Fail(c, be.Code, be.Msg)
			} else {
				Fail(c, http.StatusInternalServerError, "internal server error")
			}
			c.Abort()
		}
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Success: false,
		Code:    httpStatus,
		Message: msg,
		Data:    nil,
	})
}
