package context

import (
	"Agora/models"
	"Agora/pkg/log"
	"Agora/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID = "user_id"
	CtxUser   = "user"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 已经写过响应
			if c.Writer.Written() {
				return
			}

			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}

			log.L.Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
			response.Fail(c, http.StatusInternalServerError, "internal server error")
		}
	}
}

func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, response.Unauthorized("user_id missing")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, response.Unauthorized("user_id malformed")
	}

	return uid, nil
}

// GetUser returns the record resolved by the auth middleware.
func GetUser(c *gin.Context) (*models.User, error) {
	v, ok := c.Get(CtxUser)
	if !ok {
		return nil, response.Unauthorized("user missing")
	}

	user, ok := v.(*models.User)
	if !ok {
		return nil, response.Unauthorized("user malformed")
	}

	return user, nil
}
