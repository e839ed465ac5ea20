package middleware

import (
	"Agora/models"
	"Agora/pkg/context"
	"Agora/pkg/response"
	stdctx "context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Authenticator resolves a token to the user it was issued for.
type Authenticator interface {
	Authenticate(ctx stdctx.Context, token string) (*models.User, error)
}

// Auth 校验 Authorization 头, 接受 "Bearer <token>" 或裸 token
func Auth(auth Authenticator) gin.HandlerFunc {
	return authorize(auth, false)
}

// AuthQuery also accepts ?token= for clients that cannot set headers on a websocket upgrade.
func AuthQuery(auth Authenticator) gin.HandlerFunc {
	return authorize(auth, true)
}

func authorize(auth Authenticator, allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c.GetHeader("Authorization"))
		if token == "" && allowQuery {
			token = c.Query("token")
		}
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "missing authorization token")
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.Abort(c, response.CodeOf(err), messageOf(err))
			return
		}

		c.Set(context.CtxUser, user)
		c.Set(context.CtxUserID, user.ID)

		c.Next()
	}
}

func BearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}

func messageOf(err error) string {
	var be *response.BizError
	if errors.As(err, &be) {
		return be.Msg
	}
	return "internal server error"
}
