package handler

import (
	"Agora/middleware"
	"Agora/pkg/context"
	"Agora/pkg/response"
	"Agora/service"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	AuthService service.IAuthService
	ChatService service.IChatService
}

func (ch *ChatHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(ch.AuthService)

	r.GET("/chat/users", authorize, context.Wrap(ch.GetChatUsers))
	r.GET("/messages/:toId", authorize, context.Wrap(ch.GetMessages))
}

func (ch *ChatHandler) GetChatUsers(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	users, err := ch.ChatService.ListChatUsers(c.Request.Context(), uid)
	if err != nil {
		return err
	}

	response.Success(c, users)
	return nil
}

func (ch *ChatHandler) GetMessages(c *gin.Context) error {
	peer, err := paramID(c, "toId")
	if err != nil {
		return err
	}

	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	messages, err := ch.ChatService.ListMessages(c.Request.Context(), uid, peer)
	if err != nil {
		return err
	}

	response.Success(c, messages)
	return nil
}
