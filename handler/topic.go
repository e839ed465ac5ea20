package handler

import (
	"Agora/middleware"
	"Agora/pkg/context"
	"Agora/pkg/response"
	"Agora/service"
	"Agora/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	AuthService  service.IAuthService
	TopicService service.ITopicService
}

func (th *TopicHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(th.AuthService)

	r.POST("/topics", authorize, context.Wrap(th.CreateTopic))
	r.GET("/getTopics", context.Wrap(th.GetTopics))
}

func (th *TopicHandler) CreateTopic(c *gin.Context) error {
	var req types.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("title is required")
	}

	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	topic, err := th.TopicService.CreateTopic(c.Request.Context(), req.Title, uid)
	if err != nil {
		return err
	}

	response.SuccessWithStatus(c, http.StatusCreated, topic, "topic created")
	return nil
}

func (th *TopicHandler) GetTopics(c *gin.Context) error {
	topics, err := th.TopicService.ListTopics(c.Request.Context())
	if err != nil {
		return err
	}

	response.Success(c, topics)
	return nil
}
