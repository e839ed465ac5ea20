package handler

import (
	"Agora/middleware"
	"Agora/pkg/context"
	"Agora/pkg/response"
	"Agora/service"
	"Agora/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ThreadHandler struct {
	AuthService   service.IAuthService
	ThreadService service.IThreadService
}

func (th *ThreadHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(th.AuthService)

	r.POST("/discussions", authorize, context.Wrap(th.CreateDiscussion))

	forum := r.Group("/forum/:topic")
	forum.GET("", context.Wrap(th.GetDiscussions))
	forum.GET("/:id", context.Wrap(th.GetDiscussion))
	forum.POST("/:id/comments", authorize, context.Wrap(th.CreateComment))
	forum.POST("/:id/comments/:commentId", authorize, context.Wrap(th.DeleteComment))
	forum.DELETE("/:id/comments/:commentId", authorize, context.Wrap(th.DeleteComment))

	r.GET("/userDiscussions", authorize, context.Wrap(th.GetUserDiscussions))
	r.GET("/userComments", authorize, context.Wrap(th.GetUserComments))
}

func (th *ThreadHandler) CreateDiscussion(c *gin.Context) error {
	var req types.CreateDiscussionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("topic, title and description are required")
	}

	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	discussion, err := th.ThreadService.CreateDiscussion(c.Request.Context(), req.Topic, req.Title, req.Description, uid)
	if err != nil {
		return err
	}

	response.SuccessWithStatus(c, http.StatusCreated, discussion, "discussion created")
	return nil
}

func (th *ThreadHandler) GetDiscussions(c *gin.Context) error {
	discussions, err := th.ThreadService.ListDiscussions(c.Request.Context(), c.Param("topic"))
	if err != nil {
		return err
	}

	response.Success(c, discussions)
	return nil
}

func (th *ThreadHandler) GetDiscussion(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	detail, err := th.ThreadService.GetDiscussion(c.Request.Context(), c.Param("topic"), id)
	if err != nil {
		return err
	}

	response.Success(c, detail)
	return nil
}

func (th *ThreadHandler) CreateComment(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req types.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("invalid reply body")
	}

	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	replies, err := th.ThreadService.AddReply(c.Request.Context(), c.Param("topic"), id, uid, &req)
	if err != nil {
		return err
	}

	response.SuccessWithStatus(c, http.StatusCreated, gin.H{"replies": replies}, "reply added")
	return nil
}

func (th *ThreadHandler) DeleteComment(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	commentID, err := paramID(c, "commentId")
	if err != nil {
		return err
	}

	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	if err := th.ThreadService.DeleteReply(c.Request.Context(), c.Param("topic"), id, commentID, uid); err != nil {
		return err
	}

	response.Success(c, nil, "reply deleted")
	return nil
}

func (th *ThreadHandler) GetUserDiscussions(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	items, err := th.ThreadService.ListUserDiscussions(c.Request.Context(), uid)
	if err != nil {
		return err
	}

	response.Success(c, items)
	return nil
}

func (th *ThreadHandler) GetUserComments(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	items, err := th.ThreadService.ListUserComments(c.Request.Context(), uid)
	if err != nil {
		return err
	}

	response.Success(c, items)
	return nil
}

func paramID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NotFound("invalid " + name)
	}
	return id, nil
}
