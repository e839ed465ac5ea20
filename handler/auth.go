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

type Auth struct {
	AuthService service.IAuthService
}

func (u *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(u.AuthService)

	r.POST("/register", context.Wrap(u.Register))
	r.POST("/login", context.Wrap(u.Login))
	r.POST("/verifyActivationCode", context.Wrap(u.VerifyActivationCode))
	r.POST("/autoLogin", context.Wrap(u.AutoLogin))
	r.POST("/changeImage", authorize, context.Wrap(u.ChangeImage))
}

func (u *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("username, email and both passwords are required")
	}

	if err := u.AuthService.Register(c.Request.Context(), &req); err != nil {
		return err
	}

	response.SuccessWithStatus(c, http.StatusCreated, nil, "registered, check your email for the activation code")
	return nil
}

func (u *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("username and password are required")
	}

	resp, err := u.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, resp, "logged in")
	return nil
}

func (u *Auth) VerifyActivationCode(c *gin.Context) error {
	var req types.VerifyActivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("username and code are required")
	}

	resp, err := u.AuthService.VerifyActivationCode(c.Request.Context(), &req)
	if err != nil {
		return err
	}

	response.Success(c, resp, "account activated")
	return nil
}

// AutoLogin 用已保存的 token 换取用户信息, token 可放在 body 或 Authorization 头
func (u *Auth) AutoLogin(c *gin.Context) error {
	var req types.AutoLoginRequest
	_ = c.ShouldBindJSON(&req)

	token := req.Token
	if token == "" {
		token = middleware.BearerToken(c.GetHeader("Authorization"))
	}
	if token == "" {
		return response.Unauthorized("missing authorization token")
	}

	profile, err := u.AuthService.AutoLogin(c.Request.Context(), token)
	if err != nil {
		return err
	}

	response.Success(c, profile)
	return nil
}

func (u *Auth) ChangeImage(c *gin.Context) error {
	var req types.ChangeImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("url is required")
	}

	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	profile, err := u.AuthService.ChangeImage(c.Request.Context(), uid, req.URL)
	if err != nil {
		return err
	}

	response.Success(c, profile, "image updated")
	return nil
}
