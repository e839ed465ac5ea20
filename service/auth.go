package service

import (
	"Agora/config"
	"Agora/dao"
	"Agora/models"
	"Agora/pkg/email"
	"Agora/pkg/jwt"
	"Agora/pkg/log"
	"Agora/pkg/response"
	"Agora/pkg/snowflake"
	"Agora/pkg/utils"
	"Agora/types"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) error
	Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error)
	VerifyActivationCode(ctx context.Context, req *types.VerifyActivationRequest) (*types.AuthResponse, error)
	AutoLogin(ctx context.Context, token string) (*types.UserProfile, error)
	// Authenticate resolves a bearer token to the full user record.
	Authenticate(ctx context.Context, token string) (*models.User, error)
	ChangeImage(ctx context.Context, userID int64, url string) (*types.UserProfile, error)
	Promote(ctx context.Context, username string) error
}

type AuthService struct {
	Config  *config.Config
	UserDAO *dao.Users
	Mailer  email.Sender
}

func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := validateRegister(req); err != nil {
		return err
	}

	exist, err := s.UserDAO.IsUsernameExist(ctx, req.Username)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if exist {
		return response.Conflict("username already taken")
	}

	exist, err = s.UserDAO.IsEmailExist(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if exist {
		return response.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password1), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	code, err := utils.RandDigits(6)
	if err != nil {
		return fmt.Errorf("activation code: %w", err)
	}

	user := &models.User{
		ID:             snowflake.GenID(),
		Username:       req.Username,
		Email:          req.Email,
		Password:       string(hash),
		Role:           models.RoleMember,
		Avatar:         s.Config.App.DefaultAvatar,
		ActivationCode: code,
		IsActive:       false,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.Conflict("username or email already taken")
		}
		return fmt.Errorf("create user: %w", err)
	}

	// 用户已落库, 发信失败不回滚
	if err := s.Mailer.Send(user.Email, "Activate your account", email.ActivationHTML(user.Username, code)); err != nil {
		log.L.Error("send activation email", zap.String("username", user.Username), zap.Error(err))
		return response.Internal("account created but the activation email could not be sent")
	}

	return nil
}

func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error) {
	user, err := s.UserDAO.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.Unauthorized("wrong username or password")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, response.Unauthorized("wrong username or password")
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}

	if !user.IsActive {
		return nil, response.Unauthorized("user is not verified, check your email for the activation code")
	}

	return s.issue(user, s.Config.Jwt.Expire(req.Remember))
}

func (s *AuthService) VerifyActivationCode(ctx context.Context, req *types.VerifyActivationRequest) (*types.AuthResponse, error) {
	user, err := s.UserDAO.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.Validation("incorrect code or user")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	code := strings.TrimSpace(req.Code)
	if user.ActivationCode == "" || user.ActivationCode != code {
		return nil, response.Validation("incorrect code or user")
	}

	if _, err := s.UserDAO.UpdateById(ctx, user.ID, map[string]any{
		"is_active":       true,
		"activation_code": "",
	}); err != nil {
		return nil, fmt.Errorf("activate user: %w", err)
	}
	user.IsActive = true
	user.ActivationCode = ""

	return s.issue(user, s.Config.Jwt.ActivationExpire())
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := jwt.ParseToken([]byte(s.Config.Jwt.Secret), jwt.TypeAccess, token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, response.ErrTokenExpired
		}
		return nil, response.ErrTokenInvalid
	}

	user, err := s.UserDAO.FindByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("user not found")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return user, nil
}

func (s *AuthService) AutoLogin(ctx context.Context, token string) (*types.UserProfile, error) {
	user, err := s.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, response.NotFound("user not found")
	}

	return toProfile(user), nil
}

func (s *AuthService) ChangeImage(ctx context.Context, userID int64, url string) (*types.UserProfile, error) {
	url = strings.TrimSpace(url)
	if !isHTTPURL(url) {
		return nil, response.Validation("image url must start with http:// or https://")
	}

	affected, err := s.UserDAO.UpdateById(ctx, userID, map[string]any{"avatar": url})
	if err != nil {
		return nil, fmt.Errorf("update avatar: %w", err)
	}
	if affected == 0 {
		return nil, response.NotFound("user not found")
	}

	user, err := s.UserDAO.FindById(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reload user: %w", err)
	}

	return toProfile(user), nil
}

func (s *AuthService) Promote(ctx context.Context, username string) error {
	user, err := s.UserDAO.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("user not found")
		}
		return fmt.Errorf("find user: %w", err)
	}

	if user.IsAdmin() {
		return nil
	}

	_, err = s.UserDAO.UpdateById(ctx, user.ID, map[string]any{"role": models.RoleAdmin})
	return err
}

func (s *AuthService) issue(user *models.User, ttl time.Duration) (*types.AuthResponse, error) {
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.Username, jwt.TypeAccess, ttl)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &types.AuthResponse{Token: token, User: toProfile(user)}, nil
}

func toProfile(u *models.User) *types.UserProfile {
	return &types.UserProfile{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Avatar:   u.Avatar,
		Role:     u.Role,
	}
}

func toBrief(u *models.User) types.UserBrief {
	return types.UserBrief{
		ID:       u.ID,
		Username: u.Username,
		Avatar:   u.Avatar,
	}
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
