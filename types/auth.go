package types

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password1 string `json:"password1" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	// Remember 勾选后 token 有效期更长
	Remember bool `json:"remember"`
}

type VerifyActivationRequest struct {
	Username string `json:"username" binding:"required"`
	Code     string `json:"code" binding:"required"`
}

type AutoLoginRequest struct {
	Token string `json:"token"`
}

type ChangeImageRequest struct {
	URL string `json:"url" binding:"required"`
}

type PromoteRequest struct {
	Username string `json:"username"`
}

type UserProfile struct {
	ID       int64  `json:"id,string"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}

// UserBrief 展示作者用的精简信息
type UserBrief struct {
	ID       int64  `json:"id,string"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}
