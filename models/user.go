package models

import "time"

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User 用户表
type User struct {
	// 显式关闭自增，ID 由 snowflake 生成
	ID             int64     `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	Username       string    `gorm:"type:varchar(64);uniqueIndex:idx_users_username;not null" json:"username"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null" json:"email"`
	Password       string    `gorm:"type:varchar(255);not null" json:"-"` // bcrypt hash
	Role           string    `gorm:"type:varchar(16);default:'member';not null" json:"role"`
	Avatar         string    `gorm:"type:varchar(512)" json:"avatar"`
	ActivationCode string    `gorm:"type:varchar(16)" json:"-"`
	IsActive       bool      `gorm:"default:false;not null" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
