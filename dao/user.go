package dao

import (
	"Agora/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

func (u *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

func (u *Users) IsUsernameExist(ctx context.Context, username string) (bool, error) {
	return u.Repo.IsExist(ctx, "username = ?", username)
}

func (u *Users) IsEmailExist(ctx context.Context, email string) (bool, error) {
	return u.Repo.IsExist(ctx, "email = ?", email)
}

// FindMap 批量查询用户, 按 ID 索引
func (u *Users) FindMap(ctx context.Context, ids []int64) (map[int64]*models.User, error) {
	users, err := u.Repo.FindByIds(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, err
	}

	m := make(map[int64]*models.User, len(users))
	for _, user := range users {
		m[user.ID] = user
	}
	return m, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
