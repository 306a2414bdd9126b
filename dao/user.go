package dao

import (
	"context"
	"fmt"
	"strings"

	"github.com/TurboProjects/Notes-App-Challenge/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByEmail 邮箱查询，邮箱统一小写存储
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", strings.ToLower(email))
}

// IsEmailExist 判断邮箱是否已注册
func (u *Users) IsEmailExist(ctx context.Context, email string) (bool, error) {
	exist, err := u.Repo.IsExist(ctx, "email = ?", strings.ToLower(email))
	if err != nil {
		return false, fmt.Errorf("dao.User.IsEmailExist error: %w", err)
	}
	return exist, nil
}

func (u *Users) Update(ctx context.Context, userID int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	if _, err := u.Repo.UpdateById(ctx, userID, updates); err != nil {
		return fmt.Errorf("dao.User.Update error: %w", err)
	}
	return nil
}
