package sqlrepo

import (
	"context"
	"errors"

	"github.com/markoub/careers/internal/models"
	"github.com/markoub/careers/internal/utils"
	"gorm.io/gorm"
)

type AdminUserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	Insert(ctx context.Context, u *models.AdminUser) error
}

type adminUserRepo struct {
	db *gorm.DB
}

func NewAdminUserRepo(db *gorm.DB) AdminUserRepository {
	return &adminUserRepo{db: db}
}

func (r *adminUserRepo) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var u models.AdminUser
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &u, err
}

func (r *adminUserRepo) Insert(ctx context.Context, u *models.AdminUser) error {
	return r.db.WithContext(ctx).Create(u).Error
}
