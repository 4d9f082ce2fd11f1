package sqlrepo

import (
	"context"

	"github.com/markoub/careers/internal/models"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Insert(ctx context.Context, a *models.Application) error
	List(ctx context.Context) ([]models.Application, error)
}

type applicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Insert(ctx context.Context, a *models.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *applicationRepo) List(ctx context.Context) ([]models.Application, error) {
	var rows []models.Application
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
