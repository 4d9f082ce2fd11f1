package sqlrepo

import (
	"context"
	"errors"

	"github.com/markoub/careers/internal/models"
	"github.com/markoub/careers/internal/utils"
	"gorm.io/gorm"
)

type PositionRepository interface {
	List(ctx context.Context, department string) ([]models.Position, error)
	GetByID(ctx context.Context, id uint) (*models.Position, error)
	Create(ctx context.Context, p *models.Position) error
	Update(ctx context.Context, p *models.Position) error
	Delete(ctx context.Context, id uint) error
}

type positionRepo struct {
	db *gorm.DB
}

func NewPositionRepo(db *gorm.DB) PositionRepository {
	return &positionRepo{db: db}
}

func (r *positionRepo) List(ctx context.Context, department string) ([]models.Position, error) {
	q := r.db.WithContext(ctx).Order("id")
	if department != "" {
		q = q.Where("department = ?", department)
	}
	var rows []models.Position
	err := q.Find(&rows).Error
	return rows, err
}

func (r *positionRepo) GetByID(ctx context.Context, id uint) (*models.Position, error) {
	var p models.Position
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

func (r *positionRepo) Create(ctx context.Context, p *models.Position) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *positionRepo) Update(ctx context.Context, p *models.Position) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *positionRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Position{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
