package services

import (
	"context"
	"errors"
	"time"

	"github.com/markoub/careers/internal/cache"
	"github.com/markoub/careers/internal/models"
	"github.com/markoub/careers/internal/repositories/sqlrepo"
	"github.com/markoub/careers/internal/utils"
)

const (
	positionListTTL    = 5 * time.Minute
	positionListAllKey = "positions:all"
)

type PositionService interface {
	List(ctx context.Context, department string) ([]models.Position, error)
	Get(ctx context.Context, id uint) (*models.Position, error)
	Create(ctx context.Context, p *models.Position) error
	Update(ctx context.Context, id uint, apply func(p *models.Position)) (*models.Position, error)
	Delete(ctx context.Context, id uint) error
}

type positionService struct {
	repo  sqlrepo.PositionRepository
	cache cache.Cache
}

func NewPositionService(repo sqlrepo.PositionRepository, c cache.Cache) PositionService {
	if c == nil {
		c = cache.Noop{}
	}
	return &positionService{repo: repo, cache: c}
}

func positionListKey(department string) string {
	if department == "" {
		return positionListAllKey
	}
	return "positions:dept:" + department
}

func (s *positionService) List(ctx context.Context, department string) ([]models.Position, error) {
	const op = "PositionService.List"

	key := positionListKey(department)
	var cached []models.Position
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := s.repo.List(ctx, department)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list positions", err)
	}

	_ = s.cache.SetJSON(ctx, key, rows, positionListTTL)
	return rows, nil
}

func (s *positionService) Get(ctx context.Context, id uint) (*models.Position, error) {
	const op = "PositionService.Get"

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "position not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get position", err)
	}
	return p, nil
}

func (s *positionService) Create(ctx context.Context, p *models.Position) error {
	const op = "PositionService.Create"

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to create position", err)
	}
	_ = s.cache.Del(ctx, positionListAllKey, positionListKey(p.Department))
	return nil
}

// Update loads the position, lets the caller mutate it, then saves it.
// Both the old and the new department list keys are invalidated.
func (s *positionService) Update(ctx context.Context, id uint, apply func(p *models.Position)) (*models.Position, error) {
	const op = "PositionService.Update"

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "position not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get position", err)
	}

	oldDept := p.Department
	apply(p)
	p.ID = id

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update position", err)
	}
	_ = s.cache.Del(ctx, positionListAllKey, positionListKey(oldDept), positionListKey(p.Department))
	return p, nil
}

func (s *positionService) Delete(ctx context.Context, id uint) error {
	const op = "PositionService.Delete"

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "position not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to get position", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "position not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete position", err)
	}
	_ = s.cache.Del(ctx, positionListAllKey, positionListKey(p.Department))
	return nil
}
