package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/markoub/careers/internal/models"
	"github.com/markoub/careers/internal/utils"
)

type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *memoryCache) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	c.entries[key] = b
	return nil
}

func (c *memoryCache) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func seededPositions() *fakePositionRepo {
	return newFakePositionRepo(
		models.Position{ID: 1, Title: "Software engineer", Department: "Engineering"},
		models.Position{ID: 2, Title: "UX Designer", Department: "Design"},
		models.Position{ID: 3, Title: "Backend engineer", Department: "Engineering"},
	)
}

func TestPositionListDepartmentFilter(t *testing.T) {
	svc := NewPositionService(seededPositions(), nil)

	all, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("unfiltered list has %d rows, want 3", len(all))
	}

	eng, err := svc.List(context.Background(), "Engineering")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(eng) != 2 {
		t.Fatalf("Engineering list has %d rows, want 2", len(eng))
	}
	for _, p := range eng {
		if p.Department != "Engineering" {
			t.Errorf("row %d in wrong department %q", p.ID, p.Department)
		}
	}
}

func TestPositionListUsesCache(t *testing.T) {
	repo := seededPositions()
	c := newMemoryCache()
	svc := NewPositionService(repo, c)

	if _, err := svc.List(context.Background(), "Design"); err != nil {
		t.Fatalf("List: %v", err)
	}
	if _, err := svc.List(context.Background(), "Design"); err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.listCalls != 1 {
		t.Errorf("repo hit %d times, want 1 (second read should be cached)", repo.listCalls)
	}
}

func TestPositionCreateInvalidatesCache(t *testing.T) {
	repo := seededPositions()
	c := newMemoryCache()
	svc := NewPositionService(repo, c)

	if _, err := svc.List(context.Background(), "Design"); err != nil {
		t.Fatalf("List: %v", err)
	}

	err := svc.Create(context.Background(), &models.Position{Title: "Brand Designer", Department: "Design"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	rows, err := svc.List(context.Background(), "Design")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("Design list has %d rows after create, want 2", len(rows))
	}
}

func TestPositionGetNotFound(t *testing.T) {
	svc := NewPositionService(seededPositions(), nil)

	_, err := svc.Get(context.Background(), 99)
	if !utils.IsCode(err, utils.CodeNotFound) {
		t.Fatalf("want NOT_FOUND, got %v", err)
	}
}

func TestPositionUpdate(t *testing.T) {
	repo := seededPositions()
	svc := NewPositionService(repo, newMemoryCache())

	p, err := svc.Update(context.Background(), 2, func(p *models.Position) {
		p.Title = "Senior UX Designer"
		p.Department = "Product"
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.ID != 2 || p.Title != "Senior UX Designer" || p.Department != "Product" {
		t.Errorf("unexpected updated row: %+v", p)
	}

	_, err = svc.Update(context.Background(), 99, func(p *models.Position) {})
	if !utils.IsCode(err, utils.CodeNotFound) {
		t.Fatalf("unknown id: want NOT_FOUND, got %v", err)
	}
}

func TestPositionDelete(t *testing.T) {
	repo := seededPositions()
	svc := NewPositionService(repo, newMemoryCache())

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), 1); !utils.IsCode(err, utils.CodeNotFound) {
		t.Errorf("row still readable after delete")
	}

	if err := svc.Delete(context.Background(), 1); !utils.IsCode(err, utils.CodeNotFound) {
		t.Fatalf("second delete: want NOT_FOUND, got %v", err)
	}
}
