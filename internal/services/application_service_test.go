package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/markoub/careers/internal/models"
	"github.com/markoub/careers/internal/utils"
)

type fakeApplicationRepo struct {
	mu         sync.Mutex
	rows       []models.Application
	nextID     uint
	insertErr  error
	insertSeen int
}

func (r *fakeApplicationRepo) Insert(ctx context.Context, a *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insertSeen++
	if r.insertErr != nil {
		return r.insertErr
	}
	r.nextID++
	a.ID = r.nextID
	r.rows = append(r.rows, *a)
	return nil
}

func (r *fakeApplicationRepo) List(ctx context.Context) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Application, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

type fakePositionRepo struct {
	mu        sync.Mutex
	positions map[uint]models.Position
	nextID    uint
	listCalls int
}

func newFakePositionRepo(ps ...models.Position) *fakePositionRepo {
	r := &fakePositionRepo{positions: map[uint]models.Position{}}
	for _, p := range ps {
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
		r.positions[p.ID] = p
	}
	return r
}

func (r *fakePositionRepo) List(ctx context.Context, department string) ([]models.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	var out []models.Position
	for _, p := range r.positions {
		if department == "" || p.Department == department {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePositionRepo) GetByID(ctx context.Context, id uint) (*models.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.positions[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return &p, nil
}

func (r *fakePositionRepo) Create(ctx context.Context, p *models.Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p.ID = r.nextID
	r.positions[p.ID] = *p
	return nil
}

func (r *fakePositionRepo) Update(ctx context.Context, p *models.Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.positions[p.ID]; !ok {
		return utils.ErrNotFound
	}
	r.positions[p.ID] = *p
	return nil
}

func (r *fakePositionRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.positions[id]; !ok {
		return utils.ErrNotFound
	}
	delete(r.positions, id)
	return nil
}

type fakeDocStore struct {
	mu        sync.Mutex
	objects   map[string][]byte
	uploadErr error
}

func newFakeDocStore() *fakeDocStore {
	return &fakeDocStore{objects: map[string][]byte{}}
}

func (s *fakeDocStore) Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectName] = b
	return "/uploads/" + objectName, nil
}

func (s *fakeDocStore) Remove(ctx context.Context, objectName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, objectName)
	return nil
}

func (s *fakeDocStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

func validInput() SubmitApplicationInput {
	return SubmitApplicationInput{
		FullName:    "Yassine Alaoui",
		Email:       "y@example.com",
		PositionID:  "3",
		Resume:      bytes.NewReader(make([]byte, 1200)),
		ResumeSize:  1200,
		ContentType: "application/pdf",
	}
}

func newIntake(t *testing.T) (ApplicationService, *fakeApplicationRepo, *fakeDocStore) {
	t.Helper()
	repo := &fakeApplicationRepo{}
	positions := newFakePositionRepo(models.Position{ID: 3, Title: "Software engineer", Department: "Engineering"})
	store := newFakeDocStore()
	return NewApplicationService(repo, positions, store, nil), repo, store
}

func TestSubmitMissingFieldsNoSideEffects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(in *SubmitApplicationInput)
	}{
		{"no full name", func(in *SubmitApplicationInput) { in.FullName = "" }},
		{"no email", func(in *SubmitApplicationInput) { in.Email = "" }},
		{"no resume", func(in *SubmitApplicationInput) { in.Resume = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, store := newIntake(t)
			in := validInput()
			tc.mutate(&in)

			_, err := svc.Submit(context.Background(), in)
			if !utils.IsCode(err, utils.CodeInvalidArgument) {
				t.Fatalf("want INVALID_ARGUMENT, got %v", err)
			}
			if store.count() != 0 {
				t.Errorf("document written despite validation failure")
			}
			if repo.insertSeen != 0 {
				t.Errorf("record insert attempted despite validation failure")
			}
		})
	}
}

func TestSubmitSizeBoundary(t *testing.T) {
	svc, _, store := newIntake(t)

	in := validInput()
	in.Resume = bytes.NewReader(make([]byte, MaxResumeSize))
	in.ResumeSize = MaxResumeSize
	if _, err := svc.Submit(context.Background(), in); err != nil {
		t.Fatalf("file of exactly %d bytes rejected: %v", MaxResumeSize, err)
	}

	in = validInput()
	in.Resume = bytes.NewReader(make([]byte, MaxResumeSize+1))
	in.ResumeSize = MaxResumeSize + 1
	_, err := svc.Submit(context.Background(), in)
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("oversized file: want INVALID_ARGUMENT, got %v", err)
	}
	if store.count() != 1 {
		t.Errorf("store holds %d documents, want 1", store.count())
	}
}

func TestSubmitTypeBoundary(t *testing.T) {
	for _, ct := range []string{"text/plain", "application/octet-stream", "image/png", ""} {
		svc, repo, _ := newIntake(t)
		in := validInput()
		in.ContentType = ct

		_, err := svc.Submit(context.Background(), in)
		if !utils.IsCode(err, utils.CodeInvalidArgument) {
			t.Errorf("content type %q: want INVALID_ARGUMENT, got %v", ct, err)
		}
		if repo.insertSeen != 0 {
			t.Errorf("content type %q: record insert attempted", ct)
		}
	}
}

func TestSubmitSpontaneousIgnoresSuppliedPosition(t *testing.T) {
	svc, _, _ := newIntake(t)

	in := validInput()
	in.IsSpontaneous = true
	in.PositionID = "3"

	row, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if row.PositionID != nil {
		t.Errorf("spontaneous application got position reference %d", *row.PositionID)
	}
	if !row.IsSpontaneous {
		t.Errorf("is_spontaneous not persisted")
	}
}

func TestSubmitTargetedPosition(t *testing.T) {
	svc, _, _ := newIntake(t)

	row, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if row.PositionID == nil || *row.PositionID != 3 {
		t.Fatalf("want position reference 3, got %v", row.PositionID)
	}
}

func TestSubmitUnknownPositionRejected(t *testing.T) {
	svc, repo, store := newIntake(t)

	in := validInput()
	in.PositionID = "42"
	_, err := svc.Submit(context.Background(), in)
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("unknown position: want INVALID_ARGUMENT, got %v", err)
	}

	in = validInput()
	in.PositionID = "not-a-number"
	_, err = svc.Submit(context.Background(), in)
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("malformed position id: want INVALID_ARGUMENT, got %v", err)
	}

	if store.count() != 0 || repo.insertSeen != 0 {
		t.Errorf("side effects despite rejected position reference")
	}
}

func TestSubmitOmittedPositionStoredAsNull(t *testing.T) {
	svc, _, _ := newIntake(t)

	in := validInput()
	in.PositionID = ""
	row, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if row.PositionID != nil {
		t.Errorf("want null position reference, got %d", *row.PositionID)
	}
}

func TestSubmitConcurrentSubmissionsAreDistinct(t *testing.T) {
	const n = 120

	svc, repo, store := newIntake(t)

	var wg sync.WaitGroup
	results := make([]*models.Application, n)
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.Submit(context.Background(), validInput())
		}(i)
	}
	wg.Wait()

	ids := map[uint]bool{}
	paths := map[string]bool{}
	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Fatalf("submission %d failed: %v", i, errs[i])
		}
		if ids[results[i].ID] {
			t.Fatalf("duplicate application id %d", results[i].ID)
		}
		if paths[results[i].ResumePath] {
			t.Fatalf("duplicate resume path %s", results[i].ResumePath)
		}
		ids[results[i].ID] = true
		paths[results[i].ResumePath] = true
	}

	if store.count() != n {
		t.Errorf("store holds %d documents, want %d", store.count(), n)
	}
	rows, _ := repo.List(context.Background())
	if len(rows) != n {
		t.Errorf("repo holds %d rows, want %d", len(rows), n)
	}
}

func TestSubmitEndToEnd(t *testing.T) {
	svc, _, store := newIntake(t)

	before := time.Now().UTC()
	row, err := svc.Submit(context.Background(), validInput())
	after := time.Now().UTC()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if row.ID == 0 {
		t.Errorf("no identifier assigned")
	}
	if row.FullName != "Yassine Alaoui" || row.Email != "y@example.com" {
		t.Errorf("fields not persisted: %+v", row)
	}
	if !strings.HasSuffix(row.ResumePath, ".pdf") {
		t.Errorf("resume path %q does not end in .pdf", row.ResumePath)
	}
	if row.PositionID == nil || *row.PositionID != 3 {
		t.Errorf("want position 3, got %v", row.PositionID)
	}
	if row.IsSpontaneous {
		t.Errorf("targeted application marked spontaneous")
	}
	if row.CreatedAt.Before(before) || row.CreatedAt.After(after) {
		t.Errorf("created_at %v outside execution window [%v, %v]", row.CreatedAt, before, after)
	}
	if store.count() != 1 {
		t.Errorf("store holds %d documents, want 1", store.count())
	}
}

func TestSubmitSpontaneousEndToEnd(t *testing.T) {
	svc, _, _ := newIntake(t)

	in := validInput()
	in.IsSpontaneous = true
	in.PositionID = ""

	row, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if row.PositionID != nil {
		t.Errorf("want null position reference, got %d", *row.PositionID)
	}
}

func TestSubmitStoreFailure(t *testing.T) {
	svc, repo, store := newIntake(t)
	store.uploadErr = errors.New("disk full")

	_, err := svc.Submit(context.Background(), validInput())
	if !utils.IsCode(err, utils.CodeUnavailable) {
		t.Fatalf("want UNAVAILABLE, got %v", err)
	}
	if repo.insertSeen != 0 {
		t.Errorf("record insert attempted after store failure")
	}
}

func TestSubmitInsertFailureRemovesDocument(t *testing.T) {
	repo := &fakeApplicationRepo{insertErr: errors.New("connection refused")}
	positions := newFakePositionRepo(models.Position{ID: 3, Department: "Engineering"})
	store := newFakeDocStore()
	svc := NewApplicationService(repo, positions, store, nil)

	_, err := svc.Submit(context.Background(), validInput())
	if !utils.IsCode(err, utils.CodeInternal) {
		t.Fatalf("want INTERNAL, got %v", err)
	}
	if store.count() != 0 {
		t.Errorf("orphaned document left in store after insert failure")
	}
}
