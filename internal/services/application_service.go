package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/markoub/careers/internal/models"
	"github.com/markoub/careers/internal/notify"
	"github.com/markoub/careers/internal/repositories/sqlrepo"
	"github.com/markoub/careers/internal/storage"
	"github.com/markoub/careers/internal/utils"
)

// MaxResumeSize is the resume upload cap (2 MiB).
const MaxResumeSize = 2 << 20

const resumeContentType = "application/pdf"

type SubmitApplicationInput struct {
	FullName      string
	Email         string
	PositionID    string // raw form value; parsed only for targeted applications
	IsSpontaneous bool

	Resume      io.Reader
	ResumeSize  int64
	ContentType string // declared by the client; the bytes are not inspected
}

type ApplicationService interface {
	Submit(ctx context.Context, in SubmitApplicationInput) (*models.Application, error)
	List(ctx context.Context) ([]models.Application, error)
}

type applicationService struct {
	repo      sqlrepo.ApplicationRepository
	positions sqlrepo.PositionRepository
	store     storage.Store
	events    notify.Notifier
}

func NewApplicationService(repo sqlrepo.ApplicationRepository, positions sqlrepo.PositionRepository, store storage.Store, events notify.Notifier) ApplicationService {
	if events == nil {
		events = notify.Noop{}
	}
	return &applicationService{repo: repo, positions: positions, store: store, events: events}
}

// Submit validates a submission, stores the resume document and creates
// the application row. Validation failures happen before any write.
// If the row insert fails after the document was stored, the document
// is removed again so no orphan is left behind.
func (s *applicationService) Submit(ctx context.Context, in SubmitApplicationInput) (*models.Application, error) {
	const op = "ApplicationService.Submit"

	if in.FullName == "" || in.Email == "" || in.Resume == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "missing required fields", nil)
	}
	if in.ResumeSize > MaxResumeSize {
		return nil, utils.E(utils.CodeInvalidArgument, op, "file too large", nil)
	}
	if in.ContentType != resumeContentType {
		return nil, utils.E(utils.CodeInvalidArgument, op, "unsupported file type", nil)
	}

	positionID, err := s.resolvePosition(ctx, in)
	if err != nil {
		return nil, err
	}

	// Unix-millis plus a UUID: unique across concurrent submissions
	// without any coordination. The client's filename and extension are
	// discarded entirely; storage names are always server generated.
	objectName := fmt.Sprintf("%d-%s.pdf", time.Now().UnixMilli(), uuid.NewString())

	storedPath, err := s.store.Upload(ctx, objectName, resumeContentType, in.Resume)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to store resume", err)
	}

	row := &models.Application{
		FullName:      in.FullName,
		Email:         in.Email,
		PositionID:    positionID,
		ResumePath:    storedPath,
		IsSpontaneous: in.IsSpontaneous,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, row); err != nil {
		if rmErr := s.store.Remove(ctx, objectName); rmErr != nil {
			err = fmt.Errorf("%w (orphan cleanup failed: %v)", err, rmErr)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to persist application", err)
	}

	s.events.ApplicationCreated(ctx, row)

	return row, nil
}

// resolvePosition computes the optional position reference. Spontaneous
// applications never carry one, even when the form supplied an id. A
// targeted application naming a position must name one that exists.
func (s *applicationService) resolvePosition(ctx context.Context, in SubmitApplicationInput) (*uint, error) {
	const op = "ApplicationService.Submit"

	if in.IsSpontaneous || in.PositionID == "" {
		return nil, nil
	}

	n, err := strconv.ParseUint(in.PositionID, 10, 32)
	if err != nil || n == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid position id", err)
	}
	id := uint(n)

	if _, err := s.positions.GetByID(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeInvalidArgument, op, "position not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to look up position", err)
	}
	return &id, nil
}

func (s *applicationService) List(ctx context.Context) ([]models.Application, error) {
	const op = "ApplicationService.List"

	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}
	return rows, nil
}
