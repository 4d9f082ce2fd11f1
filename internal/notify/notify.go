package notify

import (
	"context"

	"github.com/markoub/careers/internal/models"
)

// Notifier announces a newly persisted application to whatever is
// listening (mail pipeline, matching workers). Delivery is best effort:
// the record is already durable, so implementations log failures and
// never surface them to the applicant.
type Notifier interface {
	ApplicationCreated(ctx context.Context, app *models.Application)
}

type Noop struct{}

func (Noop) ApplicationCreated(ctx context.Context, app *models.Application) {}
