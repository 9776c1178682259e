package usecase

import (
	"context"

	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"

	"github.com/hashicorp/go-multierror"
)

// DispatchReport is the outcome of sending a list of chunks.
// Failed chunks contribute no tickets and are listed in Failures.
type DispatchReport struct {
	Tickets  []entity.Ticket
	Failures []*domainerrors.DeliveryError
}

// Err folds every chunk failure into a single error, or nil when all chunks succeeded.
func (r *DispatchReport) Err() error {
	if r == nil || len(r.Failures) == 0 {
		return nil
	}

	var result *multierror.Error
	for _, failure := range r.Failures {
		result = multierror.Append(result, failure)
	}

	return result.ErrorOrNil()
}

// DeliveryDispatcher forwards chunks to the push provider
type DeliveryDispatcher interface {
	// SendChunk submits one chunk. Failures are returned as *errors.DeliveryError.
	SendChunk(ctx context.Context, index int, chunk entity.Chunk) ([]entity.Ticket, error)

	// SendAll submits chunks sequentially and never fails as a whole
	SendAll(ctx context.Context, chunks []entity.Chunk) *DispatchReport
}
