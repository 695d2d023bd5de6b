// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finpulse/backend/internal/domain/entity"
)

// EmailQueueRepository defines the interface for email queue operations.
type EmailQueueRepository interface {
	// Create adds a new email job to the queue.
	Create(ctx context.Context, job *entity.EmailJob) error

	// FetchPending retrieves up to limit pending jobs that are due,
	// oldest first.
	FetchPending(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update persists job state changes after a send attempt.
	Update(ctx context.Context, job *entity.EmailJob) error
}
