// Package email provides email sending functionality.
package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finpulse/backend/internal/domain/entity"
)

// fakeQueue is an in-memory EmailQueueRepository for worker tests. Jobs
// state lives on the entities themselves, so FetchPending only has to
// filter by readiness.
type fakeQueue struct {
	jobs []*entity.EmailJob
}

func (q *fakeQueue) Create(ctx context.Context, job *entity.EmailJob) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeQueue) FetchPending(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	due := make([]*entity.EmailJob, 0, len(q.jobs))
	for _, job := range q.jobs {
		if job.IsReadyToProcess() {
			due = append(due, job)
		}
		if len(due) == limit {
			break
		}
	}
	return due, nil
}

func (q *fakeQueue) Update(ctx context.Context, job *entity.EmailJob) error {
	return nil
}

func pendingJob() *entity.EmailJob {
	job := entity.NewEmailJob(
		entity.EmailKindInsightAlert,
		"user@example.com",
		"Test User",
		"Your spending needs attention",
		"We spotted a spike in your dining spend this month.",
	)
	job.ScheduledAt = time.Now().UTC().Add(-time.Second)
	return job
}

func TestWorkerProcessNow(t *testing.T) {
	tests := []struct {
		name          string
		permanent     bool
		shouldFail    bool
		wantStatus    entity.EmailStatus
		wantSent      int
		wantAttempts  int
		wantScheduled bool
	}{
		{
			name:       "successful send marks job sent",
			wantStatus: entity.EmailStatusSent,
			wantSent:   1,
		},
		{
			name:          "temporary failure schedules a retry",
			shouldFail:    true,
			wantStatus:    entity.EmailStatusPending,
			wantAttempts:  1,
			wantScheduled: true,
		},
		{
			name:         "permanent failure does not retry",
			shouldFail:   true,
			permanent:    true,
			wantStatus:   entity.EmailStatusFailed,
			wantAttempts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := pendingJob()
			queue := &fakeQueue{jobs: []*entity.EmailJob{job}}
			sender := NewMockEmailSender()
			if tt.shouldFail {
				sender.SetFailure(errors.New("provider rejected message"), tt.permanent)
			}

			worker := NewWorker(queue, sender, DefaultWorkerConfig())
			worker.ProcessNow(context.Background())

			if job.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", job.Status, tt.wantStatus)
			}
			if len(sender.SentEmails) != tt.wantSent {
				t.Errorf("sent emails = %d, want %d", len(sender.SentEmails), tt.wantSent)
			}
			if job.Attempts != tt.wantAttempts {
				t.Errorf("attempts = %d, want %d", job.Attempts, tt.wantAttempts)
			}
			if tt.wantScheduled && !job.ScheduledAt.After(time.Now().UTC()) {
				t.Errorf("retry not scheduled in the future: %s", job.ScheduledAt)
			}
			if tt.wantStatus == entity.EmailStatusSent && job.ProviderID == "" {
				t.Error("sent job missing provider id")
			}
		})
	}
}

func TestWorkerExhaustsRetries(t *testing.T) {
	job := pendingJob()
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("timeout talking to provider"), false)
	worker := NewWorker(&fakeQueue{jobs: []*entity.EmailJob{job}}, sender, DefaultWorkerConfig())

	for i := 0; i < job.MaxAttempts; i++ {
		// Pull the backoff window back so the job is due again.
		job.ScheduledAt = time.Now().UTC().Add(-time.Second)
		worker.ProcessNow(context.Background())
	}

	if job.Status != entity.EmailStatusFailed {
		t.Errorf("status = %s, want %s", job.Status, entity.EmailStatusFailed)
	}
	if job.Attempts != job.MaxAttempts {
		t.Errorf("attempts = %d, want %d", job.Attempts, job.MaxAttempts)
	}
	if job.ProcessedAt == nil {
		t.Error("permanently failed job missing processed_at")
	}
	if job.LastError == "" {
		t.Error("permanently failed job missing last_error")
	}
}
