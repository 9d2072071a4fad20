package importer

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

// BatchStatus is the operator-visible progress of one import job. Values
// are written in order through the job-status sink and never read back
// by the pipeline.
type BatchStatus string

const (
	StatusNew           BatchStatus = "new"
	StatusStoringData   BatchStatus = "storing_data"
	StatusStoredData    BatchStatus = "stored_data"
	StatusLinkingToTag  BatchStatus = "linking_to_tag"
	StatusLinkedToTag   BatchStatus = "linked_to_tag"
	StatusApplyingRules BatchStatus = "applying_rules"
	StatusRulesApplied  BatchStatus = "rules_applied"
)

// ImportJob identifies one import run: whose ledger it writes to and the
// short key that names it in tags, logs and status rows.
type ImportJob struct {
	ID     int64
	Key    string
	UserID int64
}

// NewImportJob mints a job for a user with a fresh random key.
func NewImportJob(userID int64) ImportJob {
	key := uuid.Must(uuid.NewV4()).String()[:8]
	return ImportJob{Key: key, UserID: userID}
}

// StoreConfig is the per-batch configuration accepted by Store. Rules
// only run when explicitly asked for.
type StoreConfig struct {
	ApplyRules bool
}

// IJobStatusSink records job progress and operator-facing messages.
// Append-only from the pipeline's point of view.
//
//go:generate mockery --name IJobStatusSink --output mock_IJobStatusSink.go
type IJobStatusSink interface {
	SetStatus(ctx context.Context, job ImportJob, status BatchStatus) error
	AddErrorMessage(ctx context.Context, job ImportJob, message string) error
}
