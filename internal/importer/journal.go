package importer

import (
	"context"
	"fmt"
)

// IJournalFactory commits one record to the ledger and returns the new
// journal's ID. Implementations are scoped to a single user at
// construction time; committing also records the content fingerprint so
// later imports can find it.
//
//go:generate mockery --name IJournalFactory --output mock_IJournalFactory.go
type IJournalFactory interface {
	Commit(ctx context.Context, record TransactionRecord) (int64, error)
}

// CommitError reports the ledger store rejecting a survivor. It aborts
// the batch: silently dropping a record the user meant to import would
// be worse than a visible failure.
type CommitError struct {
	Index int
	Err   error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("committing record %d: %v", e.Index, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}
