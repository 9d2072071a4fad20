package importer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// requiredHitsPerSplit is how many field matches a split must accumulate,
// across all snapshot comparisons combined, before the record as a whole
// counts as an existing transfer.
const requiredHitsPerSplit = 4

// TransferSnapshotEntry is one leg of an existing transfer journal,
// flattened with its opposing account resolved. Amount is sign-normalized
// to non-negative at load time.
type TransferSnapshotEntry struct {
	JournalID           int64
	Amount              decimal.Decimal
	Description         string
	Date                time.Time
	AccountID           int64
	OpposingAccountID   int64
	AccountName         string
	OpposingAccountName string
}

// ITransferSource loads every transfer journal of a user, both legs
// visible, for fuzzy duplicate comparison.
//
//go:generate mockery --name ITransferSource --output mock_ITransferSource.go
type ITransferSource interface {
	LoadTransfers(ctx context.Context, userID int64) ([]TransferSnapshotEntry, error)
}

// transferMatcher scores candidate records against the snapshot of the
// user's existing transfers. The snapshot is read-only for the lifetime
// of the batch.
type transferMatcher struct {
	snapshot []TransferSnapshotEntry
}

func newTransferMatcher(snapshot []TransferSnapshotEntry) *transferMatcher {
	return &transferMatcher{snapshot: snapshot}
}

// isDuplicateTransfer reports whether record already exists in the ledger
// as a transfer. Transfers carry no stable external identity, so instead
// of a single key the matcher accumulates weak signals: every split is
// compared against every snapshot entry, each comparison awarding one
// point per matching field family (amount, description, date, id pair,
// name pair). The record is a duplicate once the running total reaches
// four points per split, summed across all comparisons.
func (m *transferMatcher) isDuplicateTransfer(record TransactionRecord) bool {
	if record.Type != TypeTransfer {
		return false
	}
	required := requiredHitsPerSplit * len(record.Splits)
	if required == 0 {
		return false
	}

	total := 0
	for _, split := range record.Splits {
		for _, entry := range m.snapshot {
			total += m.compareSplit(record, split, entry)
			if total >= required {
				return true
			}
		}
	}
	return false
}

// compareSplit awards the points one split earns against one snapshot
// entry. Id-pair and name-pair matches stack, so a single comparison can
// award up to five points.
func (m *transferMatcher) compareSplit(record TransactionRecord, split SplitRecord, entry TransferSnapshotEntry) int {
	hits := 0

	if amount, err := decimal.NewFromString(split.Amount); err == nil && amount.Abs().Equal(entry.Amount) {
		hits++
	}
	if record.splitDescription(split) == entry.Description {
		hits++
	}
	if record.Date == entry.Date.Format(DateLayout) {
		hits++
	}
	if sortedIDPair(split.SourceID, split.DestinationID) == sortedIDPair(entry.AccountID, entry.OpposingAccountID) {
		hits++
	}
	if sortedNamePair(split.SourceName, split.DestinationName) == sortedNamePair(entry.AccountName, entry.OpposingAccountName) {
		hits++
	}

	return hits
}

// sortedIDPair orders two account IDs so that source/destination
// orientation does not matter when comparing pairs.
func sortedIDPair(a, b int64) [2]int64 {
	if a > b {
		return [2]int64{b, a}
	}
	return [2]int64{a, b}
}

// sortedNamePair orders two account names lexically. Both sides compare
// as strings.
func sortedNamePair(a, b string) [2]string {
	if a > b {
		return [2]string{b, a}
	}
	return [2]string{a, b}
}
