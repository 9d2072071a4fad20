package importer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// rentRecord is a one-split transfer used as the matching candidate in
// most matcher tests: 50.00, "Rent", 2024-02-01, accounts 3 -> 7.
func rentRecord() TransactionRecord {
	return TransactionRecord{
		Type:        TypeTransfer,
		Description: "Rent",
		Date:        "2024-02-01",
		Splits: []SplitRecord{{
			Amount:          "50.00",
			SourceID:        3,
			DestinationID:   7,
			SourceName:      "Checking",
			DestinationName: "Savings",
		}},
	}
}

// rentEntry mirrors rentRecord as it would look in the ledger, with the
// legs seen from the opposite side.
func rentEntry() TransferSnapshotEntry {
	return TransferSnapshotEntry{
		JournalID:           900,
		Amount:              decimal.RequireFromString("50.00"),
		Description:         "Rent",
		Date:                time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		AccountID:           7,
		OpposingAccountID:   3,
		AccountName:         "Savings",
		OpposingAccountName: "Checking",
	}
}

func TestMatcher_IdenticalTransferIsDuplicate(t *testing.T) {
	m := newTransferMatcher([]TransferSnapshotEntry{rentEntry()})

	assert.True(t, m.isDuplicateTransfer(rentRecord()),
		"amount, description, date and both account pairs all match")
}

func TestMatcher_ThresholdBoundary(t *testing.T) {
	// Amount, date and id pair match; description and names do not.
	// Three points is one short of the four required per split.
	entry := rentEntry()
	entry.Description = "Monthly rent payment"
	entry.AccountName = "Old savings"
	entry.OpposingAccountName = "Old checking"

	m := newTransferMatcher([]TransferSnapshotEntry{entry})
	assert.False(t, m.isDuplicateTransfer(rentRecord()), "three points must not clear the threshold")

	// Restoring the description makes it four.
	entry.Description = "Rent"
	m = newTransferMatcher([]TransferSnapshotEntry{entry})
	assert.True(t, m.isDuplicateTransfer(rentRecord()), "four points is exactly the threshold")
}

func TestMatcher_PointsAccumulateAcrossEntries(t *testing.T) {
	// Neither entry alone reaches four points, but the running total is
	// shared across all comparisons: 2 + 2 clears the threshold.
	amountAndDate := rentEntry()
	amountAndDate.Description = "Something else"
	amountAndDate.AccountID = 80
	amountAndDate.OpposingAccountID = 81
	amountAndDate.AccountName = "A"
	amountAndDate.OpposingAccountName = "B"

	descriptionAndNames := rentEntry()
	descriptionAndNames.Amount = decimal.RequireFromString("999.99")
	descriptionAndNames.Date = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	descriptionAndNames.AccountID = 80
	descriptionAndNames.OpposingAccountID = 81

	m := newTransferMatcher([]TransferSnapshotEntry{amountAndDate, descriptionAndNames})
	assert.True(t, m.isDuplicateTransfer(rentRecord()))
}

func TestMatcher_NonTransferNeverMatches(t *testing.T) {
	m := newTransferMatcher([]TransferSnapshotEntry{rentEntry()})

	withdrawal := rentRecord()
	withdrawal.Type = TypeWithdrawal

	assert.False(t, m.isDuplicateTransfer(withdrawal),
		"only transfers are compared, even against a perfect entry")
}

func TestMatcher_EmptySnapshot(t *testing.T) {
	m := newTransferMatcher(nil)

	assert.False(t, m.isDuplicateTransfer(rentRecord()))
}

func TestMatcher_ReversedAccountPairsStillMatch(t *testing.T) {
	// The ledger sees the transfer from the other leg, so ids and names
	// arrive swapped. Pair comparison is orientation-free.
	entry := rentEntry()
	entry.AccountID = 3
	entry.OpposingAccountID = 7
	entry.AccountName = "Checking"
	entry.OpposingAccountName = "Savings"

	m := newTransferMatcher([]TransferSnapshotEntry{entry})
	assert.True(t, m.isDuplicateTransfer(rentRecord()))
}

func TestMatcher_SplitDescriptionFallsBackToRecord(t *testing.T) {
	// Names differ so the record needs amount + description + date + id
	// pair. The split has no description of its own; the record-level one
	// must be used for the comparison.
	entry := rentEntry()
	entry.AccountName = "Other"
	entry.OpposingAccountName = "Another"

	record := rentRecord()
	m := newTransferMatcher([]TransferSnapshotEntry{entry})
	assert.True(t, m.isDuplicateTransfer(record))

	// A split-level description takes precedence and here breaks the match.
	record.Splits[0].Description = "February rent leg"
	assert.False(t, m.isDuplicateTransfer(record))
}

func TestMatcher_AmountIsSignNormalized(t *testing.T) {
	// Outgoing legs can arrive negative; the stored snapshot is always
	// non-negative. Names differ so the amount point decides the match.
	entry := rentEntry()
	entry.AccountName = "Other"
	entry.OpposingAccountName = "Another"

	record := rentRecord()
	record.Splits[0].Amount = "-50.00"

	m := newTransferMatcher([]TransferSnapshotEntry{entry})
	assert.True(t, m.isDuplicateTransfer(record))
}

func TestMatcher_UnparseableAmountAwardsNoPoint(t *testing.T) {
	// Description, date and id pair still match (3 points); a garbage
	// amount must not contribute the fourth.
	entry := rentEntry()
	entry.AccountName = "Other"
	entry.OpposingAccountName = "Another"

	record := rentRecord()
	record.Splits[0].Amount = "not-a-number"

	m := newTransferMatcher([]TransferSnapshotEntry{entry})
	assert.False(t, m.isDuplicateTransfer(record))
}

func TestMatcher_MultiSplitNeedsFourPerSplit(t *testing.T) {
	record := TransactionRecord{
		Type:        TypeTransfer,
		Description: "Split move",
		Date:        "2024-03-10",
		Splits: []SplitRecord{
			{Amount: "10.00", Description: "Leg one", SourceID: 3, DestinationID: 7, SourceName: "Checking", DestinationName: "Savings"},
			{Amount: "40.00", Description: "Leg two", SourceID: 8, DestinationID: 9, SourceName: "Holiday", DestinationName: "Savings EUR"},
		},
	}
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	legOne := TransferSnapshotEntry{
		JournalID:           901,
		Amount:              decimal.RequireFromString("10.00"),
		Description:         "Leg one",
		Date:                date,
		AccountID:           7,
		OpposingAccountID:   3,
		AccountName:         "Savings",
		OpposingAccountName: "Checking",
	}

	// One perfect entry covers the first split (5 points) and the shared
	// date adds 1 for the second: 6 of the 8 required.
	m := newTransferMatcher([]TransferSnapshotEntry{legOne})
	assert.False(t, m.isDuplicateTransfer(record))

	legTwo := TransferSnapshotEntry{
		JournalID:           902,
		Amount:              decimal.RequireFromString("40.00"),
		Description:         "Leg two",
		Date:                date,
		AccountID:           9,
		OpposingAccountID:   8,
		AccountName:         "Savings EUR",
		OpposingAccountName: "Holiday",
	}

	m = newTransferMatcher([]TransferSnapshotEntry{legOne, legTwo})
	assert.True(t, m.isDuplicateTransfer(record))
}
