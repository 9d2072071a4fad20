package importer

import "fmt"

// DuplicateReason says which detector skipped a record.
type DuplicateReason string

const (
	DuplicateExact         DuplicateReason = "exact"
	DuplicateFuzzyTransfer DuplicateReason = "fuzzy-transfer"
)

// DuplicateReport describes one batch record withheld from commit.
// Duplicates are expected input, not faults: reports reach the operator
// through the job's error-message sink while the batch keeps going.
type DuplicateReport struct {
	Index             int
	Reason            DuplicateReason
	ExistingJournalID int64 // only set for exact matches
	Description       string
	Amount            string
	Date              string
}

func newDuplicateReport(index int, record TransactionRecord, reason DuplicateReason, existingJournalID int64) DuplicateReport {
	report := DuplicateReport{
		Index:             index,
		Reason:            reason,
		ExistingJournalID: existingJournalID,
		Description:       record.Description,
		Date:              record.Date,
	}
	if len(record.Splits) > 0 {
		report.Amount = record.Splits[0].Amount
	}
	return report
}

// Message renders the report for the error-message sink. Rows are
// numbered from 1: the record at batch index 0 reports as row #1.
func (r DuplicateReport) Message() string {
	if r.Reason == DuplicateExact {
		return fmt.Sprintf("Row #%d (%q, %s, %s) was not imported: duplicate of journal #%d.",
			r.Index+1, r.Description, r.Amount, r.Date, r.ExistingJournalID)
	}
	return fmt.Sprintf("Row #%d (%q, %s, %s) was not imported: matches an existing transfer.",
		r.Index+1, r.Description, r.Amount, r.Date)
}
