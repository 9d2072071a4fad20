package importer

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date form used by import payloads. Record
// dates carry no time or zone component.
const DateLayout = "2006-01-02"

// TransactionType classifies a journal by the direction money moves.
type TransactionType string

const (
	TypeWithdrawal     TransactionType = "withdrawal"
	TypeDeposit        TransactionType = "deposit"
	TypeTransfer       TransactionType = "transfer"
	TypeOpeningBalance TransactionType = "opening-balance"
	TypeReconciliation TransactionType = "reconciliation"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeWithdrawal, TypeDeposit, TypeTransfer, TypeOpeningBalance, TypeReconciliation:
		return true
	}
	return false
}

// SplitRecord is one money movement inside a transaction record. Amounts
// travel as decimal strings so no precision is lost between the upstream
// converter and the ledger.
type SplitRecord struct {
	Amount          string `json:"amount"`
	Description     string `json:"description,omitempty"`
	SourceID        int64  `json:"source_id"`
	DestinationID   int64  `json:"destination_id"`
	SourceName      string `json:"source_name"`
	DestinationName string `json:"destination_name"`
}

// TransactionRecord is one normalized row of an import batch, produced by
// an upstream file converter.
type TransactionRecord struct {
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Splits      []SplitRecord   `json:"splits"`
}

// Validate checks the shape constraints the duplicate filter and the
// ledger store rely on. Converters are expected to hand over well-formed
// records; this catches the ones that slip through.
func (r TransactionRecord) Validate() error {
	if !r.Type.Valid() {
		return fmt.Errorf("unknown transaction type %q", string(r.Type))
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return fmt.Errorf("date %q is not a calendar date", r.Date)
	}
	if len(r.Splits) == 0 {
		return errors.New("record has no splits")
	}
	for i, split := range r.Splits {
		if _, err := decimal.NewFromString(split.Amount); err != nil {
			return fmt.Errorf("split %d: amount %q is not a decimal", i, split.Amount)
		}
	}
	return nil
}

// splitDescription returns the split's own description, falling back to
// the record description when the split carries none.
func (r TransactionRecord) splitDescription(split SplitRecord) string {
	if split.Description != "" {
		return split.Description
	}
	return r.Description
}
