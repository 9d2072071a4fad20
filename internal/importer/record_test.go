package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*TransactionRecord)
		wantErr string
	}{
		{
			name:   "valid withdrawal",
			mutate: func(r *TransactionRecord) {},
		},
		{
			name:    "unknown type",
			mutate:  func(r *TransactionRecord) { r.Type = "wire" },
			wantErr: "unknown transaction type",
		},
		{
			name:    "date with time component",
			mutate:  func(r *TransactionRecord) { r.Date = "2024-01-01T10:00:00Z" },
			wantErr: "not a calendar date",
		},
		{
			name:    "american date format",
			mutate:  func(r *TransactionRecord) { r.Date = "01/02/2024" },
			wantErr: "not a calendar date",
		},
		{
			name:    "no splits",
			mutate:  func(r *TransactionRecord) { r.Splits = nil },
			wantErr: "no splits",
		},
		{
			name:    "unparseable amount",
			mutate:  func(r *TransactionRecord) { r.Splits[0].Amount = "ten euro" },
			wantErr: "not a decimal",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := coffeeRecord()
			tc.mutate(&record)

			err := record.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidate_AcceptsAllKnownTypes(t *testing.T) {
	for _, typ := range []TransactionType{TypeWithdrawal, TypeDeposit, TypeTransfer, TypeOpeningBalance, TypeReconciliation} {
		record := coffeeRecord()
		record.Type = typ
		assert.NoError(t, record.Validate(), "type %s", typ)
	}
}
