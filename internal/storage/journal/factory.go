package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-importer/internal/importer"
)

var _ importer.IJournalFactory = (*Factory)(nil)

// Factory commits records to the ledger on behalf of a single user.
// Journal, splits and fingerprint metadata land in one transaction so a
// failed commit leaves nothing behind.
type Factory struct {
	db     bob.DB
	userID int64
}

func (f *Factory) Commit(ctx context.Context, record importer.TransactionRecord) (int64, error) {
	date, err := time.Parse(importer.DateLayout, record.Date)
	if err != nil {
		return 0, fmt.Errorf("record date %q: %w", record.Date, err)
	}

	fingerprint, err := importer.ComputeFingerprint(record)
	if err != nil {
		return 0, err
	}

	tx, err := f.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	journalID, err := f.insertJournal(ctx, tx, record, date, fingerprint)
	if err != nil {
		_ = tx.Rollback(ctx)
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return journalID, nil
}

func (f *Factory) insertJournal(ctx context.Context, tx bob.Tx, record importer.TransactionRecord, date time.Time, fingerprint importer.Fingerprint) (int64, error) {
	q := psql.Insert(
		im.Into("journals", "user_id", "transaction_type", "description", "date"),
		im.Values(psql.Arg(f.userID, string(record.Type), record.Description, date)),
		im.Returning("id"),
	)

	journalID, err := bob.One(ctx, tx, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, fmt.Errorf("inserting journal: %w", err)
	}

	for i, split := range record.Splits {
		amount, err := decimal.NewFromString(split.Amount)
		if err != nil {
			return 0, fmt.Errorf("split %d: amount %q: %w", i, split.Amount, err)
		}

		splitInsert := psql.Insert(
			im.Into("splits", "journal_id", "amount", "description", "source_account_id", "destination_account_id"),
			im.Values(psql.Arg(journalID, amount, split.Description, split.SourceID, split.DestinationID)),
		)
		if _, err := bob.Exec(ctx, tx, splitInsert); err != nil {
			return 0, fmt.Errorf("inserting split %d: %w", i, err)
		}
	}

	metaInsert := psql.Insert(
		im.Into("journal_meta", "journal_id", "name", "value"),
		im.Values(psql.Arg(journalID, metaImportHash, string(fingerprint))),
	)
	if _, err := bob.Exec(ctx, tx, metaInsert); err != nil {
		return 0, fmt.Errorf("recording fingerprint: %w", err)
	}

	return journalID, nil
}
