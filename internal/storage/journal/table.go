package journal

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-importer/internal/importer"
)

// metaImportHash is the journal_meta name under which a committed
// record's content fingerprint is stored. Renaming it orphans every
// fingerprint recorded so far.
const metaImportHash = "import_hash_v2"

var (
	_ importer.IFingerprintIndex = (*Table)(nil)
	_ importer.ITransferSource   = (*Table)(nil)
)

// Table reads and writes journals, their splits and their import
// metadata.
type Table struct {
	db bob.DB
}

func NewTable(db *sql.DB) *Table {
	return &Table{db: bob.NewDB(db)}
}

// Factory returns a journal factory committing on behalf of one user.
func (t *Table) Factory(userID int64) *Factory {
	return &Factory{db: t.db, userID: userID}
}

// Lookup finds the journal that previously recorded the given content
// fingerprint for this user.
func (t *Table) Lookup(ctx context.Context, fingerprint importer.Fingerprint, userID int64) (int64, bool, error) {
	q := psql.Select(
		sm.Columns("journal_meta.journal_id"),
		sm.From("journal_meta"),
		sm.InnerJoin("journals").On(psql.Quote("journals", "id").EQ(psql.Quote("journal_meta", "journal_id"))),
		sm.Where(psql.Quote("journal_meta", "name").EQ(psql.Arg(metaImportHash))),
		sm.Where(psql.Quote("journal_meta", "value").EQ(psql.Arg(string(fingerprint)))),
		sm.Where(psql.Quote("journals", "user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("journal_meta.journal_id").Asc(),
		sm.Limit(1),
	)

	journalID, err := bob.One(ctx, t.db, q, scan.SingleColumnMapper[int64])
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return journalID, true, nil
}

type transferRow struct {
	JournalID            int64           `db:"journal_id"`
	JournalDescription   string          `db:"journal_description"`
	Date                 time.Time       `db:"journal_date"`
	Amount               decimal.Decimal `db:"amount"`
	SplitDescription     string          `db:"split_description"`
	SourceAccountID      int64           `db:"source_account_id"`
	DestinationAccountID int64           `db:"destination_account_id"`
}

type accountRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// LoadTransfers returns every leg of the user's transfer journals with
// the opposing account resolved. Each split yields two entries, one per
// orientation, the way either account would see the movement.
func (t *Table) LoadTransfers(ctx context.Context, userID int64) ([]importer.TransferSnapshotEntry, error) {
	names, err := t.accountNames(ctx, userID)
	if err != nil {
		return nil, err
	}

	q := psql.Select(
		sm.Columns(
			"journals.id AS journal_id",
			"journals.description AS journal_description",
			"journals.date AS journal_date",
			"splits.amount AS amount",
			"splits.description AS split_description",
			"splits.source_account_id AS source_account_id",
			"splits.destination_account_id AS destination_account_id",
		),
		sm.From("splits"),
		sm.InnerJoin("journals").On(psql.Quote("journals", "id").EQ(psql.Quote("splits", "journal_id"))),
		sm.Where(psql.Quote("journals", "user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("journals", "transaction_type").EQ(psql.Arg(string(importer.TypeTransfer)))),
		sm.OrderBy("journals.id").Asc(),
		sm.OrderBy("splits.id").Asc(),
	)

	rows, err := bob.All(ctx, t.db, q, scan.StructMapper[transferRow]())
	if err != nil {
		return nil, err
	}

	entries := make([]importer.TransferSnapshotEntry, 0, len(rows)*2)
	for _, row := range rows {
		description := row.SplitDescription
		if description == "" {
			description = row.JournalDescription
		}
		amount := row.Amount.Abs()

		entries = append(entries,
			importer.TransferSnapshotEntry{
				JournalID:           row.JournalID,
				Amount:              amount,
				Description:         description,
				Date:                row.Date,
				AccountID:           row.SourceAccountID,
				OpposingAccountID:   row.DestinationAccountID,
				AccountName:         names[row.SourceAccountID],
				OpposingAccountName: names[row.DestinationAccountID],
			},
			importer.TransferSnapshotEntry{
				JournalID:           row.JournalID,
				Amount:              amount,
				Description:         description,
				Date:                row.Date,
				AccountID:           row.DestinationAccountID,
				OpposingAccountID:   row.SourceAccountID,
				AccountName:         names[row.DestinationAccountID],
				OpposingAccountName: names[row.SourceAccountID],
			},
		)
	}

	return entries, nil
}

func (t *Table) accountNames(ctx context.Context, userID int64) (map[int64]string, error) {
	q := psql.Select(
		sm.Columns("id", "name"),
		sm.From("accounts"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	rows, err := bob.All(ctx, t.db, q, scan.StructMapper[accountRow]())
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(rows))
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}
