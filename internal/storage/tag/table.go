package tag

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-importer/internal/importer"
)

var _ importer.ITagStore = (*Table)(nil)

// Table creates tags and links journals to them.
type Table struct {
	db bob.DB
}

func NewTable(db *sql.DB) *Table {
	return &Table{db: bob.NewDB(db)}
}

func (t *Table) Create(ctx context.Context, userID int64, create importer.TagCreate) (*importer.Tag, error) {
	q := psql.Insert(
		im.Into("tags", "user_id", "label", "date", "mode"),
		im.Values(psql.Arg(userID, create.Label, create.Date, create.Mode)),
		im.Returning("id"),
	)

	tagID, err := bob.One(ctx, t.db, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return nil, err
	}

	return &importer.Tag{ID: tagID, Label: create.Label}, nil
}

func (t *Table) Link(ctx context.Context, journalID int64, tagID int64) error {
	q := psql.Insert(
		im.Into("tag_journal", "tag_id", "journal_id"),
		im.Values(psql.Arg(tagID, journalID)),
	)

	_, err := bob.Exec(ctx, t.db, q)
	return err
}
