package rule

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-importer/internal/importer"
)

// triggerStoreJournal marks rules that fire when a journal is stored.
const triggerStoreJournal = "store-journal"

var _ importer.IRuleSource = (*Table)(nil)

// Table reads rules and their groups.
type Table struct {
	db bob.DB
}

func NewTable(db *sql.DB) *Table {
	return &Table{db: bob.NewDB(db)}
}

type ruleRow struct {
	ID             int64  `db:"id"`
	Title          string `db:"title"`
	GroupPriority  int    `db:"group_priority"`
	Priority       int    `db:"priority"`
	StopProcessing bool   `db:"stop_processing"`
}

// ActiveStoreRules returns the user's active store-journal rules in
// active groups, ordered by group priority and then rule priority.
func (t *Table) ActiveStoreRules(ctx context.Context, userID int64) ([]importer.Rule, error) {
	q := psql.Select(
		sm.Columns(
			"rules.id AS id",
			"rules.title AS title",
			"rule_groups.priority AS group_priority",
			"rules.priority AS priority",
			"rules.stop_processing AS stop_processing",
		),
		sm.From("rules"),
		sm.InnerJoin("rule_groups").On(psql.Quote("rule_groups", "id").EQ(psql.Quote("rules", "rule_group_id"))),
		sm.Where(psql.Quote("rule_groups", "user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("rule_groups", "active").EQ(psql.Arg(true))),
		sm.Where(psql.Quote("rules", "active").EQ(psql.Arg(true))),
		sm.Where(psql.Quote("rules", "trigger").EQ(psql.Arg(triggerStoreJournal))),
		sm.OrderBy("rule_groups.priority").Asc(),
		sm.OrderBy("rules.priority").Asc(),
	)

	rows, err := bob.All(ctx, t.db, q, scan.StructMapper[ruleRow]())
	if err != nil {
		return nil, err
	}

	rules := make([]importer.Rule, len(rows))
	for i, row := range rows {
		rules[i] = importer.Rule{
			ID:             row.ID,
			Title:          row.Title,
			GroupPriority:  row.GroupPriority,
			Priority:       row.Priority,
			StopProcessing: row.StopProcessing,
		}
	}
	return rules, nil
}
