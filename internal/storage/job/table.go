package job

import (
	"context"
	"database/sql"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/ledger-importer/internal/importer"
)

var _ importer.IJobStatusSink = (*Table)(nil)

// Table persists import jobs, their status transitions and the messages
// surfaced to the user.
type Table struct {
	db bob.DB
}

func NewTable(db *sql.DB) *Table {
	return &Table{db: bob.NewDB(db)}
}

// Create persists a new import job row and returns the job with its ID
// set.
func (t *Table) Create(ctx context.Context, job importer.ImportJob) (importer.ImportJob, error) {
	q := psql.Insert(
		im.Into("import_jobs", "user_id", "key", "status"),
		im.Values(psql.Arg(job.UserID, job.Key, string(importer.StatusNew))),
		im.Returning("id"),
	)

	id, err := bob.One(ctx, t.db, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return importer.ImportJob{}, err
	}

	job.ID = id
	return job, nil
}

func (t *Table) SetStatus(ctx context.Context, job importer.ImportJob, status importer.BatchStatus) error {
	q := psql.Update(
		um.Table("import_jobs"),
		um.SetCol("status").ToArg(string(status)),
		um.SetCol("updated_at").ToArg(time.Now()),
		um.Where(psql.Quote("id").EQ(psql.Arg(job.ID))),
	)

	_, err := bob.Exec(ctx, t.db, q)
	return err
}

func (t *Table) AddErrorMessage(ctx context.Context, job importer.ImportJob, message string) error {
	q := psql.Insert(
		im.Into("import_job_errors", "import_job_id", "message"),
		im.Values(psql.Arg(job.ID, message)),
	)

	_, err := bob.Exec(ctx, t.db, q)
	return err
}
