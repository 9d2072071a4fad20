//go:build integration

package storage

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migrate_postgres "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	tc_postgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/carson-networks/ledger-importer/internal/importer"
	"github.com/carson-networks/ledger-importer/internal/rules"
)

// startPostgres brings up a disposable database, runs the repo
// migrations against it and returns a Storage wired to it.
func startPostgres(t *testing.T) *Storage {
	t.Helper()
	ctx := context.Background()

	container, err := tc_postgres.Run(ctx,
		"postgres:16-alpine",
		tc_postgres.WithDatabase("ledger"),
		tc_postgres.WithUsername("postgres"),
		tc_postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("starting postgres container: %v", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("container connection string: %v", err)
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}

	driver, err := migrate_postgres.WithInstance(db, &migrate_postgres.Config{})
	if err != nil {
		t.Fatalf("migrate driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://../../migrations", "postgres", driver)
	if err != nil {
		t.Fatalf("migrate instance: %v", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("running migrations: %v", err)
	}

	return NewStorageWithDB(db)
}

func TestImportPipelineAgainstPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}

	s := startPostgres(t)
	ctx := context.Background()

	log := logrus.New()
	log.Out = io.Discard
	processor := rules.NewProcessor(log)

	seed := func(t *testing.T, query string, args ...any) {
		t.Helper()
		if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
			t.Fatalf("seeding fixture: %v", err)
		}
	}

	seed(t, `INSERT INTO accounts (id, user_id, name) VALUES (1, 1, 'Checking'), (2, 1, 'Savings'), (3, 1, 'Groceries')`)

	batch := []importer.TransactionRecord{
		{
			Type:        importer.TypeWithdrawal,
			Description: "Weekly groceries",
			Date:        "2024-05-10",
			Splits: []importer.SplitRecord{{
				Amount:          "42.50",
				SourceID:        1,
				DestinationID:   3,
				SourceName:      "Checking",
				DestinationName: "Groceries",
			}},
		},
		{
			Type:        importer.TypeTransfer,
			Description: "Monthly savings",
			Date:        "2024-05-10",
			Splits: []importer.SplitRecord{{
				Amount:          "75.00",
				SourceID:        1,
				DestinationID:   2,
				SourceName:      "Checking",
				DestinationName: "Savings",
			}},
		},
	}

	runBatch := func(t *testing.T, records []importer.TransactionRecord, cfg importer.StoreConfig) (importer.ImportJob, *importer.StoreResult, error) {
		t.Helper()
		job, err := s.Jobs.Create(ctx, importer.NewImportJob(1))
		if err != nil {
			t.Fatalf("creating job: %v", err)
		}
		imp := importer.NewImporter(job, s.ImportCollaborators(1, processor), log)
		result, err := imp.Store(ctx, records, cfg)
		return job, result, err
	}

	jobStatus := func(t *testing.T, job importer.ImportJob) string {
		t.Helper()
		var status string
		if err := s.DB.QueryRowContext(ctx, `SELECT status FROM import_jobs WHERE id = $1`, job.ID).Scan(&status); err != nil {
			t.Fatalf("reading job status: %v", err)
		}
		return status
	}

	countJournals := func(t *testing.T) int {
		t.Helper()
		var n int
		if err := s.DB.QueryRowContext(ctx, `SELECT count(*) FROM journals WHERE user_id = 1`).Scan(&n); err != nil {
			t.Fatalf("counting journals: %v", err)
		}
		return n
	}

	t.Run("fresh batch commits, tags and fingerprints", func(t *testing.T) {
		job, result, err := runBatch(t, batch, importer.StoreConfig{})

		assert.NoError(t, err)
		assert.Len(t, result.Committed, 2)
		assert.Empty(t, result.Duplicates)
		assert.Equal(t, string(importer.StatusLinkedToTag), jobStatus(t, job))
		assert.Equal(t, 2, countJournals(t))

		var tagID int64
		err = s.DB.QueryRowContext(ctx, `SELECT id FROM tags WHERE label = $1`, "import-"+job.Key).Scan(&tagID)
		assert.NoError(t, err)

		var linked int
		err = s.DB.QueryRowContext(ctx, `SELECT count(*) FROM tag_journal WHERE tag_id = $1`, tagID).Scan(&linked)
		assert.NoError(t, err)
		assert.Equal(t, 2, linked)

		var fingerprints int
		err = s.DB.QueryRowContext(ctx, `SELECT count(*) FROM journal_meta WHERE name = 'import_hash_v2'`).Scan(&fingerprints)
		assert.NoError(t, err)
		assert.Equal(t, 2, fingerprints)
	})

	t.Run("identical batch is fully withheld", func(t *testing.T) {
		job, result, err := runBatch(t, batch, importer.StoreConfig{})

		assert.NoError(t, err)
		assert.Empty(t, result.Committed)
		assert.Len(t, result.Duplicates, 2)
		assert.Equal(t, string(importer.StatusStoredData), jobStatus(t, job))
		assert.Equal(t, 2, countJournals(t), "nothing new was stored")

		rows, err := s.DB.QueryContext(ctx, `SELECT message FROM import_job_errors WHERE import_job_id = $1 ORDER BY id`, job.ID)
		assert.NoError(t, err)
		defer rows.Close()

		var messages []string
		for rows.Next() {
			var message string
			assert.NoError(t, rows.Scan(&message))
			messages = append(messages, message)
		}
		assert.NoError(t, rows.Err())

		assert.Len(t, messages, 2)
		assert.Contains(t, messages[0], "Row #1")
		assert.Contains(t, messages[0], "duplicate of journal #")
		assert.Contains(t, messages[1], "Row #2")
	})

	t.Run("reworded transfer is caught by fuzzy matching", func(t *testing.T) {
		reworded := []importer.TransactionRecord{{
			Type:        importer.TypeTransfer,
			Description: "Funds moved to savings",
			Date:        "2024-05-10",
			Splits: []importer.SplitRecord{{
				Amount:          "75.00",
				SourceID:        1,
				DestinationID:   2,
				SourceName:      "Checking",
				DestinationName: "Savings",
			}},
		}}

		_, result, err := runBatch(t, reworded, importer.StoreConfig{})

		assert.NoError(t, err)
		assert.Empty(t, result.Committed)
		assert.Len(t, result.Duplicates, 1)
		assert.Equal(t, importer.DuplicateFuzzyTransfer, result.Duplicates[0].Reason)
		assert.Equal(t, 2, countJournals(t))
	})

	t.Run("store rules fetch and apply", func(t *testing.T) {
		seed(t, `INSERT INTO rule_groups (id, user_id, title, priority, active) VALUES (1, 1, 'Imports', 1, TRUE)`)
		seed(t, `INSERT INTO rules (rule_group_id, title, "trigger", priority, stop_processing, active)
		      VALUES (1, 'tag groceries', 'store-journal', 1, FALSE, TRUE),
		             (1, 'ignored trigger', 'update-journal', 1, FALSE, TRUE)`)

		fetched, err := s.Rules.ActiveStoreRules(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, fetched, 1, "only store-journal rules fire on import")
		assert.Equal(t, "tag groceries", fetched[0].Title)

		fresh := []importer.TransactionRecord{{
			Type:        importer.TypeDeposit,
			Description: "Paycheck",
			Date:        "2024-05-25",
			Splits: []importer.SplitRecord{{
				Amount:          "1800.00",
				SourceID:        9,
				DestinationID:   1,
				SourceName:      "Employer",
				DestinationName: "Checking",
			}},
		}}

		job, result, err := runBatch(t, fresh, importer.StoreConfig{ApplyRules: true})

		assert.NoError(t, err)
		assert.Len(t, result.Committed, 1)
		assert.Equal(t, string(importer.StatusRulesApplied), jobStatus(t, job))
		assert.Equal(t, 3, countJournals(t))
	})
}
