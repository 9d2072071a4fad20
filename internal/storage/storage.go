package storage

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"

	"github.com/carson-networks/ledger-importer/internal/config"
	"github.com/carson-networks/ledger-importer/internal/importer"
	"github.com/carson-networks/ledger-importer/internal/storage/job"
	"github.com/carson-networks/ledger-importer/internal/storage/journal"
	"github.com/carson-networks/ledger-importer/internal/storage/rule"
	"github.com/carson-networks/ledger-importer/internal/storage/tag"
)

type Storage struct {
	DB       *sql.DB
	Journals *journal.Table
	Tags     *tag.Table
	Rules    *rule.Table
	Jobs     *job.Table
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	return NewStorageWithDB(db)
}

func NewStorageWithDB(db *sql.DB) *Storage {
	return &Storage{
		DB:       db,
		Journals: journal.NewTable(db),
		Tags:     tag.NewTable(db),
		Rules:    rule.NewTable(db),
		Jobs:     job.NewTable(db),
	}
}

// ImportCollaborators assembles the importer-facing view of storage for
// one user's job, with the given rule processor plugged in.
func (s *Storage) ImportCollaborators(userID int64, processor importer.IRuleProcessor) importer.Collaborators {
	return importer.Collaborators{
		Journals:  s.Journals.Factory(userID),
		Index:     s.Journals,
		Transfers: s.Journals,
		Tags:      s.Tags,
		Rules:     s.Rules,
		Processor: processor,
		Status:    s.Jobs,
	}
}
