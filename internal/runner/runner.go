package runner

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-importer/internal/importer"
	"github.com/carson-networks/ledger-importer/internal/logging"
)

// Runner is the worker that processes import items from the queue.
type Runner struct {
	log   *logrus.Logger
	queue chan ImportItem
}

func NewRunner(log *logrus.Logger, queue chan ImportItem) *Runner {
	return &Runner{
		log:   log,
		queue: queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (r *Runner) Run() {
	for item := range r.queue {
		r.processItem(item)
	}
}

func (r *Runner) processItem(item ImportItem) {
	job := item.importer.Job()

	var result *importer.StoreResult
	err := logging.RunLogged("Runner.Import", r.log, func(logData *logging.LogData) error {
		logData.AddData("job", job.Key)
		logData.AddData("user", job.UserID)
		logData.AddData("records", len(item.batch))

		for index, record := range item.batch {
			if err := record.Validate(); err != nil {
				return fmt.Errorf("record %d: %w", index, err)
			}
		}

		stored, err := item.importer.Store(item.ctx, item.batch, item.cfg)
		if err != nil {
			return err
		}

		logData.AddData("committed", len(stored.Committed))
		logData.AddData("duplicates", len(stored.Duplicates))
		result = stored
		return nil
	})

	item.response <- ImportItemResponse{result: result, err: err}
}

type ImportItem struct {
	ctx      context.Context
	importer *importer.Importer
	batch    []importer.TransactionRecord
	cfg      importer.StoreConfig
	response chan ImportItemResponse
}

type ImportItemResponse struct {
	result *importer.StoreResult
	err    error
}
