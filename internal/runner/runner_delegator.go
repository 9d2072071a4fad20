package runner

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-importer/internal/importer"
)

// RunnerDelegator manages the queue, starts/stops Runners (workers), and enqueues items.
type RunnerDelegator struct {
	log        *logrus.Logger
	queue      chan ImportItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

func NewRunnerDelegator(log *logrus.Logger, numWorkers int) *RunnerDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &RunnerDelegator{
		log:        log,
		queue:      make(chan ImportItem, 1000),
		numWorkers: numWorkers,
	}
}

func (d *RunnerDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		r := NewRunner(d.log, d.queue)
		go func() {
			defer d.wg.Done()
			r.Run()
		}()
	}
}

func (d *RunnerDelegator) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}

// Process enqueues one batch for the given importer and blocks until a
// worker has finished it or the context is done.
func (d *RunnerDelegator) Process(ctx context.Context, imp *importer.Importer, batch []importer.TransactionRecord, cfg importer.StoreConfig) (*importer.StoreResult, error) {
	respCh := make(chan ImportItemResponse, 1)
	item := ImportItem{
		ctx:      ctx,
		importer: imp,
		batch:    batch,
		cfg:      cfg,
		response: respCh,
	}

	d.queue <- item

	select {
	case resp := <-respCh:
		return resp.result, resp.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
