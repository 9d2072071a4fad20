package main

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-importer/internal/config"
	"github.com/carson-networks/ledger-importer/internal/importer"
	"github.com/carson-networks/ledger-importer/internal/logging"
	"github.com/carson-networks/ledger-importer/internal/rules"
	"github.com/carson-networks/ledger-importer/internal/runner"
	"github.com/carson-networks/ledger-importer/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("ledger-importer starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	if len(os.Args) < 2 {
		logrus.Fatal("usage: ledger-importer <batch.json> [batch.json ...]")
		return
	}

	dbStorage := storage.NewStorage(envConfig)
	processor := rules.NewProcessor(logger)

	delegator := runner.NewRunnerDelegator(logger, envConfig.ImportWorkers)
	delegator.Start()

	ctx := context.Background()
	cfg := importer.StoreConfig{ApplyRules: envConfig.ImportApplyRules}

	wg := sync.WaitGroup{}
	for _, path := range os.Args[1:] {
		wg.Add(1)

		go func(path string) {
			defer wg.Done()

			batch, err := readBatch(path)
			if err != nil {
				logger.WithError(err).WithField("file", path).Error("Main.ReadBatch")
				return
			}

			job, err := dbStorage.Jobs.Create(ctx, importer.NewImportJob(envConfig.ImportUserID))
			if err != nil {
				logger.WithError(err).WithField("file", path).Error("Main.CreateJob")
				return
			}

			imp := importer.NewImporter(job, dbStorage.ImportCollaborators(job.UserID, processor), logger)
			result, err := delegator.Process(ctx, imp, batch, cfg)
			if err != nil {
				logger.WithError(err).WithFields(logrus.Fields{
					"file": path,
					"job":  job.Key,
				}).Error("Main.Import")
				return
			}

			logger.WithFields(logrus.Fields{
				"file":       path,
				"job":        job.Key,
				"committed":  len(result.Committed),
				"duplicates": len(result.Duplicates),
			}).Info("Main.ImportComplete")
		}(path)
	}

	wg.Wait()
	delegator.Stop()
}

func readBatch(path string) ([]importer.TransactionRecord, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var batch []importer.TransactionRecord
	if err := json.Unmarshal(contents, &batch); err != nil {
		return nil, err
	}
	return batch, nil
}
