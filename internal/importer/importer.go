package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Collaborators bundles the external stores the pipeline drives. All of
// them are injected at construction; the importer resolves nothing from
// globals.
type Collaborators struct {
	Journals  IJournalFactory
	Index     IFingerprintIndex
	Transfers ITransferSource
	Tags      ITagStore
	Rules     IRuleSource
	Processor IRuleProcessor
	Status    IJobStatusSink
}

// CommitResult lists committed journal IDs in commit order. Skipped
// records leave no gaps.
type CommitResult []int64

// StoreResult is the outcome of one Store call: what was committed and
// what was withheld as a duplicate.
type StoreResult struct {
	Committed  CommitResult
	Duplicates []DuplicateReport
}

// Importer runs the dedup-and-commit pipeline for one import job. An
// importer serves exactly one job; build a new one per job.
type Importer struct {
	job  ImportJob
	deps Collaborators
	log  *logrus.Logger
}

// NewImporter creates an importer for the given job.
func NewImporter(job ImportJob, deps Collaborators, log *logrus.Logger) *Importer {
	return &Importer{job: job, deps: deps, log: log}
}

// Job returns the import job this importer was built for.
func (i *Importer) Job() ImportJob {
	return i.job
}

// Store takes the batch through the full pipeline: duplicate filtering,
// ledger commit, tagging, and rule application when the config asks for
// it. Store is called once per job and is not resumable.
//
// Records withheld as duplicates are reported through the job's error
// sink and never abort the batch. Every other failure does abort it:
// encoding failures, fingerprint lookups, rejected commits and tag
// creation all return an error and no partial result. Journals committed
// before a late-stage failure stay committed.
func (i *Importer) Store(ctx context.Context, batch []TransactionRecord, cfg StoreConfig) (*StoreResult, error) {
	if err := i.setStatus(ctx, StatusStoringData); err != nil {
		return nil, err
	}

	survivors, duplicates, err := i.filterDuplicates(ctx, batch)
	if err != nil {
		return nil, err
	}
	for _, report := range duplicates {
		if err := i.deps.Status.AddErrorMessage(ctx, i.job, report.Message()); err != nil {
			return nil, fmt.Errorf("recording duplicate message: %w", err)
		}
	}

	result := &StoreResult{Duplicates: duplicates}
	for _, s := range survivors {
		journalID, err := i.deps.Journals.Commit(ctx, s.record)
		if err != nil {
			return nil, &CommitError{Index: s.index, Err: err}
		}
		result.Committed = append(result.Committed, journalID)
	}

	if err := i.setStatus(ctx, StatusStoredData); err != nil {
		return nil, err
	}

	if len(result.Committed) == 0 {
		return result, nil
	}

	if err := i.tagCommitted(ctx, result.Committed); err != nil {
		return nil, err
	}

	if cfg.ApplyRules {
		if err := i.applyRules(ctx, result.Committed); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// survivor keeps a record paired with its original batch index so commit
// failures can name the offending row.
type survivor struct {
	index  int
	record TransactionRecord
}

// filterDuplicates walks the batch in order and drops records the ledger
// has already seen: first by exact fingerprint, then, for transfers, by
// fuzzy comparison against the user's existing transfers. The transfer
// snapshot is only loaded when the batch actually contains transfers.
func (i *Importer) filterDuplicates(ctx context.Context, batch []TransactionRecord) ([]survivor, []DuplicateReport, error) {
	matcher, err := i.loadMatcher(ctx, batch)
	if err != nil {
		return nil, nil, err
	}

	var (
		survivors  []survivor
		duplicates []DuplicateReport
	)
	for index, record := range batch {
		fingerprint, err := ComputeFingerprint(record)
		if err != nil {
			return nil, nil, fmt.Errorf("record %d: %w", index, err)
		}

		existingID, found, err := i.deps.Index.Lookup(ctx, fingerprint, i.job.UserID)
		if err != nil {
			return nil, nil, fmt.Errorf("fingerprint lookup for record %d: %w", index, err)
		}
		if found {
			duplicates = append(duplicates, newDuplicateReport(index, record, DuplicateExact, existingID))
			continue
		}

		if matcher != nil && matcher.isDuplicateTransfer(record) {
			duplicates = append(duplicates, newDuplicateReport(index, record, DuplicateFuzzyTransfer, 0))
			continue
		}

		survivors = append(survivors, survivor{index: index, record: record})
	}

	return survivors, duplicates, nil
}

// loadMatcher builds the fuzzy matcher when the batch holds at least one
// transfer. Batches without transfers skip the snapshot load entirely.
func (i *Importer) loadMatcher(ctx context.Context, batch []TransactionRecord) (*transferMatcher, error) {
	transfers := 0
	for _, record := range batch {
		if record.Type == TypeTransfer {
			transfers++
		}
	}
	if transfers == 0 {
		return nil, nil
	}

	snapshot, err := i.deps.Transfers.LoadTransfers(ctx, i.job.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading transfer snapshot: %w", err)
	}
	return newTransferMatcher(snapshot), nil
}

// tagCommitted creates the job's tag and links every committed journal to
// it. Tagging is part of the commit contract, so any failure here is
// fatal for the call.
func (i *Importer) tagCommitted(ctx context.Context, committed CommitResult) error {
	if err := i.setStatus(ctx, StatusLinkingToTag); err != nil {
		return err
	}

	label := "import-" + i.job.Key
	tag, err := i.deps.Tags.Create(ctx, i.job.UserID, TagCreate{
		Label: label,
		Date:  time.Now(),
		Mode:  TagModeNothing,
	})
	if err != nil {
		return &TagError{Label: label, Err: err}
	}

	for _, journalID := range committed {
		if err := i.deps.Tags.Link(ctx, journalID, tag.ID); err != nil {
			return &TagError{Label: tag.Label, Err: fmt.Errorf("linking journal %d: %w", journalID, err)}
		}
	}

	return i.setStatus(ctx, StatusLinkedToTag)
}

// applyRules runs the user's store-triggered rules over each committed
// journal in commit order. A rule failure never unwinds the commit: the
// journal stays stored, the failure is logged and reported, and the rest
// of that journal's rules are skipped.
func (i *Importer) applyRules(ctx context.Context, committed CommitResult) error {
	if err := i.setStatus(ctx, StatusApplyingRules); err != nil {
		return err
	}

	rules, err := i.deps.Rules.ActiveStoreRules(ctx, i.job.UserID)
	if err != nil {
		return fmt.Errorf("fetching store rules: %w", err)
	}
	sortRules(rules)

	for _, journalID := range committed {
		for _, rule := range rules {
			if err := i.deps.Processor.Apply(ctx, rule, journalID); err != nil {
				i.log.WithError(err).WithFields(logrus.Fields{
					"job":     i.job.Key,
					"rule":    rule.Title,
					"journal": journalID,
				}).Error("Importer.ApplyRules.RuleFailed")

				message := fmt.Sprintf("Rule %q could not be applied to journal #%d: %v.", rule.Title, journalID, err)
				if err := i.deps.Status.AddErrorMessage(ctx, i.job, message); err != nil {
					return fmt.Errorf("recording rule failure message: %w", err)
				}
				break
			}
			if rule.StopProcessing {
				break
			}
		}
	}

	return i.setStatus(ctx, StatusRulesApplied)
}

func (i *Importer) setStatus(ctx context.Context, status BatchStatus) error {
	if err := i.deps.Status.SetStatus(ctx, i.job, status); err != nil {
		return fmt.Errorf("setting job status to %s: %w", status, err)
	}
	i.log.WithFields(logrus.Fields{
		"job":    i.job.Key,
		"status": status,
	}).Debug("Importer.Store.Status")
	return nil
}
