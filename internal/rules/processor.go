package rules

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-importer/internal/importer"
)

var _ importer.IRuleProcessor = (*Processor)(nil)

// Processor is the boundary to the rule engine.
type Processor struct {
	log *logrus.Logger
}

func NewProcessor(log *logrus.Logger) *Processor {
	return &Processor{log: log}
}

// Apply runs one rule against one stored journal.
// TODO: evaluate the rule's triggers and execute its actions once the
// action engine lands. Applying a rule currently only records that it
// fired.
func (p *Processor) Apply(ctx context.Context, rule importer.Rule, journalID int64) error {
	p.log.WithFields(logrus.Fields{
		"rule":    rule.Title,
		"journal": journalID,
	}).Info("Rules.Apply")
	return nil
}
