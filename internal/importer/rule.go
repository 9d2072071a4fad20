package importer

import (
	"context"
	"sort"
)

// Rule is one user-defined rule eligible to run against freshly stored
// journals. Evaluation and actions live in the rule engine; the pipeline
// only needs identity, ordering and the stop flag.
type Rule struct {
	ID             int64
	Title          string
	GroupPriority  int
	Priority       int
	StopProcessing bool
}

// IRuleSource fetches the user's active rules triggered on journal
// storage.
//
//go:generate mockery --name IRuleSource --output mock_IRuleSource.go
type IRuleSource interface {
	ActiveStoreRules(ctx context.Context, userID int64) ([]Rule, error)
}

// IRuleProcessor runs one rule against one journal.
//
//go:generate mockery --name IRuleProcessor --output mock_IRuleProcessor.go
type IRuleProcessor interface {
	Apply(ctx context.Context, rule Rule, journalID int64) error
}

// sortRules orders rules by group priority, then rule priority. The sort
// is stable so rules sharing both priorities keep their fetched order.
func sortRules(rules []Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].GroupPriority != rules[j].GroupPriority {
			return rules[i].GroupPriority < rules[j].GroupPriority
		}
		return rules[i].Priority < rules[j].Priority
	})
}
