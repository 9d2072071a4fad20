package importer

import (
	"context"
	"fmt"
	"time"
)

// TagModeNothing is the tag mode used for import tags. The ledger
// supports balancing tag modes; import tags never balance anything.
const TagModeNothing = "nothing"

// Tag is a committed ledger tag.
type Tag struct {
	ID    int64
	Label string
}

// TagCreate is the input for creating a new tag.
type TagCreate struct {
	Label string
	Date  time.Time
	Mode  string
}

// ITagStore creates tags and links journals to them.
//
//go:generate mockery --name ITagStore --output mock_ITagStore.go
type ITagStore interface {
	Create(ctx context.Context, userID int64, create TagCreate) (*Tag, error)
	Link(ctx context.Context, journalID int64, tagID int64) error
}

// TagError reports the tagging stage failing. Journals committed before
// the failure stay committed; the batch still aborts because an import
// without its tag cannot be found or reverted as a unit.
type TagError struct {
	Label string
	Err   error
}

func (e *TagError) Error() string {
	return fmt.Sprintf("tagging import %q: %v", e.Label, e.Err)
}

func (e *TagError) Unwrap() error {
	return e.Err
}
