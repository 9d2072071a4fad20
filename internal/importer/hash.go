package importer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEncoding reports a record that could not be serialized for
// fingerprinting. The batch cannot proceed past such a record because its
// identity is undecidable.
var ErrEncoding = errors.New("record cannot be encoded for fingerprinting")

// Fingerprint is the hex digest that identifies a record's content for
// exact-duplicate detection. Equal fingerprints mean byte-equal canonical
// encodings.
type Fingerprint string

// ComputeFingerprint derives the content fingerprint of a record: the
// SHA-256 of its canonical JSON encoding. Splits contribute in order, so
// reordering splits yields a different fingerprint.
func ComputeFingerprint(record TransactionRecord) (Fingerprint, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	digest := sha256.Sum256(payload)
	return Fingerprint(hex.EncodeToString(digest[:])), nil
}

// IFingerprintIndex answers whether a fingerprint has been committed
// before for a given user, and by which journal.
//
//go:generate mockery --name IFingerprintIndex --output mock_IFingerprintIndex.go
type IFingerprintIndex interface {
	Lookup(ctx context.Context, fingerprint Fingerprint, userID int64) (int64, bool, error)
}
