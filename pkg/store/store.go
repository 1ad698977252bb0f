// Package store archives fitted figure layouts so the render service can
// hand them out again by ID.
//
// Backends:
//   - memory: In-memory storage for development/testing
//   - file: JSON files, for the CLI
//   - mongo: MongoDB, for multi-instance deployments
//
// Records expire. Get treats an expired record as missing and Cleanup
// removes expired records from backends that do not expire them on their
// own.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/framechart/pkg/errors"
	"github.com/matzehuels/framechart/pkg/figure"
)

// DefaultTTL is how long a layout record is kept.
const DefaultTTL = 7 * 24 * time.Hour

// Record is one archived layout.
type Record struct {
	ID           string        `json:"id" bson:"_id"`
	DocumentHash string        `json:"document_hash" bson:"document_hash"`
	Layout       figure.Layout `json:"layout" bson:"layout"`
	CreatedAt    time.Time     `json:"created_at" bson:"created_at"`
	ExpiresAt    time.Time     `json:"expires_at" bson:"expires_at"`
}

// IsExpired returns true if the record has expired.
func (r *Record) IsExpired() bool {
	return time.Now().After(r.ExpiresAt)
}

// NewRecord wraps a layout in a record with a fresh ID.
func NewRecord(docHash string, l figure.Layout, ttl time.Duration) *Record {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now().UTC()
	return &Record{
		ID:           uuid.NewString(),
		DocumentHash: docHash,
		Layout:       l,
		CreatedAt:    now,
		ExpiresAt:    now.Add(ttl),
	}
}

// Store is the interface for layout storage backends.
type Store interface {
	// Get retrieves a record by ID. Missing and expired records return a
	// NOT_FOUND error.
	Get(ctx context.Context, id string) (*Record, error)

	// Put stores a record, replacing any record with the same ID.
	Put(ctx context.Context, rec *Record) error

	// Delete removes a record. Missing records are not an error.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired records.
	Cleanup(ctx context.Context) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeNotFound, "layout %q not found", id)
}

// validID rejects IDs that could escape a file store's directory.
func validID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "invalid layout id %q", id)
	}
	return nil
}
