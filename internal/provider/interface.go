package provider

import (
	"context"

	"tierlist/internal/models"
)

// Variant names a persistence backend kind.
type Variant string

const (
	VariantLocal    Variant = "local"
	VariantRemote   Variant = "remote"
	VariantRealtime Variant = "realtime-sync"
)

// StorageInfo describes a provider's backing store and capabilities.
type StorageInfo struct {
	Variant          Variant `json:"variant"`
	Available        bool    `json:"available"`
	UsedBytes        int64   `json:"used_bytes"`
	TotalBytes       int64   `json:"total_bytes"`
	SupportsRealtime bool    `json:"supports_realtime"`
	SupportsSync     bool    `json:"supports_sync"`
	SupportsBackup   bool    `json:"supports_backup"`
}

// Provider abstracts document persistence. Every method may block on the
// backing medium; callers treat each call as a suspension point and must
// not assume ordering between concurrent calls. Concurrent writes to the
// same document are last-writer-wins at whole-document granularity.
type Provider interface {
	// Save upserts the document, setting UpdatedAt to now. Fails with
	// ErrCapacityExceeded when the post-write store size would exceed the
	// configured capacity, or ErrUnavailable when the medium is unreachable.
	Save(ctx context.Context, doc *models.TierList) error
	// Load returns the stored document, or nil when no document with that
	// id exists. Absence is not an error.
	Load(ctx context.Context, id string) (*models.TierList, error)
	// List returns summaries for all stored documents, newest-updated first.
	List(ctx context.Context) ([]models.Summary, error)
	// Delete removes the document if present; a no-op when absent.
	Delete(ctx context.Context, id string) error
	// SaveMany upserts all documents in one write. Partial failure policy
	// is variant-defined and documented by the implementation.
	SaveMany(ctx context.Context, docs []*models.TierList) error
	// LoadMany returns the documents for the given ids; absent ids are
	// skipped, not errors.
	LoadMany(ctx context.Context, ids []string) ([]*models.TierList, error)
	// Export returns the full store as a transportable string.
	Export(ctx context.Context) (string, error)
	// Import validates and migrates data, then replaces the store contents
	// entirely. Fails with ErrImport on malformed input; never merges.
	Import(ctx context.Context, data string) error
	// StorageInfo reports backend kind, availability, and usage.
	StorageInfo(ctx context.Context) (StorageInfo, error)
	// Close releases resources held by the provider.
	Close() error
}

// ChangeKind names an externally observed store change.
type ChangeKind string

const (
	ChangeCreated ChangeKind = "created"
	ChangeUpdated ChangeKind = "updated"
	ChangeDeleted ChangeKind = "deleted"
)

// Change describes one externally observed document change. Document is
// nil for deletions.
type Change struct {
	Kind       ChangeKind
	DocumentID string
	Document   *models.TierList
}

// Watcher is the live-update capability. Variants that cannot observe
// external changes simply do not implement it; callers type-assert.
type Watcher interface {
	// Watch invokes fn for every externally observed change until the
	// returned cancel function is called.
	Watch(ctx context.Context, fn func(Change)) (cancel func(), err error)
}
