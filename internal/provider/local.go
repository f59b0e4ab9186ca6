package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"tierlist/internal/kv"
	"tierlist/internal/models"
)

const (
	DefaultStorageKey = "tierlist:store"
	DefaultVersionKey = "tierlist:schema-version"
	DefaultMaxBytes   = 5 * 1024 * 1024
)

// LocalConfig configures the local provider. Zero fields fall back to the
// package defaults.
type LocalConfig struct {
	StorageKey string
	VersionKey string
	MaxBytes   int64
}

// Local persists the whole store blob under a single key of a kv.Medium.
// Every mutation is a full read-migrate-mutate-write cycle with no
// cross-call locking, so concurrent writes to the same document are
// last-writer-wins. Batch saves are all-or-nothing: one write carries
// every document, and a quota failure persists none of them.
type Local struct {
	medium     kv.Medium
	storageKey string
	versionKey string
	maxBytes   int64
}

// NewLocal creates a local provider over the given medium.
func NewLocal(medium kv.Medium, cfg LocalConfig) *Local {
	if cfg.StorageKey == "" {
		cfg.StorageKey = DefaultStorageKey
	}
	if cfg.VersionKey == "" {
		cfg.VersionKey = DefaultVersionKey
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	return &Local{
		medium:     medium,
		storageKey: cfg.StorageKey,
		versionKey: cfg.VersionKey,
		maxBytes:   cfg.MaxBytes,
	}
}

// Save upserts the document, setting UpdatedAt to now.
func (p *Local) Save(ctx context.Context, doc *models.TierList) error {
	if doc == nil || doc.ID == "" {
		return fmt.Errorf("%w: document with an id is required", ErrInvalidArgument)
	}
	doc.UpdatedAt = time.Now().UTC()
	return p.mutate(ctx, func(blob *models.StoreBlob) {
		blob.TierLists[doc.ID] = doc.Clone()
	})
}

// Load returns the stored document, or nil when absent. Read failures
// degrade to absent so a corrupt store does not block further work.
func (p *Local) Load(ctx context.Context, id string) (*models.TierList, error) {
	blob, err := p.readBlob(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Warn("store read failed, treating document as absent", "id", id, "error", err)
		return nil, nil
	}
	return blob.TierLists[id], nil
}

// List returns summaries for all stored documents, newest-updated first.
func (p *Local) List(ctx context.Context) ([]models.Summary, error) {
	blob, err := p.readBlob(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Warn("store read failed, listing no documents", "error", err)
		return []models.Summary{}, nil
	}
	summaries := make([]models.Summary, 0, len(blob.TierLists))
	for _, doc := range blob.TierLists {
		summaries = append(summaries, doc.Summarize())
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].UpdatedAt.After(summaries[j].UpdatedAt)
	})
	return summaries, nil
}

// Delete removes the document if present; a no-op when absent.
func (p *Local) Delete(ctx context.Context, id string) error {
	return p.mutate(ctx, func(blob *models.StoreBlob) {
		delete(blob.TierLists, id)
	})
}

// SaveMany upserts all documents in a single write.
func (p *Local) SaveMany(ctx context.Context, docs []*models.TierList) error {
	now := time.Now().UTC()
	for _, doc := range docs {
		if doc == nil || doc.ID == "" {
			return fmt.Errorf("%w: every document needs an id", ErrInvalidArgument)
		}
	}
	return p.mutate(ctx, func(blob *models.StoreBlob) {
		for _, doc := range docs {
			doc.UpdatedAt = now
			blob.TierLists[doc.ID] = doc.Clone()
		}
	})
}

// LoadMany returns the documents for the given ids, skipping absent ones.
func (p *Local) LoadMany(ctx context.Context, ids []string) ([]*models.TierList, error) {
	blob, err := p.readBlob(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.Warn("store read failed, loading no documents", "error", err)
		return []*models.TierList{}, nil
	}
	docs := make([]*models.TierList, 0, len(ids))
	for _, id := range ids {
		if doc, ok := blob.TierLists[id]; ok {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// Export returns the full store blob as a JSON string.
func (p *Local) Export(ctx context.Context) (string, error) {
	blob, err := p.readBlob(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: cannot read store: %v", ErrUnavailable, err)
	}
	data, err := json.Marshal(blob)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Import validates and migrates data, then replaces the store contents.
func (p *Local) Import(ctx context.Context, data string) error {
	var candidate map[string]any
	if err := json.Unmarshal([]byte(data), &candidate); err != nil {
		return fmt.Errorf("%w: %v", ErrImport, err)
	}
	if candidate == nil {
		return fmt.Errorf("%w: payload is not an object", ErrImport)
	}
	blob := models.Migrate([]byte(data))
	return p.writeBlob(ctx, blob)
}

// StorageInfo reports usage as the serialized byte length of the full blob.
func (p *Local) StorageInfo(ctx context.Context) (StorageInfo, error) {
	info := StorageInfo{
		Variant:    VariantLocal,
		TotalBytes: p.maxBytes,
	}
	raw, ok, err := p.medium.Get(ctx, p.storageKey)
	if err != nil {
		return info, nil
	}
	info.Available = true
	if ok {
		info.UsedBytes = int64(len(raw))
	}
	return info, nil
}

// Close closes the underlying medium.
func (p *Local) Close() error {
	return p.medium.Close()
}

// readBlob reads and migrates the store blob. An absent or corrupt value
// yields a fresh empty blob; only medium-level failures are errors.
func (p *Local) readBlob(ctx context.Context) (*models.StoreBlob, error) {
	raw, ok, err := p.medium.Get(ctx, p.storageKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return models.NewStoreBlob(), nil
	}
	return models.Migrate([]byte(raw)), nil
}

// mutate runs one read-migrate-mutate-write cycle over the store blob.
func (p *Local) mutate(ctx context.Context, fn func(*models.StoreBlob)) error {
	raw, _, err := p.medium.Get(ctx, p.storageKey)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: cannot read store: %v", ErrUnavailable, err)
	}
	blob := models.Migrate([]byte(raw))
	fn(blob)
	return p.writeBlob(ctx, blob)
}

// writeBlob serializes the blob, enforces the capacity ceiling, and writes
// the blob and schema version keys. Nothing is written past the ceiling.
func (p *Local) writeBlob(ctx context.Context, blob *models.StoreBlob) error {
	data, err := json.Marshal(blob)
	if err != nil {
		return err
	}
	if int64(len(data)) > p.maxBytes {
		return fmt.Errorf("%w: store needs %d bytes, limit is %d", ErrCapacityExceeded, len(data), p.maxBytes)
	}
	if err := p.medium.Set(ctx, p.storageKey, string(data)); err != nil {
		if errors.Is(err, kv.ErrMediumFull) {
			return fmt.Errorf("%w: %v", ErrCapacityExceeded, err)
		}
		return err
	}
	return p.medium.Set(ctx, p.versionKey, models.SchemaVersion)
}

var _ Provider = (*Local)(nil)
