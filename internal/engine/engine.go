package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tierlist/internal/models"
	"tierlist/internal/provider"
)

// Service is the tier-list mutation engine. Every mutating operation loads
// the document, applies the change, bumps the version, and persists the
// whole document through the provider. Two concurrent mutations of the
// same document are last-writer-wins; callers needing stronger guarantees
// serialize their own calls.
type Service struct {
	provider provider.Provider
	events   hub
}

// New creates an engine over the given provider.
func New(p provider.Provider) *Service {
	return &Service{provider: p}
}

// Subscribe registers a handler for engine events and returns a cancel
// function. Delivery is synchronous and in registration order; one failing
// handler does not block the others.
func (s *Service) Subscribe(handler Handler) func() {
	return s.events.subscribe(handler)
}

// Create builds and persists a new document with the default tier setup.
func (s *Service) Create(ctx context.Context, title, description string) (*models.TierList, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", provider.ErrInvalidArgument)
	}

	now := time.Now().UTC()
	doc := &models.TierList{
		ID:          models.NewDocumentID(),
		Title:       title,
		Description: description,
		Tiers:       models.DefaultTiers(),
		Unranked:    []models.Item{},
		CreatedAt:   now,
		UpdatedAt:   now,
		Version:     1,
		Settings:    models.DefaultSettings(),
	}
	if err := s.provider.Save(ctx, doc); err != nil {
		return nil, err
	}
	s.events.emit(Created{Document: doc})
	return doc, nil
}

// Load returns the stored document, or nil when absent.
func (s *Service) Load(ctx context.Context, id string) (*models.TierList, error) {
	return s.provider.Load(ctx, id)
}

// List returns summaries for all stored documents, newest-updated first.
func (s *Service) List(ctx context.Context) ([]models.Summary, error) {
	return s.provider.List(ctx)
}

// Update increments the document version, refreshes UpdatedAt, and
// persists the full document. The caller supplies the complete current
// state; whichever update lands last wins.
func (s *Service) Update(ctx context.Context, doc *models.TierList) error {
	if doc == nil || doc.ID == "" {
		return fmt.Errorf("%w: document with an id is required", provider.ErrInvalidArgument)
	}
	doc.Version++
	doc.UpdatedAt = time.Now().UTC()
	if err := s.provider.Save(ctx, doc); err != nil {
		return err
	}
	s.events.emit(Updated{Document: doc})
	return nil
}

// Delete removes the document and emits a Deleted event.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.provider.Delete(ctx, id); err != nil {
		return err
	}
	s.events.emit(Deleted{ID: id})
	return nil
}

// MoveItem moves an item to position in the target tier, or to the
// unranked pool when targetTierID is empty. Positions are clamped to the
// destination length. The item ends up in exactly one place.
func (s *Service) MoveItem(ctx context.Context, docID, itemID, targetTierID string, position int) error {
	doc, err := s.loadExisting(ctx, docID)
	if err != nil {
		return err
	}

	item, ok := removeItem(doc, itemID)
	if !ok {
		return fmt.Errorf("%w: item %s is not in tier list %s", provider.ErrNotFound, itemID, docID)
	}

	if targetTierID == "" {
		doc.Unranked = insertItem(doc.Unranked, item, position)
	} else {
		tier := doc.FindTier(targetTierID)
		if tier == nil {
			return fmt.Errorf("%w: tier %s is not in tier list %s", provider.ErrNotFound, targetTierID, docID)
		}
		tier.Items = insertItem(tier.Items, item, position)
	}
	return s.Update(ctx, doc)
}

// TierUpdate carries the tier fields to change; nil fields keep their
// current value.
type TierUpdate struct {
	Label *string
	Color *string
}

// UpdateTier applies the given fields to the named tier.
func (s *Service) UpdateTier(ctx context.Context, docID, tierID string, update TierUpdate) error {
	doc, err := s.loadExisting(ctx, docID)
	if err != nil {
		return err
	}
	tier := doc.FindTier(tierID)
	if tier == nil {
		return fmt.Errorf("%w: tier %s is not in tier list %s", provider.ErrNotFound, tierID, docID)
	}
	if update.Label != nil {
		tier.Label = *update.Label
	}
	if update.Color != nil {
		tier.Color = *update.Color
	}
	return s.Update(ctx, doc)
}

// AddTier appends a new tier ordered after the existing ones.
func (s *Service) AddTier(ctx context.Context, docID, label, color string) (*models.Tier, error) {
	doc, err := s.loadExisting(ctx, docID)
	if err != nil {
		return nil, err
	}
	tier := models.Tier{
		ID:    models.NewTierID(),
		Label: label,
		Color: color,
		Order: len(doc.Tiers),
		Items: []models.Item{},
	}
	doc.Tiers = append(doc.Tiers, tier)
	if err := s.Update(ctx, doc); err != nil {
		return nil, err
	}
	return &tier, nil
}

// RemoveTier removes the tier, appending its items to the unranked pool in
// their tier order, and renumbers the remaining tiers.
func (s *Service) RemoveTier(ctx context.Context, docID, tierID string) error {
	doc, err := s.loadExisting(ctx, docID)
	if err != nil {
		return err
	}

	index := -1
	for i := range doc.Tiers {
		if doc.Tiers[i].ID == tierID {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("%w: tier %s is not in tier list %s", provider.ErrNotFound, tierID, docID)
	}

	doc.Unranked = append(doc.Unranked, doc.Tiers[index].Items...)
	doc.Tiers = append(doc.Tiers[:index], doc.Tiers[index+1:]...)
	doc.RenumberTiers()
	return s.Update(ctx, doc)
}

// ReorderTiers rewrites the tier sequence to match orderedTierIDs, which
// must be a permutation of the document's tier ids.
func (s *Service) ReorderTiers(ctx context.Context, docID string, orderedTierIDs []string) error {
	doc, err := s.loadExisting(ctx, docID)
	if err != nil {
		return err
	}

	if len(orderedTierIDs) != len(doc.Tiers) {
		return fmt.Errorf("%w: got %d tier ids, tier list has %d tiers",
			provider.ErrInvalidArgument, len(orderedTierIDs), len(doc.Tiers))
	}

	remaining := make(map[string]models.Tier, len(doc.Tiers))
	for _, tier := range doc.Tiers {
		remaining[tier.ID] = tier
	}

	reordered := make([]models.Tier, 0, len(orderedTierIDs))
	for i, id := range orderedTierIDs {
		tier, ok := remaining[id]
		if !ok {
			return fmt.Errorf("%w: tier ids are not a permutation of the tier list's tiers (id %s)",
				provider.ErrInvalidArgument, id)
		}
		delete(remaining, id)
		tier.Order = i
		reordered = append(reordered, tier)
	}
	doc.Tiers = reordered
	return s.Update(ctx, doc)
}

// AddItem assigns a fresh id to item and appends it to the unranked pool.
func (s *Service) AddItem(ctx context.Context, docID string, item models.Item) (*models.Item, error) {
	if item.Kind == "" {
		item.Kind = models.ItemKindText
	}
	if !models.ValidItemKind(item.Kind) {
		return nil, fmt.Errorf("%w: unknown item kind %q", provider.ErrInvalidArgument, item.Kind)
	}

	doc, err := s.loadExisting(ctx, docID)
	if err != nil {
		return nil, err
	}
	item.ID = models.NewItemID()
	doc.Unranked = append(doc.Unranked, item)
	if err := s.Update(ctx, doc); err != nil {
		return nil, err
	}
	return &item, nil
}

// Duplicate persists a structural copy of the document under fresh ids.
// The copy starts at version 1 with both timestamps set to now.
func (s *Service) Duplicate(ctx context.Context, docID, newTitle string) (*models.TierList, error) {
	src, err := s.loadExisting(ctx, docID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(newTitle)
	if title == "" {
		title = src.Title + " (Copy)"
	}
	copyDoc := duplicateDocument(src, title, time.Now().UTC())
	if err := s.provider.Save(ctx, copyDoc); err != nil {
		return nil, err
	}
	s.events.emit(Created{Document: copyDoc})
	return copyDoc, nil
}

// ImportOne adopts a single serialized document. The adopted copy gets a
// fresh document id, version 1, and current timestamps so it can never
// collide with or inherit stale metadata from its source.
func (s *Service) ImportOne(ctx context.Context, data string) (*models.TierList, error) {
	var candidate map[string]any
	if err := json.Unmarshal([]byte(data), &candidate); err != nil {
		return nil, fmt.Errorf("%w: %v", provider.ErrImport, err)
	}
	doc, ok := models.DecodeDocument([]byte(data))
	if !ok {
		return nil, fmt.Errorf("%w: payload is not a tier list document", provider.ErrImport)
	}

	now := time.Now().UTC()
	doc.ID = models.NewDocumentID()
	doc.Version = 1
	doc.CreatedAt = now
	doc.UpdatedAt = now
	if err := s.provider.Save(ctx, doc); err != nil {
		return nil, err
	}
	s.events.emit(Created{Document: doc})
	return doc, nil
}

// Export returns the whole store as a transportable string.
func (s *Service) Export(ctx context.Context) (string, error) {
	return s.provider.Export(ctx)
}

// Import replaces the whole store with the given serialized blob. Unlike
// ImportOne, stored ids are preserved exactly; this is a replace, not a
// merge.
func (s *Service) Import(ctx context.Context, data string) error {
	return s.provider.Import(ctx, data)
}

// StorageInfo reports the provider's backend kind, availability, and usage.
func (s *Service) StorageInfo(ctx context.Context) (provider.StorageInfo, error) {
	return s.provider.StorageInfo(ctx)
}

// ExportOne returns the document as a bare JSON object.
func (s *Service) ExportOne(ctx context.Context, docID string) (string, error) {
	doc, err := s.loadExisting(ctx, docID)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Service) loadExisting(ctx context.Context, docID string) (*models.TierList, error) {
	doc, err := s.provider.Load(ctx, docID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: tier list %s", provider.ErrNotFound, docID)
	}
	return doc, nil
}

// removeItem removes the item from wherever it resides, scanning the
// unranked pool first and then each tier in order.
func removeItem(doc *models.TierList, itemID string) (models.Item, bool) {
	for i, item := range doc.Unranked {
		if item.ID == itemID {
			doc.Unranked = append(doc.Unranked[:i], doc.Unranked[i+1:]...)
			return item, true
		}
	}
	for t := range doc.Tiers {
		items := doc.Tiers[t].Items
		for i, item := range items {
			if item.ID == itemID {
				doc.Tiers[t].Items = append(items[:i], items[i+1:]...)
				return item, true
			}
		}
	}
	return models.Item{}, false
}

// insertItem inserts item at position, clamped to [0, len(items)].
func insertItem(items []models.Item, item models.Item, position int) []models.Item {
	if position < 0 {
		position = 0
	}
	if position > len(items) {
		position = len(items)
	}
	out := make([]models.Item, 0, len(items)+1)
	out = append(out, items[:position]...)
	out = append(out, item)
	out = append(out, items[position:]...)
	return out
}

// duplicateDocument is an explicit recursive copy over the three entity
// kinds, assigning fresh ids to the document, every tier, and every item.
func duplicateDocument(src *models.TierList, title string, now time.Time) *models.TierList {
	out := &models.TierList{
		ID:          models.NewDocumentID(),
		Title:       title,
		Description: src.Description,
		Tiers:       make([]models.Tier, len(src.Tiers)),
		Unranked:    duplicateItems(src.Unranked),
		CreatedAt:   now,
		UpdatedAt:   now,
		Version:     1,
		Author:      src.Author,
		Settings:    src.Settings,
	}
	for i, tier := range src.Tiers {
		out.Tiers[i] = models.Tier{
			ID:    models.NewTierID(),
			Label: tier.Label,
			Color: tier.Color,
			Order: tier.Order,
			Items: duplicateItems(tier.Items),
		}
	}
	return out
}

func duplicateItems(items []models.Item) []models.Item {
	out := make([]models.Item, len(items))
	for i, item := range items {
		out[i] = models.Item{
			ID:      models.NewItemID(),
			Kind:    item.Kind,
			Content: item.Content,
		}
		if item.Meta != nil {
			meta := *item.Meta
			if item.Meta.CapturedAt != nil {
				at := *item.Meta.CapturedAt
				meta.CapturedAt = &at
			}
			out[i].Meta = &meta
		}
	}
	return out
}
