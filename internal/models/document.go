package models

import "time"

// Item is a single rankable unit. It belongs to exactly one tier's item
// list or to the document's unranked pool, never both.
type Item struct {
	ID      string    `json:"id"`
	Kind    ItemKind  `json:"kind"`
	Content string    `json:"content"`
	Meta    *ItemMeta `json:"meta,omitempty"`
}

// ItemMeta carries optional origin metadata for an item.
type ItemMeta struct {
	Filename   string     `json:"filename,omitempty"`
	CapturedAt *time.Time `json:"captured_at,omitempty"`
	SizeBytes  int64      `json:"size_bytes,omitempty"`
}

// Tier is an ordered bucket of items. Order values across a document's
// tiers always form a contiguous 0-based sequence matching slice position.
type Tier struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
	Order int    `json:"order"`
	Items []Item `json:"items"`
}

// Settings holds per-document presentation preferences.
type Settings struct {
	Theme      string `json:"theme"`
	Layout     string `json:"layout"`
	ShowLabels bool   `json:"show_labels"`
}

// TierList is the aggregate root: an ordered set of tiers plus a pool of
// unranked items. Version increments by one on every persisted mutation.
type TierList struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Tiers       []Tier    `json:"tiers"`
	Unranked    []Item    `json:"unranked"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Version     int       `json:"version"`
	Author      string    `json:"author,omitempty"`
	Settings    Settings  `json:"settings"`
}

// Summary is a lightweight projection of a TierList for listings. It is
// derived on demand and never stored.
type Summary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ItemCount int       `json:"item_count"`
	Thumbnail string    `json:"thumbnail,omitempty"`
}

// ItemCount returns the total number of items across tiers and the
// unranked pool.
func (tl *TierList) ItemCount() int {
	count := len(tl.Unranked)
	for _, tier := range tl.Tiers {
		count += len(tier.Items)
	}
	return count
}

// Summarize projects the document into a Summary. The thumbnail is the
// content reference of the first image item, scanning tiers in order and
// then the unranked pool.
func (tl *TierList) Summarize() Summary {
	return Summary{
		ID:        tl.ID,
		Title:     tl.Title,
		CreatedAt: tl.CreatedAt,
		UpdatedAt: tl.UpdatedAt,
		ItemCount: tl.ItemCount(),
		Thumbnail: tl.thumbnail(),
	}
}

func (tl *TierList) thumbnail() string {
	for _, tier := range tl.Tiers {
		for _, item := range tier.Items {
			if item.Kind == ItemKindImage {
				return item.Content
			}
		}
	}
	for _, item := range tl.Unranked {
		if item.Kind == ItemKindImage {
			return item.Content
		}
	}
	return ""
}

// FindTier returns the tier with the given id, or nil if absent.
func (tl *TierList) FindTier(tierID string) *Tier {
	for i := range tl.Tiers {
		if tl.Tiers[i].ID == tierID {
			return &tl.Tiers[i]
		}
	}
	return nil
}

// RenumberTiers rewrites every tier's Order to its slice position.
func (tl *TierList) RenumberTiers() {
	for i := range tl.Tiers {
		tl.Tiers[i].Order = i
	}
}

// Clone returns a deep copy of the document. Ids are copied verbatim;
// callers that need fresh identity reassign them afterwards.
func (tl *TierList) Clone() *TierList {
	out := *tl
	out.Tiers = make([]Tier, len(tl.Tiers))
	for i, tier := range tl.Tiers {
		out.Tiers[i] = tier
		out.Tiers[i].Items = cloneItems(tier.Items)
	}
	out.Unranked = cloneItems(tl.Unranked)
	return &out
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = item
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
