package models

import (
	"encoding/json"
	"log/slog"
)

// Validate reports whether candidate is structurally a tier-list document:
// a string id, a string title, sequences for tiers and unranked items, and
// non-null timestamps and settings. It does not deep-validate item contents.
func Validate(candidate map[string]any) bool {
	if candidate == nil {
		return false
	}
	if id, ok := candidate["id"].(string); !ok || id == "" {
		return false
	}
	if _, ok := candidate["title"].(string); !ok {
		return false
	}
	if _, ok := candidate["tiers"].([]any); !ok {
		return false
	}
	if _, ok := candidate["unranked"].([]any); !ok {
		return false
	}
	if candidate["created_at"] == nil || candidate["updated_at"] == nil {
		return false
	}
	if _, ok := candidate["settings"].(map[string]any); !ok {
		return false
	}
	return true
}

// Migrate turns raw serialized store contents into a well-formed blob.
// Absent or unparsable input yields a fresh empty blob. Documents that fail
// validation are dropped with a warning rather than failing the whole load,
// since the medium may have been touched by code outside this tool.
func Migrate(raw []byte) *StoreBlob {
	if len(raw) == 0 {
		return NewStoreBlob()
	}

	var decoded struct {
		Version   string                     `json:"version"`
		TierLists map[string]json.RawMessage `json:"tierLists"`
		Settings  map[string]any             `json:"settings"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		slog.Warn("store blob is not valid JSON, starting empty", "error", err)
		return NewStoreBlob()
	}

	blob := NewStoreBlob()
	if decoded.Version != "" {
		blob.Version = decoded.Version
	}
	if theme, ok := decoded.Settings["theme"].(string); ok && theme != "" {
		blob.Settings.Theme = theme
	}
	if autoSave, ok := decoded.Settings["autoSave"].(bool); ok {
		blob.Settings.AutoSave = autoSave
	}

	for id, rawDoc := range decoded.TierLists {
		doc, ok := DecodeDocument(rawDoc)
		if !ok {
			slog.Warn("dropping invalid tier list from store", "id", id)
			continue
		}
		blob.TierLists[doc.ID] = doc
	}

	if blob.Version != SchemaVersion {
		blob = migrateSchema(blob, blob.Version)
		blob.Version = SchemaVersion
	}
	return blob
}

// DecodeDocument validates the candidate structurally and then decodes it
// into a typed document, which coerces serialized timestamps into time.Time.
func DecodeDocument(raw []byte) (*TierList, bool) {
	var candidate map[string]any
	if err := json.Unmarshal(raw, &candidate); err != nil {
		return nil, false
	}
	if !Validate(candidate) {
		return nil, false
	}
	var doc TierList
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, false
	}
	return &doc, true
}

// migrateSchema upgrades a blob recorded at an older schema version.
// The current schema has a single version, so this is a passthrough.
func migrateSchema(blob *StoreBlob, fromVersion string) *StoreBlob {
	_ = fromVersion
	return blob
}
