package models

// ItemKind defines supported item content kinds.
type ItemKind string

const (
	ItemKindText  ItemKind = "text"
	ItemKindImage ItemKind = "image"
)

const (
	// SchemaVersion is the current persisted store schema version.
	SchemaVersion = "1.0"

	DefaultTheme    = "default"
	DefaultLayout   = "standard"
	DefaultAutoSave = true
)

var validItemKinds = map[ItemKind]struct{}{
	ItemKindText:  {},
	ItemKindImage: {},
}

// ValidItemKind reports whether kind is a supported item kind.
func ValidItemKind(kind ItemKind) bool {
	_, ok := validItemKinds[kind]
	return ok
}

// DefaultSettings returns default per-document settings.
func DefaultSettings() Settings {
	return Settings{
		Theme:      DefaultTheme,
		Layout:     DefaultLayout,
		ShowLabels: true,
	}
}

// DefaultTiers returns the standard S-D tier setup for new documents.
func DefaultTiers() []Tier {
	return []Tier{
		{ID: NewTierID(), Label: "S", Color: "#ff7f7f", Order: 0, Items: []Item{}},
		{ID: NewTierID(), Label: "A", Color: "#ffbf7f", Order: 1, Items: []Item{}},
		{ID: NewTierID(), Label: "B", Color: "#ffff7f", Order: 2, Items: []Item{}},
		{ID: NewTierID(), Label: "C", Color: "#7fff7f", Order: 3, Items: []Item{}},
		{ID: NewTierID(), Label: "D", Color: "#7fbfff", Order: 4, Items: []Item{}},
	}
}
