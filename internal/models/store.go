package models

// StoreSettings holds store-wide preferences persisted alongside documents.
type StoreSettings struct {
	Theme    string `json:"theme"`
	AutoSave bool   `json:"autoSave"`
}

// StoreBlob is the root object written to the storage medium. It is always
// read and written as a whole, never partially updated.
type StoreBlob struct {
	Version   string               `json:"version"`
	TierLists map[string]*TierList `json:"tierLists"`
	Settings  StoreSettings        `json:"settings"`
}

// NewStoreBlob returns an empty blob at the current schema version.
func NewStoreBlob() *StoreBlob {
	return &StoreBlob{
		Version:   SchemaVersion,
		TierLists: map[string]*TierList{},
		Settings: StoreSettings{
			Theme:    DefaultTheme,
			AutoSave: DefaultAutoSave,
		},
	}
}
