package models

import (
	"fmt"

	"github.com/google/uuid"
)

// NewDocumentID returns a new unique document id.
func NewDocumentID() string {
	return prefixedID("tl")
}

// NewTierID returns a new unique tier id.
func NewTierID() string {
	return prefixedID("tier")
}

// NewItemID returns a new unique item id.
func NewItemID() string {
	return prefixedID("item")
}

func prefixedID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
