package models

import (
	"strings"
	"testing"
)

func TestDefaultTiers(t *testing.T) {
	tiers := DefaultTiers()
	if len(tiers) != 5 {
		t.Fatalf("expected 5 default tiers, got %d", len(tiers))
	}

	labels := make([]string, len(tiers))
	seen := map[string]struct{}{}
	for i, tier := range tiers {
		if tier.Order != i {
			t.Fatalf("expected tier %d order %d, got %d", i, i, tier.Order)
		}
		if tier.ID == "" {
			t.Fatalf("tier %d has no id", i)
		}
		if _, dup := seen[tier.ID]; dup {
			t.Fatalf("duplicate tier id %s", tier.ID)
		}
		seen[tier.ID] = struct{}{}
		if !strings.HasPrefix(tier.Color, "#") {
			t.Fatalf("tier %d has no color, got %q", i, tier.Color)
		}
		if tier.Items == nil {
			t.Fatalf("tier %d items should be empty, not nil", i)
		}
		labels[i] = tier.Label
	}

	if got := strings.Join(labels, ""); got != "SABCD" {
		t.Fatalf("expected labels SABCD, got %q", got)
	}
}

func TestValidItemKind(t *testing.T) {
	if !ValidItemKind(ItemKindText) || !ValidItemKind(ItemKindImage) {
		t.Fatal("expected text and image kinds to be valid")
	}
	if ValidItemKind("video") {
		t.Fatal("expected unknown kind to be invalid")
	}
}

func TestNewIDsAreUniqueAndPrefixed(t *testing.T) {
	tests := []struct {
		name   string
		gen    func() string
		prefix string
	}{
		{name: "document", gen: NewDocumentID, prefix: "tl-"},
		{name: "tier", gen: NewTierID, prefix: "tier-"},
		{name: "item", gen: NewItemID, prefix: "item-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, second := tt.gen(), tt.gen()
			if first == second {
				t.Fatalf("expected unique ids, got %s twice", first)
			}
			if !strings.HasPrefix(first, tt.prefix) {
				t.Fatalf("expected prefix %q, got %s", tt.prefix, first)
			}
		})
	}
}
