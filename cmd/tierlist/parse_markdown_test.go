package main

import "testing"

func TestParseMarkdown(t *testing.T) {
	input := `---
title: Snacks
description: ranked snacks
---

Some prose that is not a bullet.

- Pretzels
* Crisps
-  Chocolate
-
`

	front, items, err := parseMarkdown(input)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if front["title"] != "Snacks" {
		t.Fatalf("expected title Snacks, got %v", front["title"])
	}
	if front["description"] != "ranked snacks" {
		t.Fatalf("expected description, got %v", front["description"])
	}

	want := []string{"Pretzels", "Crisps", "Chocolate"}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d: %v", len(want), len(items), items)
	}
	for i, item := range want {
		if items[i] != item {
			t.Fatalf("item %d: expected %q, got %q", i, item, items[i])
		}
	}
}

func TestParseMarkdownWithoutFrontMatter(t *testing.T) {
	front, items, err := parseMarkdown("- one\n- two\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(front) != 0 {
		t.Fatalf("expected empty front matter, got %v", front)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %v", items)
	}
}

func TestParseMarkdownUnclosedFrontMatter(t *testing.T) {
	if _, _, err := parseMarkdown("---\ntitle: Oops\n- item\n"); err == nil {
		t.Fatal("expected error for unclosed front matter")
	}
}

func TestParseMarkdownBadYAML(t *testing.T) {
	if _, _, err := parseMarkdown("---\ntitle: [unclosed\n---\n- item\n"); err == nil {
		t.Fatal("expected yaml error")
	}
}

func TestParseMarkdownEmptyInput(t *testing.T) {
	front, items, err := parseMarkdown("")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(front) != 0 || len(items) != 0 {
		t.Fatalf("expected empty result, got %v / %v", front, items)
	}
}
