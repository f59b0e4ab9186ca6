package main

import (
	"fmt"
	"os"
	"strings"

	"tierlist/internal/format"
	"tierlist/internal/models"
)

var outputFormatter format.Formatter = format.JSONFormatter{}

func writeJSON(payload any) error {
	return outputFormatter.Write(os.Stdout, payload)
}

func writePlain(formatStr string, args ...any) error {
	_, err := fmt.Fprintf(os.Stdout, formatStr, args...)
	return err
}

func writeSummaryList(summaries []models.Summary) error {
	for _, summary := range summaries {
		if err := writePlain("%s\n", formatSummaryLine(summary)); err != nil {
			return err
		}
	}
	return nil
}

func formatSummaryLine(summary models.Summary) string {
	return fmt.Sprintf("%s  [%d items]  %s  %s",
		summary.ID, summary.ItemCount, format.Time(summary.UpdatedAt), summary.Title)
}

func writeDocumentDetail(doc *models.TierList) error {
	lines := []string{
		fmt.Sprintf("id: %s", doc.ID),
		fmt.Sprintf("title: %s", doc.Title),
	}
	if doc.Description != "" {
		lines = append(lines, fmt.Sprintf("description: %s", doc.Description))
	}
	lines = append(lines,
		fmt.Sprintf("version: %d", doc.Version),
		fmt.Sprintf("created_at: %s", format.Time(doc.CreatedAt)),
		fmt.Sprintf("updated_at: %s", format.Time(doc.UpdatedAt)),
		"tiers:",
	)
	for _, tier := range doc.Tiers {
		lines = append(lines, fmt.Sprintf("  %s %s (%s): %s",
			tier.ID, tier.Label, tier.Color, formatItems(tier.Items)))
	}
	lines = append(lines, fmt.Sprintf("unranked: %s", formatItems(doc.Unranked)))
	return writePlain("%s\n", strings.Join(lines, "\n"))
}

func formatItems(items []models.Item) string {
	if len(items) == 0 {
		return "-"
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%s=%s", item.ID, item.Content)
	}
	return strings.Join(parts, ", ")
}
