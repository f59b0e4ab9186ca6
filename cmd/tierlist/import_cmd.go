package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tierlist/internal/config"
	"tierlist/internal/engine"
	"tierlist/internal/models"
)

func newImportCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	var (
		inputPath string
		single    bool
		markdown  bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a store snapshot, a single tier list, or a markdown item list",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputPath == "" {
				return errors.New("--input is required")
			}
			if single && markdown {
				return errors.New("--doc and --markdown are mutually exclusive")
			}

			raw, err := os.ReadFile(inputPath)
			if err != nil {
				return err
			}

			return withEngine(cfg, func(svc *engine.Service) error {
				switch {
				case markdown:
					return runImportMarkdown(cmd, svc, string(raw), jsonOutput)
				case single:
					doc, err := svc.ImportOne(cmd.Context(), string(raw))
					if err != nil {
						return err
					}
					if *jsonOutput {
						return writeJSON(doc)
					}
					return writePlain("%s\n", doc.ID)
				default:
					if err := svc.Import(cmd.Context(), string(raw)); err != nil {
						return err
					}
					summaries, err := svc.List(cmd.Context())
					if err != nil {
						return err
					}
					if *jsonOutput {
						return writeJSON(summaries)
					}
					return writePlain("imported %d tier lists\n", len(summaries))
				}
			})
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "input file")
	cmd.Flags().BoolVar(&single, "doc", false, "input is a single tier list document (adopted under a fresh id)")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "input is markdown: front matter metadata plus a bullet list of items")

	return cmd
}

// runImportMarkdown creates a new tier list from a markdown file. Front
// matter supplies title and description; every bullet list entry becomes
// an unranked text item.
func runImportMarkdown(cmd *cobra.Command, svc *engine.Service, input string, jsonOutput *bool) error {
	frontMatter, items, err := parseMarkdown(input)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return errors.New("no list items found in input file")
	}

	title, _ := frontMatter["title"].(string)
	if title == "" {
		return errors.New("front matter must set a title")
	}
	description, _ := frontMatter["description"].(string)

	doc, err := svc.Create(cmd.Context(), title, description)
	if err != nil {
		return err
	}
	for _, content := range items {
		if _, err := svc.AddItem(cmd.Context(), doc.ID, models.Item{
			Kind:    models.ItemKindText,
			Content: content,
		}); err != nil {
			return err
		}
	}

	doc, err = svc.Load(cmd.Context(), doc.ID)
	if err != nil {
		return err
	}
	if *jsonOutput {
		return writeJSON(doc)
	}
	return writePlain("%s (%s)\n", doc.ID, fmt.Sprintf("%d items", doc.ItemCount()))
}
