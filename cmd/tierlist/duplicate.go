package main

import (
	"github.com/spf13/cobra"

	"tierlist/internal/config"
	"tierlist/internal/engine"
)

func newDuplicateCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "duplicate <id>",
		Short: "Duplicate a tier list under fresh ids",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cfg, func(svc *engine.Service) error {
				doc, err := svc.Duplicate(cmd.Context(), args[0], title)
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(doc)
				}
				return writePlain("%s\n", doc.ID)
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "title for the copy (default: \"<original> (Copy)\")")

	return cmd
}
