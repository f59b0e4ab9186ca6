package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tierlist/internal/config"
	"tierlist/internal/engine"
)

func newCreateCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a new tier list",
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return errors.New("title is required")
			}
			return withEngine(cfg, func(svc *engine.Service) error {
				doc, err := svc.Create(cmd.Context(), title, description)
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

	cmd.Flags().StringVarP(&description, "description", "d", "", "tier list description")

	return cmd
}
