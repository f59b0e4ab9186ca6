package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tierlist/internal/config"
	"tierlist/internal/engine"
)

func newShowCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one tier list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cfg, func(svc *engine.Service) error {
				doc, err := svc.Load(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if doc == nil {
					return fmt.Errorf("tier list %s does not exist", args[0])
				}
				if *jsonOutput {
					return writeJSON(doc)
				}
				return writeDocumentDetail(doc)
			})
		},
	}
}
