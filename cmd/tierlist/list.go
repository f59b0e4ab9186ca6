package main

import (
	"github.com/spf13/cobra"

	"tierlist/internal/config"
	"tierlist/internal/engine"
)

func newListCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored tier lists, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cfg, func(svc *engine.Service) error {
				summaries, err := svc.List(cmd.Context())
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(summaries)
				}
				return writeSummaryList(summaries)
			})
		},
	}
}
