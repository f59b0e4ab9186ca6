package main

import (
	"github.com/spf13/cobra"

	"tierlist/internal/config"
	"tierlist/internal/engine"
)

func newDeleteCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tier list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cfg, func(svc *engine.Service) error {
				if err := svc.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(map[string]string{"deleted": args[0]})
				}
				return writePlain("deleted %s\n", args[0])
			})
		},
	}
}
