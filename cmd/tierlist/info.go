package main

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"tierlist/internal/config"
	"tierlist/internal/engine"
)

func newInfoCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show storage backend info and usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cfg, func(svc *engine.Service) error {
				info, err := svc.StorageInfo(cmd.Context())
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(info)
				}
				availability := "unavailable"
				if info.Available {
					availability = "available"
				}
				return writePlain("variant: %s\nstatus: %s\nused: %s of %s\nrealtime: %t\nsync: %t\nbackup: %t\n",
					info.Variant, availability,
					humanize.Bytes(uint64(info.UsedBytes)), humanize.Bytes(uint64(info.TotalBytes)),
					info.SupportsRealtime, info.SupportsSync, info.SupportsBackup)
			})
		},
	}
}
