package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tierlist/internal/config"
	"tierlist/internal/engine"
)

func newExportCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	var (
		outputPath string
		docID      string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole store, or one tier list with --doc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput != nil && *jsonOutput {
				return fmt.Errorf("export always emits JSON; remove --json")
			}
			return withEngine(cfg, func(svc *engine.Service) error {
				var (
					data string
					err  error
				)
				if docID != "" {
					data, err = svc.ExportOne(cmd.Context(), docID)
				} else {
					data, err = svc.Export(cmd.Context())
				}
				if err != nil {
					return err
				}

				w := os.Stdout
				if outputPath != "" {
					f, err := os.Create(outputPath)
					if err != nil {
						return err
					}
					defer f.Close()
					w = f
				}
				_, err = fmt.Fprintln(w, data)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&docID, "doc", "", "export a single tier list instead of the whole store")

	return cmd
}
