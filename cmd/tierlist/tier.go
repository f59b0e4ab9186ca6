package main

import (
	"github.com/spf13/cobra"

	"tierlist/internal/config"
	"tierlist/internal/engine"
)

func newTierCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tier",
		Short: "Manage tiers of a tier list",
	}
	cmd.AddCommand(
		newTierAddCmd(cfg, jsonOutput),
		newTierRemoveCmd(cfg, jsonOutput),
		newTierUpdateCmd(cfg, jsonOutput),
		newTierReorderCmd(cfg, jsonOutput),
	)
	return cmd
}

func newTierAddCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add <list-id> <label>",
		Short: "Append a new tier",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cfg, func(svc *engine.Service) error {
				tier, err := svc.AddTier(cmd.Context(), args[0], args[1], color)
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(tier)
				}
				return writePlain("%s\n", tier.ID)
			})
		},
	}

	cmd.Flags().StringVar(&color, "color", "#cccccc", "tier color as #rrggbb")

	return cmd
}

func newTierRemoveCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <list-id> <tier-id>",
		Short: "Remove a tier, moving its items to the unranked pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cfg, func(svc *engine.Service) error {
				if err := svc.RemoveTier(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(map[string]string{"removed": args[1]})
				}
				return writePlain("removed %s\n", args[1])
			})
		},
	}
}

func newTierUpdateCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	var (
		label string
		color string
	)

	cmd := &cobra.Command{
		Use:   "update <list-id> <tier-id>",
		Short: "Change a tier's label or color",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			update := engine.TierUpdate{}
			if cmd.Flags().Changed("label") {
				update.Label = &label
			}
			if cmd.Flags().Changed("color") {
				update.Color = &color
			}
			return withEngine(cfg, func(svc *engine.Service) error {
				if err := svc.UpdateTier(cmd.Context(), args[0], args[1], update); err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(map[string]string{"updated": args[1]})
				}
				return writePlain("updated %s\n", args[1])
			})
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "new tier label")
	cmd.Flags().StringVar(&color, "color", "", "new tier color")

	return cmd
}

func newTierReorderCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <list-id> <tier-id>...",
		Short: "Reorder tiers; the id list must cover every tier exactly once",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cfg, func(svc *engine.Service) error {
				if err := svc.ReorderTiers(cmd.Context(), args[0], args[1:]); err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(map[string]any{"reordered": args[1:]})
				}
				return writePlain("reordered %d tiers\n", len(args)-1)
			})
		},
	}
}
