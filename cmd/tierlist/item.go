package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tierlist/internal/config"
	"tierlist/internal/engine"
	"tierlist/internal/models"
)

func newItemCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage items in a tier list",
	}
	cmd.AddCommand(
		newItemAddCmd(cfg, jsonOutput),
		newItemMoveCmd(cfg, jsonOutput),
	)
	return cmd
}

func newItemAddCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "add <list-id> <content>",
		Short: "Add an item to the unranked pool",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := strings.TrimSpace(strings.Join(args[1:], " "))
			if content == "" {
				return errors.New("item content is required")
			}
			return withEngine(cfg, func(svc *engine.Service) error {
				item, err := svc.AddItem(cmd.Context(), args[0], models.Item{
					Kind:    models.ItemKind(kind),
					Content: content,
				})
				if err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(item)
				}
				return writePlain("%s\n", item.ID)
			})
		},
	}

	cmd.Flags().StringVar(&kind, "kind", string(models.ItemKindText), "item kind: text|image")

	return cmd
}

func newItemMoveCmd(cfg *config.Config, jsonOutput *bool) *cobra.Command {
	var (
		tierID   string
		position int
	)

	cmd := &cobra.Command{
		Use:   "move <list-id> <item-id>",
		Short: "Move an item to a tier, or back to the unranked pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cfg, func(svc *engine.Service) error {
				if err := svc.MoveItem(cmd.Context(), args[0], args[1], tierID, position); err != nil {
					return err
				}
				if *jsonOutput {
					return writeJSON(map[string]string{"moved": args[1]})
				}
				return writePlain("moved %s\n", args[1])
			})
		},
	}

	cmd.Flags().StringVar(&tierID, "tier", "", "target tier id (omit for the unranked pool)")
	cmd.Flags().IntVar(&position, "pos", 0, "position in the target (clamped)")

	return cmd
}
