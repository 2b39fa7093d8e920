package cli

import (
	"github.com/spf13/cobra"
)

func newItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Item commands",
	}

	cmd.AddCommand(newItemAcquireCmd())
	cmd.AddCommand(newItemLookupCmd())

	return cmd
}

func newItemAcquireCmd() *cobra.Command {
	var (
		name        string
		category    int
		risk        int
		accessLevel int
		power       int64
		lore        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "acquire",
		Short: "Acquire a new item",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":         name,
				"category":     category,
				"risk":         risk,
				"access_level": accessLevel,
				"power":        power,
				"lore":         lore,
				"description":  description,
			}
			var result AcquireResult

			msg, err := client.Post("/api/v1/items", req, &result)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if cfg.Verbose && msg != "" {
				out.PrintMessage(msg)
			}
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Item name (required)")
	cmd.Flags().IntVar(&category, "category", 0, "Item category: 0 tome, 1 armament, 2 relic")
	cmd.Flags().IntVar(&risk, "risk", 9, "Risk tier 0-9 (0 most dangerous)")
	cmd.Flags().IntVar(&accessLevel, "access-level", 3, "Access level")
	cmd.Flags().Int64Var(&power, "power", 0, "Power granted by the item")
	cmd.Flags().StringVar(&lore, "lore", "", "Item lore")
	cmd.Flags().StringVar(&description, "description", "", "Item description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newItemLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <id>",
		Short: "Look up an item by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Artifact

			if _, err := client.Get("/api/v1/items/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
