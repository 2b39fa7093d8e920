package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTheftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theft <item-id> <target-id>",
		Short: "Attempt to steal an item from another mage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid item id: %s", args[0])
			}
			targetID, err := parseID(args[1])
			if err != nil {
				return fmt.Errorf("invalid target id: %s", args[1])
			}

			req := map[string]int64{
				"item_id":   itemID,
				"target_id": targetID,
			}
			var result TheftResult

			msg, err := client.Post("/api/v1/theft", req, &result)
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
}
