package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Vault commands",
	}

	cmd.AddCommand(newVaultListCmd())

	return cmd
}

func newVaultListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vault ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/vaults"
			if limit > 0 {
				path = fmt.Sprintf("%s?limit=%d", path, limit)
			}

			var result VaultsResult
			if _, err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of vaults to list")

	return cmd
}
