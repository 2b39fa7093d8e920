package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newGuardianCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guardian",
		Short: "Guardian riddle commands",
	}

	cmd.AddCommand(newGuardianSecretCmd())
	cmd.AddCommand(newGuardianResolveCmd())

	return cmd
}

func newGuardianSecretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "secret",
		Short: "Request the guardian's enciphered challenge",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SecretResult

			if _, err := client.Get("/api/v1/guardian/secret", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGuardianResolveCmd() *cobra.Command {
	var (
		vaultID int64
		answer  string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Answer the riddle to reclaim a vault",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"vault_id": vaultID,
				"answer":   answer,
			}
			var result ReclaimResult

			msg, err := client.Post("/api/v1/guardian/resolve", req, &result)
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

	cmd.Flags().Int64Var(&vaultID, "vault", 0, "Vault id to reclaim (required)")
	cmd.Flags().StringVar(&answer, "answer", "", "Plaintext answer to the riddle (required)")
	_ = cmd.MarkFlagRequired("vault")
	_ = cmd.MarkFlagRequired("answer")

	return cmd
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
