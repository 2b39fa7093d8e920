package cli

import (
	"github.com/spf13/cobra"
)

func newSpellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spell",
		Short: "Tome spell commands",
	}

	cmd.AddCommand(newSpellDivineCmd())
	cmd.AddCommand(newSpellOpenCmd())

	return cmd
}

func newSpellDivineCmd() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "divine",
		Short: "Cast Ego coniecto at a target",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"spell":  "Ego coniecto",
				"target": target,
			}
			var result SpellResult

			if _, err := client.Post("/api/v1/spells", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "guardian", "Target: 'guardian' or a player id")

	return cmd
}

func newSpellOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <ciphertext>",
		Short: "Cast Aperire to decode a ciphertext",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"spell":      "Aperire",
				"ciphertext": args[0],
			}
			var result SpellResult

			if _, err := client.Post("/api/v1/spells", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
