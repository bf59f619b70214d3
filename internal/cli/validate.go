package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cahanap/cj-s-table-cipher/internal/usecase"
)

func validateCmd(g *globalFlags) *cobra.Command {
	var key string

	c := &cobra.Command{
		Use:   "validate [text...]",
		Short: "Check a key (and optionally a plaintext) without running a round",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(*g)
			if err != nil {
				return err
			}

			v := usecase.NewValidateInput(s.cfg.Options())
			if len(args) > 0 {
				if _, err := v.Execute(cmd.Context(), strings.Join(args, " "), key); err != nil {
					return err
				}
			} else if _, err := v.Key(key); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	c.Flags().StringVarP(&key, "key", "k", "", "Column key to check (required)")

	_ = c.MarkFlagRequired("key")
	return c
}
