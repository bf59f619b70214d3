package cli

import (
	"github.com/spf13/cobra"

	"github.com/cahanap/cj-s-table-cipher/internal/infra/logger"
	"github.com/cahanap/cj-s-table-cipher/internal/usecase"
)

func encryptCmd(g *globalFlags) *cobra.Command {
	var key string
	var format string

	c := &cobra.Command{
		Use:   "encrypt [text...]",
		Short: "Encrypt text with a digit key, then decrypt it again to verify the round",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(*g)
			if err != nil {
				return err
			}

			cleanup := startLogger(s, g.debug)
			defer cleanup()

			f, err := resolveFormat(format, s.cfg)
			if err != nil {
				return err
			}

			text, err := textArg(cmd.InOrStdin(), args, "plaintext")
			if err != nil {
				return err
			}

			log := logger.L()
			res, err := usecase.NewRunRound(s.cfg.Options()).Execute(cmd.Context(), text, key)
			if err != nil {
				log.Info("round.validation_failed", "err", err)
				return err
			}
			if m := res.Decoding.Mismatch; m != nil {
				log.Warn("round.length_mismatch", "expected", m.Expected, "got", m.Got)
			}
			log.Info("round.ok", "columns", res.Round.Dims.Columns, "rows", res.Round.Dims.Rows, "pad", res.Round.Dims.Pad)

			return printRound(cmd.OutOrStdout(), res, f, s.cfg.Session.ShowTables)
		},
	}

	c.Flags().StringVarP(&key, "key", "k", "", "Column key: digits 1..9, e.g. 312 (required)")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json (defaults to the config)")

	_ = c.MarkFlagRequired("key")
	return c
}
