package cli

import (
	"github.com/spf13/cobra"

	"github.com/cahanap/cj-s-table-cipher/internal/infra/logger"
	"github.com/cahanap/cj-s-table-cipher/internal/usecase"
)

func decryptCmd(g *globalFlags) *cobra.Command {
	var key string
	var pad int
	var format string

	c := &cobra.Command{
		Use:   "decrypt [ciphertext...]",
		Short: "Decrypt a ciphertext produced with the same key",
		Long: "The grid height is derived from the ciphertext length. Use --pad to strip\n" +
			"the filler characters the encryption appended.",
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

			text, err := textArg(cmd.InOrStdin(), args, "ciphertext")
			if err != nil {
				return err
			}

			round, dec, err := usecase.NewDecryptText(s.cfg.Options()).Execute(cmd.Context(), text, key, pad)
			if err != nil {
				logger.L().Info("decrypt.validation_failed", "err", err)
				return err
			}
			if m := dec.Mismatch; m != nil {
				logger.L().Warn("decrypt.length_mismatch", "expected", m.Expected, "got", m.Got)
			}
			logger.L().Info("decrypt.ok", "columns", round.Dims.Columns, "rows", round.Dims.Rows, "pad", round.Dims.Pad)

			return printDecryption(cmd.OutOrStdout(), text, round, dec, f, s.cfg.Session.ShowTables)
		},
	}

	c.Flags().StringVarP(&key, "key", "k", "", "Column key used for encryption (required)")
	c.Flags().IntVar(&pad, "pad", 0, "Number of trailing filler characters to strip")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json (defaults to the config)")

	_ = c.MarkFlagRequired("key")
	return c
}
