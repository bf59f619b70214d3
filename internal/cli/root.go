package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/cahanap/cj-s-table-cipher/internal/infra/console"
	"github.com/cahanap/cj-s-table-cipher/internal/infra/logger"
	"github.com/cahanap/cj-s-table-cipher/internal/usecase"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, usecase.UserMessage(err))
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	debug      bool
	configPath string
	noTables   bool
	strict     bool
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	cmd := &cobra.Command{
		Use:           "tablecipher",
		Short:         "CJ's Table Cipher: columnar transposition with a digit key",
		Long:          "Without a subcommand, tablecipher starts the interactive prompt loop.\nType EXIT at the Plain Text prompt to quit.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(g)
			if err != nil {
				return err
			}

			cleanup := startLogger(s, g.debug)
			defer cleanup()

			term := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
			sess := usecase.NewSession(
				term,
				usecase.NewRunRound(s.cfg.Options()),
				s.cfg.Session,
				usecase.WithSessionLogger(logger.L()),
			)
			return sess.Run(cmd.Context())
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&g.debug, "debug", false, "enable verbose logging to .tablecipher/logs/tablecipher.log")
	pf.StringVar(&g.configPath, "config", "", "Config file (optional; tablecipher.yaml is autodetected if omitted)")
	pf.BoolVar(&g.noTables, "no-tables", false, "Do not print the encryption and decryption tables")
	pf.BoolVar(&g.strict, "strict", false, "Require the key to use each digit 1..n exactly once")

	cmd.AddCommand(
		encryptCmd(&g),
		decryptCmd(&g),
		validateCmd(&g),
		initCmd(),
		tuiCmd(&g),
		versionCmd(),
	)
	return cmd
}
