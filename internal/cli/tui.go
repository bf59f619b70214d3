package cli

import (
	"github.com/spf13/cobra"

	"github.com/cahanap/cj-s-table-cipher/internal/infra/logger"
	"github.com/cahanap/cj-s-table-cipher/internal/ui/tui"
	"github.com/cahanap/cj-s-table-cipher/internal/usecase"
)

func tuiCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Full-screen front end for encryption rounds",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := loadSettings(*g)
			if err != nil {
				return err
			}

			cleanup := startLogger(s, g.debug)
			defer cleanup()

			return tui.Run(tui.Deps{
				Rounds: usecase.NewRunRound(s.cfg.Options()),
				Config: s.cfg,
				Logger: logger.L(),
				Debug:  g.debug,
			})
		},
	}
}
