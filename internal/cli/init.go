package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cahanap/cj-s-table-cipher/internal/infra/config"
	"github.com/cahanap/cj-s-table-cipher/internal/infra/fsconfig"
	"github.com/cahanap/cj-s-table-cipher/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a default tablecipher.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			uc := usecase.NewInitConfig(fsconfig.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Config ready: %s\n", filepath.Join(root, config.FileName))
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", ".", "Directory to write tablecipher.yaml into")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing tablecipher.yaml")
	return c
}
