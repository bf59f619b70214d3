package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cahanap/cj-s-table-cipher/internal/domain"
	"github.com/cahanap/cj-s-table-cipher/internal/infra/config"
	"github.com/cahanap/cj-s-table-cipher/internal/infra/configfinder"
	"github.com/cahanap/cj-s-table-cipher/internal/infra/console"
	"github.com/cahanap/cj-s-table-cipher/internal/infra/logger"
)

type settings struct {
	root string
	cfg  domain.Config
}

// loadSettings resolves the config root and applies the global flag
// overrides on top of the loaded config.
func loadSettings(g globalFlags) (*settings, error) {
	root, cfg, err := resolveConfig(g.configPath)
	if err != nil {
		return nil, err
	}

	if g.noTables {
		cfg.Session.ShowTables = false
	}
	if g.strict {
		cfg.Cipher.RequirePermutation = true
	}
	return &settings{root: root, cfg: cfg}, nil
}

func resolveConfig(configFlag string) (string, domain.Config, error) {
	p := strings.TrimSpace(configFlag)
	if p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", domain.Config{}, fmt.Errorf("invalid config path: %w", err)
		}
		cfg, err := config.LoadConfig(abs)
		if err != nil {
			return "", domain.Config{}, err
		}
		return filepath.Dir(abs), cfg, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", domain.Config{}, fmt.Errorf("get working directory: %w", err)
	}

	root, ferr := configfinder.NewFinder().FindRoot(wd)
	if ferr != nil || root == "" {
		return wd, domain.DefaultConfig(), nil
	}

	cfg, err := config.LoadFromRoot(root)
	if err != nil {
		return "", domain.Config{}, err
	}
	return root, cfg, nil
}

// startLogger installs the file logger under the config root. A logger that
// cannot be opened is not fatal; events are discarded instead.
func startLogger(s *settings, debug bool) func() {
	cleanup, err := logger.Setup(logger.Config{
		Root:  s.root,
		Debug: debug,
	})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}

// resolveFormat prefers the --format flag and falls back to the config.
func resolveFormat(flag string, cfg domain.Config) (string, error) {
	if strings.TrimSpace(flag) == "" {
		return cfg.Output.Format, nil
	}
	return config.ParseFormat(flag)
}

// textArg joins positional arguments with spaces, or reads a single line
// from in when there are none.
func textArg(in io.Reader, args []string, what string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	line, err := console.New(in, io.Discard).ReadLine()
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read %s: %w", what, err)
	}
	if line == "" {
		return "", fmt.Errorf("%s is required (pass it as an argument or on stdin)", what)
	}
	return line, nil
}
