package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cahanap/cj-s-table-cipher/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the config root.
const FileName = "tablecipher.yaml"

// LoadConfig reads a config file and applies it on top of domain.DefaultConfig.
func LoadConfig(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}

// LoadFromRoot loads root/tablecipher.yaml. A missing file yields the
// defaults without error; a present but invalid file is an error.
func LoadFromRoot(root string) (domain.Config, error) {
	path := filepath.Join(root, FileName)
	cfg, err := LoadConfig(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}
