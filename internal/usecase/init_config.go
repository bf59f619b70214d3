package usecase

import (
	"errors"
	"strings"

	"github.com/cahanap/cj-s-table-cipher/internal/domain"
	"github.com/cahanap/cj-s-table-cipher/internal/ports"
)

type InitConfig struct {
	initializer ports.ConfigInitializer
}

func NewInitConfig(initializer ports.ConfigInitializer) *InitConfig {
	return &InitConfig{initializer: initializer}
}

func (uc *InitConfig) Execute(root string, force bool) error {
	if strings.TrimSpace(root) == "" {
		return &domain.OpError{
			Op:   "config.init",
			Kind: domain.KindValidation,
			Err:  errors.New("root is empty"),
		}
	}
	return uc.initializer.Init(root, force)
}
