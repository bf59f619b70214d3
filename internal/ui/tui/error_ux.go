package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/cahanap/cj-s-table-cipher/internal/domain"
	"github.com/cahanap/cj-s-table-cipher/internal/usecase"
)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindValidation, domain.KindOutOfRange:
			return strings.TrimPrefix(usecase.UserMessage(err), "Error: ")

		case domain.KindInvalidConfig:
			if strings.TrimSpace(oe.Path) != "" {
				return "Invalid config at " + filepath.Base(oe.Path)
			}
			return "Invalid config"

		case domain.KindNotFound:
			return "Not found"
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "Round timed out"
	}
	return "Unexpected error (see logs)"
}
