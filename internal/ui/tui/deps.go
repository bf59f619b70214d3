package tui

import (
	"log/slog"

	"github.com/cahanap/cj-s-table-cipher/internal/domain"
	"github.com/cahanap/cj-s-table-cipher/internal/usecase"
)

type Deps struct {
	Rounds *usecase.RunRound
	Config domain.Config

	Logger *slog.Logger
	Debug  bool
}
