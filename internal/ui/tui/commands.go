package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cahanap/cj-s-table-cipher/internal/usecase"
)

func cmdRunRound(deps Deps, plaintext, key string) tea.Cmd {
	return func() tea.Msg {
		log := deps.Logger
		if log == nil {
			log = slog.Default()
		}
		if deps.Rounds == nil {
			return roundDoneMsg{err: errors.New("round runner is nil")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		log.Debug("round.start", "plaintext_len", len([]rune(plaintext)), "key", key)

		res, err := deps.Rounds.Execute(ctx, plaintext, key)
		if err != nil {
			if usecase.IsRoundError(err) {
				log.Info("round.validation_failed", "err", err)
			} else {
				log.Error("round.failed", "err", err)
			}
			return roundDoneMsg{err: err}
		}

		if m := res.Decoding.Mismatch; m != nil {
			log.Warn("round.length_mismatch", "expected", m.Expected, "got", m.Got)
		}
		log.Info("round.ok",
			"columns", res.Round.Dims.Columns,
			"rows", res.Round.Dims.Rows,
			"pad", res.Round.Dims.Pad,
		)
		return roundDoneMsg{res: res}
	}
}
