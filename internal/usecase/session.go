package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/cahanap/cj-s-table-cipher/internal/app/table"
	"github.com/cahanap/cj-s-table-cipher/internal/domain"
	"github.com/cahanap/cj-s-table-cipher/internal/ports"
)

const (
	plaintextPrompt = "\nPlain Text: "
	keyPrompt       = "Chan's Auto Key: "
	goodbye         = "Thank You and Goodbye!"
)

// Session is the read-prompt-compute-display loop. Each round runs to
// completion before the next prompt; per-round errors are reported and the
// loop continues. Only the exit token, end of input or a console failure end
// the session.
type Session struct {
	console ports.Console
	rounds  *RunRound
	cfg     domain.SessionConfig
	log     *slog.Logger
}

type SessionOption func(*Session)

func WithSessionLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

func NewSession(c ports.Console, rr *RunRound, cfg domain.SessionConfig, opts ...SessionOption) *Session {
	if strings.TrimSpace(cfg.ExitToken) == "" {
		cfg.ExitToken = domain.DefaultExitToken
	}
	s := &Session{
		console: c,
		rounds:  rr,
		cfg:     cfg,
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Run(ctx context.Context) error {
	if s.cfg.Banner != "" {
		if err := s.console.WriteLine(s.cfg.Banner); err != nil {
			return err
		}
	}
	if err := s.console.WriteLine("Type '" + s.cfg.ExitToken + "' at Plain Text prompt to quit."); err != nil {
		return err
	}

	rounds := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		exit, err := s.step(ctx)
		if err != nil {
			return err
		}
		if exit {
			break
		}
		rounds++
	}

	s.log.Info("session.exit", "rounds", rounds)
	return s.console.WriteLine(goodbye)
}

// step runs one round. It returns exit=true when the user asked to leave.
func (s *Session) step(ctx context.Context) (exit bool, err error) {
	pt, done, err := s.prompt(plaintextPrompt)
	if done || err != nil {
		return done, err
	}
	if s.isExit(pt) {
		return true, nil
	}

	if verr := s.rounds.Validator().Plaintext(pt); verr != nil {
		s.log.Info("round.validation_failed", "field", "plaintext", "err", verr)
		return false, s.console.WriteLine(UserMessage(verr))
	}

	key, done, err := s.prompt(keyPrompt)
	if done || err != nil {
		return done, err
	}
	key = strings.TrimSpace(key)
	if s.isExit(key) {
		return true, nil
	}

	s.log.Debug("round.start", "plaintext_len", len([]rune(pt)), "key", key)

	res, rerr := s.rounds.Execute(ctx, pt, key)
	if rerr != nil {
		if !IsRoundError(rerr) {
			return false, rerr
		}
		s.log.Info("round.validation_failed", "field", "key", "err", rerr)
		return false, s.console.WriteLine(UserMessage(rerr))
	}

	if m := res.Decoding.Mismatch; m != nil {
		s.log.Warn("round.length_mismatch", "expected", m.Expected, "got", m.Got)
	}
	s.log.Info("round.ok",
		"columns", res.Round.Dims.Columns,
		"rows", res.Round.Dims.Rows,
		"pad", res.Round.Dims.Pad,
	)

	return false, s.console.Write(table.Report(res, s.cfg.ShowTables))
}

// prompt writes label and reads one line. End of input is reported as done.
func (s *Session) prompt(label string) (line string, done bool, err error) {
	if err := s.console.Write(label); err != nil {
		return "", false, err
	}
	line, err = s.console.ReadLine()
	if errors.Is(err, io.EOF) {
		return "", true, nil
	}
	if err != nil {
		return "", false, err
	}
	return line, false, nil
}

func (s *Session) isExit(in string) bool {
	return strings.EqualFold(in, s.cfg.ExitToken)
}
