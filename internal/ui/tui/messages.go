package tui

import "github.com/cahanap/cj-s-table-cipher/internal/domain"

type roundDoneMsg struct {
	res domain.RoundResult
	err error
}
