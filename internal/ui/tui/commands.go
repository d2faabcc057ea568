package tui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/kata/internal/ports"
	"github.com/aalvaropc/kata/internal/usecase/seq"
)

// The random source is not safe for concurrent use and tea.Cmds run on their
// own goroutines, so both commands draw from rnd while Update is running and
// the returned Cmd only delivers the result.

func cmdShuffle(rnd ports.RandomSource, deck []string) tea.Cmd {
	msg := shuffledMsg{deck: seq.Shuffle(rnd, slices.Clone(deck))}
	return func() tea.Msg { return msg }
}

func cmdPick(rnd ports.RandomSource, deck []string) tea.Cmd {
	card, err := seq.Choice(rnd, deck)
	msg := pickedMsg{card: card, err: err}
	return func() tea.Msg { return msg }
}
