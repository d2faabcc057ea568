package tui

import (
	"log/slog"

	"github.com/aalvaropc/kata/internal/ports"
)

type Deps struct {
	Rand ports.RandomSource

	Logger *slog.Logger
	Debug  bool

	// LogPath is empty when logs are discarded (no workspace).
	LogPath string
}

func (d Deps) log() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}
