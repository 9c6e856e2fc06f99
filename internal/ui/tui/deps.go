package tui

import (
	"log/slog"

	"github.com/opsdeck/opsdeck/internal/ports"
)

type Deps struct {
	Client ports.CoreClient

	Logger *slog.Logger
	Debug  bool
}
