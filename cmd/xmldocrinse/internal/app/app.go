// Package app carries what every subcommand needs from the process.
package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/trevorprinn/XmlDocRinse/internal/config"
)

// Env is bound into each command's Run method.
type Env struct {
	Context  context.Context
	Settings config.Settings
	Logger   *slog.Logger
	Stdout   io.Writer
}
