package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the process-wide logger. Development gets a human-readable
// console writer, everything else gets JSON lines on stdout.
func Init(level, environment string) {
	var out io.Writer = os.Stdout
	if environment == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	SetOutput(out)

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// SetOutput replaces the global logger's writer. Tests use it to capture logs.
func SetOutput(w io.Writer) {
	log.Logger = zerolog.New(w).With().Timestamp().Str("service", "ubjewellers").Logger()
}

func Info(format string, v ...interface{}) {
	log.Info().Msg(fmt.Sprintf(format, v...))
}

func Error(format string, v ...interface{}) {
	log.Error().Msg(fmt.Sprintf(format, v...))
}

func Debug(format string, v ...interface{}) {
	log.Debug().Msg(fmt.Sprintf(format, v...))
}

func Warn(format string, v ...interface{}) {
	log.Warn().Msg(fmt.Sprintf(format, v...))
}

// WithContext stores l in ctx so downstream code can log with request fields.
func WithContext(ctx context.Context, l zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

// Ctx returns the request-scoped logger, falling back to the global one.
func Ctx(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &log.Logger
	}
	return l
}

// LogLedgerInconsistency records a stock ledger step that could not be
// compensated. These need manual reconciliation.
func LogLedgerInconsistency(ctx context.Context, orderID, action string, err error) {
	Ctx(ctx).Error().
		Str("order_id", orderID).
		Str("action", action).
		Err(err).
		Msg("stock ledger left inconsistent")
}
