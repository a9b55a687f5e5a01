package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/enetx/dfa/internal/cli"
)

// Set via -ldflags at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	log.Logger = newLogger(os.Getenv("LOG_LEVEL"))

	// The first interrupt cancels ctx; after that the default handler is back,
	// so a second one kills the process.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
	}()

	err := cli.Execute(ctx, Version, Commit, BuildDate)
	stop()

	if err != nil {
		log.Error().Err(err).Msg("dfa failed")
		os.Exit(cli.GetExitCode(err))
	}
}

// newLogger writes human-readable logs to stderr; stdout is reserved for
// command output. Unknown or empty levels fall back to warn.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}

	zerolog.SetGlobalLevel(lvl)

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
