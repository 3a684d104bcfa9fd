// chess is a two-player chess game played in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-duel-go/internal/config"
	"github.com/lgbarn/chess-duel-go/internal/engine"
	"github.com/lgbarn/chess-duel-go/internal/output"
	"github.com/lgbarn/chess-duel-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-duel version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	terminal := isTerminal(os.Stdout)
	if cfg.UseColour(terminal) {
		cfg.Output = colorable.NewColorableStdout()
	}

	if _, err := run(ctx, cfg, terminal); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run plays one session with cfg. A session that ends because the input
// ran out is not an error.
func run(ctx context.Context, cfg *config.Config, terminal bool) (session.Result, error) {
	logger, closer, err := newLogger(cfg)
	if err != nil {
		return session.Result{}, err
	}
	defer closer.Close()

	game := engine.NewGame()
	if cfg.StartFEN != "" {
		game, err = engine.NewGameFromFEN(cfg.StartFEN)
		if err != nil {
			logger.Error().Err(err).Str("fen", cfg.StartFEN).Msg("bad starting position")
			return session.Result{}, err
		}
	}

	board := output.NewTextWriter(cfg.Output, cfg.UseColour(terminal))
	s := session.New(game, cfg.Input, cfg.Output, board, logger)

	res, err := s.Run(ctx)
	if err != nil {
		logger.Error().Err(err).Int("plies", res.Plies).Msg("session failed")
		return res, err
	}
	return res, nil
}

// newLogger builds the zerolog logger described by cfg. Log lines are
// appended to cfg.LogFile when set; otherwise they go to cfg.LogOutput,
// pretty-printed when that is a terminal.
func newLogger(cfg *config.Config) (zerolog.Logger, io.Closer, error) {
	level, err := cfg.Level()
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	if level == zerolog.Disabled {
		return zerolog.Nop(), nopCloser{}, nil
	}

	var (
		w      io.Writer = cfg.LogOutput
		closer io.Closer = nopCloser{}
	)
	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("opening log file %s: %w", cfg.LogFile, err)
		}
		w, closer = file, file
	} else if f, ok := w.(*os.File); ok && isTerminal(f) {
		w = zerolog.ConsoleWriter{Out: colorable.NewColorable(f), TimeFormat: time.Kitchen}
	}
	if w == nil {
		w = io.Discard
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess game for the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMoves are five characters: a piece letter then the start and end squares.\n")
	fmt.Fprintf(os.Stderr, "  P pawn  R rook  N knight  B bishop  Q queen  K king\n")
	fmt.Fprintf(os.Stderr, "Example: Pe2e4 moves the pawn on e2 to e4.\n")
}
