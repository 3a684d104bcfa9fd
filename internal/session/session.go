// Package session runs an interactive two-player game over a pair of text
// streams.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-duel-go/internal/chess"
	"github.com/lgbarn/chess-duel-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-duel-go/internal/errors"
	"github.com/lgbarn/chess-duel-go/internal/output"
)

const (
	welcomeBanner = "Welcome to Chess!\n" +
		"Specify moves using standard notation (one character piece + start/end squares)\n" +
		"White moves up the board from rank 1, Black moves down from rank 8.\n\n"
	retryPrompt = "try again: "
)

// Result summarises a finished session.
type Result struct {
	Winner chess.Colour
	Won    bool // false if input ran out before a king was taken
	Plies  int  // legal moves played
}

// Session drives one game: it prompts the side to move, reads a line,
// plays it and reports the outcome until a king is captured or the input
// ends.
type Session struct {
	id    uuid.UUID
	game  *engine.Game
	in    *bufio.Reader
	out   io.Writer
	board output.BoardWriter
	log   zerolog.Logger
	plies int
}

// New creates a session for game reading moves from in and writing to
// out. Every log line carries the session's id.
func New(game *engine.Game, in io.Reader, out io.Writer, board output.BoardWriter, logger zerolog.Logger) *Session {
	id := uuid.New()
	return &Session{
		id:    id,
		game:  game,
		in:    bufio.NewReader(in),
		out:   out,
		board: board,
		log:   logger.With().Str("session", id.String()).Logger(),
	}
}

// ID returns the session's identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Plies returns the number of legal moves played so far.
func (s *Session) Plies() int {
	return s.plies
}

// Play decodes and plays one move for the side to move. Errors are
// wrapped in a *errors.MoveError and leave the game untouched.
func (s *Session) Play(text string) (engine.TurnOutcome, error) {
	text = strings.TrimSpace(text)
	player := s.game.CurrentPlayer()
	ply := s.plies + 1

	outcome, err := s.play(text)
	if err != nil {
		moveErr := &chesserrors.MoveError{Err: err, Ply: ply, Player: player.String(), MoveText: text}
		s.log.Info().Err(moveErr).Int("ply", ply).Str("player", player.String()).Str("move", text).Msg("move rejected")
		return engine.TurnOutcome{}, moveErr
	}

	s.plies = ply
	s.log.Debug().
		Int("ply", ply).
		Str("player", player.String()).
		Str("move", text).
		Stringer("outcome", outcome).
		Str("fen", s.game.FEN()).
		Msg("move played")
	return outcome, nil
}

func (s *Session) play(text string) (engine.TurnOutcome, error) {
	mv, err := chess.ParseMove(text)
	if err != nil {
		return engine.TurnOutcome{}, err
	}
	return s.game.MakeMove(mv)
}

// Run plays the game until a king is captured, the input runs out or ctx
// is cancelled. Cancellation is only noticed between prompts.
func (s *Session) Run(ctx context.Context) (Result, error) {
	s.log.Info().Str("fen", s.game.FEN()).Msg("session started")

	if _, err := io.WriteString(s.out, welcomeBanner); err != nil {
		return Result{}, err
	}

	if winner, over := s.game.Winner(); over {
		if err := s.showBoard(); err != nil {
			return s.result(), err
		}
		_, err := fmt.Fprintf(s.out, "Game over, %s wins!\n", winner)
		return s.result(), err
	}

	for {
		if err := ctx.Err(); err != nil {
			return s.result(), err
		}

		if err := s.showBoard(); err != nil {
			return s.result(), err
		}
		mover := s.game.CurrentPlayer()
		if _, err := fmt.Fprintf(s.out, "%s to move: ", mover); err != nil {
			return s.result(), err
		}

		outcome, err := s.readAndPlay(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Info().Int("plies", s.plies).Msg("input ended")
				_, err := fmt.Fprintln(s.out)
				return s.result(), err
			}
			return s.result(), err
		}

		switch outcome.Kind {
		case engine.Taken:
			if _, err := fmt.Fprintf(s.out, "%s took %s\n", mover, outcome.Captured); err != nil {
				return s.result(), err
			}
		case engine.Win:
			if err := s.showBoard(); err != nil {
				return s.result(), err
			}
			s.log.Info().Str("winner", outcome.Winner.String()).Int("plies", s.plies).Msg("session finished")
			_, err := fmt.Fprintf(s.out, "Game over, %s wins!\n", outcome.Winner)
			return s.result(), err
		}
	}
}

// readAndPlay reads lines until one holds a legal move for the side to
// move. It returns io.EOF when the input ends first.
func (s *Session) readAndPlay(ctx context.Context) (engine.TurnOutcome, error) {
	for {
		line, err := s.readLine()
		if err != nil {
			return engine.TurnOutcome{}, err
		}

		outcome, err := s.Play(line)
		if err == nil {
			return outcome, nil
		}

		var moveErr *chesserrors.MoveError
		if errors.As(err, &moveErr) {
			err = moveErr.Err
		}
		if _, werr := fmt.Fprintf(s.out, "invalid move: %v\n", err); werr != nil {
			return engine.TurnOutcome{}, werr
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return engine.TurnOutcome{}, ctxErr
		}
		if _, err := io.WriteString(s.out, retryPrompt); err != nil {
			return engine.TurnOutcome{}, err
		}
	}
}

// readLine returns the next input line whatever its length. A final line
// without a newline is still returned; io.EOF follows on the next call.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return line, nil
}

func (s *Session) showBoard() error {
	if err := s.board.WriteBoard(s.game.Board()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.out)
	return err
}

func (s *Session) result() Result {
	winner, won := s.game.Winner()
	return Result{Winner: winner, Won: won, Plies: s.plies}
}
