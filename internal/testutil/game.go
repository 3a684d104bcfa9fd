package testutil

import (
	"testing"

	"github.com/lgbarn/chess-duel-go/internal/chess"
	"github.com/lgbarn/chess-duel-go/internal/engine"
)

// MustParseMove decodes move text, calling t.Fatal if it is malformed.
func MustParseMove(t testing.TB, text string) chess.Move {
	t.Helper()
	mv, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q) error: %v", text, err)
	}
	return mv
}

// MustGameFromFEN builds a game from a FEN string, calling t.Fatal if the
// string is rejected.
func MustGameFromFEN(t testing.TB, fen string) *engine.Game {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return g
}

// PlayMoves plays each move in order and returns the outcome of the last
// one. It calls t.Fatal on the first rejected move.
func PlayMoves(t testing.TB, g *engine.Game, moves ...string) engine.TurnOutcome {
	t.Helper()
	var outcome engine.TurnOutcome
	for i, text := range moves {
		var err error
		outcome, err = g.MakeMove(MustParseMove(t, text))
		if err != nil {
			t.Fatalf("move %d %q rejected: %v", i+1, text, err)
		}
	}
	return outcome
}
