package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-duel-go/internal/errors"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		text string
		want Move
	}{
		{"Pe2e4", NewMove(Pawn, MustParseSquare("e2"), MustParseSquare("e4"))},
		{"Ng1f3", NewMove(Knight, MustParseSquare("g1"), MustParseSquare("f3"))},
		{"Ra1a8", NewMove(Rook, MustParseSquare("a1"), MustParseSquare("a8"))},
		{"Kh8a1", NewMove(King, MustParseSquare("h8"), MustParseSquare("a1"))},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseMove(tt.text)
			if err != nil {
				t.Fatalf("ParseMove(%q) error = %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseMove(%q) = %+v; want %+v", tt.text, got, tt.want)
			}
			if got.String() != tt.text {
				t.Errorf("String() = %q; want %q", got.String(), tt.text)
			}
		})
	}
}

func TestParseMove_InvalidFormat(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"unknown letter", "Xe2e4"},
		{"lowercase letter", "pe2e4"},
		{"rank out of range", "Pe2e9"},
		{"rank zero", "Pe0e4"},
		{"file out of range", "Pi2e4"},
		{"uppercase file", "PE2E4"},
		{"too short", "e2e4"},
		{"too long", "Pe2e4q"},
		{"empty", ""},
		{"padded", " Pe2e4"},
		{"dash separator", "Pe2-e4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseMove(tt.text); !errors.Is(err, chesserrors.ErrInvalidFormat) {
				t.Errorf("ParseMove(%q) error = %v; want ErrInvalidFormat", tt.text, err)
			}
		})
	}
}
