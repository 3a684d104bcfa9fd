package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-duel-go/internal/errors"
)

func TestColour(t *testing.T) {
	var zero Colour
	if zero != White {
		t.Errorf("zero Colour = %v; want White", zero)
	}
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap sides")
	}
	if White.String() != "White" || Black.String() != "Black" {
		t.Errorf("String() = %q, %q", White.String(), Black.String())
	}
	if White.Style() == Black.Style() {
		t.Error("both sides share a style")
	}
	if White.PawnDirection() != 1 || Black.PawnDirection() != -1 {
		t.Error("PawnDirection() wrong")
	}
	if White.PawnRow() != 1 || Black.PawnRow() != 6 {
		t.Errorf("PawnRow() = %d, %d; want 1, 6", White.PawnRow(), Black.PawnRow())
	}
}

func TestPieceKindGlyphRoundTrip(t *testing.T) {
	tests := []struct {
		kind  PieceKind
		glyph byte
		name  string
	}{
		{Pawn, 'P', "Pawn"},
		{Rook, 'R', "Rook"},
		{Knight, 'N', "Knight"},
		{Bishop, 'B', "Bishop"},
		{Queen, 'Q', "Queen"},
		{King, 'K', "King"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.Glyph(); got != tt.glyph {
				t.Errorf("Glyph() = %c; want %c", got, tt.glyph)
			}
			if got := tt.kind.String(); got != tt.name {
				t.Errorf("String() = %q; want %q", got, tt.name)
			}
			got, err := PieceKindFromGlyph(tt.glyph)
			if err != nil {
				t.Fatalf("PieceKindFromGlyph(%c) error = %v", tt.glyph, err)
			}
			if got != tt.kind {
				t.Errorf("PieceKindFromGlyph(%c) = %v; want %v", tt.glyph, got, tt.kind)
			}
		})
	}
}

func TestPieceKindFromGlyph_Rejects(t *testing.T) {
	for _, c := range []byte{'p', 'k', 'X', ' ', '1', 0} {
		if _, err := PieceKindFromGlyph(c); !errors.Is(err, chesserrors.ErrInvalidFormat) {
			t.Errorf("PieceKindFromGlyph(%q) error = %v; want ErrInvalidFormat", c, err)
		}
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		file, rank byte
		want       Square
		wantErr    bool
	}{
		{'a', '1', Square{Row: 0, Col: 0}, false},
		{'h', '8', Square{Row: 7, Col: 7}, false},
		{'e', '4', Square{Row: 3, Col: 4}, false},
		{'i', '1', Square{}, true},
		{'a', '9', Square{}, true},
		{'a', '0', Square{}, true},
		{'A', '1', Square{}, true},
		{'`', '1', Square{}, true},
	}

	for _, tt := range tests {
		got, err := ParseSquare(tt.file, tt.rank)
		if tt.wantErr {
			if !errors.Is(err, chesserrors.ErrInvalidFormat) {
				t.Errorf("ParseSquare(%c, %c) error = %v; want ErrInvalidFormat", tt.file, tt.rank, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSquare(%c, %c) error = %v", tt.file, tt.rank, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSquare(%c, %c) = %+v; want %+v", tt.file, tt.rank, got, tt.want)
		}
		if s := got.String(); s != string([]byte{tt.file, tt.rank}) {
			t.Errorf("String() = %q; want %c%c", s, tt.file, tt.rank)
		}
	}
}

func TestNewSquare(t *testing.T) {
	if sq, err := NewSquare(3, 4); err != nil || sq.String() != "e4" {
		t.Errorf("NewSquare(3, 4) = %v, %v; want e4", sq, err)
	}
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		if _, err := NewSquare(rc[0], rc[1]); !errors.Is(err, chesserrors.ErrInvalidFormat) {
			t.Errorf("NewSquare(%d, %d) error = %v; want ErrInvalidFormat", rc[0], rc[1], err)
		}
	}
}

func TestSquareValid(t *testing.T) {
	tests := []struct {
		sq   Square
		want bool
	}{
		{Square{Row: 0, Col: 0}, true},
		{Square{Row: 7, Col: 7}, true},
		{Square{Row: 8, Col: 0}, false},
		{Square{Row: 0, Col: -1}, false},
		{Square{Row: 9}, false},
	}

	for _, tt := range tests {
		if got := tt.sq.Valid(); got != tt.want {
			t.Errorf("%+v.Valid() = %v; want %v", tt.sq, got, tt.want)
		}
		if _, err := NewSquare(tt.sq.Row, tt.sq.Col); (err == nil) != tt.want {
			t.Errorf("NewSquare(%d, %d) error = %v; want valid=%v", tt.sq.Row, tt.sq.Col, err, tt.want)
		}
	}
}

func TestGeometry(t *testing.T) {
	tests := []struct {
		start, end                     string
		horizontal, vertical, diagonal bool
	}{
		{"a1", "h1", true, false, false},
		{"c2", "c7", false, true, false},
		{"a1", "h8", false, false, true},
		{"h1", "a8", false, false, true},
		{"b1", "c3", false, false, false},
	}

	for _, tt := range tests {
		s, e := MustParseSquare(tt.start), MustParseSquare(tt.end)
		if got := IsHorizontal(s, e); got != tt.horizontal {
			t.Errorf("IsHorizontal(%s, %s) = %v", tt.start, tt.end, got)
		}
		if got := IsVertical(s, e); got != tt.vertical {
			t.Errorf("IsVertical(%s, %s) = %v", tt.start, tt.end, got)
		}
		if got := IsDiagonal(s, e); got != tt.diagonal {
			t.Errorf("IsDiagonal(%s, %s) = %v", tt.start, tt.end, got)
		}
		want := tt.horizontal || tt.vertical || tt.diagonal
		if got := IsStraight(s, e); got != want {
			t.Errorf("IsStraight(%s, %s) = %v; want %v", tt.start, tt.end, got, want)
		}
	}
}
