package notation

import (
	"testing"

	"go.eastwood.dev/chessboard/castling"
	"go.eastwood.dev/chessboard/color"
)

func TestParsePawnMoves(t *testing.T) {
	tests := []struct {
		pgn  string
		want Descriptor
	}{
		{"e4", Descriptor{Color: color.W, ID: "P", SqNext: "e4", Kind: Pawn, PGN: "e4"}},
		{"exd5", Descriptor{Color: color.W, ID: "P", SqCurrent: "e", IsCapture: true, SqNext: "d5", Kind: PawnCaptures, PGN: "exd5"}},
		{"a8=Q", Descriptor{Color: color.W, ID: "P", SqNext: "a8", Kind: PawnPromotes, NewID: "Q", PGN: "a8=Q"}},
		{"a8=N", Descriptor{Color: color.W, ID: "P", SqNext: "a8", Kind: PawnPromotes, NewID: "N", PGN: "a8=N"}},
	}

	for _, test := range tests {
		t.Run(test.pgn, func(t *testing.T) {
			got, err := Parse(color.W, test.pgn)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != test.want {
				t.Errorf("Parse(%q) = %+v, want %+v", test.pgn, got, test.want)
			}
		})
	}
}

func TestParsePieceMovesTable(t *testing.T) {
	tests := []struct {
		pgn       string
		id        string
		sqCurrent string
		isCapture bool
		sqNext    string
		kind      Kind
	}{
		{"Nf3", "N", "", false, "f3", Piece},
		{"Nbd7", "N", "b", false, "d7", Piece},
		{"N1d2", "N", "1", false, "d2", Piece},
		{"Nb1d2", "N", "b1", false, "d2", Piece},
		{"Rxf7", "R", "", true, "f7", PieceCaptures},
		{"Qh5", "Q", "", false, "h5", Piece},
		{"Kxf7", "K", "", true, "f7", KingCaptures},
		{"Ke2", "K", "", false, "e2", King},
	}

	for _, test := range tests {
		t.Run(test.pgn, func(t *testing.T) {
			got, err := Parse(color.W, test.pgn)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != test.id || got.SqCurrent != test.sqCurrent || got.IsCapture != test.isCapture ||
				got.SqNext != test.sqNext || got.Kind != test.kind {
				t.Errorf("Parse(%q) = %+v, want id=%s cur=%s cap=%v next=%s kind=%s",
					test.pgn, got, test.id, test.sqCurrent, test.isCapture, test.sqNext, test.kind)
			}
		})
	}
}

func TestParseCastling(t *testing.T) {
	tests := []struct {
		pgn  string
		kind Kind
	}{
		{"O-O", CastleShort},
		{"O-O-O", CastleLong},
		{"0-0", CastleShort},
		{"0-0-0", CastleLong},
	}
	for _, test := range tests {
		t.Run(test.pgn, func(t *testing.T) {
			got, err := Parse(color.B, test.pgn)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Kind != test.kind || got.ID != "K" || got.Color != color.B {
				t.Errorf("Parse(%q) = %+v", test.pgn, got)
			}
		})
	}
}

func TestParseCheckAndMateSuffixes(t *testing.T) {
	for _, pgn := range []string{"Qh4#", "Qh4+", "O-O+", "O-O-O#"} {
		if _, err := Parse(color.W, pgn); err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", pgn, err)
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, pgn := range []string{"", "zzz", "e9", "Zf3", "i4"} {
		if _, err := Parse(color.W, pgn); err == nil {
			t.Errorf("Parse(%q) expected error, got none", pgn)
		}
	}
}

func TestCastleToken(t *testing.T) {
	if CastleToken(castling.Short) != "O-O" {
		t.Error("expected O-O for short side")
	}
	if CastleToken(castling.Long) != "O-O-O" {
		t.Error("expected O-O-O for long side")
	}
}

func TestExplodeSqs(t *testing.T) {
	tests := []struct {
		lan      string
		from     string
		to       string
		promo    string
		hasError bool
	}{
		{"e2e4", "e2", "e4", "", false},
		{"e7e8q", "e7", "e8", "Q", false},
		{"e7e8Q", "e7", "e8", "Q", false},
		{"e2e", "", "", "", true},
		{"e2e4qq", "", "", "", true},
	}
	for _, test := range tests {
		t.Run(test.lan, func(t *testing.T) {
			from, to, promo, err := ExplodeSqs(test.lan)
			if test.hasError {
				if err == nil {
					t.Fatalf("expected error for %q", test.lan)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if from != test.from || to != test.to || promo != test.promo {
				t.Errorf("ExplodeSqs(%q) = (%q,%q,%q), want (%q,%q,%q)",
					test.lan, from, to, promo, test.from, test.to, test.promo)
			}
		})
	}
}
