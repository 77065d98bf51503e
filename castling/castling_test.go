package castling

import (
	"testing"

	"go.eastwood.dev/chessboard/color"
)

func TestStandardEntries(t *testing.T) {
	rule := Standard()

	tests := []struct {
		c      color.Color
		side   Side
		king   Squares
		rook   Squares
	}{
		{color.W, Short, Squares{"e1", "g1"}, Squares{"h1", "f1"}},
		{color.W, Long, Squares{"e1", "c1"}, Squares{"a1", "d1"}},
		{color.B, Short, Squares{"e8", "g8"}, Squares{"h8", "f8"}},
		{color.B, Long, Squares{"e8", "c8"}, Squares{"a8", "d8"}},
	}

	for _, test := range tests {
		entry, ok := rule.Entry(test.c, test.side)
		if !ok {
			t.Fatalf("Entry(%v,%v) not found", test.c, test.side)
		}
		if entry.King != test.king || entry.Rook != test.rook {
			t.Errorf("Entry(%v,%v) = %+v, want King=%v Rook=%v", test.c, test.side, entry, test.king, test.rook)
		}
	}
}

func TestCan(t *testing.T) {
	rule := Standard()
	can := rule.Can("KQkq", color.W)
	if !can[Short] || !can[Long] {
		t.Errorf("expected both sides available, got %+v", can)
	}

	can = rule.Can("kq", color.W)
	if can[Short] || can[Long] {
		t.Errorf("expected no rights for white, got %+v", can)
	}
}

func TestUpdate(t *testing.T) {
	rule := Standard()

	tests := []struct {
		ab     string
		c      color.Color
		remove []Side
		want   string
	}{
		{"KQkq", color.W, []Side{Short}, "Qkq"},
		{"KQkq", color.W, []Side{Short, Long}, "kq"},
		{"Kkq", color.W, []Side{Short}, "kq"},
		{"K", color.W, []Side{Short}, "-"},
	}

	for _, test := range tests {
		if got := rule.Update(test.ab, test.c, test.remove); got != test.want {
			t.Errorf("Update(%q,%v,%v) = %q, want %q", test.ab, test.c, test.remove, got, test.want)
		}
	}
}

func TestCastleRemovesBothRights(t *testing.T) {
	rule := Standard()
	if got := rule.Castle("KQkq", color.W); got != "kq" {
		t.Errorf("Castle(KQkq,W) = %q, want kq", got)
	}
	if got := rule.Castle("kq", color.B); got != "-" {
		t.Errorf("Castle(kq,B) = %q, want -", got)
	}
}

func TestRookHome(t *testing.T) {
	rule := Standard()
	home, ok := rule.RookHome(color.W, Short)
	if !ok || home != "h1" {
		t.Errorf("RookHome(W,Short) = (%q,%v), want (h1,true)", home, ok)
	}
}

func TestNewCustomTable(t *testing.T) {
	rule := New(map[color.Color]map[Side]Entry{
		color.W: {
			Short: {King: Squares{"e1", "f1"}, Rook: Squares{"g1", "g1"}},
		},
	})
	entry, ok := rule.Entry(color.W, Short)
	if !ok || entry.King.Next != "f1" {
		t.Errorf("custom Entry = %+v, ok=%v", entry, ok)
	}
	if _, ok := rule.Entry(color.B, Short); ok {
		t.Error("black entry should not exist in a partial custom table")
	}
}
