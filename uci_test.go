package chess

import "testing"

func TestUciNullMoveRoundTrip(t *testing.T) {
	pos := NewPosition(VariantStandard)
	m, err := ParseUci(pos, "0000")
	if err != nil {
		t.Fatalf("ParseUci: %v", err)
	}
	if !m.IsNull() {
		t.Fatal("parsed move should be the null move")
	}
	if got := pos.Uci(m); got != "0000" {
		t.Fatalf("Uci(null) = %q, want 0000", got)
	}
}

func TestUciNormalMoveRoundTrip(t *testing.T) {
	pos := NewPosition(VariantStandard)
	m, err := ParseUci(pos, "e2e4")
	if err != nil {
		t.Fatalf("ParseUci: %v", err)
	}
	if m.From != E2 || m.To != E4 || m.Role != Role_Pawn {
		t.Fatalf("parsed move = %+v, want e2-e4 pawn push", m)
	}
	if got := pos.Uci(m); got != "e2e4" {
		t.Fatalf("Uci() = %q, want e2e4", got)
	}
}

func TestUciPromotionNotation(t *testing.T) {
	board := EmptyBoard()
	board.SetPieceAt(A7, NewPiece(White, Role_Pawn), false)
	board.SetPieceAt(E1, NewPiece(White, Role_King), false)
	board.SetPieceAt(E8, NewPiece(Black, Role_King), false)
	setup := &Setup{Board: board, Turn: White, Castles: EmptyCastles(), EpSquare: NoSquare, Fullmoves: 1}
	pos, err := FromSetup(VariantStandard, setup)
	if err != nil {
		t.Fatalf("FromSetup: %v", err)
	}
	m, err := ParseUci(pos, "a7a8q")
	if err != nil {
		t.Fatalf("ParseUci: %v", err)
	}
	if m.Promotion != Role_Queen {
		t.Fatalf("promotion role = %v, want queen", m.Promotion)
	}
	if got := pos.Uci(m); got != "a7a8q" {
		t.Fatalf("Uci() = %q, want a7a8q", got)
	}
}

func TestUciDropNotation(t *testing.T) {
	board := DefaultBoard()
	pockets := &Pockets{}
	pockets.Add(White, Role_Knight, 1)
	setup := &Setup{Board: board, Turn: White, Castles: DefaultCastles(), EpSquare: NoSquare, Pockets: pockets, Fullmoves: 1}
	pos, err := FromSetup(VariantCrazyhouse, setup)
	if err != nil {
		t.Fatalf("FromSetup: %v", err)
	}
	m, err := ParseUci(pos, "N@f3")
	if err != nil {
		t.Fatalf("ParseUci: %v", err)
	}
	if m.Kind != MovePut || m.Role != Role_Knight || m.To != F3 {
		t.Fatalf("parsed drop = %+v, want knight drop to f3", m)
	}
	if m.From != NoSquare {
		t.Fatal("a drop move must have no origin square")
	}
	if got := pos.Uci(m); got != "N@f3" {
		t.Fatalf("Uci() = %q, want N@f3", got)
	}
}

func TestUciCastlingBothConventionsAgree(t *testing.T) {
	pos := NewPosition(VariantStandard)
	pos = playUci(t, pos,
		"g1f3", "g8f6",
		"g2g3", "g7g6",
		"f1g2", "f8g7",
	)
	// The traditional "king hops two files" encoding...
	traditional, err := ParseUci(pos, "e1g1")
	if err != nil {
		t.Fatalf("ParseUci(traditional): %v", err)
	}
	// ...and the Chess960-style "king to rook square" encoding...
	chess960, err := ParseUci(pos, "e1h1")
	if err != nil {
		t.Fatalf("ParseUci(chess960): %v", err)
	}
	// ...must resolve to the identical castling move.
	if traditional != chess960 {
		t.Fatalf("castling decodings disagree: %+v vs %+v", traditional, chess960)
	}
	if traditional.Kind != MoveCastle {
		t.Fatal("expected a castle move")
	}
}

func TestUciRejectsGarbage(t *testing.T) {
	pos := NewPosition(VariantStandard)
	for _, bad := range []string{"", "e2", "z9z9", "e2e4x"} {
		if _, err := ParseUci(pos, bad); err == nil {
			t.Errorf("ParseUci(%q) should fail", bad)
		}
	}
}
