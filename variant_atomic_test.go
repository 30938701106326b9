package chess

import "testing"

func TestAtomicCaptureExplodesSurroundingNonPawns(t *testing.T) {
	board := EmptyBoard()
	board.SetPieceAt(E1, NewPiece(White, Role_King), false)
	board.SetPieceAt(E8, NewPiece(Black, Role_King), false)
	board.SetPieceAt(D4, NewPiece(White, Role_Rook), false)
	board.SetPieceAt(D5, NewPiece(Black, Role_Pawn), false)
	board.SetPieceAt(C5, NewPiece(Black, Role_Knight), false)
	setup := &Setup{Board: board, Turn: White, Castles: EmptyCastles(), EpSquare: NoSquare, Fullmoves: 1}
	pos, err := FromSetup(VariantAtomic, setup)
	if err != nil {
		t.Fatalf("FromSetup: %v", err)
	}
	next := playUci(t, pos, "d4d5")
	if next.Board().IsOccupied(D5) {
		t.Fatal("the capturing rook itself should have been destroyed by the explosion")
	}
	if next.Board().IsOccupied(C5) {
		t.Fatal("the adjacent knight should have been destroyed by the explosion")
	}
}

func TestAtomicExplosionNeverRemovesPawnsAtTheBlastEdge(t *testing.T) {
	board := EmptyBoard()
	board.SetPieceAt(E1, NewPiece(White, Role_King), false)
	board.SetPieceAt(E8, NewPiece(Black, Role_King), false)
	board.SetPieceAt(D4, NewPiece(White, Role_Rook), false)
	board.SetPieceAt(D5, NewPiece(Black, Role_Pawn), false)
	board.SetPieceAt(C5, NewPiece(Black, Role_Pawn), false)
	setup := &Setup{Board: board, Turn: White, Castles: EmptyCastles(), EpSquare: NoSquare, Fullmoves: 1}
	pos, err := FromSetup(VariantAtomic, setup)
	if err != nil {
		t.Fatalf("FromSetup: %v", err)
	}
	next := playUci(t, pos, "d4d5")
	if !next.Board().IsOccupied(C5) {
		t.Fatal("pawns survive the blast: c5 should still hold the black pawn")
	}
}

func TestAtomicForbidsSelfDestructingCapture(t *testing.T) {
	// White king on d3 sits adjacent to e4; capturing there would detonate
	// and take the white king along with it, so the capture must be
	// excluded from the legal move list entirely.
	board := EmptyBoard()
	board.SetPieceAt(D3, NewPiece(White, Role_King), false)
	board.SetPieceAt(E8, NewPiece(Black, Role_King), false)
	board.SetPieceAt(H1, NewPiece(White, Role_Bishop), false)
	board.SetPieceAt(E4, NewPiece(Black, Role_Knight), false)
	setup := &Setup{Board: board, Turn: White, Castles: EmptyCastles(), EpSquare: NoSquare, Fullmoves: 1}
	pos, err := FromSetup(VariantAtomic, setup)
	if err != nil {
		t.Fatalf("FromSetup: %v", err)
	}
	for _, m := range pos.LegalMoves().Slice() {
		if m.From == H1 && m.To == E4 {
			t.Fatal("Bxe4 should be illegal: it would explode the white king on d3")
		}
	}
}

func TestAtomicExplosionDiscardsCastlingRightsOfBlastedRook(t *testing.T) {
	// The rook on h8 sits within the blast radius of a capture on g8; once
	// it explodes, black's kingside castling right must go with it.
	board := EmptyBoard()
	board.SetPieceAt(E1, NewPiece(White, Role_King), false)
	board.SetPieceAt(E8, NewPiece(Black, Role_King), false)
	board.SetPieceAt(H8, NewPiece(Black, Role_Rook), false)
	board.SetPieceAt(G7, NewPiece(White, Role_Rook), false)
	board.SetPieceAt(G8, NewPiece(Black, Role_Bishop), false)
	castles := EmptyCastles()
	castles.SetRight(Black, HSide, E8, H8)
	setup := &Setup{Board: board, Turn: White, Castles: castles, EpSquare: NoSquare, Fullmoves: 1}
	pos, err := FromSetup(VariantAtomic, setup)
	if err != nil {
		t.Fatalf("FromSetup: %v", err)
	}
	next := playUci(t, pos, "g7g8")
	if next.Board().IsOccupied(H8) {
		t.Fatal("the rook on h8 should have been exploded")
	}
	if next.Castles().Has(Black, HSide) {
		t.Fatal("black's kingside castling right should have been discarded along with the exploded rook")
	}
}

func TestAtomicKingsShieldEachOtherFromCheck(t *testing.T) {
	// Two kings standing adjacent can never check one another in atomic:
	// capturing either would detonate both.
	board := EmptyBoard()
	board.SetPieceAt(E4, NewPiece(White, Role_King), false)
	board.SetPieceAt(E5, NewPiece(Black, Role_King), false)
	setup := &Setup{Board: board, Turn: White, Castles: EmptyCastles(), EpSquare: NoSquare, Fullmoves: 1}
	pos, err := FromSetup(VariantAtomic, setup)
	if err != nil {
		t.Fatalf("FromSetup: %v", err)
	}
	if pos.IsCheck() {
		t.Fatal("adjacent kings should never be considered to be giving check in atomic")
	}
}

func TestAtomicCaptureAdjacentToEnemyKingEndsTheGame(t *testing.T) {
	// The black king on e8 never gets touched directly; capturing the
	// knight next to it on d8 is what blows it up.
	board := EmptyBoard()
	board.SetPieceAt(A8, NewPiece(White, Role_Rook), false)
	board.SetPieceAt(D8, NewPiece(Black, Role_Knight), false)
	board.SetPieceAt(E8, NewPiece(Black, Role_King), false)
	board.SetPieceAt(H1, NewPiece(White, Role_King), false)
	setup := &Setup{Board: board, Turn: White, Castles: EmptyCastles(), EpSquare: NoSquare, Fullmoves: 1}
	pos, err := FromSetup(VariantAtomic, setup)
	if err != nil {
		t.Fatalf("FromSetup: %v", err)
	}
	next := playUci(t, pos, "a8d8")
	if next.Board().KingOf(Black) != NoSquare {
		t.Fatal("capturing next to the black king should have exploded it")
	}
	outcome, over := next.Outcome()
	if !over || !outcome.Decisive || outcome.Winner != White {
		t.Fatalf("Outcome() = %+v, %v; want a decisive White win", outcome, over)
	}
}
