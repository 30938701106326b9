package chess

import "testing"

func TestKingOfTheHillWinsByReachingCenter(t *testing.T) {
	board := EmptyBoard()
	board.SetPieceAt(D3, NewPiece(White, Role_King), false)
	board.SetPieceAt(H8, NewPiece(Black, Role_King), false)
	setup := &Setup{Board: board, Turn: White, Castles: EmptyCastles(), EpSquare: NoSquare, Fullmoves: 1}
	pos, err := FromSetup(VariantKingOfTheHill, setup)
	if err != nil {
		t.Fatalf("FromSetup: %v", err)
	}
	if _, over := pos.Outcome(); over {
		t.Fatal("the game should not be over before the king reaches the hill")
	}
	next := playUci(t, pos, "d3d4")
	outcome, over := next.Outcome()
	if !over {
		t.Fatal("reaching d4 should end the game")
	}
	if !outcome.Decisive || outcome.Winner != White || outcome.Method != MethodVariantEnd {
		t.Fatalf("Outcome() = %+v, want a decisive White win by variant end", outcome)
	}
}

func TestKingOfTheHillOrdinaryCheckmateStillApplies(t *testing.T) {
	pos := NewPosition(VariantKingOfTheHill)
	pos = playUci(t, pos, "f2f3", "e7e5", "g2g4", "d8h4")
	if !pos.IsCheckmate() {
		t.Fatal("the shared checkmate rule should still apply away from the hill")
	}
}
