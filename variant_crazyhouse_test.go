package chess

import "testing"

func TestCrazyhouseCaptureCreditsPocket(t *testing.T) {
	pos := NewPosition(VariantCrazyhouse)
	if pos.Pockets() == nil {
		t.Fatal("a fresh crazyhouse position should start with empty, non-nil pockets")
	}
	pos = playUci(t, pos, "e2e4", "d7d5")
	next := playUci(t, pos, "e4d5")
	if next.Pockets().Count(White, Role_Pawn) != 1 {
		t.Fatalf("white pocket pawn count after capturing = %d, want 1", next.Pockets().Count(White, Role_Pawn))
	}
}

func TestCrazyhousePromotedPieceRevertsToPawnInPocket(t *testing.T) {
	board := EmptyBoard()
	board.SetPieceAt(A7, NewPiece(White, Role_Pawn), false)
	board.SetPieceAt(B8, NewPiece(Black, Role_Rook), false)
	board.SetPieceAt(B4, NewPiece(Black, Role_Rook), false)
	board.SetPieceAt(E1, NewPiece(White, Role_King), false)
	board.SetPieceAt(E8, NewPiece(Black, Role_King), false)
	setup := &Setup{Board: board, Turn: White, Castles: EmptyCastles(), EpSquare: NoSquare, Pockets: &Pockets{}, Fullmoves: 1}
	pos, err := FromSetup(VariantCrazyhouse, setup)
	if err != nil {
		t.Fatalf("FromSetup: %v", err)
	}
	pos = playUci(t, pos, "a7b8q")
	if pos.Board().PieceAt(B8) != NewPiece(White, Role_Queen) {
		t.Fatal("white should have a promoted queen on b8")
	}
	if !pos.Board().Promoted().Contains(B8) {
		t.Fatal("the queen on b8 should be marked promoted")
	}
	// Black's other rook, still on b4, recaptures the promoted queen in
	// one move; the pocket credit should revert it to a pawn.
	next := playUci(t, pos, "b4b8")
	if next.Pockets().Count(Black, Role_Queen) != 0 {
		t.Fatal("capturing a promoted piece should never credit a queen to the pocket")
	}
	if next.Pockets().Count(Black, Role_Pawn) != 1 {
		t.Fatalf("black pocket pawn count = %d, want 1", next.Pockets().Count(Black, Role_Pawn))
	}
}

func TestCrazyhouseDropIsLegalMove(t *testing.T) {
	board := DefaultBoard()
	pockets := &Pockets{}
	pockets.Add(White, Role_Knight, 1)
	setup := &Setup{Board: board, Turn: White, Castles: DefaultCastles(), EpSquare: NoSquare, Pockets: pockets, Fullmoves: 1}
	pos, err := FromSetup(VariantCrazyhouse, setup)
	if err != nil {
		t.Fatalf("FromSetup: %v", err)
	}
	found := false
	for _, m := range pos.LegalMoves().Slice() {
		if m.Kind == MovePut && m.Role == Role_Knight && m.To == F3 {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a legal drop of the pocket knight onto f3")
	}
	next := playUci(t, pos, "N@f3")
	if next.Board().PieceAt(F3) != NewPiece(White, Role_Knight) {
		t.Fatal("the dropped knight should appear on f3")
	}
	if next.Pockets().Count(White, Role_Knight) != 0 {
		t.Fatal("dropping the pocket knight should empty that pocket slot")
	}
}

func TestCrazyhousePawnCannotDropOnBackRank(t *testing.T) {
	board := EmptyBoard()
	board.SetPieceAt(E1, NewPiece(White, Role_King), false)
	board.SetPieceAt(E8, NewPiece(Black, Role_King), false)
	pockets := &Pockets{}
	pockets.Add(White, Role_Pawn, 1)
	setup := &Setup{Board: board, Turn: White, Castles: EmptyCastles(), EpSquare: NoSquare, Pockets: pockets, Fullmoves: 1}
	pos, err := FromSetup(VariantCrazyhouse, setup)
	if err != nil {
		t.Fatalf("FromSetup: %v", err)
	}
	sawRankOneTarget := false
	for _, m := range pos.LegalMoves().Slice() {
		if m.Kind == MovePut && m.Role == Role_Pawn {
			if m.To.Rank() == 0 || m.To.Rank() == 7 {
				t.Fatalf("pawn drop to %v should not be generated on a back rank", m.To)
			}
			if m.To.Rank() == 1 {
				sawRankOneTarget = true
			}
		}
	}
	if !sawRankOneTarget {
		t.Fatal("expected at least one legal pawn drop on rank 2")
	}
}
