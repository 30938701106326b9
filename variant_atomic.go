package chess

// atomicRules implements Atomic chess: every capture detonates,
// removing the capturing piece and every non-pawn piece within one
// square of the capture square, including kings. A move
// that would explode the mover's own king is illegal.
type atomicRules struct{ baseRules }

func (atomicRules) id() VariantID { return VariantAtomic }

func (atomicRules) startingSetup() *Setup { return DefaultSetup() }

func (atomicRules) validateBasic(s *Setup) error {
	return standardRules{}.validateBasic(s)
}

// afterMove detonates the capture square once the shared do_move has
// already applied the ordinary move effect. Castling rights covering any
// detonated square are discarded along with the rook that held them.
func (atomicRules) afterMove(pos *Position, m Move, captured Piece) {
	if captured == NoPiece {
		return
	}
	board := pos.Board()
	center := m.To
	board.RemovePieceAt(center)
	if pos.setup.Castles != nil {
		pos.setup.Castles.DiscardRook(center)
	}
	blast := attacksKingBB(center)
	rem := blast
	for rem != 0 {
		sq, _ := rem.First()
		rem = rem.Without(sq)
		if p := board.PieceAt(sq); p != NoPiece && p.Role() != Role_Pawn {
			board.RemovePieceAt(sq)
			if pos.setup.Castles != nil {
				pos.setup.Castles.DiscardRook(sq)
			}
		}
	}
}

// filterMoves removes captures that would blow up the mover's own king,
// which Atomic forbids outright.
func (atomicRules) filterMoves(pos *Position, list *MoveList) {
	turn := pos.Turn()
	list.retain(func(m Move) bool {
		if !m.IsCapture() {
			return true
		}
		scratch := pos.setup.clone()
		pos.doMove(scratch, m)
		capturedPiece := NewPiece(turn.Other(), m.Capture)
		atomicRules{}.afterMove(&Position{setup: scratch, rules: pos.rules}, m, capturedPiece)
		return scratch.Board.KingOf(turn) != NoSquare
	})
}

func (atomicRules) variantOutcome(pos *Position) (Outcome, bool) {
	if pos.Board().KingOf(White) == NoSquare {
		return Outcome{Decisive: true, Winner: Black, Method: MethodVariantEnd}, true
	}
	if pos.Board().KingOf(Black) == NoSquare {
		return Outcome{Decisive: true, Winner: White, Method: MethodVariantEnd}, true
	}
	return Outcome{}, false
}

// kingAttackers: a king adjacent to sq can never be the attacker giving
// check there, since capturing into that square would explode both
// kings at once; two kings standing next to each other shield one
// another from check entirely.
func (atomicRules) kingAttackers(pos *Position, sq Square, attacker Color, occ Bitboard) Bitboard {
	board := pos.Board()
	if attacksKingBB(sq)&board.ByPiece(NewPiece(attacker, Role_King)) != 0 {
		return BbEmpty
	}
	return board.AttacksTo(sq, attacker, occ)
}

func (atomicRules) insufficientMaterial(pos *Position) bool {
	board := pos.Board()
	if board.ByRole(Role_Pawn)|board.ByRole(Role_Queen) != 0 {
		return false
	}
	minorsAndRooks := board.ByRole(Role_Knight) | board.ByRole(Role_Bishop) | board.ByRole(Role_Rook)
	if minorsAndRooks.Count() == 1 {
		return true
	}
	kings := board.ByRole(Role_King)
	knights := board.ByRole(Role_Knight)
	if board.Occupied() == kings|knights {
		return knights.Count() <= 2
	}
	bishops := board.ByRole(Role_Bishop)
	if board.Occupied() == kings|bishops {
		whiteBishops := board.ByPiece(NewPiece(White, Role_Bishop))
		blackBishops := board.ByPiece(NewPiece(Black, Role_Bishop))
		if whiteBishops&DarkSquares == 0 {
			return blackBishops&LightSquares == 0
		}
		if whiteBishops&LightSquares == 0 {
			return blackBishops&DarkSquares == 0
		}
	}
	return false
}
