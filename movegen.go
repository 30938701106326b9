package chess

// generatePseudoLegal fills list with every pseudo-legal move for the
// side to move: piece geometry and occupancy are respected, but check,
// pin and castling-safety are not (LegalMoves applies those filters
// afterward, in a second pass).
func (p *Position) generatePseudoLegal(list *MoveList) {
	turn := p.Turn()
	board := p.Board()
	own := board.ByColor(turn)
	enemy := board.ByColor(turn.Other())
	occ := board.Occupied()

	p.generatePawnMoves(list, turn, board, enemy)

	genStep := func(role Role, from Square, targets Bitboard) {
		rem := targets &^ own
		for rem != 0 {
			to, _ := rem.First()
			rem = rem.Without(to)
			capture := Role_None
			if enemy.Contains(to) {
				capture = board.RoleAt(to)
			}
			list.Push(NormalMove(role, from, to, capture, Role_None))
		}
	}

	knights := board.ByPiece(NewPiece(turn, Role_Knight))
	for knights != 0 {
		from, _ := knights.First()
		knights = knights.Without(from)
		genStep(Role_Knight, from, attacksKnightBB(from))
	}
	bishops := board.ByPiece(NewPiece(turn, Role_Bishop))
	for bishops != 0 {
		from, _ := bishops.First()
		bishops = bishops.Without(from)
		genStep(Role_Bishop, from, attacksBishopBB(from, occ))
	}
	rooks := board.ByPiece(NewPiece(turn, Role_Rook))
	for rooks != 0 {
		from, _ := rooks.First()
		rooks = rooks.Without(from)
		genStep(Role_Rook, from, attacksRookBB(from, occ))
	}
	queens := board.ByPiece(NewPiece(turn, Role_Queen))
	for queens != 0 {
		from, _ := queens.First()
		queens = queens.Without(from)
		genStep(Role_Queen, from, attacksQueenBB(from, occ))
	}
	if king := board.KingOf(turn); king != NoSquare {
		genStep(Role_King, king, attacksKingBB(king))
		p.generateCastleCandidates(list, turn, king)
	}
}

func (p *Position) generatePawnMoves(list *MoveList, turn Color, board *Board, enemy Bitboard) {
	forward := turn.Forward()
	startRank := Fold(turn, Rank(1), Rank(6))
	promoRank := Fold(turn, Rank(7), Rank(0))
	occ := board.Occupied()

	promoRoles := p.rules.promotionRoles()
	pawns := board.ByPiece(NewPiece(turn, Role_Pawn))
	for pawns != 0 {
		from, _ := pawns.First()
		pawns = pawns.Without(from)

		if one, ok := from.Offset(forward); ok && !occ.Contains(one) {
			pushPawnTarget(list, from, one, Role_None, promoRank, promoRoles)
			if from.Rank() == startRank {
				if two, ok2 := from.Offset(2 * forward); ok2 && !occ.Contains(two) {
					list.Push(NormalMove(Role_Pawn, from, two, Role_None, Role_None))
				}
			}
		}

		targets := attacksPawnBB(turn, from) & enemy
		for targets != 0 {
			to, _ := targets.First()
			targets = targets.Without(to)
			pushPawnTarget(list, from, to, board.RoleAt(to), promoRank, promoRoles)
		}

		if ep := p.EpSquare(); ep != NoSquare && attacksPawnBB(turn, from).Contains(ep) {
			list.Push(EnPassantMove(from, ep))
		}
	}
}

func pushPawnTarget(list *MoveList, from, to Square, capture Role, promoRank Rank, promoRoles []Role) {
	if to.Rank() == promoRank {
		for _, role := range promoRoles {
			list.Push(NormalMove(Role_Pawn, from, to, capture, role))
		}
		return
	}
	list.Push(NormalMove(Role_Pawn, from, to, capture, Role_None))
}

// generateCastleCandidates appends a MoveCastle candidate for every
// castling right the side to move still holds; path-clearness and
// attacked-square safety are validated later by isCastleSafe.
func (p *Position) generateCastleCandidates(list *MoveList, turn Color, king Square) {
	c := p.Castles()
	if c == nil {
		return
	}
	for _, side := range [2]CastlingSide{ASide, HSide} {
		if rook, ok := c.RookSquare(turn, side); ok {
			list.Push(CastleMove(king, rook))
		}
	}
}
