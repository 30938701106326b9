package chess

// Position is an immutable, validated chess position for some variant.
// The shared engine in this file implements the board-geometry parts of
// move generation and application that every variant shares; variant-specific
// behavior is supplied by the
// rules value.
type Position struct {
	setup *Setup
	rules variantRules
}

// NewPosition returns the starting position for variant.
func NewPosition(variant VariantID) *Position {
	r := rulesFor(variant)
	return &Position{setup: r.startingSetup(), rules: r}
}

// FromSetup validates setup against variant's rules and, if legal,
// returns the corresponding Position.
func FromSetup(variant VariantID, setup *Setup) (*Position, error) {
	r := rulesFor(variant)
	if err := validateBasicCommon(setup); err != nil {
		return nil, err
	}
	if err := r.validateBasic(setup); err != nil {
		return nil, err
	}
	pos := &Position{setup: setup, rules: r}
	if err := validateChecksCommon(pos); err != nil {
		return nil, err
	}
	return pos, nil
}

// Board, Turn, Castles, EpSquare, Pockets, RemainingChecks, HalfmoveClock
// and Fullmoves expose the underlying Setup fields.
func (p *Position) Board() *Board                       { return p.setup.Board }
func (p *Position) Turn() Color                          { return p.setup.Turn }
func (p *Position) Castles() *Castles                     { return p.setup.Castles }
func (p *Position) EpSquare() Square                      { return p.setup.EpSquare }
func (p *Position) Pockets() *Pockets                     { return p.setup.Pockets }
func (p *Position) RemainingChecks() *RemainingChecks      { return p.setup.RemainingChecks }
func (p *Position) HalfmoveClock() int                    { return p.setup.HalfmoveClock }
func (p *Position) Fullmoves() int                        { return p.setup.Fullmoves }
func (p *Position) Variant() VariantID                    { return p.rules.id() }

// Checkers returns the enemy pieces currently attacking the side to
// move's king.
func (p *Position) Checkers() Bitboard {
	king := p.Board().KingOf(p.Turn())
	if king == NoSquare {
		return BbEmpty
	}
	return p.rules.kingAttackers(p, king, p.Turn().Other(), p.Board().Occupied())
}

// IsCheck reports whether the side to move's king is attacked.
func (p *Position) IsCheck() bool {
	return p.Checkers() != 0
}

// sliderBlockers returns the set of pieces of either color that sit
// between king and an aligned enemy slider, i.e. pieces pinned against
// (or, for the attacking side, skewering toward) king. pinners, if
// non-nil, is filled with the pinning slider for
// each blocker found in the same iteration (keyed by blocker square via
// a parallel bitboard union).
func (p *Position) sliderBlockers(king Square, attacker Color) (blockers Bitboard, pinners Bitboard) {
	b := p.Board()
	occ := b.Occupied()
	snipers := (attacksRookBB(king, 0) & (b.ByPiece(NewPiece(attacker, Role_Rook)) | b.ByPiece(NewPiece(attacker, Role_Queen)))) |
		(attacksBishopBB(king, 0) & (b.ByPiece(NewPiece(attacker, Role_Bishop)) | b.ByPiece(NewPiece(attacker, Role_Queen))))
	rem := snipers
	for rem != 0 {
		sniperSq, _ := rem.First()
		rem = rem.Without(sniperSq)
		between := Bitboard(between(int(sniperSq), int(king))) & occ
		if between.Count() == 1 {
			blockers |= between
			pinners |= BbForSquare(sniperSq)
		}
	}
	return blockers, pinners
}

// isSafeNonKingMove checks, for a pseudo-legal non-king move, whether it
// resolves the check(s), if any, and does not abandon a pin.
func (p *Position) isSafeNonKingMove(m Move, checkers Bitboard, blockers Bitboard, pinners Bitboard, king Square) bool {
	if checkers != 0 {
		checker, onlyOne := checkers.SingleSquare()
		if !onlyOne {
			return false // double check: only king moves are legal
		}
		target := m.To
		if target != checker && !(Bitboard(between(int(king), int(checker)))).Contains(target) {
			return false
		}
	}
	if blockers.Contains(m.From) {
		// Pinned: the move must stay on the king-pinner line.
		rem := pinners
		for rem != 0 {
			pinnerSq, _ := rem.First()
			rem = rem.Without(pinnerSq)
			line := Bitboard(between(int(king), int(pinnerSq))) | BbForSquare(pinnerSq)
			if line.Contains(m.From) {
				if !line.Contains(m.To) {
					return false
				}
			}
		}
	}
	return true
}

func between(a, b int) uint64 { return betweenBridge(a, b) }

// Uci renders m in the UCI move sublanguage; see uci.go.
func (p *Position) Uci(m Move) string {
	return encodeUci(p, m)
}

// LegalMoves returns every legal move in the position, via
// checkers/evasions/pin analysis, generalized by variant hooks.
func (p *Position) LegalMoves() *MoveList {
	list := &MoveList{}
	p.generatePseudoLegal(list)
	p.rules.extraMoves(p, list)

	if !p.rules.usesRoyalty() {
		// No royal piece: nothing can ever be "in check", so the
		// checkers/pin/king-safety machinery below does not apply
		// (Antichess, where the king is an ordinary capturable piece).
		p.rules.filterMoves(p, list)
		return list
	}

	checkers := p.Checkers()
	king := p.Board().KingOf(p.Turn())
	var blockers, pinners Bitboard
	if king != NoSquare {
		blockers, pinners = p.sliderBlockers(king, p.Turn().Other())
	}
	list.retain(func(m Move) bool {
		if m.Kind == MoveCastle {
			return p.isCastleSafe(m)
		}
		if m.Role == Role_King && m.Kind == MoveNormal {
			return p.isKingDestinationSafe(m.To)
		}
		if m.Kind == MoveEnPassant {
			return p.isEnPassantLegal(m)
		}
		if king == NoSquare {
			return true
		}
		return p.isSafeNonKingMove(m, checkers, blockers, pinners, king)
	})
	p.rules.filterMoves(p, list)
	return list
}

// IsLegal reports whether m appears in LegalMoves. Convenience wrapper;
// callers generating many moves should use LegalMoves directly instead
// of calling this in a loop.
func (p *Position) IsLegal(m Move) bool {
	list := p.LegalMoves()
	for i := 0; i < list.Len(); i++ {
		if list.At(i).Eq(m) {
			return true
		}
	}
	return false
}

// Play returns the position reached by applying m. It checks m against
// LegalMoves and returns an IllegalMoveError if m is not legal.
func (p *Position) Play(m Move) (*Position, error) {
	if !p.IsLegal(m) {
		return nil, illegalMoveError(m)
	}
	next := p.setup.clone()
	captured := p.doMove(next, m)
	p.rules.afterMove(&Position{setup: next, rules: p.rules}, m, captured)
	return &Position{setup: next, rules: p.rules}, nil
}

// doMove applies the board-geometry effect of m to next in place
// (placement, capture removal, castling rook hop, en passant square
// bookkeeping, halfmove clock, fullmove counter, turn flip), following
// the shared move-application logic. It returns whatever piece was
// captured (NoPiece if none) so variant hooks (Crazyhouse pockets,
// Atomic explosions) can react.
func (p *Position) doMove(next *Setup, m Move) Piece {
	turn := next.Turn
	board := next.Board
	epTarget := next.EpSquare
	next.EpSquare = NoSquare

	var captured Piece
	isZeroing := false

	switch m.Kind {
	case MoveNull:
		// no board effect
	case MovePut:
		board.SetPieceAt(m.To, NewPiece(turn, m.Role), false)
		if next.Pockets != nil {
			next.Pockets.Add(turn, m.Role, -1)
		}
	case MoveCastle:
		king := m.From
		rook := m.To
		side := ASide
		if rook.File() > king.File() {
			side = HSide
		}
		kingDest := castleKingDestination(turn, side)
		rookDest := castleRookDestination(turn, side)
		board.RemovePieceAt(king)
		board.RemovePieceAt(rook)
		board.SetPieceAt(kingDest, NewPiece(turn, Role_King), false)
		board.SetPieceAt(rookDest, NewPiece(turn, Role_Rook), false)
		next.Castles.DiscardColor(turn)
	case MoveEnPassant:
		capturedSq, _ := Square(m.To).Offset(turn.Other().Forward())
		captured, _ = board.RemovePieceAt(capturedSq)
		p, _ := board.RemovePieceAt(m.From)
		board.SetPieceAt(m.To, p, false)
		isZeroing = true
	case MoveNormal:
		wasPromoted := board.Promoted().Contains(m.From)
		capturedWasPromoted := board.Promoted().Contains(m.To)
		moving, _ := board.RemovePieceAt(m.From)
		if existing, ok := board.RemovePieceAt(m.To); ok {
			captured = existing
		}
		role := m.Role
		promoted := wasPromoted
		if m.Promotion != Role_None {
			role = m.Promotion
			promoted = true
		}
		_ = moving
		board.SetPieceAt(m.To, NewPiece(turn, role), promoted)
		if next.Pockets != nil && captured != NoPiece {
			owner := captured.Color()
			role := captured.Role()
			if capturedWasPromoted && role != Role_Pawn {
				role = Role_Pawn
			}
			next.Pockets.Add(owner.Other(), role, 1)
		}
		next.Castles.DiscardRook(m.From)
		next.Castles.DiscardRook(m.To)
		if m.Role == Role_King {
			next.Castles.DiscardColor(turn)
		}
		if m.Role == Role_Pawn || captured != NoPiece {
			isZeroing = true
		}
		if m.Role == Role_Pawn && absInt(Delta(m.From, m.To)) == 16 {
			mid, _ := m.From.Offset(turn.Forward())
			if isRelevantEp(next, mid, turn) {
				next.EpSquare = mid
			}
		}
	}
	_ = epTarget

	if isZeroing {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if turn == Black {
		next.Fullmoves++
	}
	next.Turn = turn.Other()
	return captured
}

// isRelevantEp reports whether the en passant square just created could
// actually be captured: an enemy pawn must sit adjacent,
// on the same rank as the pawn that just advanced two squares.
func isRelevantEp(s *Setup, epSq Square, mover Color) bool {
	enemy := mover.Other()
	destSq, ok := epSq.Offset(mover.Forward())
	if !ok {
		return false
	}
	b := s.Board
	if left, lok := destSq.Offset(-1); lok && b.PieceAt(left) == NewPiece(enemy, Role_Pawn) {
		return true
	}
	if right, rok := destSq.Offset(1); rok && b.PieceAt(right) == NewPiece(enemy, Role_Pawn) {
		return true
	}
	return false
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func castleKingDestination(c Color, side CastlingSide) Square {
	rank := c.BackRank()
	if side == HSide {
		return NewSquare(File(6), rank)
	}
	return NewSquare(File(2), rank)
}

func castleRookDestination(c Color, side CastlingSide) Square {
	rank := c.BackRank()
	if side == HSide {
		return NewSquare(File(5), rank)
	}
	return NewSquare(File(3), rank)
}

// isKingDestinationSafe reports whether the side to move's king would be
// safe on to, given every other piece stays where it is except the king
// itself leaving its origin (so sliding x-ray through the king's old
// square is accounted for).
func (p *Position) isKingDestinationSafe(to Square) bool {
	board := p.Board()
	king := board.KingOf(p.Turn())
	occWithoutKing := board.Occupied().Without(king)
	return p.rules.kingAttackers(p, to, p.Turn().Other(), occWithoutKing) == 0
}

// isCastleSafe validates the king's path is unattacked and unoccupied
// (aside from the castling rook itself) and that the rook's path to its
// destination is clear.
func (p *Position) isCastleSafe(m Move) bool {
	turn := p.Turn()
	board := p.Board()
	king := m.From
	rook := m.To
	side := ASide
	if rook.File() > king.File() {
		side = HSide
	}
	kingDest := castleKingDestination(turn, side)
	rookDest := castleRookDestination(turn, side)

	occ := board.Occupied().Without(king).Without(rook)
	kingPath := Bitboard(between(int(king), int(kingDest))) | BbForSquare(kingDest)
	rookPath := Bitboard(between(int(rook), int(rookDest))) | BbForSquare(rookDest)
	if (kingPath|rookPath)&occ != 0 {
		return false
	}
	walk := Bitboard(between(int(king), int(kingDest))) | BbForSquare(king) | BbForSquare(kingDest)
	rem := walk
	for rem != 0 {
		sq, _ := rem.First()
		rem = rem.Without(sq)
		if board.AttacksTo(sq, turn.Other(), occ) != 0 {
			return false
		}
	}
	return true
}

// isEnPassantLegal re-validates an en passant capture by simulating the
// capture (removing both pawns, placing the capturing pawn) and checking
// whether the king would then be attacked, since the captured pawn can
// unveil a check along the fourth/fifth rank that ordinary pin analysis
// does not see.
func (p *Position) isEnPassantLegal(m Move) bool {
	board := p.Board()
	turn := p.Turn()
	king := board.KingOf(turn)
	if king == NoSquare {
		return true
	}
	capturedSq, _ := m.To.Offset(turn.Other().Forward())
	occ := board.Occupied().Without(m.From).Without(capturedSq).With(m.To)
	return board.AttacksTo(king, turn.Other(), occ) == 0
}
