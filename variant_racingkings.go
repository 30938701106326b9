package chess

// racingKingsRules implements Racing Kings: no pawns, both armies start
// on ranks 1-2, and the goal is reaching rank 8 with your king. Giving
// check is illegal. If White reaches the goal first and Black can reach
// it on the very next move, Black gets that move (reaching it is a draw,
// anything else loses); if Black cannot, White wins at once.
type racingKingsRules struct{ baseRules }

func (racingKingsRules) id() VariantID { return VariantRacingKings }

func (racingKingsRules) startingSetup() *Setup {
	s := DefaultSetup()
	s.Board = RacingKingsBoard()
	s.Castles = EmptyCastles()
	return s
}

func (racingKingsRules) validateBasic(s *Setup) error {
	for _, c := range [2]Color{White, Black} {
		if s.Board.KingOf(c) == NoSquare {
			return positionError(ReasonNoKing)
		}
	}
	if s.Board.ByRole(Role_Pawn) != BbEmpty {
		return positionError("racing kings position must have no pawns")
	}
	return nil
}

// filterMoves removes any move that would leave the opponent's king in
// check, since Racing Kings forbids giving check outright.
func (racingKingsRules) filterMoves(pos *Position, list *MoveList) {
	mover := pos.Turn()
	opp := mover.Other()
	list.retain(func(m Move) bool {
		scratch := pos.setup.clone()
		pos.doMove(scratch, m)
		oppKing := scratch.Board.KingOf(opp)
		if oppKing == NoSquare {
			return true
		}
		return scratch.Board.AttacksTo(oppKing, mover, scratch.Board.Occupied()) == 0
	})
}

const racingKingsGoalRank = Rank(7)

func (racingKingsRules) variantOutcome(pos *Position) (Outcome, bool) {
	board := pos.Board()
	whiteOnGoal := board.KingOf(White) != NoSquare && board.KingOf(White).Rank() == racingKingsGoalRank
	blackOnGoal := board.KingOf(Black) != NoSquare && board.KingOf(Black).Rank() == racingKingsGoalRank

	if whiteOnGoal && blackOnGoal {
		return Outcome{Draw: true, Method: MethodVariantEnd}, true
	}
	if whiteOnGoal {
		if pos.Turn() == Black {
			if racingKingsBlackCanReachGoal(pos) {
				return Outcome{}, false
			}
			return Outcome{Decisive: true, Winner: White, Method: MethodVariantEnd}, true
		}
		return Outcome{Decisive: true, Winner: White, Method: MethodVariantEnd}, true
	}
	if blackOnGoal {
		return Outcome{Decisive: true, Winner: Black, Method: MethodVariantEnd}, true
	}
	return Outcome{}, false
}

// racingKingsBlackCanReachGoal reports whether Black has a legal reply
// landing its king on rank 8, the one-move grace Black gets after White
// reaches the goal first.
func racingKingsBlackCanReachGoal(pos *Position) bool {
	moves := pos.LegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.Role == Role_King && m.Kind == MoveNormal && m.To.Rank() == racingKingsGoalRank {
			return true
		}
	}
	return false
}

func (racingKingsRules) insufficientMaterial(pos *Position) bool {
	return false
}
