package chess

import "fmt"

// FenError reports a malformed FEN/X-FEN/Shredder-FEN string, naming the
// token that failed to parse.
type FenError struct {
	Reason string
}

func (e *FenError) Error() string {
	return fmt.Sprintf("invalid fen: %s", e.Reason)
}

func fenError(format string, args ...interface{}) error {
	return &FenError{Reason: fmt.Sprintf(format, args...)}
}

// PositionError reports that a Setup does not describe a legal starting
// position for its variant.
type PositionError struct {
	Reason string
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("illegal position: %s", e.Reason)
}

func positionError(format string, args ...interface{}) error {
	return &PositionError{Reason: fmt.Sprintf(format, args...)}
}

// Sentinel position-validation reasons, named so callers can match on
// them with errors.Is-style string comparison if they need to distinguish
// cases.
const (
	ReasonEmptyBoard          = "empty board"
	ReasonNoKing              = "missing king"
	ReasonTooManyKings        = "too many kings"
	ReasonTooManyPawns        = "too many pawns"
	ReasonTooManyPieces       = "too many pieces of one role"
	ReasonPawnsOnBackrank     = "pawns on back rank"
	ReasonBadCastlingRights   = "castling rights do not correspond to a rook and king on their home squares"
	ReasonInvalidEpSquare     = "en passant square is not consistent with the position"
	ReasonOppositeCheck       = "opponent is in check"
	ReasonThreeCheckOver      = "three-check game is already decided"
	ReasonRacingKingsCheck    = "racing kings: check is illegal"
	ReasonRacingKingsOver     = "racing kings: game is already decided"
	ReasonRacingKingsMaterial = "racing kings: material does not match the starting army"
)

// UciError reports a malformed UCI move string.
type UciError struct {
	Reason string
}

func (e *UciError) Error() string {
	return fmt.Sprintf("invalid uci move: %s", e.Reason)
}

func uciError(format string, args ...interface{}) error {
	return &UciError{Reason: fmt.Sprintf(format, args...)}
}

// IllegalMoveError reports that a move is not legal in the position it
// was attempted against.
type IllegalMoveError struct {
	Move Move
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move: %s", e.Move)
}

func illegalMoveError(m Move) error {
	return &IllegalMoveError{Move: m}
}
