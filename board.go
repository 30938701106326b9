package chess

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/ochess/chesscore/attacks"
)

// Board maintains piece placement via bitboards per color and per role,
// plus a promoted overlay. Invariants: by_color[White] and
// by_color[Black] are disjoint; the by_role bitboards partition occupied;
// at most one piece occupies any square; promoted is a subset of occupied
// and never includes a pawn.
type Board struct {
	byColor  [2]Bitboard
	byRole   [7]Bitboard // index 0 (Role_None) unused
	promoted Bitboard

	occupiedCache    Bitboard
	occupiedValid    bool
	whiteKing        Square
	blackKing        Square
}

// EmptyBoard returns a board with no pieces.
func EmptyBoard() *Board {
	return &Board{whiteKing: NoSquare, blackKing: NoSquare, occupiedValid: true}
}

// DefaultBoard returns the standard chess starting position.
func DefaultBoard() *Board {
	b := EmptyBoard()
	backRank := [8]Role{Role_Rook, Role_Knight, Role_Bishop, Role_Queen, Role_King, Role_Bishop, Role_Knight, Role_Rook}
	for f := 0; f < 8; f++ {
		b.SetPieceAt(NewSquare(File(f), 0), NewPiece(White, backRank[f]), false)
		b.SetPieceAt(NewSquare(File(f), 1), NewPiece(White, Role_Pawn), false)
		b.SetPieceAt(NewSquare(File(f), 6), NewPiece(Black, Role_Pawn), false)
		b.SetPieceAt(NewSquare(File(f), 7), NewPiece(Black, backRank[f]), false)
	}
	return b
}

// HordeBoard returns the Horde starting position: a standard black army
// facing a wall of white pawns on ranks 1-4.
func HordeBoard() *Board {
	b := EmptyBoard()
	blackBackRank := [8]Role{Role_Rook, Role_Knight, Role_Bishop, Role_Queen, Role_King, Role_Bishop, Role_Knight, Role_Rook}
	for f := 0; f < 8; f++ {
		b.SetPieceAt(NewSquare(File(f), 6), NewPiece(Black, Role_Pawn), false)
		b.SetPieceAt(NewSquare(File(f), 7), NewPiece(Black, blackBackRank[f]), false)
	}
	for _, sq := range []Square{B1, C1, F1, G1, A2, B2, C2, D2, E2, F2, G2, H2} {
		b.SetPieceAt(sq, NewPiece(White, Role_Pawn), false)
	}
	for f := 0; f < 8; f++ {
		b.SetPieceAt(NewSquare(File(f), 2), NewPiece(White, Role_Pawn), false)
		b.SetPieceAt(NewSquare(File(f), 3), NewPiece(White, Role_Pawn), false)
	}
	return b
}

// RacingKingsBoard returns the Racing Kings starting position: both
// armies on ranks 1-2, no pawns.
func RacingKingsBoard() *Board {
	b := EmptyBoard()
	row1 := [8]Role{Role_Knight, Role_Bishop, Role_Rook, Role_Queen, Role_King, Role_Rook, Role_Bishop, Role_Knight}
	for f := 0; f < 8; f++ {
		b.SetPieceAt(NewSquare(File(f), 0), NewPiece(White, row1[f]), false)
		b.SetPieceAt(NewSquare(File(f), 1), NewPiece(Black, row1[f]), false)
	}
	return b
}

func (b *Board) invalidateOccupied() {
	b.occupiedValid = false
}

// Occupied returns the union of every piece on the board.
func (b *Board) Occupied() Bitboard {
	if !b.occupiedValid {
		b.occupiedCache = b.byColor[White] | b.byColor[Black]
		b.occupiedValid = true
	}
	return b.occupiedCache
}

// ByColor returns every square occupied by a piece of the given color.
func (b *Board) ByColor(c Color) Bitboard {
	return b.byColor[c]
}

// ByRole returns every square occupied by a piece of the given role,
// regardless of color.
func (b *Board) ByRole(r Role) Bitboard {
	return b.byRole[r]
}

// ByPiece returns every square occupied by the given (color, role) piece.
func (b *Board) ByPiece(p Piece) Bitboard {
	return b.byColor[p.Color()] & b.byRole[p.Role()]
}

// Promoted returns the promoted-piece overlay.
func (b *Board) Promoted() Bitboard {
	return b.promoted
}

// IsOccupied reports whether any piece sits on sq.
func (b *Board) IsOccupied(sq Square) bool {
	return b.Occupied().Contains(sq)
}

// RoleAt returns the role of the piece on sq, or Role_None if empty.
func (b *Board) RoleAt(sq Square) Role {
	if !b.IsOccupied(sq) {
		return Role_None
	}
	for _, r := range AllRoles {
		if b.byRole[r].Contains(sq) {
			return r
		}
	}
	return Role_None
}

// PieceAt returns the piece on sq, or NoPiece if empty.
func (b *Board) PieceAt(sq Square) Piece {
	if !b.byColor[White].Contains(sq) && !b.byColor[Black].Contains(sq) {
		return NoPiece
	}
	c := White
	if b.byColor[Black].Contains(sq) {
		c = Black
	}
	return NewPiece(c, b.RoleAt(sq))
}

// SetPieceAt places piece at sq, overwriting whatever was there. If
// promoted is true the square is added to the promoted overlay (ignored
// for pawns, which the overlay never includes).
func (b *Board) SetPieceAt(sq Square, piece Piece, promoted bool) {
	b.RemovePieceAt(sq)
	c := piece.Color()
	r := piece.Role()
	b.byColor[c] = b.byColor[c].With(sq)
	b.byRole[r] = b.byRole[r].With(sq)
	if promoted && r != Role_Pawn {
		b.promoted = b.promoted.With(sq)
	}
	if r == Role_King {
		if c == White {
			b.whiteKing = sq
		} else {
			b.blackKing = sq
		}
	}
	b.invalidateOccupied()
}

// RemovePieceAt clears sq and returns what was there, if anything.
func (b *Board) RemovePieceAt(sq Square) (Piece, bool) {
	p := b.PieceAt(sq)
	if p == NoPiece {
		return NoPiece, false
	}
	b.byColor[p.Color()] = b.byColor[p.Color()].Without(sq)
	b.byRole[p.Role()] = b.byRole[p.Role()].Without(sq)
	b.promoted = b.promoted.Without(sq)
	if p.Role() == Role_King {
		if p.Color() == White {
			b.whiteKing = NoSquare
		} else {
			b.blackKing = NoSquare
		}
	}
	b.invalidateOccupied()
	return p, true
}

// KingOf returns the square of color's king, or NoSquare if it has none
// (pathological setups in variants without kings, e.g. Horde's white).
func (b *Board) KingOf(c Color) Square {
	if c == White {
		return b.whiteKing
	}
	return b.blackKing
}

// AttacksTo returns every square holding an attacker-colored piece that
// attacks sq, given the specified occupancy.
func (b *Board) AttacksTo(sq Square, attacker Color, occ Bitboard) Bitboard {
	isq := int(sq)
	occU := uint64(occ)
	var out Bitboard
	out |= Bitboard(attacks.KingAttacks(isq)) & b.ByPiece(NewPiece(attacker, Role_King))
	out |= Bitboard(attacks.KnightAttacks(isq)) & b.ByPiece(NewPiece(attacker, Role_Knight))
	diag := Bitboard(attacks.BishopAttacks(isq, occU))
	hv := Bitboard(attacks.RookAttacks(isq, occU))
	out |= diag & (b.ByPiece(NewPiece(attacker, Role_Bishop)) | b.ByPiece(NewPiece(attacker, Role_Queen)))
	out |= hv & (b.ByPiece(NewPiece(attacker, Role_Rook)) | b.ByPiece(NewPiece(attacker, Role_Queen)))
	out |= Bitboard(attacks.PawnAttacks(int(attacker.Other()), isq)) & b.ByPiece(NewPiece(attacker, Role_Pawn))
	return out
}

// IsAttacked reports whether sq is attacked by attacker given the
// current occupancy.
func (b *Board) IsAttacked(sq Square, attacker Color) bool {
	return b.AttacksTo(sq, attacker, b.Occupied()) != 0
}

// Eq reports whether two boards have identical placement (including the
// promoted overlay).
func (b *Board) Eq(other *Board) bool {
	return b.byColor == other.byColor && b.byRole == other.byRole && b.promoted == other.promoted
}

func (b *Board) copyInto(other *Board) {
	other.byColor = b.byColor
	other.byRole = b.byRole
	other.promoted = b.promoted
	other.occupiedCache = b.occupiedCache
	other.occupiedValid = b.occupiedValid
	other.whiteKing = b.whiteKing
	other.blackKing = b.blackKing
}

func (b *Board) clone() *Board {
	nb := &Board{}
	b.copyInto(nb)
	return nb
}

// hasSufficientMaterial reports whether enough material remains on the
// board, ignoring variant-specific pocket/check rules, for checkmate to
// be theoretically possible: no pawns, no rooks, no queens; and any
// knight present is always sufficient, otherwise only bishops confined
// to one colour complex are insufficient.
func (b *Board) hasSufficientMaterial() bool {
	if b.byRole[Role_Pawn]|b.byRole[Role_Rook]|b.byRole[Role_Queen] != 0 {
		return true
	}
	if b.whiteKing == NoSquare || b.blackKing == NoSquare {
		return true
	}
	bishops := b.byRole[Role_Bishop].Count()
	knights := b.byRole[Role_Knight].Count()
	if bishops == 0 && knights == 0 {
		return false
	}
	// Any knight on the board is enough: a lone knight can in principle
	// assist a helpmate, so it counts as sufficient material.
	if knights > 0 {
		return true
	}
	if bishops == 1 {
		return false
	}
	bb := b.byRole[Role_Bishop]
	lightCount := (bb & LightSquares).Count()
	darkCount := (bb & DarkSquares).Count()
	if lightCount == 0 || darkCount == 0 {
		return false
	}
	return true
}

// boardFENString renders the board portion of a FEN: ranks 8..1 top to
// bottom, files a..h, empty runs coalesced to digits, '/' between ranks.
// promotedSuffix controls whether promoted pieces are suffixed with '~'
// (TRACK_PROMOTED variants).
func (b *Board) boardFENString(promotedSuffix bool) string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := NewSquare(File(f), Rank(r))
			p := b.PieceAt(sq)
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
			if promotedSuffix && b.promoted.Contains(sq) {
				sb.WriteByte('~')
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// popcount returns the number of squares in b, via math/bits.
func popcount(b Bitboard) int {
	return bits.OnesCount64(uint64(b))
}
