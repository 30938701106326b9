package chess

import "github.com/ochess/chesscore/attacks"

// This file bridges the root package's Square/Bitboard types onto the
// dependency-free attacks package, which works in plain int/uint64 to
// avoid an import cycle (see attacks/attacks.go's package comment).

func attacksKingBB(sq Square) Bitboard {
	return Bitboard(attacks.KingAttacks(int(sq)))
}

func attacksKnightBB(sq Square) Bitboard {
	return Bitboard(attacks.KnightAttacks(int(sq)))
}

func attacksPawnBB(c Color, sq Square) Bitboard {
	return Bitboard(attacks.PawnAttacks(int(c), int(sq)))
}

func attacksBishopBB(sq Square, occ Bitboard) Bitboard {
	return Bitboard(attacks.BishopAttacks(int(sq), uint64(occ)))
}

func attacksRookBB(sq Square, occ Bitboard) Bitboard {
	return Bitboard(attacks.RookAttacks(int(sq), uint64(occ)))
}

func attacksQueenBB(sq Square, occ Bitboard) Bitboard {
	return Bitboard(attacks.QueenAttacks(int(sq), uint64(occ)))
}

func betweenBridge(a, b int) uint64 {
	return attacks.Between(a, b)
}

// BetweenSquares returns the squares strictly between a and b along
// their shared rank, file or diagonal (empty if unaligned).
func BetweenSquares(a, b Square) Bitboard {
	return Bitboard(attacks.Between(int(a), int(b)))
}

// RaySquares returns the infinite line through a and b, clipped to the
// board and excluding a (empty if unaligned).
func RaySquares(a, b Square) Bitboard {
	return Bitboard(attacks.Ray(int(a), int(b)))
}

// AlignedSquares reports whether a, b and c share a rank, file or
// diagonal.
func AlignedSquares(a, b, c Square) bool {
	return attacks.Aligned(int(a), int(b), int(c))
}
