// Package attacks computes pseudo-legal attack sets for every piece role,
// including sliding pieces, via hyperbola quintessence. It has no
// knowledge of whose turn it is or of check/pin legality — that lives in
// the position engine. Every table is computed once, eagerly, at package
// init, and is immutable afterward.
//
// To keep this package free of any dependency on the root package
// (its only import from this module is the internal logger), squares and
// bitboards are plain ints and uint64s here rather than the root
// package's Square/Bitboard types.
package attacks

import (
	"math/bits"

	"github.com/ochess/chesscore/internal/clog"
)

const (
	fileA uint64 = 0x0101010101010101
	fileH uint64 = 0x8080808080808080
	rank1 uint64 = 0x00000000000000FF
	rank8 uint64 = 0xFF00000000000000
)

var (
	fileMasks [8]uint64
	rankMasks [8]uint64

	kingTable   [64]uint64
	knightTable [64]uint64
	// pawnTable[color][sq]: color 0 = white, 1 = black.
	pawnTable [2][64]uint64

	diagMasks     [64]uint64 // a1-h8 direction diagonal through sq, including sq
	antiDiagMasks [64]uint64 // a8-h1 direction diagonal through sq, including sq

	betweenTable [64][64]uint64
	rayTable     [64][64]uint64
)

func sqFile(sq int) int { return sq & 7 }
func sqRank(sq int) int { return sq >> 3 }
func sqBB(sq int) uint64 {
	return uint64(1) << uint(sq)
}

func init() {
	for f := 0; f < 8; f++ {
		var m uint64
		for r := 0; r < 8; r++ {
			m |= sqBB(r*8 + f)
		}
		fileMasks[f] = m
	}
	for r := 0; r < 8; r++ {
		var m uint64
		for f := 0; f < 8; f++ {
			m |= sqBB(r*8 + f)
		}
		rankMasks[r] = m
	}
	for sq := 0; sq < 64; sq++ {
		// Diagonal masks include sq itself (as the file/rank masks do,
		// by construction) because the hyperbola-quintessence formula
		// below needs the slider's own bit present in mask to cancel
		// correctly.
		diagMasks[sq] = rayMask(sq, 1, 1) | rayMask(sq, -1, -1) | sqBB(sq)
		antiDiagMasks[sq] = rayMask(sq, 1, -1) | rayMask(sq, -1, 1) | sqBB(sq)
		kingTable[sq] = computeStep(sq, kingDeltas)
		knightTable[sq] = computeStep(sq, knightDeltas)
		pawnTable[0][sq] = computeStep(sq, whitePawnCaptureDeltas)
		pawnTable[1][sq] = computeStep(sq, blackPawnCaptureDeltas)
	}
	for a := 0; a < 64; a++ {
		for b := 0; b < 64; b++ {
			betweenTable[a][b] = computeBetween(a, b)
			rayTable[a][b] = computeRay(a, b)
		}
	}
	clog.Log.Debugf("attacks: initialised king/knight/pawn/sliding tables for 64 squares")
}

// rayMask returns the set of squares strictly in direction (df, dr) from
// sq, not including sq, to the edge of the board.
func rayMask(sq, df, dr int) uint64 {
	var m uint64
	f, r := sqFile(sq), sqRank(sq)
	for {
		f += df
		r += dr
		if f < 0 || f > 7 || r < 0 || r > 7 {
			break
		}
		m |= sqBB(r*8 + f)
	}
	return m
}

type delta struct{ df, dr int }

var kingDeltas = []delta{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
var knightDeltas = []delta{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var whitePawnCaptureDeltas = []delta{{-1, 1}, {1, 1}}
var blackPawnCaptureDeltas = []delta{{-1, -1}, {1, -1}}

func computeStep(sq int, deltas []delta) uint64 {
	var m uint64
	f, r := sqFile(sq), sqRank(sq)
	for _, d := range deltas {
		nf, nr := f+d.df, r+d.dr
		if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
			continue
		}
		m |= sqBB(nr*8 + nf)
	}
	return m
}

// KingAttacks returns the squares a king on sq attacks.
func KingAttacks(sq int) uint64 { return kingTable[sq] }

// KnightAttacks returns the squares a knight on sq attacks.
func KnightAttacks(sq int) uint64 { return knightTable[sq] }

// PawnAttacks returns the squares a pawn of the given color (0=white,
// 1=black) on sq attacks (diagonal captures only, not pushes).
func PawnAttacks(color int, sq int) uint64 {
	return pawnTable[color&1][sq]
}

// hyperbolaQuintessence computes the slide-attack set along mask (a
// rank, file or diagonal through sq) given occupancy occ, using the
// o^(o-2r) occupancy-reversal trick: first blocker in each direction is
// included, squares beyond are excluded.
func hyperbolaQuintessence(occ, pos, mask uint64) uint64 {
	o := occ & mask
	forward := o - 2*pos
	backward := bits.Reverse64(bits.Reverse64(o) - 2*bits.Reverse64(pos))
	return (forward ^ backward) & mask
}

// BishopAttacks returns the diagonal slide-attack set for a bishop on
// sq given occupancy occ.
func BishopAttacks(sq int, occ uint64) uint64 {
	pos := sqBB(sq)
	return hyperbolaQuintessence(occ, pos, diagMasks[sq]) | hyperbolaQuintessence(occ, pos, antiDiagMasks[sq])
}

// RookAttacks returns the rank/file slide-attack set for a rook on sq
// given occupancy occ.
func RookAttacks(sq int, occ uint64) uint64 {
	pos := sqBB(sq)
	return hyperbolaQuintessence(occ, pos, fileMasks[sqFile(sq)]) | hyperbolaQuintessence(occ, pos, rankMasks[sqRank(sq)])
}

// QueenAttacks returns BishopAttacks | RookAttacks.
func QueenAttacks(sq int, occ uint64) uint64 {
	return BishopAttacks(sq, occ) | RookAttacks(sq, occ)
}

func computeBetween(a, b int) uint64 {
	if a == b {
		return 0
	}
	fa, ra := sqFile(a), sqRank(a)
	fb, rb := sqFile(b), sqRank(b)
	df, dr := sign(fb-fa), sign(rb-ra)
	if !aligned(fa, ra, fb, rb, df, dr) {
		return 0
	}
	var m uint64
	f, r := fa+df, ra+dr
	for f != fb || r != rb {
		m |= sqBB(r*8 + f)
		f += df
		r += dr
	}
	return m
}

func computeRay(a, b int) uint64 {
	if a == b {
		return 0
	}
	fa, ra := sqFile(a), sqRank(a)
	fb, rb := sqFile(b), sqRank(b)
	df, dr := sign(fb-fa), sign(rb-ra)
	if !aligned(fa, ra, fb, rb, df, dr) {
		return 0
	}
	var m uint64
	for _, s := range [2]int{1, -1} {
		f, r := fa, ra
		for {
			f += s * df
			r += s * dr
			if f < 0 || f > 7 || r < 0 || r > 7 {
				break
			}
			m |= sqBB(r*8 + f)
		}
	}
	return m
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// aligned reports whether stepping from (fa,ra) by (df,dr) repeatedly
// reaches (fb,rb) exactly, i.e. the two squares share a file, rank or
// diagonal.
func aligned(fa, ra, fb, rb, df, dr int) bool {
	if df == 0 && dr == 0 {
		return false
	}
	if df != 0 && dr != 0 && (fb-fa != rb-ra && fb-fa != -(rb-ra)) {
		return false
	}
	if df == 0 && fb != fa {
		return false
	}
	if dr == 0 && rb != ra {
		return false
	}
	return true
}

// Between returns the set of squares strictly between a and b on their
// shared file/rank/diagonal, or empty if they are not aligned.
func Between(a, b int) uint64 { return betweenTable[a][b] }

// Ray returns the full line through a and b, excluding a, to the edge
// of the board, or empty if they are not aligned.
func Ray(a, b int) uint64 { return rayTable[a][b] }

// Aligned reports whether a, b and c are colinear on a file, rank or
// diagonal.
func Aligned(a, b, c int) bool {
	if a == b || b == c || a == c {
		return true
	}
	return Ray(a, b)&sqBB(c) != 0 || Ray(b, a)&sqBB(c) != 0
}
