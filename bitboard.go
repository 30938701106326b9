package chess

import "math/bits"

// Bitboard is a set of squares encoded as a 64-bit integer, one bit per
// square in board-index order (bit 0 = a1, bit 63 = h8).
type Bitboard uint64

// BbEmpty is the empty set.
const BbEmpty Bitboard = 0

// BbAll is the set of all 64 squares.
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

const (
	darkSquaresBB  Bitboard = 0xAA55AA55AA55AA55
	lightSquaresBB Bitboard = 0x55AA55AA55AA55AA
)

// DarkSquares and LightSquares are the two colour complexes of the board.
var (
	DarkSquares  = darkSquaresBB
	LightSquares = lightSquaresBB
	// Corners holds a1, h1, a8 and h8.
	Corners = BbForSquare(A1) | BbForSquare(H1) | BbForSquare(A8) | BbForSquare(H8)
	// Hill holds d4, e4, d5 and e5, the King of the Hill target squares.
	Hill = BbForSquare(D4) | BbForSquare(E4) | BbForSquare(D5) | BbForSquare(E5)
	// Backranks holds ranks 1 and 8.
	Backranks = RankBB(0) | RankBB(7)
)

// BbForSquare returns the singleton bitboard containing sq.
func BbForSquare(sq Square) Bitboard {
	if sq == NoSquare {
		return BbEmpty
	}
	return Bitboard(1) << uint(sq)
}

// FileBB returns the bitboard of an entire file, 0=a..7=h.
func FileBB(f File) Bitboard {
	return fileMasks[f&7]
}

// RankBB returns the bitboard of an entire rank, 0=rank1..7=rank8.
func RankBB(r Rank) Bitboard {
	return rankMasks[r&7]
}

var fileMasks = [8]Bitboard{
	0x0101010101010101,
	0x0202020202020202,
	0x0404040404040404,
	0x0808080808080808,
	0x1010101010101010,
	0x2020202020202020,
	0x4040404040404040,
	0x8080808080808080,
}

var rankMasks = [8]Bitboard{
	0x00000000000000FF,
	0x000000000000FF00,
	0x0000000000FF0000,
	0x00000000FF000000,
	0x000000FF00000000,
	0x0000FF0000000000,
	0x00FF000000000000,
	0xFF00000000000000,
}

// Contains reports whether sq is a member of the set.
func (b Bitboard) Contains(sq Square) bool {
	return b&BbForSquare(sq) != 0
}

// With returns the set with sq added.
func (b Bitboard) With(sq Square) Bitboard {
	return b | BbForSquare(sq)
}

// Without returns the set with sq removed.
func (b Bitboard) Without(sq Square) Bitboard {
	return b &^ BbForSquare(sq)
}

// First returns the lowest-index member of the set, or false if empty.
func (b Bitboard) First() (Square, bool) {
	if b == 0 {
		return NoSquare, false
	}
	return Square(bits.TrailingZeros64(uint64(b))), true
}

// Last returns the highest-index member of the set, or false if empty.
func (b Bitboard) Last() (Square, bool) {
	if b == 0 {
		return NoSquare, false
	}
	return Square(63 - bits.LeadingZeros64(uint64(b))), true
}

// SingleSquare returns the set's sole member if its cardinality is
// exactly 1.
func (b Bitboard) SingleSquare() (Square, bool) {
	if b == 0 || b&(b-1) != 0 {
		return NoSquare, false
	}
	return b.First()
}

// MoreThanOne reports whether the set has cardinality >= 2.
func (b Bitboard) MoreThanOne() bool {
	return b&(b-1) != 0
}

// Count returns the set's cardinality.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Reverse returns the set with bit order reversed (square i <-> square 63-i).
func (b Bitboard) Reverse() Bitboard {
	return Bitboard(bits.Reverse64(uint64(b)))
}

// PopFirst removes and returns the lowest-index member of the set.
func (b *Bitboard) PopFirst() (Square, bool) {
	sq, ok := b.First()
	if ok {
		*b = *b & (*b - 1)
	}
	return sq, ok
}

// PopLast removes and returns the highest-index member of the set.
func (b *Bitboard) PopLast() (Square, bool) {
	sq, ok := b.Last()
	if ok {
		*b = b.Without(sq)
	}
	return sq, ok
}

// Squares returns the set's members in ascending order. Prefer PopFirst in
// hot loops to avoid the allocation.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	bb := b
	for {
		sq, ok := bb.PopFirst()
		if !ok {
			break
		}
		out = append(out, sq)
	}
	return out
}

// ShiftNorth/ShiftSouth shift every member of the set one rank toward
// rank 8 / rank 1 respectively, discarding squares that would fall off
// the board.
func (b Bitboard) ShiftNorth() Bitboard {
	return b << 8
}

func (b Bitboard) ShiftSouth() Bitboard {
	return b >> 8
}

// CarryRippler enumerates every subset of mask (including the empty
// subset), each exactly once, using the standard
// "(subset - mask) & mask" trick.
type CarryRippler struct {
	mask    Bitboard
	subset  Bitboard
	started bool
	done    bool
}

// NewCarryRippler returns an iterator over the subsets of mask.
func NewCarryRippler(mask Bitboard) *CarryRippler {
	return &CarryRippler{mask: mask}
}

// Next returns the next subset and true, or false once every subset
// (including the empty one) has been produced.
func (c *CarryRippler) Next() (Bitboard, bool) {
	if c.done {
		return 0, false
	}
	if !c.started {
		c.started = true
		c.subset = 0
		if c.mask == 0 {
			c.done = true
		}
		return c.subset, true
	}
	c.subset = (c.subset - c.mask) & c.mask
	if c.subset == 0 {
		c.done = true
		return 0, false
	}
	return c.subset, true
}
