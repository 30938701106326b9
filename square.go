package chess

import "fmt"

// File is a column of the board, a..h (0..7).
type File int8

// Rank is a row of the board, 1..8 (0..7).
type Rank int8

// Square is a single square of the board, encoded 0..63 with
// file = index & 7 and rank = index >> 3 (a1 = 0, h8 = 63).
type Square int8

// NoSquare represents the absence of a square.
const NoSquare Square = -1

const numOfSquaresInBoard = 64
const numOfSquaresInRow = 8

// NewSquare returns the square for the given file and rank. Out-of-range
// file/rank values are not validated; callers that need validation should
// use FromCoords.
func NewSquare(file File, rank Rank) Square {
	return Square(int8(rank)*8 + int8(file))
}

// FromCoords returns the square for the given file and rank, validating
// that both lie in 0..7.
func FromCoords(file, rank int) (Square, bool) {
	if file < 0 || file >= numOfSquaresInRow || rank < 0 || rank >= numOfSquaresInRow {
		return NoSquare, false
	}
	return NewSquare(File(file), Rank(rank)), true
}

// FromIndex returns the square for the given 0..63 index.
func FromIndex(i int) (Square, bool) {
	if i < 0 || i >= numOfSquaresInBoard {
		return NoSquare, false
	}
	return Square(i), true
}

// File returns the square's file, a=0..h=7.
func (s Square) File() File {
	return File(s & 7)
}

// Rank returns the square's rank, 1=0..8=7.
func (s Square) Rank() Rank {
	return Rank(s >> 3)
}

// Offset returns the square delta squares away in board-index order,
// or false if that would run off the edge of the board or wrap around
// a rank (e.g. h1 offset by +1 would land on a2 by raw arithmetic, which
// is not a legal single step and must be rejected).
func (s Square) Offset(delta int) (Square, bool) {
	idx := int(s) + delta
	if idx < 0 || idx >= numOfSquaresInBoard {
		return NoSquare, false
	}
	fileDiff := int(Square(idx).File()) - int(s.File())
	if fileDiff < 0 {
		fileDiff = -fileDiff
	}
	if fileDiff > 2 {
		return NoSquare, false
	}
	return Square(idx), true
}

// Distance returns the Chebyshev (king-move) distance between two squares.
func (s Square) Distance(other Square) int {
	fd := int(s.File()) - int(other.File())
	if fd < 0 {
		fd = -fd
	}
	rd := int(s.Rank()) - int(other.Rank())
	if rd < 0 {
		rd = -rd
	}
	if fd > rd {
		return fd
	}
	return rd
}

// Combine returns the square with the file of a and the rank of b.
func Combine(a, b Square) Square {
	return NewSquare(a.File(), b.Rank())
}

// Delta returns b's index minus a's index.
func Delta(a, b Square) int {
	return int(b) - int(a)
}

// IsDark reports whether the square is a dark square.
func (s Square) IsDark() bool {
	return darkSquaresBB.Contains(s)
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return !s.IsDark()
}

// String returns the algebraic notation of the square, e.g. "e4".
func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+byte(s.File()), int(s.Rank())+1)
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return NoSquare, false
	}
	return FromCoords(int(f-'a'), int(r-'1'))
}

// Square name constants, in a1..h8 board order.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)
