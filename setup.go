package chess

// Pockets holds the captured-and-available-to-drop piece counts used by
// Crazyhouse, keyed by color and role. Role_King is never populated.
type Pockets struct {
	counts [2][7]int
}

// Count returns how many pieces of (color, role) sit in the pocket.
func (p *Pockets) Count(c Color, r Role) int {
	return p.counts[c][r]
}

// Add increments the pocket count for (color, role) by n (n may be
// negative to remove, e.g. when a drop is undone).
func (p *Pockets) Add(c Color, r Role, n int) {
	p.counts[c][r] += n
}

// IsEmpty reports whether no pieces sit in either pocket.
func (p *Pockets) IsEmpty() bool {
	for c := 0; c < 2; c++ {
		for r := 1; r < 7; r++ {
			if p.counts[c][r] != 0 {
				return false
			}
		}
	}
	return true
}

func (p *Pockets) clone() *Pockets {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

// RemainingChecks tracks the Three-Check counter: how many more checks
// each color can receive before losing.
type RemainingChecks struct {
	remaining [2]int
}

// NewRemainingChecks returns a counter with n checks remaining for both
// colors (3 at the start of a standard Three-Check game).
func NewRemainingChecks(n int) *RemainingChecks {
	return &RemainingChecks{remaining: [2]int{n, n}}
}

// NewRemainingChecksFrom builds a counter from explicit per-color
// remaining counts, used when parsing a FEN's remaining-checks field.
func NewRemainingChecksFrom(white, black int) *RemainingChecks {
	return &RemainingChecks{remaining: [2]int{white, black}}
}

// Remaining returns how many more checks color can receive before losing.
func (r *RemainingChecks) Remaining(c Color) int {
	return r.remaining[c]
}

// RecordCheck decrements color's remaining count, floored at 0.
func (r *RemainingChecks) RecordCheck(c Color) {
	if r.remaining[c] > 0 {
		r.remaining[c]--
	}
}

func (r *RemainingChecks) clone() *RemainingChecks {
	if r == nil {
		return nil
	}
	cp := *r
	return &cp
}

// CastlingSide distinguishes the two rooks a king may castle with. It is
// named relative to the board (a-side / h-side) rather than "queen/king"
// side so Chess960 layouts where the rooks straddle the king unusually
// are still well defined.
type CastlingSide uint8

const (
	// ASide is the rook that starts on the lower-indexed file (queenside
	// in the standard layout).
	ASide CastlingSide = iota
	// HSide is the rook that starts on the higher-indexed file (kingside
	// in the standard layout).
	HSide
)

// Castles records castling rights as the set of rook home squares still
// eligible to castle, using a Chess960-compatible encoding, plus
// the king's home square per color (needed to validate the king/rook
// pair even when rights are discarded one side at a time).
type Castles struct {
	rooks     Bitboard
	kingSq    [2]Square
	rookSq    [2][2]Square // [color][side], NoSquare if not available
}

// DefaultCastles returns full castling rights for the standard starting
// position (rooks on a1/h1/a8/h8, kings on e1/e8).
func DefaultCastles() *Castles {
	c := &Castles{
		kingSq: [2]Square{E1, E8},
		rookSq: [2][2]Square{
			{A1, H1},
			{A8, H8},
		},
	}
	c.rooks = BbForSquare(A1).With(H1).With(A8).With(H8)
	return c
}

// EmptyCastles returns a Castles value with no rights at all.
func EmptyCastles() *Castles {
	return &Castles{
		kingSq: [2]Square{NoSquare, NoSquare},
		rookSq: [2][2]Square{{NoSquare, NoSquare}, {NoSquare, NoSquare}},
	}
}

// DiscardSide removes color's rights to castle with the rook on side.
func (c *Castles) DiscardSide(color Color, side CastlingSide) {
	sq := c.rookSq[color][side]
	if sq != NoSquare {
		c.rooks = c.rooks.Without(sq)
	}
	c.rookSq[color][side] = NoSquare
}

// DiscardColor removes every castling right color holds (both sides),
// called when that color's king moves.
func (c *Castles) DiscardColor(color Color) {
	c.DiscardSide(color, ASide)
	c.DiscardSide(color, HSide)
}

// DiscardRook removes whichever right (if any) corresponds to a rook
// departing sq, called whenever sq stops holding its original rook
// (moved away, or captured in place).
func (c *Castles) DiscardRook(sq Square) {
	if !c.rooks.Contains(sq) {
		return
	}
	c.rooks = c.rooks.Without(sq)
	for color := 0; color < 2; color++ {
		for side := 0; side < 2; side++ {
			if c.rookSq[color][side] == sq {
				c.rookSq[color][side] = NoSquare
			}
		}
	}
}

// Has reports whether color still has the right to castle with the rook
// on side.
func (c *Castles) Has(color Color, side CastlingSide) bool {
	return c.rookSq[color][side] != NoSquare
}

// RookSquare returns the rook's home square for (color, side), and
// whether that right is still available.
func (c *Castles) RookSquare(color Color, side CastlingSide) (Square, bool) {
	sq := c.rookSq[color][side]
	return sq, sq != NoSquare
}

// KingSquare returns color's king's home square as recorded at the start
// of the game (used to compute the castling king-path, independent of
// where the king currently stands).
func (c *Castles) KingSquare(color Color) Square {
	return c.kingSq[color]
}

// SetRight grants color the right to castle with a rook starting on
// rookSq, with king starting on kingSq. Used when parsing Shredder-FEN
// or X-FEN castling fields, which name the rook's file directly.
func (c *Castles) SetRight(color Color, side CastlingSide, kingSq, rookSq Square) {
	c.kingSq[color] = kingSq
	c.rookSq[color][side] = rookSq
	c.rooks = c.rooks.With(rookSq)
}

// Rooks returns the bitboard of every rook square still holding a
// castling right.
func (c *Castles) Rooks() Bitboard {
	return c.rooks
}

func (c *Castles) clone() *Castles {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// Setup is the variant-agnostic description of a position: everything a
// FEN string (in its most general, X-FEN/Shredder/pocket/check-carrying
// form) can encode, before any variant-specific legality validation has
// run.
type Setup struct {
	Board           *Board
	Pockets         *Pockets
	Turn            Color
	Castles         *Castles
	EpSquare        Square // NoSquare if none
	RemainingChecks *RemainingChecks
	HalfmoveClock   int
	Fullmoves       int
}

// DefaultSetup returns the Setup for the standard chess starting position.
func DefaultSetup() *Setup {
	return &Setup{
		Board:         DefaultBoard(),
		Turn:          White,
		Castles:       DefaultCastles(),
		EpSquare:      NoSquare,
		HalfmoveClock: 0,
		Fullmoves:     1,
	}
}

func (s *Setup) clone() *Setup {
	return &Setup{
		Board:           s.Board.clone(),
		Pockets:         s.Pockets.clone(),
		Turn:            s.Turn,
		Castles:         s.Castles.clone(),
		EpSquare:        s.EpSquare,
		RemainingChecks: s.RemainingChecks.clone(),
		HalfmoveClock:   s.HalfmoveClock,
		Fullmoves:       s.Fullmoves,
	}
}
