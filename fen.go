package chess

import (
	"strconv"
	"strings"
)

// FenOpts controls how FEN strings are parsed and rendered: Promoted
// turns on the '~' promoted-piece suffix (Crazyhouse/Antichess board
// tracking), Shredder forces file-letter castling notation instead of
// KQkq.
type FenOpts struct {
	Promoted bool
	Shredder bool
}

// ParseFen parses a FEN/X-FEN/Shredder-FEN string into a Position for
// variant, validating it along the way.
func ParseFen(variant VariantID, fen string, opts FenOpts) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fenError("expected at least 4 space-separated fields, got %d", len(fields))
	}

	boardField := fields[0]
	pocketField := ""
	if i := strings.IndexByte(boardField, '['); i >= 0 {
		if !strings.HasSuffix(boardField, "]") {
			return nil, fenError("unterminated pocket field")
		}
		pocketField = boardField[i+1 : len(boardField)-1]
		boardField = boardField[:i]
	}

	board, err := parseBoardField(boardField, opts.Promoted)
	if err != nil {
		return nil, err
	}

	var turn Color
	switch fields[1] {
	case "w":
		turn = White
	case "b":
		turn = Black
	default:
		return nil, fenError("invalid turn field %q", fields[1])
	}

	castles, err := parseCastlingField(board, fields[2])
	if err != nil {
		return nil, err
	}

	epSquare := NoSquare
	if fields[3] != "-" {
		sq, ok := ParseSquare(fields[3])
		if !ok {
			return nil, fenError("invalid en passant square %q", fields[3])
		}
		epSquare = sq
	}

	halfmove := 0
	fullmove := 1
	rest := fields[4:]
	var remainingChecksField string
	numeric := make([]string, 0, 2)
	for _, f := range rest {
		if strings.Contains(f, "+") {
			remainingChecksField = f
			continue
		}
		numeric = append(numeric, f)
	}
	if len(numeric) >= 1 {
		n, err := strconv.Atoi(numeric[0])
		if err != nil {
			return nil, fenError("invalid halfmove clock %q", numeric[0])
		}
		halfmove = n
	}
	if len(numeric) >= 2 {
		n, err := strconv.Atoi(numeric[1])
		if err != nil {
			return nil, fenError("invalid fullmove number %q", numeric[1])
		}
		fullmove = n
	}

	setup := &Setup{
		Board:         board,
		Turn:          turn,
		Castles:       castles,
		EpSquare:      epSquare,
		HalfmoveClock: halfmove,
		Fullmoves:     fullmove,
	}

	if pocketField != "" || variant == VariantCrazyhouse {
		pockets, err := parsePockets(pocketField)
		if err != nil {
			return nil, err
		}
		setup.Pockets = pockets
	}

	if remainingChecksField != "" || variant == VariantThreeCheck {
		rc, err := parseRemainingChecks(remainingChecksField)
		if err != nil {
			return nil, err
		}
		setup.RemainingChecks = rc
	}

	return FromSetup(variant, setup)
}

func parseBoardField(field string, promoted bool) (*Board, error) {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return nil, fenError("board field must have 8 ranks, got %d", len(ranks))
	}
	board := EmptyBoard()
	for i, rankStr := range ranks {
		rank := Rank(7 - i)
		file := File(0)
		j := 0
		for j < len(rankStr) {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += File(ch - '0')
				j++
				continue
			}
			piece, ok := PieceFromChar(ch)
			if !ok {
				return nil, fenError("invalid piece character %q", ch)
			}
			if int(file) >= 8 {
				return nil, fenError("rank %d overflows 8 files", i)
			}
			sq := NewSquare(file, rank)
			isPromoted := false
			if promoted && j+1 < len(rankStr) && rankStr[j+1] == '~' {
				isPromoted = true
				j++
			}
			board.SetPieceAt(sq, piece, isPromoted)
			file++
			j++
		}
		if int(file) != 8 {
			return nil, fenError("rank %d does not sum to 8 files", i)
		}
	}
	return board, nil
}

func parseCastlingField(board *Board, field string) (*Castles, error) {
	c := EmptyCastles()
	if field == "-" {
		return c, nil
	}
	for _, ch := range field {
		var color Color
		switch {
		case ch >= 'A' && ch <= 'Z':
			color = White
		case ch >= 'a' && ch <= 'z':
			color = Black
		default:
			return nil, fenError("invalid castling character %q", ch)
		}
		kingSq := board.KingOf(color)
		if kingSq == NoSquare {
			return nil, fenError("castling rights given for a color with no king")
		}
		lower := ch
		if ch >= 'A' && ch <= 'Z' {
			lower = ch - 'A' + 'a'
		}
		switch {
		case lower == 'k':
			rookSq, ok := findOutermostRook(board, color, kingSq, true)
			if !ok {
				return nil, fenError("no rook available for kingside castling")
			}
			c.SetRight(color, HSide, kingSq, rookSq)
		case lower == 'q':
			rookSq, ok := findOutermostRook(board, color, kingSq, false)
			if !ok {
				return nil, fenError("no rook available for queenside castling")
			}
			c.SetRight(color, ASide, kingSq, rookSq)
		case lower >= 'a' && lower <= 'h':
			file := File(lower - 'a')
			rookSq := NewSquare(file, kingSq.Rank())
			side := ASide
			if file > kingSq.File() {
				side = HSide
			}
			c.SetRight(color, side, kingSq, rookSq)
		default:
			return nil, fenError("invalid castling character %q", ch)
		}
	}
	return c, nil
}

// findOutermostRook locates the rook X-FEN's plain K/Q letters refer to:
// the rook on the king's rank furthest toward the edge in the requested
// direction.
func findOutermostRook(board *Board, color Color, kingSq Square, kingside bool) (Square, bool) {
	rooks := board.ByPiece(NewPiece(color, Role_Rook)) & RankBB(kingSq.Rank())
	best := NoSquare
	rem := rooks
	for rem != 0 {
		sq, _ := rem.First()
		rem = rem.Without(sq)
		if kingside && sq.File() > kingSq.File() {
			if best == NoSquare || sq.File() > best.File() {
				best = sq
			}
		} else if !kingside && sq.File() < kingSq.File() {
			if best == NoSquare || sq.File() < best.File() {
				best = sq
			}
		}
	}
	return best, best != NoSquare
}

func parsePockets(field string) (*Pockets, error) {
	p := &Pockets{}
	for i := 0; i < len(field); i++ {
		piece, ok := PieceFromChar(field[i])
		if !ok {
			return nil, fenError("invalid pocket character %q", field[i])
		}
		p.Add(piece.Color(), piece.Role(), 1)
	}
	return p, nil
}

func parseRemainingChecks(field string) (*RemainingChecks, error) {
	if field == "" {
		return NewRemainingChecks(3), nil
	}
	parts := strings.Split(strings.TrimPrefix(field, "+"), "+")
	if len(parts) != 2 {
		return nil, fenError("invalid remaining-checks field %q", field)
	}
	given := [2]int{}
	for i, s := range parts {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fenError("invalid remaining-checks field %q", field)
		}
		given[i] = n
	}
	return NewRemainingChecksFrom(3-given[0], 3-given[1]), nil
}

// Fen renders the position as a FEN string per opts.
func (p *Position) Fen(opts FenOpts) string {
	var sb strings.Builder
	sb.WriteString(p.Board().boardFENString(opts.Promoted))
	if p.Pockets() != nil {
		sb.WriteByte('[')
		sb.WriteString(pocketsFENString(p.Pockets()))
		sb.WriteByte(']')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.Turn().String())
	sb.WriteByte(' ')
	sb.WriteString(renderCastlingField(p.Castles(), p.Board(), opts.Shredder))
	sb.WriteByte(' ')
	sb.WriteString(p.EpSquare().String())
	if p.RemainingChecks() != nil {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(3 - p.RemainingChecks().Remaining(White)))
		sb.WriteByte('+')
		sb.WriteString(strconv.Itoa(3 - p.RemainingChecks().Remaining(Black)))
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfmoveClock()))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.Fullmoves()))
	return sb.String()
}

func pocketsFENString(p *Pockets) string {
	var sb strings.Builder
	for _, c := range [2]Color{White, Black} {
		for _, r := range AllRoles {
			n := p.Count(c, r)
			for i := 0; i < n; i++ {
				ch := r.Char()
				if c == White {
					ch = r.UpperChar()
				}
				sb.WriteByte(ch)
			}
		}
	}
	return sb.String()
}

func renderCastlingField(c *Castles, board *Board, shredder bool) string {
	if c == nil {
		return "-"
	}
	var sb strings.Builder
	for _, color := range [2]Color{White, Black} {
		for _, side := range [2]CastlingSide{HSide, ASide} {
			rookSq, ok := c.RookSquare(color, side)
			if !ok {
				continue
			}
			var ch byte
			if shredder || !isStandardRookFile(rookSq, side) {
				ch = byte('a' + rookSq.File())
			} else if side == HSide {
				ch = 'k'
			} else {
				ch = 'q'
			}
			if color == White {
				ch = ch - 'a' + 'A'
			}
			sb.WriteByte(ch)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

func isStandardRookFile(sq Square, side CastlingSide) bool {
	if side == HSide {
		return sq.File() == 7
	}
	return sq.File() == 0
}
