package chessmg

import (
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromChar converts a FEN character to the corresponding piece.
func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return Piece{Color: White, Type: Pawn}
	case 'N':
		return Piece{Color: White, Type: Knight}
	case 'B':
		return Piece{Color: White, Type: Bishop}
	case 'R':
		return Piece{Color: White, Type: Rook}
	case 'Q':
		return Piece{Color: White, Type: Queen}
	case 'K':
		return Piece{Color: White, Type: King}
	case 'p':
		return Piece{Color: Black, Type: Pawn}
	case 'n':
		return Piece{Color: Black, Type: Knight}
	case 'b':
		return Piece{Color: Black, Type: Bishop}
	case 'r':
		return Piece{Color: Black, Type: Rook}
	case 'q':
		return Piece{Color: Black, Type: Queen}
	case 'k':
		return Piece{Color: Black, Type: King}
	default:
		return NoPiece
	}
}

// charFromPiece converts a piece to its FEN character representation.
func charFromPiece(p Piece) rune {
	if p.IsEmpty() {
		return '?'
	}
	letters := [7]rune{'?', 'p', 'n', 'b', 'r', 'q', 'k'}
	ch := letters[p.Type]
	if p.Color == White {
		ch = ch - 'a' + 'A'
	}
	return ch
}

// ParseFEN parses the six standard FEN fields and returns a fresh game rooted
// at that position: history, captures and notations start empty and the game
// is not over, regardless of what the position itself looks like.
//
// Every field is validated; the returned error aggregates all field problems.
func ParseFEN(fen string) (*GameState, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, errors.Errorf("invalid FEN: want 6 fields, got %d", len(fields))
	}

	s := &GameState{EnPassant: NoSquare, FullmoveNumber: 1}
	var errs *multierror.Error

	if err := parsePlacement(fields[0], &s.Board); err != nil {
		errs = multierror.Append(errs, err)
	}

	switch fields[1] {
	case "w":
		s.Turn = White
	case "b":
		s.Turn = Black
	default:
		errs = multierror.Append(errs, errors.New("invalid FEN: side to move must be 'w' or 'b'"))
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				s.Castling |= CastlingWhiteK
			case 'Q':
				s.Castling |= CastlingWhiteQ
			case 'k':
				s.Castling |= CastlingBlackK
			case 'q':
				s.Castling |= CastlingBlackQ
			default:
				errs = multierror.Append(errs, errors.Errorf("invalid FEN: castling character %q", ch))
			}
		}
	}

	if fields[3] != "-" {
		sq, ok := ParseSquare(fields[3])
		if !ok {
			errs = multierror.Append(errs, errors.Errorf("invalid FEN: en passant square %q", fields[3]))
		}
		s.EnPassant = sq
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil {
		errs = multierror.Append(errs, errors.Wrap(err, "invalid FEN: halfmove clock"))
	}
	s.HalfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil {
		errs = multierror.Append(errs, errors.Wrap(err, "invalid FEN: fullmove number"))
	}
	if fullmove > 0 {
		s.FullmoveNumber = fullmove
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return s, nil
}

// parsePlacement fills the board from the piece-placement field (ranks 8
// down to 1, run-length-encoded empties).
func parsePlacement(placement string, b *Board) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return errors.Errorf("invalid FEN: want 8 ranks, got %d", len(ranks))
	}
	for row, rankStr := range ranks {
		col := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			p := pieceFromChar(ch)
			if p.IsEmpty() {
				return errors.Errorf("invalid FEN: unrecognized piece character %q", ch)
			}
			if col >= 8 {
				return errors.Errorf("invalid FEN: too many squares in rank %d", 8-row)
			}
			b[row][col] = p
			col++
		}
		if col != 8 {
			return errors.Errorf("invalid FEN: rank %d does not have 8 columns", 8-row)
		}
	}
	return nil
}

// ToFEN serializes the position: board, turn, castling, en passant and the
// two clocks. History is not part of FEN and does not round-trip.
func (s *GameState) ToFEN() string {
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			p := s.Board[row][col]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteRune(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if s.Turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	if s.Castling == 0 {
		sb.WriteByte('-')
	} else {
		if s.Castling&CastlingWhiteK != 0 {
			sb.WriteByte('K')
		}
		if s.Castling&CastlingWhiteQ != 0 {
			sb.WriteByte('Q')
		}
		if s.Castling&CastlingBlackK != 0 {
			sb.WriteByte('k')
		}
		if s.Castling&CastlingBlackQ != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	sb.WriteString(s.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(s.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(s.FullmoveNumber))
	return sb.String()
}
