package induction

import (
	rzerr "github.com/ietools/rauzy/pkg/errors"
	"github.com/ietools/rauzy/pkg/perm"
)

// Kind enumerates the elementary moves of the induction engine.
type Kind int

const (
	// RightTop is right Rauzy induction with the top row winning.
	RightTop Kind = iota
	// RightBottom is right Rauzy induction with the bottom row winning.
	RightBottom
	// LeftTop is left Rauzy induction with the top row winning.
	LeftTop
	// LeftBottom is left Rauzy induction with the bottom row winning.
	LeftBottom
	// LeftRightInversion reverses the order of both rows.
	LeftRightInversion
	// TopBottomInversion swaps the two rows.
	TopBottomInversion
	// Symmetric composes both inversions.
	Symmetric
)

// Inductions lists the four genuine induction moves (the ones that absorb
// an interval and carry a non-trivial matrix).
var Inductions = []Kind{RightTop, RightBottom, LeftTop, LeftBottom}

// String returns the token form of the move kind.
func (k Kind) String() string {
	switch k {
	case RightTop:
		return "t"
	case RightBottom:
		return "b"
	case LeftTop:
		return "lt"
	case LeftBottom:
		return "lb"
	case LeftRightInversion:
		return "lr"
	case TopBottomInversion:
		return "tb"
	case Symmetric:
		return "s"
	default:
		return "?"
	}
}

// IsInduction reports whether the kind is a genuine induction move, as
// opposed to an inversion.
func (k Kind) IsInduction() bool {
	switch k {
	case RightTop, RightBottom, LeftTop, LeftBottom:
		return true
	}
	return false
}

// WinnerSide returns the row that keeps its letter fixed during the move.
// Only meaningful for induction kinds.
func (k Kind) WinnerSide() perm.Side {
	if k == RightTop || k == LeftTop {
		return perm.Top
	}
	return perm.Bottom
}

// OnLeft reports whether the induction acts on the left ends of the rows.
func (k Kind) OnLeft() bool {
	return k == LeftTop || k == LeftBottom
}

// ParseTokens resolves human move tokens into move kinds. Single-letter
// tokens "t" and "b" are right-induction shorthand; two-letter tokens
// name row and side in either order ("rt"/"tr", "lb"/"bl", ...); the
// pairs ("l","t"), ("l","b"), ("r","t"), ("r","b") spell side and row as
// separate tokens; "lr", "tb" and "s" name the inversions. Unknown tokens
// fail with INVALID_MOVE_LABEL.
func ParseTokens(tokens []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case "t", "top":
			kinds = append(kinds, RightTop)
		case "b", "bottom":
			kinds = append(kinds, RightBottom)
		case "lt", "tl":
			kinds = append(kinds, LeftTop)
		case "lb", "bl":
			kinds = append(kinds, LeftBottom)
		case "rt", "tr":
			kinds = append(kinds, RightTop)
		case "rb", "br":
			kinds = append(kinds, RightBottom)
		case "lr":
			kinds = append(kinds, LeftRightInversion)
		case "tb":
			kinds = append(kinds, TopBottomInversion)
		case "s":
			kinds = append(kinds, Symmetric)
		case "l", "r":
			if i+1 >= len(tokens) {
				return nil, rzerr.New(rzerr.ErrCodeInvalidMoveLabel,
					"side token %q needs a row token", tokens[i])
			}
			side, row := tokens[i], tokens[i+1]
			i++
			var k Kind
			switch {
			case side == "l" && row == "t":
				k = LeftTop
			case side == "l" && row == "b":
				k = LeftBottom
			case side == "r" && row == "t":
				k = RightTop
			case side == "r" && row == "b":
				k = RightBottom
			default:
				return nil, rzerr.New(rzerr.ErrCodeInvalidMoveLabel,
					"unknown row token %q after %q", row, side)
			}
			kinds = append(kinds, k)
		default:
			return nil, rzerr.New(rzerr.ErrCodeInvalidMoveLabel, "unknown move token %q", tokens[i])
		}
	}
	return kinds, nil
}
