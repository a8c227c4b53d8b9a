// Package induction implements the elementary moves of Rauzy induction on
// two-row permutations: right and left induction with either row winning,
// the two inversions, and their composition.
//
// A right induction step compares the rightmost letters of the two rows.
// The winner row keeps its letter in place; the loser row's end letter is
// relocated next to the winner letter's other occurrence - immediately
// past it when that occurrence lies in the opposite row, immediately
// before it when it lies in the winner's own row (same-side
// identifications reverse orientation). Left induction mirrors this on
// the left ends. Each step yields an elementary transition matrix:
// the identity with one extra unit at [winner][loser], recording that the
// losing letter's interval absorbed a copy of the winner's interval.
package induction

import (
	rzerr "github.com/ietools/rauzy/pkg/errors"
	"github.com/ietools/rauzy/pkg/intmat"
	"github.com/ietools/rauzy/pkg/perm"
)

// Result is the outcome of a single move: the new permutation and the
// elementary transition matrix, indexed by the source alphabet ordering.
// Winner and Loser are empty for inversion moves, which carry the
// identity matrix and absorb no letter.
type Result struct {
	Perm   *perm.Permutation
	Matrix intmat.Matrix
	Kind   Kind
	Winner string
	Loser  string
}

// Apply performs one move on p. It fails with DEGENERATE_INDUCTION when
// the move is combinatorially undefined at p: the two end letters
// coincide, the move would empty a row, or (linear involutions) the
// result admits no positive length vector.
func Apply(p *perm.Permutation, k Kind) (Result, error) {
	if !k.IsInduction() {
		return applyInversion(p, k)
	}
	return applyInduction(p, k)
}

func applyInversion(p *perm.Permutation, k Kind) (Result, error) {
	top, bottom := p.Top(), p.Bottom()
	switch k {
	case LeftRightInversion:
		reverse(top)
		reverse(bottom)
	case TopBottomInversion:
		top, bottom = bottom, top
	case Symmetric:
		reverse(top)
		reverse(bottom)
		top, bottom = bottom, top
	default:
		return Result{}, rzerr.New(rzerr.ErrCodeInvalidMoveLabel, "unknown move kind %d", k)
	}
	q, err := rebuild(p, top, bottom, p.Flips())
	if err != nil {
		return Result{}, err
	}
	return Result{Perm: q, Matrix: intmat.Identity(p.Len()), Kind: k}, nil
}

func applyInduction(p *perm.Permutation, k Kind) (Result, error) {
	rows := [2][]string{p.Top(), p.Bottom()}
	winSide := k.WinnerSide()
	win := rows[winSide]
	lose := rows[winSide.Other()]

	end := func(row []string) int {
		if k.OnLeft() {
			return 0
		}
		return len(row) - 1
	}

	winner := win[end(win)]
	loser := lose[end(lose)]
	if winner == loser {
		return Result{}, rzerr.New(rzerr.ErrCodeDegenerateInduction,
			"move %s undefined: both rows end with %q", k, winner)
	}

	twinRow, twinPos := twin(rows, winner, int(winSide), end(win))

	// Remove the loser occurrence from its row end.
	if k.OnLeft() {
		lose = lose[1:]
		if twinRow == int(winSide.Other()) {
			twinPos-- // indices shift after dropping the front
		}
	} else {
		lose = lose[:len(lose)-1]
	}

	// Insertion point next to the winner's twin. Past the twin when it
	// sits in the opposite row, before it when it sits in the winner's
	// own row; a flipped winner swaps the side and toggles the loser.
	var insert int
	sameRow := twinRow == int(winSide)
	if sameRow && len(lose) == 0 {
		return Result{}, rzerr.New(rzerr.ErrCodeDegenerateInduction,
			"move %s undefined: row would become empty", k)
	}
	if k.OnLeft() {
		if sameRow {
			insert = twinPos + 1
		} else {
			insert = twinPos
		}
	} else {
		if sameRow {
			insert = twinPos
		} else {
			insert = twinPos + 1
		}
	}
	if p.Flipped(winner) {
		if sameRow == k.OnLeft() {
			insert--
		} else {
			insert++
		}
	}

	if sameRow {
		win = insertAt(win, insert, loser)
	} else {
		lose = insertAt(lose, insert, loser)
	}

	flips := p.Flips()
	if p.Flipped(winner) {
		flips = toggleFlip(flips, loser)
	}

	rows[winSide] = win
	rows[winSide.Other()] = lose
	q, err := rebuild(p, rows[perm.Top], rows[perm.Bottom], flips)
	if err != nil {
		if rzerr.Is(err, rzerr.ErrCodeInvalidInput) {
			// Unrealizable generalized permutation: the move is undefined.
			return Result{}, rzerr.Wrap(rzerr.ErrCodeDegenerateInduction, err,
				"move %s undefined at this vertex", k)
		}
		return Result{}, err
	}

	wi, _ := p.Alphabet().Index(winner)
	li, _ := p.Alphabet().Index(loser)
	return Result{
		Perm:   q,
		Matrix: intmat.Elementary(p.Len(), wi, li),
		Kind:   k,
		Winner: winner,
		Loser:  loser,
	}, nil
}

// twin locates the other occurrence of letter, excluding (skipRow, skipPos).
func twin(rows [2][]string, letter string, skipRow, skipPos int) (int, int) {
	for r := 0; r < 2; r++ {
		for i, l := range rows[r] {
			if l == letter && !(r == skipRow && i == skipPos) {
				return r, i
			}
		}
	}
	// Unreachable for validated permutations: every letter has two ends.
	return -1, -1
}

// rebuild constructs the successor permutation, revalidating the rows and
// preserving alphabet, mode and kind. Reduced permutations are
// re-canonicalized by construction.
func rebuild(p *perm.Permutation, top, bottom, flips []string) (*perm.Permutation, error) {
	return perm.New(top, bottom, perm.Options{
		Reduced:  p.Reduced(),
		Flips:    flips,
		Alphabet: p.Letters(),
	})
}

func insertAt(row []string, i int, l string) []string {
	out := make([]string, 0, len(row)+1)
	out = append(out, row[:i]...)
	out = append(out, l)
	return append(out, row[i:]...)
}

func reverse(row []string) {
	for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
		row[i], row[j] = row[j], row[i]
	}
}

func toggleFlip(flips []string, letter string) []string {
	for i, l := range flips {
		if l == letter {
			return append(flips[:i], flips[i+1:]...)
		}
	}
	return append(flips, letter)
}
