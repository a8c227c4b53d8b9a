package subst

import (
	"github.com/ietools/rauzy/pkg/perm"
)

// Elementary returns the one-step substitution of an induction move: the
// loser maps to the two-letter word of winner and itself, every other
// letter is fixed. When prepend is true the winner comes first.
func Elementary(a *perm.Alphabet, winner, loser string, prepend bool) *Substitution {
	s := Identity(a)
	if prepend {
		s.images[loser] = []string{winner, loser}
	} else {
		s.images[loser] = []string{loser, winner}
	}
	return s
}

// ElementarySigned is the orientation-aware one-step substitution. A
// flipped winner reverses the insertion side and flips the loser's new
// occurrence in the image.
func ElementarySigned(a *perm.Alphabet, winner, loser string, winnerFlipped, loserFlipped, prepend bool) *SignedSubstitution {
	s := SignedIdentity(a)
	w := SignedLetter{Letter: winner, Flipped: winnerFlipped}
	l := SignedLetter{Letter: loser, Flipped: winnerFlipped != loserFlipped}
	if prepend != winnerFlipped {
		s.images[loser] = []SignedLetter{w, l}
	} else {
		s.images[loser] = []SignedLetter{l, w}
	}
	return s
}
