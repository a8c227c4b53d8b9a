package subst

import (
	"strings"

	rzerr "github.com/ietools/rauzy/pkg/errors"
	"github.com/ietools/rauzy/pkg/intmat"
	"github.com/ietools/rauzy/pkg/perm"
)

// SignedLetter is a letter together with an orientation. Flipped letters
// are traversed backwards, so substituting into one reverses and reflips
// the image.
type SignedLetter struct {
	Letter  string
	Flipped bool
}

// String renders the letter with a leading '-' when flipped.
func (l SignedLetter) String() string {
	if l.Flipped {
		return "-" + l.Letter
	}
	return l.Letter
}

// SignedSubstitution maps letters to words of signed letters. It models
// the symbolic action of induction paths on flipped permutations.
type SignedSubstitution struct {
	alphabet *perm.Alphabet
	images   map[string][]SignedLetter
}

// SignedIdentity returns the signed substitution fixing every letter with
// positive orientation.
func SignedIdentity(a *perm.Alphabet) *SignedSubstitution {
	s := &SignedSubstitution{
		alphabet: a,
		images:   make(map[string][]SignedLetter, a.Len()),
	}
	for _, l := range a.Labels() {
		s.images[l] = []SignedLetter{{Letter: l}}
	}
	return s
}

// NewSigned builds a signed substitution from explicit images.
func NewSigned(a *perm.Alphabet, images map[string][]SignedLetter) (*SignedSubstitution, error) {
	s := &SignedSubstitution{
		alphabet: a,
		images:   make(map[string][]SignedLetter, a.Len()),
	}
	for _, l := range a.Labels() {
		img, ok := images[l]
		if !ok || len(img) == 0 {
			return nil, rzerr.New(rzerr.ErrCodeInvalidInput, "letter %q has no image", l)
		}
		for _, x := range img {
			if !a.Contains(x.Letter) {
				return nil, rzerr.New(rzerr.ErrCodeInvalidInput,
					"image of %q uses foreign letter %q", l, x.Letter)
			}
		}
		s.images[l] = append([]SignedLetter(nil), img...)
	}
	return s, nil
}

// Alphabet returns the underlying alphabet.
func (s *SignedSubstitution) Alphabet() *perm.Alphabet { return s.alphabet }

// Image returns a copy of the signed image word of a letter.
func (s *SignedSubstitution) Image(letter string) []SignedLetter {
	return append([]SignedLetter(nil), s.images[letter]...)
}

// Apply maps the substitution over a signed word. Substituting into a
// flipped letter emits its image reversed with every orientation toggled.
func (s *SignedSubstitution) Apply(word []SignedLetter) []SignedLetter {
	var out []SignedLetter
	for _, l := range word {
		img := s.images[l.Letter]
		if !l.Flipped {
			out = append(out, img...)
			continue
		}
		for i := len(img) - 1; i >= 0; i-- {
			out = append(out, SignedLetter{Letter: img[i].Letter, Flipped: !img[i].Flipped})
		}
	}
	return out
}

// Compose returns s∘t, applying t first.
func (s *SignedSubstitution) Compose(t *SignedSubstitution) *SignedSubstitution {
	out := &SignedSubstitution{
		alphabet: s.alphabet,
		images:   make(map[string][]SignedLetter, s.alphabet.Len()),
	}
	for _, l := range s.alphabet.Labels() {
		out.images[l] = s.Apply(t.images[l])
	}
	return out
}

// Forget drops orientations, yielding the underlying plain substitution.
func (s *SignedSubstitution) Forget() *Substitution {
	out := &Substitution{
		alphabet: s.alphabet,
		images:   make(map[string][]string, s.alphabet.Len()),
	}
	for _, l := range s.alphabet.Labels() {
		img := make([]string, len(s.images[l]))
		for i, x := range s.images[l] {
			img[i] = x.Letter
		}
		out.images[l] = img
	}
	return out
}

// IncidenceMatrix counts occurrences regardless of orientation, so it
// matches the transition matrix of the generating path.
func (s *SignedSubstitution) IncidenceMatrix() intmat.Matrix {
	return s.Forget().IncidenceMatrix()
}

// String renders the substitution one signed image per line.
func (s *SignedSubstitution) String() string {
	var b strings.Builder
	for i, l := range s.alphabet.Labels() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l)
		b.WriteString("->")
		for _, x := range s.images[l] {
			b.WriteString(x.String())
		}
	}
	return b.String()
}
