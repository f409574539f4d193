// Package crypto contains the classical ciphers of the lab: Affine, Monoalphabetic,
// Vigenère, Playfair and Hill, plus the modular arithmetic they share.
//
// Every function here is pure. Cipher values are immutable once constructed and may be
// used from any number of goroutines.
package crypto

import (
	"unicode"
)

// Alphabet is an ordered set of distinct upper-case letters. Lookups are case-insensitive.
type Alphabet struct {
	letters []rune
	index   map[rune]int
}

// Latin is the 26-letter A–Z alphabet used by default.
var Latin = mustAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

func mustAlphabet(letters string) Alphabet {
	a, err := NewAlphabet(letters)
	if err != nil {
		panic(err)
	}
	return a
}

// NewAlphabet builds an alphabet from letters in order. Letters are upper-cased.
func NewAlphabet(letters string) (Alphabet, error) {
	if letters == "" {
		return Alphabet{}, keyError("alphabet", "alphabet is empty")
	}
	a := Alphabet{index: make(map[rune]int)}
	for _, r := range letters {
		if !unicode.IsLetter(r) {
			return Alphabet{}, keyError("alphabet", "%q is not a letter", r)
		}
		u := unicode.ToUpper(r)
		if u != r && unicode.ToLower(u) != r {
			return Alphabet{}, keyError("alphabet", "%q has no plain upper-case form", r)
		}
		if _, dup := a.index[u]; dup {
			return Alphabet{}, keyError("alphabet", "duplicate letter %q", u)
		}
		a.index[u] = len(a.letters)
		a.letters = append(a.letters, u)
	}
	return a, nil
}

// Size returns the number of letters, the modulus of every cipher using the alphabet.
func (a Alphabet) Size() int {
	return len(a.letters)
}

// Index returns the position of r, ignoring case. Only a letter itself or its exact
// lower-case form matches, so runes like 'ſ' or 'ı' that merely upper-case to a letter do not.
func (a Alphabet) Index(r rune) (int, bool) {
	if i, ok := a.index[r]; ok {
		return i, true
	}
	u := unicode.ToUpper(r)
	if unicode.ToLower(u) != r {
		return 0, false
	}
	i, ok := a.index[u]
	return i, ok
}

// Letter returns the upper-case letter at i reduced modulo the alphabet size.
func (a Alphabet) Letter(i int) rune {
	return a.letters[Mod(i, len(a.letters))]
}

// Contains reports whether Index finds r.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.Index(r)
	return ok
}

func (a Alphabet) String() string {
	return string(a.letters)
}

func (a Alphabet) isZero() bool {
	return len(a.letters) == 0
}

// withCase returns r in the case of like.
func withCase(r, like rune) rune {
	if unicode.IsLower(like) {
		return unicode.ToLower(r)
	}
	return unicode.ToUpper(r)
}

// Option configures a cipher constructor.
type Option func(*options)

type options struct {
	alphabet Alphabet
}

// WithAlphabet makes a cipher work over alphabet instead of Latin.
func WithAlphabet(alphabet Alphabet) Option {
	return func(o *options) {
		o.alphabet = alphabet
	}
}

func buildOptions(opts []Option) options {
	o := options{alphabet: Latin}
	for _, opt := range opts {
		opt(&o)
	}
	if o.alphabet.isZero() {
		o.alphabet = Latin
	}
	return o
}

// substitute maps every alphabet letter of text through fn and passes everything else through.
func substitute(text string, alphabet Alphabet, fn func(p int) int) string {
	out := []rune(text)
	for i, r := range out {
		p, ok := alphabet.Index(r)
		if !ok {
			continue
		}
		out[i] = withCase(alphabet.Letter(fn(p)), r)
	}
	return string(out)
}
