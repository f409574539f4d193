package crypto

import (
	"math"
	"sort"
)

// Affine encrypts each letter P as C = (a*P + b) mod n.
type Affine struct {
	a, b     int
	aInv     int
	alphabet Alphabet
}

// NewAffine validates that a is a unit modulo the alphabet size. b may be any integer.
func NewAffine(a, b int, opts ...Option) (*Affine, error) {
	o := buildOptions(opts)
	n := o.alphabet.Size()
	aInv, err := ModInverse(a, n)
	if err != nil {
		return nil, &KeyError{
			Cipher: "affine",
			Reason: "multiplier must be coprime with the alphabet size",
			Err:    err,
		}
	}
	return &Affine{a: Mod(a, n), b: Mod(b, n), aInv: aInv, alphabet: o.alphabet}, nil
}

func (c *Affine) Encrypt(text string) string {
	n := c.alphabet.Size()
	return substitute(text, c.alphabet, func(p int) int {
		return Mod(c.a*p+c.b, n)
	})
}

func (c *Affine) Decrypt(text string) string {
	n := c.alphabet.Size()
	return substitute(text, c.alphabet, func(p int) int {
		return Mod(c.aInv*(p-c.b), n)
	})
}

// AffineEncrypt is shorthand for NewAffine(a, b).Encrypt(text).
func AffineEncrypt(text string, a, b int, opts ...Option) (string, error) {
	c, err := NewAffine(a, b, opts...)
	if err != nil {
		return "", err
	}
	return c.Encrypt(text), nil
}

// AffineDecrypt is shorthand for NewAffine(a, b).Decrypt(text).
func AffineDecrypt(text string, a, b int, opts ...Option) (string, error) {
	c, err := NewAffine(a, b, opts...)
	if err != nil {
		return "", err
	}
	return c.Decrypt(text), nil
}

// CrackCandidate is one guessed affine key and the text it decrypts to.
type CrackCandidate struct {
	A       int
	B       int
	Preview string
	// Score is the chi-squared distance of Preview from English letter frequencies.
	// Lower is more plausible. Zero when the alphabet is not Latin.
	Score float64
}

// CrackOptions parameterises CrackAffine. The zero value uses the defaults.
type CrackOptions struct {
	// Plain1 and Plain2 are the plaintext letters assumed for the two most frequent
	// ciphertext letters. Default 'E' and 'T'.
	Plain1 rune
	Plain2 rune
	// TopK bounds how many of the most frequent ciphertext letters are paired. Default 4.
	TopK int
	// MaxCandidates bounds the result. Default 10.
	MaxCandidates int
	// Rank stably re-sorts candidates by Score before truncation.
	Rank     bool
	Alphabet Alphabet
}

// DefaultCrackOptions returns the options CrackAffine applies to zero fields.
func DefaultCrackOptions() CrackOptions {
	return CrackOptions{
		Plain1:        'E',
		Plain2:        'T',
		TopK:          4,
		MaxCandidates: 10,
		Alphabet:      Latin,
	}
}

func (o CrackOptions) withDefaults() CrackOptions {
	d := DefaultCrackOptions()
	if o.Plain1 == 0 {
		o.Plain1 = d.Plain1
	}
	if o.Plain2 == 0 {
		o.Plain2 = d.Plain2
	}
	if o.TopK <= 0 {
		o.TopK = d.TopK
	}
	if o.MaxCandidates <= 0 {
		o.MaxCandidates = d.MaxCandidates
	}
	if o.Alphabet.isZero() {
		o.Alphabet = d.Alphabet
	}
	return o
}

type letterCount struct {
	index int
	count int
}

// CrackAffine guesses affine keys for ciphertext by assuming its most frequent letters
// encrypt opts.Plain1 and opts.Plain2. If no pairing yields a valid key it falls back to
// every key in the keyspace. Candidates come back in generation order unless opts.Rank.
func CrackAffine(ciphertext string, opts CrackOptions) ([]CrackCandidate, error) {
	opts = opts.withDefaults()
	alphabet := opts.Alphabet
	n := alphabet.Size()

	p1, ok := alphabet.Index(opts.Plain1)
	if !ok {
		return nil, keyError("affine", "assumed plaintext letter %q is not in the alphabet", opts.Plain1)
	}
	p2, ok := alphabet.Index(opts.Plain2)
	if !ok {
		return nil, keyError("affine", "assumed plaintext letter %q is not in the alphabet", opts.Plain2)
	}

	// counts in first-encounter order so the stable sort breaks ties by it
	var freq []letterCount
	seen := make(map[int]int)
	for _, r := range ciphertext {
		i, ok := alphabet.Index(r)
		if !ok {
			continue
		}
		if pos, ok := seen[i]; ok {
			freq[pos].count++
			continue
		}
		seen[i] = len(freq)
		freq = append(freq, letterCount{index: i, count: 1})
	}
	if len(freq) == 0 {
		return nil, ErrEmptyAnalysis
	}
	sort.SliceStable(freq, func(i, j int) bool {
		return freq[i].count > freq[j].count
	})

	var candidates []CrackCandidate
	add := func(a, b int) {
		c := &Affine{a: a, b: b, alphabet: alphabet}
		c.aInv, _ = ModInverse(a, n)
		preview := c.Decrypt(ciphertext)
		candidates = append(candidates, CrackCandidate{
			A:       a,
			B:       b,
			Preview: preview,
			Score:   englishScore(preview, alphabet),
		})
	}

	// (C1 - C2) = a (P1 - P2) mod n has a unique solution only when P1 - P2 is a unit
	dInv, err := ModInverse(p1-p2, n)
	limit := min(opts.TopK, len(freq))
	for i := 0; i < limit && err == nil; i++ {
		for j := 0; j < limit; j++ {
			if i == j {
				continue
			}
			c1, c2 := freq[i].index, freq[j].index
			a := Mod((c1-c2)*dInv, n)
			if !IsUnit(a, n) {
				continue
			}
			add(a, Mod(c1-a*p1, n))
		}
	}

	if len(candidates) == 0 {
		for a := 1; a < n; a++ {
			if !IsUnit(a, n) {
				continue
			}
			for b := 0; b < n; b++ {
				add(a, b)
			}
		}
	}

	if opts.Rank {
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Score < candidates[j].Score
		})
	}
	if len(candidates) > opts.MaxCandidates {
		candidates = candidates[:opts.MaxCandidates]
	}
	return candidates, nil
}

// englishFrequencies holds the relative frequency (percent) of A–Z in English text.
var englishFrequencies = [26]float64{
	8.167, 1.492, 2.782, 4.253, 12.702, 2.228, 2.015, 6.094, 6.966, 0.153, 0.772, 4.025, 2.406,
	6.749, 7.507, 1.929, 0.095, 5.987, 6.327, 9.056, 2.758, 0.978, 2.360, 0.150, 1.974, 0.074,
}

func englishScore(text string, alphabet Alphabet) float64 {
	if alphabet.String() != Latin.String() {
		return 0
	}
	var counts [26]int
	total := 0
	for _, r := range text {
		if i, ok := alphabet.Index(r); ok {
			counts[i]++
			total++
		}
	}
	if total == 0 {
		return math.MaxFloat64
	}
	var chi float64
	for i, f := range englishFrequencies {
		expected := f / 100 * float64(total)
		d := float64(counts[i]) - expected
		chi += d * d / expected
	}
	return chi
}
