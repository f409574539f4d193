package crypto

import (
	"fmt"
	"unicode"
)

// HillPad is the letter used to complete a short final block.
const HillPad = 'X'

// Hill multiplies blocks of n letters by an n×n key matrix modulo the alphabet size.
type Hill struct {
	key      [][]int
	inverse  [][]int
	invErr   error
	pad      int
	alphabet Alphabet
}

// NewHill accepts a square 2×2 or 3×3 key. A key without an inverse still encrypts;
// Decrypt and Inverse report ErrNotInvertible for it.
func NewHill(key [][]int, opts ...Option) (*Hill, error) {
	o := buildOptions(opts)
	n := len(key)
	if n != 2 && n != 3 {
		return nil, keyError("hill", "key must be 2×2 or 3×3, got %d rows", n)
	}
	m := o.alphabet.Size()
	h := &Hill{key: make([][]int, n), alphabet: o.alphabet}
	for i, row := range key {
		if len(row) != n {
			return nil, keyError("hill", "row %d has %d entries, want %d", i, len(row), n)
		}
		h.key[i] = make([]int, n)
		for j, v := range row {
			h.key[i][j] = Mod(v, m)
		}
	}
	if pad, ok := o.alphabet.Index(HillPad); ok {
		h.pad = pad
	} else {
		h.pad = m - 1
	}
	h.inverse, h.invErr = InverseMatrix(h.key, m)
	return h, nil
}

// Size is the block length n.
func (h *Hill) Size() int {
	return len(h.key)
}

// Key returns a copy of the key reduced modulo the alphabet size.
func (h *Hill) Key() [][]int {
	return copyMatrix(h.key)
}

// Inverse returns the inverse key, or an error wrapping ErrNotInvertible.
func (h *Hill) Inverse() ([][]int, error) {
	if h.invErr != nil {
		return nil, h.invErr
	}
	return copyMatrix(h.inverse), nil
}

// Encrypt transforms the letters of text block by block. Letters produced by padding the
// last block are appended in lower case.
func (h *Hill) Encrypt(text string) string {
	return h.transform(text, h.key)
}

func (h *Hill) Decrypt(text string) (string, error) {
	if h.invErr != nil {
		return "", h.invErr
	}
	return h.transform(text, h.inverse), nil
}

// TrimPadding drops up to n-1 trailing lower-case pad letters from decrypted text. A
// genuine trailing lower-case pad letter is indistinguishable and is dropped too.
func (h *Hill) TrimPadding(text string) string {
	runes := []rune(text)
	pad := unicode.ToLower(h.alphabet.Letter(h.pad))
	for i := 0; i < h.Size()-1 && len(runes) > 0 && runes[len(runes)-1] == pad; i++ {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

func (h *Hill) transform(text string, key [][]int) string {
	n := len(key)
	m := h.alphabet.Size()
	runes := []rune(text)

	var values, slots []int
	for i, r := range runes {
		if v, ok := h.alphabet.Index(r); ok {
			values = append(values, v)
			slots = append(slots, i)
		}
	}
	for len(values)%n != 0 {
		values = append(values, h.pad)
	}

	out := make([]int, 0, len(values))
	for i := 0; i < len(values); i += n {
		out = append(out, mulVec(key, values[i:i+n], m)...)
	}

	for k, slot := range slots {
		runes[slot] = withCase(h.alphabet.Letter(out[k]), runes[slot])
	}
	for _, v := range out[len(slots):] {
		runes = append(runes, unicode.ToLower(h.alphabet.Letter(v)))
	}
	return string(runes)
}

func mulVec(k [][]int, p []int, m int) []int {
	c := make([]int, len(k))
	for i, row := range k {
		sum := 0
		for j, v := range row {
			sum += v * p[j]
		}
		c[i] = Mod(sum, m)
	}
	return c
}

// Determinant uses cofactor expansion along the first row. It is meant for the small
// matrices of the Hill cipher.
func Determinant(a [][]int) int {
	switch len(a) {
	case 0:
		return 1
	case 1:
		return a[0][0]
	case 2:
		return a[0][0]*a[1][1] - a[0][1]*a[1][0]
	}
	det := 0
	for j := range a[0] {
		det += cofactorSign(0, j) * a[0][j] * Determinant(minor(a, 0, j))
	}
	return det
}

// InverseMatrix returns the inverse of a modulo m as detInv * adj(a). It fails with an
// error wrapping ErrNotInvertible (and the underlying *NoInverseError) when gcd(det, m) != 1.
func InverseMatrix(a [][]int, m int) ([][]int, error) {
	det := Mod(Determinant(a), m)
	detInv, err := ModInverse(det, m)
	if err != nil {
		return nil, fmt.Errorf("%w: determinant %d mod %d: %w", ErrNotInvertible, det, m, err)
	}
	n := len(a)
	inv := make([][]int, n)
	for i := range inv {
		inv[i] = make([]int, n)
	}
	if n == 1 {
		inv[0][0] = detInv
		return inv, nil
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// adjugate is the transposed cofactor matrix
			cof := cofactorSign(i, j) * Determinant(minor(a, i, j))
			inv[j][i] = Mod(detInv*cof, m)
		}
	}
	return inv, nil
}

func minor(a [][]int, row, col int) [][]int {
	out := make([][]int, 0, len(a)-1)
	for i, r := range a {
		if i == row {
			continue
		}
		line := make([]int, 0, len(r)-1)
		for j, v := range r {
			if j != col {
				line = append(line, v)
			}
		}
		out = append(out, line)
	}
	return out
}

func cofactorSign(i, j int) int {
	if (i+j)%2 == 0 {
		return 1
	}
	return -1
}

func copyMatrix(a [][]int) [][]int {
	out := make([][]int, len(a))
	for i, row := range a {
		out[i] = append([]int(nil), row...)
	}
	return out
}

func HillEncrypt(text string, key [][]int, opts ...Option) (string, error) {
	h, err := NewHill(key, opts...)
	if err != nil {
		return "", err
	}
	return h.Encrypt(text), nil
}

func HillDecrypt(text string, key [][]int, opts ...Option) (string, error) {
	h, err := NewHill(key, opts...)
	if err != nil {
		return "", err
	}
	return h.Decrypt(text)
}
