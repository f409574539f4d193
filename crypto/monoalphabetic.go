package crypto

// Monoalphabetic substitutes each letter through a fixed permutation of the alphabet.
type Monoalphabetic struct {
	forward  []int
	reverse  []int
	alphabet Alphabet
}

// NewMonoalphabetic requires key to be a case-insensitive permutation of the whole alphabet.
func NewMonoalphabetic(key string, opts ...Option) (*Monoalphabetic, error) {
	o := buildOptions(opts)
	n := o.alphabet.Size()

	runes := []rune(key)
	if len(runes) != n {
		return nil, keyError("monoalphabetic", "key must have exactly %d letters, got %d", n, len(runes))
	}

	m := &Monoalphabetic{
		forward:  make([]int, n),
		reverse:  make([]int, n),
		alphabet: o.alphabet,
	}
	for i := range m.reverse {
		m.reverse[i] = -1
	}
	for i, r := range runes {
		c, ok := o.alphabet.Index(r)
		if !ok {
			return nil, keyError("monoalphabetic", "%q is not in the alphabet", r)
		}
		if m.reverse[c] != -1 {
			return nil, keyError("monoalphabetic", "letter %q appears more than once", o.alphabet.Letter(c))
		}
		m.forward[i] = c
		m.reverse[c] = i
	}
	return m, nil
}

func (m *Monoalphabetic) Encrypt(text string) string {
	return substitute(text, m.alphabet, func(p int) int { return m.forward[p] })
}

func (m *Monoalphabetic) Decrypt(text string) string {
	return substitute(text, m.alphabet, func(c int) int { return m.reverse[c] })
}

func MonoEncrypt(text, key string, opts ...Option) (string, error) {
	m, err := NewMonoalphabetic(key, opts...)
	if err != nil {
		return "", err
	}
	return m.Encrypt(text), nil
}

func MonoDecrypt(text, key string, opts ...Option) (string, error) {
	m, err := NewMonoalphabetic(key, opts...)
	if err != nil {
		return "", err
	}
	return m.Decrypt(text), nil
}
