package crypto

// Vigenere shifts each letter by the current keyword letter. The keyword advances only
// on letters; everything else passes through without consuming key.
type Vigenere struct {
	key      []int
	alphabet Alphabet
}

// NewVigenere drops every key character outside the alphabet and rejects an empty result.
func NewVigenere(key string, opts ...Option) (*Vigenere, error) {
	o := buildOptions(opts)
	v := &Vigenere{alphabet: o.alphabet}
	for _, r := range key {
		if k, ok := o.alphabet.Index(r); ok {
			v.key = append(v.key, k)
		}
	}
	if len(v.key) == 0 {
		return nil, keyError("vigenere", "key must contain at least one letter")
	}
	return v, nil
}

// Key returns the normalized keyword.
func (v *Vigenere) Key() string {
	out := make([]rune, len(v.key))
	for i, k := range v.key {
		out[i] = v.alphabet.Letter(k)
	}
	return string(out)
}

func (v *Vigenere) Encrypt(text string) string {
	return v.transform(text, 1)
}

func (v *Vigenere) Decrypt(text string) string {
	return v.transform(text, -1)
}

func (v *Vigenere) transform(text string, dir int) string {
	n := v.alphabet.Size()
	cursor := 0
	return substitute(text, v.alphabet, func(p int) int {
		k := v.key[cursor%len(v.key)]
		cursor++
		return Mod(p+dir*k, n)
	})
}

func VigenereEncrypt(text, key string, opts ...Option) (string, error) {
	v, err := NewVigenere(key, opts...)
	if err != nil {
		return "", err
	}
	return v.Encrypt(text), nil
}

func VigenereDecrypt(text, key string, opts ...Option) (string, error) {
	v, err := NewVigenere(key, opts...)
	if err != nil {
		return "", err
	}
	return v.Decrypt(text), nil
}
