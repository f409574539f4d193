package crypto

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const qwerty = "QWERTYUIOPASDFGHJKLZXCVBNM"

func TestMonoalphabetic(t *testing.T) {
	got, err := MonoEncrypt("HELLO", qwerty)
	require.NoError(t, err)
	assert.Equal(t, "ITSSG", got)

	m, err := NewMonoalphabetic(qwerty)
	require.NoError(t, err)
	text := "Hello, World! Zebra-42"
	enc := m.Encrypt(text)
	assert.Equal(t, "Itssg, Vgksr! Mtwkq-42", enc)
	assert.Equal(t, text, m.Decrypt(enc))

	lower, err := MonoDecrypt(enc, "qwertyuiopasdfghjklzxcvbnm")
	require.NoError(t, err)
	assert.Equal(t, text, lower)
}

func TestMonoalphabeticInvalidKeys(t *testing.T) {
	keys := []string{
		"",
		"ABC",
		"QWERTYUIOPASDFGHJKLZXCVBNMA",
		"QWERTYUIOPASDFGHJKLZXCVBNQ",
		"QWERTYUIOPASDFGHJKLZXCVB1M",
		"QWERTYUıOPASDFGHJKLZXCVBNM",
		"QWERTYUIOPAſDFGHJKLZXCVBNM",
	}
	for _, key := range keys {
		_, err := NewMonoalphabetic(key)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestVigenere(t *testing.T) {
	got, err := VigenereEncrypt("HELLO", "KEY")
	require.NoError(t, err)
	assert.Equal(t, "RIJVS", got)

	v, err := NewVigenere("k-e y!")
	require.NoError(t, err)
	assert.Equal(t, "KEY", v.Key())

	// spaces and punctuation do not consume key letters
	assert.Equal(t, "Rijvs, Uyvjn!", v.Encrypt("Hello, World!"))
	assert.Equal(t, "Hello, World!", v.Decrypt("Rijvs, Uyvjn!"))
}

func TestLookalikeRunesPassThrough(t *testing.T) {
	aff, err := NewAffine(5, 8)
	require.NoError(t, err)
	assert.Equal(t, "ſıG", aff.Encrypt("ſıK"))
	assert.Equal(t, "ſıK", aff.Decrypt("ſıG"))

	vig, err := NewVigenere("ſKEY")
	require.NoError(t, err)
	assert.Equal(t, "KEY", vig.Key())
	assert.Equal(t, "ſıR", vig.Encrypt("ſıH"))
}

func TestVigenereEmptyKey(t *testing.T) {
	for _, key := range []string{"", "123", " -!"} {
		_, err := NewVigenere(key)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestSubstitutionPreservesShape(t *testing.T) {
	text := "Attack at dawn; bring 3 ladders & the ROPE. ſı Æ"
	aff, err := NewAffine(9, 4)
	require.NoError(t, err)
	mono, err := NewMonoalphabetic(qwerty)
	require.NoError(t, err)
	vig, err := NewVigenere("lemon")
	require.NoError(t, err)

	ciphers := map[string]interface {
		Encrypt(string) string
		Decrypt(string) string
	}{
		"affine":         aff,
		"monoalphabetic": mono,
		"vigenere":       vig,
	}
	for name, c := range ciphers {
		t.Run(name, func(t *testing.T) {
			enc := []rune(c.Encrypt(text))
			src := []rune(text)
			require.Len(t, enc, len(src))
			for i, r := range src {
				if Latin.Contains(r) {
					assert.Equal(t, unicode.IsUpper(r), unicode.IsUpper(enc[i]), "case at %d", i)
				} else {
					assert.Equal(t, r, enc[i], "passthrough at %d", i)
				}
			}
			assert.Equal(t, text, c.Decrypt(string(enc)))
		})
	}
}

func TestNewAlphabet(t *testing.T) {
	a, err := NewAlphabet("abc")
	require.NoError(t, err)
	assert.Equal(t, 3, a.Size())
	assert.Equal(t, "ABC", a.String())
	i, ok := a.Index('c')
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, 'A', a.Letter(3))

	assert.False(t, Latin.Contains('ſ'))
	assert.False(t, Latin.Contains('ı'))
	assert.True(t, Latin.Contains('k'))

	for _, bad := range []string{"", "ABA", "AB1", "ABſ"} {
		_, err := NewAlphabet(bad)
		assert.ErrorIs(t, err, ErrInvalidKey, "alphabet %q", bad)
	}
}
