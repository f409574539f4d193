package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMod(t *testing.T) {
	assert.Equal(t, 3, Mod(29, 26))
	assert.Equal(t, 23, Mod(-3, 26))
	assert.Equal(t, 0, Mod(-26, 26))
	assert.Equal(t, 0, Mod(0, 26))
}

func TestGCD(t *testing.T) {
	tests := []struct {
		x, y, want int
	}{
		{0, 0, 0},
		{0, 7, 7},
		{12, 18, 6},
		{-12, 18, 6},
		{15, 26, 1},
		{13, -26, 13},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GCD(tt.x, tt.y), "GCD(%d, %d)", tt.x, tt.y)
	}
}

func TestExtendedGCD(t *testing.T) {
	g, x, y := ExtendedGCD(15, 26)
	assert.Equal(t, 1, g)
	assert.Equal(t, 7, x)
	assert.Equal(t, -4, y)

	for a := -30; a <= 30; a++ {
		for m := -30; m <= 30; m++ {
			g, x, y := ExtendedGCD(a, m)
			require.Equal(t, g, a*x+m*y, "Bézout identity for (%d, %d)", a, m)
			require.Equal(t, GCD(a, m), g, "gcd for (%d, %d)", a, m)
		}
	}
}

func TestModInverse(t *testing.T) {
	inv, err := ModInverse(15, 26)
	require.NoError(t, err)
	assert.Equal(t, 7, inv)

	for a := 1; a < 26; a++ {
		if GCD(a, 26) != 1 {
			continue
		}
		inv, err := ModInverse(a, 26)
		require.NoError(t, err)
		assert.Equal(t, 1, (a*inv)%26, "a=%d", a)
		assert.True(t, inv >= 0 && inv < 26)
	}

	inv, err = ModInverse(-11, 26)
	require.NoError(t, err)
	assert.Equal(t, 1, Mod(-11*inv, 26))
}

func TestModInverseFails(t *testing.T) {
	_, err := ModInverse(13, 26)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoInverse))

	var nie *NoInverseError
	require.True(t, errors.As(err, &nie))
	assert.Equal(t, 13, nie.Value)
	assert.Equal(t, 13, nie.GCD)
	assert.Equal(t, 26, nie.Modulus)

	_, err = ModInverse(3, 0)
	assert.ErrorIs(t, err, ErrNoInverse)
}

func TestEuclid(t *testing.T) {
	res := Euclid(15, 26)
	assert.Equal(t, 1, res.GCD)
	require.NotNil(t, res.Inverse)
	assert.Equal(t, 7, *res.Inverse)
	assert.Equal(t, 1, 15*res.X+26*res.Y)

	res = Euclid(12, 26)
	assert.Equal(t, 2, res.GCD)
	assert.Nil(t, res.Inverse)
}
