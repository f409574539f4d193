package crypto

// Mod is the Euclidean modulo: the result is in [0, m) for any x. m must be positive.
func Mod(x, m int) int {
	return ((x % m) + m) % m
}

// GCD returns the non-negative greatest common divisor. GCD(0, 0) is 0.
func GCD(x, y int) int {
	x, y = abs(x), abs(y)
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// ExtendedGCD returns g = gcd(a, b) and Bézout coefficients with a*x + b*y == g.
// g is never negative.
func ExtendedGCD(a, b int) (g, x, y int) {
	g, x, y = egcd(a, b)
	if g < 0 {
		g, x, y = -g, -x, -y
	}
	return g, x, y
}

func egcd(a, b int) (g, x, y int) {
	if b == 0 {
		return a, 1, 0
	}
	g, x1, y1 := egcd(b, a%b)
	return g, y1, x1 - (a/b)*y1
}

// ModInverse returns the inverse of a modulo m in [0, m), or a *NoInverseError when
// gcd(a mod m, m) != 1.
func ModInverse(a, m int) (int, error) {
	if m <= 0 {
		return 0, &NoInverseError{Value: a, Modulus: m, GCD: GCD(a, m)}
	}
	a = Mod(a, m)
	g, x, _ := ExtendedGCD(a, m)
	if g != 1 {
		return 0, &NoInverseError{Value: a, Modulus: m, GCD: g}
	}
	return Mod(x, m), nil
}

// IsUnit reports whether a has an inverse modulo m.
func IsUnit(a, m int) bool {
	return GCD(a, m) == 1
}

// EuclidResult summarises a and m for the lab's Euclid tool.
type EuclidResult struct {
	GCD int
	X   int
	Y   int
	// Inverse is nil when a has no inverse modulo m.
	Inverse *int
}

// Euclid runs the extended algorithm on (a, m) and adds the inverse of a when it exists.
func Euclid(a, m int) EuclidResult {
	g, x, y := ExtendedGCD(a, m)
	res := EuclidResult{GCD: g, X: x, Y: y}
	if g == 1 {
		if inv, err := ModInverse(a, m); err == nil {
			res.Inverse = &inv
		}
	}
	return res
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
