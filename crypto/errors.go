package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey is matched by every *KeyError.
	ErrInvalidKey = errors.New("invalid key")
	// ErrNoInverse is matched by every *NoInverseError.
	ErrNoInverse = errors.New("no modular inverse")
	// ErrNotInvertible reports a Hill key matrix with no inverse for the alphabet size.
	ErrNotInvertible = errors.New("key matrix is not invertible")
	// ErrEmptyAnalysis is returned by CrackAffine when the ciphertext has no letters.
	ErrEmptyAnalysis = errors.New("no letters to analyze")
)

// KeyError reports key material that fails a structural or mathematical precondition.
type KeyError struct {
	Cipher string
	Reason string
	Err    error
}

func (e *KeyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: invalid key: %s: %v", e.Cipher, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: invalid key: %s", e.Cipher, e.Reason)
}

func (e *KeyError) Is(target error) bool {
	return target == ErrInvalidKey
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

func keyError(cipher, format string, args ...any) error {
	return &KeyError{Cipher: cipher, Reason: fmt.Sprintf(format, args...)}
}

// NoInverseError carries the value that has no inverse modulo Modulus and the gcd found.
type NoInverseError struct {
	Value   int
	Modulus int
	GCD     int
}

func (e *NoInverseError) Error() string {
	return fmt.Sprintf("no modular inverse for a=%d mod %d (gcd=%d)", e.Value, e.Modulus, e.GCD)
}

func (e *NoInverseError) Is(target error) bool {
	return target == ErrNoInverse
}
