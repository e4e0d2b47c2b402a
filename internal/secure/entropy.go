package secure

import (
	"crypto/rand"
	"io"
)

// Reader is the cryptographically secure random source used for polynomial
// coefficients, digest-share randomness and generated identifiers. Tests
// substitute a deterministic reader here.
//
//nolint:gochecknoglobals // package-level RNG needed for injectable determinism in tests
var Reader io.Reader = rand.Reader

// RandomBytes returns n cryptographically secure random bytes.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

// RandomSecureBytes returns n random bytes held in a secure buffer.
func RandomSecureBytes(n int) (*Bytes, error) {
	b := New(n)
	if _, err := io.ReadFull(Reader, b.Bytes()); err != nil {
		b.Destroy()
		return nil, err
	}
	return b, nil
}
