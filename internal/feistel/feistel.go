// Package feistel implements the 4-round Feistel network that turns a raw
// master secret into the encrypted value actually split by the Shamir
// engine, and reverses it on recovery. Each round function is a PBKDF2-HMAC-
// SHA256 derivation, so the only way to produce a correct decryption is to
// already know the passphrase.
package feistel

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	rounds              = 4
	baseIterationCount  = 10000
	customizationString = "shamir"
)

// roundFunction derives n/2 pseudorandom bytes from the round index, the
// passphrase, the identifier and the opposite half, exactly as PBKDF2 is
// used elsewhere in the corpus for deriving symmetric material from a
// passphrase and salt.
func roundFunction(round byte, passphrase []byte, identifier uint16, exponent byte, half []byte) []byte {
	salt := make([]byte, 0, len(customizationString)+2+len(half))
	salt = append(salt, customizationString...)
	salt = append(salt, byte(identifier>>8), byte(identifier))
	salt = append(salt, half...)

	password := make([]byte, 0, 1+len(passphrase))
	password = append(password, round)
	password = append(password, passphrase...)

	iterations := iterationCount(exponent)
	return pbkdf2.Key(password, salt, iterations, len(half), sha256.New)
}

// iterationCount computes (BASE_ITERATION_COUNT << exponent) / 4, the
// per-round PBKDF2 iteration count for a given encoded exponent.
func iterationCount(exponent byte) int {
	return (baseIterationCount << exponent) / rounds
}

// Encrypt transforms secret (the raw master secret, even length) into the
// encrypted master secret using identifier, exponent and passphrase.
func Encrypt(secret []byte, identifier uint16, exponent byte, passphrase []byte) []byte {
	return crypt(secret, identifier, exponent, passphrase, false)
}

// Decrypt reverses Encrypt, recovering the raw master secret from the
// encrypted master secret.
func Decrypt(ems []byte, identifier uint16, exponent byte, passphrase []byte) []byte {
	return crypt(ems, identifier, exponent, passphrase, true)
}

func crypt(input []byte, identifier uint16, exponent byte, passphrase []byte, reverse bool) []byte {
	half := len(input) / 2
	l := append([]byte(nil), input[:half]...)
	r := append([]byte(nil), input[half:]...)

	order := [rounds]byte{0, 1, 2, 3}
	if reverse {
		order = [rounds]byte{3, 2, 1, 0}
	}

	for _, round := range order {
		f := roundFunction(round, passphrase, identifier, exponent, r)
		newR := make([]byte, half)
		for i := range newR {
			newR[i] = l[i] ^ f[i]
		}
		l, r = r, newR
	}

	out := make([]byte, len(input))
	copy(out, r)
	copy(out[half:], l)
	return out
}
