package feistel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrz1836/slip39/internal/feistel"
)

func TestEncryptDecrypt_RoundTrip16Bytes(t *testing.T) {
	t.Parallel()

	secret := []byte("sixteen byte sec")
	ems := feistel.Encrypt(secret, 0x1234, 0, []byte("passphrase"))
	assert.Len(t, ems, len(secret))
	assert.NotEqual(t, secret, ems)

	recovered := feistel.Decrypt(ems, 0x1234, 0, []byte("passphrase"))
	assert.Equal(t, secret, recovered)
}

func TestEncryptDecrypt_RoundTrip32Bytes(t *testing.T) {
	t.Parallel()

	secret := make([]byte, 32)
	for i := range secret {
		secret[i] = byte(i)
	}

	ems := feistel.Encrypt(secret, 0x7FFF, 2, nil)
	recovered := feistel.Decrypt(ems, 0x7FFF, 2, nil)
	assert.Equal(t, secret, recovered)
}

func TestDecrypt_WrongPassphraseFails(t *testing.T) {
	t.Parallel()

	secret := []byte("sixteen byte sec")
	ems := feistel.Encrypt(secret, 1, 0, []byte("correct horse"))

	recovered := feistel.Decrypt(ems, 1, 0, []byte("wrong passphrase"))
	assert.NotEqual(t, secret, recovered)
}

func TestDecrypt_WrongIdentifierFails(t *testing.T) {
	t.Parallel()

	secret := []byte("sixteen byte sec")
	ems := feistel.Encrypt(secret, 1, 0, []byte("pw"))

	recovered := feistel.Decrypt(ems, 2, 0, []byte("pw"))
	assert.NotEqual(t, secret, recovered)
}
