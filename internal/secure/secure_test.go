package secure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrz1836/slip39/internal/secure"
)

func TestBytes_Creation(t *testing.T) {
	t.Parallel()
	sb := secure.New(32)
	defer sb.Destroy()

	assert.NotNil(t, sb.Bytes())
	assert.Len(t, sb.Bytes(), 32)
}

func TestBytes_Zeroing(t *testing.T) {
	t.Parallel()
	sb := secure.New(32)

	data := sb.Bytes()
	for i := range data {
		data[i] = byte(i)
	}
	assert.Equal(t, byte(31), data[31])

	sb.Destroy()
	assert.Nil(t, sb.Bytes())
}

func TestBytes_DoubleDestroy(t *testing.T) {
	t.Parallel()
	sb := secure.New(32)
	sb.Destroy()
	sb.Destroy()
	assert.Nil(t, sb.Bytes())
}

func TestBytes_FromSlice(t *testing.T) {
	t.Parallel()
	original := []byte("sensitive data!!")
	sb := secure.FromSlice(original)
	defer sb.Destroy()

	assert.Equal(t, original, sb.Bytes())

	sb.Bytes()[0] = 0xFF
	assert.NotEqual(t, original[0], sb.Bytes()[0])
}

func TestBytes_LenAfterDestroy(t *testing.T) {
	t.Parallel()
	sb := secure.New(16)
	assert.Equal(t, 16, sb.Len())
	sb.Destroy()
	assert.Equal(t, 0, sb.Len())
}

func TestRandomBytes_Length(t *testing.T) {
	t.Parallel()
	b, err := secure.RandomBytes(32)
	assert.NoError(t, err)
	assert.Len(t, b, 32)
}

func TestRandomBytes_Distinct(t *testing.T) {
	t.Parallel()
	a, err := secure.RandomBytes(32)
	assert.NoError(t, err)
	b, err := secure.RandomBytes(32)
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRandomSecureBytes(t *testing.T) {
	t.Parallel()
	sb, err := secure.RandomSecureBytes(24)
	assert.NoError(t, err)
	defer sb.Destroy()
	assert.Len(t, sb.Bytes(), 24)
}
