package bitpack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrz1836/slip39/internal/bitpack"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	t.Parallel()

	w := bitpack.NewWriter()
	w.WriteBits(0x1A2B, 15)
	w.WriteBits(3, 5)
	w.WriteBits(7, 4)
	w.WriteBits(0, 4)
	w.WriteBits(1, 4)
	w.WriteBits(2, 4)
	w.WriteBits(3, 4)

	assert.Equal(t, 40, w.Len())

	symbols := w.Symbols()
	assert.Len(t, symbols, 4)

	r := bitpack.NewReader(symbols)
	assert.Equal(t, uint64(0x1A2B), r.ReadBits(15))
	assert.Equal(t, uint64(3), r.ReadBits(5))
	assert.Equal(t, uint64(7), r.ReadBits(4))
	assert.Equal(t, uint64(0), r.ReadBits(4))
	assert.Equal(t, uint64(1), r.ReadBits(4))
	assert.Equal(t, uint64(2), r.ReadBits(4))
	assert.Equal(t, uint64(3), r.ReadBits(4))
	assert.Equal(t, 0, r.Remaining())
}

func TestWriteBytes_ReadBytes_RoundTrip(t *testing.T) {
	t.Parallel()

	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}

	w := bitpack.NewWriter()
	w.WriteBits(0, 8) // padding so total stays symbol-aligned in this test
	w.WriteBytes(payload)

	symbols := w.Symbols()
	r := bitpack.NewReader(symbols)
	assert.Equal(t, uint64(0), r.ReadBits(8))
	assert.Equal(t, payload, r.ReadBytes(len(payload)))
}

func TestReader_Remaining(t *testing.T) {
	t.Parallel()

	w := bitpack.NewWriter()
	w.WriteBits(0x3FF, 10)
	w.WriteBits(0x3FF, 10)

	r := bitpack.NewReader(w.Symbols())
	assert.Equal(t, 20, r.Remaining())
	r.ReadBits(10)
	assert.Equal(t, 10, r.Remaining())
}
