package share_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/slip39/internal/bitpack"
	"github.com/mrz1836/slip39/internal/rs1024"
	"github.com/mrz1836/slip39/internal/share"
	"github.com/mrz1836/slip39/internal/wordlist"
	"github.com/mrz1836/slip39/pkg/slip39err"
)

func sampleShare(valueLen int) *share.Share {
	value := make([]byte, valueLen)
	for i := range value {
		value[i] = byte(i + 1)
	}
	return &share.Share{
		Identifier:      0x1234,
		Exponent:        2,
		GroupIndex:      1,
		GroupThreshold:  2,
		GroupCount:      5,
		MemberIndex:     3,
		MemberThreshold: 3,
		Value:           value,
	}
}

func TestShare_StringParse_RoundTrip20Words(t *testing.T) {
	t.Parallel()

	s := sampleShare(16)
	phrase := s.String()

	assert.Len(t, strings.Fields(phrase), 20)

	parsed, err := share.Parse(phrase)
	require.NoError(t, err)
	assert.Equal(t, s.Identifier, parsed.Identifier)
	assert.Equal(t, s.Exponent, parsed.Exponent)
	assert.Equal(t, s.GroupIndex, parsed.GroupIndex)
	assert.Equal(t, s.GroupThreshold, parsed.GroupThreshold)
	assert.Equal(t, s.GroupCount, parsed.GroupCount)
	assert.Equal(t, s.MemberIndex, parsed.MemberIndex)
	assert.Equal(t, s.MemberThreshold, parsed.MemberThreshold)
	assert.Equal(t, s.Value, parsed.Value)
}

func TestShare_StringParse_RoundTrip33Words(t *testing.T) {
	t.Parallel()

	s := sampleShare(32)
	phrase := s.String()

	assert.Len(t, strings.Fields(phrase), 33)

	parsed, err := share.Parse(phrase)
	require.NoError(t, err)
	assert.Equal(t, s.Value, parsed.Value)
}

func TestParse_InsufficientLength(t *testing.T) {
	t.Parallel()

	_, err := share.Parse(strings.Join(wordlist.Words[:10], " "))
	require.Error(t, err)
	assert.Equal(t, slip39err.Code(slip39err.ErrInsufficientLength), slip39err.Code(err))
}

func TestParse_UnknownWordSuggestsClosestMatch(t *testing.T) {
	t.Parallel()

	words := strings.Fields(sampleShare(16).String())
	words[0] = "academik" // close to "academic"
	phrase := strings.Join(words, " ")

	_, err := share.Parse(phrase)
	require.Error(t, err)
	assert.Equal(t, slip39err.Code(slip39err.ErrUnknownWord), slip39err.Code(err))

	var se *slip39err.Slip39Error
	require.True(t, slip39err.As(err, &se))
	assert.Equal(t, "0", se.Details["index"])
	assert.Equal(t, "did you mean \"academic\"?", se.Suggestion)
}

// TestParse_InvalidPadding builds a 20-word share by hand with a non-zero
// pad bit, mirroring (*Share).String()'s layout but deliberately breaking
// its "pad bits are always zero" invariant.
func TestParse_InvalidPadding(t *testing.T) {
	t.Parallel()

	s := sampleShare(16)

	w := bitpack.NewWriter()
	w.WriteBits(uint64(s.Identifier), 15)
	w.WriteBits(uint64(s.Exponent), 5)
	w.WriteBits(uint64(s.GroupIndex), 4)
	w.WriteBits(uint64(s.GroupThreshold-1), 4)
	w.WriteBits(uint64(s.GroupCount-1), 4)
	w.WriteBits(uint64(s.MemberIndex), 4)
	w.WriteBits(uint64(s.MemberThreshold-1), 4)
	w.WriteBits(1, 2) // non-zero pad, instead of (*Share).String()'s 0
	w.WriteBytes(s.Value)

	data := w.Symbols()
	checksum := rs1024.Checksum(data)
	allSymbols := append(append([]uint32{}, data...), checksum[:]...)

	words := make([]string, len(allSymbols))
	for i, sym := range allSymbols {
		words[i] = wordlist.ToWord(sym)
	}
	phrase := strings.Join(words, " ")

	_, err := share.Parse(phrase)
	require.Error(t, err)
	assert.Equal(t, slip39err.Code(slip39err.ErrInvalidPadding), slip39err.Code(err))
}

func TestParse_InvalidChecksum(t *testing.T) {
	t.Parallel()

	words := strings.Fields(sampleShare(16).String())
	last := words[len(words)-1]
	sym, ok := wordlist.ToSymbol(last)
	require.True(t, ok)
	words[len(words)-1] = wordlist.ToWord((sym + 1) % 1024)
	phrase := strings.Join(words, " ")

	_, err := share.Parse(phrase)
	require.Error(t, err)
	assert.Equal(t, slip39err.Code(slip39err.ErrInvalidChecksum), slip39err.Code(err))
}
