package mnemonic_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/slip39/internal/mnemonic"
)

func TestGenerate_ToEntropy_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, wc := range []int{12, 24} {
		phrase, err := mnemonic.Generate(wc)
		require.NoError(t, err)
		assert.NoError(t, mnemonic.Validate(phrase))

		entropy, err := mnemonic.ToEntropy(phrase)
		require.NoError(t, err)
		if wc == 12 {
			assert.Len(t, entropy, 16)
		} else {
			assert.Len(t, entropy, 32)
		}

		back, err := mnemonic.FromEntropy(entropy)
		require.NoError(t, err)
		assert.Equal(t, phrase, back)
	}
}

func TestGenerate_InvalidWordCount(t *testing.T) {
	t.Parallel()
	_, err := mnemonic.Generate(15)
	assert.ErrorIs(t, err, mnemonic.ErrInvalidWordCount)
}

func TestValidate_EmptyPhrase(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, mnemonic.Validate(""), mnemonic.ErrInvalidMnemonic)
}

func TestValidate_WrongWordCount(t *testing.T) {
	t.Parallel()
	err := mnemonic.Validate("abandon abandon abandon")
	assert.ErrorIs(t, err, mnemonic.ErrInvalidMnemonic)
}

func TestNormalize_StripsListMarkersAndCommas(t *testing.T) {
	t.Parallel()
	got := mnemonic.Normalize("1. Abandon, 2) Ability\n- Able")
	assert.Equal(t, "abandon ability able", got)
}

func TestIsValidWord(t *testing.T) {
	t.Parallel()
	assert.True(t, mnemonic.IsValidWord("abandon"))
	assert.False(t, mnemonic.IsValidWord("notarealbip39word"))
}

func TestSuggestWord_ClosestMatch(t *testing.T) {
	t.Parallel()
	suggestion := mnemonic.SuggestWord("abandn")
	assert.Equal(t, "abandon", suggestion)
}

func TestSuggestWord_TooFar(t *testing.T) {
	t.Parallel()
	suggestion := mnemonic.SuggestWord("xyzzyqwertyuiop")
	assert.Empty(t, suggestion)
}

func TestDetectTypos(t *testing.T) {
	t.Parallel()
	phrase, err := mnemonic.Generate(12)
	require.NoError(t, err)

	typos := mnemonic.DetectTypos(phrase)
	assert.Empty(t, typos)

	words := strings.Fields(phrase)
	words[0] = words[0][:len(words[0])-1]
	broken := strings.Join(words, " ")

	typos = mnemonic.DetectTypos(broken)
	require.Len(t, typos, 1)
	assert.Equal(t, 0, typos[0].Index)
}
