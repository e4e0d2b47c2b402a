package shareset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/slip39/internal/mnemonic"
	"github.com/mrz1836/slip39/internal/share"
	"github.com/mrz1836/slip39/internal/shareset"
	"github.com/mrz1836/slip39/pkg/slip39err"
)

func TestGenerateShares_RecoverMnemonic_RoundTrip_128Bit(t *testing.T) {
	t.Parallel()

	original, err := mnemonic.Generate(12)
	require.NoError(t, err)

	phrases, err := shareset.GenerateShares(original, 3, 5, []byte("TREZOR"), 0)
	require.NoError(t, err)
	assert.Len(t, phrases, 5)

	recovered, err := shareset.RecoverMnemonic(phrases[:3], []byte("TREZOR"))
	require.NoError(t, err)
	assert.Equal(t, original, recovered)
}

func TestGenerateShares_RecoverMnemonic_RoundTrip_256Bit(t *testing.T) {
	t.Parallel()

	original, err := mnemonic.Generate(24)
	require.NoError(t, err)

	phrases, err := shareset.GenerateShares(original, 2, 4, []byte("TREZOR"), 1)
	require.NoError(t, err)

	recovered, err := shareset.RecoverMnemonic(phrases[1:3], []byte("TREZOR"))
	require.NoError(t, err)
	assert.Equal(t, original, recovered)
}

func TestRecoverMnemonic_WrongPassphraseProducesDifferentSecret(t *testing.T) {
	t.Parallel()

	original, err := mnemonic.Generate(12)
	require.NoError(t, err)

	phrases, err := shareset.GenerateShares(original, 2, 3, []byte("TREZOR"), 0)
	require.NoError(t, err)

	recovered, err := shareset.RecoverMnemonic(phrases[:2], []byte("WRONG"))
	require.NoError(t, err)
	assert.NotEqual(t, original, recovered)
}

func TestRecoverMnemonic_InsufficientShares(t *testing.T) {
	t.Parallel()

	original, err := mnemonic.Generate(12)
	require.NoError(t, err)

	phrases, err := shareset.GenerateShares(original, 3, 5, []byte("TREZOR"), 0)
	require.NoError(t, err)

	_, err = shareset.RecoverMnemonic(phrases[:2], []byte("TREZOR"))
	require.Error(t, err)
	assert.Equal(t, slip39err.Code(slip39err.ErrInsufficientGroups), slip39err.Code(err))
}

func TestGenerateShares_WrongWordCountIsMasterSecretLengthError(t *testing.T) {
	t.Parallel()

	_, err := shareset.GenerateShares("abandon abandon abandon", 2, 3, nil, 0)
	require.Error(t, err)
	assert.Equal(t, slip39err.Code(slip39err.ErrInvalidMasterSecretLength), slip39err.Code(err))
}

func TestGenerateShares_InvalidChecksumIsInvalidMnemonicError(t *testing.T) {
	t.Parallel()

	// Twelve real BIP-39 words, but "abandon" x12 fails the embedded checksum.
	bad := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon"

	_, err := shareset.GenerateShares(bad, 2, 3, nil, 0)
	require.Error(t, err)
	assert.Equal(t, slip39err.Code(slip39err.ErrInvalidMnemonic), slip39err.Code(err))
}

func TestGenerateShares_ThresholdOneEachShareRecoversAlone(t *testing.T) {
	t.Parallel()

	original, err := mnemonic.Generate(12)
	require.NoError(t, err)

	phrases, err := shareset.GenerateShares(original, 1, 3, []byte("TREZOR"), 0)
	require.NoError(t, err)

	for _, phrase := range phrases {
		recovered, err := shareset.RecoverMnemonic([]string{phrase}, []byte("TREZOR"))
		require.NoError(t, err)
		assert.Equal(t, original, recovered)
	}
}

// threeGroupSpecs mirrors the "threshold number of groups and members in
// each group" scenario in the upstream test corpus: a group threshold of 2
// across three groups with varying member thresholds.
func threeGroupSpecs() []shareset.GroupSpec {
	return []shareset.GroupSpec{
		{Threshold: 3, Count: 5},
		{Threshold: 2, Count: 3},
		{Threshold: 1, Count: 1},
	}
}

func TestGenerateGroupShares_RecoverMnemonic_TwoOfThreeGroups(t *testing.T) {
	t.Parallel()

	original, err := mnemonic.Generate(12)
	require.NoError(t, err)

	groups, err := shareset.GenerateGroupShares(original, 2, threeGroupSpecs(), []byte("TREZOR"), 0)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Len(t, groups[0], 5)
	assert.Len(t, groups[1], 3)
	assert.Len(t, groups[2], 1)

	// Group 1 (3-of-5) and group 2 (2-of-3) each reach their member
	// threshold, satisfying the group threshold of 2.
	shares := append(append([]string{}, groups[0][:3]...), groups[1][:2]...)
	recovered, err := shareset.RecoverMnemonic(shares, []byte("TREZOR"))
	require.NoError(t, err)
	assert.Equal(t, original, recovered)
}

func TestGenerateGroupShares_RecoverMnemonic_DifferentGroupPair(t *testing.T) {
	t.Parallel()

	original, err := mnemonic.Generate(24)
	require.NoError(t, err)

	groups, err := shareset.GenerateGroupShares(original, 2, threeGroupSpecs(), []byte("TREZOR"), 1)
	require.NoError(t, err)

	// Group 2 (2-of-3) and group 3 (1-of-1) satisfy the group threshold,
	// recovering the same secret as any other qualifying group pair.
	shares := append(append([]string{}, groups[1][:2]...), groups[2]...)
	recovered, err := shareset.RecoverMnemonic(shares, []byte("TREZOR"))
	require.NoError(t, err)
	assert.Equal(t, original, recovered)
}

func TestGenerateGroupShares_InsufficientGroups(t *testing.T) {
	t.Parallel()

	original, err := mnemonic.Generate(12)
	require.NoError(t, err)

	groups, err := shareset.GenerateGroupShares(original, 2, threeGroupSpecs(), []byte("TREZOR"), 0)
	require.NoError(t, err)

	// Only one group's worth of shares: the group threshold of 2 can never
	// be reached.
	_, err = shareset.RecoverMnemonic(groups[0][:3], []byte("TREZOR"))
	require.Error(t, err)
	assert.Equal(t, slip39err.Code(slip39err.ErrInsufficientGroups), slip39err.Code(err))
}

func TestGenerateGroupShares_ThresholdGroupsButInsufficientMembersInOne(t *testing.T) {
	t.Parallel()

	original, err := mnemonic.Generate(12)
	require.NoError(t, err)

	groups, err := shareset.GenerateGroupShares(original, 2, threeGroupSpecs(), []byte("TREZOR"), 0)
	require.NoError(t, err)

	// Two groups are present, but group 1 (3-of-5) only contributes 2
	// members, short of its own threshold; the group threshold of 2 is
	// never satisfied.
	shares := append(append([]string{}, groups[0][:2]...), groups[2]...)
	_, err = shareset.RecoverMnemonic(shares, []byte("TREZOR"))
	require.Error(t, err)
	assert.Equal(t, slip39err.Code(slip39err.ErrInsufficientGroups), slip39err.Code(err))
}

// retagIdentifier reparses a share mnemonic, overwrites its Identifier, and
// reserializes it, simulating two shares from unrelated splits being mixed
// together.
func retagIdentifier(t *testing.T, phrase string, identifier uint16) string {
	t.Helper()
	s, err := share.Parse(phrase)
	require.NoError(t, err)
	s.Identifier = identifier
	return s.String()
}

// retagMemberIndex reparses a share mnemonic, overwrites its MemberIndex,
// and reserializes it.
func retagMemberIndex(t *testing.T, phrase string, memberIndex byte) string {
	t.Helper()
	s, err := share.Parse(phrase)
	require.NoError(t, err)
	s.MemberIndex = memberIndex
	return s.String()
}

func TestRecoverMnemonic_DifferentIdentifiersFails(t *testing.T) {
	t.Parallel()

	original, err := mnemonic.Generate(12)
	require.NoError(t, err)

	phrases, err := shareset.GenerateShares(original, 2, 3, []byte("TREZOR"), 0)
	require.NoError(t, err)

	mismatched := retagIdentifier(t, phrases[1], 0x0001)
	_, err = shareset.RecoverMnemonic([]string{phrases[0], mismatched}, []byte("TREZOR"))
	require.Error(t, err)
	assert.Equal(t, slip39err.Code(slip39err.ErrDifferentIdentifiers), slip39err.Code(err))
}

func TestRecoverMnemonic_DuplicateMemberIndicesFails(t *testing.T) {
	t.Parallel()

	original, err := mnemonic.Generate(12)
	require.NoError(t, err)

	phrases, err := shareset.GenerateShares(original, 2, 3, []byte("TREZOR"), 0)
	require.NoError(t, err)

	first, err := share.Parse(phrases[0])
	require.NoError(t, err)
	duplicated := retagMemberIndex(t, phrases[1], first.MemberIndex)

	_, err = shareset.RecoverMnemonic([]string{phrases[0], duplicated}, []byte("TREZOR"))
	require.Error(t, err)
	assert.Equal(t, slip39err.Code(slip39err.ErrDuplicateMemberIndices), slip39err.Code(err))
}

func TestGenerateGroupShares_InvalidGroupThreshold(t *testing.T) {
	t.Parallel()

	original, err := mnemonic.Generate(12)
	require.NoError(t, err)

	_, err = shareset.GenerateGroupShares(original, 4, threeGroupSpecs(), []byte("TREZOR"), 0)
	require.Error(t, err)
	assert.Equal(t, slip39err.Code(slip39err.ErrInvalidGroupThreshold), slip39err.Code(err))
}
