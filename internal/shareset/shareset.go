// Package shareset validates a collection of parsed shares for cross-share
// consistency and orchestrates the two-level recovery of the encrypted
// master secret they encode, plus the top-level generate/recover surface
// that operates directly on BIP-39 mnemonics and share mnemonics.
package shareset

import (
	"encoding/binary"
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/mrz1836/slip39/internal/feistel"
	"github.com/mrz1836/slip39/internal/mnemonic"
	"github.com/mrz1836/slip39/internal/secure"
	"github.com/mrz1836/slip39/internal/shamir"
	"github.com/mrz1836/slip39/internal/share"
	"github.com/mrz1836/slip39/pkg/slip39err"
)

// ShareSet is a validated collection of shares that share a common
// identifier, iteration exponent, and group layout, organized by group
// index for recovery.
type ShareSet struct {
	Identifier     uint16
	Exponent       byte
	GroupThreshold byte
	GroupCount     byte
	groups         map[byte][]*share.Share
}

// From validates cross-share consistency over shares and, on success,
// returns a ShareSet ready for Recover. Every check in the table runs
// before any cryptographic work, and the first violation aborts.
func From(shares []*share.Share) (*ShareSet, error) {
	if len(shares) == 0 {
		return nil, slip39err.ErrInsufficientMembers
	}

	first := shares[0]
	groups := make(map[byte][]*share.Share)
	memberThresholds := make(map[byte]byte)
	memberIndices := make(map[byte]map[byte]bool)

	for i, s := range shares {
		switch {
		case s.Identifier != first.Identifier:
			return nil, shareErrorAt(slip39err.ErrDifferentIdentifiers, i)
		case s.Exponent != first.Exponent:
			return nil, shareErrorAt(slip39err.ErrDifferentIterationExponents, i)
		case s.GroupThreshold != first.GroupThreshold:
			return nil, shareErrorAt(slip39err.ErrMismatchingGroupThresholds, i)
		case s.GroupCount != first.GroupCount:
			return nil, shareErrorAt(slip39err.ErrMismatchingGroupCounts, i)
		case s.GroupIndex >= s.GroupCount:
			return nil, shareErrorAt(slip39err.ErrInvalidGroupIndex, i)
		}

		if mt, ok := memberThresholds[s.GroupIndex]; ok {
			if mt != s.MemberThreshold {
				return nil, shareErrorAt(slip39err.ErrMismatchingMemberThresholds, i)
			}
		} else {
			memberThresholds[s.GroupIndex] = s.MemberThreshold
		}

		if memberIndices[s.GroupIndex] == nil {
			memberIndices[s.GroupIndex] = make(map[byte]bool)
		}
		if memberIndices[s.GroupIndex][s.MemberIndex] {
			return nil, shareErrorAt(slip39err.ErrDuplicateMemberIndices, i)
		}
		memberIndices[s.GroupIndex][s.MemberIndex] = true

		groups[s.GroupIndex] = append(groups[s.GroupIndex], s)
	}

	if first.GroupThreshold > first.GroupCount {
		return nil, slip39err.ErrInvalidGroupThreshold
	}

	return &ShareSet{
		Identifier:     first.Identifier,
		Exponent:       first.Exponent,
		GroupThreshold: first.GroupThreshold,
		GroupCount:     first.GroupCount,
		groups:         groups,
	}, nil
}

// Recover reconstructs the encrypted master secret from the usable groups,
// then Feistel-decrypts it with passphrase into the plaintext master
// secret.
func (ss *ShareSet) Recover(passphrase []byte) ([]byte, error) {
	groupIndices := make([]byte, 0, len(ss.groups))
	for gi := range ss.groups {
		groupIndices = append(groupIndices, gi)
	}
	sort.Slice(groupIndices, func(i, j int) bool { return groupIndices[i] < groupIndices[j] })

	groupShares := make(map[byte][]byte, ss.GroupThreshold)

	for _, gi := range groupIndices {
		if len(groupShares) == int(ss.GroupThreshold) {
			break
		}

		members := ss.groups[gi]
		threshold := int(members[0].MemberThreshold)
		if len(members) < threshold {
			continue
		}

		points := make(map[byte][]byte, len(members))
		for _, m := range members {
			points[m.MemberIndex] = m.Value
		}

		groupShare, err := shamir.Recover(points, threshold)
		if err != nil {
			return nil, translateRecoverErr(err, slip39err.ErrInsufficientMembers)
		}
		groupShares[gi] = groupShare
	}

	if len(groupShares) < int(ss.GroupThreshold) {
		return nil, slip39err.ErrInsufficientGroups
	}

	ems, err := shamir.Recover(groupShares, int(ss.GroupThreshold))
	if err != nil {
		return nil, translateRecoverErr(err, slip39err.ErrInsufficientGroups)
	}
	defer secure.ZeroBytes(ems)

	return feistel.Decrypt(ems, ss.Identifier, ss.Exponent, passphrase), nil
}

func translateRecoverErr(err, insufficientKind error) error {
	switch {
	case errors.Is(err, shamir.ErrInvalidDigest):
		return slip39err.ErrInvalidDigest
	case errors.Is(err, shamir.ErrInsufficientShares):
		return insufficientKind
	default:
		return err
	}
}

func shareErrorAt(sentinel error, index int) error {
	return slip39err.WithDetails(sentinel, map[string]string{
		"share_index": strconv.Itoa(index),
	})
}

// GenerateShares encrypts the entropy behind a BIP-39 mnemonic and performs
// a single-group split into n shares requiring k of them to recover,
// returning each member share serialized to its own mnemonic.
func GenerateShares(bip39Mnemonic string, k, n int, passphrase []byte, exponent byte) ([]string, error) {
	groups, err := GenerateGroupShares(bip39Mnemonic, 1, []GroupSpec{{Threshold: k, Count: n}}, passphrase, exponent)
	if err != nil {
		return nil, err
	}
	return groups[0], nil
}

// GroupSpec describes one group's member threshold and member count within
// a multi-group split.
type GroupSpec struct {
	Threshold int
	Count     int
}

// GenerateGroupShares encrypts the entropy behind a BIP-39 mnemonic and
// performs a full two-level split: the encrypted master secret is first
// divided into len(groups) group shares requiring groupThreshold of them to
// recover, then each group share is itself divided per its GroupSpec. The
// result has one []string of member mnemonics per group, in group order.
func GenerateGroupShares(bip39Mnemonic string, groupThreshold int, groups []GroupSpec, passphrase []byte, exponent byte) ([][]string, error) {
	wordCount := len(strings.Fields(mnemonic.Normalize(bip39Mnemonic)))
	if wordCount != 12 && wordCount != 24 {
		return nil, slip39err.WithDetails(slip39err.ErrInvalidMasterSecretLength, map[string]string{
			"word_count": strconv.Itoa(wordCount),
		})
	}
	if groupThreshold < 1 || groupThreshold > len(groups) {
		return nil, slip39err.ErrInvalidGroupThreshold
	}

	entropyBytes, err := mnemonic.ToEntropy(bip39Mnemonic)
	if err != nil {
		return nil, slip39err.ErrInvalidMnemonic
	}

	entropy := secure.FromSlice(entropyBytes)
	secure.ZeroBytes(entropyBytes)
	defer entropy.Destroy()

	identifier, err := randomIdentifier()
	if err != nil {
		return nil, err
	}

	ems := feistel.Encrypt(entropy.Bytes(), identifier, exponent, passphrase)
	defer secure.ZeroBytes(ems)

	groupPoints, err := shamir.Split(secure.Reader, ems, groupThreshold, len(groups))
	if err != nil {
		return nil, translateSplitErr(err)
	}
	for _, gp := range groupPoints {
		defer secure.ZeroBytes(gp)
	}

	phrases := make([][]string, len(groups))
	for gi, spec := range groups {
		memberPoints, err := shamir.Split(secure.Reader, groupPoints[byte(gi)], spec.Threshold, spec.Count)
		if err != nil {
			return nil, translateSplitErr(err)
		}

		groupPhrases := make([]string, spec.Count)
		for x := 0; x < spec.Count; x++ {
			s := &share.Share{
				Identifier:      identifier,
				Exponent:        exponent,
				GroupIndex:      byte(gi),
				GroupThreshold:  byte(groupThreshold),
				GroupCount:      byte(len(groups)),
				MemberIndex:     byte(x),
				MemberThreshold: byte(spec.Threshold),
				Value:           memberPoints[byte(x)],
			}
			groupPhrases[x] = s.String()
		}
		phrases[gi] = groupPhrases
	}

	return phrases, nil
}

// RecoverMnemonic parses shareMnemonics into a ShareSet, recovers the
// master secret, and maps it back to its BIP-39 mnemonic.
func RecoverMnemonic(shareMnemonics []string, passphrase []byte) (string, error) {
	shares := make([]*share.Share, len(shareMnemonics))
	for i, phrase := range shareMnemonics {
		s, err := share.Parse(phrase)
		if err != nil {
			return "", err
		}
		shares[i] = s
	}

	ss, err := From(shares)
	if err != nil {
		return "", err
	}

	secretBytes, err := ss.Recover(passphrase)
	if err != nil {
		return "", err
	}

	secret := secure.FromSlice(secretBytes)
	secure.ZeroBytes(secretBytes)
	defer secret.Destroy()

	phrase, err := mnemonic.FromEntropy(secret.Bytes())
	if err != nil {
		return "", slip39err.ErrInvalidMnemonic
	}
	return phrase, nil
}

func translateSplitErr(err error) error {
	switch {
	case errors.Is(err, shamir.ErrInvalidThreshold), errors.Is(err, shamir.ErrInvalidShareCount):
		return slip39err.ErrInvalidShareCount
	default:
		return err
	}
}

func randomIdentifier() (uint16, error) {
	b, err := secure.RandomBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b) & 0x7FFF, nil
}
