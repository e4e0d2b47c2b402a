// Package shamir implements the single-level Shamir secret sharing scheme
// used at both levels of a two-level split (member shares within a group,
// and group shares within a set): split a byte string into a threshold
// scheme over GF(256), with a digest share reserved at a fixed index so
// recovery can be verified before the caller trusts the result.
package shamir

import (
	"crypto/hmac"
	"crypto/sha256"
	"io"
	"sort"

	"github.com/mrz1836/slip39/internal/gf256"
)

const (
	// DigestIndex is the reserved x-coordinate holding the digest share.
	DigestIndex = 254
	// SecretIndex is the reserved x-coordinate holding the secret itself.
	SecretIndex = 255
	// DigestLengthBytes is the size of the HMAC prefix stored in the digest share.
	DigestLengthBytes = 4
)

// Split divides secret into shareCount points such that any threshold of
// them reconstruct it via Recover. rnd supplies all randomness, so callers
// can inject a deterministic source for testing.
//
// threshold == 1 returns shareCount copies of secret with no randomness.
// threshold >= 2 reserves x=DigestIndex for an HMAC digest share so Recover
// can detect a wrong or insufficient share set before returning bad output.
func Split(rnd io.Reader, secret []byte, threshold, shareCount int) (map[byte][]byte, error) {
	if shareCount < 1 || shareCount > 16 {
		return nil, ErrInvalidShareCount
	}
	if threshold < 1 || threshold > shareCount {
		return nil, ErrInvalidThreshold
	}

	out := make(map[byte][]byte, shareCount)

	if threshold == 1 {
		for x := 0; x < shareCount; x++ {
			cp := make([]byte, len(secret))
			copy(cp, secret)
			out[byte(x)] = cp
		}
		return out, nil
	}

	basePoints := make(map[byte][]byte, threshold)

	for i := 0; i < threshold-2; i++ {
		r := make([]byte, len(secret))
		if _, err := io.ReadFull(rnd, r); err != nil {
			return nil, err
		}
		basePoints[byte(i)] = r
	}

	digest, err := makeDigestShare(rnd, secret)
	if err != nil {
		return nil, err
	}
	basePoints[DigestIndex] = digest
	basePoints[SecretIndex] = secret

	for x := 0; x < shareCount; x++ {
		out[byte(x)] = interpolate(basePoints, byte(x))
	}
	return out, nil
}

// makeDigestShare builds the digest share: 4 bytes of
// HMAC-SHA256(key=randomness, message=secret) followed by that same
// randomness, which doubles as the HMAC key during verification.
func makeDigestShare(rnd io.Reader, secret []byte) ([]byte, error) {
	randomness := make([]byte, len(secret)-DigestLengthBytes)
	if _, err := io.ReadFull(rnd, randomness); err != nil {
		return nil, err
	}

	mac := hmac.New(sha256.New, randomness)
	mac.Write(secret)
	sum := mac.Sum(nil)

	share := make([]byte, len(secret))
	copy(share, sum[:DigestLengthBytes])
	copy(share[DigestLengthBytes:], randomness)
	return share, nil
}

// Recover reconstructs the secret from at least threshold of the given
// (x, y) points. When threshold >= 2 it also interpolates the digest share
// and verifies it against the recovered secret, returning ErrInvalidDigest
// if they disagree.
func Recover(points map[byte][]byte, threshold int) ([]byte, error) {
	if len(points) < threshold {
		return nil, ErrInsufficientShares
	}

	used := selectPoints(points, threshold)

	if threshold == 1 {
		for _, y := range used {
			return append([]byte(nil), y...), nil
		}
	}

	secret := interpolate(used, SecretIndex)
	digest := interpolate(used, DigestIndex)

	randomness := digest[DigestLengthBytes:]
	mac := hmac.New(sha256.New, randomness)
	mac.Write(secret)
	sum := mac.Sum(nil)

	if !hmac.Equal(sum[:DigestLengthBytes], digest[:DigestLengthBytes]) {
		return nil, ErrInvalidDigest
	}

	return secret, nil
}

// selectPoints picks the first `threshold` points in ascending x order, so
// recovery is deterministic regardless of map iteration order.
func selectPoints(points map[byte][]byte, threshold int) map[byte][]byte {
	xs := make([]byte, 0, len(points))
	for x := range points {
		xs = append(xs, x)
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })

	out := make(map[byte][]byte, threshold)
	for _, x := range xs[:threshold] {
		out[x] = points[x]
	}
	return out
}

// interpolate evaluates the unique degree-(len(points)-1) polynomial
// defined by points at x = query, per byte position, using Lagrange
// interpolation over GF(256).
func interpolate(points map[byte][]byte, query byte) []byte {
	length := 0
	for _, y := range points {
		length = len(y)
		break
	}

	out := make([]byte, length)

	for xi, yi := range points {
		weight := byte(1)
		for xm := range points {
			if xm == xi {
				continue
			}
			num := gf256.Sub(query, xm)
			den := gf256.Sub(xi, xm)
			weight = gf256.Mul(weight, gf256.Div(num, den))
		}
		for j := 0; j < length; j++ {
			out[j] = gf256.Add(out[j], gf256.Mul(yi[j], weight))
		}
	}
	return out
}
