package shamir

import "errors"

var (
	// ErrInvalidThreshold is returned when threshold < 1 or threshold > shareCount.
	ErrInvalidThreshold = errors.New("shamir: invalid threshold")

	// ErrInvalidShareCount is returned when shareCount is outside 1..16.
	ErrInvalidShareCount = errors.New("shamir: invalid share count")

	// ErrInsufficientShares is returned when fewer than threshold points are
	// available to recover.
	ErrInsufficientShares = errors.New("shamir: insufficient shares")

	// ErrInvalidDigest is returned when the interpolated digest share does
	// not verify against the recovered secret.
	ErrInvalidDigest = errors.New("shamir: invalid digest")
)
