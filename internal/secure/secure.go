// Package secure provides secure-memory handling for master secrets,
// passphrases and intermediate share material: mlock-backed byte buffers
// that are zeroed on release, plus a CSPRNG wrapper used everywhere this
// library needs randomness.
package secure

import (
	"runtime"
	"sync"
)

// Bytes wraps a sensitive byte slice with mlock and explicit zeroing.
type Bytes struct {
	data   []byte
	locked bool
	mu     sync.Mutex
}

// New allocates a Bytes of the given size. The memory is mlocked if the
// platform supports it; locking failures are non-fatal.
func New(size int) *Bytes {
	data := make([]byte, size)

	b := &Bytes{data: data}
	b.locked = mlock(data)

	runtime.SetFinalizer(b, func(s *Bytes) {
		s.Destroy()
	})
	return b
}

// FromSlice copies data into a new secure buffer.
func FromSlice(data []byte) *Bytes {
	b := New(len(data))
	copy(b.data, data)
	return b
}

// Bytes returns the underlying slice. Returns nil once Destroy has run.
func (s *Bytes) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// IsLocked reports whether the memory is mlocked.
func (s *Bytes) IsLocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Len returns the length of the held data, or 0 after Destroy.
func (s *Bytes) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// ZeroBytes overwrites data with zeros in place, for sensitive buffers that
// aren't otherwise wrapped in a Bytes.
func ZeroBytes(data []byte) {
	for i := range data {
		data[i] = 0
	}
}

// Destroy zeros and unlocks the memory. Safe to call more than once.
func (s *Bytes) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return
	}

	for i := range s.data {
		s.data[i] = 0
	}

	if s.locked {
		munlock(s.data)
		s.locked = false
	}

	s.data = nil
	runtime.SetFinalizer(s, nil)
}
