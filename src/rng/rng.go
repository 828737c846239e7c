// Package rng provides the single process-wide random source the core
// consumes: uniform bit strings of a given width and uniform integers below
// a bound. It is seeded once from OS entropy at startup.
//
// This is intentionally not a CSPRNG: it seeds once from two machine words and
// then iterates a fast PRNG for every sampling call — acceptable for a
// teaching/CLI tool, not for production key material. The fallback to
// wall-clock time when the entropy device is unavailable is a known,
// documented weakness, preserved here rather than silently hardened, so the
// tool keeps working in sandboxes that have no entropy device.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/big"
	"math/rand/v2"
	"time"
)

// Source is the process-wide random generator. It is not safe for
// concurrent use; a parallel implementation would need to shard or lock
// this, but the core here is single-threaded.
type Source struct {
	r *rand.Rand
}

// New seeds a Source from the OS entropy device, reading two machine words
// (the PCG generator's two seeds). If the device is unavailable, each word
// falls back to a wall-clock-derived seed.
// The fallback never returns an error; it degrades silently by design.
func New() *Source {
	return &Source{r: rand.New(rand.NewPCG(seedWord(), seedWord()))}
}

// NewFromSeed builds a deterministic Source for reproducible tests; not used
// outside of _test.go files.
func NewFromSeed(seed1, seed2 uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// seedWord reads one 64-bit word from the OS entropy device, falling back to
// the wall clock if the read fails.
func seedWord() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err == nil {
		return binary.LittleEndian.Uint64(buf[:])
	}
	return uint64(time.Now().UnixNano())
}

// fillRandom fills buf with random bytes drawn eight at a time from the
// underlying PRNG (math/rand/v2.Rand has no Read method, unlike math/rand).
func (s *Source) fillRandom(buf []byte) {
	for i := 0; i < len(buf); i += 8 {
		var word [8]byte
		binary.LittleEndian.PutUint64(word[:], s.r.Uint64())
		copy(buf[i:], word[:])
	}
}

// UniformBits returns a uniformly random non-negative integer with exactly k
// bits of width (0 <= value < 2^k); the caller is responsible for any further
// bit-forcing (see crypto.GeneratePrime).
func (s *Source) UniformBits(k int) *big.Int {
	if k <= 0 {
		return big.NewInt(0)
	}
	nBytes := (k + 7) / 8
	buf := make([]byte, nBytes)
	s.fillRandom(buf)

	// Mask off the excess high bits of the top byte so the result is
	// strictly less than 2^k.
	excess := nBytes*8 - k
	if excess > 0 {
		buf[0] &= 0xFF >> uint(excess)
	}
	return new(big.Int).SetBytes(buf)
}

// UniformBelow returns a uniformly random integer in [0, n). n must be > 0.
func (s *Source) UniformBelow(n *big.Int) *big.Int {
	if n.Sign() <= 0 {
		return big.NewInt(0)
	}

	// Rejection sampling over the smallest byte-aligned range covering n,
	// same shape as crypto/rand.Int but driven by this package's PRNG.
	k := n.BitLen()
	nBytes := (k + 7) / 8
	excess := uint(nBytes*8 - k)
	buf := make([]byte, nBytes)

	for {
		s.fillRandom(buf)
		if excess > 0 {
			buf[0] &= 0xFF >> excess
		}
		candidate := new(big.Int).SetBytes(buf)
		if candidate.Cmp(n) < 0 {
			return candidate
		}
	}
}

// UniformRange returns a uniformly random integer in [lo, hi).
func (s *Source) UniformRange(lo, hi *big.Int) *big.Int {
	span := new(big.Int).Sub(hi, lo)
	v := s.UniformBelow(span)
	return v.Add(v, lo)
}
