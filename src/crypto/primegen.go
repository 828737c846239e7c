package crypto

import (
	"math/big"

	"github.com/otiai10/primes"

	"rsatoolkit/src/rng"
	"rsatoolkit/src/types"
)

// smallPrimeTrialBound is the ceiling used to build the trial-division
// sieve consulted before paying for a full Solovay-Strassen round.
const smallPrimeTrialBound = 1000

// maxGenerateAttempts, multiplied by the requested bit length, caps the
// `x += 2` search loop before GeneratePrime resamples a fresh candidate
// rather than searching forever.
const maxGenerateAttempts = 8

func init() {
	// Warm the shared sieve cache once; every GeneratePrime call afterwards
	// reuses it instead of resieving.
	primes.Globally.Until(smallPrimeTrialBound)
}

// divisibleBySmallPrime trial-divides x against the cached sieve of primes
// below smallPrimeTrialBound, the same pre-filter trick safe-prime generators
// commonly use with a hand-written small-primes table, here backed by a real
// sieve instead.
func divisibleBySmallPrime(x *big.Int) bool {
	for _, p := range primes.Until(smallPrimeTrialBound).List() {
		pb := big.NewInt(p)
		if x.Cmp(pb) == 0 {
			return false
		}
		if new(big.Int).Mod(x, pb).Sign() == 0 {
			return true
		}
	}
	return false
}

// GeneratePrime returns a probable prime of exactly bits bits. bits must be
// >= 3 so that forcing the top two bits and the low bit leaves room for a
// meaningful search space.
func GeneratePrime(bits int, source *rng.Source) (*big.Int, error) {
	if bits < 3 {
		return nil, types.NewInvariantError("generate_prime: bits must be >= 3, got %d", bits)
	}

	for {
		x := source.UniformBits(bits)

		// Force bit 0 (odd), bit bits-2 and bit bits-1 (the top two bits),
		// so the product of two such primes reliably lands in the target
		// bit range on the first few attempts.
		x.SetBit(x, 0, 1)
		x.SetBit(x, bits-2, 1)
		x.SetBit(x, bits-1, 1)

		found := false
		for attempt := 0; attempt < maxGenerateAttempts*bits; attempt++ {
			if x.BitLen() > bits {
				break
			}
			if !divisibleBySmallPrime(x) {
				prime, err := IsProbablePrime(x, source)
				if err != nil {
					return nil, err
				}
				if prime {
					found = true
					break
				}
			}
			x.Add(x, bigTwo)
		}

		if found {
			return x, nil
		}
		// Exhausted the search window, or walked past 2^bits, without a
		// hit; resample a fresh candidate rather than searching forever.
	}
}
