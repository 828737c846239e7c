package crypto

import (
	"math/big"

	"rsatoolkit/src/rng"
	"rsatoolkit/src/types"
)

// PrimalityRounds is the fixed witness-round count for the Solovay-Strassen
// test. Each round has error probability <= 1/2 for a composite input, so
// 100 independent rounds give an error rate <= 2^-100.
const PrimalityRounds = 100

// IsProbablePrime runs the Solovay-Strassen probabilistic primality test on
// k using PrimalityRounds independent witness rounds. k must be positive;
// violating that is an algorithmic-invariant error.
func IsProbablePrime(k *big.Int, source *rng.Source) (bool, error) {
	if k.Sign() <= 0 {
		return false, types.NewInvariantError("is_probable_prime: k must be positive, got %s", k)
	}

	switch {
	case k.Cmp(bigTwo) == 0 || k.Cmp(bigThree) == 0:
		return true, nil
	case k.Cmp(bigOne) == 0 || k.Bit(0) == 0:
		return false, nil
	}

	kMinus1 := new(big.Int).Sub(k, bigOne)
	halfExp := new(big.Int).Rsh(kMinus1, 1) // (k-1)/2

	for round := 0; round < PrimalityRounds; round++ {
		// a uniform in [2, k-1)
		a := source.UniformRange(bigTwo, kMinus1)

		if new(big.Int).GCD(nil, nil, a, k).Cmp(bigOne) != 0 {
			return false, nil
		}

		j, err := Jacobi(a, k)
		if err != nil {
			return false, err
		}

		// x = (k + jacobi(a,k)) mod k, folding -1 into k-1.
		x := new(big.Int).Add(k, big.NewInt(int64(j)))
		x.Mod(x, k)
		if x.Sign() == 0 {
			return false, nil
		}

		y := new(big.Int).Exp(a, halfExp, k)
		if x.Cmp(y) != 0 {
			return false, nil
		}
	}

	return true, nil
}
