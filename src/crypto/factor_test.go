package crypto

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsatoolkit/src/rng"
	"rsatoolkit/src/types"
)

// TestBreakRecoversKnownSemiprime checks that Break recovers the original
// factors and plaintext for a small known semiprime modulus.
func TestBreakRecoversKnownSemiprime(t *testing.T) {
	source := rng.NewFromSeed(5, 9)

	p := big.NewInt(13)
	q := big.NewInt(11)
	n := new(big.Int).Mul(p, q) // 143
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, bigOne),
		new(big.Int).Sub(q, bigOne),
	)
	e := big.NewInt(7)
	d, err := ModInverse(e, phi)
	require.NoError(t, err)

	m := big.NewInt(9)
	c := Encrypt(m, e, n)

	result, err := Break(n, e, c, source, nil)
	require.NoError(t, err)

	recoveredN := new(big.Int).Mul(result.P, result.Q)
	assert.Equal(t, 0, recoveredN.Cmp(n), "recovered p*q must equal n")
	assert.Equal(t, 0, result.M.Cmp(m), "recovered plaintext must match original message")
}

// TestFactorBrentRhoFindsFactorsOfSmallSemiprimes checks that, across a
// sample of small odd semiprimes, at least one of MaxFactorizationRetries
// attempts splits n into its two prime factors.
func TestFactorBrentRhoFindsFactorsOfSmallSemiprimes(t *testing.T) {
	source := rng.NewFromSeed(100, 200)

	semiprimes := []struct{ p, q int64 }{
		{17, 19}, {23, 29}, {31, 37}, {41, 43}, {53, 59}, {61, 67},
	}

	for _, sp := range semiprimes {
		n := new(big.Int).Mul(big.NewInt(sp.p), big.NewInt(sp.q))

		var factor *big.Int
		var lastErr error
		for attempt := 0; attempt < types.MaxFactorizationRetries; attempt++ {
			f, err := FactorBrentRho(n, source)
			if err != nil {
				lastErr = err
				continue
			}
			if f.Cmp(bigOne) > 0 && f.Cmp(n) < 0 {
				factor = f
				break
			}
		}

		require.NotNilf(t, factor, "n=%d (%d*%d): exhausted retries, last error: %v", n, sp.p, sp.q, lastErr)

		other := new(big.Int).Div(n, factor)
		gotP, gotQ := factor.Int64(), other.Int64()
		if gotP > gotQ {
			gotP, gotQ = gotQ, gotP
		}
		assert.Equal(t, sp.p, gotP)
		assert.Equal(t, sp.q, gotQ)
	}
}

func TestFactorBrentRhoRejectsNonPositive(t *testing.T) {
	source := rng.NewFromSeed(1, 1)
	_, err := FactorBrentRho(big.NewInt(0), source)
	require.Error(t, err)
	assert.True(t, types.IsInvariant(err))
}

func TestFactorBrentRhoHandlesEvenInput(t *testing.T) {
	source := rng.NewFromSeed(1, 1)
	factor, err := FactorBrentRho(big.NewInt(14), source)
	require.NoError(t, err)
	assert.Equal(t, 0, factor.Cmp(big.NewInt(2)))
}
