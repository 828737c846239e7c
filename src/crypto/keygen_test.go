package crypto

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsatoolkit/src/rng"
	"rsatoolkit/src/types"
)

func TestGenerateKeyPairShapeInvariants(t *testing.T) {
	source := rng.NewFromSeed(42, 7)

	for _, bits := range []int{16, 32, 64} {
		key, err := GenerateKeyPair(bits, source)
		require.NoError(t, err, "bits=%d", bits)

		assert.Equalf(t, bits, key.N.BitLen(), "bits=%d: bitlen(n)", bits)
		assert.NotEqualf(t, 0, key.P.Cmp(key.Q), "bits=%d: p must differ from q", bits)

		pPrime, err := IsProbablePrime(key.P, source)
		require.NoError(t, err)
		assert.True(t, pPrime, "bits=%d: p must be prime", bits)

		qPrime, err := IsProbablePrime(key.Q, source)
		require.NoError(t, err)
		assert.True(t, qPrime, "bits=%d: q must be prime", bits)

		phi := new(big.Int).Mul(
			new(big.Int).Sub(key.P, bigOne),
			new(big.Int).Sub(key.Q, bigOne),
		)
		gcd := new(big.Int).GCD(nil, nil, key.E, phi)
		assert.Equalf(t, 0, gcd.Cmp(bigOne), "bits=%d: gcd(e,phi) must be 1", bits)

		product := new(big.Int).Mul(key.E, key.D)
		product.Mod(product, phi)
		assert.Equalf(t, 0, product.Cmp(bigOne), "bits=%d: (e*d) mod phi must be 1", bits)
	}
}

func TestGenerateKeyPairRejectsTooSmallModulus(t *testing.T) {
	source := rng.NewFromSeed(1, 2)
	_, err := GenerateKeyPair(4, source)
	require.Error(t, err)
	assert.True(t, types.IsValidation(err))
}
