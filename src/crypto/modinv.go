package crypto

import (
	"math/big"

	"rsatoolkit/src/types"
)

// ModInverse returns y in [0, n) such that x*y ≡ 1 (mod n), via the extended
// Euclidean algorithm. n must be positive. When gcd(x, n) != 1 the returned
// value is not a valid inverse; callers must guarantee coprimality
// themselves (key generation and the break path both do).
func ModInverse(x, n *big.Int) (*big.Int, error) {
	if n.Sign() <= 0 {
		return nil, types.NewInvariantError("mod_inv: n must be positive, got %s", n)
	}

	// (g, h) carries the Euclidean reduction of (x, n); (v, r) carries the
	// matching coefficient of x, so that at every step g == x*v (mod n).
	g, h := new(big.Int).Set(x), new(big.Int).Set(n)
	v, r := big.NewInt(1), big.NewInt(0)

	for h.Sign() != 0 {
		q := new(big.Int).Div(g, h)
		g, h = h, new(big.Int).Sub(g, new(big.Int).Mul(q, h))
		v, r = r, new(big.Int).Sub(v, new(big.Int).Mul(q, r))
	}

	return v.Mod(v, n), nil
}
