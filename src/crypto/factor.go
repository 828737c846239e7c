package crypto

import (
	"math"
	"math/big"

	"rsatoolkit/src/rng"
	"rsatoolkit/src/types"
)

// clampInt64 converts x to an int64 loop bound, saturating at MaxInt64 for
// values that don't fit. r, k, and the batch size m in Brent's algorithm are
// iteration counts, not modular residues, so this saturation only matters
// for moduli far larger than this toolkit's factoring retry budget could
// ever finish anyway.
func clampInt64(x *big.Int) int64 {
	if !x.IsInt64() {
		return math.MaxInt64
	}
	return x.Int64()
}

// FactorBrentRho returns a non-trivial factor p of n (1 < p < n), or an
// error if this single attempt fails to find one. Callers needing a
// guaranteed result should use Break, which retries this with fresh random
// parameters up to types.MaxFactorizationRetries times.
func FactorBrentRho(n *big.Int, source *rng.Source) (*big.Int, error) {
	if n.Sign() <= 0 {
		return nil, types.NewInvariantError("factor: n must be positive, got %s", n)
	}
	if n.Cmp(bigOne) == 0 {
		return big.NewInt(1), nil
	}
	if n.Bit(0) == 0 {
		return big.NewInt(2), nil
	}

	y := source.UniformRange(bigOne, n)
	c := source.UniformRange(bigOne, n)
	m := clampInt64(source.UniformRange(bigOne, n))

	g := big.NewInt(1)
	q := big.NewInt(1)
	var r int64 = 1

	f := func(v *big.Int) *big.Int {
		sq := new(big.Int).Mul(v, v)
		sq.Add(sq, c)
		return sq.Mod(sq, n)
	}

	var x, ys *big.Int

	for g.Cmp(bigOne) == 0 {
		x = new(big.Int).Set(y)
		for i := int64(0); i < r; i++ {
			y = f(y)
		}

		var k int64
		for k < r && g.Cmp(bigOne) == 0 {
			ys = new(big.Int).Set(y)

			steps := m
			if remaining := r - k; remaining < m {
				steps = remaining
			}

			for i := int64(0); i < steps; i++ {
				y = f(y)
				diff := new(big.Int).Sub(x, y)
				diff.Abs(diff)
				q.Mul(q, diff)
				q.Mod(q, n)
			}

			g = new(big.Int).GCD(nil, nil, q, n)
			k += m
		}

		r *= 2
	}

	if g.Cmp(n) == 0 {
		for {
			ys = f(ys)
			diff := new(big.Int).Sub(x, ys)
			diff.Abs(diff)
			g = new(big.Int).GCD(nil, nil, diff, n)
			if g.Cmp(bigOne) > 0 {
				break
			}
		}
	}

	if g.Cmp(n) == 0 {
		return nil, types.NewFactorizationError("brent-rho: failed to split n=%s", n)
	}

	return g, nil
}

// Break recovers (p, q, m) from a public modulus n, public exponent e, and
// ciphertext c by factoring n. It retries FactorBrentRho with fresh random
// parameters up to types.MaxFactorizationRetries times before surfacing a
// FactorizationError. onAttempt, if non-nil, is called once per attempt
// (1-indexed) so a caller can narrate retry progress; pass nil to skip that.
func Break(n, e, c *big.Int, source *rng.Source, onAttempt func(attempt int)) (*types.BreakResult, error) {
	var p *big.Int
	var lastErr error

	for attempt := 0; attempt < types.MaxFactorizationRetries; attempt++ {
		if onAttempt != nil {
			onAttempt(attempt + 1)
		}
		factor, err := FactorBrentRho(n, source)
		if err != nil {
			lastErr = err
			continue
		}
		if factor.Cmp(bigOne) > 0 && factor.Cmp(n) < 0 {
			p = factor
			break
		}
	}

	if p == nil {
		if lastErr == nil {
			lastErr = types.NewFactorizationError("break: exhausted %d retries factoring n=%s", types.MaxFactorizationRetries, n)
		}
		return nil, lastErr
	}

	q := new(big.Int).Div(n, p)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, bigOne),
		new(big.Int).Sub(q, bigOne),
	)

	d, err := ModInverse(e, phi)
	if err != nil {
		return nil, err
	}

	m := Decrypt(c, d, n)

	return &types.BreakResult{P: p, Q: q, M: m}, nil
}
