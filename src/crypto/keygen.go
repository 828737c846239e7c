package crypto

import (
	"math/big"

	"rsatoolkit/src/rng"
	"rsatoolkit/src/types"
)

// GenerateKeyPair produces an RSA key pair with a B-bit public modulus. It
// composes GeneratePrime and ModInverse: p and q are generated independently
// with ceil(B/2) and B-ceil(B/2) bits respectively, retried until they
// differ and their product is exactly B bits; e is sampled uniformly in
// [2, phi) until it is coprime to phi; d is e's inverse mod phi.
func GenerateKeyPair(bits int, source *rng.Source) (*types.KeyPair, error) {
	if bits <= types.MinModulusBits {
		return nil, types.NewValidationError("modulus bit-length must be > %d, got %d", types.MinModulusBits, bits)
	}

	pBits := (bits + 1) / 2 // ceil(B/2)
	qBits := bits - pBits

	var p, q, n *big.Int
	for {
		var err error
		p, err = GeneratePrime(pBits, source)
		if err != nil {
			return nil, err
		}
		q, err = GeneratePrime(qBits, source)
		if err != nil {
			return nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}
		n = new(big.Int).Mul(p, q)
		if n.BitLen() == bits {
			break
		}
	}

	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, bigOne),
		new(big.Int).Sub(q, bigOne),
	)

	e, err := choosePublicExponent(phi, source)
	if err != nil {
		return nil, err
	}

	d, err := ModInverse(e, phi)
	if err != nil {
		return nil, err
	}

	return &types.KeyPair{P: p, Q: q, N: n, E: e, D: d}, nil
}

// choosePublicExponent samples e uniformly in [2, phi) until gcd(e, phi) = 1.
func choosePublicExponent(phi *big.Int, source *rng.Source) (*big.Int, error) {
	if phi.Cmp(bigTwo) <= 0 {
		return nil, types.NewInvariantError("key generation: phi too small: %s", phi)
	}
	for {
		e := source.UniformRange(bigTwo, phi)
		if new(big.Int).GCD(nil, nil, e, phi).Cmp(bigOne) == 0 {
			return e, nil
		}
	}
}
