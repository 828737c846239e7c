package types

import "math/big"

// MinModulusBits is the smallest accepted public-modulus bit-length for
// key generation; B must be strictly greater than this.
const MinModulusBits = 6

// MaxFactorizationRetries bounds how many fresh Pollard's-Rho attempts the
// break operation makes before giving up.
const MaxFactorizationRetries = 20

// KeyPair holds the full output of key generation: both secret primes, the
// public modulus, and the public/private exponent pair. All fields are
// non-nil on success.
type KeyPair struct {
	P *big.Int
	Q *big.Int
	N *big.Int
	E *big.Int
	D *big.Int
}

// BreakResult holds the output of a successful break: the recovered factors
// and the recovered plaintext.
type BreakResult struct {
	P *big.Int
	Q *big.Int
	M *big.Int
}
