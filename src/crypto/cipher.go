package crypto

import "math/big"

// Encrypt computes m^e mod n. It performs no message-length or padding
// checks; callers are responsible for 0 <= m < n.
func Encrypt(m, e, n *big.Int) *big.Int {
	return new(big.Int).Exp(m, e, n)
}

// Decrypt computes c^d mod n.
func Decrypt(c, d, n *big.Int) *big.Int {
	return new(big.Int).Exp(c, d, n)
}
