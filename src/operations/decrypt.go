package operations

import (
	"math/big"

	"github.com/pkg/errors"

	"rsatoolkit/src/crypto"
)

// DecryptOptions contains the parameters of a single decrypt operation.
type DecryptOptions struct {
	D, N, C *big.Int
}

// Decrypt computes M = C^D mod N.
func Decrypt(opts DecryptOptions) (*big.Int, error) {
	if opts.N.Sign() == 0 {
		return nil, errors.New("decrypt: modulus must not be zero")
	}
	return crypto.Decrypt(opts.C, opts.D, opts.N), nil
}
