package operations

import (
	"math/big"

	"github.com/pkg/errors"

	"rsatoolkit/src/crypto"
)

// EncryptOptions contains the parameters of a single encrypt operation.
type EncryptOptions struct {
	E, N, M *big.Int
}

// Encrypt computes C = M^E mod N.
func Encrypt(opts EncryptOptions) (*big.Int, error) {
	if opts.N.Sign() == 0 {
		return nil, errors.New("encrypt: modulus must not be zero")
	}
	return crypto.Encrypt(opts.M, opts.E, opts.N), nil
}
