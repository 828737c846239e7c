package operations

import (
	"math/big"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"rsatoolkit/src/crypto"
	"rsatoolkit/src/rng"
	"rsatoolkit/src/types"
	"rsatoolkit/src/utils"
)

// BreakOptions contains the parameters of a break attempt.
type BreakOptions struct {
	E, N, C *big.Int
	Logger  *zap.SugaredLogger
	Verbose bool // when true, also renders an attempt progress bar on stderr
}

// RunBreak factors N and recovers the plaintext, wrapping
// crypto.Break's fixed 20-attempt retry budget with diagnostic logging.
func RunBreak(opts BreakOptions) (*types.BreakResult, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	if opts.N.Sign() == 0 {
		return nil, errors.New("break: modulus must not be zero")
	}

	source := rng.New()
	opts.Logger.Debugw("starting factorization", "n_bitlen", opts.N.BitLen(),
		"max_retries", types.MaxFactorizationRetries)

	var onAttempt func(int)
	if opts.Verbose {
		bar := utils.NewAttemptBar(types.MaxFactorizationRetries, "factoring n")
		onAttempt = bar.Update
		defer bar.Finish()
	}

	result, err := crypto.Break(opts.N, opts.E, opts.C, source, onAttempt)
	if err != nil {
		return nil, errors.Wrap(err, "break")
	}

	opts.Logger.Debugw("factorization succeeded", "p_bitlen", result.P.BitLen(), "q_bitlen", result.Q.BitLen())
	return result, nil
}
