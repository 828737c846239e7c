package operations

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"rsatoolkit/src/crypto"
	"rsatoolkit/src/rng"
	"rsatoolkit/src/types"
	"rsatoolkit/src/utils"
)

// GenerateOptions contains all the parameters needed for key generation.
type GenerateOptions struct {
	Bits    int
	OutFile string // optional; empty means stdout-only
	Logger  *zap.SugaredLogger
}

// GenerateResult wraps the generated key pair plus the path it was
// additionally written to, if any.
type GenerateResult struct {
	KeyPair *types.KeyPair
	OutFile string
}

// GenerateKey runs key generation against a freshly entropy-seeded RNG and,
// if requested, mirrors the five hex values to OutFile.
func GenerateKey(opts GenerateOptions) (*GenerateResult, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}

	source := rng.New()
	opts.Logger.Debugw("generating key pair", "bits", opts.Bits)

	kp, err := crypto.GenerateKeyPair(opts.Bits, source)
	if err != nil {
		return nil, errors.Wrap(err, "generate key pair")
	}
	opts.Logger.Debugw("key pair generated", "n_bitlen", kp.N.BitLen())

	if opts.OutFile != "" {
		if err := utils.WriteKeyFile(opts.OutFile, kp); err != nil {
			return nil, errors.Wrapf(err, "write key file %s", opts.OutFile)
		}
	}

	return &GenerateResult{KeyPair: kp, OutFile: opts.OutFile}, nil
}
