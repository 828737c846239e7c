package operations

import (
	"math"
	"math/big"
	"time"

	"go.uber.org/zap"

	"rsatoolkit/src/crypto"
	"rsatoolkit/src/rng"
	"rsatoolkit/src/utils"
)

// BenchOptions configures a throughput benchmark.
type BenchOptions struct {
	Duration time.Duration
	Bits     int // bit-length of the sample modulus used for modexp timing
	Logger   *zap.SugaredLogger
}

// BenchResult reports measured throughput for the two operations that
// dominate this toolkit's cost: modular exponentiation (encrypt/decrypt/
// Solovay-Strassen's witness check) and complete Solovay-Strassen tests of
// random odd candidates (one IsProbablePrime call each, which stops at the
// first failing witness).
type BenchResult struct {
	ModExpPerSecond    float64
	PrimalityPerSecond float64
	SampleBits         int

	// EstimatedKeygenTime extrapolates, from PrimalityPerSecond, how long
	// generating one prime of SampleBits bits should take: by the prime
	// number theorem a random ℓ-bit candidate is prime with probability
	// roughly 1/(ℓ·ln 2), so about that many candidates are tried on average.
	EstimatedKeygenTime time.Duration
}

// Run measures modexp and primality-round throughput against a freshly
// generated sample modulus of the requested bit length, sampling a short
// window and extrapolating ops/sec rather than counting a fixed iteration
// count up front.
func Run(opts BenchOptions) (*BenchResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	source := rng.New()

	logger.Infow("sampling benchmark modulus", "bits", opts.Bits)
	n, err := crypto.GeneratePrime(opts.Bits, source)
	if err != nil {
		return nil, err
	}

	logger.Info("timing modexp throughput")
	modExpRate := benchModExp(n, opts.Duration/2)
	logger.Infow("modexp throughput measured", "opsPerSec", modExpRate)

	logger.Info("timing Solovay-Strassen throughput")
	primalityRate, err := benchPrimality(opts.Bits, opts.Duration/2, source)
	if err != nil {
		return nil, err
	}
	logger.Infow("primality throughput measured", "roundsPerSec", primalityRate)

	expectedCandidates := uint64(math.Ceil(float64(opts.Bits) * math.Ln2))
	estimate := utils.EstimateTime(expectedCandidates, primalityRate)
	logger.Infow("keygen time estimated", "bits", opts.Bits, "estimate", utils.FormatDuration(estimate))

	return &BenchResult{
		ModExpPerSecond:     modExpRate,
		PrimalityPerSecond:  primalityRate,
		SampleBits:          opts.Bits,
		EstimatedKeygenTime: estimate,
	}, nil
}

func benchModExp(n *big.Int, duration time.Duration) float64 {
	x := big.NewInt(12345)
	e := big.NewInt(65537)

	var ops uint64
	start := time.Now()
	end := start.Add(duration)
	for time.Now().Before(end) {
		for i := 0; i < 100; i++ {
			x = crypto.Encrypt(x, e, n)
			ops++
		}
	}
	elapsed := time.Since(start)
	return float64(ops) / elapsed.Seconds()
}

func benchPrimality(bits int, duration time.Duration, source *rng.Source) (float64, error) {
	var ops uint64
	start := time.Now()
	end := start.Add(duration)
	for time.Now().Before(end) {
		candidate := source.UniformBits(bits)
		candidate.SetBit(candidate, 0, 1)
		if _, err := crypto.IsProbablePrime(candidate, source); err != nil {
			return 0, err
		}
		ops++
	}
	elapsed := time.Since(start)
	return float64(ops) / elapsed.Seconds(), nil
}
