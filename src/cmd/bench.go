package cmd

import (
	"flag"
	"fmt"
	"time"

	"rsatoolkit/src/crypto"
	"rsatoolkit/src/operations"
	"rsatoolkit/src/utils"
)

// Bench handles "bench [--duration D] [--bits N] [-v]". Unlike the core
// crypto modes, bench is ambient tooling with no fixed output contract, so
// an ordinary flag.FlagSet fits fine here.
func Bench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	duration := fs.Duration("duration", 4*time.Second, "total benchmark duration")
	bits := fs.Int("bits", 512, "bit length of the sample prime used for timing")
	verboseShort := fs.Bool("v", false, "verbose diagnostic logging")
	verboseLong := fs.Bool("verbose", false, "verbose diagnostic logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Printf("Benchmarking modexp and Solovay-Strassen throughput (%v, %d-bit sample)...\n", *duration, *bits)

	logger := utils.NewVerboseLogger(*verboseShort || *verboseLong)
	defer logger.Sync()

	result, err := operations.Run(operations.BenchOptions{Duration: *duration, Bits: *bits, Logger: logger})
	if err != nil {
		return err
	}

	fmt.Printf("modexp:     %.0f ops/sec\n", result.ModExpPerSecond)
	fmt.Printf("primality:  %.0f tests/sec (Solovay-Strassen on random odd candidates, up to %d witnesses each)\n",
		result.PrimalityPerSecond, crypto.PrimalityRounds)
	fmt.Printf("est. time for one %d-bit prime: %s\n", result.SampleBits, utils.FormatDuration(result.EstimatedKeygenTime))
	return nil
}
