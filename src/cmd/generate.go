package cmd

import (
	"fmt"
	"strconv"

	"rsatoolkit/src/operations"
	"rsatoolkit/src/types"
	"rsatoolkit/src/utils"
)

// Generate handles "-g B [--out FILE] [-v]".
func Generate(args []string) error {
	verbose, args := extractBoolFlag(args, "-v", "--verbose")
	outFile, _, args := extractValueFlag(args, "--out")

	if len(args) != 1 {
		return types.NewValidationError(
			"a required size of a public modulus (B) should be a number of bits > %d", types.MinModulusBits)
	}

	bits, err := strconv.Atoi(args[0])
	if err != nil || bits <= types.MinModulusBits {
		return types.NewValidationError(
			"a required size of a public modulus (B) should be a number of bits > %d", types.MinModulusBits)
	}

	result, err := operations.GenerateKey(operations.GenerateOptions{
		Bits:    bits,
		OutFile: outFile,
		Logger:  utils.NewVerboseLogger(verbose),
	})
	if err != nil {
		return err
	}

	kp := result.KeyPair
	fmt.Println(utils.FormatHexLine(kp.P, kp.Q, kp.N, kp.E, kp.D))
	return nil
}
