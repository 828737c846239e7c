package cmd

import (
	"fmt"

	"rsatoolkit/src/operations"
	"rsatoolkit/src/types"
	"rsatoolkit/src/utils"
)

// Break handles "-b E N C [-v]".
func Break(args []string) error {
	verbose, args := extractBoolFlag(args, "-v", "--verbose")

	if len(args) != 3 {
		return types.NewValidationError("the arguments E, N, C should be hexadecimal numbers (prefix 0x or 0X)")
	}

	e, err := utils.ParseHexInt("E", args[0])
	if err != nil {
		return err
	}
	n, err := utils.ParseHexModulus("N", args[1])
	if err != nil {
		return err
	}
	c, err := utils.ParseHexInt("C", args[2])
	if err != nil {
		return err
	}

	result, err := operations.RunBreak(operations.BreakOptions{
		E: e, N: n, C: c,
		Logger:  utils.NewVerboseLogger(verbose),
		Verbose: verbose,
	})
	if err != nil {
		return err
	}

	fmt.Println(utils.FormatHexLine(result.P, result.Q, result.M))
	return nil
}
