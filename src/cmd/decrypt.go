package cmd

import (
	"fmt"

	"rsatoolkit/src/operations"
	"rsatoolkit/src/types"
	"rsatoolkit/src/utils"
)

// Decrypt handles "-d D N C [-v]".
func Decrypt(args []string) error {
	_, args = extractBoolFlag(args, "-v", "--verbose")

	if len(args) != 3 {
		return types.NewValidationError("the arguments D, N, C should be hexadecimal numbers (prefix 0x or 0X)")
	}

	d, err := utils.ParseHexInt("D", args[0])
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

	m, err := operations.Decrypt(operations.DecryptOptions{D: d, N: n, C: c})
	if err != nil {
		return err
	}

	fmt.Println(utils.FormatHex(m))
	return nil
}
