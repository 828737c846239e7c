package cmd

import (
	"fmt"

	"rsatoolkit/src/operations"
	"rsatoolkit/src/types"
	"rsatoolkit/src/utils"
)

// Encrypt handles "-e E N M [-v]".
func Encrypt(args []string) error {
	_, args = extractBoolFlag(args, "-v", "--verbose")

	if len(args) != 3 {
		return types.NewValidationError("the arguments E, N, M should be hexadecimal numbers (prefix 0x or 0X)")
	}

	e, err := utils.ParseHexInt("E", args[0])
	if err != nil {
		return err
	}
	n, err := utils.ParseHexModulus("N", args[1])
	if err != nil {
		return err
	}
	m, err := utils.ParseHexInt("M", args[2])
	if err != nil {
		return err
	}

	c, err := operations.Encrypt(operations.EncryptOptions{E: e, N: n, M: m})
	if err != nil {
		return err
	}

	fmt.Println(utils.FormatHex(c))
	return nil
}
