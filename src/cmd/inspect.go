package cmd

import (
	"fmt"

	"rsatoolkit/src/operations"
	"rsatoolkit/src/types"
	"rsatoolkit/src/utils"
)

// Inspect handles "-i N [-v]", reporting public information about a modulus.
func Inspect(args []string) error {
	_, args = extractBoolFlag(args, "-v", "--verbose")

	if len(args) != 1 {
		return types.NewValidationError("the argument N should be a hexadecimal number (prefix 0x or 0X)")
	}

	n, err := utils.ParseHexModulus("N", args[0])
	if err != nil {
		return err
	}

	result := operations.Inspect(n)
	fmt.Printf("bit length: %d\n", result.BitLen)
	fmt.Printf("security level: %s\n", result.SecurityLevel)
	return nil
}
