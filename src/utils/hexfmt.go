package utils

import (
	"fmt"
	"math/big"
	"regexp"

	"rsatoolkit/src/types"
)

// hexPattern matches the CLI's required hex-integer form: a 0x/0X prefix
// followed by at least one hex digit.
var hexPattern = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)

// ParseHexInt validates and parses a single CLI hex argument. name is used
// only to produce a readable error message.
func ParseHexInt(name, s string) (*big.Int, error) {
	if !hexPattern.MatchString(s) {
		return nil, types.NewValidationError(
			"argument %s must be a hexadecimal number with a 0x/0X prefix, got %q", name, s)
	}

	v, ok := new(big.Int).SetString(s[2:], 16)
	if !ok {
		return nil, types.NewValidationError("argument %s is not a valid hexadecimal number: %q", name, s)
	}
	return v, nil
}

// ParseHexModulus is ParseHexInt with the additional rule that N == 0 is
// rejected at parse time.
func ParseHexModulus(name, s string) (*big.Int, error) {
	v, err := ParseHexInt(name, s)
	if err != nil {
		return nil, err
	}
	if v.Sign() == 0 {
		return nil, types.NewValidationError("argument %s must not be zero", name)
	}
	return v, nil
}

// FormatHex renders x as a lowercase 0x-prefixed hex integer.
func FormatHex(x *big.Int) string {
	return fmt.Sprintf("0x%x", x)
}

// FormatHexLine joins one or more big integers as space-separated, lowercase
// 0x-prefixed hex values, matching the CLI's stdout contract.
func FormatHexLine(xs ...*big.Int) string {
	out := ""
	for i, x := range xs {
		if i > 0 {
			out += " "
		}
		out += FormatHex(x)
	}
	return out
}
