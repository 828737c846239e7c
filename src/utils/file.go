package utils

import (
	"math/big"
	"os"
	"strings"

	"rsatoolkit/src/types"
)

// WriteFile writes data to a file, creating it if necessary.
func WriteFile(filename string, data []byte) error {
	return os.WriteFile(filename, data, 0644)
}

// WriteKeyFile writes a generated key pair to filename as plain hex text,
// one line of five space-separated 0x-prefixed values: P Q N E D. This is
// deliberately not a serialization format (no PEM/DER, no ASN.1 structure)
// — it is the same bytes -g already prints to stdout, mirrored to a file for
// convenience.
func WriteKeyFile(filename string, kp *types.KeyPair) error {
	line := FormatHexLine(kp.P, kp.Q, kp.N, kp.E, kp.D) + "\n"
	return WriteFile(filename, []byte(line))
}

// ParseKeyFile reads back a key pair written by WriteKeyFile.
func ParseKeyFile(filename string) (*types.KeyPair, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(string(data))
	if len(fields) != 5 {
		return nil, types.NewValidationError("key file %s: expected 5 hex fields, got %d", filename, len(fields))
	}

	values := make([]*big.Int, 5)
	names := []string{"P", "Q", "N", "E", "D"}
	for i, f := range fields {
		v, err := ParseHexInt(names[i], f)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	return &types.KeyPair{P: values[0], Q: values[1], N: values[2], E: values[3], D: values[4]}, nil
}
