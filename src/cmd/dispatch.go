// Package cmd implements the CLI surface: one file per verb, each parsing
// its own argv slice and calling into the operations layer. Dispatch is the
// single entry point main.go calls.
package cmd

import (
	"fmt"
	"os"

	"rsatoolkit/src/types"
)

// Dispatch routes os.Args[1:] to the matching command. It returns the error
// produced by the command, or a ValidationError for an unrecognized or
// missing mode.
func Dispatch(args []string) error {
	if len(args) == 0 {
		PrintUsage()
		return types.NewValidationError("invalid arguments: expecting -g B | -e E N M | -d D N C | -b E N C")
	}

	mode, rest := args[0], args[1:]

	switch mode {
	case "-g":
		return Generate(rest)
	case "-e":
		return Encrypt(rest)
	case "-d":
		return Decrypt(rest)
	case "-b":
		return Break(rest)
	case "bench":
		return Bench(rest)
	case "-i":
		return Inspect(rest)
	case "-h", "--help", "help":
		PrintUsage()
		return nil
	default:
		PrintUsage()
		return types.NewValidationError("invalid arguments: expecting -g B | -e E N M | -d D N C | -b E N C")
	}
}

// PrintUsage writes the CLI's usage summary to stderr.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, "rsatoolkit - RSA key generation, encryption, decryption, and breaking\n\n")
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  rsatoolkit -g B              generate a B-bit RSA key pair\n")
	fmt.Fprintf(os.Stderr, "  rsatoolkit -e E N M          encrypt M under public key (E, N)\n")
	fmt.Fprintf(os.Stderr, "  rsatoolkit -d D N C          decrypt C under private key (D, N)\n")
	fmt.Fprintf(os.Stderr, "  rsatoolkit -b E N C          factor N and recover the plaintext of C\n")
	fmt.Fprintf(os.Stderr, "  rsatoolkit -i N              report the bit length of N\n")
	fmt.Fprintf(os.Stderr, "  rsatoolkit bench             benchmark modexp/primality throughput\n\n")
	fmt.Fprintf(os.Stderr, "E, N, M, D, C are hexadecimal integers with a 0x/0X prefix.\n")
	fmt.Fprintf(os.Stderr, "Add -v to -g, -b or bench for diagnostic logging on stderr.\n")
	fmt.Fprintf(os.Stderr, "-g accepts an optional --out FILE to also write the key to a file.\n")
}
