package cmd

// extractBoolFlag scans args for any of the given flag names (no value) and
// returns whether it was present along with args with all matches removed.
// The CLI's core modes take strictly positional hex/decimal arguments, so
// flag.FlagSet's "-name value" grammar doesn't fit; this does manual argv
// scanning instead.
func extractBoolFlag(args []string, names ...string) (present bool, rest []string) {
	for _, a := range args {
		if matchesAny(a, names) {
			present = true
			continue
		}
		rest = append(rest, a)
	}
	return present, rest
}

// extractValueFlag scans args for "name value" and returns the value,
// whether it was found, and args with both tokens removed. The single-token
// "name=value" form is not recognised and is left in rest.
func extractValueFlag(args []string, name string) (value string, present bool, rest []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == name && i+1 < len(args) {
			value = args[i+1]
			present = true
			i++
			continue
		}
		rest = append(rest, a)
	}
	return value, present, rest
}

func matchesAny(s string, names []string) bool {
	for _, n := range names {
		if s == n {
			return true
		}
	}
	return false
}
