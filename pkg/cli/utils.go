package cli

import "github.com/urfave/cli/v3"

// joinFlags concatenates flag groups of several config structs into one
// slice for a command
func joinFlags(groups ...[]cli.Flag) []cli.Flag {
	n := 0
	for _, g := range groups {
		n += len(g)
	}

	flags := make([]cli.Flag, 0, n)
	for _, g := range groups {
		flags = append(flags, g...)
	}
	return flags
}
