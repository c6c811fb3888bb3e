// Package flagx lets several config loaders share os.Args without tripping
// over each other's flags.
package flagx

import (
	"flag"
	"io"
	"os"
	"slices"
	"strings"
)

// FilterArgs keeps only the flags listed in known, together with their values.
//
// Both "-k value" and "-k=value" forms are recognised. A token starting with
// "-" is never consumed as a value, so "-k -other" yields just "-k".
// The result is never nil.
func FilterArgs(args []string, known []string) []string {
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if slices.Contains(known, name) {
				out = append(out, arg)
			}
			continue
		}

		if !slices.Contains(known, arg) {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			out = append(out, args[i])
		}
	}

	return out
}

// FileFlags holds the locations of optional configuration files given on the
// command line.
type FileFlags struct {
	// JSON is set by -c or -config.
	JSON string
	// Env is set by -e or -env and points to a dotenv file.
	Env string
}

// ConfigFileFlags extracts -c/-config and -e/-env from os.Args, ignoring
// everything else. When a flag is repeated the last value wins.
func ConfigFileFlags() FileFlags {
	var ff FileFlags

	args := FilterArgs(os.Args[1:], []string{"-c", "-config", "-e", "-env"})

	fs := flag.NewFlagSet("files", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&ff.JSON, "config", "", "path to JSON config file")
	fs.StringVar(&ff.JSON, "c", "", "path to JSON config file (short)")
	fs.StringVar(&ff.Env, "env", "", "path to dotenv file")
	fs.StringVar(&ff.Env, "e", "", "path to dotenv file (short)")
	_ = fs.Parse(args)

	return ff
}
