// FILE: lixenwraith/flagset/help.go
package flagset

import (
	"fmt"
	"io"
	"strings"
)

// helpColumn is where help text starts; longer invocations wrap to the next line.
const helpColumn = 24

// Usage returns the help text.
func (fs *FlagSet) Usage() string {
	var b strings.Builder
	fs.PrintHelp(&b)
	return b.String()
}

// PrintHelp writes the help text to w: a usage line, positional arguments
// (including the trailing config file), options, and flags with no
// command-line form under "other arguments".
func (fs *FlagSet) PrintHelp(w io.Writer) {
	var (
		usage      []string
		positional [][2]string
		opts       [][2]string
		other      []string
	)

	usage = append(usage, "[-h]")
	opts = append(opts, [2]string{"-h, --help", "show this help message and exit"})

	fs.each(func(name string, f *Flag) {
		switch {
		case len(f.Cmdline) == 0:
			if text := f.usage(); text != "" {
				other = append(other, f.DisplayName()+": "+text)
			} else {
				other = append(other, f.DisplayName())
			}
		case f.IsPositional():
			usage = append(usage, f.Cmdline[0])
			positional = append(positional, [2]string{f.Cmdline[0], f.usage()})
		default:
			invocation := strings.Join(f.Cmdline, ", ")
			metavar := strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
			if f.IsBool() {
				invocation += " [" + metavar + "]"
			} else {
				invocation += " " + metavar
			}
			usage = append(usage, "["+f.Cmdline[0]+"]")
			opts = append(opts, [2]string{invocation, f.usage()})
		}
	})

	usage = append(usage, "[config]")
	positional = append(positional, [2]string{"config", "config file"})

	fmt.Fprintf(w, "usage: %s %s\n", fs.name, strings.Join(usage, " "))

	fmt.Fprintln(w, "\npositional arguments:")
	writeRows(w, positional)

	fmt.Fprintln(w, "\noptions:")
	writeRows(w, opts)

	if len(other) > 0 {
		fmt.Fprintln(w, "\nother arguments:")
		for _, line := range other {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
}

func writeRows(w io.Writer, rows [][2]string) {
	for _, row := range rows {
		left, text := "  "+row[0], row[1]
		switch {
		case text == "":
			fmt.Fprintln(w, left)
		case len(left) < helpColumn-1:
			fmt.Fprintf(w, "%-*s%s\n", helpColumn, left, text)
		default:
			fmt.Fprintf(w, "%s\n%s%s\n", left, strings.Repeat(" ", helpColumn), text)
		}
	}
}
