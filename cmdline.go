// FILE: lixenwraith/flagset/cmdline.go
package flagset

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// cmdlineValue adapts a Flag to pflag.Value. Conversion errors are kept so the
// caller can surface the typed error instead of pflag's message.
type cmdlineValue struct {
	flag  *Flag
	value any
	set   bool
	err   error
}

func (v *cmdlineValue) String() string {
	if !v.set {
		return ""
	}
	return fmt.Sprint(v.value)
}

func (v *cmdlineValue) Set(raw string) error {
	converted, err := v.flag.convert(raw, SourceCLI)
	if err != nil {
		v.err = err
		return err
	}
	v.value = converted
	v.set = true
	return nil
}

func (v *cmdlineValue) Type() string { return v.flag.converter().Type() }

// parseCmdline delegates tokenizing to pflag and returns the supplied values by
// canonical name plus the optional trailing config path.
func (fs *FlagSet) parseCmdline(args []string) (map[string]any, string, error) {
	parser := pflag.NewFlagSet(fs.name, pflag.ContinueOnError)
	parser.SetOutput(io.Discard)
	parser.Usage = func() {}
	parser.SortFlags = false

	slots := make(map[string]*cmdlineValue)
	var positionals []string
	bools := make(map[string]bool)
	takesValue := make(map[string]bool)

	fs.each(func(name string, f *Flag) {
		if len(f.Cmdline) == 0 {
			return
		}
		slot := &cmdlineValue{flag: f}
		slots[name] = slot
		if f.IsPositional() {
			positionals = append(positionals, name)
			return
		}
		bindOption(parser, name, f, slot)
		for _, spelling := range f.Cmdline {
			if f.IsBool() {
				bools[spelling] = true
			} else {
				takesValue[spelling] = true
			}
		}
	})

	if err := parser.Parse(joinBoolValues(args, bools, takesValue)); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, "", ErrHelp
		}
		for _, name := range fs.order {
			if slot, ok := slots[name]; ok && slot.err != nil {
				return nil, "", slot.err
			}
		}
		return nil, "", fmt.Errorf("%w: %v", ErrParse, err)
	}

	rest := parser.Args()
	if len(rest) < len(positionals) {
		var missing []string
		for _, name := range positionals[len(rest):] {
			missing = append(missing, fs.flags[name].Cmdline[0])
		}
		return nil, "", fmt.Errorf("%w: the following arguments are required: %s", ErrParse, strings.Join(missing, ", "))
	}
	for i, name := range positionals {
		if err := slots[name].Set(rest[i]); err != nil {
			return nil, "", err
		}
	}
	rest = rest[len(positionals):]

	var configPath string
	switch len(rest) {
	case 0:
	case 1:
		configPath = rest[0]
	default:
		return nil, "", fmt.Errorf("%w: unrecognized arguments: %s", ErrParse, strings.Join(rest[1:], " "))
	}

	values := make(map[string]any, len(slots))
	for name, slot := range slots {
		if slot.set {
			values[name] = slot.value
		}
	}
	return values, configPath, nil
}

// bindOption registers every spelling of f with the parser, all sharing one slot.
// pflag pairs one long name with one shorthand, so shorthands are attached to
// long names in order and any surplus gets a name no user can type.
func bindOption(parser *pflag.FlagSet, name string, f *Flag, slot pflag.Value) {
	var longs, shorts []string
	for _, spelling := range f.Cmdline {
		if strings.HasPrefix(spelling, "--") {
			longs = append(longs, spelling[2:])
		} else {
			shorts = append(shorts, spelling[1:])
		}
	}

	bind := func(long, short string) {
		pf := parser.VarPF(slot, long, short, f.Help)
		if f.IsBool() {
			pf.NoOptDefVal = "true"
		}
	}

	for i, long := range longs {
		short := ""
		if i < len(shorts) {
			short = shorts[i]
		}
		bind(long, short)
	}
	for i := len(longs); i < len(shorts); i++ {
		bind(name+"\x00"+shorts[i], shorts[i])
	}
}

// joinBoolValues rewrites "--flag value" to "--flag=value" when a bool flag is
// followed by a boolean literal. pflag never consumes a separate token for
// flags with an optional value. A group of bool shorthands such as "-ov" is
// joined the same way and the literal applies to its last flag.
func joinBoolValues(args []string, bools, takesValue map[string]bool) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		switch {
		case (bools[arg] || isBoolGroup(arg, bools)) && i+1 < len(args) && isBoolLiteral(args[i+1]):
			out = append(out, arg+"="+args[i+1])
			i++
		case takesValue[arg] && i+1 < len(args):
			out = append(out, arg, args[i+1])
			i++
		default:
			out = append(out, arg)
		}
	}
	return out
}

// isBoolGroup reports whether arg combines two or more bool shorthands, e.g. "-ov".
func isBoolGroup(arg string, bools map[string]bool) bool {
	if len(arg) < 3 || arg[0] != '-' || arg[1] == '-' || strings.Contains(arg, "=") {
		return false
	}
	for _, c := range arg[1:] {
		if !bools["-"+string(c)] {
			return false
		}
	}
	return true
}
