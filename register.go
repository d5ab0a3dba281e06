// FILE: lixenwraith/flagset/register.go
package flagset

import (
	"fmt"
	"os"
	"path/filepath"
)

// FlagSet maps canonical names to flags. Register every flag before the first
// resolution; resolution never mutates the set and is safe for concurrent use.
type FlagSet struct {
	name  string
	order []string
	flags map[string]*Flag
	// cmdline spelling -> canonical name
	spellings map[string]string
}

// New creates an empty FlagSet. name is shown in the usage line.
func New(name string) *FlagSet {
	return &FlagSet{
		name:      name,
		flags:     make(map[string]*Flag),
		spellings: make(map[string]string),
	}
}

// CommandLine is the process-wide default set used by the package-level helpers.
var CommandLine = New(programName())

func programName() string {
	if len(os.Args) == 0 {
		return ""
	}
	return filepath.Base(os.Args[0])
}

// Name returns the program name used in help output.
func (fs *FlagSet) Name() string { return fs.name }

// Add registers flag under canonical name. The flag is copied, later changes
// to the argument have no effect.
func (fs *FlagSet) Add(name string, flag Flag) error {
	if name == "" {
		return fmt.Errorf("%w: canonical name cannot be empty", ErrInvalidFlag)
	}
	if _, exists := fs.flags[name]; exists {
		return fmt.Errorf("%w: flag '%s'", ErrDuplicateFlag, name)
	}
	if err := flag.Validate(); err != nil {
		return fmt.Errorf("flag '%s': %w", name, err)
	}
	for _, spelling := range flag.Cmdline {
		if flag.IsPositional() {
			continue
		}
		if owner, taken := fs.spellings[spelling]; taken {
			return fmt.Errorf("%w: %s is already used by flag '%s'", ErrDuplicateFlag, spelling, owner)
		}
	}

	f := flag
	f.Cmdline = append([]string(nil), flag.Cmdline...)
	fs.flags[name] = &f
	fs.order = append(fs.order, name)
	if !f.IsPositional() {
		for _, spelling := range f.Cmdline {
			fs.spellings[spelling] = name
		}
	}
	return nil
}

// MustAdd is like Add but panics on error.
func (fs *FlagSet) MustAdd(name string, flag Flag) {
	if err := fs.Add(name, flag); err != nil {
		panic(fmt.Sprintf("flagset: %v", err))
	}
}

// Lookup returns the flag registered under name.
func (fs *FlagSet) Lookup(name string) (Flag, bool) {
	f, ok := fs.flags[name]
	if !ok {
		return Flag{}, false
	}
	return *f, true
}

// Names returns the canonical names in registration order.
func (fs *FlagSet) Names() []string {
	return append([]string(nil), fs.order...)
}

// Len returns the number of registered flags.
func (fs *FlagSet) Len() int { return len(fs.order) }

func (fs *FlagSet) each(fn func(name string, f *Flag)) {
	for _, name := range fs.order {
		fn(name, fs.flags[name])
	}
}
