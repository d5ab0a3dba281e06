// FILE: lixenwraith/flagset/errors.go
package flagset

import (
	"errors"
	"fmt"
)

var (
	// ErrHelp is returned when --help or -h was given. It is a control signal, not a failure.
	ErrHelp = errors.New("help requested")
	// ErrParse wraps every rejection of the argument list by the command-line parser.
	ErrParse = errors.New("failed to parse command line")
	// ErrConversion is matched by every ConversionError.
	ErrConversion = errors.New("invalid flag value")
	// ErrConfigLoad wraps failures to read or parse the config document.
	ErrConfigLoad = errors.New("failed to load config file")
	// ErrConfigNotFound is joined with ErrConfigLoad when the config path does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrMissingRequired is matched by every MissingRequiredError.
	ErrMissingRequired = errors.New("required flag not given")
	// ErrInvalidFlag reports a flag definition that violates a construction invariant.
	ErrInvalidFlag = errors.New("invalid flag definition")
	// ErrDuplicateFlag reports a canonical name or cmdline spelling registered twice.
	ErrDuplicateFlag = errors.New("flag already exists")
	// ErrValidation wraps failures of Builder validators.
	ErrValidation = errors.New("configuration validation failed")
	// ErrSchema wraps failures to load a declarative flag schema.
	ErrSchema = errors.New("invalid flag schema")
)

// ConversionError reports raw input that a flag's converter rejected.
type ConversionError struct {
	Flag   string // display name of the flag
	Value  string
	Source Source
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: invalid value %q from %s: %v", e.Flag, e.Value, e.Source, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrConversion) hold for any ConversionError.
func (e *ConversionError) Is(target error) bool { return target == ErrConversion }

// MissingRequiredError reports a required flag that no source supplied.
type MissingRequiredError struct {
	Name string // canonical name
	Flag string // display name
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("%s is required but not given", e.Flag)
}

func (e *MissingRequiredError) Is(target error) bool { return target == ErrMissingRequired }
