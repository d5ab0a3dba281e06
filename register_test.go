package flagset

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistration(t *testing.T) {
	t.Run("NamesKeepRegistrationOrder", func(t *testing.T) {
		fs := New("app")
		fs.MustAdd("zeta", Flag{Cmdline: []string{"--zeta"}})
		fs.MustAdd("alpha", Flag{Env: "ALPHA"})
		fs.MustAdd("mid", Flag{Config: "m.id"})

		assert.Equal(t, []string{"zeta", "alpha", "mid"}, fs.Names())
		assert.Equal(t, 3, fs.Len())
		assert.Equal(t, "app", fs.Name())
	})

	t.Run("DuplicateName", func(t *testing.T) {
		fs := New("app")
		require.NoError(t, fs.Add("name", Flag{Cmdline: []string{"--name"}}))
		err := fs.Add("name", Flag{Env: "NAME"})
		assert.ErrorIs(t, err, ErrDuplicateFlag)
	})

	t.Run("DuplicateSpelling", func(t *testing.T) {
		fs := New("app")
		require.NoError(t, fs.Add("verbose", Flag{Type: Bool(), Cmdline: []string{"--verbose", "-v"}}))
		err := fs.Add("version", Flag{Type: Bool(), Cmdline: []string{"-v"}})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateFlag)
		assert.Contains(t, err.Error(), "verbose")
		assert.Equal(t, 1, fs.Len())
	})

	t.Run("PositionalNamesMayRepeatLongNames", func(t *testing.T) {
		fs := New("app")
		require.NoError(t, fs.Add("input", Flag{Cmdline: []string{"input"}}))
		require.NoError(t, fs.Add("output", Flag{Cmdline: []string{"--input-copy"}}))
	})

	t.Run("InvalidFlagRejected", func(t *testing.T) {
		fs := New("app")
		err := fs.Add("broken", Flag{Required: true, Default: 1, Env: "X"})
		assert.ErrorIs(t, err, ErrInvalidFlag)
		assert.Contains(t, err.Error(), "broken")
		assert.Equal(t, 0, fs.Len())

		assert.ErrorIs(t, fs.Add("", Flag{Env: "X"}), ErrInvalidFlag)
	})

	t.Run("MustAddPanics", func(t *testing.T) {
		fs := New("app")
		assert.Panics(t, func() {
			fs.MustAdd("empty", Flag{})
		})
	})

	t.Run("LookupReturnsCopy", func(t *testing.T) {
		fs := New("app")
		spellings := []string{"--name", "-n"}
		fs.MustAdd("name", Flag{Cmdline: spellings, Help: "who"})

		// Mutating the caller's slice after registration has no effect
		spellings[0] = "--other"

		f, ok := fs.Lookup("name")
		require.True(t, ok)
		assert.Equal(t, []string{"--name", "-n"}, f.Cmdline)
		assert.Equal(t, "who", f.Help)

		f.Help = "changed"
		again, _ := fs.Lookup("name")
		assert.Equal(t, "who", again.Help)

		_, ok = fs.Lookup("missing")
		assert.False(t, ok)
	})
}

func TestProgramState(t *testing.T) {
	saved := os.Args
	defer func() { os.Args = saved }()

	os.Args = nil
	assert.Nil(t, programArgs())
	assert.Equal(t, "", programName())
	assert.NotPanics(t, func() { defaultOptions() })

	os.Args = []string{"/usr/local/bin/server"}
	assert.Nil(t, programArgs())
	assert.Equal(t, "server", programName())

	os.Args = []string{"/usr/local/bin/server", "--port", "1"}
	assert.Equal(t, []string{"--port", "1"}, programArgs())

	// Resolve takes its inputs from the caller only
	fs := New("server")
	fs.MustAdd("port", Flag{Type: Int(), Cmdline: []string{"--port"}, Default: 80})
	cfg, err := fs.Resolve(nil, nil, nil)
	require.NoError(t, err)
	v, _ := cfg.Get("port")
	assert.Equal(t, 80, v)
}
