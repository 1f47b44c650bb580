package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{
		"--config", "/tmp/pantry.toml",
		"--demo",
		"--poll", "30s",
		"-s", "pizza",
		"--debug",
	}))

	fs := cmd.Flags()
	cfg, _ := fs.GetString("config")
	demo, _ := fs.GetBool("demo")
	poll, _ := fs.GetDuration("poll")
	search, _ := fs.GetString("search")
	debug, _ := fs.GetBool("debug")

	assert.Equal(t, "/tmp/pantry.toml", cfg)
	assert.True(t, demo)
	assert.Equal(t, 30*time.Second, poll)
	assert.Equal(t, "pizza", search)
	assert.True(t, debug)
}

func TestRootRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}

func TestRootRequiresTerminal(t *testing.T) {
	orig := isTerminal
	isTerminal = func(*os.File) bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--demo"})
	assert.ErrorIs(t, cmd.Execute(), errNoTTY)
}
