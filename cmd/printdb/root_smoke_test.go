package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/printdb/internal/cmd"
)

func TestRunTUIBadURLReturnsError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PRINTDB_URL", "")

	err := runTUI(cmd.Options{URL: "not a url"})
	assert.Error(t, err)
}

func TestMainHelpFlagDoesNotExit(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"printdb", "--help"}
	defer func() { os.Args = oldArgs }()

	main()
}

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "printdb dev\n", out.String())
}

func TestLocalFlagReachesSubcommands(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	db := filepath.Join(t.TempDir(), "catalog.db")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--local", db, "refs", "add", "tags", "PLA"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), `created tag "PLA"`)

	out.Reset()
	root = newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"--local", db, "refs", "list", "tags"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "PLA")
}
