package netrc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeNetrc(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadFromEnv(t *testing.T) {
	path := writeNetrc(
		t, t.TempDir(), "netrc",
		"machine example.com login user password pass\n",
	)
	t.Setenv("NETRC", path)

	table, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "user", table["example.com"].Login)
}

func TestLoadSeesEnvChanges(t *testing.T) {
	dir := t.TempDir()

	first := writeNetrc(
		t, dir, "first",
		"machine example.com login first password a\n",
	)
	second := writeNetrc(
		t, dir, "second",
		"machine example.com login second password b\n",
	)

	t.Setenv("NETRC", first)

	table, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "first", table["example.com"].Login)

	// NETRC must be re-read on every call, not captured once per process.
	t.Setenv("NETRC", second)

	table, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "second", table["example.com"].Login)
}

func TestLoadFromEnvMissingFile(t *testing.T) {
	t.Setenv("NETRC", filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadFromHome(t *testing.T) {
	home := t.TempDir()
	writeNetrc(t, home, ".netrc", "default login anonymous password anon\n")

	t.Setenv("NETRC", "")
	t.Setenv("HOME", home)

	table, err := Load()
	require.NoError(t, err)

	machine, ok := table.Machine("anything.example.com")
	assert.True(t, ok)
	assert.Equal(t, "anonymous", machine.Login)
}

func TestLoadMissingHomeNetrc(t *testing.T) {
	t.Setenv("NETRC", "")
	t.Setenv("HOME", t.TempDir())

	table, err := Load()
	require.NoError(t, err)

	assert.Empty(t, table)
}
