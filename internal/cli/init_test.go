package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCreatesDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sofi.db")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"init", "--db", path})
	require.NoError(t, cmd.Execute())

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestInitRequiresDatabaseFlag(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"init"})
	assert.Error(t, cmd.Execute())
}
