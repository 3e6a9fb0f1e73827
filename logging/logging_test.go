package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateWriterRotatesOnce(t *testing.T) {
	name := filepath.Join(t.TempDir(), LOGFILE)
	w := &RotateWriter{filename: name, maxLogSize: 10}
	require.NoError(t, w.rotate())
	defer w.Close()

	_, err := w.Write([]byte("12345678\n"))
	require.NoError(t, err)
	_, err = w.Write([]byte("abcdefgh\n"))
	require.NoError(t, err)

	cur, err := os.ReadFile(name)
	require.NoError(t, err)
	old, err := os.ReadFile(name + ".1")
	require.NoError(t, err)
	assert.Equal(t, "abcdefgh\n", string(cur))
	assert.Equal(t, "12345678\n", string(old))
}

func TestRotateWriterRotatesOversizedFileOnOpen(t *testing.T) {
	name := filepath.Join(t.TempDir(), LOGFILE)
	require.NoError(t, os.WriteFile(name, []byte(strings.Repeat("x", 20)), 0640))
	w := &RotateWriter{filename: name, maxLogSize: 10}
	require.NoError(t, w.rotate())
	defer w.Close()

	fi, err := os.Stat(name)
	require.NoError(t, err)
	assert.Zero(t, fi.Size())
	_, err = os.Stat(name + ".1")
	assert.NoError(t, err)
}

func TestRotateWriterUnlimited(t *testing.T) {
	name := filepath.Join(t.TempDir(), LOGFILE)
	w := &RotateWriter{filename: name}
	require.NoError(t, w.rotate())
	for i := 0; i < 10; i++ {
		_, err := w.Write([]byte("line\n"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	_, err := os.Stat(name + ".1")
	assert.True(t, os.IsNotExist(err))
}
