package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	opts, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
	require.NoError(t, err)
	assert.False(t, opts.SaveOnWrite)
	assert.Equal(t, 1252, opts.ANSICodePage)
}

func TestLoad_ReadsGeneralSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ProfileRedirector.ini")
	content := `[General]
SaveOnWrite=1
SaveOnThreadDetach=0
SaveOnProcessDetach=1
NativeWrite=1
TrimValueQuotes=1
ProcessInlineComments=0
ANSICodePage=1251
EnableLog=1
LogPath=trace.log
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	opts, err := Load(path)
	require.NoError(t, err)
	assert.True(t, opts.SaveOnWrite)
	assert.False(t, opts.SaveOnThreadDetach)
	assert.True(t, opts.SaveOnProcessDetach)
	assert.True(t, opts.NativeWrite)
	assert.True(t, opts.TrimValueQuotes)
	assert.False(t, opts.ProcessInlineComments)
	assert.Equal(t, 1251, opts.ANSICodePage)
	assert.True(t, opts.LogEnabled)
	assert.Equal(t, "trace.log", opts.LogPath)
}

func TestLoad_BadValueKeepsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ini")
	require.NoError(t, os.WriteFile(path, []byte("[General]\nSaveOnWrite=yes please\nANSICodePage=banana\n"), 0644))

	opts, err := Load(path)
	require.NoError(t, err)
	assert.False(t, opts.SaveOnWrite)
	assert.Equal(t, 1252, opts.ANSICodePage)
}
