package inidoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_QueryAndEnumerate(t *testing.T) {
	path := writeTemp(t, "[Display]\nWidth=1920\nHeight=1080\n\n[Audio]\nVolume=80\n")

	d, err := Load(path, Options{})
	require.NoError(t, err)

	v, ok := d.QueryValue("Display", "Width")
	assert.True(t, ok)
	assert.Equal(t, "1920", v)

	_, ok = d.QueryValue("Display", "Depth")
	assert.False(t, ok)
	_, ok = d.QueryValue("Missing", "Width")
	assert.False(t, ok)

	assert.Equal(t, []string{"Display", "Audio"}, d.SectionNames())
	assert.Equal(t, []string{"Width", "Height"}, d.KeyNames("Display"))
	assert.Nil(t, d.KeyNames("Missing"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.ini"), Options{})
	assert.Error(t, err)
}

func TestQueryValue_DoesNotCreate(t *testing.T) {
	d := New(Options{})
	_, ok := d.QueryValue("Phantom", "Key")
	assert.False(t, ok)
	assert.Empty(t, d.SectionNames(), "lookups must not materialize sections")
}

func TestSetValue_ChangeDetection(t *testing.T) {
	d := New(Options{})

	assert.True(t, d.SetValue("General", "Mode", "fast"))
	assert.False(t, d.SetValue("General", "Mode", "fast"), "identical value is a no-op")
	assert.True(t, d.SetValue("General", "Mode", "slow"))

	v, ok := d.QueryValue("General", "Mode")
	assert.True(t, ok)
	assert.Equal(t, "slow", v)
}

func TestDeleteKeyAndSection(t *testing.T) {
	d := New(Options{})
	d.SetValue("S", "a", "1")
	d.SetValue("S", "b", "2")

	assert.True(t, d.DeleteKey("S", "a"))
	assert.False(t, d.DeleteKey("S", "a"))
	assert.Equal(t, []string{"b"}, d.KeyNames("S"), "sibling keys stay intact")

	assert.True(t, d.DeleteSection("S"))
	assert.False(t, d.DeleteSection("S"))
	assert.Empty(t, d.SectionNames())
}

func TestSaveTo_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ini")

	d := New(Options{})
	d.SetValue("Game", "Difficulty", "nightmare")
	require.NoError(t, d.SaveTo(path))

	d2, err := Load(path, Options{})
	require.NoError(t, err)
	v, ok := d2.QueryValue("Game", "Difficulty")
	assert.True(t, ok)
	assert.Equal(t, "nightmare", v)
}

func TestOptions_InlineComments(t *testing.T) {
	path := writeTemp(t, "[S]\nk=value ; trailing\n")

	d, err := Load(path, Options{})
	require.NoError(t, err)
	v, _ := d.QueryValue("S", "k")
	assert.Equal(t, "value ; trailing", v, "inline comments are data by default")

	d, err = Load(path, Options{ProcessInlineComments: true})
	require.NoError(t, err)
	v, _ = d.QueryValue("S", "k")
	assert.Equal(t, "value", v)
}

func TestOptions_TrimValueQuotes(t *testing.T) {
	path := writeTemp(t, "[S]\nk=\"quoted\"\n")

	d, err := Load(path, Options{})
	require.NoError(t, err)
	v, _ := d.QueryValue("S", "k")
	assert.Equal(t, "\"quoted\"", v)

	d, err = Load(path, Options{TrimValueQuotes: true})
	require.NoError(t, err)
	v, _ = d.QueryValue("S", "k")
	assert.Equal(t, "quoted", v)
}

func TestLoad_SkipsJunkLines(t *testing.T) {
	path := writeTemp(t, "[S]\ngarbage line without delimiter\nk=v\n")

	d, err := Load(path, Options{})
	require.NoError(t, err)
	v, ok := d.QueryValue("S", "k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
