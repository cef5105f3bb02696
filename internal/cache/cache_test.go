package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirrorworks/profilekit/internal/inidoc"
	"github.com/mirrorworks/profilekit/pkg/types"
)

func newTestRegistry(opts types.Options) *Registry {
	return NewRegistry(opts, nil)
}

func TestGetOrLoadFile_MissingFileIsEmptyEntry(t *testing.T) {
	r := newTestRegistry(types.DefaultOptions())
	path := filepath.Join(t.TempDir(), "absent.ini")

	f := r.GetOrLoadFile(path)
	assert.False(t, f.ExistsOnDisk())
	assert.False(t, f.IsDirty())

	f.Read(func(doc *inidoc.Document) {
		assert.Empty(t, doc.SectionNames())
	})
}

func TestGetOrLoadFile_LoadsExisting(t *testing.T) {
	r := newTestRegistry(types.DefaultOptions())
	path := filepath.Join(t.TempDir(), "game.ini")
	require.NoError(t, os.WriteFile(path, []byte("[Video]\nFullscreen=1\n"), 0644))

	f := r.GetOrLoadFile(path)
	assert.True(t, f.ExistsOnDisk())
	f.Read(func(doc *inidoc.Document) {
		v, ok := doc.QueryValue("Video", "Fullscreen")
		assert.True(t, ok)
		assert.Equal(t, "1", v)
	})
}

func TestGetOrLoadFile_OneEntryPerNormalizedPath(t *testing.T) {
	r := newTestRegistry(types.DefaultOptions())
	dir := t.TempDir()
	path := filepath.Join(dir, "Config.INI")

	a := r.GetOrLoadFile(path)
	b := r.GetOrLoadFile(filepath.Join(dir, "config.ini"))
	c := r.GetOrLoadFile(filepath.Join(dir, "sub", "..", "CONFIG.ini"))
	assert.Same(t, a, b, "path equality is case-insensitive")
	assert.Same(t, a, c, "paths are normalized before lookup")
	assert.Len(t, r.Paths(), 1)
}

func TestGetOrLoadFile_ConcurrentFirstReference(t *testing.T) {
	r := newTestRegistry(types.DefaultOptions())
	path := filepath.Join(t.TempDir(), "hot.ini")

	const goroutines = 16
	entries := make([]*ConfigFile, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entries[i] = r.GetOrLoadFile(path)
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, entries[0], entries[i], "exactly one entry survives the race")
	}
}

func TestWrite_DirtyAndNoOp(t *testing.T) {
	r := newTestRegistry(types.DefaultOptions()) // save-on-write off
	f := r.GetOrLoadFile(filepath.Join(t.TempDir(), "w.ini"))

	f.Write(func(doc *inidoc.Document) bool {
		return doc.SetValue("S", "k", "v")
	})
	assert.True(t, f.IsDirty())

	// Flush, then repeat the identical write: no dirtying, no save.
	f.Flush()
	assert.False(t, f.IsDirty())

	f.Write(func(doc *inidoc.Document) bool {
		return doc.SetValue("S", "k", "v")
	})
	assert.False(t, f.IsDirty(), "identical value write must stay clean")
}

func TestWrite_SaveOnWrite(t *testing.T) {
	opts := types.DefaultOptions()
	opts.SaveOnWrite = true
	r := newTestRegistry(opts)
	path := filepath.Join(t.TempDir(), "sw.ini")

	f := r.GetOrLoadFile(path)
	f.Write(func(doc *inidoc.Document) bool {
		return doc.SetValue("S", "k", "v")
	})

	assert.False(t, f.IsDirty(), "save-on-write clears the dirty flag")
	assert.True(t, f.ExistsOnDisk())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "k=v")
}

func TestFlush_CreatesFileOnFirstSave(t *testing.T) {
	r := newTestRegistry(types.DefaultOptions())
	path := filepath.Join(t.TempDir(), "new.ini")

	f := r.GetOrLoadFile(path)
	f.Write(func(doc *inidoc.Document) bool {
		return doc.SetValue("General", "Created", "yes")
	})
	f.Flush()

	_, err := os.Stat(path)
	assert.NoError(t, err, "a write to a nonexistent file creates it on first save")
}

func TestSaveFailure_EntryStaysDirty(t *testing.T) {
	r := newTestRegistry(types.DefaultOptions())
	// A path whose parent directory does not exist cannot be saved.
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "x.ini")

	f := r.GetOrLoadFile(path)
	f.Write(func(doc *inidoc.Document) bool {
		return doc.SetValue("S", "k", "v")
	})
	f.Flush()
	assert.True(t, f.IsDirty(), "failed save leaves the entry dirty for a later retry")
}

func TestSaveChangedFiles(t *testing.T) {
	r := newTestRegistry(types.DefaultOptions())
	dir := t.TempDir()

	for i := 0; i < 3; i++ {
		f := r.GetOrLoadFile(filepath.Join(dir, fmt.Sprintf("f%d.ini", i)))
		f.Write(func(doc *inidoc.Document) bool {
			return doc.SetValue("S", "k", "v")
		})
	}
	clean := r.GetOrLoadFile(filepath.Join(dir, "clean.ini"))

	n := r.SaveChangedFiles("test teardown")
	assert.Equal(t, 4, n)
	assert.False(t, clean.IsDirty())
	for i := 0; i < 3; i++ {
		_, err := os.Stat(filepath.Join(dir, fmt.Sprintf("f%d.ini", i)))
		assert.NoError(t, err)
	}
}

func TestConcurrentReadersAndWriters(t *testing.T) {
	r := newTestRegistry(types.DefaultOptions())
	f := r.GetOrLoadFile(filepath.Join(t.TempDir(), "conc.ini"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				f.Write(func(doc *inidoc.Document) bool {
					return doc.SetValue("S", fmt.Sprintf("k%d", i), fmt.Sprintf("v%d", j))
				})
			}
		}(i)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				f.Read(func(doc *inidoc.Document) {
					doc.QueryValue("S", fmt.Sprintf("k%d", i))
				})
			}
		}(i)
	}
	wg.Wait()

	// After all writers finish, every key holds exactly its final value.
	f.Read(func(doc *inidoc.Document) {
		for i := 0; i < 8; i++ {
			v, ok := doc.QueryValue("S", fmt.Sprintf("k%d", i))
			assert.True(t, ok)
			assert.Equal(t, "v49", v)
		}
	})
}

func TestIsInitialThread(t *testing.T) {
	r := newTestRegistry(types.DefaultOptions())
	assert.True(t, r.IsInitialThread(r.InitialThreadID()))
	assert.False(t, r.IsInitialThread(r.InitialThreadID()+1))
}
