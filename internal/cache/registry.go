package cache

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mirrorworks/profilekit/internal/inidoc"
	"github.com/mirrorworks/profilekit/internal/logger"
	"github.com/mirrorworks/profilekit/pkg/types"
)

// Registry owns the path-keyed collection of cache entries, the global
// policy flags, and the identity of the thread that created it. Entries are
// never evicted; they live until the registry is torn down.
type Registry struct {
	mu    sync.Mutex // guards files; never held across a load or an entry lock
	files map[string]*ConfigFile

	opts     types.Options
	docOpts  inidoc.Options
	log      *slog.Logger
	threadID uint32
}

// NewRegistry builds an empty registry with the given policy. The calling
// thread is recorded as the initializing thread.
func NewRegistry(opts types.Options, log *slog.Logger) *Registry {
	if log == nil {
		log = logger.Discard
	}
	return &Registry{
		files: make(map[string]*ConfigFile),
		opts:  opts,
		docOpts: inidoc.Options{
			TrimValueQuotes:       opts.TrimValueQuotes,
			ProcessInlineComments: opts.ProcessInlineComments,
		},
		log:      logger.WithCategory(log, "Registry"),
		threadID: currentThreadID(),
	}
}

// NormalizePath produces the cache key for a file path. Path equality is
// case-insensitive, matching the platform the legacy API comes from.
func NormalizePath(path string) string {
	return strings.ToLower(filepath.Clean(path))
}

// GetOrLoadFile returns the cache entry for path, creating and loading it on
// first reference. At most one entry per normalized path ever survives: the
// load runs outside the map lock so unrelated paths are not serialized behind
// disk I/O, and a concurrent loser of the insertion race discards its freshly
// constructed entry in favor of the winner's.
func (r *Registry) GetOrLoadFile(path string) *ConfigFile {
	key := NormalizePath(path)

	r.mu.Lock()
	f, ok := r.files[key]
	r.mu.Unlock()
	if ok {
		return f
	}

	fresh := newConfigFile(path, r.docOpts, r.opts.SaveOnWrite, r.log)

	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.files[key]; ok {
		return f
	}
	r.files[key] = fresh
	return fresh
}

// SaveChangedFiles flushes every dirty entry, best-effort, and returns how
// many entries were inspected. Used at teardown and by the thread-detach
// policy.
func (r *Registry) SaveChangedFiles(reason string) int {
	r.mu.Lock()
	entries := make([]*ConfigFile, 0, len(r.files))
	for _, f := range r.files {
		entries = append(entries, f)
	}
	r.mu.Unlock()

	dirty := 0
	for _, f := range entries {
		if f.IsDirty() {
			dirty++
		}
		f.Flush()
	}
	r.log.Info("flushed changed files", "reason", reason, "entries", len(entries), "dirty", dirty)
	return len(entries)
}

// Paths returns the normalized paths currently cached, for diagnostics.
func (r *Registry) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	paths := make([]string, 0, len(r.files))
	for key := range r.files {
		paths = append(paths, key)
	}
	return paths
}

// Options returns the registry's policy flags.
func (r *Registry) Options() types.Options { return r.opts }

// IsInitialThread reports whether id is the thread that created the
// registry. Thread identity only matters for the thread-detach save hook; it
// has no bearing on cache correctness.
func (r *Registry) IsInitialThread(id uint32) bool { return r.threadID == id }

// InitialThreadID returns the recorded creator thread id (0 where the
// platform has no native thread identity).
func (r *Registry) InitialThreadID() uint32 { return r.threadID }
