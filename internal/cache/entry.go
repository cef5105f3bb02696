package cache

import (
	"log/slog"
	"sync"

	"github.com/mirrorworks/profilekit/internal/inidoc"
)

// ConfigFile is one cached profile file: its parsed document, the path it was
// loaded from, a dirty flag set on mutation, and an existence flag recording
// whether the file was on disk at load time.
//
// Every access to the document goes through Read or Write, which hold the
// entry's reader/writer lock. Locking is entry-scoped: operations on
// different files never serialize against each other.
type ConfigFile struct {
	mu           sync.RWMutex
	doc          *inidoc.Document
	path         string
	dirty        bool
	existsOnDisk bool
	saveOnWrite  bool
	log          *slog.Logger
}

// newConfigFile creates the entry and performs its one-time load. Load
// failure is not fatal: the entry starts with an empty document and
// existsOnDisk=false, and the file is created on first save.
func newConfigFile(path string, docOpts inidoc.Options, saveOnWrite bool, log *slog.Logger) *ConfigFile {
	c := &ConfigFile{path: path, saveOnWrite: saveOnWrite, log: log}

	doc, err := inidoc.Load(path, docOpts)
	if err != nil {
		c.doc = inidoc.New(docOpts)
		c.log.Debug("file absent or unparsable, using empty document", "path", path, "error", err.Error())
		return c
	}
	c.doc = doc
	c.existsOnDisk = true
	c.log.Debug("file loaded", "path", path)
	return c
}

// Read runs fn with the document under the shared lock.
func (c *ConfigFile) Read(fn func(doc *inidoc.Document)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn(c.doc)
}

// Write runs fn with the document under the exclusive lock. A true return
// means fn structurally changed the document: the entry is marked dirty and,
// when the save-on-write policy is active, saved immediately. A false return
// leaves the dirty flag untouched, so idempotent writes trigger no disk
// churn.
func (c *ConfigFile) Write(fn func(doc *inidoc.Document) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !fn(c.doc) {
		return
	}
	c.dirty = true
	if c.saveOnWrite {
		c.saveLocked(true)
	}
}

// Flush saves the document if it is dirty. Used by teardown and the
// thread-detach policy.
func (c *ConfigFile) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dirty {
		c.saveLocked(false)
	}
}

// saveLocked serializes the document to disk. Failure is advisory: it is
// logged and the entry stays dirty for a later retry.
func (c *ConfigFile) saveLocked(fromWrite bool) {
	if err := c.doc.SaveTo(c.path); err != nil {
		c.log.Warn("save failed, entry stays dirty", "path", c.path, "fromWrite", fromWrite, "error", err.Error())
		return
	}
	c.dirty = false
	c.existsOnDisk = true
	c.log.Debug("file saved", "path", c.path, "fromWrite", fromWrite)
}

// Path returns the path the entry loads from and saves to.
func (c *ConfigFile) Path() string { return c.path }

// IsDirty reports whether the entry has unsaved mutations.
func (c *ConfigFile) IsDirty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dirty
}

// ExistsOnDisk reports whether the file existed when the entry was created
// or has been saved since.
func (c *ConfigFile) ExistsOnDisk() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.existsOnDisk
}
