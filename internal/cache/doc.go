// Package cache implements the in-process configuration cache behind the
// redirected profile API: one lazily loaded, reader/writer-locked entry per
// file path, collected in a registry that guarantees exactly one entry per
// normalized path and carries the global write-back policy.
package cache
