// Package profile implements the redirected handlers of the legacy profile
// API: read string, read integer, enumerate sections, enumerate keys, read a
// section as a key=value block, and write (set/delete) — each in a narrow
// (ANSI byte) and wide (UTF-16) variant sharing one generic implementation.
//
// Instead of touching the file on every call, handlers resolve the target
// file to a cached parsed document, operate on it under the entry's
// reader/writer lock, and reproduce the original API's buffer truncation,
// return-value, and double-null-list semantics exactly, so callers cannot
// observe the substitution.
//
// The package also owns the process-scoped instance lifecycle: CreateInstance
// wires the cache, codecs, logging, and (when a patcher is injected) the
// interception bindings; DestroyInstance detaches and flushes.
package profile
