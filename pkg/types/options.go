package types

import "log/slog"

// Options holds the global redirector policy switches. They are normally
// loaded from the redirector's own INI file (see internal/config) and fixed
// for the lifetime of the instance.
type Options struct {
	// SaveOnWrite flushes a cached file to disk immediately after every
	// mutating write that changed the document.
	SaveOnWrite bool

	// SaveOnThreadDetach flushes all dirty cached files whenever a thread
	// other than the initializing thread detaches from the process.
	SaveOnThreadDetach bool

	// SaveOnProcessDetach flushes all dirty cached files when the redirector
	// instance is destroyed.
	SaveOnProcessDetach bool

	// NativeWrite forwards every write to the original (un-redirected) API in
	// addition to the in-memory update, so the on-disk file is maintained by
	// the native implementation regardless of the cache's own save policy.
	NativeWrite bool

	// TrimValueQuotes strips matching surrounding quotes from values when a
	// document is parsed.
	TrimValueQuotes bool

	// ProcessInlineComments treats ';' and '#' in the middle of a value line
	// as a comment start when parsing. Off by default: many legacy files use
	// those characters in values.
	ProcessInlineComments bool

	// ANSICodePage selects the code page for the narrow (A) handler variants.
	// Zero means Windows-1252.
	ANSICodePage int

	// LogEnabled turns on trace logging to LogPath.
	LogEnabled bool

	// LogPath is the trace log destination. Empty means a default file next
	// to the working directory.
	LogPath string

	// LogLevel is the minimum level written when logging is enabled.
	LogLevel slog.Level
}

// DefaultOptions returns the policy used when no configuration file exists.
func DefaultOptions() Options {
	return Options{ANSICodePage: 1252}
}
