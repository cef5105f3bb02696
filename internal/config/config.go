// Package config loads the redirector's own settings file. The redirector
// configures itself from the same kind of INI text it serves: a [General]
// section of integer-boolean switches, absent file meaning all defaults.
package config

import (
	"os"
	"strconv"

	"github.com/mirrorworks/profilekit/internal/inidoc"
	"github.com/mirrorworks/profilekit/pkg/types"
)

// DefaultPath is where the settings file is looked up when the host supplies
// no explicit path.
const DefaultPath = "ProfileRedirector.ini"

const section = "General"

// Load reads options from the INI file at path. A missing file yields
// DefaultOptions with no error; an unreadable value keeps its default.
func Load(path string) (types.Options, error) {
	opts := types.DefaultOptions()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return opts, nil
	}
	doc, err := inidoc.Load(path, inidoc.Options{})
	if err != nil {
		return opts, err
	}

	opts.SaveOnWrite = boolOption(doc, "SaveOnWrite", opts.SaveOnWrite)
	opts.SaveOnThreadDetach = boolOption(doc, "SaveOnThreadDetach", opts.SaveOnThreadDetach)
	opts.SaveOnProcessDetach = boolOption(doc, "SaveOnProcessDetach", opts.SaveOnProcessDetach)
	opts.NativeWrite = boolOption(doc, "NativeWrite", opts.NativeWrite)
	opts.TrimValueQuotes = boolOption(doc, "TrimValueQuotes", opts.TrimValueQuotes)
	opts.ProcessInlineComments = boolOption(doc, "ProcessInlineComments", opts.ProcessInlineComments)
	opts.ANSICodePage = intOption(doc, "ANSICodePage", opts.ANSICodePage)
	opts.LogEnabled = boolOption(doc, "EnableLog", opts.LogEnabled)
	if v, ok := doc.QueryValue(section, "LogPath"); ok && v != "" {
		opts.LogPath = v
	}

	return opts, nil
}

// boolOption reads an integer-boolean ("0"/"1", the legacy convention).
func boolOption(doc *inidoc.Document, key string, def bool) bool {
	n, ok := parseInt(doc, key)
	if !ok {
		return def
	}
	return n != 0
}

func intOption(doc *inidoc.Document, key string, def int) int {
	n, ok := parseInt(doc, key)
	if !ok {
		return def
	}
	return int(n)
}

func parseInt(doc *inidoc.Document, key string) (int64, bool) {
	v, ok := doc.QueryValue(section, key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 0, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
