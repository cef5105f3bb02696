package inidoc

import (
	"gopkg.in/ini.v1"

	"github.com/mirrorworks/profilekit/pkg/types"
)

func init() {
	// Legacy profile files are written as "key=value" with no alignment
	// padding; the parser's pretty formatting would rewrite every line.
	ini.PrettyFormat = false
}

// Options controls parse behavior for a document. They correspond to the
// redirector's TrimValueQuotes and ProcessInlineComments policies.
type Options struct {
	TrimValueQuotes       bool
	ProcessInlineComments bool
}

func (o Options) loadOptions() ini.LoadOptions {
	return ini.LoadOptions{
		IgnoreInlineComment:     !o.ProcessInlineComments,
		PreserveSurroundedQuote: !o.TrimValueQuotes,
		// Old profile files accumulate junk lines; skip them instead of
		// rejecting the whole file.
		SkipUnrecognizableLines: true,
	}
}

// Document is one parsed profile file: sections of ordered key=value pairs.
// It is not safe for concurrent use; the owning cache entry serializes access.
type Document struct {
	f *ini.File
}

// New returns an empty document.
func New(opts Options) *Document {
	return &Document{f: ini.Empty(opts.loadOptions())}
}

// Load parses the file at path. A missing or unparsable file is an error;
// the caller decides whether that is fatal (for the cache it is not).
func Load(path string, opts Options) (*Document, error) {
	f, err := ini.LoadSources(opts.loadOptions(), path)
	if err != nil {
		return nil, types.WrapParseIO("load "+path, err)
	}
	return &Document{f: f}, nil
}

// SaveTo serializes the document back to path, creating the file if absent.
func (d *Document) SaveTo(path string) error {
	if err := d.f.SaveTo(path); err != nil {
		return types.WrapParseIO("save "+path, err)
	}
	return nil
}

// QueryValue looks up (section, key) without creating either.
func (d *Document) QueryValue(section, key string) (string, bool) {
	sec, err := d.f.GetSection(section)
	if err != nil {
		return "", false
	}
	k, err := sec.GetKey(key)
	if err != nil {
		return "", false
	}
	return k.Value(), true
}

// SetValue assigns (section, key) = value, creating the section and key as
// needed. Assigning the value a key already holds is reported as unchanged so
// idempotent repeated writes cause no disk churn.
func (d *Document) SetValue(section, key, value string) (changed bool) {
	sec := d.f.Section(section)
	if k, err := sec.GetKey(key); err == nil {
		if k.Value() == value {
			return false
		}
		k.SetValue(value)
		return true
	}
	// NewKey fails only on an empty key name; nothing is stored then and
	// the document is unchanged.
	if _, err := sec.NewKey(key, value); err != nil {
		return false
	}
	return true
}

// DeleteKey removes one key, reporting whether it existed.
func (d *Document) DeleteKey(section, key string) bool {
	sec, err := d.f.GetSection(section)
	if err != nil {
		return false
	}
	if _, err := sec.GetKey(key); err != nil {
		return false
	}
	sec.DeleteKey(key)
	return true
}

// DeleteSection removes a whole section and its keys, reporting whether it
// existed.
func (d *Document) DeleteSection(section string) bool {
	if _, err := d.f.GetSection(section); err != nil {
		return false
	}
	d.f.DeleteSection(section)
	return true
}

// SectionNames returns all real section names in file order. The parser's
// implicit default section (keys before any [header]) is not a section the
// legacy API can observe, so it is excluded.
func (d *Document) SectionNames() []string {
	all := d.f.SectionStrings()
	names := make([]string, 0, len(all))
	for _, name := range all {
		if name == ini.DefaultSection {
			continue
		}
		names = append(names, name)
	}
	return names
}

// KeyNames returns the key names of a section in file order; nil if the
// section does not exist.
func (d *Document) KeyNames(section string) []string {
	sec, err := d.f.GetSection(section)
	if err != nil {
		return nil
	}
	return sec.KeyStrings()
}
