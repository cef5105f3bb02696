package textenc

import "github.com/mirrorworks/profilekit/internal/marshal"

// Codec converts between a caller-side character representation and the
// canonical UTF-8 text used for all cache storage and lookups.
//
// Both directions are total: malformed input degrades to replacement
// characters instead of failing, because the legacy API has no error channel
// for encoding problems.
type Codec[C marshal.Char] interface {
	Decode(s []C) string
	Encode(s string) []C
}

// CutNull returns s up to (excluding) its first terminator. Inputs arriving
// from ABI-style callers may carry an embedded terminator; cache keys must
// not.
func CutNull[C marshal.Char](s []C) []C {
	for i, c := range s {
		if c == 0 {
			return s[:i]
		}
	}
	return s
}

func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}
