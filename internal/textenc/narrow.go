package textenc

import (
	"golang.org/x/text/encoding/charmap"
)

// replacementByte stands in for runes the target code page cannot express,
// matching the native API's default-character behavior.
const replacementByte = '?'

// Narrow converts between a single-byte ANSI code page and canonical UTF-8.
type Narrow struct {
	cm *charmap.Charmap
}

// NewNarrow returns a codec for the given code page table. A nil table means
// Windows-1252.
func NewNarrow(cm *charmap.Charmap) *Narrow {
	if cm == nil {
		cm = charmap.Windows1252
	}
	return &Narrow{cm: cm}
}

func (n *Narrow) Decode(s []byte) string {
	// Fast path: ASCII needs no decoding (identical in every supported code
	// page and in UTF-8).
	if isASCII(s) {
		return string(s)
	}
	runes := make([]rune, len(s))
	for i, b := range s {
		runes[i] = n.cm.DecodeByte(b)
	}
	return string(runes)
}

func (n *Narrow) Encode(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := n.cm.EncodeRune(r)
		if !ok {
			b = replacementByte
		}
		out = append(out, b)
	}
	return out
}

// CharmapForCodePage maps a Windows ANSI code page identifier to its
// translation table. Only the single-byte "ANSI" pages are meaningful for the
// narrow profile API variants.
func CharmapForCodePage(cp int) (*charmap.Charmap, bool) {
	switch cp {
	case 0, 1252:
		return charmap.Windows1252, true
	case 874:
		return charmap.Windows874, true
	case 1250:
		return charmap.Windows1250, true
	case 1251:
		return charmap.Windows1251, true
	case 1253:
		return charmap.Windows1253, true
	case 1254:
		return charmap.Windows1254, true
	case 1255:
		return charmap.Windows1255, true
	case 1256:
		return charmap.Windows1256, true
	case 1257:
		return charmap.Windows1257, true
	case 1258:
		return charmap.Windows1258, true
	default:
		return nil, false
	}
}
