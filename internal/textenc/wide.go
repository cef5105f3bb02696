package textenc

import "unicode/utf16"

// Wide converts between UTF-16 code units and canonical UTF-8. Unpaired
// surrogates decode to U+FFFD; utf16.Decode already guarantees that, which
// keeps the codec total.
type Wide struct{}

func NewWide() *Wide { return &Wide{} }

func (*Wide) Decode(s []uint16) string {
	return string(utf16.Decode(s))
}

func (*Wide) Encode(s string) []uint16 {
	return utf16.Encode([]rune(s))
}
