// Package textenc implements the boundary codecs between the legacy API's
// two caller character representations (single-byte ANSI and UTF-16) and the
// canonical UTF-8 text the cache operates on. Width-specific handlers convert
// at the boundary only; nothing below this layer sees a non-UTF-8 string.
package textenc
