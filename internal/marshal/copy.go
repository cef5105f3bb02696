package marshal

import "github.com/mirrorworks/profilekit/pkg/types"

// Char is the character element of a legacy caller buffer: bytes for the
// narrow (A) API variants, uint16 code units for the wide (W) variants.
type Char interface {
	~uint8 | ~uint16
}

// CopyBuffer copies src into the fixed-capacity dst under the legacy API's
// truncation rules. dst is always zero-filled first, so callers never observe
// stale contents past the copied region. The returned count is the number of
// characters copied from src.
//
// Exactly one of three outcomes applies:
//   - len(dst) > len(src): the copy fits with room for a terminator → nil.
//   - len(dst) == len(src) and the last copied character is already zero:
//     the data arrived pre-terminated → nil.
//   - otherwise the last writable character is overwritten with a terminator
//     and ErrInsufficientBuffer is returned. Output is truncated but always
//     null-terminated, never overrun.
//
// Callers distinguish "fits" from "truncated" through this error together
// with the reported length; both channels must stay faithful to the original
// contract.
func CopyBuffer[C Char](dst, src []C) (int, error) {
	if dst == nil || src == nil {
		return 0, types.ErrInvalidArgument
	}

	clear(dst)

	n := min(len(dst), len(src))
	if n == 0 {
		// Nothing to copy: either capacity or source is zero sized. The
		// destination is zeroed out anyway, whatever size it is.
		return 0, nil
	}
	copy(dst, src[:n])

	switch {
	case len(dst) > len(src):
		dst[len(src)] = 0
		return n, nil
	case len(dst) == len(src) && dst[n-1] == 0:
		// Already terminated by the copied data itself; an exact fit is not
		// an insufficient buffer.
		return n, nil
	default:
		dst[n-1] = 0
		return n, types.ErrInsufficientBuffer
	}
}
