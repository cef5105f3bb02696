package profile

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mirrorworks/profilekit/internal/inidoc"
	"github.com/mirrorworks/profilekit/internal/logger"
	"github.com/mirrorworks/profilekit/internal/marshal"
	"github.com/mirrorworks/profilekit/internal/textenc"
	"github.com/mirrorworks/profilekit/pkg/types"
)

// Handler argument convention: nullable legacy string parameters are nil-able
// slices. A nil slice is the legacy NULL pointer; a non-nil empty slice is an
// empty string. Buffers are plain slices whose length is the capacity in
// characters.

// getString implements the read-value operation with its two enumeration
// modes. Return value is the legacy character count:
//   - value / default: its length, or capacity-1 when truncated
//   - section or key list: list length minus the final terminator, or
//     capacity-2 when the list was truncated or did not fit
func getString[C marshal.Char](r *Redirector, cs textenc.Codec[C], category string, section, key, def, buf, file []C) (int, error) {
	log := logger.WithCategory(r.log, category)

	if file == nil {
		return 0, types.ErrFileNotFound
	}
	if buf == nil || len(buf) < 2 {
		return 0, types.ErrInsufficientBuffer
	}

	entry := r.reg.GetOrLoadFile(cs.Decode(file))

	result := 0
	entry.Read(func(doc *inidoc.Document) {
		// Enum all sections.
		if section == nil {
			names := doc.SectionNames()
			result = marshalList(log, cs, buf, len(names), func(i int) (string, bool) {
				return names[i], true
			})
			log.Debug("enumerated sections", "count", len(names), "result", result)
			return
		}
		secStr := cs.Decode(section)

		// Enum all keys in the section.
		if key == nil {
			names := doc.KeyNames(secStr)
			result = marshalList(log, cs, buf, len(names), func(i int) (string, bool) {
				return names[i], true
			})
			log.Debug("enumerated keys", "section", secStr, "count", len(names), "result", result)
			return
		}
		keyStr := cs.Decode(key)

		if v, ok := doc.QueryValue(secStr, keyStr); ok {
			src := cs.Encode(v)
			_, err := marshal.CopyBuffer(buf, src)
			result = len(src)
			if errors.Is(err, types.ErrInsufficientBuffer) {
				result = len(buf) - 1
			}
			log.Debug("value found", "section", secStr, "key", keyStr, "result", result)
			return
		}

		if def != nil {
			_, err := marshal.CopyBuffer(buf, def)
			result = len(def)
			if errors.Is(err, types.ErrInsufficientBuffer) {
				result = len(buf) - 1
			}
			log.Debug("value missing, returning default", "section", secStr, "key", keyStr, "result", result)
			return
		}

		marshal.CopyBuffer(buf, []C{0}) //nolint:errcheck
		result = 0
		log.Debug("value missing, returning empty string", "section", secStr, "key", keyStr)
	})
	return result, nil
}

// marshalList builds a double-null list of up to n items and copies it into
// buf, applying the legacy length adjustment for truncated enumerations.
func marshalList[C marshal.Char](log *slog.Logger, cs textenc.Codec[C], buf []C, n int, item func(i int) (string, bool)) int {
	list, _, truncated := marshal.BuildList(len(buf), n, func(i int) ([]C, bool) {
		s, ok := item(i)
		if !ok {
			return nil, false
		}
		return cs.Encode(s), true
	})

	_, err := marshal.CopyBuffer(buf, list)
	result := len(list) - 1
	if errors.Is(err, types.ErrInsufficientBuffer) || truncated {
		log.Debug("enumeration truncated", "capacity", len(buf))
		result = len(buf) - 2
	}
	return result
}

// getInt implements the read-integer operation. The stored text is parsed as
// a signed integer with the usual prefixes (0x hex, leading sign); anything
// unparsable falls back to the caller's default.
func getInt[C marshal.Char](r *Redirector, cs textenc.Codec[C], category string, section, key []C, def int64, file []C) (int64, error) {
	log := logger.WithCategory(r.log, category)

	if file == nil {
		return def, types.ErrFileNotFound
	}
	if section == nil || key == nil {
		return def, types.ErrInvalidArgument
	}

	entry := r.reg.GetOrLoadFile(cs.Decode(file))

	out := def
	entry.Read(func(doc *inidoc.Document) {
		secStr, keyStr := cs.Decode(section), cs.Decode(key)
		v, ok := doc.QueryValue(secStr, keyStr)
		if !ok {
			log.Debug("value missing, returning default", "section", secStr, "key", keyStr, "default", def)
			return
		}
		n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
		if err != nil {
			log.Debug("value not an integer, returning default", "section", secStr, "key", keyStr, "value", v)
			return
		}
		out = n
	})
	return out, nil
}

// getSection implements the read-section-as-block operation: a double-null
// list of key=value entries. The key names are snapshotted first and each
// value re-queried while assembling the list; a key whose value lookup comes
// back empty is discarded rather than emitted half-formed. All of it runs
// under one shared lock of the entry.
func getSection[C marshal.Char](r *Redirector, cs textenc.Codec[C], category string, section, buf, file []C) (int, error) {
	log := logger.WithCategory(r.log, category)

	if file == nil {
		return 0, types.ErrFileNotFound
	}
	if section == nil {
		return 0, types.ErrInvalidArgument
	}
	if buf == nil || len(buf) < 2 {
		return 0, types.ErrInsufficientBuffer
	}

	entry := r.reg.GetOrLoadFile(cs.Decode(file))

	result := 0
	entry.Read(func(doc *inidoc.Document) {
		secStr := cs.Decode(section)
		keys := doc.KeyNames(secStr)
		result = marshalList(log, cs, buf, len(keys), func(i int) (string, bool) {
			v, ok := doc.QueryValue(secStr, keys[i])
			if !ok {
				return "", false
			}
			return keys[i] + "=" + v, true
		})
		log.Debug("enumerated section block", "section", secStr, "keys", len(keys), "result", result)
	})
	return result, nil
}

// writeString implements the write operation and its two delete modes. The
// returned boolean reflects the in-memory outcome, unless the native-write
// passthrough policy is active, in which case the native call's outcome wins.
func writeString[C marshal.Char](r *Redirector, cs textenc.Codec[C], category string, section, key, value, file []C, native func(section, key, value, file []C) bool) (bool, error) {
	log := logger.WithCategory(r.log, category)

	memOK, memErr := writeMemory(r, cs, log, section, key, value, file)

	if r.opts.NativeWrite && native != nil {
		log.Debug("forwarding write to native entry point")
		return native(section, key, value, file), memErr
	}
	return memOK, memErr
}

func writeMemory[C marshal.Char](r *Redirector, cs textenc.Codec[C], log *slog.Logger, section, key, value, file []C) (bool, error) {
	if file == nil {
		return false, types.ErrFileNotFound
	}
	if section == nil {
		return false, types.ErrInvalidArgument
	}

	entry := r.reg.GetOrLoadFile(cs.Decode(file))
	secStr := cs.Decode(section)

	ok := false
	entry.Write(func(doc *inidoc.Document) bool {
		// Delete the entire section.
		if key == nil {
			ok = doc.DeleteSection(secStr)
			if ok {
				log.Debug("section deleted", "section", secStr)
			}
			return ok
		}
		keyStr := cs.Decode(key)

		// Delete a single key.
		if value == nil {
			ok = doc.DeleteKey(secStr, keyStr)
			if ok {
				log.Debug("key deleted", "section", secStr, "key", keyStr)
			}
			return ok
		}

		// Set the value. An identical value is accepted but not a change, so
		// it neither dirties the entry nor triggers a save.
		changed := doc.SetValue(secStr, keyStr, cs.Decode(value))
		ok = true
		if changed {
			log.Debug("value assigned", "section", secStr, "key", keyStr)
		} else {
			log.Debug("identical value, write request ignored", "section", secStr, "key", keyStr)
		}
		return changed
	})
	return ok, nil
}
