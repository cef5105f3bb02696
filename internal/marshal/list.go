package marshal

// BuildList assembles a double-null-terminated list: every item followed by a
// terminator, plus one extra terminator after the last item. An empty list is
// a single terminator.
//
// capacity is the caller's buffer capacity in characters. Items are appended
// whole: if the next item (with its terminator and the final terminator)
// would no longer fit, assembly stops early and truncated is reported. The
// returned list is always well formed regardless of truncation.
//
// item returns the encoded text for index i and whether to include it at all;
// excluded items do not count against capacity or the returned count. This
// lets section-block enumeration drop keys whose value lookup comes back
// empty-handed.
func BuildList[C Char](capacity, n int, item func(i int) ([]C, bool)) (list []C, count int, truncated bool) {
	list = make([]C, 0, min(capacity, 256))

	for i := 0; i < n; i++ {
		s, ok := item(i)
		if !ok {
			continue
		}
		// +1 for this item's terminator, +1 for the final list terminator.
		if len(list)+len(s)+2 > capacity {
			truncated = true
			break
		}
		list = append(list, s...)
		list = append(list, 0)
		count++
	}

	list = append(list, 0)
	return list, count, truncated
}

// SplitList decomposes a double-null-terminated list back into its items.
// Used by tests and by callers that consume enumeration results.
func SplitList[C Char](list []C) [][]C {
	var items [][]C
	start := 0
	for i := 0; i < len(list); i++ {
		if list[i] != 0 {
			continue
		}
		if i == start {
			break
		}
		items = append(items, list[start:i])
		start = i + 1
	}
	return items
}
