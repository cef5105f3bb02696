//go:build !windows

package hook

// ResolveKernel32 has nothing to resolve off Windows; every name is reported
// missing and the redirector runs cache-only.
func ResolveKernel32(names ...string) (map[string]uintptr, []string) {
	return map[string]uintptr{}, names
}
