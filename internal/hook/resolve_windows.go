//go:build windows

package hook

import "golang.org/x/sys/windows"

// ResolveKernel32 resolves the addresses of kernel32 exports by name.
// Unresolvable names are reported in missing rather than failing the rest;
// the corresponding entry points simply stay un-intercepted.
func ResolveKernel32(names ...string) (resolved map[string]uintptr, missing []string) {
	k32 := windows.NewLazySystemDLL("kernel32.dll")
	resolved = make(map[string]uintptr, len(names))
	for _, name := range names {
		proc := k32.NewProc(name)
		if err := proc.Find(); err != nil {
			missing = append(missing, name)
			continue
		}
		resolved[name] = proc.Addr()
	}
	return resolved, missing
}
