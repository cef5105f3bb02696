package profile

import (
	"log/slog"

	"github.com/mirrorworks/profilekit/internal/hook"
	"github.com/mirrorworks/profilekit/internal/logger"
)

// KernelBindings resolves the legacy profile entry points in kernel32 and
// pairs each with the host-supplied replacement address, keyed by export
// name. Entry points that cannot be resolved, or for which the host supplies
// no replacement, are skipped and logged; off Windows the result is empty.
func KernelBindings(replacements map[string]uintptr, log *slog.Logger) []*hook.Binding {
	log = logger.WithCategory(log, "KernelBindings")

	resolved, missing := hook.ResolveKernel32(hook.ProfileEntryPoints()...)
	for _, name := range missing {
		log.Warn("entry point not resolved, staying un-intercepted", "function", name)
	}

	bindings := make([]*hook.Binding, 0, len(resolved))
	for _, name := range hook.ProfileEntryPoints() {
		target, ok := resolved[name]
		if !ok {
			continue
		}
		replacement, ok := replacements[name]
		if !ok {
			log.Warn("no replacement supplied", "function", name)
			continue
		}
		bindings = append(bindings, &hook.Binding{Name: name, Target: target, Replacement: replacement})
	}
	return bindings
}
