//go:build !windows

package cache

// currentThreadID has no meaningful value off Windows; detach hooks are a
// Windows process-lifecycle concept.
func currentThreadID() uint32 {
	return 0
}
