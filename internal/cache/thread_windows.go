//go:build windows

package cache

import "golang.org/x/sys/windows"

// currentThreadID returns the native thread identity used to recognize the
// initializing thread in detach hooks.
func currentThreadID() uint32 {
	return windows.GetCurrentThreadId()
}
