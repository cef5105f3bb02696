// Package hook is the interception engine: it walks an ordered set of
// (target, replacement, name) bindings and attaches or detaches them through
// an injected binary-patching capability, treating every binding as
// independent so partial interception degrades gracefully.
package hook
