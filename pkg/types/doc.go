// Package types defines the shared API types of profilekit: the typed error
// taxonomy used across every layer and the global redirector options.
//
// It intentionally has no dependencies on the implementation packages so that
// both pkg/profile and the internal layers can import it freely.
package types
