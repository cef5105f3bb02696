// Package marshal reproduces the byte-buffer contract of the legacy profile
// API: copying character sequences into caller-supplied fixed-size buffers
// with the original truncate-and-terminate policy, and building the
// double-null-terminated lists used by enumeration results.
//
// All functions are generic over the character width so the narrow and wide
// handler variants share one implementation.
package marshal
