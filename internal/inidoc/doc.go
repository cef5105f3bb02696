// Package inidoc adapts gopkg.in/ini.v1 to the narrow document surface the
// redirector consumes: query/set/delete of section-scoped keys, section and
// key enumeration in file order, and load/save against standard INI text.
// The redirector defines no on-disk format of its own.
package inidoc
