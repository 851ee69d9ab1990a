// Package docserve provides a local documentation browser. It scans a
// directory tree for markdown and plain-text documents at startup, builds an
// in-memory navigation tree and a simple substring search index, and serves
// rendered views over HTTP.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, goldmark/, http/).
package docserve
