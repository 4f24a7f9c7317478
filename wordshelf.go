// Package wordshelf provides a local, CLI-based word frequency shelf for
// books. It fetches a plain-text or HTML document (typically a Project
// Gutenberg book) from a URL, ranks the most frequent long words, and
// persists the ranking by book title in a local database for later lookup.
//
// This package contains domain types, pure text analysis functions, and
// interfaces following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., sqlite/, http/).
package wordshelf
