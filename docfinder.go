// Package docfinder provides the search core of a doctor directory.
// It filters, sorts, and suggests doctors from a collection fetched once,
// and keeps the filter state serializable to a URL query string so that
// searches can be shared and navigated with back/forward.
//
// This package contains domain types, pure functions, and interfaces
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/,
// patricia/, slog/).
package docfinder
