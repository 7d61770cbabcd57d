package docfinder

// Navigator is the address bar of the host environment. It holds the query
// of the current history entry and reports back/forward navigation.
type Navigator interface {
	// Query returns the query string of the current entry, without "?".
	Query() string

	// ReplaceQuery rewrites the query of the current entry in place.
	// No new history entry is created.
	ReplaceQuery(query string)

	// Subscribe registers fn to receive the query of the entry reached by
	// each back/forward navigation. ReplaceQuery does not notify.
	// The returned function removes the subscription.
	Subscribe(fn func(query string)) (cancel func())
}
