package threedocs

// Extractor turns one documentation page into a structured entry.
type Extractor interface {
	// Extract parses the raw HTML of a documentation page identified by
	// key (the entry's canonical name) and returns the entry with its
	// title, description, and child properties.
	//
	// Returns EINVALID if the page has no primary heading at all; the
	// corpus loader treats such endpoints as absent rather than failing
	// the whole load.
	Extract(html, key string) (*Entry, error)
}
