package threedocs

import "strings"

// Entry represents a normalized catalog record: a documentation class,
// one of its methods or properties, or an example from the gallery.
// Entries are created in bulk during a corpus refresh and are immutable
// afterwards.
type Entry struct {
	// Name is the canonical lookup key. It is compared case-insensitively;
	// example names join multi-word titles with underscores.
	Name string `json:"name"`

	// Title is the human-readable signature, e.g.
	// "Vector3( x: Float, y: Float, z: Float )".
	Title string `json:"title"`

	// URL is the deep link into the documentation site, unique within
	// a collection.
	URL string `json:"url"`

	// Description is normalized markdown. May be empty.
	Description string `json:"description,omitempty"`

	// Tags classify examples; derived from the underscore-split name
	// tokens unioned with manifest-supplied tags. Empty for docs.
	Tags []string `json:"tags,omitempty"`

	// Thumbnail is a preview image URL, set for examples only.
	Thumbnail string `json:"thumbnail,omitempty"`

	// Properties lists child entries (methods and properties of a
	// class) in document order. Empty for leaf entries and examples.
	Properties []*Entry `json:"properties,omitempty"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "entry name required")
	}
	if e.URL == "" {
		return Errorf(EINVALID, "entry URL required")
	}
	return nil
}

// HasTag reports whether the entry carries the given tag,
// compared case-insensitively.
func (e *Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
