package threedocs

import (
	"sort"
	"strings"
)

// NormalizeQuery lowercases a query and joins whitespace runs with
// underscores, matching the canonical form of entry names (example names
// are underscore-joined; doc names contain no whitespace).
func NormalizeQuery(query string) string {
	fields := strings.Fields(strings.ToLower(query))
	return strings.Join(fields, "_")
}

// Search returns the entries in collection matching query.
//
// An entry whose name equals the normalized query (case-insensitively)
// short-circuits the search and is returned alone: exact matches take
// absolute priority over fuzzy matches. Otherwise every entry whose name
// contains the query's characters in order (with anything in between) is
// returned, sorted alphabetically by name. An empty query matches
// nothing. The returned slice shares entries with the collection.
func Search(collection []*Entry, query string) []*Entry {
	norm := NormalizeQuery(query)
	if norm == "" {
		return nil
	}

	for _, entry := range collection {
		if strings.EqualFold(entry.Name, norm) {
			return []*Entry{entry}
		}
	}

	var results []*Entry
	for _, entry := range collection {
		if containsSubsequence(strings.ToLower(entry.Name), norm) {
			results = append(results, entry)
		}
	}

	sortByName(results)
	return results
}

// SearchExamples returns the examples matching query. An exact name
// match short-circuits as in Search. Otherwise every entry carrying
// each whitespace-separated word of the query as a tag matches; when no
// entry carries all the words, name subsequence matching is the
// fallback. Results are sorted alphabetically by name.
func SearchExamples(collection []*Entry, query string) []*Entry {
	norm := NormalizeQuery(query)
	if norm == "" {
		return nil
	}

	for _, entry := range collection {
		if strings.EqualFold(entry.Name, norm) {
			return []*Entry{entry}
		}
	}

	words := strings.Fields(strings.ToLower(query))
	var results []*Entry
	for _, entry := range collection {
		tagged := true
		for _, w := range words {
			if !entry.HasTag(w) {
				tagged = false
				break
			}
		}
		if tagged {
			results = append(results, entry)
		}
	}

	if len(results) == 0 {
		for _, entry := range collection {
			if containsSubsequence(strings.ToLower(entry.Name), norm) {
				results = append(results, entry)
			}
		}
	}

	sortByName(results)
	return results
}

// sortByName orders entries alphabetically, keeping collection order
// for ties.
func sortByName(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}

// containsSubsequence reports whether all characters of pattern appear
// in s in order, not necessarily adjacent.
func containsSubsequence(s, pattern string) bool {
	i := 0
	for _, r := range pattern {
		rest := strings.IndexRune(s[i:], r)
		if rest < 0 {
			return false
		}
		i += rest + len(string(r))
	}
	return true
}

// SplitQuery splits a compound query into its object and property parts
// at the first run of '.' or '#' separators. The property part may
// itself contain further separators; it is resolved as a whole against
// the object's properties. A query without separators has an empty
// property part.
func SplitQuery(query string) (object, property string) {
	i := strings.IndexAny(query, ".#")
	if i < 0 {
		return query, ""
	}
	object = query[:i]
	property = strings.TrimLeft(query[i:], ".#")
	return object, property
}

// ResolutionKind classifies the outcome of resolving a query.
type ResolutionKind int

const (
	// ResolutionNoMatch means nothing matched at the top level.
	ResolutionNoMatch ResolutionKind = iota

	// ResolutionMatch means exactly one entry matched.
	ResolutionMatch

	// ResolutionAmbiguous means more than one candidate matched, at
	// either resolution level.
	ResolutionAmbiguous

	// ResolutionUnknownProperty means the top-level entry resolved but
	// the requested property is not recognized on it.
	ResolutionUnknownProperty
)

// Resolution is the outcome of resolving a (possibly compound) query.
type Resolution struct {
	Kind     ResolutionKind
	Query    string // original query text
	Property string // requested property text, if any

	// Entry is the resolved entry for ResolutionMatch, or the known
	// parent for ResolutionUnknownProperty.
	Entry *Entry

	// Parent is set when Entry or Matches are property-level results.
	Parent *Entry

	// Matches holds the candidates for ResolutionAmbiguous.
	Matches []*Entry
}

// Resolve resolves query against collection, drilling down into an
// entry's properties when the query contains a '.' or '#' separator.
// Both passes use the identical search algorithm, including its
// exact-match priority.
func Resolve(collection []*Entry, query string) Resolution {
	object, property := SplitQuery(query)
	res := Resolution{Kind: ResolutionNoMatch, Query: query, Property: property}

	// A query of only separator characters resolves to an empty object.
	if NormalizeQuery(object) == "" {
		return res
	}

	results := Search(collection, object)
	switch len(results) {
	case 0:
		return res
	case 1:
	default:
		res.Kind = ResolutionAmbiguous
		res.Matches = results
		return res
	}

	entry := results[0]
	if property == "" {
		res.Kind = ResolutionMatch
		res.Entry = entry
		return res
	}

	res.Parent = entry
	props := Search(entry.Properties, property)
	switch len(props) {
	case 0:
		res.Kind = ResolutionUnknownProperty
		res.Entry = entry
	case 1:
		res.Kind = ResolutionMatch
		res.Entry = props[0]
	default:
		res.Kind = ResolutionAmbiguous
		res.Matches = props
	}
	return res
}

// ResolveExamples resolves query against the example collection using
// SearchExamples. Examples are leaf entries, so there is no property
// drill-down.
func ResolveExamples(collection []*Entry, query string) Resolution {
	res := Resolution{Kind: ResolutionNoMatch, Query: query}
	if NormalizeQuery(query) == "" {
		return res
	}

	results := SearchExamples(collection, query)
	switch len(results) {
	case 0:
	case 1:
		res.Kind = ResolutionMatch
		res.Entry = results[0]
	default:
		res.Kind = ResolutionAmbiguous
		res.Matches = results
	}
	return res
}
