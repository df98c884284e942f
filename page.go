package threedocs

import "fmt"

// PageSize is the number of rendered lines per page.
const PageSize = 10

// Control identifies one of the four navigation controls attached to a
// paged message.
type Control int

const (
	ControlFirst Control = iota
	ControlPrevious
	ControlNext
	ControlLast
)

// String returns the control's stable identifier, used as part of the
// component custom ID.
func (c Control) String() string {
	switch c {
	case ControlFirst:
		return "first"
	case ControlPrevious:
		return "previous"
	case ControlNext:
		return "next"
	case ControlLast:
		return "last"
	}
	return "unknown"
}

// Controls lists the navigation controls in display order.
var Controls = []Control{ControlFirst, ControlPrevious, ControlNext, ControlLast}

// Page is a fixed-size slice of an oversized line list. Activating a
// navigation control reproduces the page derivation from the same
// inputs; paging never changes the underlying match set, only which
// slice of it is shown.
type Page struct {
	// Lines holds this page's rendered lines, between 1 and PageSize
	// of them (zero only when the source list was empty).
	Lines []string

	// Index is the 0-based page number.
	Index int

	// Total is the page count.
	Total int
}

// Paginate slices lines into pages of PageSize and returns the page at
// index page. Out-of-range page values are clamped to the valid range.
func Paginate(lines []string, page int) Page {
	total := (len(lines) + PageSize - 1) / PageSize
	if total == 0 {
		return Page{}
	}

	if page < 0 {
		page = 0
	} else if page > total-1 {
		page = total - 1
	}

	start := page * PageSize
	end := start + PageSize
	if end > len(lines) {
		end = len(lines)
	}

	return Page{
		Lines: lines[start:end],
		Index: page,
		Total: total,
	}
}

// Footer renders the 1-based page indicator for display under the page.
func (p Page) Footer() string {
	return fmt.Sprintf("Page %d of %d", p.Index+1, p.Total)
}

// Target returns the page index the control navigates to from this page.
func (p Page) Target(c Control) int {
	switch c {
	case ControlFirst:
		return 0
	case ControlPrevious:
		if p.Index > 0 {
			return p.Index - 1
		}
		return 0
	case ControlNext:
		if p.Index < p.Total-1 {
			return p.Index + 1
		}
	case ControlLast:
	}
	return p.Total - 1
}

// Disabled reports whether activating the control would be a no-op at
// the current boundary, e.g. "previous" on the first page.
func (p Page) Disabled(c Control) bool {
	switch c {
	case ControlFirst, ControlPrevious:
		return p.Index == 0
	default:
		return p.Index >= p.Total-1
	}
}

// Paged reports whether this page needs navigation controls at all.
// Single-page results emit no controls.
func (p Page) Paged() bool {
	return p.Total > 1
}
