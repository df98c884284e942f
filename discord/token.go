package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/threedocs/threedocs"
)

// CustomIDLimit is the platform's maximum component custom ID length.
const CustomIDLimit = 100

// Token carries everything a component handler needs to reproduce a page
// without re-running the original command: the command, its query, and
// the target page index. Paging never changes the match set, only which
// slice of it is shown.
type Token struct {
	Command string
	Query   string
	Page    int
}

// CustomID encodes the token into a component custom ID for the given
// control. The second return value is false when the encoded form would
// exceed CustomIDLimit; callers then fall back to a server-side binding.
func (t Token) CustomID(c threedocs.Control) (string, bool) {
	id := fmt.Sprintf("q:%s:%d:%s:%s", c, t.Page, t.Command, t.Query)
	return id, len(id) <= CustomIDLimit
}

// BoundCustomID encodes a server-side binding reference for the given
// control: the binder key stands in for the command and query.
func BoundCustomID(c threedocs.Control, page int, key string) string {
	return fmt.Sprintf("b:%s:%d:%s", c, page, key)
}

// ParsedID is a decoded component custom ID.
type ParsedID struct {
	Bound   bool
	Control threedocs.Control
	Page    int

	// Command and Query are set for stateless IDs.
	Command string
	Query   string

	// Key references a server-side binding when Bound is true.
	Key string
}

// ParseCustomID decodes a custom ID produced by Token.CustomID or
// BoundCustomID.
func ParseCustomID(id string) (ParsedID, error) {
	parts := strings.SplitN(id, ":", 5)
	if len(parts) < 4 {
		return ParsedID{}, threedocs.Errorf(threedocs.EINVALID, "malformed custom ID %q", id)
	}

	control, err := parseControl(parts[1])
	if err != nil {
		return ParsedID{}, err
	}
	page, err := strconv.Atoi(parts[2])
	if err != nil {
		return ParsedID{}, threedocs.Errorf(threedocs.EINVALID, "malformed page in custom ID %q", id)
	}

	switch parts[0] {
	case "q":
		if len(parts) != 5 {
			return ParsedID{}, threedocs.Errorf(threedocs.EINVALID, "malformed custom ID %q", id)
		}
		return ParsedID{Control: control, Page: page, Command: parts[3], Query: parts[4]}, nil
	case "b":
		return ParsedID{Bound: true, Control: control, Page: page, Key: parts[3]}, nil
	}
	return ParsedID{}, threedocs.Errorf(threedocs.EINVALID, "unknown custom ID scheme %q", parts[0])
}

func parseControl(s string) (threedocs.Control, error) {
	for _, c := range threedocs.Controls {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, threedocs.Errorf(threedocs.EINVALID, "unknown control %q", s)
}
