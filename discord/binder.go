package discord

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// InteractionWindow is how long the platform keeps a message's
// components interactive. Bindings older than this can never be
// activated again, so they expire.
const InteractionWindow = 15 * time.Minute

// maxBindings caps the binding table so a burst of oversized queries
// cannot grow it without bound.
const maxBindings = 1024

// Binder holds server-side control bindings for queries too long to
// encode into a component custom ID. Entries are evicted when the
// interaction window closes. Safe for concurrent use.
type Binder struct {
	bindings *expirable.LRU[string, Token]
	seq      atomic.Uint64
}

// NewBinder creates a new Binder.
func NewBinder() *Binder {
	return &Binder{
		bindings: expirable.NewLRU[string, Token](maxBindings, nil, InteractionWindow),
	}
}

// Bind stores the token and returns the key to reference it by.
func (b *Binder) Bind(t Token) string {
	key := strconv.FormatUint(b.seq.Add(1), 36)
	b.bindings.Add(key, t)
	return key
}

// Lookup returns the token bound to key. The second return value is
// false when the key was never bound or the binding has expired.
func (b *Binder) Lookup(key string) (Token, bool) {
	return b.bindings.Get(key)
}
