package discord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threedocs/threedocs/discord"
)

func TestBinder_BindAndLookup(t *testing.T) {
	t.Parallel()

	binder := discord.NewBinder()
	token := discord.Token{Command: "docs", Query: "a very long query"}

	key := binder.Bind(token)
	require.NotEmpty(t, key)

	got, ok := binder.Lookup(key)
	require.True(t, ok)
	assert.Equal(t, token, got)
}

func TestBinder_KeysAreUnique(t *testing.T) {
	t.Parallel()

	binder := discord.NewBinder()

	k1 := binder.Bind(discord.Token{Command: "docs", Query: "one"})
	k2 := binder.Bind(discord.Token{Command: "docs", Query: "two"})
	require.NotEqual(t, k1, k2)

	got, ok := binder.Lookup(k1)
	require.True(t, ok)
	assert.Equal(t, "one", got.Query)
}

func TestBinder_LookupUnknownKey(t *testing.T) {
	t.Parallel()

	binder := discord.NewBinder()

	_, ok := binder.Lookup("nope")
	assert.False(t, ok)
}
