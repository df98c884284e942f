package rod_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threedocs/threedocs/mock"
	"github.com/threedocs/threedocs/rod"
)

func TestLoggingFetcher_LogsFetch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	var closed bool
	fetcher := rod.NewLoggingFetcher(&mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return "<html></html>", nil
		},
		CloseFn: func() error {
			closed = true
			return nil
		},
	}, logger)

	html, err := fetcher.Fetch(context.Background(), "https://threejs.org/docs/api/en/math/Vector3.html")
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", html)

	out := buf.String()
	assert.Contains(t, out, "msg=fetch")
	assert.Contains(t, out, "Vector3.html")
	assert.Contains(t, out, "bytes=13")

	require.NoError(t, fetcher.Close())
	assert.True(t, closed)
}
