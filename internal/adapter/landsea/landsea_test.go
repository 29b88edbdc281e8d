package landsea

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A unit square of "land" from (10,10) to (11,11) lat/lon.
const squareIslandGeoJSON = `{
	"type": "FeatureCollection",
	"features": [{
		"type": "Feature",
		"properties": {},
		"geometry": {
			"type": "Polygon",
			"coordinates": [[[10, 10], [11, 10], [11, 11], [10, 11], [10, 10]]]
		}
	}]
}`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeMask(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mask.geojson")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMask(t *testing.T) {
	mask, err := LoadMask(writeMask(t, squareIslandGeoJSON))
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("point on land", func(t *testing.T) {
		ocean, err := mask.IsOcean(ctx, 10.5, 10.5)
		require.NoError(t, err)
		assert.False(t, ocean)
	})

	t.Run("point at sea", func(t *testing.T) {
		ocean, err := mask.IsOcean(ctx, 40.0, -20.0)
		require.NoError(t, err)
		assert.True(t, ocean)
	})

	t.Run("coordinate out of range", func(t *testing.T) {
		_, err := mask.IsOcean(ctx, 91.0, 0.0)
		require.Error(t, err)
	})
}

func TestLoadMask_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadMask(filepath.Join(t.TempDir(), "absent.geojson"))
		require.Error(t, err)
	})

	t.Run("no polygons", func(t *testing.T) {
		_, err := LoadMask(writeMask(t, `{"type":"FeatureCollection","features":[]}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no polygons")
	})

	t.Run("not geojson", func(t *testing.T) {
		_, err := LoadMask(writeMask(t, "not json"))
		require.Error(t, err)
	})
}

func TestClient_IsOcean(t *testing.T) {
	t.Run("water response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.URL.Path, "54.000000,-20.000000")
			w.Write([]byte(`{"water": true}`)) //nolint:errcheck
		}))
		defer srv.Close()

		client := NewClient(srv.URL, time.Second, discardLogger())
		ocean, err := client.IsOcean(context.Background(), 54.0, -20.0)
		require.NoError(t, err)
		assert.True(t, ocean)
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, time.Second, discardLogger())
		_, err := client.IsOcean(context.Background(), 54.0, -20.0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("{")) //nolint:errcheck
		}))
		defer srv.Close()

		client := NewClient(srv.URL, time.Second, discardLogger())
		_, err := client.IsOcean(context.Background(), 54.0, -20.0)
		require.Error(t, err)
	})
}

// countingClassifier counts how often the inner classifier is consulted.
type countingClassifier struct {
	calls int
	ocean bool
	err   error
}

func (c *countingClassifier) IsOcean(_ context.Context, _, _ float64) (bool, error) {
	c.calls++
	return c.ocean, c.err
}

func TestCachedClassifier(t *testing.T) {
	ctx := context.Background()

	t.Run("repeat lookup served from cache", func(t *testing.T) {
		inner := &countingClassifier{ocean: true}
		cached := NewCachedClassifier(inner, 10)

		hits, misses := 0, 0
		cached.OnHit = func() { hits++ }
		cached.OnMiss = func() { misses++ }

		for range 3 {
			ocean, err := cached.IsOcean(ctx, 51.5, -0.12)
			require.NoError(t, err)
			assert.True(t, ocean)
		}

		assert.Equal(t, 1, inner.calls)
		assert.Equal(t, 2, hits)
		assert.Equal(t, 1, misses)
	})

	t.Run("nearby coordinates share an entry", func(t *testing.T) {
		inner := &countingClassifier{}
		cached := NewCachedClassifier(inner, 10)

		_, _ = cached.IsOcean(ctx, 51.50001, -0.12001)
		_, _ = cached.IsOcean(ctx, 51.50003, -0.11997)

		assert.Equal(t, 1, inner.calls, "rounded keys should collide")
	})

	t.Run("errors are not cached", func(t *testing.T) {
		inner := &countingClassifier{err: context.DeadlineExceeded}
		cached := NewCachedClassifier(inner, 10)

		_, err := cached.IsOcean(ctx, 1.0, 1.0)
		require.Error(t, err)
		_, err = cached.IsOcean(ctx, 1.0, 1.0)
		require.Error(t, err)

		assert.Equal(t, 2, inner.calls)
	})
}

func TestLRUCache_Eviction(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", true)
	c.put("b", false)
	c.put("c", true) // evicts "a"

	_, ok := c.get("a")
	assert.False(t, ok, "a should have been evicted")

	ocean, ok := c.get("b")
	assert.True(t, ok)
	assert.False(t, ocean)
}

func TestLRUCache_AccessPromotesEntry(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", true)
	c.put("b", true)

	// Access "a" to promote it, then insert "c" to evict the LRU entry "b".
	c.get("a")
	c.put("c", true)

	_, ok := c.get("a")
	assert.True(t, ok, "a was accessed recently, should not be evicted")

	_, ok = c.get("b")
	assert.False(t, ok, "b should have been evicted")
}
