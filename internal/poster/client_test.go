package poster_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinerec/backend/internal/poster"
)

func TestLookupReturnsPosterURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "Batman", r.URL.Query().Get("query"))
		w.Write([]byte(`{"results":[{"poster_path":"/abc.jpg"},{"poster_path":"/other.jpg"}]}`))
	}))
	defer ts.Close()

	c := poster.NewClient("test-key", ts.URL, "https://img.example/w500", 5*time.Second)

	got, err := c.Lookup(context.Background(), "Batman")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/w500/abc.jpg", got)
}

func TestLookupNoResults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer ts.Close()

	c := poster.NewClient("test-key", ts.URL, "https://img.example/w500", 5*time.Second)

	got, err := c.Lookup(context.Background(), "Unknown")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLookupMissingPosterPath(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"poster_path":null}]}`))
	}))
	defer ts.Close()

	c := poster.NewClient("test-key", ts.URL, "https://img.example/w500", 5*time.Second)

	got, err := c.Lookup(context.Background(), "Batman")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLookupNon200(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	c := poster.NewClient("bad-key", ts.URL, "https://img.example/w500", 5*time.Second)

	_, err := c.Lookup(context.Background(), "Batman")
	assert.Error(t, err)
}

func TestEnabled(t *testing.T) {
	assert.False(t, poster.NewClient("", "", "", time.Second).Enabled())
	assert.True(t, poster.NewClient("key", "", "", time.Second).Enabled())
}
