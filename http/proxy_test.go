package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	lenshttp "github.com/jswierad/contentlens/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyClient_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("sends the fetch request shape", func(t *testing.T) {
		t.Parallel()

		var received map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			_, _ = w.Write([]byte(`{"result": {"content": "hi", "status_code": 200}}`))
		}))
		defer server.Close()

		client := lenshttp.NewProxyClient(server.URL, time.Second)
		result, err := client.Fetch(context.Background(), "https://example.com/page")

		require.NoError(t, err)
		assert.Equal(t, "hi", result.HTML)

		assert.Equal(t, "fetch", received["method"])
		params, ok := received["params"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "https://example.com/page", params["url"])
		options, ok := params["options"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, options["include_raw_content"])
		assert.Equal(t, true, options["include_metadata"])
		assert.Equal(t, true, options["follow_redirects"])
		assert.NotEmpty(t, options["user_agent"])
	})

	t.Run("error object becomes a Go error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error": {"message": "robots disallowed"}}`))
		}))
		defer server.Close()

		client := lenshttp.NewProxyClient(server.URL, time.Second)
		_, err := client.Fetch(context.Background(), "https://example.com/")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "robots disallowed")
	})

	t.Run("non-200 proxy status becomes a Go error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := lenshttp.NewProxyClient(server.URL, time.Second)
		_, err := client.Fetch(context.Background(), "https://example.com/")

		require.Error(t, err)
	})

	t.Run("missing final_url falls back to the target", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"result": {"content": "x", "status_code": 200}}`))
		}))
		defer server.Close()

		client := lenshttp.NewProxyClient(server.URL, time.Second)
		result, err := client.Fetch(context.Background(), "https://example.com/deep")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/deep", result.Metadata.FinalURL)
	})
}
