package httpdocs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/poimap-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_Fetch(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/data/categories-externo.json", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"categories":[{"name":"Food","color":"#f00"}],"defaultColor":"#999"}`))
		}))
		defer server.Close()

		src := NewDocumentClient(&config.DataConfig{BaseURL: server.URL + "/data", RequestTimeout: time.Second}, logger)
		assert.Equal(t, "http", src.Name())

		data, err := src.Fetch(context.Background(), "categories-externo.json")
		require.NoError(t, err)
		assert.Contains(t, string(data), `"defaultColor":"#999"`)
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusNotFound)
		}))
		defer server.Close()

		src := NewDocumentClient(&config.DataConfig{BaseURL: server.URL, RequestTimeout: time.Second}, logger)

		_, err := src.Fetch(context.Background(), "places-interno.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 404")
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		src := NewDocumentClient(&config.DataConfig{BaseURL: server.URL, RequestTimeout: 20 * time.Millisecond}, logger)

		_, err := src.Fetch(context.Background(), "places-externo.json")
		assert.Error(t, err)
	})

	t.Run("unreachable server", func(t *testing.T) {
		src := NewDocumentClient(&config.DataConfig{BaseURL: "http://127.0.0.1:1", RequestTimeout: time.Second}, logger)

		_, err := src.Fetch(context.Background(), "places-externo.json")
		assert.Error(t, err)
	})
}
