package relevance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Score(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/relevance", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Grant deadline approaching", payload["title"])

		_ = json.NewEncoder(w).Encode(map[string]float64{"relevance": 0.83})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second, 20)

	score, err := client.Score(context.Background(), "Grant deadline approaching", "Apply before Friday")
	require.NoError(t, err)
	assert.Equal(t, 0.83, score)
}

func TestClient_FindSimilar(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/similar", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]int{"matches": 3})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second, 20)

	matches, err := client.FindSimilar(context.Background(), "Grant deadline approaching")
	require.NoError(t, err)
	assert.Equal(t, 3, matches)
}

func TestClient_NoAuthHeaderWithoutKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]float64{"relevance": 0.5})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second, 20)

	_, err := client.Score(context.Background(), "title", "")
	require.NoError(t, err)
}

func TestClient_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second, 20)

	_, err := client.Score(context.Background(), "title", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestClient_CancelledContext(t *testing.T) {
	client := NewClient("http://127.0.0.1:0", "", 5*time.Second, 20)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Score(ctx, "title", "")
	require.Error(t, err)
}
