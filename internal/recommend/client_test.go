package recommend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/altera/config"
	"github.com/Domenick1991/altera/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ForUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recommendations/3", r.URL.Path)
		_, _ = w.Write([]byte(`{"recommendations":[{"flight_id":7}]}`))
	}))
	defer srv.Close()

	body, err := NewClient(config.RecommendationsConfig{BaseURL: srv.URL, TimeoutSeconds: 5}).ForUser(context.Background(), 3)

	require.NoError(t, err)
	assert.JSONEq(t, `{"recommendations":[{"flight_id":7}]}`, string(body))
}

func TestClient_ForUser_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(3 * time.Second):
		}
	}))
	defer srv.Close()

	client := NewClient(config.RecommendationsConfig{BaseURL: srv.URL})
	client.timeout = 50 * time.Millisecond

	_, err := client.ForUser(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrExternalTimeout)
}

func TestClient_ForUser_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(config.RecommendationsConfig{BaseURL: srv.URL, TimeoutSeconds: 5}).ForUser(context.Background(), 3)

	assert.ErrorIs(t, err, domain.ErrExternalService)
	assert.NotErrorIs(t, err, domain.ErrExternalTimeout)
}
