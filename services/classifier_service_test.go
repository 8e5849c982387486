package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func classifierForURL(t *testing.T, url string) *ClassifierService {
	t.Helper()
	db := setupTestDB(t)
	svc := NewClassifierService(db, zerolog.Nop())
	svc.baseURL = url
	return svc
}

func TestClassifyValidatesDetections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/detect", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"detected": [
			{"name": "김치찌개", "confidence": 92.5},
			{"name": "", "confidence": 80},
			{"name": "된장찌개", "confidence": 300}
		]}`))
	}))
	defer server.Close()

	svc := classifierForURL(t, server.URL)
	detections, err := svc.Classify(context.Background(), "food.jpg", []byte("fake-image"))
	require.NoError(t, err)

	// Entries with empty names or out-of-range confidence are dropped.
	require.Len(t, detections, 1)
	require.Equal(t, "김치찌개", detections[0].Name)
}

func TestClassifyUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := classifierForURL(t, server.URL)
	_, err := svc.Classify(context.Background(), "food.jpg", []byte("fake-image"))
	require.ErrorIs(t, err, ErrUpstream)
	require.Contains(t, err.Error(), "model loading")
}

func TestClassifyMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	svc := classifierForURL(t, server.URL)
	_, err := svc.Classify(context.Background(), "food.jpg", []byte("fake-image"))
	require.ErrorIs(t, err, ErrUpstream)
}

func TestClassifyUnreachable(t *testing.T) {
	svc := classifierForURL(t, "http://127.0.0.1:1")
	_, err := svc.Classify(context.Background(), "food.jpg", []byte("fake-image"))
	require.ErrorIs(t, err, ErrUpstream)
}
