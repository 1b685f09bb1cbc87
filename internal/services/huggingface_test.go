package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"insightd/internal/models"
)

func newTestClient(handler http.HandlerFunc) (*HuggingFaceClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewHuggingFaceClient("test-token", server.URL, 5*time.Second)
	return client, server
}

func TestClassifyFlatResponse(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		w.Write([]byte(`[{"label":"positive","score":0.91},{"label":"neutral","score":0.06}]`))
	})
	defer server.Close()

	scores, err := client.Classify(context.Background(), "great day", "sentiment-model")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("len(scores) = %d, want 2", len(scores))
	}
	if scores[0].Label != "positive" || scores[0].Score != 0.91 {
		t.Fatalf("scores[0] = %+v", scores[0])
	}
}

func TestClassifyNestedResponse(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[{"label":"joy","score":0.88}]]`))
	})
	defer server.Close()

	scores, err := client.Classify(context.Background(), "great day", "emotion-model")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if len(scores) != 1 || scores[0].Label != "joy" {
		t.Fatalf("scores = %+v, want un-nested joy entry", scores)
	}
}

func TestClassifyErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"rate limited", http.StatusTooManyRequests, `{"error":"rate limit"}`, models.ErrRateLimited},
		{"quota exceeded", http.StatusForbidden, `{"error":"quota"}`, models.ErrQuotaExceeded},
		{"empty array", http.StatusOK, `[]`, models.ErrMalformedResponse},
		{"object body", http.StatusOK, `{"error":"model loading"}`, models.ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			defer server.Close()

			_, err := client.Classify(context.Background(), "text", "model")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Classify error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestClassifyRemoteErrorCarriesStatus(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer server.Close()

	_, err := client.Classify(context.Background(), "text", "model")
	var remoteErr *models.RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("Classify error = %v, want RemoteError", err)
	}
	if remoteErr.Status != http.StatusBadGateway {
		t.Fatalf("RemoteError.Status = %d, want %d", remoteErr.Status, http.StatusBadGateway)
	}
}
