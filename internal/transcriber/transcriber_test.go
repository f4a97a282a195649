package transcriber

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clipforge/editor-api/models"
)

func TestClient_Transcribe_Success(t *testing.T) {
	var receivedAuth string
	var receivedReq transcribeRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transcribe" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		receivedAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&receivedReq)

		json.NewEncoder(w).Encode(models.TranscriptionData{
			Text: "hello world",
			Segments: []models.TranscriptSegment{
				{Text: "hello", StartTime: 0, EndTime: 1.2},
				{Text: "world", StartTime: 1.2, EndTime: 2.0},
			},
		})
	}))
	defer server.Close()

	client := New(server.URL, "test-key", 5*time.Second)
	got, err := client.Transcribe(context.Background(), "https://cdn.example/video.mp4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if receivedAuth != "Bearer test-key" {
		t.Errorf("auth = %q, want bearer key", receivedAuth)
	}
	if receivedReq.MediaURL != "https://cdn.example/video.mp4" {
		t.Errorf("media url = %q", receivedReq.MediaURL)
	}
	if len(got.Segments) != 2 {
		t.Fatalf("segments = %d, want 2", len(got.Segments))
	}
	if got.Segments[1].StartTime != 1.2 {
		t.Errorf("segment start = %g, want 1.2", got.Segments[1].StartTime)
	}
}

func TestClient_Transcribe_RetriesServerErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(models.TranscriptionData{Text: "ok"})
	}))
	defer server.Close()

	client := New(server.URL, "", 5*time.Second)
	got, err := client.Transcribe(context.Background(), "https://cdn.example/v.mp4")
	if err != nil {
		t.Fatalf("unexpected error after retries: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if got.Text != "ok" {
		t.Errorf("text = %q", got.Text)
	}
}

func TestClient_Transcribe_ClientErrorIsPermanent(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte("unsupported media"))
	}))
	defer server.Close()

	client := New(server.URL, "", 5*time.Second)
	_, err := client.Transcribe(context.Background(), "https://cdn.example/v.mp4")
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want no retries on 4xx", calls)
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error type = %T, want *RequestError", err)
	}
	if reqErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d", reqErr.StatusCode)
	}
	if reqErr.IsRetryable() {
		t.Error("422 reported retryable")
	}
}
