package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClient_Get_SetsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("hello"))
	}))
	defer server.Close()

	client := NewClient(WithUserAgent("othctl-test"), WithTimeout(2*time.Second))

	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if string(body) != "hello" {
		t.Errorf("expected body 'hello', got %q", body)
	}
	if gotUA != "othctl-test" {
		t.Errorf("expected User-Agent othctl-test, got %q", gotUA)
	}
}

func TestClient_Get_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient()

	_, err := client.Get(context.Background(), server.URL+"/missing")
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if fetchErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", fetchErr.StatusCode)
	}
	if fetchErr.URL != server.URL+"/missing" {
		t.Errorf("expected URL %s/missing, got %s", server.URL, fetchErr.URL)
	}
}

func TestClient_Get_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient().Get(ctx, server.URL)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestClient_Get_BodyTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", 32)))
	}))
	defer server.Close()

	t.Run("over the limit", func(t *testing.T) {
		resp, err := NewClient(WithMaxBodySize(16)).Get(context.Background(), server.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		var tooLarge *BodyTooLargeError
		if !errors.As(err, &tooLarge) {
			t.Fatalf("expected *BodyTooLargeError, got %v", err)
		}
		if tooLarge.Limit != 16 || tooLarge.URL != server.URL {
			t.Errorf("unexpected error fields: %+v", tooLarge)
		}
		if len(body) > 16 {
			t.Errorf("expected at most 16 bytes before the error, got %d", len(body))
		}
	})

	t.Run("exactly at the limit", func(t *testing.T) {
		resp, err := NewClient(WithMaxBodySize(32)).Get(context.Background(), server.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("expected the full body, got error %v", err)
		}
		if len(body) != 32 {
			t.Errorf("expected 32 bytes, got %d", len(body))
		}
	})
}
