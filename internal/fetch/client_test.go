// internal/fetch/client_test.go
package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/dverbeek/PairScraper/internal/config"
)

func TestClient_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body><p>hello</p></body></html>"))
	}))
	defer server.Close()

	client := NewClient(config.TargetConfig{}, config.RequestConfig{})
	defer client.Close()

	page, err := client.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if page.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", page.StatusCode)
	}
	if !strings.Contains(page.ContentType, "text/html") {
		t.Fatalf("Expected HTML content type, got %q", page.ContentType)
	}
	if !strings.Contains(page.Body, "hello") {
		t.Fatalf("Expected body to contain 'hello', got %q", page.Body)
	}
}

func TestClient_FetchSendsHeadersAndCookies(t *testing.T) {
	var gotHeader, gotCookie, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Custom")
		gotUA = r.Header.Get("User-Agent")
		if c, err := r.Cookie("session"); err == nil {
			gotCookie = c.Value
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewClient(
		config.TargetConfig{
			Headers: map[string]string{"X-Custom": "yes"},
			Cookies: map[string]string{"session": "abc"},
		},
		config.RequestConfig{UserAgents: []string{"test-agent/1.0"}},
	)
	defer client.Close()

	if _, err := client.Fetch(context.Background(), server.URL); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if gotHeader != "yes" {
		t.Fatalf("Expected custom header 'yes', got %q", gotHeader)
	}
	if gotCookie != "abc" {
		t.Fatalf("Expected cookie 'abc', got %q", gotCookie)
	}
	if gotUA != "test-agent/1.0" {
		t.Fatalf("Expected configured user agent, got %q", gotUA)
	}
}

func TestClient_FetchRetriesTransientFailures(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("recovered"))
	}))
	defer server.Close()

	client := NewClient(config.TargetConfig{}, config.RequestConfig{RetryAttempts: 3})
	defer client.Close()

	page, err := client.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected fetch to recover, got error: %v", err)
	}
	if page.Body != "recovered" {
		t.Fatalf("Expected body 'recovered', got %q", page.Body)
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Fatalf("Expected 3 attempts, got %d", calls)
	}
}

func TestClient_FetchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(config.TargetConfig{}, config.RequestConfig{RetryAttempts: 1})
	defer client.Close()

	if _, err := client.Fetch(context.Background(), server.URL); err == nil {
		t.Fatal("Expected error for 404 response")
	}
}

func TestClient_UserAgentRotation(t *testing.T) {
	client := NewClient(config.TargetConfig{}, config.RequestConfig{
		UserAgents: []string{"ua-1", "ua-2"},
	})
	defer client.Close()

	if ua := client.nextUserAgent(); ua != "ua-1" {
		t.Fatalf("Expected 'ua-1', got %q", ua)
	}
	if ua := client.nextUserAgent(); ua != "ua-2" {
		t.Fatalf("Expected 'ua-2', got %q", ua)
	}
	if ua := client.nextUserAgent(); ua != "ua-1" {
		t.Fatalf("Expected rotation back to 'ua-1', got %q", ua)
	}
}
