package corebridge

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/opsdeck/opsdeck/internal/domain"
)

type recordedRequest struct {
	method string
	uri    string
	auth   string
	body   []byte
}

// newRecorder spins up a server that records every request and replies with
// the given status/body.
func newRecorder(t *testing.T, status int, body string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()

	var seen []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("failed reading body: %v", err)
		}
		seen = append(seen, recordedRequest{
			method: r.Method,
			uri:    r.URL.RequestURI(),
			auth:   r.Header.Get("Authorization"),
			body:   buf,
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &seen
}

func TestSendStripsTrailingSlashes(t *testing.T) {
	server, seen := newRecorder(t, http.StatusOK, `{}`)

	b := New()
	_, err := b.Send(context.Background(), domain.RequestSpec{
		Method:  domain.MethodGet,
		BaseURL: server.URL + "///",
		Path:    "/a",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := (*seen)[0].uri; got != "/a" {
		t.Fatalf("request URI = %q, want /a", got)
	}
}

func TestSendInsertsLeadingSlash(t *testing.T) {
	server, seen := newRecorder(t, http.StatusOK, `{}`)

	b := New()
	_, err := b.Send(context.Background(), domain.RequestSpec{
		Method:  domain.MethodGet,
		BaseURL: server.URL,
		Path:    "a/b",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := (*seen)[0].uri; got != "/a/b" {
		t.Fatalf("request URI = %q, want /a/b", got)
	}
}

func TestSendBlankBaseURL(t *testing.T) {
	b := New()
	for _, base := range []string{"", "   "} {
		_, err := b.Send(context.Background(), domain.RequestSpec{
			Method:  domain.MethodGet,
			BaseURL: base,
			Path:    "/a",
		})
		if err == nil || err.Error() != "Base URL is required" {
			t.Fatalf("base %q: error = %v, want base-URL-required", base, err)
		}
	}
}

func TestSendRejectsNonHTTPSchemes(t *testing.T) {
	b := New()
	_, err := b.Send(context.Background(), domain.RequestSpec{
		Method:  domain.MethodGet,
		BaseURL: "ftp://host",
		Path:    "/a",
	})
	if err == nil || err.Error() != "Only http/https base URLs are supported" {
		t.Fatalf("error = %v, want scheme error", err)
	}
}

func TestSendBearerToken(t *testing.T) {
	server, seen := newRecorder(t, http.StatusOK, `{}`)
	b := New()

	if _, err := b.Send(context.Background(), domain.RequestSpec{
		Method:  domain.MethodGet,
		BaseURL: server.URL,
		Path:    "/a",
		Token:   " tok ",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.Send(context.Background(), domain.RequestSpec{
		Method:  domain.MethodGet,
		BaseURL: server.URL,
		Path:    "/a",
		Token:   "   ",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := (*seen)[0].auth; got != "Bearer tok" {
		t.Fatalf("auth = %q, want Bearer tok", got)
	}
	if got := (*seen)[1].auth; got != "" {
		t.Fatalf("auth = %q, want none for blank token", got)
	}
}

func TestSendEmptyBodyYieldsEmptyObject(t *testing.T) {
	server, _ := newRecorder(t, http.StatusOK, "  \n ")

	b := New()
	got, err := b.Send(context.Background(), domain.RequestSpec{
		Method:  domain.MethodGet,
		BaseURL: server.URL,
		Path:    "/a",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := got.(map[string]any)
	if !ok || len(m) != 0 {
		t.Fatalf("got %#v, want empty object", got)
	}
}

func TestSendRoundTripsJSON(t *testing.T) {
	fixture := map[string]any{
		"plans":  []any{map[string]any{"id": "plan-1", "status": "pending"}},
		"counts": map[string]any{"jobs": float64(2)},
		"ok":     true,
	}
	raw, err := json.Marshal(fixture)
	if err != nil {
		t.Fatal(err)
	}
	server, _ := newRecorder(t, http.StatusOK, string(raw))

	b := New()
	got, err := b.Send(context.Background(), domain.RequestSpec{
		Method:  domain.MethodGet,
		BaseURL: server.URL,
		Path:    "/a",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, fixture) {
		t.Fatalf("got %#v, want %#v", got, fixture)
	}
}

func TestSendNon2xxIncludesStatusAndBody(t *testing.T) {
	server, _ := newRecorder(t, http.StatusNotFound, "not found")

	b := New()
	_, err := b.Send(context.Background(), domain.RequestSpec{
		Method:  domain.MethodGet,
		BaseURL: server.URL,
		Path:    "/missing",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "404") || !strings.Contains(msg, "not found") {
		t.Fatalf("error = %q, want status and raw body", msg)
	}
	if !strings.HasPrefix(msg, "Core API 404: ") {
		t.Fatalf("error = %q, want Core API prefix", msg)
	}
}

func TestSendStrictRejectsMalformedJSON(t *testing.T) {
	server, _ := newRecorder(t, http.StatusOK, "<html>not json</html>")

	b := New()
	_, err := b.Send(context.Background(), domain.RequestSpec{
		Method:  domain.MethodGet,
		BaseURL: server.URL,
		Path:    "/a",
	})
	if err == nil || !strings.HasPrefix(err.Error(), "Invalid JSON from core: ") {
		t.Fatalf("error = %v, want invalid-JSON error", err)
	}
}

func TestSendLenientWrapsMalformedJSON(t *testing.T) {
	server, _ := newRecorder(t, http.StatusOK, "<html>not json</html>")

	b := New(WithLenientJSON())
	got, err := b.Send(context.Background(), domain.RequestSpec{
		Method:  domain.MethodGet,
		BaseURL: server.URL,
		Path:    "/a",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("got %#v, want wrapper object", got)
	}
	if m["raw"] != "<html>not json</html>" {
		t.Fatalf("raw = %v", m["raw"])
	}
}

func TestSendTransportFailure(t *testing.T) {
	server, _ := newRecorder(t, http.StatusOK, `{}`)
	base := server.URL
	server.Close()

	b := New()
	_, err := b.Send(context.Background(), domain.RequestSpec{
		Method:  domain.MethodGet,
		BaseURL: base,
		Path:    "/a",
	})
	if err == nil || !strings.HasPrefix(err.Error(), "Request failed: ") {
		t.Fatalf("error = %v, want request-failed error", err)
	}
}
