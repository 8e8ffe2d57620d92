package common

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCheckResponseKeepsBodyValidUTF8(t *testing.T) {
	// 3-byte runes never line up with the 512-byte cut.
	long := strings.Repeat("मौसम", 100)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, long, http.StatusBadGateway)
	}))
	defer srv.Close()

	rc := NewRestClient(srv.Client(), srv.URL)
	err := CheckResponse(rc.R().Get("/"))

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected a status error, got %v", err)
	}
	if se.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", se.Code)
	}
	if len(se.Body) > maxErrorBody {
		t.Errorf("body not truncated: %d bytes", len(se.Body))
	}
	if !utf8.ValidString(se.Body) {
		t.Errorf("truncated body is not valid UTF-8: %q", se.Body)
	}
	if !strings.HasPrefix(long, se.Body) {
		t.Error("expected a prefix of the upstream body")
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		s    string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"abcdef", 3, "abc"},
		{"aमौ", 2, "a"},
		{"aमौ", 4, "aम"},
		{"मौ", 1, ""},
	}

	for _, tc := range cases {
		if got := truncate(tc.s, tc.n); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.s, tc.n, got, tc.want)
		}
	}
}
