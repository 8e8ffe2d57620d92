package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestHasAny(t *testing.T) {
	cases := []struct {
		s    string
		subs []string
		want bool
	}{
		{"Light RAIN", []string{"rain"}, true},
		{"clear sky", []string{"rain", "storm"}, false},
		{"मौसम कैसा है?", []string{"weather", "मौसम"}, true},
		{"anything", nil, false},
		{"anything", []string{""}, false},
	}

	for _, tc := range cases {
		if got := HasAny(tc.s, tc.subs...); got != tc.want {
			t.Errorf("HasAny(%q, %v) = %v, want %v", tc.s, tc.subs, got, tc.want)
		}
	}
}

func TestErrorClasses(t *testing.T) {
	statusErr := fmt.Errorf("gemini: %w", &StatusError{Code: 500, Body: "boom"})
	if !errors.Is(statusErr, ErrStatus) {
		t.Fatalf("expected wrapped StatusError to match ErrStatus")
	}
	var se *StatusError
	if !errors.As(statusErr, &se) || se.Code != 500 {
		t.Fatalf("expected to unwrap StatusError with code 500, got %v", se)
	}

	cases := map[string]error{
		"status":    statusErr,
		"shape":     Shape("missing %s", "main"),
		"transport": Transport(errors.New("dial tcp: refused")),
		"unknown":   errors.New("other"),
		"none":      nil,
	}
	for want, err := range cases {
		if got := Class(err); got != want {
			t.Errorf("Class(%v) = %q, want %q", err, got, want)
		}
	}
}
