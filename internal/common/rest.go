package common

import (
	"net/http"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds how much of an upstream error body is kept in a StatusError.
const maxErrorBody = 512

// NewRestClient builds a resty client on top of the shared http.Client.
// Retries are left at resty's default of zero: every call is a single attempt.
func NewRestClient(client *http.Client, baseURL string) *resty.Client {
	var rc *resty.Client
	if client != nil {
		rc = resty.NewWithClient(client)
	} else {
		rc = resty.New()
	}
	rc.SetHeader("Accept", "application/json")
	if baseURL != "" {
		rc.SetBaseURL(baseURL)
	}
	return rc
}

// CheckResponse classifies the outcome of a resty call: a transport error,
// a non-200 status, or success.
func CheckResponse(resp *resty.Response, err error) error {
	if err != nil {
		return Transport(err)
	}
	if resp.StatusCode() != http.StatusOK {
		return &StatusError{Code: resp.StatusCode(), Body: truncate(resp.String(), maxErrorBody)}
	}
	return nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
