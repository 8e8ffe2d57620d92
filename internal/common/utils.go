package common

import "strings"

// HasAny returns true if s contains any of the substrings, ignoring case.
// Substrings are checked in order and the scan stops at the first hit.
func HasAny(s string, subs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range subs {
		if sub == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}
