package domain

import (
	"fmt"
	"strings"
)

// HTTPMethod represents an HTTP method (e.g., GET, POST).
type HTTPMethod string

const (
	MethodGet     HTTPMethod = "GET"
	MethodPost    HTTPMethod = "POST"
	MethodPut     HTTPMethod = "PUT"
	MethodPatch   HTTPMethod = "PATCH"
	MethodDelete  HTTPMethod = "DELETE"
	MethodHead    HTTPMethod = "HEAD"
	MethodOptions HTTPMethod = "OPTIONS"
)

// ParseMethod normalizes a free-text method (trim + uppercase) and matches it
// against the recognized verbs. The error message is part of the bridge
// contract surfaced to the UI, hence the fixed wording.
func ParseMethod(raw string) (HTTPMethod, error) {
	trimmed := strings.TrimSpace(raw)
	m := HTTPMethod(strings.ToUpper(trimmed))
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete, MethodHead, MethodOptions:
		return m, nil
	}
	return "", fmt.Errorf("Unsupported HTTP method: %s", trimmed)
}
