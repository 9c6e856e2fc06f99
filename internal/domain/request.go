package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// RequestSpec describes a single outbound call to the core API.
// It is ephemeral: constructed and consumed within one bridge invocation.
type RequestSpec struct {
	Method  HTTPMethod
	BaseURL string
	Path    string

	// Token is forwarded verbatim as a bearer credential when non-blank.
	Token string

	// Payload, when non-nil, is JSON-serialized into the request body.
	Payload any
}

// ResolveURL builds the target URL from a caller-supplied base and path.
//
// The base URL is trimmed and stripped of trailing slashes; the path gets a
// leading slash when missing (blank paths collapse to "/"). The joined
// candidate must parse as an absolute http/https URL. Error messages are part
// of the bridge contract surfaced to the UI, hence the fixed wording.
func ResolveURL(baseURL, path string) (string, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return "", errors.New("Base URL is required")
	}

	switch {
	case strings.TrimSpace(path) == "":
		path = "/"
	case !strings.HasPrefix(path, "/"):
		path = "/" + path
	}

	candidate := base + path
	u, err := url.ParseRequestURI(candidate)
	if err != nil {
		return "", fmt.Errorf("Invalid URL: %v", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return "", errors.New("Only http/https base URLs are supported")
	}

	return candidate, nil
}
