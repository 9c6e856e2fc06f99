package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/opsdeck/opsdeck/internal/domain"
)

// NewRequest builds an *http.Request from a domain RequestSpec.
//
// The bearer header is attached only when the trimmed token is non-empty, and
// the JSON content type only when a payload is present. Every request carries
// a fresh X-Request-ID so the core can correlate its audit trail.
func NewRequest(ctx context.Context, spec domain.RequestSpec) (*http.Request, error) {
	target, err := domain.ResolveURL(spec.BaseURL, spec.Path)
	if err != nil {
		return nil, err
	}

	var bodyReader *bytes.Reader
	if spec.Payload != nil {
		payload, err := json.Marshal(spec.Payload)
		if err != nil {
			return nil, fmt.Errorf("HTTP client init failed: %v", err)
		}
		bodyReader = bytes.NewReader(payload)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, string(spec.Method), target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("HTTP client init failed: %v", err)
	}

	req.Header.Set("X-Request-ID", uuid.NewString())

	if token := strings.TrimSpace(spec.Token); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if spec.Payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}
