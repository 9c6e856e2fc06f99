// Package corebridge is the request bridge between operator UI surfaces and
// the remote core control-plane API: build a safe target URL, attach
// credentials, issue exactly one HTTP call, and normalize every outcome into
// either a parsed JSON value or a descriptive error the UI can render.
package corebridge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/opsdeck/opsdeck/internal/domain"
	"github.com/opsdeck/opsdeck/internal/infra/httpclient"
)

// Bridge is stateless across calls; a single instance is safe for any number
// of concurrent invocations.
type Bridge struct {
	exec    *httpclient.Executor
	lenient bool
	log     *slog.Logger
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLenientJSON makes a 2xx response with a malformed body succeed as
// {"raw": <body text>} instead of failing the call. The default is strict:
// malformed JSON from an otherwise-successful call is an error.
func WithLenientJSON() Option {
	return func(b *Bridge) { b.lenient = true }
}

// WithExecutor overrides the HTTP executor (useful for tests and custom
// transport tuning).
func WithExecutor(exec *httpclient.Executor) Option {
	return func(b *Bridge) { b.exec = exec }
}

// WithLogger attaches a logger; outcomes are logged at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(b *Bridge) {
		if log != nil {
			b.log = log
		}
	}
}

func New(opts ...Option) *Bridge {
	b := &Bridge{
		exec: httpclient.NewExecutor(),
		log:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Send issues a single call described by spec and returns the normalized
// outcome. Every failure path produces a flat, human-readable error; no
// retries, no fallback.
func (b *Bridge) Send(ctx context.Context, spec domain.RequestSpec) (any, error) {
	req, err := httpclient.NewRequest(ctx, spec)
	if err != nil {
		return nil, err
	}

	resp, err := b.exec.Do(ctx, req)
	if err != nil {
		b.log.Debug("corebridge.failed",
			"method", string(spec.Method),
			"path", spec.Path,
			"status", resp.Status,
			"err", err.Error(),
		)
		if resp.Status != 0 {
			return nil, fmt.Errorf("Read response failed: %v", err)
		}
		return nil, fmt.Errorf("Request failed: %v", err)
	}

	b.log.Debug("corebridge.sent",
		"method", string(spec.Method),
		"path", spec.Path,
		"status", resp.Status,
		"duration_ms", resp.Duration.Milliseconds(),
	)

	return b.decode(resp)
}

func (b *Bridge) decode(resp httpclient.ResponseData) (any, error) {
	text := string(resp.BodyBytes)

	if resp.Status < 200 || resp.Status > 299 {
		// Raw body verbatim: the core's error text is the diagnosis.
		return nil, fmt.Errorf("Core API %d: %s", resp.Status, text)
	}

	if strings.TrimSpace(text) == "" {
		return map[string]any{}, nil
	}

	var parsed any
	if err := json.Unmarshal(resp.BodyBytes, &parsed); err != nil {
		if b.lenient {
			return map[string]any{"raw": text}, nil
		}
		return nil, fmt.Errorf("Invalid JSON from core: %v", err)
	}
	return parsed, nil
}
