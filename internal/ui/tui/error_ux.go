package tui

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/opsdeck/opsdeck/internal/domain"
)

// userMessage flattens any error into a single toast line. Bridge errors are
// already operator-readable, so they pass through (clamped); infra errors get
// a friendlier label.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.Contains(oe.Op, "profile") {
				return "Profile not found"
			}
			return "Not found"
		case domain.KindInvalidConfig:
			return "Invalid config (see logs)"
		default:
			return "Unexpected error (see logs)"
		}
	}

	return clampString(err.Error(), 120)
}

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}
