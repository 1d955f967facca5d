package adapters

import (
	"strings"

	"github.com/Sena-ops/reportguard/internal/model"
)

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

// orUnknown normalizes an absent upstream value to the sentinel.
func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return model.Unknown
	}
	return s
}
