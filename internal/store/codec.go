package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"fieldcore/pkg/domain"
)

// decodeCollection converts a raw stored payload into typed entities. Dates
// arrive as RFC3339 strings and come back as time.Time via encoding/json.
// A missing, empty, or null payload is an empty collection. A malformed
// payload is also an empty collection plus a logged diagnostic: corrupt
// local storage must never brick the caller.
func decodeCollection[T any](key, raw string, present bool, logger *zap.Logger) []T {
	if !present {
		return []T{}
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "null" {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
		logger.Warn("discarding malformed collection",
			zap.String("key", key),
			zap.Error(domain.DecodeError{Key: key, Err: err}))
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// encodeCollection renders entities back to the stored JSON array shape.
func encodeCollection[T any](key string, items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", key, err)
	}
	return string(data), nil
}
