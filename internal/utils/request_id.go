package utils

import (
	"strings"

	"github.com/google/uuid"
)

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// RequestID reuses an incoming id when it is a valid UUID, otherwise mints one.
func RequestID(incoming string) string {
	incoming = strings.TrimSpace(incoming)
	if incoming != "" {
		if id, err := uuid.Parse(incoming); err == nil {
			return id.String()
		}
	}
	return uuid.NewString()
}
