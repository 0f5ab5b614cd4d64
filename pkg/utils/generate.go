package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func GenerateUUIDString() string {
	return uuid.New().String()
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== IDENTIFIERS ====================

// FormatSequentialID renders a counter value as a human-readable ID:
// prefix "B", width 7, value 42 -> "B0000042".
func FormatSequentialID(prefix string, width int, value int64) string {
	return fmt.Sprintf("%s%0*d", prefix, width, value)
}

// GenerateFallbackID returns a store-independent random unique ID, used when
// sequential allocation is unavailable.
func GenerateFallbackID() string {
	return uuid.New().String()
}

// GenerateTransactionRef returns a random payment transaction reference.
func GenerateTransactionRef() string {
	return uuid.New().String()
}
