package otp

import (
	"context"
	"errors"
	"time"
)

// ErrCodeNotFound means no live entry matched the supplied code.
var ErrCodeNotFound = errors.New("code not found or expired")

// Store holds at most one live OTP per phone number. Save overwrites any
// previous entry for the number; Consume resolves a code back to its number
// and deletes the entry. Lookup is by code value, not by number: two numbers
// that happen to hold the same 4-digit code can consume each other's entry.
// That matching rule is kept on purpose; callers should treat it as a known
// limitation of 4-digit codes.
type Store interface {
	Save(ctx context.Context, number, code string, ttl time.Duration) error
	Consume(ctx context.Context, code string) (string, error)
}
