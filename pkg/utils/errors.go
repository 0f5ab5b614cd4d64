package utils

import "errors"

// Error taxonomy for the booking core. Callers wrap these with fmt.Errorf
// and "%w" so errors.Is still matches after context is added.
var (
	// ErrTransaction marks a failed counter transaction (contention or an
	// unreachable store).
	ErrTransaction = errors.New("counter transaction failed")

	// ErrWrite marks a failed atomic batch commit.
	ErrWrite = errors.New("atomic write failed")

	// ErrNotFound marks a referenced document that does not exist.
	ErrNotFound = errors.New("not found")
)
