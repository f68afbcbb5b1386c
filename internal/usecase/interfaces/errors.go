package interfaces

import "errors"

var (
	// ErrConflict is returned by repositories when a write violates a
	// uniqueness guard or a concurrent-modification condition.
	ErrConflict = errors.New("conflict")

	// ErrTransactionTooLarge is returned when an atomic write needs more
	// actions than the store accepts in one transaction.
	ErrTransactionTooLarge = errors.New("transaction too large")
)
