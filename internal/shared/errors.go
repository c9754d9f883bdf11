package shared

import "github.com/payd-hq/payd/internal/platform/httpx"

// Cross-module rule violations. Entity-specific kinds live in their packages.
var (
	// ErrInvalidAmount rejects non-positive money amounts on creation and top-up.
	ErrInvalidAmount = &httpx.DomainError{
		Kind:    "invalid_amount",
		Class:   httpx.ErrValidation,
		Message: "amount must be greater than zero",
	}
	// ErrRecordDeleted rejects mutations against soft-deleted records.
	ErrRecordDeleted = &httpx.DomainError{
		Kind:    "record_deleted",
		Class:   httpx.ErrConflict,
		Message: "record is deleted and cannot be updated",
	}
)
