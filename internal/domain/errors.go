package domain

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCityNotFound     = errors.New("city not found")
	ErrSessionNotFound  = errors.New("session not found")

	ErrUserExists = errors.New("user already registered")

	ErrInvalidStatus = errors.New("invalid order status value")

	// ErrStatusConflict is returned when a conditional status update loses a
	// race or requests a transition the lifecycle table forbids. The caller
	// must not retry blindly.
	ErrStatusConflict = errors.New("order status transition conflict")

	// ErrCodeSpaceExhausted is returned when order-code generation keeps
	// colliding after the bounded retry budget. Fatal, never looped.
	ErrCodeSpaceExhausted = errors.New("order code space exhausted")
)

// DuplicateReceiptError rejects a receipt image whose content digest is
// already reserved by another order.
type DuplicateReceiptError struct {
	ImageHash string
	// OrderID is the order that consumed the image first, for support
	// diagnosis. Never the submitting order.
	OrderID int64
}

func (e *DuplicateReceiptError) Error() string {
	return fmt.Sprintf("duplicate receipt: hash already used by order %d", e.OrderID)
}

// ValidationError rejects malformed input before any storage mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}
