package domain

import "errors"

var (
	// ErrShoeExhausted is returned when a draw needs more cards than remain.
	// Cards drawn earlier in the same round stay consumed.
	ErrShoeExhausted = errors.New("not enough cards in shoe")

	// ErrShoeNotFound is returned by shoe repositories when no shoe
	// record has been persisted yet
	ErrShoeNotFound = errors.New("shoe record not found")

	// ErrInsufficientBalance is returned when a bet exceeds the
	// account balance. The round never starts.
	ErrInsufficientBalance = errors.New("insufficient balance")
)
