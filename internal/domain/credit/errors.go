package credit

import "errors"

var (
	// ErrNoPayoff signals that a payment does not exceed the first month's
	// interest charge, so the balance never decreases. It is a result value
	// for the caller to present, not a failure.
	ErrNoPayoff = errors.New("payment does not cover monthly interest")

	ErrCardNotFound = errors.New("credit card not found")
)
