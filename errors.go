package stockroom

import "errors"

// Catalog operations never terminate the process: every failure wraps one
// of these kinds, carries the offending identifier or value, and leaves the
// catalog in its prior consistent state. Callers match with errors.Is.
var (
	ErrDuplicateID       = errors.New("duplicate product id")
	ErrNotFound          = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrExpiredProduct    = errors.New("expired product")
	ErrUnknownCategory   = errors.New("unknown product category")
	ErrMalformedField    = errors.New("malformed field")
	ErrIO                = errors.New("catalog file error")
)
