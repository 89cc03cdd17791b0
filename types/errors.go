package types

import "fmt"

// Error codes surfaced through ValidationResult and QRError. All
// failures in the core are soft: nothing is thrown across the
// library boundary.
const (
	// ErrNoMatch: no detector recognized the input; Parse returns nil.
	ErrNoMatch = "no-match"

	// ErrInvalidAddress: recipient fails the address format check.
	ErrInvalidAddress = "invalid-address"

	// ErrInvalidAmount: amount present but not a valid positive
	// integer after conversion.
	ErrInvalidAmount = "invalid-amount"

	// ErrMissingCategory: business-kind intent lacks a category.
	ErrMissingCategory = "missing-category"

	// ErrAmountRequired: the execution strategy requires an amount the
	// intent does not carry.
	ErrAmountRequired = "amount-required"

	// ErrInvalidSpec: a payload generator was given an unusable spec.
	ErrInvalidSpec = "invalid-spec"
)

// QRError is the typed error returned by helper APIs that use Go's
// error convention (payload generation, checksum helpers). Parse and
// validation never return it.
type QRError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *QRError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewQRError builds a QRError from a code and a formatted message.
func NewQRError(code, format string, args ...any) *QRError {
	return &QRError{Code: code, Message: fmt.Sprintf(format, args...)}
}
