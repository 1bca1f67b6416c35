package errors

type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Field + ": " + e.Message
}

// ErrInvalidRate marks a zero or negative conversion/interest rate.
// Rates are configuration, not user input, so this is never defaulted away.
type ErrInvalidRate struct {
	Rate    string
	Message string
}

func (e *ErrInvalidRate) Error() string {
	return "invalid rate " + e.Rate + ": " + e.Message
}

// ErrMalformedQuote marks an upstream quote that violates its own invariants
// (sell below buy, non-positive buy). Malformed quotes are rejected, never
// repaired.
type ErrMalformedQuote struct {
	Quote   string
	Message string
}

func (e *ErrMalformedQuote) Error() string {
	return "malformed quote " + e.Quote + ": " + e.Message
}
