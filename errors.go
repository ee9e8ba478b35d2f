package redblack

// Error is an error type for the redblack module
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrInvalidKey is flagged for input tokens which are not decimal integers.
const ErrInvalidKey = Error("invalid key")
