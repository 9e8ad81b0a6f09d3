package keyaddr

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidKey is returned when a private or public key has the wrong
	// length, the wrong format byte, or a scalar outside [1, n-1].
	ErrInvalidKey = ErrorKind("ErrInvalidKey")

	// ErrInvalidScalar is returned when the curve engine is handed a zero
	// scalar, for example from a private key that has been wiped.
	ErrInvalidScalar = ErrorKind("ErrInvalidScalar")

	// ErrInvalidPoint is returned when a point is at infinity or does not
	// satisfy the curve equation.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")

	// ErrInvalidEncoding is returned when address text contains characters
	// outside the Base58 alphabet or decodes to a malformed payload.
	ErrInvalidEncoding = ErrorKind("ErrInvalidEncoding")

	// ErrChecksumMismatch is returned when the trailing four bytes of a
	// decoded address do not match the checksum of the preceding bytes.
	ErrChecksumMismatch = ErrorKind("ErrChecksumMismatch")

	// ErrWrongNetwork is returned when a decoded address carries a version
	// byte other than the one required by the caller's Params.
	ErrWrongNetwork = ErrorKind("ErrWrongNetwork")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to key or address handling. It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
