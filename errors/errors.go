package errors

import perrors "github.com/pingcap/errors"

const (
	ErrCodeConfig       = 1000
	ErrCodeConnect      = 2000
	ErrCodeCommand      = 3000
	ErrCodeInvalidBound = 4000
	ErrCodeValidate     = 5000
)

// Error carries a rediskit error code alongside the underlying error.
type Error struct {
	Code uint16
	error
}

func NewError(code uint16, err error) error {
	return &Error{
		Code:  code,
		error: err,
	}
}

func NewErrorMessage(code uint16, message string) error {
	return &Error{
		Code:  code,
		error: perrors.New(message),
	}
}

// CodeOf reports the rediskit error code of err, or 0 when err carries none.
func CodeOf(err error) uint16 {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	if e, ok := Cause(err).(*Error); ok {
		return e.Code
	}
	return 0
}

var (
	ErrInvalidBound = NewErrorMessage(ErrCodeInvalidBound, "range bound is not a number")
)
