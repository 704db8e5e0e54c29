package common

import "github.com/cockroachdb/errors"

var (
	ErrValidation   = errors.New("invalid webhook payload")
	ErrDispatch     = errors.New("command dispatch failed")
	ErrCompletion   = errors.New("completion request failed")
	ErrFetch        = errors.New("code fetch failed")
	ErrNotification = errors.New("telegram notification failed")
)

// Mark attaches the sentinel to err. Both the standard library errors.Is and
// the cockroachdb one report the sentinel; the wrapped message and stack are
// kept.
func Mark(err error, sentinel error) error {
	if err == nil {
		return nil
	}

	return &markedError{
		cause: errors.Mark(err, sentinel),
		mark:  sentinel,
	}
}

type markedError struct {
	cause error
	mark  error
}

func (e *markedError) Error() string {
	return e.cause.Error()
}

func (e *markedError) Unwrap() error {
	return e.cause
}

func (e *markedError) Is(target error) bool {
	return target == e.mark
}
