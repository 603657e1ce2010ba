package repositories

import "errors"

type ErrNotFound struct {
}

func (e *ErrNotFound) Error() string {
	return "snapshot not found"
}

func IsNotFound(err error) bool {
	var notFound *ErrNotFound
	return errors.As(err, &notFound)
}

type ErrMalformed struct {
	Reason string
}

func (e *ErrMalformed) Error() string {
	return "malformed snapshot: " + e.Reason
}

func IsMalformed(err error) bool {
	var malformed *ErrMalformed
	return errors.As(err, &malformed)
}
