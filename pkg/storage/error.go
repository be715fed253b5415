package storage

import "errors"

// NotFoundError is returned when a record doesn't exist in the store.
type NotFoundError struct {
	Kind string // "guide" or "grade"
	ID   string
}

func (e NotFoundError) Error() string {
	if e.ID == "" {
		return e.Kind + " not found"
	}

	return e.Kind + " not found: " + e.ID
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nfe NotFoundError
	return errors.As(err, &nfe)
}
