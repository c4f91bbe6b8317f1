package repositories

import (
	"errors"
	"fmt"
)

// Operation outcomes the menu layer must tell apart. Validation
// failures are reported as *utils.ValidationError before any database
// call; everything else is detected at the store boundary.
var (
	// ErrNotFound: an update or delete matched zero rows.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate: the store rejected an insert on its unique key.
	ErrDuplicate = errors.New("duplicate id")

	// ErrNoServicesToBill: billing was requested for a patient with an
	// empty staging list; no bill row is created.
	ErrNoServicesToBill = errors.New("no services to bill for this patient")
)

// ReferenceError reports a referenced entity that does not exist. It is
// returned before any mutating statement is issued.
type ReferenceError struct {
	Entity string
	ID     string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s ID '%s' does not exist", e.Entity, e.ID)
}
