package store

import "fmt"

// DuplicateIDError indicates an insert with an id already present.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("record id %q already exists", e.ID)
}

// NotFoundError indicates an update or remove with an unknown id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("record id %q not found", e.ID)
}
