package session

import (
	"errors"
	"fmt"
)

var (
	ErrSessionClosed    = errors.New("session is closed")
	ErrAlreadyCommitted = errors.New("session already committed")
	ErrAlreadyPersisted = errors.New("entity already has an identifier")
	ErrNotModel         = errors.New("entity must be a pointer to a model struct")
)

// ConnectionError reports a store that could not be reached or configured.
type ConnectionError struct {
	Driver string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect to %s store: %v", e.Driver, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// PersistenceError reports a commit the store rejected. Nothing from the batch was written.
type PersistenceError struct {
	Pending int
	Err     error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("commit %d pending entities: %v", e.Pending, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
