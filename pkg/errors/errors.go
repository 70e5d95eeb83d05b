package errors

import "fmt"

// ErrNotFound is returned when a resource is not found
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrUnauthorized is returned when authentication fails
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "unauthorized"
}

// ErrValidation is returned when validation fails
type ErrValidation struct {
	Message string
	Fields  map[string]string
}

func (e *ErrValidation) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// ErrCapacityExceeded is returned when a cart mutation would push a line
// past the available stock for its (product, size) identity.
type ErrCapacityExceeded struct {
	ProductID string
	Size      string
	Requested int
	Available int
}

func (e *ErrCapacityExceeded) Error() string {
	if e.Size != "" {
		return fmt.Sprintf("only %d available for size %s", e.Available, e.Size)
	}
	return fmt.Sprintf("only %d available", e.Available)
}

// ErrUpstream is returned when a third-party collaborator call fails
// (payment provider, image host, mail relay).
type ErrUpstream struct {
	Service string
	Err     error
}

func (e *ErrUpstream) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
}

func (e *ErrUpstream) Unwrap() error {
	return e.Err
}
