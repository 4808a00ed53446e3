package errors

import (
	"fmt"

	"github.com/gofrs/uuid"
)

// UUIDNotFoundError is a service domain error for not found.
type UUIDNotFoundError struct {
	UUID uuid.UUID
}

// Error is an implementation of the error interface.
func (n *UUIDNotFoundError) Error() string {
	return fmt.Sprintf("UUID %q not found", n.UUID)
}

// NoConnectionFoundError indicates that a host connection cannot be found within the context.
type NoConnectionFoundError struct{}

// Error is an implementation of the error interface.
func (n *NoConnectionFoundError) Error() string {
	return "no host connection found in context"
}
