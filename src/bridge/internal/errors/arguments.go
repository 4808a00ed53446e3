package errors

import "fmt"

// InvalidArgumentsError indicates that a host command was sent with arguments of the wrong shape.
type InvalidArgumentsError struct {
	Command string
	Reason  string
}

// Error is an implementation of the error interface.
func (n *InvalidArgumentsError) Error() string {
	return fmt.Sprintf("invalid arguments for command %q: %s", n.Command, n.Reason)
}
