package box

import (
	"errors"
	"fmt"

	"github.com/casualjim/mozart/pool"
)

var (
	// ErrTypeMismatch indicates a typed access to a box that holds a value of
	// another type.
	ErrTypeMismatch = errors.New("box: type mismatch")

	// ErrEmptyAccess indicates a typed access to an empty box.
	ErrEmptyAccess = errors.New("box: access to empty box")

	// ErrAllocation indicates a heap slot could not be obtained for a value.
	ErrAllocation = pool.ErrAllocation
)

// TypeError describes a failed typed access. It unwraps to ErrEmptyAccess
// when the box was empty and to ErrTypeMismatch otherwise.
type TypeError struct {
	Want TypeID
	Have TypeID
}

func (e *TypeError) Error() string {
	if e.Have.IsVoid() {
		return fmt.Sprintf("%s: want %s", ErrEmptyAccess, e.Want)
	}
	return fmt.Sprintf("%s: want %s, have %s", ErrTypeMismatch, e.Want, e.Have)
}

func (e *TypeError) Unwrap() error {
	if e.Have.IsVoid() {
		return ErrEmptyAccess
	}
	return ErrTypeMismatch
}
