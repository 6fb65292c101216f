package emitter

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/casualjim/mozart/pkg/reflectx"
)

var (
	// ErrNotFunction indicates a listener that is not a function value.
	ErrNotFunction = errors.New("emitter: event listener must be a function")

	// ErrSignatureMismatch indicates emitted arguments that do not match the
	// parameter list of a listener.
	ErrSignatureMismatch = errors.New("emitter: invalid call to event handler: mismatched argument list")

	// ErrArgumentCount indicates a different number of emitted arguments
	// than the listener takes.
	ErrArgumentCount = errors.New("emitter: invalid call to event handler: wrong size of arguments")

	// ErrArgumentType indicates an emitted argument of the wrong type.
	ErrArgumentType = errors.New("emitter: wrong argument")
)

// ArgumentError describes a failed argument check. It unwraps to one of
// ErrSignatureMismatch, ErrArgumentCount or ErrArgumentType.
type ArgumentError struct {
	Event    string
	Listener string
	// Index is the offending argument position, -1 when the whole list is at fault.
	Index int
	Want  string
	Got   string
	Err   error
}

func (e *ArgumentError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	fmt.Fprintf(&b, " for event %q", e.Event)
	if e.Listener != "" {
		fmt.Fprintf(&b, " (listener %s)", e.Listener)
	}
	if e.Index >= 0 {
		fmt.Fprintf(&b, " at position %d", e.Index)
	}
	fmt.Fprintf(&b, ": expect %q, provided %q", e.Want, e.Got)
	return b.String()
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func argName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return reflectx.TypeName(t)
}

func describeArgs(types []reflect.Type) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range types {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(argName(t))
	}
	b.WriteByte(')')
	return b.String()
}
