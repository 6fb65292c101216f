package emitter

import (
	"reflect"

	"github.com/casualjim/mozart/pkg/reflectx"
	"github.com/casualjim/mozart/pkg/uuidx"
)

func typedListener(fn any, in ...reflect.Type) *listener {
	if fn == nil || reflect.ValueOf(fn).IsNil() {
		panic("emitter: nil listener")
	}
	return &listener{
		id:      uuidx.NewString(),
		handler: reflectx.FunctionName(fn),
		sig:     reflectx.Signature{In: in},
	}
}

// argAs converts an emitted argument back to its static type. The checks in
// Emit guarantee the dynamic type, so the only failing case is a nil for an
// interface, pointer or other nillable parameter, which yields the zero value.
func argAs[A any](arg any) A {
	a, _ := arg.(A)
	return a
}

// On0 registers a listener without parameters. It panics if fn is nil.
func On0(e *Emitter, name string, fn func()) Subscription {
	l := typedListener(fn)
	l.call = func([]any) { fn() }
	return e.add(name, l)
}

// On1 registers a one-parameter listener that is called without reflection.
// It panics if fn is nil.
func On1[A any](e *Emitter, name string, fn func(A)) Subscription {
	l := typedListener(fn, reflect.TypeFor[A]())
	l.call = func(args []any) {
		fn(argAs[A](args[0]))
	}
	return e.add(name, l)
}

// On2 registers a two-parameter listener that is called without reflection.
// It panics if fn is nil.
func On2[A, B any](e *Emitter, name string, fn func(A, B)) Subscription {
	l := typedListener(fn, reflect.TypeFor[A](), reflect.TypeFor[B]())
	l.call = func(args []any) {
		fn(argAs[A](args[0]), argAs[B](args[1]))
	}
	return e.add(name, l)
}

// On3 registers a three-parameter listener that is called without reflection.
// It panics if fn is nil.
func On3[A, B, C any](e *Emitter, name string, fn func(A, B, C)) Subscription {
	l := typedListener(fn, reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]())
	l.call = func(args []any) {
		fn(argAs[A](args[0]), argAs[B](args[1]), argAs[C](args[2]))
	}
	return e.add(name, l)
}

// Emit0 emits the named event without arguments.
func Emit0(e *Emitter, name string) error {
	return e.emit(name, nil, nil)
}

// Emit1 emits the named event with one argument typed as A, which lets
// listeners taking an interface type match.
func Emit1[A any](e *Emitter, name string, a A) error {
	return e.emit(name, []reflect.Type{reflect.TypeFor[A]()}, []any{a})
}

// Emit2 is Emit1 for two arguments.
func Emit2[A, B any](e *Emitter, name string, a A, b B) error {
	return e.emit(name,
		[]reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()},
		[]any{a, b},
	)
}

// Emit3 is Emit1 for three arguments.
func Emit3[A, B, C any](e *Emitter, name string, a A, b B, c C) error {
	return e.emit(name,
		[]reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]()},
		[]any{a, b, c},
	)
}
