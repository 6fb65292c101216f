package reflectx

import (
	"reflect"
	"runtime"
	"strings"
)

// IsFunction reports whether fn holds a function value.
func IsFunction(fn any) bool {
	if fn == nil {
		return false
	}
	return reflect.TypeOf(fn).Kind() == reflect.Func
}

// FunctionName returns a short name for fn suitable for log lines and error
// messages. Named function types report their type name, everything else the
// symbol name from the runtime without its package qualifier. Anonymous
// functions come back as funcN style names. It returns "" when fn is not a
// function.
func FunctionName(fn any) string {
	if !IsFunction(fn) {
		return ""
	}

	val := reflect.ValueOf(fn)
	typ := val.Type()
	if typ.Name() != "" {
		return typ.String()
	}

	rf := runtime.FuncForPC(val.Pointer())
	if rf == nil {
		return typ.String()
	}
	name := rf.Name()
	if lastDot := strings.LastIndex(name, "."); lastDot >= 0 {
		name = name[lastDot+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

// Signature describes the parameter list of a function type.
type Signature struct {
	In       []reflect.Type
	Variadic bool
}

// String renders the parameter list the way it appears in Go source,
// without parameter names.
func (s Signature) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, in := range s.In {
		if i > 0 {
			b.WriteString(", ")
		}
		if s.Variadic && i == len(s.In)-1 {
			b.WriteString("...")
			b.WriteString(TypeName(in.Elem()))
			continue
		}
		b.WriteString(TypeName(in))
	}
	b.WriteByte(')')
	return b.String()
}

// Matches reports whether arguments of the given types can be passed to a
// function with signature s, see Accepts.
func (s Signature) Matches(args []reflect.Type) bool {
	if len(args) != len(s.In) {
		return false
	}
	for i, arg := range args {
		if !Accepts(s.In[i], arg) {
			return false
		}
	}
	return true
}

// Accepts reports whether an argument of type arg can be passed for a
// parameter of type param. Types must be identical; a nil arg stands for an
// untyped nil and matches any parameter that can hold nil.
func Accepts(param, arg reflect.Type) bool {
	if arg == nil {
		return IsNillable(param)
	}
	return param == arg
}

// SignatureOf returns the parameter signature of the function type ft.
// The second return value is false when ft is not a function type.
func SignatureOf(ft reflect.Type) (Signature, bool) {
	if ft == nil || ft.Kind() != reflect.Func {
		return Signature{}, false
	}
	sig := Signature{
		In:       make([]reflect.Type, ft.NumIn()),
		Variadic: ft.IsVariadic(),
	}
	for i := range sig.In {
		sig.In[i] = ft.In(i)
	}
	return sig, true
}

// IsNillable reports whether a nil value can be assigned to a variable of type t.
func IsNillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
