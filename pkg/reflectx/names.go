package reflectx

import (
	"reflect"

	"github.com/casualjim/mozart/internal/registry"
)

// VoidName is the name reported for the absence of a type.
const VoidName = "void"

var aliases = registry.New[uintptr, string]()

// TypeKey returns a key that uniquely identifies t within the running process.
// Type descriptors are canonical, so the descriptor address is stable for the
// lifetime of the program. It returns 0 for a nil type.
func TypeKey(t reflect.Type) uintptr {
	if t == nil {
		return 0
	}
	return reflect.ValueOf(t).Pointer()
}

// TypeName resolves t to a human readable name for diagnostics.
// Names registered with RegisterName take precedence over the name the
// reflect package reports. A nil type resolves to VoidName.
func TypeName(t reflect.Type) string {
	if t == nil {
		return VoidName
	}
	if alias, ok := aliases.Get(TypeKey(t)); ok {
		return alias
	}
	return t.String()
}

// NameOf resolves the name of the static type T.
func NameOf[T any]() string {
	return TypeName(reflect.TypeFor[T]())
}

// QualifiedName is like TypeName but uses the full import path for named types,
// which disambiguates types that share a package name.
func QualifiedName(t reflect.Type) string {
	if t == nil {
		return VoidName
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return TypeName(t)
	}
	return t.PkgPath() + "." + t.Name()
}

// RegisterName attaches a display name to T, returned by TypeName from then on.
func RegisterName[T any](name string) {
	aliases.Add(TypeKey(reflect.TypeFor[T]()), name)
}

// UnregisterName removes the display name previously registered for T.
func UnregisterName[T any]() {
	aliases.Del(TypeKey(reflect.TypeFor[T]()))
}
