package box

import (
	"reflect"
	"unsafe"

	"github.com/casualjim/mozart/pkg/reflectx"
)

// InlineCapacity is the size of the inline buffer of a Box: three machine words.
const InlineCapacity = unsafe.Sizeof([3]uintptr{})

// Storage tells where a Box keeps its value.
type Storage uint8

const (
	StorageEmpty Storage = iota
	StorageInline
	StorageHeap
)

func (s Storage) String() string {
	switch s {
	case StorageEmpty:
		return "empty"
	case StorageInline:
		return "inline"
	case StorageHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// TypeID identifies the type of a stored value. The zero TypeID is Void.
// TypeIDs are comparable.
type TypeID struct {
	t reflect.Type
}

// Void is the TypeID of an empty box.
var Void TypeID

// TypeIDOf returns the TypeID of T.
func TypeIDOf[T any]() TypeID {
	return TypeID{t: reflect.TypeFor[T]()}
}

// Type returns the reflect.Type, nil for Void.
func (id TypeID) Type() reflect.Type {
	return id.t
}

// IsVoid reports whether id is Void.
func (id TypeID) IsVoid() bool {
	return id.t == nil
}

// String returns the diagnostic name of the type, "void" for Void.
func (id TypeID) String() string {
	return reflectx.TypeName(id.t)
}

// noCopy lets go vet flag a Box copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
