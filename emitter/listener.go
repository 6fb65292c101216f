package emitter

import (
	"reflect"

	"github.com/casualjim/mozart/pkg/reflectx"
)

type listener struct {
	id      string
	handler string
	sig     reflectx.Signature
	call    func(args []any)
}

func (l *listener) accepts(types []reflect.Type) bool {
	return l.sig.Matches(types)
}

func reflectCall(fn reflect.Value, sig reflectx.Signature) func([]any) {
	return func(args []any) {
		in := make([]reflect.Value, len(args))
		for i, arg := range args {
			if arg == nil {
				in[i] = reflect.Zero(sig.In[i])
				continue
			}
			in[i] = reflect.ValueOf(arg)
		}
		if sig.Variadic {
			fn.CallSlice(in)
			return
		}
		fn.Call(in)
	}
}
