package emitter

import "sync/atomic"

// ErrorHook observes errors returned by On and Emit of any emitter.
type ErrorHook func(source *Emitter, err error)

var errorHook atomic.Pointer[ErrorHook]

// SetErrorHook installs hook for every emitter in the process and returns the
// hook it replaces. A nil hook removes the current one. The hook runs on the
// goroutine that got the error, before On or Emit return it.
func SetErrorHook(hook ErrorHook) ErrorHook {
	var prev *ErrorHook
	if hook == nil {
		prev = errorHook.Swap(nil)
	} else {
		prev = errorHook.Swap(&hook)
	}
	if prev == nil {
		return nil
	}
	return *prev
}

func (e *Emitter) report(err error) error {
	if hook := errorHook.Load(); hook != nil {
		(*hook)(e, err)
	}
	return err
}
