/*
Package mozart is a small toolbox of generic building blocks.

The subpackages carry the actual functionality:

  - box: a type-erased single value container that keeps small pointer-free
    values inline and everything else in pooled heap slots
  - pool: a bounded free-list of preallocated slots of one type
  - emitter: an event emitter whose listeners may have any signature, with
    the emitted arguments checked before every call
  - timer: a stopwatch with time units, plus Delay and Measure helpers

This package itself owns the core event channel. Every failure the library
reports passes through Throw, which emits it as EventThrow on CoreEvents
before handing it back to the caller. Errors returned by any other emitter's
On and Emit are thrown the same way:

	sub := emitter.On1(mozart.CoreEvents(), mozart.EventThrow, func(err error) {
		slog.Warn("mozart failure", slogx.Error(err))
	})
	defer sub.Unsubscribe()

	b := box.New(nil)
	_, err := box.Get[int](b) // the listener sees box.ErrEmptyAccess

# Thread Safety

Emitters and Heaps are safe for concurrent use. Box values and pool
allocators are not; they are meant to be owned by one goroutine at a time,
like any other value.
*/
package mozart
