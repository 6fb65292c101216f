// Package emitter provides a Node-style event emitter whose listeners may
// have any function signature, with the argument list checked at emit time.
//
// Listeners are registered under an event name and run synchronously, in
// registration order, every time the event is emitted. Before a listener runs
// the emitted arguments are compared against its parameter list. Two checking
// modes exist:
//
//   - fast (default): the whole argument list is compared in one step and a
//     mismatch reports ErrSignatureMismatch.
//   - attentive: the argument count is compared first (ErrArgumentCount) and
//     then every position (ErrArgumentType), reporting which argument is wrong
//     and the expected and provided type names. Useful while debugging.
//
// Arguments given to Emit are typed by their dynamic type, so a listener taking
// an interface only matches when emitting through the typed helpers (Emit1 and
// friends), which use the static type of their type parameters:
//
//	em := emitter.New()
//	emitter.On1(em, "expr", func(expr string) {
//	    fmt.Println("evaluating:", expr)
//	})
//	_ = em.Emit("expr", "1 + 1")      // ok
//	_ = em.Emit("expr", 42)           // ErrSignatureMismatch
//
//	emitter.On1(em, "failure", func(err error) { log.Println(err) })
//	_ = emitter.Emit1[error](em, "failure", io.EOF)
//
// The typed registration helpers (On0 .. On3) call listeners without
// reflection. Listeners registered with On are called through reflection
// unless they take no arguments.
//
// Every error On and Emit return is also passed to the hook installed with
// SetErrorHook. The root mozart package uses it to throw emitter errors on its
// core channel.
//
// An Emitter is safe for concurrent use. Emission works on a snapshot of the
// listener list and runs listeners outside of any lock, so listeners may
// register, unsubscribe or emit themselves.
package emitter
