package emitter

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"slices"
	"strconv"
	"sync"

	"github.com/casualjim/mozart/pkg/reflectx"
	"github.com/casualjim/mozart/pkg/slogx"
	"github.com/casualjim/mozart/pkg/stdx"
	"github.com/casualjim/mozart/pkg/uuidx"
	"github.com/fogfish/opts"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// EnvDebug is the environment variable FromEnv consults to pick attentive mode.
const EnvDebug = "MOZART_DEBUG"

// Emitter dispatches named events to listeners of arbitrary signature.
type Emitter struct {
	mu        sync.RWMutex
	events    *orderedmap.OrderedMap[string, []*listener]
	attentive bool
}

// Attentive selects per-argument checking with detailed diagnostics.
var Attentive = opts.ForName[Emitter, bool]("attentive")

// New creates an emitter, in fast mode unless configured otherwise.
// It panics when an option fails to apply.
func New(options ...opts.Option[Emitter]) *Emitter {
	e := &Emitter{
		events: orderedmap.New[string, []*listener](),
	}
	if err := opts.Apply(e, options); err != nil {
		panic(err)
	}
	return e
}

// FromEnv creates an emitter in attentive mode when MOZART_DEBUG is set to
// anything but a false boolean, in fast mode otherwise. Explicit options are
// applied last.
func FromEnv(options ...opts.Option[Emitter]) *Emitter {
	debug := false
	if v := os.Getenv(EnvDebug); v != "" {
		parsed, err := strconv.ParseBool(v)
		debug = err != nil || parsed
	}
	return New(append([]opts.Option[Emitter]{Attentive(debug)}, options...)...)
}

// IsAttentive reports whether the emitter checks arguments one by one.
func (e *Emitter) IsAttentive() bool {
	return e.attentive
}

// On registers handler for the named event. handler must be a function; its
// results, if any, are discarded.
func (e *Emitter) On(name string, handler any) (Subscription, error) {
	if !reflectx.IsFunction(handler) {
		return nil, e.report(fmt.Errorf("%w: got %T for event %q", ErrNotFunction, handler, name))
	}

	fn := reflect.ValueOf(handler)
	if fn.IsNil() {
		return nil, e.report(fmt.Errorf("%w: got nil %T for event %q", ErrNotFunction, handler, name))
	}
	sig, _ := reflectx.SignatureOf(fn.Type())
	l := &listener{
		id:      uuidx.NewString(),
		handler: reflectx.FunctionName(handler),
		sig:     sig,
	}
	if direct, ok := handler.(func()); ok {
		l.call = func([]any) { direct() }
	} else {
		l.call = reflectCall(fn, sig)
	}
	return e.add(name, l), nil
}

func (e *Emitter) add(name string, l *listener) Subscription {
	e.mu.Lock()
	current, _ := e.events.Get(name)
	e.events.Set(name, append(slices.Clip(current), l))
	e.mu.Unlock()

	slog.Debug("registered event listener",
		slogx.LoggerName("emitter"),
		slog.String("event", name),
		slog.String("listener", l.handler),
		slog.String("signature", l.sig.String()),
	)
	return &subscription{emitter: e, event: name, id: l.id}
}

// Unregister removes every listener of the named event.
func (e *Emitter) Unregister(name string) {
	e.mu.Lock()
	_, present := e.events.Delete(name)
	e.mu.Unlock()

	if present {
		slog.Debug("unregistered event", slogx.LoggerName("emitter"), slog.String("event", name))
	}
}

func (e *Emitter) remove(name, id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	current, ok := e.events.Get(name)
	if !ok {
		return false
	}
	idx := slices.IndexFunc(current, func(l *listener) bool { return l.id == id })
	if idx < 0 {
		return false
	}
	if len(current) == 1 {
		e.events.Delete(name)
		return true
	}
	e.events.Set(name, slices.Delete(slices.Clone(current), idx, idx+1))
	return true
}

// Events returns the names of events that have listeners, in the order they
// were first registered.
func (e *Emitter) Events() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, e.events.Len())
	for pair := e.events.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// ListenerCount returns the number of listeners registered for name.
func (e *Emitter) ListenerCount(name string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	current, _ := e.events.Get(name)
	return len(current)
}

// Emit calls every listener of the named event with args. Arguments are
// matched by their dynamic type; an untyped nil matches any parameter that can
// hold nil. Emitting an event without listeners does nothing.
//
// Listeners run in registration order and each one is checked right before it
// runs, so when a listener does not accept args the ones before it have
// already been called. The returned error is an *ArgumentError.
func (e *Emitter) Emit(name string, args ...any) error {
	var types []reflect.Type
	if len(args) > 0 {
		types = make([]reflect.Type, len(args))
		for i, arg := range args {
			types[i] = reflect.TypeOf(arg)
		}
	}
	return e.emit(name, types, args)
}

// MustEmit is Emit but panics on error.
func (e *Emitter) MustEmit(name string, args ...any) {
	stdx.Must0(e.Emit(name, args...))
}

func (e *Emitter) emit(name string, types []reflect.Type, args []any) error {
	e.mu.RLock()
	current, ok := e.events.Get(name)
	e.mu.RUnlock()
	if !ok {
		return nil
	}

	for _, l := range current {
		if err := e.check(name, l, types); err != nil {
			return e.report(err)
		}
		l.call(args)
	}
	return nil
}

func (e *Emitter) check(name string, l *listener, types []reflect.Type) error {
	if !e.attentive {
		if l.accepts(types) {
			return nil
		}
		return &ArgumentError{
			Event:    name,
			Listener: l.handler,
			Index:    -1,
			Want:     l.sig.String(),
			Got:      describeArgs(types),
			Err:      ErrSignatureMismatch,
		}
	}

	if len(types) != len(l.sig.In) {
		return &ArgumentError{
			Event:    name,
			Listener: l.handler,
			Index:    -1,
			Want:     strconv.Itoa(len(l.sig.In)) + " arguments",
			Got:      strconv.Itoa(len(types)) + " arguments",
			Err:      ErrArgumentCount,
		}
	}
	for i, t := range types {
		if !reflectx.Accepts(l.sig.In[i], t) {
			return &ArgumentError{
				Event:    name,
				Listener: l.handler,
				Index:    i,
				Want:     argName(l.sig.In[i]),
				Got:      argName(t),
				Err:      ErrArgumentType,
			}
		}
	}
	return nil
}

// Subscription identifies a single registered listener.
type Subscription interface {
	// ID is unique for every registration, even of the same function.
	ID() string
	// Event is the event name the listener is registered for.
	Event() string
	// Unsubscribe removes the listener. Calling it again does nothing.
	Unsubscribe()
}

type subscription struct {
	emitter *Emitter
	event   string
	id      string
	once    sync.Once
}

func (s *subscription) ID() string {
	return s.id
}

func (s *subscription) Event() string {
	return s.event
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.emitter.remove(s.event, s.id)
	})
}
