package mozart

import (
	"errors"
	"testing"

	"github.com/casualjim/mozart/emitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrow(t *testing.T) {
	var seen []error
	sub := emitter.On1(CoreEvents(), EventThrow, func(err error) {
		seen = append(seen, err)
	})
	t.Cleanup(sub.Unsubscribe)

	boom := errors.New("boom")
	assert.Same(t, boom, Throw(boom))
	require.Len(t, seen, 1)
	assert.Same(t, boom, seen[0])

	assert.NoError(t, Throw(nil))
	assert.Len(t, seen, 1, "nil is not emitted")
}

func TestThrow_WrappedErrors(t *testing.T) {
	var seen error
	sub := emitter.On1(CoreEvents(), EventThrow, func(err error) { seen = err })
	t.Cleanup(sub.Unsubscribe)

	base := errors.New("base")
	wrapped := Throw(errors.Join(base, errors.New("detail")))
	require.ErrorIs(t, wrapped, base)
	assert.ErrorIs(t, seen, base)
}

func TestThrow_BadListenerDoesNotHideError(t *testing.T) {
	sub, err := CoreEvents().On(EventThrow, func(int) {})
	require.NoError(t, err)
	t.Cleanup(sub.Unsubscribe)

	boom := errors.New("boom")
	assert.Same(t, boom, Throw(boom))
}

func TestThrow_EmitterErrors(t *testing.T) {
	var seen []error
	sub := emitter.On1(CoreEvents(), EventThrow, func(err error) {
		seen = append(seen, err)
	})
	t.Cleanup(sub.Unsubscribe)

	e := emitter.New(emitter.Attentive(true))
	emitter.On1(e, "count", func(int) {})

	emitErr := e.Emit("count", "three")
	require.ErrorIs(t, emitErr, emitter.ErrArgumentType)
	_, onErr := e.On("count", (func(int))(nil))
	require.ErrorIs(t, onErr, emitter.ErrNotFunction)

	require.Len(t, seen, 2)
	var argErr *emitter.ArgumentError
	require.ErrorAs(t, seen[0], &argErr)
	assert.Equal(t, "count", argErr.Event)
	assert.Equal(t, 0, argErr.Index)
	assert.ErrorIs(t, seen[1], emitter.ErrNotFunction)
}

func TestThrow_CoreEmitterErrorsAreNotRethrown(t *testing.T) {
	var seen []error
	good := emitter.On1(CoreEvents(), EventThrow, func(err error) {
		seen = append(seen, err)
	})
	t.Cleanup(good.Unsubscribe)
	bad, err := CoreEvents().On(EventThrow, func(string) {})
	require.NoError(t, err)
	t.Cleanup(bad.Unsubscribe)

	boom := errors.New("boom")
	assert.Same(t, boom, Throw(boom))
	require.Len(t, seen, 1, "the failed core emit does not come back as another throw")
	assert.Same(t, boom, seen[0])
}

func TestCoreEvents(t *testing.T) {
	assert.Same(t, CoreEvents(), CoreEvents())
}
