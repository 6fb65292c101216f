package mozart

import (
	"log/slog"

	"github.com/casualjim/mozart/emitter"
	"github.com/casualjim/mozart/pkg/slogx"
)

// EventThrow is the core event emitted for every error passed to Throw.
// Listeners take a single error argument.
const EventThrow = "throw_ex"

var core = emitter.FromEnv()

func init() {
	// errors of the core emitter itself are logged by Throw, not thrown again
	emitter.SetErrorHook(func(source *emitter.Emitter, err error) {
		if source != core {
			Throw(err)
		}
	})
}

// CoreEvents returns the process wide emitter that carries the core events.
func CoreEvents() *emitter.Emitter {
	return core
}

// Throw reports err on the core channel and returns it unchanged, so library
// code can write `return mozart.Throw(err)`. A nil error is returned as is
// without emitting anything.
func Throw(err error) error {
	if err == nil {
		return nil
	}

	slog.Debug("throw", slogx.LoggerName("mozart"), slogx.Error(err))
	if emitErr := emitter.Emit1(core, EventThrow, err); emitErr != nil {
		// a throw listener with the wrong signature must not hide the original error
		slog.Warn("failed to emit throw event",
			slogx.LoggerName("mozart"),
			slogx.Error(emitErr),
		)
	}
	return err
}
