package slogx

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/casualjim/mozart/pkg/reflectx"
)

const (
	// KeyError is the attribute key used for errors.
	KeyError = "error"
	// KeyLoggerName is the attribute key used for the logger name.
	KeyLoggerName = "logger"
)

// Error returns an attribute carrying the message of err under KeyError.
// A nil error is rendered as "<nil>".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "<nil>")
	}
	return slog.String(KeyError, err.Error())
}

// Stringer returns an attribute with the string form of value.
func Stringer(key string, value fmt.Stringer) slog.Attr {
	return slog.String(key, value.String())
}

// Type returns an attribute with the diagnostic name of t, see reflectx.TypeName.
func Type(key string, t reflect.Type) slog.Attr {
	return slog.String(key, reflectx.TypeName(t))
}

// LoggerName returns an attribute naming the component that logs.
func LoggerName(name string) slog.Attr {
	return slog.String(KeyLoggerName, name)
}

// Logger returns the default logger scoped to the named component.
func Logger(name string) *slog.Logger {
	return slog.Default().With(LoggerName(name))
}
