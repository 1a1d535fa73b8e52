package observability

import (
	"time"

	"go.uber.org/zap"
)

// Field helpers keep call sites free of a direct zap import.

// String constructs a field with a string value.
func String(key, value string) zap.Field { return zap.String(key, value) }

// Strings constructs a field holding a slice of strings.
func Strings(key string, values []string) zap.Field { return zap.Strings(key, values) }

// Int constructs a field with an int value.
func Int(key string, value int) zap.Field { return zap.Int(key, value) }

// Bool constructs a field with a bool value.
func Bool(key string, value bool) zap.Field { return zap.Bool(key, value) }

// Float64 constructs a field with a float64 value.
func Float64(key string, value float64) zap.Field { return zap.Float64(key, value) }

// Duration constructs a field with a time.Duration value.
func Duration(key string, value time.Duration) zap.Field { return zap.Duration(key, value) }

// Error constructs a field that carries err under the "error" key.
func Error(err error) zap.Field { return zap.Error(err) }
