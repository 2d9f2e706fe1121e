// Package debug provides the developer-facing debug log. It is silent unless
// enabled with SetDebug, and writes human-readable zerolog console lines to
// stderr.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	out     io.Writer = os.Stderr
	logger            = newLogger(os.Stderr, false, false)
)

func newLogger(w io.Writer, enable, disableColor bool) zerolog.Logger {
	level := zerolog.Disabled
	if enable {
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    disableColor,
		TimeFormat: "15:04:05.000",
	}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}

// rebuild must be called with mu held for writing.
func rebuild() {
	logger = newLogger(out, enabled, noColor)
}

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
	rebuild()
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
	rebuild()
}

// SetOutput redirects debug output. Passing nil restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
	rebuild()
}

// current returns a copy of the active logger.
func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := logger
	return &l
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	current().Debug().Msg(fmt.Sprintf(format, args...))
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	if !IsEnabled() {
		return
	}
	current().Debug().Msgf("=== %s ===", section)
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	if !IsEnabled() {
		return
	}
	current().Debug().Msgf("%s = %v", key, value)
}

// DebugJSON prints structured data as a JSON field
func DebugJSON(key string, v interface{}) {
	if !IsEnabled() {
		return
	}
	current().Debug().Interface(key, v).Msg(key)
}
