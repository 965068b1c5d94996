// Package verbose provides a leveled logger for explaining matcher results.
// The level comes from counted -v flags:
//
//	1: explain results (show matches alongside the diff)
//	2: echo inputs and effective settings
//	3: show internal engine state (table sizes, prefix length)
//
// A level above 3 prints every message prefixed with its own level, which is
// only useful when debugging the logger thresholds themselves.
package verbose

import (
	"fmt"
	"io"
)

// Logger writes messages whose level does not exceed the configured level.
// A nil Logger or nil writer is a no-op.
type Logger struct {
	w     io.Writer
	level int
}

// New returns a Logger writing to w at the given level. If w is nil, all
// methods no-op.
func New(w io.Writer, level int) *Logger {
	return &Logger{w: w, level: level}
}

// Enabled reports whether messages at the given level would be written.
func (l *Logger) Enabled(level int) bool {
	return l != nil && l.w != nil && level <= l.level
}

// Printf writes a formatted message at the given level, with a trailing
// newline. Above level 3 every message is written with a "LOG(n):" prefix
// regardless of its level.
func (l *Logger) Printf(level int, format string, args ...interface{}) {
	if l == nil || l.w == nil {
		return
	}
	if l.level > 3 {
		fmt.Fprintf(l.w, "LOG(%d): "+format+"\n", append([]interface{}{level}, args...)...)
		return
	}
	if level <= l.level {
		fmt.Fprintf(l.w, format+"\n", args...)
	}
}

// Println writes msg at the given level, with a trailing newline.
func (l *Logger) Println(level int, msg string) {
	l.Printf(level, "%s", msg)
}
