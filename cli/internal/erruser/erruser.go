// Package erruser provides errors that present a plain user-facing message.
// Error() returns only the message; the technical cause stays available via
// Unwrap() so the CLI can print it on a separate "Details:" line.
package erruser

import "errors"

// Err pairs a user-facing message with an optional cause. The primary error
// line shown to the user never contains Go error chains or syscall noise;
// those surface only through Unwrap().
type Err struct {
	Msg string
	Err error
}

// Error returns the user-facing message only.
func (e *Err) Error() string {
	if e == nil {
		return ""
	}
	return e.Msg
}

// Unwrap returns the underlying cause, or nil. Safe on a nil receiver.
func (e *Err) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New returns an error whose Error() is msg. A non-nil err is attached as the
// cause and reachable via errors.Is/As and Unwrap; a nil err yields a plain
// error with no cause.
func New(msg string, err error) error {
	if err == nil {
		return errors.New(msg)
	}
	return &Err{Msg: msg, Err: err}
}
