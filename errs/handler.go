package errs

import (
	"fmt"
	"os"
)

// Action is the disposition a Handler chooses for a reported error.
type Action int

const (
	// ActionReturn hands the error back to the caller as a normal Go error.
	ActionReturn Action = iota
	// ActionExit terminates the process with a non-zero status after
	// printing the error.
	ActionExit
	// ActionAbort terminates the process immediately via panic, for
	// callers that want a stack trace at the point of failure.
	ActionAbort
)

// Handler is the process-wide error-handler capability described by the
// spec: a single installed value consulted by outer callers (e.g. the
// cmd/seqio-convert CLI) to decide how to react to a reported error.
//
// Library functions never consult a Handler themselves; they always return
// a plain error. Handler exists for callers that want one policy applied
// uniformly across many call sites instead of checking errors individually.
type Handler interface {
	Handle(err error) Action
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(err error) Action

// Handle calls f(err).
func (f HandlerFunc) Handle(err error) Action {
	return f(err)
}

// ReturnHandler always chooses ActionReturn.
var ReturnHandler Handler = HandlerFunc(func(error) Action { return ActionReturn })

var active = ReturnHandler

// SetHandler installs h as the process-wide handler. Intended to be called
// once during program init; not safe to call concurrently with Report.
func SetHandler(h Handler) {
	if h == nil {
		h = ReturnHandler
	}
	active = h
}

// ActiveHandler returns the currently installed handler.
func ActiveHandler() Handler {
	return active
}

// Report asks the installed handler what to do about err, and carries out
// ActionExit/ActionAbort itself. Returns err unchanged when the handler
// chooses ActionReturn, so callers can write:
//
//	if err != nil {
//	    return errs.Report(err)
//	}
func Report(err error) error {
	if err == nil {
		return nil
	}

	switch active.Handle(err) {
	case ActionAbort:
		panic(err)
	case ActionExit:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)

		return err // unreachable, satisfies the compiler
	default:
		return err
	}
}
