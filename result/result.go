// Package result provides Outcome, a three-state result used to carry
// conversion results without exceptions-as-control-flow: a value, an
// error with a cause, or deliberately nothing at all.
package result

import "fmt"

type state uint8

const (
	stateEmpty state = iota
	stateValue
	stateError
)

// Outcome holds exactly one of three states: Value, Error, or Empty.
// Empty is a terminal state of its own, not a flavor of error. The zero
// Outcome is Empty.
type Outcome[T any] struct {
	value T
	err   error
	state state
}

// Value wraps v in a successful Outcome.
func Value[T any](v T) Outcome[T] {
	return Outcome[T]{value: v, state: stateValue}
}

// Error wraps err in a failed Outcome. A nil err yields Empty, since an
// error state without a cause is indistinguishable from no result.
func Error[T any](err error) Outcome[T] {
	if err == nil {
		return Outcome[T]{}
	}
	return Outcome[T]{err: err, state: stateError}
}

// Empty returns the Outcome that carries neither a value nor an error.
func Empty[T any]() Outcome[T] {
	return Outcome[T]{}
}

// From adapts a conventional (value, error) pair: a non-nil error wins.
func From[T any](v T, err error) Outcome[T] {
	if err != nil {
		return Error[T](err)
	}
	return Value(v)
}

func (o Outcome[T]) IsValue() bool { return o.state == stateValue }
func (o Outcome[T]) IsError() bool { return o.state == stateError }
func (o Outcome[T]) IsEmpty() bool { return o.state == stateEmpty }

// Get returns the value and whether one is present.
func (o Outcome[T]) Get() (T, bool) {
	return o.value, o.state == stateValue
}

// MustGet returns the value or panics if the Outcome is not a Value.
func (o Outcome[T]) MustGet() T {
	if o.state != stateValue {
		panic(fmt.Sprintf("result: MustGet on %s outcome", o.stateName()))
	}
	return o.value
}

// ValueOr returns the value, or fallback when none is present.
func (o Outcome[T]) ValueOr(fallback T) T {
	if o.state == stateValue {
		return o.value
	}
	return fallback
}

// Err returns the cause when the Outcome is an Error, nil otherwise.
func (o Outcome[T]) Err() error {
	if o.state == stateError {
		return o.err
	}
	return nil
}

// OnValue invokes fn with the value when one is present. Returns the
// receiver so observers can be chained.
func (o Outcome[T]) OnValue(fn func(T)) Outcome[T] {
	if o.state == stateValue {
		fn(o.value)
	}
	return o
}

// OnError invokes fn with the cause when the Outcome is an Error.
func (o Outcome[T]) OnError(fn func(error)) Outcome[T] {
	if o.state == stateError {
		fn(o.err)
	}
	return o
}

// OnEmpty invokes fn when the Outcome is Empty.
func (o Outcome[T]) OnEmpty(fn func()) Outcome[T] {
	if o.state == stateEmpty {
		fn()
	}
	return o
}

func (o Outcome[T]) String() string {
	switch o.state {
	case stateValue:
		return fmt.Sprintf("Value(%v)", o.value)
	case stateError:
		return fmt.Sprintf("Error(%v)", o.err)
	default:
		return "Empty"
	}
}

func (o Outcome[T]) stateName() string {
	switch o.state {
	case stateValue:
		return "value"
	case stateError:
		return "error"
	default:
		return "empty"
	}
}

// Map transforms the value of a successful Outcome, passing Error and
// Empty through unchanged.
func Map[T, U any](o Outcome[T], fn func(T) U) Outcome[U] {
	switch o.state {
	case stateValue:
		return Value(fn(o.value))
	case stateError:
		return Error[U](o.err)
	default:
		return Empty[U]()
	}
}
