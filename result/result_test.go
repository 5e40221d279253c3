package result

import (
	"errors"
	"testing"
)

func TestValueOutcome(t *testing.T) {
	o := Value(42)

	if !o.IsValue() {
		t.Error("Value outcome should report IsValue")
	}
	if o.IsError() || o.IsEmpty() {
		t.Error("Value outcome should not report IsError or IsEmpty")
	}

	v, ok := o.Get()
	if !ok {
		t.Fatal("Get should succeed on a Value outcome")
	}
	if v != 42 {
		t.Errorf("expected 42, got %d", v)
	}
	if o.Err() != nil {
		t.Errorf("Err should be nil on a Value outcome, got %v", o.Err())
	}
}

func TestErrorOutcome(t *testing.T) {
	cause := errors.New("boom")
	o := Error[int](cause)

	if !o.IsError() {
		t.Error("Error outcome should report IsError")
	}
	if o.IsValue() || o.IsEmpty() {
		t.Error("Error outcome should not report IsValue or IsEmpty")
	}
	if !errors.Is(o.Err(), cause) {
		t.Errorf("Err should return the cause, got %v", o.Err())
	}

	if _, ok := o.Get(); ok {
		t.Error("Get should not succeed on an Error outcome")
	}
}

func TestEmptyOutcome(t *testing.T) {
	o := Empty[string]()

	if !o.IsEmpty() {
		t.Error("Empty outcome should report IsEmpty")
	}
	if o.IsValue() || o.IsError() {
		t.Error("Empty outcome should not report IsValue or IsError")
	}
	if o.Err() != nil {
		t.Error("Err should be nil on an Empty outcome")
	}
}

func TestZeroOutcomeIsEmpty(t *testing.T) {
	var o Outcome[int]

	if !o.IsEmpty() {
		t.Error("zero Outcome should be Empty")
	}
}

func TestErrorWithNilCauseIsEmpty(t *testing.T) {
	o := Error[int](nil)

	if !o.IsEmpty() {
		t.Error("Error(nil) should collapse to Empty")
	}
	if o.IsError() {
		t.Error("Error(nil) should not report IsError")
	}
}

func TestFrom(t *testing.T) {
	if o := From(7, nil); !o.IsValue() || o.MustGet() != 7 {
		t.Errorf("From with nil error should be Value(7), got %s", o)
	}

	cause := errors.New("nope")
	if o := From(0, cause); !o.IsError() || !errors.Is(o.Err(), cause) {
		t.Errorf("From with error should be Error, got %s", o)
	}
}

func TestMustGetPanicsOnNonValue(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGet on Empty should panic")
		}
	}()

	Empty[int]().MustGet()
}

func TestValueOr(t *testing.T) {
	if got := Value(3).ValueOr(9); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if got := Empty[int]().ValueOr(9); got != 9 {
		t.Errorf("expected fallback 9, got %d", got)
	}
	if got := Error[int](errors.New("x")).ValueOr(9); got != 9 {
		t.Errorf("expected fallback 9 on error, got %d", got)
	}
}

func TestObserverChaining(t *testing.T) {
	var sawValue, sawError, sawEmpty bool

	Value("hi").
		OnValue(func(s string) { sawValue = true }).
		OnError(func(err error) { sawError = true }).
		OnEmpty(func() { sawEmpty = true })

	if !sawValue {
		t.Error("OnValue should fire for a Value outcome")
	}
	if sawError || sawEmpty {
		t.Error("OnError and OnEmpty should not fire for a Value outcome")
	}
}

func TestObserversFireOncePerState(t *testing.T) {
	var got error
	cause := errors.New("bad input")

	Error[int](cause).
		OnValue(func(int) { t.Error("OnValue should not fire") }).
		OnError(func(err error) { got = err })

	if !errors.Is(got, cause) {
		t.Errorf("OnError should receive the cause, got %v", got)
	}

	fired := false
	Empty[int]().OnEmpty(func() { fired = true })
	if !fired {
		t.Error("OnEmpty should fire for an Empty outcome")
	}
}

func TestMap(t *testing.T) {
	doubled := Map(Value(21), func(v int) int { return v * 2 })
	if doubled.MustGet() != 42 {
		t.Errorf("expected 42, got %d", doubled.MustGet())
	}

	cause := errors.New("broken")
	mappedErr := Map(Error[int](cause), func(v int) string { return "unused" })
	if !mappedErr.IsError() || !errors.Is(mappedErr.Err(), cause) {
		t.Error("Map should pass Error through unchanged")
	}

	mappedEmpty := Map(Empty[int](), func(v int) string { return "unused" })
	if !mappedEmpty.IsEmpty() {
		t.Error("Map should pass Empty through unchanged")
	}
}

func TestString(t *testing.T) {
	if got := Value(5).String(); got != "Value(5)" {
		t.Errorf("unexpected String for value: %q", got)
	}
	if got := Empty[int]().String(); got != "Empty" {
		t.Errorf("unexpected String for empty: %q", got)
	}
	if got := Error[int](errors.New("boom")).String(); got != "Error(boom)" {
		t.Errorf("unexpected String for error: %q", got)
	}
}
