package tuple

import (
	"errors"
	"fmt"
)

// ArityError reports a dynamic argument list of the wrong length.
type ArityError struct {
	Want int
	Got  int
}

// Error reports the expected and actual argument counts.
func (e *ArityError) Error() string {
	return fmt.Sprintf("tuple: want %d argument(s), got %d", e.Want, e.Got)
}

// TypeError reports a dynamic argument whose type does not match its slot.
type TypeError struct {
	Index int
	Want  string
	Got   any
}

// Error reports the argument position and its expected type.
func (e *TypeError) Error() string {
	return fmt.Sprintf("tuple: argument %d: want %s, got %T", e.Index, e.Want, e.Got)
}

// IsArityError reports whether err (or anything it wraps) is an ArityError.
func IsArityError(err error) bool {
	var ae *ArityError
	return errors.As(err, &ae)
}

// IsTypeError reports whether err (or anything it wraps) is a TypeError.
func IsTypeError(err error) bool {
	var te *TypeError
	return errors.As(err, &te)
}

func checkArity(vs []any, want int) error {
	if len(vs) != want {
		return &ArityError{Want: want, Got: len(vs)}
	}
	return nil
}

func slot[T any](vs []any, i int) (T, error) {
	v, ok := vs[i].(T)
	if !ok {
		var zero T
		return zero, &TypeError{Index: i, Want: fmt.Sprintf("%T", zero), Got: vs[i]}
	}
	return v, nil
}

// From0 unpacks an empty dynamic argument list.
func From0(vs []any) (Unit, error) {
	return Unit{}, checkArity(vs, 0)
}

// From1 unpacks a single dynamic argument.
func From1[A any](vs []any) (A, error) {
	var zero A
	if err := checkArity(vs, 1); err != nil {
		return zero, err
	}
	return slot[A](vs, 0)
}

// From2 unpacks two dynamic arguments into a T2.
func From2[A, B any](vs []any) (T2[A, B], error) {
	var t T2[A, B]
	if err := checkArity(vs, 2); err != nil {
		return t, err
	}
	var err error
	if t.V0, err = slot[A](vs, 0); err != nil {
		return t, err
	}
	if t.V1, err = slot[B](vs, 1); err != nil {
		return t, err
	}
	return t, nil
}

// From3 unpacks three dynamic arguments into a T3.
func From3[A, B, C any](vs []any) (T3[A, B, C], error) {
	var t T3[A, B, C]
	if err := checkArity(vs, 3); err != nil {
		return t, err
	}
	var err error
	if t.V0, err = slot[A](vs, 0); err != nil {
		return t, err
	}
	if t.V1, err = slot[B](vs, 1); err != nil {
		return t, err
	}
	if t.V2, err = slot[C](vs, 2); err != nil {
		return t, err
	}
	return t, nil
}

// From4 unpacks four dynamic arguments into a T4.
func From4[A, B, C, D any](vs []any) (T4[A, B, C, D], error) {
	var t T4[A, B, C, D]
	if err := checkArity(vs, 4); err != nil {
		return t, err
	}
	var err error
	if t.V0, err = slot[A](vs, 0); err != nil {
		return t, err
	}
	if t.V1, err = slot[B](vs, 1); err != nil {
		return t, err
	}
	if t.V2, err = slot[C](vs, 2); err != nil {
		return t, err
	}
	if t.V3, err = slot[D](vs, 3); err != nil {
		return t, err
	}
	return t, nil
}
