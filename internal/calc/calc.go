// Package calc implements the arithmetic core of the calculator service.
//
// All operations are pure functions on float64 pairs. They hold no state and
// are safe to call from any number of goroutines. The only failure mode in
// the whole package is division by zero, which is signaled with an explicit
// *DomainError instead of a panic so that callers cannot forget to handle it.
package calc

// DomainError is a failure arising from the mathematical definition of an
// operation (as opposed to bad input or an infrastructure fault).
//
// The error-handling layer discriminates on this concrete type with
// errors.As: a DomainError is always the client's fault (400), while any
// other error coming out of a computation is treated as internal (500).
type DomainError struct {
	msg string
}

func (e *DomainError) Error() string {
	return e.msg
}

// ErrDivideByZero is the single domain error the calculator can produce.
// The message is part of the API contract and must not change.
var ErrDivideByZero = &DomainError{msg: "Cannot divide by zero!"}

// Add returns the sum of a and b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns the difference when b is subtracted from a.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns the product of a and b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns the quotient of a divided by b.
//
// It returns ErrDivideByZero when b == 0, regardless of the sign or value
// of a. Note that negative zero compares equal to zero, so Divide(x, -0.0)
// fails as well.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}
