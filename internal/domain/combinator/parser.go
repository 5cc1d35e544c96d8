// Package combinator provides backtracking parser primitives over a frame buffer.
//
// A buffer is ordered oldest first. Every parser consumes from the newest end
// and, on success, returns the remaining older prefix together with its value.
// Failure is silent: ok is false and the input is left untouched.
package combinator

import "github.com/younwookim/fightstick/internal/domain/input"

// Parser recognizes a value from the newest end of a buffer
type Parser[T any] func(in []input.Frame) (rest []input.Frame, out T, ok bool)

// Parse runs p against in
func Parse[T any](p Parser[T], in []input.Frame) ([]input.Frame, T, bool) {
	return p(in)
}

// Next consumes the newest frame
func Next() Parser[input.Frame] {
	return func(in []input.Frame) ([]input.Frame, input.Frame, bool) {
		if len(in) == 0 {
			return in, input.Frame{}, false
		}
		return in[:len(in)-1], in[len(in)-1], true
	}
}

// Peek runs p but returns the original buffer as the remainder
func Peek[T any](p Parser[T]) Parser[T] {
	return func(in []input.Frame) ([]input.Frame, T, bool) {
		_, out, ok := p(in)
		return in, out, ok
	}
}

// TakeWhileMN consumes between minN and maxN frames (inclusive) that satisfy pred.
// The value is the consumed run in chronological order.
func TakeWhileMN(minN, maxN int, pred func(input.Frame) bool) Parser[[]input.Frame] {
	return func(in []input.Frame) ([]input.Frame, []input.Frame, bool) {
		n := 0
		for n < maxN && n < len(in) && pred(in[len(in)-1-n]) {
			n++
		}
		if n < minN {
			return in, nil, false
		}
		split := len(in) - n
		return in[:split], in[split:], true
	}
}

// Map transforms the value of a successful parse
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(in []input.Frame) ([]input.Frame, U, bool) {
		rest, out, ok := p(in)
		if !ok {
			var zero U
			return in, zero, false
		}
		return rest, f(out), true
	}
}

// Value replaces the value of a successful parse with v
func Value[T, U any](v U, p Parser[T]) Parser[U] {
	return Map(p, func(T) U { return v })
}

// Verify fails when the parsed value does not satisfy check
func Verify[T any](p Parser[T], check func(T) bool) Parser[T] {
	return func(in []input.Frame) ([]input.Frame, T, bool) {
		rest, out, ok := p(in)
		if !ok || !check(out) {
			var zero T
			return in, zero, false
		}
		return rest, out, true
	}
}

// Alt tries each parser in order and returns the first success
func Alt[T any](parsers ...Parser[T]) Parser[T] {
	return func(in []input.Frame) ([]input.Frame, T, bool) {
		for _, p := range parsers {
			if rest, out, ok := p(in); ok {
				return rest, out, true
			}
		}
		var zero T
		return in, zero, false
	}
}

// FlatMap feeds the value of p into f to build the parser for the remainder
func FlatMap[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return func(in []input.Frame) ([]input.Frame, U, bool) {
		rest, out, ok := p(in)
		if !ok {
			var zero U
			return in, zero, false
		}
		rest, next, ok := f(out)(rest)
		if !ok {
			var zero U
			return in, zero, false
		}
		return rest, next, true
	}
}

// Preceded runs first then second, keeping only the value of second
func Preceded[T, U any](first Parser[T], second Parser[U]) Parser[U] {
	return FlatMap(first, func(T) Parser[U] { return second })
}
