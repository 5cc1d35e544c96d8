package combinator

import "github.com/younwookim/fightstick/internal/domain/input"

// Tuple2 holds the values of a two-step sequence
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// Tuple3 holds the values of a three-step sequence
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple4 holds the values of a four-step sequence
type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Seq2 runs pa then pb on what pa left over
func Seq2[A, B any](pa Parser[A], pb Parser[B]) Parser[Tuple2[A, B]] {
	return func(in []input.Frame) ([]input.Frame, Tuple2[A, B], bool) {
		var t Tuple2[A, B]
		rest, a, ok := pa(in)
		if !ok {
			return in, t, false
		}
		rest, b, ok := pb(rest)
		if !ok {
			return in, t, false
		}
		t.First, t.Second = a, b
		return rest, t, true
	}
}

// Seq3 runs three parsers in sequence
func Seq3[A, B, C any](pa Parser[A], pb Parser[B], pc Parser[C]) Parser[Tuple3[A, B, C]] {
	return func(in []input.Frame) ([]input.Frame, Tuple3[A, B, C], bool) {
		var t Tuple3[A, B, C]
		rest, ab, ok := Seq2(pa, pb)(in)
		if !ok {
			return in, t, false
		}
		rest, c, ok := pc(rest)
		if !ok {
			return in, t, false
		}
		t.First, t.Second, t.Third = ab.First, ab.Second, c
		return rest, t, true
	}
}

// Seq4 runs four parsers in sequence
func Seq4[A, B, C, D any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D]) Parser[Tuple4[A, B, C, D]] {
	return func(in []input.Frame) ([]input.Frame, Tuple4[A, B, C, D], bool) {
		var t Tuple4[A, B, C, D]
		rest, abc, ok := Seq3(pa, pb, pc)(in)
		if !ok {
			return in, t, false
		}
		rest, d, ok := pd(rest)
		if !ok {
			return in, t, false
		}
		t.First, t.Second, t.Third, t.Fourth = abc.First, abc.Second, abc.Third, d
		return rest, t, true
	}
}
