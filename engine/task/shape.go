package task

import "strings"

// Shape is one declared parameter-list form of a task: a sequence of
// named fixed slots, optionally followed by a variadic tail. Shapes are
// tagged explicitly rather than inferred from sentinel tokens, so arity
// checks never scan for markers.
type Shape struct {
	// Params names the fixed parameter slots, in order.
	Params []string
	// Variadic marks a shape that accepts any number of trailing
	// arguments after the fixed slots.
	Variadic bool
	// Rest names the variadic tail for help and error text.
	Rest string
}

// Fixed builds a shape with exactly the given parameter slots.
func Fixed(params ...string) Shape {
	return Shape{Params: params}
}

// Variadic builds a shape with the given fixed slots followed by a
// variadic tail named rest.
func Variadic(rest string, params ...string) Shape {
	return Shape{Params: params, Variadic: true, Rest: rest}
}

// Matches reports whether an invocation with n arguments fits the
// shape: exactly the fixed slot count, or at least that many when the
// shape is variadic.
func (s Shape) Matches(n int) bool {
	if s.Variadic {
		return n >= len(s.Params)
	}
	return n == len(s.Params)
}

// Drop returns the shape with n leading fixed slots removed, as seen by
// a partial application that has already bound n arguments. For a
// variadic shape the removal stops at the marker: once the fixed slots
// are exhausted the result is just the tail, which accepts any argument
// count. The second return is false when a fixed shape cannot absorb n
// bound arguments at all.
func (s Shape) Drop(n int) (Shape, bool) {
	if n <= len(s.Params) {
		out := Shape{Params: s.Params[n:], Variadic: s.Variadic, Rest: s.Rest}
		return out, true
	}
	if s.Variadic {
		return Shape{Variadic: true, Rest: s.Rest}, true
	}
	return Shape{}, false
}

// String renders the shape for error messages, e.g. "[from to]" or
// "[task & args]".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range s.Params {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p)
	}
	if s.Variadic {
		if len(s.Params) > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("& ")
		rest := s.Rest
		if rest == "" {
			rest = "args"
		}
		b.WriteString(rest)
	}
	b.WriteByte(']')
	return b.String()
}
