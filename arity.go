// Copyright 2026 Joh06937. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

// The nullary, binary and ternary callback types. [Callback] is the
// unary primary and carries the full documentation; the method sets
// here are identical modulo arity. Targets with more than three
// parameters wrap them in a struct argument.

// Callback0 is a non-owning reference to something invokable with
// signature R().
type Callback0[R any] struct {
	context Context
	functor func(Context) R
}

// New0 creates a nullary callback from an explicit context/trampoline
// pair.
func New0[R any](context Context, functor func(Context) R) Callback0[R] {
	return Callback0[R]{context: context, functor: functor}
}

// IsSet reports whether the callback has a target.
func (c Callback0[R]) IsSet() bool {
	return c.functor != nil
}

// Invoke calls the callback's target; unset callbacks return the zero
// value of R.
func (c Callback0[R]) Invoke() R {
	if c.functor == nil {
		var zero R
		return zero
	}
	return c.functor(c.context)
}

// Equal reports structural identity of the (context, trampoline) pair.
func (c Callback0[R]) Equal(other Callback0[R]) bool {
	return c.context == other.context && funcval(c.functor) == funcval(other.functor)
}

// Callback2 is a non-owning reference to something invokable with
// signature R(A, B).
type Callback2[A, B, R any] struct {
	context Context
	functor func(Context, A, B) R
}

// New2 creates a binary callback from an explicit context/trampoline
// pair.
func New2[A, B, R any](context Context, functor func(Context, A, B) R) Callback2[A, B, R] {
	return Callback2[A, B, R]{context: context, functor: functor}
}

// IsSet reports whether the callback has a target.
func (c Callback2[A, B, R]) IsSet() bool {
	return c.functor != nil
}

// Invoke calls the callback's target; unset callbacks return the zero
// value of R.
func (c Callback2[A, B, R]) Invoke(a A, b B) R {
	if c.functor == nil {
		var zero R
		return zero
	}
	return c.functor(c.context, a, b)
}

// Equal reports structural identity of the (context, trampoline) pair.
func (c Callback2[A, B, R]) Equal(other Callback2[A, B, R]) bool {
	return c.context == other.context && funcval(c.functor) == funcval(other.functor)
}

// Callback3 is a non-owning reference to something invokable with
// signature R(A, B, C).
type Callback3[A, B, C, R any] struct {
	context Context
	functor func(Context, A, B, C) R
}

// New3 creates a ternary callback from an explicit context/trampoline
// pair.
func New3[A, B, C, R any](context Context, functor func(Context, A, B, C) R) Callback3[A, B, C, R] {
	return Callback3[A, B, C, R]{context: context, functor: functor}
}

// IsSet reports whether the callback has a target.
func (c Callback3[A, B, C, R]) IsSet() bool {
	return c.functor != nil
}

// Invoke calls the callback's target; unset callbacks return the zero
// value of R.
func (c Callback3[A, B, C, R]) Invoke(a A, b B, cc C) R {
	if c.functor == nil {
		var zero R
		return zero
	}
	return c.functor(c.context, a, b, cc)
}

// Equal reports structural identity of the (context, trampoline) pair.
func (c Callback3[A, B, C, R]) Equal(other Callback3[A, B, C, R]) bool {
	return c.context == other.context && funcval(c.functor) == funcval(other.functor)
}
