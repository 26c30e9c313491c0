// Copyright 2026 Joh06937. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

import "unsafe"

// Context is the opaque handle stored inside a callback.
//
// It is usually either the funcval address of a free function, as stored
// by [Function], or the address of a bound object, as stored by [Bind].
// In either case the trampoline paired with it is the only code that
// interprets it. Callers constructing callbacks by hand via [New] may
// store anything address-sized here, including nil.
type Context = unsafe.Pointer

// Callback is a non-owning reference to something invokable with
// signature R(A).
//
// A callback is two words: a context and a trampoline. It never owns,
// frees, or extends the lifetime of what the context points to; the
// referenced function or object must outlive every invocation of the
// callback. The zero Callback is unset: [Callback.IsSet] reports false
// and [Callback.Invoke] returns the zero value of R.
//
// Callbacks are trivially copyable values. Copies reference the same
// target; reassigning one copy never affects another.
type Callback[A, R any] struct {
	context Context
	functor func(Context, A) R
}

// New creates a callback from an explicit context/trampoline pair.
//
// This is the escape hatch for callers building their own trampolines;
// most callbacks should come from [Function], [Bind], or [BindValue].
// A nil context with a non-nil functor is legal.
func New[A, R any](context Context, functor func(Context, A) R) Callback[A, R] {
	return Callback[A, R]{context: context, functor: functor}
}

// IsSet reports whether the callback has a target.
func (c Callback[A, R]) IsSet() bool {
	return c.functor != nil
}

// Invoke calls the callback's target with a and returns its result.
//
// If the callback is unset, Invoke returns the zero value of R and has
// no side effects; callers that must distinguish "no target" from
// "target returned zero" check [Callback.IsSet] first. If the callback
// is set, the argument is forwarded to the trampoline exactly once,
// never stored, and any panic the target raises propagates unchanged.
func (c Callback[A, R]) Invoke(a A) R {
	if c.functor == nil {
		var zero R
		return zero
	}
	return c.functor(c.context, a)
}

// Equal reports whether c and other reference the same target.
//
// Equality is structural identity of the (context, trampoline) pair,
// not behavioral equivalence: two callbacks wrapping distinct
// trampolines that happen to do the same thing are never equal. Go func
// values are not comparable with ==, so trampolines are compared by
// funcval identity. Two unset callbacks compare equal.
func (c Callback[A, R]) Equal(other Callback[A, R]) bool {
	return c.context == other.context && funcval(c.functor) == funcval(other.functor)
}

// funcval returns the address of the funcval backing f, or nil for a
// nil func. f must be a value of func type.
func funcval[F any](f F) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&f))
}
