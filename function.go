// Copyright 2026 Joh06937. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

import "unsafe"

// Free-function adapters. The function's own funcval address becomes
// the context, and the trampoline is a static per-signature generic
// instantiation that rebuilds the typed func value and calls it. It is
// tempting to store the function itself as the trampoline, but the
// trampoline signature always carries the extra context parameter so
// the bound-method adapters can share the calling convention; the
// function's signature can never match it directly.

// Function creates a callback from a function of signature R(A).
//
// Construction performs no allocation, and two callbacks made from the
// same function compare equal. fn must remain valid for as long as the
// callback is invoked. A nil fn yields a callback that is set
// (IsSet reports true, context is nil) but panics when invoked; passing
// nil is a producer error the callback does not guard against.
func Function[A, R any](fn func(A) R) Callback[A, R] {
	return Callback[A, R]{
		context: funcval(fn),
		functor: invokeFunction[A, R],
	}
}

// invokeFunction is the free-function trampoline: the context is the
// funcval of a func(A) R.
func invokeFunction[A, R any](ctx Context, a A) R {
	fn := *(*func(A) R)(unsafe.Pointer(&ctx))
	return fn(a)
}

// Function0 creates a callback from a function of signature R().
// See [Function] for the contract.
func Function0[R any](fn func() R) Callback0[R] {
	return Callback0[R]{
		context: funcval(fn),
		functor: invokeFunction0[R],
	}
}

func invokeFunction0[R any](ctx Context) R {
	fn := *(*func() R)(unsafe.Pointer(&ctx))
	return fn()
}

// Function2 creates a callback from a function of signature R(A, B).
// See [Function] for the contract.
func Function2[A, B, R any](fn func(A, B) R) Callback2[A, B, R] {
	return Callback2[A, B, R]{
		context: funcval(fn),
		functor: invokeFunction2[A, B, R],
	}
}

func invokeFunction2[A, B, R any](ctx Context, a A, b B) R {
	fn := *(*func(A, B) R)(unsafe.Pointer(&ctx))
	return fn(a, b)
}

// Function3 creates a callback from a function of signature R(A, B, C).
// See [Function] for the contract.
func Function3[A, B, C, R any](fn func(A, B, C) R) Callback3[A, B, C, R] {
	return Callback3[A, B, C, R]{
		context: funcval(fn),
		functor: invokeFunction3[A, B, C, R],
	}
}

func invokeFunction3[A, B, C, R any](ctx Context, a A, b B, c C) R {
	fn := *(*func(A, B, C) R)(unsafe.Pointer(&ctx))
	return fn(a, b, c)
}
