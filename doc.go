// Copyright 2026 Joh06937. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package callback provides non-owning, non-allocating callable
// references.
//
// The core type [Callback] uniformly represents either a free function
// or an object-bound method behind one calling convention, so a
// component can accept "something invokable with signature R(A)"
// without heap-allocated wrappers, interface boxing, or virtual
// dispatch. A callback is two words — an opaque context pointer and a
// trampoline function pointer — and only the trampoline knows how to
// interpret the context.
//
// # Design Philosophy
//
// callback provides:
//   - A fixed-size, trivially copyable "fat function pointer" value
//     instead of boxed polymorphism
//   - Compile-time target resolution: each adapter instantiates one
//     statically typed trampoline per signature or bind site
//   - Allocation-free invocation for every adapter; construction is
//     allocation-free except for the one-word bound-method trampoline
//     closure
//
// Nothing is owned. The callback never frees, copies deeply, or extends
// the lifetime of the referenced function or object; the reference is
// valid only while its target is. That contract is the caller's
// obligation, not something the type detects.
//
// # Core Type
//
//   - [Callback]: unary reference R(A), the primary type
//   - [Callback0], [Callback2], [Callback3]: the other supported
//     arities, with identical semantics
//   - [Context]: the opaque handle stored inside a callback
//
// Each type supports:
//
//   - IsSet: whether a target is assigned; the boolean truth value of a
//     callback
//   - Invoke: the sole invocation entry point — unset callbacks return
//     the zero value of R with no side effects, set callbacks forward
//     arguments to the trampoline exactly once
//   - Equal: structural identity of the (context, trampoline) pair,
//     never behavioral equality
//
// # Adapters
//
//   - [Function], [Function0], [Function2], [Function3]: wrap a free
//     function; the function's own funcval address is the context
//   - [Bind], [Bind0], [Bind2], [Bind3]: bind an object to one of its
//     pointer-receiver methods via a method expression such as
//     (*T).Method; mutations land on the original object
//   - [BindValue], [BindValue0], [BindValue2], [BindValue3]: the
//     read-only variants for value-receiver method expressions such as
//     T.Method; the method sees current state but cannot mutate it
//   - [New], [New0], [New2], [New3]: escape hatch for hand-built
//     context/trampoline pairs
//
// # One-Shot Callbacks
//
// [Affine] wraps a callback with resume-at-most-once enforcement:
//
//   - [Once]: create an affine callback
//   - [Affine.Resume]: invoke (panics on reuse)
//   - [Affine.TryResume]: non-panicking variant
//   - [Affine.Discard]: drop without invoking
//
// # Error Model
//
// Invoking an unset callback is not an error: it yields R's zero value.
// Whatever the target raises — a panic, a runtime fault — propagates
// through the trampoline unchanged; the callback neither recovers,
// wraps, nor logs. Invoking a callback whose target has been destroyed,
// or one built from a nil function, is undefined; the nil-function case
// panics at the call site (see [Function]).
//
// # Concurrency
//
// A callback value follows plain-old-data discipline: concurrent
// invocation, copying, and comparison are safe as long as no goroutine
// concurrently reassigns the same storage location. The callback adds
// no locking of its own and never serializes access to the bound
// object. [Affine] alone is internally synchronized.
//
// # Example
//
//	type talker struct {
//		listener callback.Callback[int, bool]
//	}
//
//	func (t *talker) subscribe(cb callback.Callback[int, bool]) {
//		t.listener = cb
//	}
//
//	func (t *talker) talk() bool {
//		// Unset listeners yield false, the zero bool; check IsSet
//		// first when that matters.
//		return t.listener.Invoke(1234)
//	}
//
//	type listener struct{ threshold int }
//
//	func (l *listener) handle(arg int) bool {
//		return arg > l.threshold
//	}
//
//	func run() {
//		t := &talker{}
//		l := &listener{threshold: 100}
//		t.subscribe(callback.Bind(l, (*listener).handle))
//		_ = t.talk() // true
//	}
package callback
