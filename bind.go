// Copyright 2026 Joh06937. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

// Bound-method adapters. The object's address becomes the context and
// the trampoline captures exactly the method expression, which names
// the method at compile time; invocation is one indirect call through
// the trampoline, with no vtable lookup and no reflection. Construction
// allocates the one-word trampoline closure; invocation is
// allocation-free.
//
// Bind* takes a pointer-receiver method expression such as (*T).Method
// and may mutate the bound object. BindValue* takes a value-receiver
// method expression such as T.Method; the method receives a copy read
// from the live object at each invocation, so it observes current state
// but cannot mutate the original.

// Bind creates a callback from an object and a pointer-receiver method
// of signature R(A).
//
// Mutations the method performs land on *obj. The object must outlive
// every invocation; the callback performs no lifetime extension.
func Bind[T, A, R any](obj *T, method func(*T, A) R) Callback[A, R] {
	return Callback[A, R]{
		context: Context(obj),
		functor: func(ctx Context, a A) R {
			return method((*T)(ctx), a)
		},
	}
}

// BindValue is the read-only variant of [Bind] for a value-receiver
// method of signature R(A).
func BindValue[T, A, R any](obj *T, method func(T, A) R) Callback[A, R] {
	return Callback[A, R]{
		context: Context(obj),
		functor: func(ctx Context, a A) R {
			return method(*(*T)(ctx), a)
		},
	}
}

// Bind0 creates a callback from an object and a pointer-receiver method
// of signature R(). See [Bind] for the contract.
func Bind0[T, R any](obj *T, method func(*T) R) Callback0[R] {
	return Callback0[R]{
		context: Context(obj),
		functor: func(ctx Context) R {
			return method((*T)(ctx))
		},
	}
}

// BindValue0 is the read-only variant of [Bind0].
func BindValue0[T, R any](obj *T, method func(T) R) Callback0[R] {
	return Callback0[R]{
		context: Context(obj),
		functor: func(ctx Context) R {
			return method(*(*T)(ctx))
		},
	}
}

// Bind2 creates a callback from an object and a pointer-receiver method
// of signature R(A, B). See [Bind] for the contract.
func Bind2[T, A, B, R any](obj *T, method func(*T, A, B) R) Callback2[A, B, R] {
	return Callback2[A, B, R]{
		context: Context(obj),
		functor: func(ctx Context, a A, b B) R {
			return method((*T)(ctx), a, b)
		},
	}
}

// BindValue2 is the read-only variant of [Bind2].
func BindValue2[T, A, B, R any](obj *T, method func(T, A, B) R) Callback2[A, B, R] {
	return Callback2[A, B, R]{
		context: Context(obj),
		functor: func(ctx Context, a A, b B) R {
			return method(*(*T)(ctx), a, b)
		},
	}
}

// Bind3 creates a callback from an object and a pointer-receiver method
// of signature R(A, B, C). See [Bind] for the contract.
func Bind3[T, A, B, C, R any](obj *T, method func(*T, A, B, C) R) Callback3[A, B, C, R] {
	return Callback3[A, B, C, R]{
		context: Context(obj),
		functor: func(ctx Context, a A, b B, c C) R {
			return method((*T)(ctx), a, b, c)
		},
	}
}

// BindValue3 is the read-only variant of [Bind3].
func BindValue3[T, A, B, C, R any](obj *T, method func(T, A, B, C) R) Callback3[A, B, C, R] {
	return Callback3[A, B, C, R]{
		context: Context(obj),
		functor: func(ctx Context, a A, b B, c C) R {
			return method(*(*T)(ctx), a, b, c)
		},
	}
}
