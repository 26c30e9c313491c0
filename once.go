// Copyright 2026 Joh06937. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback

import (
	"sync/atomic"
)

// Affine wraps a callback with one-shot enforcement.
// The callback can be resumed at most once; subsequent attempts to
// resume will panic (Resume) or return false (TryResume).
//
// Unlike a bare [Callback], an Affine is internally synchronized: when
// several goroutines race to resume, exactly one wins.
type Affine[A, R any] struct {
	used atomic.Uintptr
	cb   Callback[A, R]
}

// Once creates an affine callback from a regular callback.
// The returned Affine can be resumed at most once.
func Once[A, R any](cb Callback[A, R]) *Affine[A, R] {
	return &Affine[A, R]{cb: cb}
}

// Resume invokes the callback with the given argument.
// Panics if the callback has already been used.
func (a *Affine[A, R]) Resume(v A) R {
	if a.used.Add(1) != 1 {
		panic("callback: affine callback resumed twice")
	}
	return a.cb.Invoke(v)
}

// TryResume attempts to invoke the callback.
// Returns (result, true) on success, or (zero, false) if already used.
func (a *Affine[A, R]) TryResume(v A) (R, bool) {
	if a.used.Add(1) != 1 {
		var zero R
		return zero, false
	}
	return a.cb.Invoke(v), true
}

// Discard marks the callback as used without invoking it.
// This is useful for explicitly dropping a one-shot callback that will
// not be used.
func (a *Affine[A, R]) Discard() {
	a.used.Store(1)
}
