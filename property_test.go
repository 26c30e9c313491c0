// Copyright 2026 Joh06937. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package callback_test

import (
	"math/rand/v2"
	"testing"

	"github.com/joh06937/callback"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// TestPropertyFunctionMatchesDirectCall: Function(f).Invoke(x) ≡ f(x)
func TestPropertyFunctionMatchesDirectCall(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	doubled := callback.Function(double)
	positive := callback.Function(isPositive)
	for range propertyN {
		x := randInt(rng)
		if got, want := doubled.Invoke(x), double(x); got != want {
			t.Fatalf("double: %d != %d (x=%d)", got, want, x)
		}
		if got, want := positive.Invoke(x), isPositive(x); got != want {
			t.Fatalf("isPositive: %v != %v (x=%d)", got, want, x)
		}
	}
}

// TestPropertyBindMatchesMethodCall: driving an object through a bound
// callback leaves it in the same state as driving a twin directly.
func TestPropertyBindMatchesMethodCall(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	var direct, bound accumulator
	cb := callback.Bind(&bound, (*accumulator).add)
	for range propertyN {
		x := randInt(rng)
		if got, want := cb.Invoke(x), direct.add(x); got != want {
			t.Fatalf("bound result %d != direct %d (x=%d)", got, want, x)
		}
	}
	if bound.total != direct.total {
		t.Fatalf("final state %d != %d", bound.total, direct.total)
	}
}

// TestPropertyEqualityReflexiveSymmetric over a mixed population of
// unset, free-function, and bound callbacks.
func TestPropertyEqualityReflexiveSymmetric(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	var a, b accumulator
	population := []callback.Callback[int, int]{
		{},
		callback.Function(double),
		callback.Bind(&a, (*accumulator).add),
		callback.Bind(&b, (*accumulator).add),
		callback.BindValue(&a, accumulator.plus),
	}
	for range propertyN {
		x := population[rng.IntN(len(population))]
		y := population[rng.IntN(len(population))]
		if !x.Equal(x) {
			t.Fatal("equality not reflexive")
		}
		if x.Equal(y) != y.Equal(x) {
			t.Fatal("equality not symmetric")
		}
	}
}

// TestPropertyCopyInvariance: a copy of a callback is indistinguishable
// from the original under invocation and equality.
func TestPropertyCopyInvariance(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	cb := callback.Function(double)
	cp := cb
	for range propertyN {
		x := randInt(rng)
		if cb.Invoke(x) != cp.Invoke(x) {
			t.Fatalf("copy diverged (x=%d)", x)
		}
		if !cb.Equal(cp) {
			t.Fatal("copy unequal to original")
		}
	}
}

// TestPropertyReassignIndependence: reassigning one copy never changes
// what the other copy invokes.
func TestPropertyReassignIndependence(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		x := randInt(rng)
		cb := callback.Function(isPositive)
		cp := cb
		if !cb.Equal(cp) {
			t.Fatal("copy unequal to original")
		}
		cp = callback.Function(isNegative)
		if cb.Invoke(x) != isPositive(x) {
			t.Fatalf("original changed by reassigning copy (x=%d)", x)
		}
		if cp.Invoke(x) != isNegative(x) {
			t.Fatalf("reassigned copy wrong (x=%d)", x)
		}
	}
}
