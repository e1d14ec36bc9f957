// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dispatch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStatsUpdateGammaScenario(t *testing.T) {
	// spec scenario 5: CodeStats.update over [0..9] with gamma:
	// total_bits = 48, count = 10.
	s := NewStats()
	g := NewGamma()
	for v := uint64(0); v < 10; v++ {
		s.Update(g, v)
	}
	if got, want := s.Count(g), uint64(10); got != want {
		t.Errorf("Count = %d, want %d", got, want)
	}
	if got, want := s.TotalBits(g), uint64(48); got != want {
		t.Errorf("TotalBits = %d, want %d", got, want)
	}
}

func TestStatsUpdateManyMatchesUpdate(t *testing.T) {
	g := NewGamma()
	values := []uint64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	s1 := NewStats()
	for _, v := range values {
		s1.Update(g, v)
	}
	s2 := NewStats()
	s2.UpdateMany(g, values)

	if s1.Count(g) != s2.Count(g) || s1.TotalBits(g) != s2.TotalBits(g) {
		t.Errorf("UpdateMany diverged from repeated Update: (%d,%d) vs (%d,%d)",
			s2.Count(g), s2.TotalBits(g), s1.Count(g), s1.TotalBits(g))
	}
}

func TestStatsMergeIsCommutative(t *testing.T) {
	g, d := NewGamma(), NewDelta()
	a := NewStats()
	a.UpdateMany(g, []uint64{1, 2, 3})
	a.UpdateMany(d, []uint64{10, 20})

	b := NewStats()
	b.UpdateMany(g, []uint64{4, 5})
	b.UpdateMany(d, []uint64{30})

	ab := a.Merge(b)
	ba := b.Merge(a)

	if diff := cmp.Diff(ab.entries, ba.entries); diff != "" {
		t.Errorf("Merge is not commutative (-ab +ba):\n%s", diff)
	}
}

func TestStatsMergeIdentity(t *testing.T) {
	g := NewGamma()
	a := NewStats()
	a.UpdateMany(g, []uint64{1, 2, 3, 4})
	empty := NewStats()

	if diff := cmp.Diff(a.Merge(empty).entries, a.entries); diff != "" {
		t.Errorf("a.Merge(empty) != a (-merged +a):\n%s", diff)
	}
	if diff := cmp.Diff(empty.Merge(a).entries, a.entries); diff != "" {
		t.Errorf("empty.Merge(a) != a (-merged +a):\n%s", diff)
	}
}

func TestStatsMergeIsAssociative(t *testing.T) {
	g, d := NewGamma(), NewDelta()
	a, b, c := NewStats(), NewStats(), NewStats()
	a.UpdateMany(g, []uint64{1, 2})
	b.UpdateMany(d, []uint64{3, 4})
	c.UpdateMany(g, []uint64{5, 6})

	left := a.Merge(b).Merge(c)
	right := a.Merge(b.Merge(c))
	if diff := cmp.Diff(left.entries, right.entries); diff != "" {
		t.Errorf("Merge is not associative (-left +right):\n%s", diff)
	}
}

func TestStatsBestPicksMinimumTotalBits(t *testing.T) {
	s := NewStats()
	values := make([]uint64, 0, 20)
	for v := uint64(0); v < 20; v++ {
		values = append(values, v)
	}
	unary, gamma, rice := NewUnary(), NewGamma(), NewRice(4)
	s.UpdateMany(unary, values)
	s.UpdateMany(gamma, values)
	s.UpdateMany(rice, values)

	best, ok := s.Best()
	if !ok {
		t.Fatal("Best() returned ok=false on non-empty Stats")
	}
	for _, c := range s.Codes() {
		if s.TotalBits(c) < s.TotalBits(best) {
			t.Errorf("Best() = %v (%d bits) but %v has fewer bits (%d)",
				best.Kind, s.TotalBits(best), c.Kind, s.TotalBits(c))
		}
	}
}

func TestStatsBestOnEmpty(t *testing.T) {
	s := NewStats()
	if _, ok := s.Best(); ok {
		t.Error("Best() on empty Stats returned ok=true")
	}
}

func TestStatsCodesLength(t *testing.T) {
	s := NewStats()
	s.Update(NewGamma(), 1)
	s.Update(NewDelta(), 1)
	s.Update(NewGamma(), 2)
	if got, want := len(s.Codes()), 2; got != want {
		t.Errorf("len(Codes()) = %d, want %d", got, want)
	}
}
