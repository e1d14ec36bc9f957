// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dispatch

// entry is one Code's running tally: how many values have been recorded
// against it, and their total encoded size in bits.
type entry struct {
	Count     uint64
	TotalBits uint64
}

// Stats accumulates, per Code, a count of values seen and a running sum
// of their encoded lengths. It is a commutative monoid under Merge, with
// the zero value (via NewStats) as identity.
type Stats struct {
	entries map[Code]entry
}

// NewStats returns an empty accumulator.
func NewStats() *Stats {
	return &Stats{entries: make(map[Code]entry)}
}

// Update computes the length of v under c and folds it into the running
// total for c.
func (s *Stats) Update(c Code, v uint64) {
	e := s.entries[c]
	e.Count++
	e.TotalBits += c.Len(v)
	s.entries[c] = e
}

// UpdateMany calls Update(c, v) for every v in vs.
func (s *Stats) UpdateMany(c Code, vs []uint64) {
	e := s.entries[c]
	for _, v := range vs {
		e.Count++
		e.TotalBits += c.Len(v)
	}
	s.entries[c] = e
}

// Count returns the number of values recorded against c.
func (s *Stats) Count(c Code) uint64 { return s.entries[c].Count }

// TotalBits returns the running sum of encoded lengths recorded against
// c.
func (s *Stats) TotalBits(c Code) uint64 { return s.entries[c].TotalBits }

// Codes returns the set of codes with at least one recorded sample, in
// no particular order.
func (s *Stats) Codes() []Code {
	codes := make([]Code, 0, len(s.entries))
	for c := range s.entries {
		codes = append(codes, c)
	}
	return codes
}

// Merge returns a new Stats combining s and other by componentwise
// addition of (count, total_bits) per code. Merge is associative and
// commutative, with an empty Stats as identity, so a slice of Stats from
// independent workers can be folded in any order.
func (s *Stats) Merge(other *Stats) *Stats {
	out := NewStats()
	for c, e := range s.entries {
		out.entries[c] = e
	}
	for c, e := range other.entries {
		acc := out.entries[c]
		acc.Count += e.Count
		acc.TotalBits += e.TotalBits
		out.entries[c] = acc
	}
	return out
}

// Best returns the code, among those with at least one sample, whose
// recorded TotalBits is smallest, and reports whether any samples were
// recorded at all.
func (s *Stats) Best() (best Code, ok bool) {
	first := true
	var min uint64
	for c, e := range s.entries {
		if first || e.TotalBits < min {
			best, min, first = c, e.TotalBits, false
		}
	}
	return best, !first
}
