// Copyright 2024, The bitcode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build debug

package codetab

import (
	"fmt"
	"strings"
)

// Adapted from internal/prefix/debug.go's padBase2/padBase10: render a
// fixed-width binary or decimal field, right-justified.

func padBase2(v uint64, n, m int) string {
	var s string
	if n > 0 {
		s = fmt.Sprintf(fmt.Sprintf("%%0%db", n), v)
	}
	if pad := m - len(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	return s
}

func padBase10(n interface{}, m int) string {
	s := fmt.Sprintf("%d", n)
	if pad := m - len(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	return s
}

// String renders the table as one line per pattern: its bit pattern, the
// decoded value, and the number of bits consumed, or "miss" when the
// pattern needs the slow path.
func (t *Table) String() string {
	var ss []string
	ss = append(ss, "{")
	for i, e := range t.Entries {
		if e.Miss() {
			ss = append(ss, fmt.Sprintf("\t%s:  miss,", padBase2(uint64(i), int(t.Bits), int(t.Bits))))
			continue
		}
		ss = append(ss, fmt.Sprintf("\t%s:  {value: %s, len: %s},",
			padBase2(uint64(i), int(t.Bits), int(t.Bits)),
			padBase10(e.Value(), 6),
			padBase10(e.Len(), 2),
		))
	}
	ss = append(ss, fmt.Sprintf("\tbits: %d,", t.Bits))
	ss = append(ss, "}")
	return strings.Join(ss, "\n")
}
