// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hostlist

// rangeItem is one entry inside a bracket group: a single value when start
// and end coincide, an inclusive numeric range otherwise. width is the
// zero-padding width captured from the start bound, 0 for no padding.
// The parser guarantees start <= end before an item reaches expansion.
type rangeItem struct {
	start, end uint64
	width      int
}

// segment is one piece of an element: a run of literal text or a bracket
// group of range items.
type segment interface {
	isSegment()
}

type literalSegment struct {
	text string
}

type bracketSegment struct {
	items []rangeItem
}

func (literalSegment) isSegment() {}
func (bracketSegment) isSegment() {}

// element is one comma-separated component of a hostlist expression, an
// ordered sequence of at least one segment.
type element struct {
	segments []segment
}

// hostlistAST is the parse result consumed by expansion. It is built once
// per Parse call and never mutated afterwards.
type hostlistAST struct {
	elements []element
}
