// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hostlist

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// expand walks a validated AST into the complete, deduplicated,
// lexicographically sorted host set. It cannot fail: every range bound was
// checked during parsing.
func expand(ast *hostlistAST) []string {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, el := range ast.elements {
		expandElement(el, set)
	}
	hosts := set.ToSlice()
	sort.Strings(hosts)
	return hosts
}

// expandElement emits every concrete hostname an element denotes: the
// Cartesian product of its bracket groups in left-to-right order,
// interleaved with its literal text at the original positions.
func expandElement(el element, set mapset.Set[string]) {
	var pools [][]string
	for _, seg := range el.segments {
		if b, ok := seg.(bracketSegment); ok {
			pools = append(pools, expandItems(b.items))
		}
	}

	// Odometer over the pools; an element with no brackets yields exactly
	// one host.
	idx := make([]int, len(pools))
	for {
		var sb strings.Builder
		next := 0
		for _, seg := range el.segments {
			switch s := seg.(type) {
			case literalSegment:
				sb.WriteString(s.text)
			case bracketSegment:
				sb.WriteString(pools[next][idx[next]])
				next++
			}
		}
		set.Add(sb.String())

		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(pools[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return
		}
	}
}

// expandItems flattens a bracket group into its numeric strings in
// declaration order.
func expandItems(items []rangeItem) []string {
	var out []string
	for _, it := range items {
		for v := it.start; ; v++ {
			out = append(out, formatBound(v, it.width))
			if v == it.end {
				break
			}
		}
	}
	return out
}

// formatBound renders one value of a range item. The padding width comes
// from the item's start bound alone; the end bound's own padding never
// affects output.
func formatBound(v uint64, width int) string {
	if width == 0 {
		return strconv.FormatUint(v, 10)
	}
	return fmt.Sprintf("%0*d", width, v)
}
