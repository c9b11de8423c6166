// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package hostlist parses compact hostlist expressions such as
// "web[01-03,05],db1" into the explicit set of hostnames they denote.
//
// An expression is a comma-separated list of elements. Each element mixes
// literal text with bracket groups of numeric ranges; multiple groups in
// one element combine as a Cartesian product:
//
//	rack[1-2]-node[01-02]  =>  rack1-node01, rack1-node02,
//	                           rack2-node01, rack2-node02
//
// Leading zeros on a range's start bound set the padding width for every
// number that bound expands to. Whitespace is insignificant.
//
// The package is pure: no I/O, no goroutines, no OS access, so it builds
// unchanged for restricted targets such as wasm. Concurrent Parse calls
// need no synchronization.
package hostlist

// Parse expands a hostlist expression into the complete, deduplicated set
// of hostnames it denotes, sorted lexicographically. On failure it returns
// a *ParseError for the first offending position; no partial result ever
// accompanies an error.
//
// Range sizes are unbounded: an expression like "n[1-999999999]" expands
// in full, so callers in resource-constrained contexts must bound their
// inputs themselves.
func Parse(input string) ([]string, error) {
	ast, perr := parseTokens(tokenize(input))
	if perr != nil {
		return nil, perr
	}
	return expand(ast), nil
}
