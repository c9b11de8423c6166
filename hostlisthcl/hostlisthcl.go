// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package hostlisthcl bridges hostlist parsing into the HCL ecosystem.
// Parse failures become hcl.Diagnostics with source ranges suitable for
// caret-pointing output, and expansion is available both over evaluated
// expressions and as a cty function for an hcl.EvalContext.
package hostlisthcl

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/specialistvlad/hostlist"
)

// Diagnostics converts a hostlist.Parse failure into HCL diagnostics
// anchored at the failing offset inside input. filename is used only to
// label the source range. A nil err yields nil diagnostics.
func Diagnostics(filename, input string, err error) hcl.Diagnostics {
	if err == nil {
		return nil
	}

	var perr *hostlist.ParseError
	if !errors.As(err, &perr) {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid hostlist expression",
			Detail:   err.Error(),
		}}
	}

	start := posAt(input, perr.Pos)
	end := start
	if n := len(perr.FoundText); n > 0 {
		end = hcl.Pos{Line: start.Line, Column: start.Column + n, Byte: start.Byte + n}
	}
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Invalid hostlist expression",
		Detail:   perr.Error(),
		Subject:  &hcl.Range{Filename: filename, Start: start, End: end},
	}}
}

// posAt translates a byte offset into an hcl.Pos within input.
func posAt(input string, offset int) hcl.Pos {
	if offset > len(input) {
		offset = len(input)
	}
	pos := hcl.Pos{Line: 1, Column: 1, Byte: offset}
	for i := 0; i < offset; i++ {
		if input[i] == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

// ExpandExpression evaluates expr to a string and expands it as a
// hostlist expression. Failures are reported as diagnostics anchored at
// the expression's range, so callers can surface them alongside their own.
func ExpandExpression(expr hcl.Expression, ctx *hcl.EvalContext) ([]string, hcl.Diagnostics) {
	val, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return nil, diags
	}

	if val.IsNull() || val.Type() != cty.String {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid hostlist expression",
			Detail:   "The expression must evaluate to a non-null string.",
			Subject:  expr.Range().Ptr(),
		})
	}

	hosts, err := hostlist.Parse(val.AsString())
	if err != nil {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid hostlist expression",
			Detail:   err.Error(),
			Subject:  expr.Range().Ptr(),
		})
	}
	return hosts, diags
}

// ExpandFunc exposes hostlist expansion as a cty function, typically
// installed as "hostexpand" in an hcl.EvalContext's Functions table. It
// returns the expanded hostnames as a sorted list of strings.
var ExpandFunc = function.New(&function.Spec{
	Description: "Expands a hostlist expression into the sorted list of hostnames it denotes.",
	Params: []function.Parameter{{
		Name: "expression",
		Type: cty.String,
	}},
	Type: function.StaticReturnType(cty.List(cty.String)),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		hosts, err := hostlist.Parse(args[0].AsString())
		if err != nil {
			return cty.NilVal, fmt.Errorf("invalid hostlist expression: %w", err)
		}
		vals := make([]cty.Value, len(hosts))
		for i, h := range hosts {
			vals[i] = cty.StringVal(h)
		}
		if len(vals) == 0 {
			return cty.ListValEmpty(cty.String), nil
		}
		return cty.ListVal(vals), nil
	},
})
