// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hostlist

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	ErrEmptyInput ErrorKind = iota
	ErrUnexpectedToken
	ErrUnterminatedBracket
	ErrInvalidRange
	ErrTrailingSeparator
)

var errorKindNames = map[ErrorKind]string{
	ErrEmptyInput:          "empty input",
	ErrUnexpectedToken:     "unexpected token",
	ErrUnterminatedBracket: "unterminated bracket",
	ErrInvalidRange:        "invalid range",
	ErrTrailingSeparator:   "trailing separator",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseError describes the first point of failure in a hostlist
// expression. It is a structured value rather than a bare message: callers
// can build their own diagnostics from the byte offset, the offending
// token, and the set of token kinds that would have been accepted there.
type ParseError struct {
	Kind      ErrorKind
	Pos       int         // byte offset of the failure
	Found     TokenKind   // TokenEnd when the input ended early
	FoundText string      // source text of the offending token, "" at end of input
	Expected  []TokenKind // token kinds accepted at Pos
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "hostlist: %s at offset %d", e.Kind, e.Pos)
	if e.Found == TokenEnd {
		sb.WriteString(": found end of input")
	} else {
		fmt.Fprintf(&sb, ": found %s %q", e.Found, e.FoundText)
	}
	if len(e.Expected) > 0 {
		names := make([]string, len(e.Expected))
		for i, k := range e.Expected {
			names[i] = k.String()
		}
		fmt.Fprintf(&sb, ", expected %s", strings.Join(names, " or "))
	}
	return sb.String()
}
