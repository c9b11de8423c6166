// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hostlist

// TokenKind identifies the type of a lexical token. It appears in
// ParseError to describe what was found and what would have been accepted.
type TokenKind int

const (
	TokenEnd TokenKind = iota // end of input
	TokenLiteral
	TokenNumber
	TokenLBracket
	TokenRBracket
	TokenComma
	TokenDash
)

var tokenNames = map[TokenKind]string{
	TokenEnd:      "end of input",
	TokenLiteral:  "literal",
	TokenNumber:   "number",
	TokenLBracket: "'['",
	TokenRBracket: "']'",
	TokenComma:    "','",
	TokenDash:     "'-'",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// token is a single lexical unit together with its byte offset, kept so
// every downstream failure can point back into the source text.
type token struct {
	kind TokenKind
	text string
	pos  int
}

// width reports the zero-padding width of a number token: its digit count
// when the text starts with a leading zero, 0 when unpadded. A lone "0"
// counts as unpadded.
func (t token) width() int {
	if t.kind == TokenNumber && len(t.text) > 1 && t.text[0] == '0' {
		return len(t.text)
	}
	return 0
}

// tokenize scans input left to right into positioned tokens, always ending
// with a TokenEnd carrying the input length. It cannot fail by itself:
// structurally invalid text surfaces later as parser errors. Whitespace is
// insignificant and skipped.
func tokenize(input string) []token {
	var toks []token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == '[':
			toks = append(toks, token{TokenLBracket, "[", i})
			i++
		case c == ']':
			toks = append(toks, token{TokenRBracket, "]", i})
			i++
		case c == ',':
			toks = append(toks, token{TokenComma, ",", i})
			i++
		case c == '-':
			toks = append(toks, token{TokenDash, "-", i})
			i++
		case isDigit(c):
			start := i
			for i < len(input) && isDigit(input[i]) {
				i++
			}
			toks = append(toks, token{TokenNumber, input[start:i], start})
		case isSpace(c):
			i++
		default:
			start := i
			for i < len(input) && !isDelimiter(input[i]) {
				i++
			}
			toks = append(toks, token{TokenLiteral, input[start:i], start})
		}
	}
	return append(toks, token{TokenEnd, "", len(input)})
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// isDelimiter reports whether c terminates a literal run.
func isDelimiter(c byte) bool {
	return c == '[' || c == ']' || c == ',' || c == '-' || isDigit(c) || isSpace(c)
}
