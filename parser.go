// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hostlist

import (
	"strconv"
	"strings"
)

// parser is a recursive-descent parser with one token of lookahead. It
// stops at the first failure; no recovery, no partial results.
type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	p.pos++
	return t
}

// elementStart is the set of token kinds that can begin an element.
// Dashes and digit runs outside brackets are ordinary hostname text.
var elementStart = []TokenKind{TokenLiteral, TokenNumber, TokenDash, TokenLBracket}

func errAt(kind ErrorKind, tok token, expected ...TokenKind) *ParseError {
	return &ParseError{Kind: kind, Pos: tok.pos, Found: tok.kind, FoundText: tok.text, Expected: expected}
}

// parseTokens consumes the token stream into an AST or reports the first
// failure. Elements are parsed greedily until a comma or the end of input;
// the parser never backtracks across element boundaries.
func parseTokens(toks []token) (*hostlistAST, *ParseError) {
	p := &parser{toks: toks}
	if p.peek().kind == TokenEnd {
		return nil, errAt(ErrEmptyInput, p.peek(), elementStart...)
	}

	var ast hostlistAST
	for {
		el, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		ast.elements = append(ast.elements, el)
		if p.peek().kind == TokenEnd {
			return &ast, nil
		}
		p.next() // ',': parseElement stops only at a comma or the end
		if p.peek().kind == TokenEnd {
			return nil, errAt(ErrTrailingSeparator, p.peek(), elementStart...)
		}
	}
}

func (p *parser) parseElement() (element, *ParseError) {
	var el element
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			el.segments = append(el.segments, literalSegment{text: lit.String()})
			lit.Reset()
		}
	}

	for {
		tok := p.peek()
		switch tok.kind {
		case TokenLiteral, TokenNumber, TokenDash:
			lit.WriteString(tok.text)
			p.next()
		case TokenLBracket:
			flush()
			seg, err := p.parseBracket()
			if err != nil {
				return element{}, err
			}
			el.segments = append(el.segments, seg)
		case TokenComma, TokenEnd:
			flush()
			if len(el.segments) == 0 {
				return element{}, errAt(ErrUnexpectedToken, tok, elementStart...)
			}
			return el, nil
		default: // ']' with no open bracket
			return element{}, errAt(ErrUnexpectedToken, tok, elementStart...)
		}
	}
}

func (p *parser) parseBracket() (bracketSegment, *ParseError) {
	open := p.next() // '['
	var items []rangeItem
	for {
		item, err := p.parseRangeItem(open)
		if err != nil {
			return bracketSegment{}, err
		}
		items = append(items, item)

		tok := p.peek()
		switch tok.kind {
		case TokenComma:
			p.next()
		case TokenRBracket:
			p.next()
			return bracketSegment{items: items}, nil
		case TokenEnd:
			return bracketSegment{}, &ParseError{
				Kind:     ErrUnterminatedBracket,
				Pos:      open.pos,
				Found:    TokenEnd,
				Expected: []TokenKind{TokenComma, TokenRBracket},
			}
		default:
			return bracketSegment{}, errAt(ErrUnexpectedToken, tok, TokenComma, TokenRBracket)
		}
	}
}

func (p *parser) parseRangeItem(open token) (rangeItem, *ParseError) {
	switch tok := p.peek(); tok.kind {
	case TokenNumber:
	case TokenEnd:
		return rangeItem{}, &ParseError{
			Kind:     ErrUnterminatedBracket,
			Pos:      open.pos,
			Found:    TokenEnd,
			Expected: []TokenKind{TokenNumber},
		}
	case TokenLBracket: // nested brackets are not part of the grammar
		return rangeItem{}, errAt(ErrUnexpectedToken, tok, TokenNumber)
	case TokenRBracket, TokenComma:
		return rangeItem{}, errAt(ErrUnexpectedToken, tok, TokenNumber)
	default: // literal text or a stray dash where a bound belongs
		return rangeItem{}, errAt(ErrInvalidRange, tok, TokenNumber)
	}

	start := p.next()
	startVal, err := boundValue(start)
	if err != nil {
		return rangeItem{}, err
	}
	item := rangeItem{start: startVal, end: startVal, width: start.width()}
	if p.peek().kind != TokenDash {
		return item, nil
	}
	p.next() // '-'

	endTok := p.peek()
	switch endTok.kind {
	case TokenNumber:
	case TokenEnd:
		return rangeItem{}, &ParseError{
			Kind:     ErrUnterminatedBracket,
			Pos:      open.pos,
			Found:    TokenEnd,
			Expected: []TokenKind{TokenNumber},
		}
	default:
		return rangeItem{}, errAt(ErrInvalidRange, endTok, TokenNumber)
	}
	p.next()

	endVal, err := boundValue(endTok)
	if err != nil {
		return rangeItem{}, err
	}
	if startVal > endVal {
		return rangeItem{}, errAt(ErrInvalidRange, start, TokenNumber)
	}
	item.end = endVal
	return item, nil
}

// boundValue parses a number token's digits. Overflow of uint64 is the
// only way a digit run can be malformed.
func boundValue(tok token) (uint64, *ParseError) {
	v, err := strconv.ParseUint(tok.text, 10, 64)
	if err != nil {
		return 0, errAt(ErrInvalidRange, tok, TokenNumber)
	}
	return v, nil
}
