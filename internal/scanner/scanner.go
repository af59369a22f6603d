// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scanner tokenizes a single goout expression substring.
//
// The scanner is a pure function of its input: it never touches the
// environment and carries no state between expressions. Two-character
// operators are matched greedily before one-character operators.
package scanner

import (
	"unicode"

	"nickandperla.net/goout/internal/fault"
	"nickandperla.net/goout/internal/token"
)

// twoCharOps are matched before any single-character operator.
var twoCharOps = []string{"||", "&&", "==", "!=", "<=", ">="}

// Scan turns one expression substring into a flat token sequence
// terminated by an EOF item. Tokenization failures are runtime errors.
func Scan(src string) ([]token.Item, error) {
	s := &scanner{src: []rune(src)}
	var items []token.Item
	for {
		item, err := s.next()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if item.Kind == token.EOF {
			return items, nil
		}
	}
}

type scanner struct {
	src []rune
	pos int
}

func (s *scanner) peek() rune {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) rest() string {
	return string(s.src[s.pos:])
}

func (s *scanner) next() (token.Item, error) {
	for s.pos < len(s.src) && unicode.IsSpace(s.src[s.pos]) {
		s.pos++
	}
	if s.pos >= len(s.src) {
		return token.Item{Kind: token.EOF}, nil
	}

	r := s.src[s.pos]

	switch r {
	case '"':
		return s.scanString()
	case '(':
		s.pos++
		return token.Item{Kind: token.LPAREN, Text: "("}, nil
	case ')':
		s.pos++
		return token.Item{Kind: token.RPAREN, Text: ")"}, nil
	case '[':
		s.pos++
		return token.Item{Kind: token.LBRACKET, Text: "["}, nil
	case ']':
		s.pos++
		return token.Item{Kind: token.RBRACKET, Text: "]"}, nil
	case ',':
		s.pos++
		return token.Item{Kind: token.COMMA, Text: ","}, nil
	}

	// Two-character operators first
	if s.pos+1 < len(s.src) {
		pair := string(s.src[s.pos : s.pos+2])
		for _, op := range twoCharOps {
			if pair == op {
				s.pos += 2
				return token.Item{Kind: token.OPERATOR, Text: op}, nil
			}
		}
	}

	switch r {
	case '+', '-', '*', '/', '<', '>', '!':
		s.pos++
		return token.Item{Kind: token.OPERATOR, Text: string(r)}, nil
	}

	if r >= '0' && r <= '9' {
		return s.scanNumber(), nil
	}

	if token.IsIdentStart(r) {
		return s.scanIdent(), nil
	}

	return token.Item{}, fault.Runtimef("알 수 없는 토큰: %s", s.rest())
}

// scanString consumes a double-quoted literal, keeping the quotes and any
// backslash escapes in the raw text. Escape decoding happens in the evaluator.
func (s *scanner) scanString() (token.Item, error) {
	start := s.pos
	s.pos++ // opening quote
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos++ // skip escaped rune
			if s.pos < len(s.src) {
				s.pos++
			}
		case '"':
			s.pos++
			return token.Item{Kind: token.STRING, Text: string(s.src[start:s.pos])}, nil
		default:
			s.pos++
		}
	}
	return token.Item{}, fault.Runtimef("문자열이 닫히지 않았습니다: %s", string(s.src[start:]))
}

// scanNumber consumes an integer or decimal literal (single optional point).
func (s *scanner) scanNumber() token.Item {
	start := s.pos
	for s.pos < len(s.src) && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
		s.pos++
	}
	if s.peek() == '.' && s.pos+1 < len(s.src) && s.src[s.pos+1] >= '0' && s.src[s.pos+1] <= '9' {
		s.pos++
		for s.pos < len(s.src) && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
			s.pos++
		}
	}
	return token.Item{Kind: token.NUMBER, Text: string(s.src[start:s.pos])}
}

func (s *scanner) scanIdent() token.Item {
	start := s.pos
	s.pos++
	for s.pos < len(s.src) && token.IsIdentPart(s.src[s.pos]) {
		s.pos++
	}
	return token.Item{Kind: token.IDENT, Text: string(s.src[start:s.pos])}
}
