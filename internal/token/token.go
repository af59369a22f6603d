// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package token defines goout expression token kinds.
package token

// Kind represents a goout expression token kind.
type Kind int

const (
	EOF      Kind = iota
	STRING        // double-quoted string literal
	NUMBER        // integer or decimal literal
	IDENT         // identifier
	OPERATOR      // + - * / < > ! || && == != <= >=
	LPAREN        // (
	RPAREN        // )
	LBRACKET      // [
	RBRACKET      // ]
	COMMA         // ,
)

// Item is one scanned token with its raw text.
type Item struct {
	Kind Kind
	Text string
}

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case STRING:
		return "STRING"
	case NUMBER:
		return "NUMBER"
	case IDENT:
		return "IDENT"
	case OPERATOR:
		return "OPERATOR"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case LBRACKET:
		return "LBRACKET"
	case RBRACKET:
		return "RBRACKET"
	case COMMA:
		return "COMMA"
	}
	return "UNKNOWN"
}

// Is reports whether the item is an operator with the given text.
func (i Item) Is(op string) bool {
	return i.Kind == OPERATOR && i.Text == op
}

// IsIdentStart reports whether r can begin a goout identifier:
// an ASCII letter, an underscore, or a Hangul syllable.
func IsIdentStart(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '가' && r <= '힣')
}

// IsIdentPart reports whether r can continue an identifier.
func IsIdentPart(r rune) bool {
	return IsIdentStart(r) || (r >= '0' && r <= '9')
}
