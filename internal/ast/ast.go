// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package ast defines goout statement nodes and their canonical line form.
//
// Expression operands are kept as unparsed source substrings; they are
// re-tokenized and re-parsed on every evaluation. Each node serializes back
// to the exact line syntax the parser accepts, so a parse/serialize/parse
// round trip yields a structurally identical tree.
package ast

import "strings"

// Fixed surface literals of the language. The markers are exact and not
// configurable; every statement keyword is prefixed with Prefix.
const (
	StartMarker = "시작!"
	EndMarker   = "장한울을 혁명적으로 특검해야 한다"

	Prefix    = "GO척결."
	KwPrint   = "출력"
	KwInput   = "입력"
	KwCall    = "호출"
	KwIf      = "만약"
	KwElse    = "디떨이 아니다?!"
	KwRepeat  = "반복"
	KwFunc    = "함수"
	KwDeclare = "변수"
	KwAssign  = "대입"
)

// Stmt is the interface all statement nodes implement.
type Stmt interface {
	// appendLines writes the node's canonical source lines.
	appendLines(out *[]string)

	stmt() // sealed marker
}

// Print writes the value of an expression followed by a newline.
type Print struct {
	Expr string
}

// Assign binds a variable. Decl distinguishes 변수 (always binds in the
// current scope) from 대입 (mutates the nearest enclosing binding).
type Assign struct {
	Name string
	Expr string
	Decl bool
}

// If executes Then or the optional Else block in the current scope.
type If struct {
	Cond string
	Then []Stmt
	Else []Stmt // nil when no else block
}

// For iterates the half-open integer range [Start, End) ascending,
// binding Var in a fresh child scope per iteration.
type For struct {
	Var   string
	Start string
	End   string
	Body  []Stmt
}

// FuncDef registers a function in the current scope's function table.
type FuncDef struct {
	Name   string
	Params []string
	Body   []Stmt
}

// Call invokes a function for its side effects; there is no return value.
type Call struct {
	Name string
	Args []string
}

// Input reads one line from standard input into a variable.
// Prompt and TypeName are optional expression texts; empty means absent.
type Input struct {
	Name     string
	Prompt   string
	TypeName string
}

// Block is a bare brace-delimited scope.
type Block struct {
	Body []Stmt
}

func (Print) stmt()   {}
func (Assign) stmt()  {}
func (If) stmt()      {}
func (For) stmt()     {}
func (FuncDef) stmt() {}
func (Call) stmt()    {}
func (Input) stmt()   {}
func (Block) stmt()   {}

func (p Print) appendLines(out *[]string) {
	*out = append(*out, Prefix+KwPrint+"("+p.Expr+")")
}

func (a Assign) appendLines(out *[]string) {
	kw := KwAssign
	if a.Decl {
		kw = KwDeclare
	}
	*out = append(*out, Prefix+kw+" "+a.Name+" = "+a.Expr)
}

func (s If) appendLines(out *[]string) {
	*out = append(*out, Prefix+KwIf+" ("+s.Cond+") {")
	appendBlock(out, s.Then)
	if s.Else != nil {
		*out = append(*out, Prefix+KwElse+" {")
		appendBlock(out, s.Else)
	}
}

func (f For) appendLines(out *[]string) {
	*out = append(*out, Prefix+KwRepeat+f.Var+"("+f.Start+", "+f.End+") {")
	appendBlock(out, f.Body)
}

func (f FuncDef) appendLines(out *[]string) {
	*out = append(*out, Prefix+KwFunc+" "+f.Name+"("+strings.Join(f.Params, ", ")+") {")
	appendBlock(out, f.Body)
}

func (c Call) appendLines(out *[]string) {
	parts := append([]string{c.Name}, c.Args...)
	*out = append(*out, Prefix+KwCall+"("+strings.Join(parts, ", ")+")")
}

func (i Input) appendLines(out *[]string) {
	parts := []string{i.Name}
	if i.Prompt != "" || i.TypeName != "" {
		parts = append(parts, i.Prompt)
	}
	if i.TypeName != "" {
		parts = append(parts, i.TypeName)
	}
	*out = append(*out, Prefix+KwInput+"("+strings.Join(parts, ", ")+")")
}

func (b Block) appendLines(out *[]string) {
	*out = append(*out, "{")
	appendBlock(out, b.Body)
}

func appendBlock(out *[]string, body []Stmt) {
	for _, s := range body {
		s.appendLines(out)
	}
	*out = append(*out, "}")
}

// Lines returns the canonical source lines of a statement sequence,
// without the program markers.
func Lines(stmts []Stmt) []string {
	var out []string
	for _, s := range stmts {
		s.appendLines(&out)
	}
	return out
}

// Source returns a complete canonical program: start marker, body, end marker.
func Source(stmts []Stmt) string {
	lines := append([]string{StartMarker}, Lines(stmts)...)
	lines = append(lines, EndMarker)
	return strings.Join(lines, "\n")
}
