// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package parser turns goout program text into a statement tree.
//
// The parser is line oriented: the first non-blank line must be the start
// marker, the last non-blank line the end marker, and every body line is
// matched against the fixed keyword forms. Blocks are brace delimited; a
// line consisting solely of "}" closes exactly one nesting level.
package parser

import (
	"regexp"
	"strings"

	"nickandperla.net/goout/internal/ast"
	"nickandperla.net/goout/internal/fault"
)

const ident = `[A-Za-z_가-힣][0-9A-Za-z_가-힣]*`

var (
	reStart = regexp.MustCompile(`^\s*` + regexp.QuoteMeta(ast.StartMarker) + `\s*$`)
	reEnd   = regexp.MustCompile(`^\s*` + regexp.QuoteMeta(ast.EndMarker) + `\s*$`)

	reIf     = regexp.MustCompile(`^` + kw(ast.KwIf) + `\s*\((.*)\)\s*\{$`)
	reElse   = regexp.MustCompile(`^` + kw(ast.KwElse) + `\s*\{$`)
	reFor    = regexp.MustCompile(`^` + kw(ast.KwRepeat) + `(` + ident + `)\s*\((.*)\)\s*\{$`)
	reFunc   = regexp.MustCompile(`^` + kw(ast.KwFunc) + `\s+(` + ident + `)\s*\((.*)\)\s*\{$`)
	rePrint  = regexp.MustCompile(`^` + kw(ast.KwPrint) + `\s*\((.*)\)$`)
	reInput  = regexp.MustCompile(`^` + kw(ast.KwInput) + `\s*\(\s*(` + ident + `)\s*(?:,(.*))?\)$`)
	reCall   = regexp.MustCompile(`^` + kw(ast.KwCall) + `\s*\(\s*(` + ident + `)\s*(?:,(.*))?\)$`)
	reAssign = regexp.MustCompile(`^` + regexp.QuoteMeta(ast.Prefix) + `(` +
		ast.KwDeclare + `|` + ast.KwAssign + `)\s+(` + ident + `)\s*=\s*(.+)$`)

	// A closing brace with trailing content on the same line is split into
	// a brace line and a continuation line.
	reBraceSplit = regexp.MustCompile(`^\s*\}\s*(.+)$`)
)

func kw(keyword string) string {
	return regexp.QuoteMeta(ast.Prefix + keyword)
}

// Parse checks the program markers and parses the body into a statement tree.
// All failures are syntax errors.
func Parse(src string) ([]ast.Stmt, error) {
	lines := strings.Split(src, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}

	var nonBlank []int
	for i, l := range lines {
		if strings.TrimSpace(l) != "" {
			nonBlank = append(nonBlank, i)
		}
	}
	if len(nonBlank) == 0 {
		return nil, fault.Syntaxf("빈 프로그램")
	}
	if !reStart.MatchString(lines[nonBlank[0]]) {
		return nil, fault.Syntaxf("프로그램은 %q으로 시작해야 합니다.", ast.StartMarker)
	}
	if !reEnd.MatchString(lines[nonBlank[len(nonBlank)-1]]) {
		return nil, fault.Syntaxf("프로그램은 %q로 끝나야 합니다.", ast.EndMarker)
	}

	p := &parser{body: lines[nonBlank[0]+1 : nonBlank[len(nonBlank)-1]]}
	stmts, err := p.parseBlock(false)
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.body) {
		return nil, fault.Syntaxf("블록 정합성 오류")
	}
	return stmts, nil
}

type parser struct {
	body []string
	pos  int
}

// parseBlock consumes lines until the body is exhausted or a lone "}" closes
// the block. A nested block reaching end of input is unterminated.
func (p *parser) parseBlock(nested bool) ([]ast.Stmt, error) {
	stmts := []ast.Stmt{}

	for p.pos < len(p.body) {
		orig := p.body[p.pos]

		// Split "}" followed by further content into two synthetic lines.
		if m := reBraceSplit.FindStringSubmatch(orig); m != nil {
			p.body[p.pos] = "}"
			rest := append([]string{m[1]}, p.body[p.pos+1:]...)
			p.body = append(p.body[:p.pos+1], rest...)
		}

		line := strings.TrimSpace(p.body[p.pos])

		if line == "}" {
			p.pos++
			return stmts, nil
		}
		if line == "" {
			p.pos++
			continue
		}

		if m := reIf.FindStringSubmatch(line); m != nil {
			p.pos++
			then, err := p.parseBlock(true)
			if err != nil {
				return nil, err
			}
			var els []ast.Stmt
			if p.pos < len(p.body) && reElse.MatchString(strings.TrimSpace(p.body[p.pos])) {
				p.pos++
				els, err = p.parseBlock(true)
				if err != nil {
					return nil, err
				}
			}
			stmts = append(stmts, ast.If{Cond: strings.TrimSpace(m[1]), Then: then, Else: els})
			continue
		}

		if m := reFor.FindStringSubmatch(line); m != nil {
			name := m[1]
			args := SplitArgs(m[2])
			if len(args) != 2 {
				return nil, fault.Syntaxf("%s%s는 (시작,끝) 2개 인자 필요", ast.KwRepeat, name)
			}
			p.pos++
			body, err := p.parseBlock(true)
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, ast.For{Var: name, Start: args[0], End: args[1], Body: body})
			continue
		}

		if m := reFunc.FindStringSubmatch(line); m != nil {
			params := SplitArgs(m[2])
			p.pos++
			body, err := p.parseBlock(true)
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, ast.FuncDef{Name: m[1], Params: params, Body: body})
			continue
		}

		if m := rePrint.FindStringSubmatch(line); m != nil {
			stmts = append(stmts, ast.Print{Expr: strings.TrimSpace(m[1])})
			p.pos++
			continue
		}

		if m := reInput.FindStringSubmatch(line); m != nil {
			args := SplitArgs(m[2])
			in := ast.Input{Name: m[1]}
			if len(args) > 0 {
				in.Prompt = args[0]
			}
			if len(args) > 1 {
				in.TypeName = args[1]
			}
			stmts = append(stmts, in)
			p.pos++
			continue
		}

		if m := reCall.FindStringSubmatch(line); m != nil {
			stmts = append(stmts, ast.Call{Name: m[1], Args: SplitArgs(m[2])})
			p.pos++
			continue
		}

		if m := reAssign.FindStringSubmatch(line); m != nil {
			stmts = append(stmts, ast.Assign{
				Name: m[2],
				Expr: strings.TrimSpace(m[3]),
				Decl: m[1] == ast.KwDeclare,
			})
			p.pos++
			continue
		}

		if line == "{" {
			p.pos++
			body, err := p.parseBlock(true)
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, ast.Block{Body: body})
			continue
		}

		return nil, fault.Syntaxf("알 수 없는 구문: %s", line)
	}

	if nested {
		return nil, fault.Syntaxf("블록이 닫히지 않았습니다")
	}
	return stmts, nil
}

// SplitArgs splits comma-separated argument text on top-level commas only.
// Commas inside double-quoted string literals (with backslash escapes) are
// not split points. Each segment is trimmed; a trailing empty segment is
// dropped.
func SplitArgs(s string) []string {
	var out []string
	var buf strings.Builder
	inStr, esc := false, false

	for _, ch := range s {
		if inStr {
			buf.WriteRune(ch)
			switch {
			case esc:
				esc = false
			case ch == '\\':
				esc = true
			case ch == '"':
				inStr = false
			}
			continue
		}
		switch ch {
		case '"':
			inStr = true
			buf.WriteRune(ch)
		case ',':
			out = append(out, strings.TrimSpace(buf.String()))
			buf.Reset()
		default:
			buf.WriteRune(ch)
		}
	}
	if tail := strings.TrimSpace(buf.String()); tail != "" {
		out = append(out, tail)
	}
	return out
}
