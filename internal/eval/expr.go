// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import (
	"strconv"
	"strings"

	"nickandperla.net/goout/internal/fault"
	"nickandperla.net/goout/internal/scanner"
	"nickandperla.net/goout/internal/token"
	"nickandperla.net/goout/internal/value"
)

// EvalExpr tokenizes, parses and evaluates one expression substring against
// the given scope. There is no cached expression tree: every call re-lexes
// and re-parses the source text.
//
// Precedence, low to high: || → && → == != → < <= > >= → + - → * / →
// unary ! - → indexing → primary.
func EvalExpr(src string, env *Env) (value.Value, error) {
	items, err := scanner.Scan(src)
	if err != nil {
		return nil, err
	}
	p := &exprParser{src: src, items: items, env: env}
	v, err := p.parseOr(true)
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != token.EOF {
		return nil, fault.Runtimef("수식 끝에 남은 토큰: %s", p.cur().Text)
	}
	return v, nil
}

type exprParser struct {
	src   string
	items []token.Item
	pos   int
	env   *Env
}

func (p *exprParser) cur() token.Item {
	return p.items[p.pos]
}

func (p *exprParser) advance() token.Item {
	item := p.items[p.pos]
	if item.Kind != token.EOF {
		p.pos++
	}
	return item
}

// The live flag implements short-circuiting: a dead subexpression still
// consumes its tokens (the parser must stay positioned) but performs no
// lookups, no arithmetic checks, and raises no errors. Dead results are
// discarded by the caller.

func (p *exprParser) parseOr(live bool) (value.Value, error) {
	v, err := p.parseAnd(live)
	if err != nil {
		return nil, err
	}
	for p.cur().Is("||") {
		p.advance()
		short := live && v.Truthy()
		rhs, err := p.parseAnd(live && !short)
		if err != nil {
			return nil, err
		}
		if !live {
			continue
		}
		if short {
			v = value.Bool{V: true}
		} else {
			v = value.Bool{V: rhs.Truthy()}
		}
	}
	return v, nil
}

func (p *exprParser) parseAnd(live bool) (value.Value, error) {
	v, err := p.parseEquality(live)
	if err != nil {
		return nil, err
	}
	for p.cur().Is("&&") {
		p.advance()
		short := live && !v.Truthy()
		rhs, err := p.parseEquality(live && !short)
		if err != nil {
			return nil, err
		}
		if !live {
			continue
		}
		if short {
			v = value.Bool{V: false}
		} else {
			v = value.Bool{V: rhs.Truthy()}
		}
	}
	return v, nil
}

func (p *exprParser) parseEquality(live bool) (value.Value, error) {
	v, err := p.parseRelational(live)
	if err != nil {
		return nil, err
	}
	for p.cur().Is("==") || p.cur().Is("!=") {
		op := p.advance().Text
		rhs, err := p.parseRelational(live)
		if err != nil {
			return nil, err
		}
		if !live {
			continue
		}
		eq := value.Equal(v, rhs)
		if op == "!=" {
			eq = !eq
		}
		v = value.Bool{V: eq}
	}
	return v, nil
}

func (p *exprParser) parseRelational(live bool) (value.Value, error) {
	v, err := p.parseAdditive(live)
	if err != nil {
		return nil, err
	}
	for p.cur().Is("<") || p.cur().Is("<=") || p.cur().Is(">") || p.cur().Is(">=") {
		op := p.advance().Text
		rhs, err := p.parseAdditive(live)
		if err != nil {
			return nil, err
		}
		if !live {
			continue
		}
		c, err := value.Compare(v, rhs)
		if err != nil {
			return nil, err
		}
		var res bool
		switch op {
		case "<":
			res = c < 0
		case "<=":
			res = c <= 0
		case ">":
			res = c > 0
		case ">=":
			res = c >= 0
		}
		v = value.Bool{V: res}
	}
	return v, nil
}

func (p *exprParser) parseAdditive(live bool) (value.Value, error) {
	v, err := p.parseMultiplicative(live)
	if err != nil {
		return nil, err
	}
	for p.cur().Is("+") || p.cur().Is("-") {
		op := p.advance().Text
		rhs, err := p.parseMultiplicative(live)
		if err != nil {
			return nil, err
		}
		if !live {
			continue
		}
		v, err = applyAdditive(op, v, rhs)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

func applyAdditive(op string, a, b value.Value) (value.Value, error) {
	if op == "+" {
		// String concatenation wins over addition.
		if _, ok := a.(value.Str); ok {
			return value.Str{V: a.String() + b.String()}, nil
		}
		if _, ok := b.(value.Str); ok {
			return value.Str{V: a.String() + b.String()}, nil
		}
	}
	if !value.IsNumeric(a) || !value.IsNumeric(b) {
		return nil, fault.Runtimef("'%s' 연산을 %s와 %s에 적용할 수 없습니다.",
			op, value.TypeName(a), value.TypeName(b))
	}
	ai, aInt := a.(value.Int)
	bi, bInt := b.(value.Int)
	if aInt && bInt {
		if op == "+" {
			return value.Int{V: ai.V + bi.V}, nil
		}
		return value.Int{V: ai.V - bi.V}, nil
	}
	if op == "+" {
		return value.Float{V: value.AsFloat(a) + value.AsFloat(b)}, nil
	}
	return value.Float{V: value.AsFloat(a) - value.AsFloat(b)}, nil
}

func (p *exprParser) parseMultiplicative(live bool) (value.Value, error) {
	v, err := p.parseUnary(live)
	if err != nil {
		return nil, err
	}
	for p.cur().Is("*") || p.cur().Is("/") {
		op := p.advance().Text
		rhs, err := p.parseUnary(live)
		if err != nil {
			return nil, err
		}
		if !live {
			continue
		}
		v, err = applyMultiplicative(op, v, rhs)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

func applyMultiplicative(op string, a, b value.Value) (value.Value, error) {
	if !value.IsNumeric(a) || !value.IsNumeric(b) {
		return nil, fault.Runtimef("'%s' 연산을 %s와 %s에 적용할 수 없습니다.",
			op, value.TypeName(a), value.TypeName(b))
	}
	if op == "*" {
		ai, aInt := a.(value.Int)
		bi, bInt := b.(value.Int)
		if aInt && bInt {
			return value.Int{V: ai.V * bi.V}, nil
		}
		return value.Float{V: value.AsFloat(a) * value.AsFloat(b)}, nil
	}
	// Division is always true division, yielding a float.
	if value.AsFloat(b) == 0 {
		return nil, fault.Runtimef("0으로 나눌 수 없습니다.")
	}
	return value.Float{V: value.AsFloat(a) / value.AsFloat(b)}, nil
}

func (p *exprParser) parseUnary(live bool) (value.Value, error) {
	switch {
	case p.cur().Is("!"):
		p.advance()
		v, err := p.parseUnary(live)
		if err != nil {
			return nil, err
		}
		return value.Bool{V: !v.Truthy()}, nil
	case p.cur().Is("-"):
		p.advance()
		v, err := p.parseUnary(live)
		if err != nil {
			return nil, err
		}
		if !live {
			return v, nil
		}
		switch n := v.(type) {
		case value.Int:
			return value.Int{V: -n.V}, nil
		case value.Float:
			return value.Float{V: -n.V}, nil
		}
		return nil, fault.Runtimef("단항 '-'는 숫자가 필요합니다: %s", value.TypeName(v))
	}
	return p.parsePostfix(live)
}

func (p *exprParser) parsePostfix(live bool) (value.Value, error) {
	v, err := p.parsePrimary(live)
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.LBRACKET {
		p.advance()
		idx, err := p.parseOr(live)
		if err != nil {
			return nil, err
		}
		if p.cur().Kind != token.RBRACKET {
			return nil, fault.Runtimef("']'가 필요합니다: %s", p.src)
		}
		p.advance()
		if !live {
			continue
		}
		v, err = index(v, idx)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

func index(container, idx value.Value) (value.Value, error) {
	i, ok := idx.(value.Int)
	if !ok {
		return nil, fault.Runtimef("인덱스는 정수여야 합니다: %s", value.TypeName(idx))
	}
	switch c := container.(type) {
	case value.Array:
		if i.V < 0 || i.V >= int64(len(c.Items)) {
			return nil, fault.Runtimef("배열 인덱스 범위를 벗어났습니다: %d (길이 %d)", i.V, len(c.Items))
		}
		return c.Items[i.V], nil
	case value.Str:
		runes := []rune(c.V)
		if i.V < 0 || i.V >= int64(len(runes)) {
			return nil, fault.Runtimef("문자열 인덱스 범위를 벗어났습니다: %d (길이 %d)", i.V, len(runes))
		}
		return value.Str{V: string(runes[i.V])}, nil
	}
	return nil, fault.Runtimef("%s는 인덱싱할 수 없습니다.", value.TypeName(container))
}

func (p *exprParser) parsePrimary(live bool) (value.Value, error) {
	item := p.cur()
	switch item.Kind {
	case token.STRING:
		p.advance()
		return value.Str{V: unquote(item.Text)}, nil

	case token.NUMBER:
		p.advance()
		if !strings.Contains(item.Text, ".") {
			if n, err := strconv.ParseInt(item.Text, 10, 64); err == nil {
				return value.Int{V: n}, nil
			}
		}
		f, err := strconv.ParseFloat(item.Text, 64)
		if err != nil {
			return nil, fault.Runtimef("숫자가 올바르지 않습니다: %s", item.Text)
		}
		return value.Float{V: f}, nil

	case token.IDENT:
		p.advance()
		switch item.Text {
		case "true":
			return value.Bool{V: true}, nil
		case "false":
			return value.Bool{V: false}, nil
		}
		if !live {
			return value.Int{}, nil
		}
		return p.env.Read(item.Text)

	case token.LPAREN:
		p.advance()
		v, err := p.parseOr(live)
		if err != nil {
			return nil, err
		}
		if p.cur().Kind != token.RPAREN {
			return nil, fault.Runtimef("')'가 필요합니다: %s", p.src)
		}
		p.advance()
		return v, nil

	case token.LBRACKET:
		return p.parseArray(live)
	}

	return nil, fault.Runtimef("지원되지 않는 표현식: %s", p.src)
}

func (p *exprParser) parseArray(live bool) (value.Value, error) {
	p.advance() // [
	arr := value.Array{}
	if p.cur().Kind == token.RBRACKET {
		p.advance()
		return arr, nil
	}
	for {
		v, err := p.parseOr(live)
		if err != nil {
			return nil, err
		}
		arr.Items = append(arr.Items, v)
		if p.cur().Kind == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	if p.cur().Kind != token.RBRACKET {
		return nil, fault.Runtimef("']'가 필요합니다: %s", p.src)
	}
	p.advance()
	return arr, nil
}

// unquote strips the surrounding quotes and decodes backslash escapes.
// The scanner guarantees the literal is well formed and terminated.
func unquote(raw string) string {
	runes := []rune(raw)
	runes = runes[1 : len(runes)-1]
	var sb strings.Builder
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' || i+1 >= len(runes) {
			sb.WriteRune(r)
			continue
		}
		i++
		switch runes[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '0':
			sb.WriteByte(0)
		default:
			sb.WriteRune(runes[i])
		}
	}
	return sb.String()
}
