// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"nickandperla.net/goout/internal/ast"
	"nickandperla.net/goout/internal/fault"
	"nickandperla.net/goout/internal/value"
)

// integer/float keyword sets accepted by 입력 type coercion, matched
// case-insensitively.
var (
	intKeywords   = []string{"정수", "int", "integer"}
	floatKeywords = []string{"실수", "float"}
)

// Exec walks a statement block against the given scope. Execution is strictly
// sequential; the first failure aborts the run.
func (ip *Interpreter) Exec(stmts []ast.Stmt, env *Env) error {
	for _, st := range stmts {
		var err error
		switch s := st.(type) {
		case ast.Print:
			err = ip.execPrint(s, env)
		case ast.Assign:
			err = ip.execAssign(s, env)
		case ast.If:
			err = ip.execIf(s, env)
		case ast.For:
			err = ip.execFor(s, env)
		case ast.FuncDef:
			env.DefineFunc(s.Name, Function{Params: s.Params, Body: s.Body})
		case ast.Call:
			err = ip.execCall(s, env)
		case ast.Input:
			err = ip.execInput(s, env)
		case ast.Block:
			err = ip.Exec(s.Body, NewEnv(env))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (ip *Interpreter) execPrint(s ast.Print, env *Env) error {
	v, err := EvalExpr(s.Expr, env)
	if err != nil {
		return err
	}
	return ip.outputWriter(v.String() + "\n")
}

func (ip *Interpreter) execAssign(s ast.Assign, env *Env) error {
	v, err := EvalExpr(s.Expr, env)
	if err != nil {
		return err
	}
	if s.Decl {
		env.Declare(s.Name, v)
	} else {
		env.Assign(s.Name, v)
	}
	return nil
}

func (ip *Interpreter) execIf(s ast.If, env *Env) error {
	cond, err := EvalExpr(s.Cond, env)
	if err != nil {
		return err
	}
	// 만약 does not open a new scope: both branches share env.
	if cond.Truthy() {
		return ip.Exec(s.Then, env)
	}
	if s.Else != nil {
		return ip.Exec(s.Else, env)
	}
	return nil
}

func (ip *Interpreter) execFor(s ast.For, env *Env) error {
	start, err := EvalExpr(s.Start, env)
	if err != nil {
		return err
	}
	end, err := EvalExpr(s.End, env)
	if err != nil {
		return err
	}
	si, sok := start.(value.Int)
	ei, eok := end.(value.Int)
	if !sok || !eok {
		return fault.Runtimef("반복 구간은 정수여야 합니다.")
	}
	for i := si.V; i < ei.V; i++ {
		local := NewEnv(env)
		local.Declare(s.Var, value.Int{V: i})
		if err := ip.Exec(s.Body, local); err != nil {
			return err
		}
	}
	return nil
}

func (ip *Interpreter) execCall(s ast.Call, env *Env) error {
	// Function lookup is not chained; only the call site's own scope counts.
	fn, ok := env.Func(s.Name)
	if !ok {
		return fault.Runtimef("함수 %s가 정의되지 않았습니다.", s.Name)
	}
	if len(fn.Params) != len(s.Args) {
		return fault.Runtimef("함수 %s 인자 개수 불일치: %d 필요, %d 제공",
			s.Name, len(fn.Params), len(s.Args))
	}
	// The call frame parents to the CALLER's scope; the language has no
	// closures, so the definition site plays no part here.
	local := NewEnv(env)
	for i, param := range fn.Params {
		v, err := EvalExpr(s.Args[i], env)
		if err != nil {
			return err
		}
		local.Declare(param, v)
	}
	return ip.Exec(fn.Body, local)
}

func (ip *Interpreter) execInput(s ast.Input, env *Env) error {
	// Both optional expressions are evaluated before any input is consumed.
	prompt := ""
	if s.Prompt != "" {
		v, err := EvalExpr(s.Prompt, env)
		if err != nil {
			return err
		}
		prompt = v.String()
	}
	typeName := ""
	if s.TypeName != "" {
		v, err := EvalExpr(s.TypeName, env)
		if err != nil {
			return err
		}
		typeName = v.String()
	}

	line, err := ip.inputReader(prompt)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return err
		}
		// End of input reads as the empty string rather than failing.
	}
	line = strings.TrimRight(line, "\r\n")

	v, err := coerceInput(line, typeName)
	if err != nil {
		return err
	}
	env.Declare(s.Name, v)
	return nil
}

func coerceInput(line, typeName string) (value.Value, error) {
	if matchKeyword(typeName, intKeywords) {
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return nil, fault.Runtimef("정수로 변환할 수 없습니다: %q", line)
		}
		return value.Int{V: n}, nil
	}
	if matchKeyword(typeName, floatKeywords) {
		f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			return nil, fault.Runtimef("실수로 변환할 수 없습니다: %q", line)
		}
		return value.Float{V: f}, nil
	}
	return value.Str{V: line}, nil
}

func matchKeyword(name string, keywords []string) bool {
	for _, k := range keywords {
		if strings.EqualFold(strings.TrimSpace(name), k) {
			return true
		}
	}
	return false
}
