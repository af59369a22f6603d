// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package eval

import (
	"nickandperla.net/goout/internal/ast"
	"nickandperla.net/goout/internal/fault"
	"nickandperla.net/goout/internal/value"
)

// Function is a registered function: ordered parameter names and a body block.
type Function struct {
	Params []string
	Body   []ast.Stmt
}

// Env is one level of variable bindings with an optional parent link.
//
// Variable reads and reassignments search the parent chain; declarations
// always bind in the current scope. The function table is NOT chained: a
// function is only visible in the exact scope it was defined in. Constructs
// that allocate a fresh child scope (loop iterations, call frames, bare
// blocks) therefore start with an empty function table, while 만약 branches
// run in the current scope and keep seeing its functions. This asymmetry is
// part of the language and must not be "fixed" here.
type Env struct {
	vars   map[string]value.Value
	funcs  map[string]Function
	parent *Env
}

// NewEnv creates a scope with an optional parent (nil for the root).
func NewEnv(parent *Env) *Env {
	return &Env{
		vars:   make(map[string]value.Value),
		funcs:  make(map[string]Function),
		parent: parent,
	}
}

// Declare binds name in this scope, shadowing any outer binding.
func (e *Env) Declare(name string, v value.Value) {
	e.vars[name] = v
}

// Read resolves name innermost-first along the parent chain.
func (e *Env) Read(name string) (value.Value, error) {
	for scope := e; scope != nil; scope = scope.parent {
		if v, ok := scope.vars[name]; ok {
			return v, nil
		}
	}
	return nil, fault.Runtimef("변수 %s가 정의되지 않았습니다.", name)
}

// Assign mutates the nearest enclosing binding of name; if no scope in the
// chain holds it, the binding is created in this scope.
func (e *Env) Assign(name string, v value.Value) {
	for scope := e; scope != nil; scope = scope.parent {
		if _, ok := scope.vars[name]; ok {
			scope.vars[name] = v
			return
		}
	}
	e.vars[name] = v
}

// DefineFunc registers a function in this scope's table only.
func (e *Env) DefineFunc(name string, fn Function) {
	e.funcs[name] = fn
}

// Func looks a function up in this scope's table only, never the parents.
func (e *Env) Func(name string) (Function, bool) {
	fn, ok := e.funcs[name]
	return fn, ok
}
