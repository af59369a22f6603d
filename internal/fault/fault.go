// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package fault defines the two goout failure kinds.
//
// Everything that goes wrong while turning program text into a statement tree
// is a SyntaxError; everything that goes wrong while executing that tree
// (including tokenizing and evaluating expressions) is a RuntimeError. Neither
// is ever recovered internally; both carry a human-readable message and
// propagate to the caller of the interpreter.
package fault

import "fmt"

// SyntaxError is raised by the statement parser.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return "구문 오류: " + e.Msg
}

// RuntimeError is raised by the tokenizer, expression evaluator, or executor.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string {
	return "실행 오류: " + e.Msg
}

// Syntaxf creates a SyntaxError with a formatted message.
func Syntaxf(format string, args ...any) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}

// Runtimef creates a RuntimeError with a formatted message.
func Runtimef(format string, args ...any) error {
	return &RuntimeError{Msg: fmt.Sprintf(format, args...)}
}
