package scanner

import (
	"errors"
	"testing"

	"nickandperla.net/goout/internal/fault"
	"nickandperla.net/goout/internal/token"
)

func kinds(items []token.Item) []token.Kind {
	out := make([]token.Kind, len(items))
	for i, item := range items {
		out[i] = item.Kind
	}
	return out
}

func TestScanSimpleExpression(t *testing.T) {
	items, err := Scan(`1 + x * 2.5`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []token.Kind{token.NUMBER, token.OPERATOR, token.IDENT, token.OPERATOR, token.NUMBER, token.EOF}
	got := kinds(items)
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), items)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if items[4].Text != "2.5" {
		t.Errorf("expected '2.5', got %q", items[4].Text)
	}
}

func TestScanTwoCharOperatorsGreedy(t *testing.T) {
	items, err := Scan(`a <= b && c != d || !e == f >= g`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var ops []string
	for _, item := range items {
		if item.Kind == token.OPERATOR {
			ops = append(ops, item.Text)
		}
	}
	want := []string{"<=", "&&", "!=", "||", "!", "==", ">="}
	if len(ops) != len(want) {
		t.Fatalf("expected operators %v, got %v", want, ops)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("operator %d: expected %q, got %q", i, want[i], ops[i])
		}
	}
}

func TestScanStringLiteral(t *testing.T) {
	items, err := Scan(`"안녕, \"world\"" + 1`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].Kind != token.STRING {
		t.Fatalf("expected STRING, got %v", items[0].Kind)
	}
	if items[0].Text != `"안녕, \"world\""` {
		t.Errorf("unexpected raw text: %q", items[0].Text)
	}
	// The comma inside the string must not become a COMMA token.
	for _, item := range items {
		if item.Kind == token.COMMA {
			t.Errorf("comma inside string literal was tokenized: %v", items)
		}
	}
}

func TestScanUnterminatedString(t *testing.T) {
	_, err := Scan(`"abc`)
	if err == nil {
		t.Fatal("expected error for unterminated string")
	}
	var re *fault.RuntimeError
	if !errors.As(err, &re) {
		t.Errorf("expected runtime error, got %T: %v", err, err)
	}
}

func TestScanUnknownToken(t *testing.T) {
	_, err := Scan(`1 + @`)
	if err == nil {
		t.Fatal("expected error for unknown token")
	}
}

func TestScanHangulIdentifier(t *testing.T) {
	items, err := Scan(`변수1 + _x`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].Kind != token.IDENT || items[0].Text != "변수1" {
		t.Errorf("expected IDENT '변수1', got %v %q", items[0].Kind, items[0].Text)
	}
	if items[2].Kind != token.IDENT || items[2].Text != "_x" {
		t.Errorf("expected IDENT '_x', got %v %q", items[2].Kind, items[2].Text)
	}
}

func TestScanBracketsAndCommas(t *testing.T) {
	items, err := Scan(`[1, 2][0]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Kind{
		token.LBRACKET, token.NUMBER, token.COMMA, token.NUMBER, token.RBRACKET,
		token.LBRACKET, token.NUMBER, token.RBRACKET, token.EOF,
	}
	got := kinds(items)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestScanEmptyInput(t *testing.T) {
	items, err := Scan("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Kind != token.EOF {
		t.Errorf("expected lone EOF, got %v", items)
	}
}
