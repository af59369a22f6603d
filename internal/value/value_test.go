package value

import "testing"

func TestDisplayForms(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Int{V: 5}, "5"},
		{Int{V: -3}, "-3"},
		{Float{V: 0.5}, "0.5"},
		{Float{V: 2}, "2"},
		{Str{V: "안녕"}, "안녕"},
		{Bool{V: true}, "true"},
		{Bool{V: false}, "false"},
		{Array{Items: []Value{Int{V: 1}, Str{V: "a"}}}, "[1, a]"},
		{Array{}, "[]"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("String(%#v): expected %q, got %q", c.v, c.want, got)
		}
	}
}

func TestTruthiness(t *testing.T) {
	truthy := []Value{
		Int{V: 1}, Int{V: -1}, Float{V: 0.1}, Str{V: "0"}, Bool{V: true},
		Array{Items: []Value{Int{}}},
	}
	falsy := []Value{
		Int{}, Float{}, Str{}, Bool{}, Array{},
	}
	for _, v := range truthy {
		if !v.Truthy() {
			t.Errorf("expected %#v to be truthy", v)
		}
	}
	for _, v := range falsy {
		if v.Truthy() {
			t.Errorf("expected %#v to be falsy", v)
		}
	}
}

func TestEqual(t *testing.T) {
	if !Equal(Int{V: 2}, Float{V: 2}) {
		t.Error("2 == 2.0 should hold")
	}
	if !Equal(Str{V: "a"}, Str{V: "a"}) {
		t.Error("equal strings should compare equal")
	}
	if Equal(Str{V: "1"}, Int{V: 1}) {
		t.Error("string and number must not compare equal")
	}
	if Equal(Bool{V: true}, Int{V: 1}) {
		t.Error("bool and number must not compare equal")
	}
	a := Array{Items: []Value{Int{V: 1}, Array{Items: []Value{Str{V: "x"}}}}}
	b := Array{Items: []Value{Int{V: 1}, Array{Items: []Value{Str{V: "x"}}}}}
	if !Equal(a, b) {
		t.Error("structurally equal arrays should compare equal")
	}
	b.Items[0] = Int{V: 2}
	if Equal(a, b) {
		t.Error("different arrays must not compare equal")
	}
}

func TestCompare(t *testing.T) {
	c, err := Compare(Int{V: 1}, Float{V: 1.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c >= 0 {
		t.Errorf("expected 1 < 1.5, got %d", c)
	}

	c, err = Compare(Str{V: "ab"}, Str{V: "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c >= 0 {
		t.Errorf("expected 'ab' < 'b', got %d", c)
	}

	if _, err := Compare(Int{V: 1}, Str{V: "1"}); err == nil {
		t.Error("mixed-type ordering should fail")
	}
	if _, err := Compare(Bool{V: true}, Bool{V: false}); err == nil {
		t.Error("bool ordering should fail")
	}
}
