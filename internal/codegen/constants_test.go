package codegen

import "testing"

func TestAcceptsFuncName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"identifier", "IdentifierAccepts"},
		{"AStarB", "AStarBAccepts"},
		{"x", "XAccepts"},
	}

	for _, tt := range tests {
		got := AcceptsFuncName(tt.name)
		if got != tt.want {
			t.Errorf("AcceptsFuncName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}

	if got := TestFuncName("digits"); got != "TestDigitsAccepts" {
		t.Errorf("TestFuncName(\"digits\") = %q, want \"TestDigitsAccepts\"", got)
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Identifier", true},
		{"a_star_b", true},
		{"", false},
		{"1abc", false},
		{"has-dash", false},
		{"func", false},
	}

	for _, tt := range tests {
		if got := IsIdentifier(tt.name); got != tt.want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLowerFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"A", "a"},
		{"ABC", "aBC"},
		{"Hello", "hello"},
		{"hello", "hello"},
		{"Équipe", "équipe"},
	}

	for _, tt := range tests {
		got := LowerFirst(tt.input)
		if got != tt.want {
			t.Errorf("LowerFirst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestUpperFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"a", "A"},
		{"abc", "Abc"},
		{"Hello", "Hello"},
		{"équipe", "Équipe"},
	}

	for _, tt := range tests {
		got := UpperFirst(tt.input)
		if got != tt.want {
			t.Errorf("UpperFirst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
