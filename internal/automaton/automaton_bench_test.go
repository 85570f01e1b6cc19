package automaton

import (
	"strings"
	"testing"
)

func identifierNFA() *NFA {
	return Concat(FromRange('a', 'z'), Star(Union(FromRange('a', 'z'), FromRange('0', '9'))))
}

func BenchmarkThompsonConstruction(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = identifierNFA()
	}
}

func BenchmarkDeterminize(b *testing.B) {
	n := identifierNFA()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Determinize(n)
	}
}

func BenchmarkAccepts(b *testing.B) {
	d := Determinize(identifierNFA())
	input := "x" + strings.Repeat("a1", 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !d.Accepts(input) {
			b.Fatal("expected match")
		}
	}
}
