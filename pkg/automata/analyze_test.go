package automata

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeNFA(t *testing.T) {
	tests := []struct {
		name   string
		nfa    func() *NFA
		labels []string
		dfa    int
	}{
		{"symbol", func() *NFA { return FromSymbol('a') }, []string{LabelFinite, LabelUnary}, 2},
		{"star", func() *NFA { return Star(FromSymbol('a')) }, []string{LabelAcceptsEmpty, LabelCyclic, LabelUnary}, 2},
		{"epsilon", Epsilon, []string{LabelAcceptsEmpty, LabelFinite}, 1},
		{"union", func() *NFA { return Union(FromString("ab"), FromSymbol('c')) }, []string{LabelFinite}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.nfa()
			a, err := AnalyzeNFA(n, DeterminizeOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.labels, a.Labels)
			assert.Equal(t, tt.dfa, a.DFAStates)
			assert.Equal(t, n.NumStates(), a.NFAStates)
			assert.False(t, n.Consumed())
		})
	}
}

func TestAnalyzeRecipe(t *testing.T) {
	a, err := Analyze(filepath.Join(recipeDir, "a_star_b.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "AStarB", a.Name)
	assert.Equal(t, 3, a.DFAStates)
	assert.Equal(t, 2, a.AlphabetSize)
	assert.Equal(t, 1, a.AcceptStates)
	assert.Equal(t, []string{LabelCyclic}, a.Labels)
}

func TestAnalyzeStateLimit(t *testing.T) {
	_, err := AnalyzeNFA(FromString("abcdef"), DeterminizeOptions{MaxStates: 3})
	assert.ErrorIs(t, err, ErrStateLimit)
}
