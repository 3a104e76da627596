package grammar_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestordemeure/gambit/grammar"
)

// countingGrammar reduces 0 -> 1 -> ... -> target through single-rule
// expansions, so its only formula is the one-state formula {target}; it
// scores a formula by its length and exists only to exercise the Grammar
// contract in isolation from any search machinery.
type countingGrammar struct{ target int }

func (g countingGrammar) RootState() int { return 0 }

func (g countingGrammar) Expand(s int) [][]int {
	if s >= g.target {
		return nil
	}
	return [][]int{{s + 1}}
}

func (g countingGrammar) Render(f grammar.Formula[int]) string {
	out := ""
	for _, s := range f {
		out += strconv.Itoa(s)
	}
	return out
}

func (g countingGrammar) Evaluate(f grammar.Formula[int]) float64 {
	return float64(len(f))
}

func (g countingGrammar) Cost(f grammar.Formula[int]) int {
	return grammar.DefaultCost(f)
}

func TestDefaultCostIsFormulaLength(t *testing.T) {
	f := grammar.Formula[int]{1, 2, 3}
	assert.Equal(t, 3, grammar.DefaultCost(f))
}

func TestFormulaAppendDoesNotAliasOriginal(t *testing.T) {
	base := grammar.Formula[int]{1, 2}
	extended := base.Append(3)

	assert.Equal(t, grammar.Formula[int]{1, 2}, base)
	assert.Equal(t, grammar.Formula[int]{1, 2, 3}, extended)
}

func TestFormulaCloneIsIndependent(t *testing.T) {
	base := grammar.Formula[int]{1, 2}
	clone := base.Clone()
	clone[0] = 99

	assert.Equal(t, 1, base[0])
	assert.Equal(t, 99, clone[0])
}

func TestOptionalSomeAndNone(t *testing.T) {
	some := grammar.Some(42)
	v, ok := some.Get()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	none := grammar.None[int]()
	_, ok = none.Get()
	assert.False(t, ok)
}

func TestCountingGrammarSatisfiesInterface(t *testing.T) {
	var g grammar.Grammar[int, float64] = countingGrammar{target: 3}
	assert.Equal(t, 0, g.RootState())
	assert.Equal(t, [][]int{{1}}, g.Expand(0))
	assert.Nil(t, g.Expand(3))
}
