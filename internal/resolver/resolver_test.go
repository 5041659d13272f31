// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semanticschemas/semanticschemas/internal/model"
)

// universe builds a schema from compact category specs for tests.
func universe(t *testing.T, specs ...model.CategorySpec) *model.Schema {
	t.Helper()
	s := model.NewSchema("1.0")
	for _, spec := range specs {
		c, err := model.NewCategory(spec)
		require.NoError(t, err)
		require.NoError(t, s.AddCategory(c))
	}
	return s
}

func TestLinearizeSingle(t *testing.T) {
	r := New(universe(t, model.CategorySpec{Name: "A"}))
	lin, err := r.Linearize("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, lin)
}

func TestLinearizeDiamond(t *testing.T) {
	// A -> [B, C]; B -> [D]; C -> [D]  =>  L(A) = [A, B, C, D]
	r := New(universe(t,
		model.CategorySpec{Name: "A", Parents: []string{"B", "C"}},
		model.CategorySpec{Name: "B", Parents: []string{"D"}},
		model.CategorySpec{Name: "C", Parents: []string{"D"}},
		model.CategorySpec{Name: "D"},
	))
	lin, err := r.Linearize("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, lin)
	assert.Empty(t, r.Conflicts())
}

func TestLinearizeLocalPrecedence(t *testing.T) {
	// Parent declaration order is preserved among unrelated parents.
	r := New(universe(t,
		model.CategorySpec{Name: "X", Parents: []string{"Left", "Right"}},
		model.CategorySpec{Name: "Left"},
		model.CategorySpec{Name: "Right"},
	))
	lin, err := r.Linearize("X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Left", "Right"}, lin)
}

func TestLinearizeDeep(t *testing.T) {
	// The classic C3 example: consistent deep hierarchy.
	r := New(universe(t,
		model.CategorySpec{Name: "O"},
		model.CategorySpec{Name: "A", Parents: []string{"O"}},
		model.CategorySpec{Name: "B", Parents: []string{"O"}},
		model.CategorySpec{Name: "C", Parents: []string{"O"}},
		model.CategorySpec{Name: "K1", Parents: []string{"A", "B", "C"}},
		model.CategorySpec{Name: "K2", Parents: []string{"B", "C"}},
		model.CategorySpec{Name: "Z", Parents: []string{"K1", "K2"}},
	))
	lin, err := r.Linearize("Z")
	require.NoError(t, err)
	assert.Equal(t, []string{"Z", "K1", "A", "K2", "B", "C", "O"}, lin)
	assert.Empty(t, r.Conflicts())
}

func TestLinearizeCycle(t *testing.T) {
	r := New(universe(t,
		model.CategorySpec{Name: "A", Parents: []string{"B"}},
		model.CategorySpec{Name: "B", Parents: []string{"A"}},
	))
	_, err := r.Linearize("A")
	require.ErrorIs(t, err, ErrCycle)
	// The chain names both participants.
	assert.Contains(t, err.Error(), "A")
	assert.Contains(t, err.Error(), "B")
}

func TestLinearizeUnknownParent(t *testing.T) {
	r := New(universe(t, model.CategorySpec{Name: "A", Parents: []string{"Ghost"}}))
	_, err := r.Linearize("A")
	require.ErrorIs(t, err, ErrUnknownCategory)
	assert.Contains(t, err.Error(), "Ghost")
}

func TestLinearizeInconsistentFallsBackDeterministically(t *testing.T) {
	// B and C disagree on the order of D and E; C3 has no consistent
	// linearization. The fallback must still produce one, record the
	// conflict, and repeat runs must agree.
	specs := []model.CategorySpec{
		{Name: "D"},
		{Name: "E"},
		{Name: "B", Parents: []string{"D", "E"}},
		{Name: "C", Parents: []string{"E", "D"}},
		{Name: "A", Parents: []string{"B", "C"}},
	}

	first := New(universe(t, specs...))
	lin1, err := first.Linearize("A")
	require.NoError(t, err)
	assert.NotEmpty(t, first.Conflicts())
	assert.Equal(t, "A", first.Conflicts()[0].Category)

	second := New(universe(t, specs...))
	lin2, err := second.Linearize("A")
	require.NoError(t, err)
	assert.Equal(t, lin1, lin2)

	// Every category still appears exactly once.
	assert.ElementsMatch(t, []string{"A", "B", "C", "D", "E"}, lin1)
}

func TestLinearizeMemoization(t *testing.T) {
	r := New(universe(t,
		model.CategorySpec{Name: "A", Parents: []string{"B"}},
		model.CategorySpec{Name: "B"},
	))
	lin1, err := r.Linearize("A")
	require.NoError(t, err)
	// Mutating a returned slice must not poison the memo.
	lin1[0] = "corrupted"
	lin2, err := r.Linearize("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, lin2)
}

func TestEffectiveCategoryDiamond(t *testing.T) {
	r := New(universe(t,
		model.CategorySpec{
			Name:               "Top",
			RequiredProperties: []string{"Has name"},
			Label:              "Top label",
		},
		model.CategorySpec{
			Name:               "Left",
			Parents:            []string{"Top"},
			RequiredProperties: []string{"Has left"},
		},
		model.CategorySpec{
			Name:               "Right",
			Parents:            []string{"Top"},
			RequiredProperties: []string{"Has right"},
			Label:              "Right label",
		},
		model.CategorySpec{
			Name:               "Bottom",
			Parents:            []string{"Left", "Right"},
			OptionalProperties: []string{"Has bottom"},
		},
	))

	eff, err := r.EffectiveCategory("Bottom")
	require.NoError(t, err)

	// The diamond top's property appears exactly once; farthest ancestor
	// first, then closer ones, then the category's own.
	assert.Equal(t, []string{"Has name", "Has right", "Has left"}, eff.RequiredProperties())
	assert.Equal(t, []string{"Has bottom"}, eff.OptionalProperties())

	// Bottom has no label; the closest labelled ancestor wins. L(Bottom) =
	// [Bottom, Left, Right, Top] and Left has no label either, so Right's
	// label is inherited over Top's.
	assert.Equal(t, "Right label", eff.Label())
}

func TestEffectiveCategoryRequiredWinsOverInheritedOptional(t *testing.T) {
	r := New(universe(t,
		model.CategorySpec{Name: "Base", OptionalProperties: []string{"Has email"}},
		model.CategorySpec{Name: "Strict", Parents: []string{"Base"}, RequiredProperties: []string{"Has email"}},
	))
	eff, err := r.EffectiveCategory("Strict")
	require.NoError(t, err)
	assert.Equal(t, []string{"Has email"}, eff.RequiredProperties())
	assert.Empty(t, eff.OptionalProperties())
}

func TestEffectiveCategoryNoParents(t *testing.T) {
	r := New(universe(t, model.CategorySpec{
		Name:               "Solo",
		RequiredProperties: []string{"Has name"},
	}))
	eff, err := r.EffectiveCategory("Solo")
	require.NoError(t, err)
	assert.Equal(t, []string{"Has name"}, eff.RequiredProperties())
}
