// Copyright 2025 The SemanticSchemas Authors
// SPDX-License-Identifier: Apache-2.0

// Package resolver computes inheritance linearizations and effective
// categories over a category universe. Multiple inheritance follows C3: it
// is the published algorithm with monotonicity and local-precedence
// guarantees, and it yields a unique order whenever one exists. Hierarchies
// C3 cannot order consistently are resolved by a deterministic fallback and
// recorded, never guessed silently.
package resolver

import (
	"fmt"
	"slices"
	"strings"

	"github.com/semanticschemas/semanticschemas/internal/model"
)

// CategoryProvider supplies category definitions by name. *model.Schema
// satisfies it; tests use small fakes.
type CategoryProvider interface {
	CategoryByName(name string) (model.Category, bool)
}

// Conflict records one linearization step where no good head existed and
// the deterministic fallback picked the first non-empty head.
type Conflict struct {
	// Category whose linearization hit the conflict.
	Category string
	// Candidates are the heads that were available at the stuck step.
	Candidates []string
	// Chosen is the head the fallback selected.
	Chosen string
}

func (c Conflict) String() string {
	return fmt.Sprintf("inconsistent hierarchy at %q: chose %q among [%s]",
		c.Category, c.Chosen, strings.Join(c.Candidates, ", "))
}

// Resolver memoizes linearizations and effective categories for one
// universe. Construct one per compilation or request; instances are cheap
// and must not outlive the universe they were built over.
type Resolver struct {
	provider  CategoryProvider
	linMemo   map[string][]string
	effMemo   map[string]model.Category
	conflicts []Conflict
}

// New constructs a resolver over provider.
func New(provider CategoryProvider) *Resolver {
	return &Resolver{
		provider: provider,
		linMemo:  make(map[string][]string),
		effMemo:  make(map[string]model.Category),
	}
}

// Conflicts returns the linearization inconsistencies recorded so far, in
// the order they were hit.
func (r *Resolver) Conflicts() []Conflict {
	return slices.Clone(r.conflicts)
}

// Linearize computes L(name) = [name] + merge(L(P1)...L(Pn), [P1...Pn]).
// The first element is always name itself, followed by ancestors from
// closest to farthest.
func (r *Resolver) Linearize(name string) ([]string, error) {
	return r.linearize(name, nil)
}

// linearize carries the visiting chain for cycle detection; the chain also
// provides the error message when a cycle is found.
func (r *Resolver) linearize(name string, chain []string) ([]string, error) {
	if memo, ok := r.linMemo[name]; ok {
		return slices.Clone(memo), nil
	}
	if i := slices.Index(chain, name); i >= 0 {
		cycle := append(slices.Clone(chain[i:]), name)
		return nil, fmt.Errorf("%w: %s", ErrCycle, strings.Join(cycle, " -> "))
	}

	cat, ok := r.provider.CategoryByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, name)
	}

	parents := cat.Parents()
	chain = append(chain, name)

	lists := make([][]string, 0, len(parents)+1)
	for _, parent := range parents {
		parentLin, err := r.linearize(parent, chain)
		if err != nil {
			return nil, err
		}
		lists = append(lists, parentLin)
	}
	if len(parents) > 0 {
		lists = append(lists, slices.Clone(parents))
	}

	merged, conflicts := c3Merge(name, lists)
	r.conflicts = append(r.conflicts, conflicts...)

	result := append([]string{name}, merged...)
	r.linMemo[name] = result
	return slices.Clone(result), nil
}

// c3Merge performs the C3 merge over lists. At each step it takes the good
// head: the head of some list that appears in no list's tail. When no good
// head exists the hierarchy is inconsistent; the fallback takes the first
// non-empty head and removes every occurrence of it, which keeps the merge
// deterministic and terminating.
func c3Merge(owner string, lists [][]string) ([]string, []Conflict) {
	work := make([][]string, len(lists))
	for i, l := range lists {
		work[i] = slices.Clone(l)
	}

	var result []string
	var conflicts []Conflict
	for {
		work = slices.DeleteFunc(work, func(l []string) bool { return len(l) == 0 })
		if len(work) == 0 {
			return result, conflicts
		}

		head, ok := goodHead(work)
		if !ok {
			head = work[0][0]
			conflicts = append(conflicts, Conflict{
				Category:   owner,
				Candidates: heads(work),
				Chosen:     head,
			})
		}
		result = append(result, head)
		for i := range work {
			work[i] = slices.DeleteFunc(work[i], func(s string) bool { return s == head })
		}
	}
}

func goodHead(lists [][]string) (string, bool) {
	for _, l := range lists {
		candidate := l[0]
		if !inAnyTail(lists, candidate) {
			return candidate, true
		}
	}
	return "", false
}

func inAnyTail(lists [][]string, name string) bool {
	for _, l := range lists {
		if len(l) > 1 && slices.Contains(l[1:], name) {
			return true
		}
	}
	return false
}

func heads(lists [][]string) []string {
	var out []string
	for _, l := range lists {
		if !slices.Contains(out, l[0]) {
			out = append(out, l[0])
		}
	}
	return out
}

// EffectiveCategory merges name's ancestors into it along the
// linearization: the fold starts at the farthest ancestor and works closer,
// so a closer ancestor wins over a farther one and the category itself wins
// over all. Ancestors shared through a diamond contribute exactly once.
func (r *Resolver) EffectiveCategory(name string) (model.Category, error) {
	if eff, ok := r.effMemo[name]; ok {
		return eff, nil
	}

	lin, err := r.Linearize(name)
	if err != nil {
		return model.Category{}, err
	}

	self, _ := r.provider.CategoryByName(name)
	ancestors := lin[1:]
	if len(ancestors) == 0 {
		r.effMemo[name] = self
		return self, nil
	}

	acc, _ := r.provider.CategoryByName(ancestors[len(ancestors)-1])
	for i := len(ancestors) - 2; i >= 0; i-- {
		closer, _ := r.provider.CategoryByName(ancestors[i])
		acc = closer.MergeWithParent(acc)
	}
	eff := self.MergeWithParent(acc)

	r.effMemo[name] = eff
	return eff, nil
}
