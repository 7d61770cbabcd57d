// Package patricia implements docfinder.Suggester on top of a PATRICIA trie
// holding every suffix of every doctor's lower-cased name. A substring
// query is then a prefix query over the suffixes.
package patricia

import (
	"slices"
	"strings"

	"github.com/fwojciec/docfinder"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Ensure Suggester implements docfinder.Suggester at compile time.
var _ docfinder.Suggester = (*Suggester)(nil)

// Suggester answers name suggestions from a suffix index built once for a
// doctor collection. It returns the same doctors as docfinder.SuggestDoctors.
type Suggester struct {
	doctors []*docfinder.Doctor
	trie    *patricia.Trie
}

// NewSuggester indexes doctors. The collection must not change afterwards.
func NewSuggester(doctors []*docfinder.Doctor) *Suggester {
	trie := patricia.NewTrie()
	for i, d := range doctors {
		name := strings.ToLower(d.Name)
		for off := range name {
			key := patricia.Prefix(name[off:])
			item := trie.Get(key)
			if item == nil {
				trie.Insert(key, []int{i})
				continue
			}
			positions := item.([]int)
			if positions[len(positions)-1] != i {
				trie.Set(key, append(positions, i))
			}
		}
	}

	return &Suggester{doctors: doctors, trie: trie}
}

// Suggest implements docfinder.Suggester.
func (s *Suggester) Suggest(partial string) []*docfinder.Doctor {
	if strings.TrimSpace(partial) == "" {
		return []*docfinder.Doctor{}
	}

	seen := make(map[int]struct{})
	var positions []int
	_ = s.trie.VisitSubtree(patricia.Prefix(strings.ToLower(partial)), func(_ patricia.Prefix, item patricia.Item) error {
		for _, i := range item.([]int) {
			if _, ok := seen[i]; ok {
				continue
			}
			seen[i] = struct{}{}
			positions = append(positions, i)
		}
		return nil
	})

	// Suggestions follow collection order, not trie order.
	slices.Sort(positions)
	if len(positions) > docfinder.MaxSuggestions {
		positions = positions[:docfinder.MaxSuggestions]
	}

	matches := make([]*docfinder.Doctor, 0, len(positions))
	for _, i := range positions {
		matches = append(matches, s.doctors[i])
	}
	return matches
}

// Len returns the number of indexed doctors.
func (s *Suggester) Len() int {
	return len(s.doctors)
}
