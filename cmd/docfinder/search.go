package main

import (
	"fmt"

	"github.com/fwojciec/docfinder"
	"github.com/fwojciec/docfinder/memory"
	"github.com/fwojciec/docfinder/search"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	state, err := docfinder.ParseLink(c.Link)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docfinder.ErrorMessage(err))
		return err
	}

	mutations, err := c.mutations(state)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docfinder.ErrorMessage(err))
		return err
	}

	history := memory.NewHistory(linkPath(c.Link), docfinder.EncodeQuery(state))
	ctrl := &search.Controller{
		Source:       deps.Source,
		Navigator:    history,
		NewSuggester: deps.NewSuggester,
		Logger:       deps.Logger,
	}
	if err := ctrl.Open(); err != nil {
		return err
	}
	defer ctrl.Close()

	if err := ctrl.Load(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docfinder.ErrorMessage(err))
		return err
	}

	for _, m := range mutations {
		ctrl.Dispatch(m)
	}

	fmt.Fprintf(deps.Stdout, "link: %s\n", docfinder.FormatLink(history.Location(), ctrl.State()))
	renderResults(deps.Stdout, ctrl.View())
	return nil
}

// mutations converts the flags into filter changes on top of state.
func (c *SearchCmd) mutations(state docfinder.FilterState) ([]docfinder.Mutation, error) {
	var mutations []docfinder.Mutation
	if c.Query != "" {
		mutations = append(mutations, docfinder.SetSearch{Text: c.Query})
	}
	if c.Consultation != "" {
		consultation := docfinder.Consultation(c.Consultation)
		if !consultation.Valid() {
			return nil, docfinder.Errorf(docfinder.EINVALID, "unknown consultation type %q (want video_consult or in_clinic)", c.Consultation)
		}
		mutations = append(mutations, docfinder.SetConsultation{Consultation: consultation})
	}
	for _, name := range c.Specialty {
		if state.HasSpecialty(name) {
			continue
		}
		state = state.Apply(docfinder.ToggleSpecialty{Name: name})
		mutations = append(mutations, docfinder.ToggleSpecialty{Name: name})
	}
	if c.Sort != "" {
		sort := docfinder.SortOption(c.Sort)
		if !sort.Valid() {
			return nil, docfinder.Errorf(docfinder.EINVALID, "unknown sort option %q (want fees or experience)", c.Sort)
		}
		mutations = append(mutations, docfinder.SetSort{Sort: sort})
	}
	return mutations, nil
}
