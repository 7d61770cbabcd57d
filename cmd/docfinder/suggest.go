package main

import (
	"fmt"

	"github.com/fwojciec/docfinder"
)

// Run executes the suggest command.
func (c *SuggestCmd) Run(deps *Dependencies) error {
	doctors, err := deps.Source.FetchDoctors(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docfinder.ErrorMessage(err))
		return err
	}

	var suggester docfinder.Suggester = docfinder.NewLinearSuggester(doctors)
	if deps.NewSuggester != nil {
		suggester = deps.NewSuggester(doctors)
	}

	for _, d := range suggester.Suggest(c.Partial) {
		fmt.Fprintln(deps.Stdout, d.Name)
	}
	return nil
}
