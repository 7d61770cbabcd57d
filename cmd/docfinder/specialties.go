package main

import (
	"fmt"

	"github.com/fwojciec/docfinder"
)

// Run executes the specialties command.
func (c *SpecialtiesCmd) Run(deps *Dependencies) error {
	doctors, err := deps.Source.FetchDoctors(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docfinder.ErrorMessage(err))
		return err
	}

	specialties := docfinder.ExtractSpecialties(doctors)
	if len(specialties) == 0 {
		fmt.Fprintln(deps.Stdout, "No specialties found.")
		return nil
	}

	for _, name := range specialties {
		fmt.Fprintln(deps.Stdout, name)
	}
	return nil
}
