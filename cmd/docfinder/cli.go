package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docfinder"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdin        io.Reader
	Stdout       io.Writer
	Stderr       io.Writer
	Logger       *slog.Logger
	Source       docfinder.DoctorSource
	NewSuggester func(doctors []*docfinder.Doctor) docfinder.Suggester
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Endpoint string        `env:"DOCFINDER_ENDPOINT" default:"${endpoint}" help:"URL of the doctor directory JSON"`
	Timeout  time.Duration `default:"10s" help:"Timeout for fetching the directory"`
	Verbose  bool          `short:"v" help:"Log debug output to stderr"`

	Search      SearchCmd      `cmd:"" help:"List doctors matching a search"`
	Specialties SpecialtiesCmd `cmd:"" help:"List every specialty in the directory"`
	Suggest     SuggestCmd     `cmd:"" help:"Suggest doctor names for a partial name"`
	Browse      BrowseCmd      `cmd:"" help:"Search interactively"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Link         string   `arg:"" optional:"" help:"Shareable link or query string to start from"`
	Query        string   `name:"q" help:"Search by doctor name"`
	Consultation string   `short:"c" help:"Consultation type (video_consult or in_clinic)"`
	Specialty    []string `short:"s" name:"specialty" help:"Filter by specialty (repeatable)"`
	Sort         string   `help:"Sort by fees or experience"`
}

// SpecialtiesCmd is the "specialties" subcommand.
type SpecialtiesCmd struct{}

// SuggestCmd is the "suggest" subcommand.
type SuggestCmd struct {
	Partial string `arg:"" help:"Partial doctor name"`
}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct {
	Link     string        `arg:"" optional:"" help:"Shareable link or query string to start from"`
	Debounce time.Duration `default:"300ms" help:"Quiet period before suggestions are shown"`
}
