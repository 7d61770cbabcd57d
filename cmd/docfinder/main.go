package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"
	"github.com/fwojciec/docfinder"
	dfhttp "github.com/fwojciec/docfinder/http"
	"github.com/fwojciec/docfinder/patricia"
	dfslog "github.com/fwojciec/docfinder/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Source overrides the HTTP doctor source. Set before calling Run().
	Source docfinder.DoctorSource
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docfinder"),
		kong.Description("Search the doctor directory by name, consultation type, and specialty."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"endpoint": dfhttp.DefaultEndpoint},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docfinder --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	source := m.Source
	if source == nil {
		source = dfhttp.NewDoctorSource(
			dfhttp.WithEndpoint(cli.Endpoint),
			dfhttp.WithTimeout(cli.Timeout),
		)
	}
	deps.Source = dfslog.NewLoggingDoctorSource(source, deps.Logger)
	deps.NewSuggester = func(doctors []*docfinder.Doctor) docfinder.Suggester {
		return dfslog.NewLoggingSuggester(patricia.NewSuggester(doctors), deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newLogger returns a slog logger rendering through charmbracelet/log.
// Only warnings and errors are shown unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := charmlog.WarnLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Prefix:          "docfinder",
		ReportTimestamp: verbose,
		Level:           level,
	})
	return slog.New(handler)
}
