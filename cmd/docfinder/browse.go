package main

import (
	"bufio"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/docfinder"
	"github.com/fwojciec/docfinder/memory"
	"github.com/fwojciec/docfinder/search"
	dfslog "github.com/fwojciec/docfinder/slog"
)

const browseHelp = `commands:
  type TEXT        type into the search box (suggestions follow)
  pick N           search for the N-th suggestion
  enter            search for what was typed
  blur             hide suggestions
  consult MODE     video, clinic, or any
  specialty NAME   toggle a specialty
  specialties      list specialties
  sort KEY         fees, experience, or none
  clear            clear all filters
  open LINK        open a shareable link as a new history entry
  back, forward    move through history
  show             show results
  link             show the shareable link
  quit             leave`

// settleTimeout bounds the wait for suggestions beyond the debounce interval.
const settleTimeout = 5 * time.Second

type suggestion struct {
	input   string
	doctors []*docfinder.Doctor
}

// Run executes the browse command.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	state, err := docfinder.ParseLink(c.Link)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docfinder.ErrorMessage(err))
		return err
	}

	history := memory.NewHistory(linkPath(c.Link), docfinder.EncodeQuery(state))
	suggested := make(chan suggestion, 16)
	ctrl := &search.Controller{
		Source:       deps.Source,
		Navigator:    dfslog.NewLoggingNavigator(history, deps.Logger),
		NewSuggester: deps.NewSuggester,
		Debounce:     c.Debounce,
		Logger:       deps.Logger,
		OnSuggestions: func(input string, doctors []*docfinder.Doctor) {
			select {
			case suggested <- suggestion{input: input, doctors: doctors}:
			default:
			}
		},
	}
	if err := ctrl.Open(); err != nil {
		return err
	}
	defer ctrl.Close()

	fmt.Fprintln(deps.Stdout, "Loading doctors...")
	if err := ctrl.Load(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docfinder.ErrorMessage(err))
		return err
	}
	c.show(deps, ctrl, history)

	b := &browser{
		deps:      deps,
		ctrl:      ctrl,
		history:   history,
		suggested: suggested,
		wait:      c.Debounce + settleTimeout,
	}

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(deps.Stdout)
			return scanner.Err()
		}
		if quit := b.exec(strings.TrimSpace(scanner.Text())); quit {
			return nil
		}
	}
}

func (c *BrowseCmd) show(deps *Dependencies, ctrl *search.Controller, history *memory.History) {
	v := ctrl.View()
	fmt.Fprintln(deps.Stdout, formatFilter(v.Filter))
	fmt.Fprintf(deps.Stdout, "link: %s\n", history.Location())
	renderResults(deps.Stdout, v)
}

// browser executes interactive commands against a controller.
type browser struct {
	deps      *Dependencies
	ctrl      *search.Controller
	history   *memory.History
	suggested chan suggestion
	wait      time.Duration
}

// exec runs one command line and reports whether the session should end.
func (b *browser) exec(line string) (quit bool) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	out := b.deps.Stdout

	switch cmd {
	case "":
		return false
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(out, browseHelp)
		return false
	case "type":
		b.typeText(arg)
		return false
	case "pick":
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(b.deps.Stderr, "error: pick needs a suggestion number\n")
			return false
		}
		if err := b.ctrl.SelectSuggestion(n - 1); err != nil {
			fmt.Fprintf(b.deps.Stderr, "error: %s\n", docfinder.ErrorMessage(err))
			return false
		}
	case "enter":
		b.ctrl.Submit()
	case "blur":
		b.ctrl.Blur()
		return false
	case "consult":
		consultation, ok := parseConsultation(arg)
		if !ok {
			fmt.Fprintf(b.deps.Stderr, "error: unknown consultation type %q\n", arg)
			return false
		}
		b.ctrl.Dispatch(docfinder.SetConsultation{Consultation: consultation})
	case "specialty":
		if !slices.Contains(b.ctrl.View().Specialties, arg) {
			fmt.Fprintf(b.deps.Stderr, "error: unknown specialty %q\n", arg)
			return false
		}
		b.ctrl.Dispatch(docfinder.ToggleSpecialty{Name: arg})
	case "specialties":
		v := b.ctrl.View()
		for _, name := range v.Specialties {
			mark := " "
			if v.Filter.HasSpecialty(name) {
				mark = "x"
			}
			fmt.Fprintf(out, "[%s] %s\n", mark, name)
		}
		return false
	case "sort":
		sort, ok := parseSort(arg)
		if !ok {
			fmt.Fprintf(b.deps.Stderr, "error: unknown sort option %q\n", arg)
			return false
		}
		b.ctrl.Dispatch(docfinder.SetSort{Sort: sort})
	case "clear":
		b.ctrl.Clear()
	case "open":
		state, err := docfinder.ParseLink(arg)
		if err != nil {
			fmt.Fprintf(b.deps.Stderr, "error: %s\n", docfinder.ErrorMessage(err))
			return false
		}
		b.history.Visit(docfinder.EncodeQuery(state))
	case "back":
		if !b.history.Back() {
			fmt.Fprintln(out, "No earlier entry.")
			return false
		}
	case "forward":
		if !b.history.Forward() {
			fmt.Fprintln(out, "No later entry.")
			return false
		}
	case "link":
		fmt.Fprintln(out, b.history.Location())
		return false
	case "show":
	default:
		fmt.Fprintf(b.deps.Stderr, "error: unknown command %q (try help)\n", cmd)
		return false
	}

	v := b.ctrl.View()
	fmt.Fprintln(out, formatFilter(v.Filter))
	fmt.Fprintf(out, "link: %s\n", b.history.Location())
	renderResults(out, v)
	return false
}

// typeText feeds text into the search box one keystroke at a time, then
// waits for the debounced suggestions of the final input.
func (b *browser) typeText(text string) {
	// Drop results left over from earlier input.
	for len(b.suggested) > 0 {
		<-b.suggested
	}

	var typed strings.Builder
	for _, r := range text {
		typed.WriteRune(r)
		b.ctrl.Type(typed.String())
	}
	if text == "" {
		b.ctrl.Type("")
	}

	timeout := time.After(b.wait)
	for {
		select {
		case s := <-b.suggested:
			if s.input != text {
				continue
			}
			b.printSuggestions(text, s.doctors)
			return
		case <-timeout:
			fmt.Fprintln(b.deps.Stderr, "error: suggestions timed out")
			return
		}
	}
}

func (b *browser) printSuggestions(text string, doctors []*docfinder.Doctor) {
	out := b.deps.Stdout
	fmt.Fprintf(out, "search: %s\n", text)
	if len(doctors) == 0 {
		fmt.Fprintln(out, "No suggestions.")
		return
	}
	for i, d := range doctors {
		fmt.Fprintf(out, "  %d. %s\n", i+1, d.Name)
	}
}

func parseConsultation(s string) (docfinder.Consultation, bool) {
	switch s {
	case "video", string(docfinder.ConsultationVideo):
		return docfinder.ConsultationVideo, true
	case "clinic", string(docfinder.ConsultationClinic):
		return docfinder.ConsultationClinic, true
	case "any", "":
		return docfinder.ConsultationAny, true
	}
	return "", false
}

func parseSort(s string) (docfinder.SortOption, bool) {
	switch s {
	case string(docfinder.SortByFees):
		return docfinder.SortByFees, true
	case string(docfinder.SortByExperience):
		return docfinder.SortByExperience, true
	case "none", "":
		return docfinder.SortNone, true
	}
	return "", false
}
