// Package demo runs a short walkthrough for each SOLID principle and writes
// what happens to a writer. The CLI's run command is a thin wrapper over Run.
package demo

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Principle names accepted by Run.
const (
	SingleResponsibility = "srp"
	OpenClosed           = "ocp"
	LiskovSubstitution   = "lsp"
	InterfaceSegregation = "isp"
	DependencyInversion  = "dip"
)

// ErrUnknownPrinciple is returned by Run and Lookup for an unrecognized name.
var ErrUnknownPrinciple = errors.New("unknown principle")

// Principle describes one walkthrough.
type Principle struct {
	Name       string
	Title      string
	Definition string
	run        func(w io.Writer, cfg Config) error
}

// Principles lists every walkthrough in SOLID order.
var Principles = []Principle{
	{
		Name:       SingleResponsibility,
		Title:      "Single Responsibility",
		Definition: "A module should have only one reason to change.",
		run:        runSRP,
	},
	{
		Name:       OpenClosed,
		Title:      "Open/Closed",
		Definition: "Software entities should be open for extension but closed for modification.",
		run:        runOCP,
	},
	{
		Name:       LiskovSubstitution,
		Title:      "Liskov Substitution",
		Definition: "Code using a base type must work with a subtype without knowing it.",
		run:        runLSP,
	},
	{
		Name:       InterfaceSegregation,
		Title:      "Interface Segregation",
		Definition: "Clients should not be forced to depend on interfaces they do not use.",
		run:        runISP,
	},
	{
		Name:       DependencyInversion,
		Title:      "Dependency Inversion",
		Definition: "High-level modules and low-level details should both depend on abstractions.",
		run:        runDIP,
	},
}

// Names returns the principle names in SOLID order.
func Names() []string {
	names := make([]string, len(Principles))
	for i, p := range Principles {
		names[i] = p.Name
	}
	return names
}

// Lookup returns the principle with the given name. Matching ignores case.
func Lookup(name string) (Principle, error) {
	for _, p := range Principles {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Principle{}, fmt.Errorf("%w %q (valid: %s)", ErrUnknownPrinciple, name, strings.Join(Names(), ", "))
}

// Run validates cfg and writes the walkthrough for the named principle to w.
func Run(w io.Writer, cfg Config, name string) error {
	p, err := Lookup(name)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := p.run(w, cfg); err != nil {
		return fmt.Errorf("run %s: %w", p.Name, err)
	}
	return nil
}
