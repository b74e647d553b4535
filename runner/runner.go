// Package runner executes a YAML manifest of named parser cases and
// reports each one human-readably, the way the demonstrative test
// scripts for the language do.
package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v2"

	"github.com/Dfsantana1/sintactico/parser"
)

type Case struct {
	Name      string `yaml:"name"`
	Source    string `yaml:"source"`
	WantError bool   `yaml:"want_error"`
}

type Suite struct {
	Cases []Case `yaml:"cases"`
}

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func Load(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, err
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return Suite{}, err
	}

	return suite, nil
}

// Run parses every case and compares the outcome with the case's
// expectation. A failing case never stops the suite.
func (s Suite) Run(out io.Writer) (passed int, failed int) {
	for _, c := range s.Cases {
		_, err := parser.ParseString(c.Source, c.Name)

		switch {
		case err == nil && !c.WantError:
			passed++
			fmt.Fprintln(out, passStyle.Render("✓ "+c.Name))
		case err != nil && c.WantError:
			passed++
			fmt.Fprintln(out, passStyle.Render("✓ "+c.Name+" (rejected as expected)"))
		case err != nil:
			failed++
			fmt.Fprintln(out, failStyle.Render(fmt.Sprintf("✗ %s: %s", c.Name, err)))
		default:
			failed++
			fmt.Fprintln(out, failStyle.Render("✗ "+c.Name+": expected a parse error, got none"))
		}
	}

	fmt.Fprintf(out, "%d passed, %d failed\n", passed, failed)
	return passed, failed
}
