// Package script validates cycle scripts line by line.
//
// Every non-blank, non-comment line is checked for forbidden command
// combinations and then scanned for invocations of each registered
// command; each invocation is handed to the argument validator of its
// command. Lines never influence each other.
package script

import (
	"errors"
	"fmt"
	"strings"

	"cyclels/internal/registry"
)

// Checker validates documents against a registry.
type Checker struct {
	names []string
}

// ErrArityMismatch is returned by NewChecker when a registry entry declares a
// different number of arguments than its validator checks.
var ErrArityMismatch = errors.New("arity mismatch")

// NewChecker prepares a checker for the validated commands of reg. Commands
// without an argument validator are not scanned.
func NewChecker(reg *registry.Registry) (*Checker, error) {
	c := &Checker{}
	for _, cmd := range reg.Validated() {
		rule, ok := validators[cmd.Name]
		if !ok {
			continue
		}
		if cmd.Arity() != rule.arity {
			return nil, fmt.Errorf("%w: %s declares %d argument(s), validator expects %d",
				ErrArityMismatch, cmd.Name, cmd.Arity(), rule.arity)
		}
		c.names = append(c.names, cmd.Name)
	}
	return c, nil
}

// Check validates a whole document. The result only depends on text.
func (c *Checker) Check(text string) []Diagnostic {
	var diagnostics []Diagnostic
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		diagnostics = append(diagnostics, c.CheckLine(line, i)...)
	}
	return diagnostics
}

// CheckLine validates a single line. Diagnostics come out in registry order,
// not in textual order.
func (c *Checker) CheckLine(line string, lineNo int) []Diagnostic {
	if skipLine(line) {
		return nil
	}

	diagnostics := CheckLineRules(line, lineNo)
	for _, inv := range ScanLine(line, c.names) {
		diagnostics = append(diagnostics, validators[inv.Name].validate(inv, lineNo)...)
	}

	for i := range diagnostics {
		diagnostics[i] = toUTF16(line, diagnostics[i])
	}
	return diagnostics
}
