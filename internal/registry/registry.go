// Package registry holds the static table of cycle script commands shared by
// validation, completion and hover.
package registry

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// ArgKind names the grammar of a single command argument.
type ArgKind string

const (
	ArgNumber             ArgKind = "number"
	ArgNumberOrAuto       ArgKind = "numberOrAuto"
	ArgUnitInterval       ArgKind = "unitInterval"
	ArgNonNegativeInteger ArgKind = "nonNegativeInteger"
	ArgQuotedString       ArgKind = "quotedString"
	ArgFreeform           ArgKind = "freeform"
)

// Auto is the keyword accepted as a value by ATSPEED and ATDIRECTION.
const Auto = "AUTO"

func (k ArgKind) valid() bool {
	switch k {
	case ArgNumber, ArgNumberOrAuto, ArgUnitInterval,
		ArgNonNegativeInteger, ArgQuotedString, ArgFreeform:
		return true
	}
	return false
}

// Command describes one registry entry.
type Command struct {
	Name        string    `yaml:"name"`
	Args        []ArgKind `yaml:"args"`
	Description string    `yaml:"description"`
	// KeywordOnly entries are argument values, never scanned as invocations.
	KeywordOnly bool `yaml:"keyword"`
	// ID is the 1-based position in the table.
	ID int `yaml:"-"`
}

// Arity is the number of arguments the command takes.
func (c Command) Arity() int {
	return len(c.Args)
}

// Registry is immutable once loaded and safe for concurrent use.
type Registry struct {
	commands []Command
	byName   map[string]int
}

//go:embed commands.yaml
var defaultTable []byte

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry built from the embedded command table.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := Load(defaultTable)
		if err != nil {
			panic(fmt.Sprintf("registry: embedded command table: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Load decodes a YAML command table.
func Load(data []byte) (*Registry, error) {
	var commands []Command
	if err := yaml.Unmarshal(data, &commands); err != nil {
		return nil, fmt.Errorf("failed to decode command table: %w", err)
	}

	r := &Registry{
		commands: make([]Command, 0, len(commands)),
		byName:   make(map[string]int, len(commands)),
	}
	for i, c := range commands {
		if c.Name == "" {
			return nil, fmt.Errorf("command %d has no name", i+1)
		}
		if _, dup := r.byName[c.Name]; dup {
			return nil, fmt.Errorf("duplicate command %q", c.Name)
		}
		for _, arg := range c.Args {
			if !arg.valid() {
				return nil, fmt.Errorf("command %s: unknown argument kind %q", c.Name, arg)
			}
		}
		c.ID = i + 1
		r.byName[c.Name] = len(r.commands)
		r.commands = append(r.commands, c)
	}
	return r, nil
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (Command, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Command{}, false
	}
	return r.commands[i], true
}

// Commands returns every entry in registry order.
func (r *Registry) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Validated returns the entries that are scanned as invocations, in registry order.
func (r *Registry) Validated() []Command {
	var out []Command
	for _, c := range r.commands {
		if !c.KeywordOnly {
			out = append(out, c)
		}
	}
	return out
}
