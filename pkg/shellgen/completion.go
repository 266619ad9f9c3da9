// Package shellgen emits the shell-side integration for pzsh: init
// scripts, zsh completion functions, line-editor widgets, and the
// directory jump command. Everything here produces text for the shell
// to source; nothing spawns a process.
package shellgen

import (
	"fmt"
	"sort"
	"strings"
)

// CompletionSpec describes one completable element of a command, either
// a flag or a positional value set.
type CompletionSpec struct {
	Pattern     string
	Description string
	Values      []string
	IsFlag      bool
}

// Flag builds a flag completion.
func Flag(name, description string) CompletionSpec {
	return CompletionSpec{Pattern: name, Description: description, IsFlag: true}
}

// Value builds a positional value completion.
func Value(pattern string, values []string) CompletionSpec {
	return CompletionSpec{Pattern: pattern, Values: values}
}

// Completions generates zsh compdef functions for registered commands.
type Completions struct {
	commands map[string][]CompletionSpec
}

// NewCompletions returns a generator preloaded with git and docker
// completions.
func NewCompletions() *Completions {
	c := &Completions{commands: make(map[string][]CompletionSpec)}

	c.Register("git", []CompletionSpec{
		Flag("-v", "Show version"),
		Flag("--help", "Show help"),
		Value("command", []string{
			"add", "branch", "checkout", "clone", "commit", "diff",
			"fetch", "init", "log", "merge", "pull", "push", "rebase",
			"reset", "restore", "stash", "status", "switch", "tag",
		}),
	})
	c.Register("docker", []CompletionSpec{
		Flag("-v", "Show version"),
		Flag("--help", "Show help"),
		Value("command", []string{
			"build", "compose", "container", "exec", "image", "images",
			"logs", "network", "ps", "pull", "push", "rm", "rmi", "run",
			"start", "stop", "volume",
		}),
	})

	return c
}

// Register sets the completion specs for a command.
func (c *Completions) Register(command string, specs []CompletionSpec) {
	c.commands[command] = specs
}

// Commands returns the registered command names in sorted order.
func (c *Completions) Commands() []string {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Function generates the zsh completion function for one command, or
// "" if the command is not registered.
func (c *Completions) Function(command string) string {
	specs, ok := c.commands[command]
	if !ok {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n\n", command)
	fmt.Fprintf(&b, "_%s() {\n", command)
	b.WriteString("  local curcontext=\"$curcontext\" state line\n")
	b.WriteString("  typeset -A opt_args\n\n")
	b.WriteString("  _arguments -C \\\n")

	for i, spec := range specs {
		cont := " \\"
		if i == len(specs)-1 {
			cont = ""
		}
		if spec.IsFlag {
			fmt.Fprintf(&b, "    '%s[%s]'%s\n", spec.Pattern, spec.Description, cont)
		} else if len(spec.Values) > 0 {
			fmt.Fprintf(&b, "    '*:%s:((%s))'%s\n", spec.Pattern, strings.Join(spec.Values, " "), cont)
		}
	}

	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "_%s \"$@\"\n", command)
	return b.String()
}

// All generates every registered completion function, in sorted
// command order.
func (c *Completions) All() string {
	var b strings.Builder
	b.WriteString("# pzsh zsh completions\n\n")
	for _, command := range c.Commands() {
		b.WriteString(c.Function(command))
		b.WriteByte('\n')
	}
	return b.String()
}
