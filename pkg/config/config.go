// Package config handles loading, validating, and compiling pzsh
// configurations.
//
// A human-authored pzshrc document (TOML) is compiled once into an immutable
// Compiled artifact with O(1) alias and environment lookup. Compilation is
// atomic: a document that fails validation produces no artifact at all. The
// compiler performs no subprocess execution, no file-system access, and no
// network access; anything that would need those at shell startup is rejected
// by the forbidden-pattern check instead.
package config

import (
	"fmt"
	"maps"

	"github.com/BurntSushi/toml"

	"github.com/pzsh/pzsh/pkg/budget"
)

// ShellType identifies the target shell.
type ShellType int

// Supported shells.
const (
	Zsh ShellType = iota
	Bash
)

// String returns the shell name as used in configuration files.
func (s ShellType) String() string {
	switch s {
	case Bash:
		return "bash"
	default:
		return "zsh"
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so the TOML decoder
// rejects unknown shell names at parse time.
func (s *ShellType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "zsh", "":
		*s = Zsh
	case "bash":
		*s = Bash
	default:
		return fmt.Errorf("unknown shell %q (expected zsh or bash)", text)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s ShellType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// DefaultPromptFormat is the prompt format used when none is configured.
const DefaultPromptFormat = "{user}@{host} {cwd} {git} {char}"

// DefaultGitCacheMS is the default git status cache lifetime.
const DefaultGitCacheMS uint64 = 1000

// Source is the as-authored configuration, deserialized from a pzshrc
// document. It is consumed exactly once by Compile and not retained.
type Source struct {
	Pzsh        PzshSection        `toml:"pzsh"`
	Performance PerformanceSection `toml:"performance"`
	Prompt      PromptSection      `toml:"prompt"`
	Aliases     map[string]string  `toml:"aliases"`
	Env         map[string]string  `toml:"env"`
	Plugins     PluginsSection     `toml:"plugins"`
}

// PzshSection is the [pzsh] document section.
type PzshSection struct {
	Version string    `toml:"version"`
	Shell   ShellType `toml:"shell"`
}

// PerformanceSection is the [performance] document section.
type PerformanceSection struct {
	StartupBudgetMS uint64 `toml:"startup_budget_ms"`
	PromptBudgetMS  uint64 `toml:"prompt_budget_ms"`
	LazyLoad        bool   `toml:"lazy_load"`
}

// PromptSection is the [prompt] document section.
type PromptSection struct {
	Format     string `toml:"format"`
	GitAsync   bool   `toml:"git_async"`
	GitCacheMS uint64 `toml:"git_cache_ms"`
}

// PluginsSection is the [plugins] document section.
type PluginsSection struct {
	Enabled []string `toml:"enabled"`
	Lazy    []string `toml:"lazy"`
}

// DefaultSource returns a Source populated with the documented defaults.
// Decoding a document on top of it leaves absent fields at their defaults.
func DefaultSource() Source {
	return Source{
		Pzsh: PzshSection{
			Version: "0.1.0",
			Shell:   Zsh,
		},
		Performance: PerformanceSection{
			StartupBudgetMS: budget.DefaultStartupMS,
			PromptBudgetMS:  budget.DefaultPromptMS,
			LazyLoad:        true,
		},
		Prompt: PromptSection{
			Format:     DefaultPromptFormat,
			GitAsync:   true,
			GitCacheMS: DefaultGitCacheMS,
		},
	}
}

// Compiled is the immutable compiled configuration shared by every pipeline
// stage. Its maps are never mutated after construction; downstream stages
// read them through the O(1) accessors or take their own copies.
type Compiled struct {
	ShellType ShellType

	StartupBudgetMS  uint64
	PromptBudgetMS   uint64
	ParserBudgetMS   uint64
	ExecutorBudgetMS uint64

	LazyLoad     bool
	PromptFormat string
	GitAsync     bool
	GitCacheMS   uint64

	PluginsEnabled []string
	PluginsLazy    []string

	aliases map[string]string
	env     map[string]string
}

// Default returns a compiled configuration with no aliases or environment
// variables and all budgets at their defaults.
func Default() *Compiled {
	c, err := Compile(DefaultSource())
	if err != nil {
		// A defaults-only source has nothing to reject.
		panic(fmt.Sprintf("config: default source failed to compile: %v", err))
	}
	return c
}

// Compile validates a source configuration and produces the immutable
// compiled artifact. Compilation is atomic: any forbidden pattern in any
// alias or environment value fails the whole compile.
func Compile(src Source) (*Compiled, error) {
	for key, value := range src.Env {
		if err := checkForbidden("env", key, value); err != nil {
			return nil, err
		}
	}
	for key, value := range src.Aliases {
		if err := checkForbidden("aliases", key, value); err != nil {
			return nil, err
		}
	}

	aliases := maps.Clone(src.Aliases)
	if aliases == nil {
		aliases = make(map[string]string)
	}
	env := maps.Clone(src.Env)
	if env == nil {
		env = make(map[string]string)
	}

	return &Compiled{
		ShellType:        src.Pzsh.Shell,
		StartupBudgetMS:  src.Performance.StartupBudgetMS,
		PromptBudgetMS:   src.Performance.PromptBudgetMS,
		ParserBudgetMS:   budget.DefaultParserMS,
		ExecutorBudgetMS: budget.DefaultExecutorMS,
		LazyLoad:         src.Performance.LazyLoad,
		PromptFormat:     src.Prompt.Format,
		GitAsync:         src.Prompt.GitAsync,
		GitCacheMS:       src.Prompt.GitCacheMS,
		PluginsEnabled:   src.Plugins.Enabled,
		PluginsLazy:      src.Plugins.Lazy,
		aliases:          aliases,
		env:              env,
	}, nil
}

// ParseTOML decodes a pzshrc document and compiles it.
func ParseTOML(content string) (*Compiled, error) {
	src := DefaultSource()
	if err := decodeTOML(content, &src); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return Compile(src)
}

func decodeTOML(content string, src *Source) error {
	_, err := toml.Decode(content, src)
	return err
}

// GetAlias looks up an alias expansion. O(1) regardless of table size.
func (c *Compiled) GetAlias(name string) (string, bool) {
	expansion, ok := c.aliases[name]
	return expansion, ok
}

// GetEnv looks up an environment variable value. O(1) regardless of table size.
func (c *Compiled) GetEnv(name string) (string, bool) {
	value, ok := c.env[name]
	return value, ok
}

// AliasCount returns the number of configured aliases.
func (c *Compiled) AliasCount() int {
	return len(c.aliases)
}

// EnvCount returns the number of configured environment variables.
func (c *Compiled) EnvCount() int {
	return len(c.env)
}

// CloneAliases returns a copy of the alias table for stages that keep their
// own snapshot.
func (c *Compiled) CloneAliases() map[string]string {
	return maps.Clone(c.aliases)
}

// CloneEnv returns a copy of the environment table for stages that keep
// their own snapshot.
func (c *Compiled) CloneEnv() map[string]string {
	return maps.Clone(c.env)
}
