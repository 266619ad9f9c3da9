// Package executor holds the frozen environment and alias snapshot taken at
// startup and turns it back into shell statements.
//
// No subprocess is ever spawned here: every path and value is pre-resolved
// at compile time, which is what keeps Initialize inside its budget.
package executor

import (
	"sort"
	"strings"
	"time"

	"github.com/pzsh/pzsh/pkg/budget"
	"github.com/pzsh/pzsh/pkg/config"
)

// FrozenEnv is an immutable snapshot of the compiled environment table. It
// exposes no mutation surface by construction.
type FrozenEnv struct {
	vars map[string]string
}

// NewFrozenEnv snapshots the environment table of a compiled configuration.
func NewFrozenEnv(cfg *config.Compiled) FrozenEnv {
	return FrozenEnv{vars: cfg.CloneEnv()}
}

// Get looks up a variable. O(1).
func (e FrozenEnv) Get(key string) (string, bool) {
	value, ok := e.vars[key]
	return value, ok
}

// Len returns the number of variables.
func (e FrozenEnv) Len() int {
	return len(e.vars)
}

// Executor expands aliases and regenerates shell statements from the frozen
// snapshot.
type Executor struct {
	env         FrozenEnv
	aliases     map[string]string
	budgetMS    uint64
	initialized bool
}

// New creates an executor from a compiled configuration, cloning its alias
// and environment tables into frozen form.
func New(cfg *config.Compiled) *Executor {
	budgetMS := cfg.ExecutorBudgetMS
	if budgetMS == 0 {
		budgetMS = budget.DefaultExecutorMS
	}
	return &Executor{
		env:      NewFrozenEnv(cfg),
		aliases:  cfg.CloneAliases(),
		budgetMS: budgetMS,
	}
}

// Initialize is the one-shot startup step, timed against the executor
// budget. It spawns nothing; everything was pre-resolved at compile time.
func (e *Executor) Initialize() error {
	start := time.Now()

	e.initialized = true

	return budget.Check(budget.StageExecutor, e.budgetMS, start)
}

// IsInitialized reports whether Initialize has run.
func (e *Executor) IsInitialized() bool {
	return e.initialized
}

// GetEnv looks up an environment variable. O(1).
func (e *Executor) GetEnv(key string) (string, bool) {
	return e.env.Get(key)
}

// GetAlias looks up an alias expansion. O(1).
func (e *Executor) GetAlias(name string) (string, bool) {
	expansion, ok := e.aliases[name]
	return expansion, ok
}

// ExpandAlias returns the alias expansion when one exists and the input
// unchanged otherwise. An unknown name is an expected outcome, not an error.
func (e *Executor) ExpandAlias(command string) string {
	if expansion, ok := e.aliases[command]; ok {
		return expansion
	}
	return command
}

// GenerateExports emits one `export KEY="value"` line per environment
// variable, sorted by key so output is byte-identical across calls.
func (e *Executor) GenerateExports() string {
	return generateStatements(e.env.vars, "export ")
}

// GenerateAliases emits one `alias name="expansion"` line per alias, sorted
// by name.
func (e *Executor) GenerateAliases() string {
	return generateStatements(e.aliases, "alias ")
}

func generateStatements(table map[string]string, prefix string) string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.Grow(len(table) * 32)
	for _, key := range keys {
		b.WriteString(prefix)
		b.WriteString(key)
		b.WriteString("=\"")
		b.WriteString(table[key])
		b.WriteString("\"\n")
	}
	return b.String()
}
