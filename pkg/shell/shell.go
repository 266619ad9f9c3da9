// Package shell wires a compiled configuration into the full pipeline:
// parser, executor, and prompt renderer, constructed together under the
// startup budget.
package shell

import (
	"time"

	"github.com/pzsh/pzsh/pkg/budget"
	"github.com/pzsh/pzsh/pkg/config"
	"github.com/pzsh/pzsh/pkg/executor"
	"github.com/pzsh/pzsh/pkg/parser"
	"github.com/pzsh/pzsh/pkg/prompt"
)

// Shell is the assembled pipeline. All stages share the same frozen
// configuration by reference; none of them mutates it.
type Shell struct {
	cfg      *config.Compiled
	parser   *parser.Parser
	executor *executor.Executor
	prompt   *prompt.Prompt
}

// New constructs every stage from the compiled configuration. Construction
// is timed against the startup budget and fails loudly on overage.
func New(cfg *config.Compiled) (*Shell, error) {
	start := time.Now()

	s := &Shell{
		cfg:      cfg,
		parser:   parser.New(cfg),
		executor: executor.New(cfg),
		prompt:   prompt.New(cfg),
	}

	startupMS := cfg.StartupBudgetMS
	if startupMS == 0 {
		startupMS = budget.DefaultStartupMS
	}
	if err := budget.Check(budget.StageStartup, startupMS, start); err != nil {
		return nil, err
	}
	return s, nil
}

// Config returns the frozen configuration.
func (s *Shell) Config() *config.Compiled {
	return s.cfg
}

// Parser returns the cached command parser.
func (s *Shell) Parser() *parser.Parser {
	return s.parser
}

// Executor returns the alias/environment executor.
func (s *Shell) Executor() *executor.Executor {
	return s.executor
}

// Prompt returns the prompt renderer.
func (s *Shell) Prompt() *prompt.Prompt {
	return s.prompt
}

// ShellType returns the configured target shell.
func (s *Shell) ShellType() config.ShellType {
	return s.cfg.ShellType
}

// Reload rebuilds every stage from a new compiled configuration. The old
// parse cache is discarded with the old parser; reloading is the one moment
// memoized parses become stale.
func (s *Shell) Reload(cfg *config.Compiled) error {
	s.parser.ClearCache()

	rebuilt, err := New(cfg)
	if err != nil {
		return err
	}
	*s = *rebuilt
	return nil
}

// StageTimings holds per-stage construction durations for profiling.
type StageTimings struct {
	Parser   time.Duration
	Executor time.Duration
	Prompt   time.Duration
	Total    time.Duration
}

// Profile measures how long each stage takes to construct from cfg. Used by
// the profile command; the measured instances are discarded.
func Profile(cfg *config.Compiled) StageTimings {
	total := time.Now()

	start := time.Now()
	_ = parser.New(cfg)
	parserTime := time.Since(start)

	start = time.Now()
	_ = executor.New(cfg)
	executorTime := time.Since(start)

	start = time.Now()
	_ = prompt.New(cfg)
	promptTime := time.Since(start)

	return StageTimings{
		Parser:   parserTime,
		Executor: executorTime,
		Prompt:   promptTime,
		Total:    time.Since(total),
	}
}
