// Package plugin provides the static catalogue of alias bundles.
//
// Plugins ship aliases, environment variables, and shell initialization
// text. They are loaded through a small state machine and each load is held
// to a per-plugin budget so a misbehaving bundle cannot eat the startup
// allowance.
package plugin

import (
	"fmt"

	"github.com/pzsh/pzsh/pkg/config"
)

// LoadBudgetMS is the per-plugin load budget.
const LoadBudgetMS uint64 = 5

// State tracks a plugin through its lifecycle.
type State int

// Plugin states.
const (
	// Registered means the plugin is known but its aliases are not active.
	Registered State = iota
	// Loading means a load is in progress.
	Loading
	// Loaded means the plugin's aliases and init text are active.
	Loaded
	// Failed means the last load attempt errored or ran over budget.
	Failed
	// Disabled means the user turned the plugin off.
	Disabled
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	case Disabled:
		return "disabled"
	default:
		return "registered"
	}
}

// Info describes a plugin.
type Info struct {
	Name         string
	Description  string
	Version      string
	Dependencies []string
}

// Plugin is one bundle in the catalogue. The concrete set is closed and
// known at build time; Plugin is an interface only so bundles can carry
// their own state.
type Plugin interface {
	// Info returns the plugin's metadata.
	Info() Info
	// Init activates the plugin. Called once per load.
	Init() error
	// ShellInit returns shell initialization text for the target shell.
	ShellInit(shell config.ShellType) string
	// Aliases returns the aliases this plugin contributes.
	Aliases() map[string]string
	// EnvVars returns the environment variables this plugin contributes.
	EnvVars() map[string]string
}

// NotFoundError reports a load of an unregistered plugin.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("plugin not found: %s", e.Name)
}

// DependencyError reports a load attempted before a dependency was loaded.
type DependencyError struct {
	Name       string
	Dependency string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("plugin %s: dependency not met: %s", e.Name, e.Dependency)
}

// LoadBudgetError reports a plugin running over its load budget.
type LoadBudgetError struct {
	Name     string
	ActualMS uint64
}

func (e *LoadBudgetError) Error() string {
	return fmt.Sprintf("plugin %s exceeded %dms load budget (took %dms)", e.Name, LoadBudgetMS, e.ActualMS)
}
