package plugin

import (
	"fmt"
	"time"

	"github.com/pzsh/pzsh/pkg/config"
)

// Registry holds the plugin catalogue and drives the load-state machine.
// The built-in bundles are registered at construction; the registry is used
// from a single goroutine.
type Registry struct {
	plugins   map[string]Plugin
	states    map[string]State
	loadOrder []string
}

// NewRegistry creates a registry with the built-in plugins registered.
func NewRegistry() *Registry {
	r := &Registry{
		plugins: make(map[string]Plugin),
		states:  make(map[string]State),
	}
	r.Register(NewGitPlugin())
	r.Register(NewDockerPlugin())
	return r
}

// Register adds a plugin in the Registered state. Registering a name twice
// replaces the earlier bundle.
func (r *Registry) Register(p Plugin) {
	name := p.Info().Name
	r.plugins[name] = p
	r.states[name] = Registered
}

// State returns a plugin's current state.
func (r *Registry) State(name string) (State, bool) {
	state, ok := r.states[name]
	return state, ok
}

// List returns the registered plugin names.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	return names
}

// Disable marks a plugin disabled; Load refuses disabled plugins.
func (r *Registry) Disable(name string) error {
	if _, ok := r.plugins[name]; !ok {
		return &NotFoundError{Name: name}
	}
	r.states[name] = Disabled
	return nil
}

// Load runs one plugin through Registered → Loading → Loaded, enforcing
// dependency order and the per-plugin load budget. Loading an already
// loaded plugin is a no-op.
func (r *Registry) Load(name string) (time.Duration, error) {
	start := time.Now()

	switch r.states[name] {
	case Loaded:
		return 0, nil
	case Disabled:
		return 0, fmt.Errorf("plugin %s is disabled", name)
	}

	p, ok := r.plugins[name]
	if !ok {
		return 0, &NotFoundError{Name: name}
	}

	for _, dep := range p.Info().Dependencies {
		if r.states[dep] != Loaded {
			return 0, &DependencyError{Name: name, Dependency: dep}
		}
	}

	r.states[name] = Loading

	if err := p.Init(); err != nil {
		r.states[name] = Failed
		return 0, fmt.Errorf("plugin %s load failed: %w", name, err)
	}

	elapsed := time.Since(start)
	if elapsed > time.Duration(LoadBudgetMS)*time.Millisecond {
		r.states[name] = Failed
		return elapsed, &LoadBudgetError{Name: name, ActualMS: uint64(elapsed.Milliseconds())}
	}

	r.states[name] = Loaded
	r.loadOrder = append(r.loadOrder, name)
	return elapsed, nil
}

// LoadAll loads the named plugins in order, collecting per-plugin results.
func (r *Registry) LoadAll(names []string) []error {
	errs := make([]error, 0, len(names))
	for _, name := range names {
		if _, err := r.Load(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// LoadEnabled loads a compiled configuration's eager plugin list. Lazy
// plugins stay registered until something asks for them.
func (r *Registry) LoadEnabled(cfg *config.Compiled) []error {
	return r.LoadAll(cfg.PluginsEnabled)
}

// Aliases merges the aliases of every loaded plugin in load order, so a
// later plugin wins a name collision.
func (r *Registry) Aliases() map[string]string {
	merged := make(map[string]string)
	for _, name := range r.loadOrder {
		if r.states[name] != Loaded {
			continue
		}
		for alias, expansion := range r.plugins[name].Aliases() {
			merged[alias] = expansion
		}
	}
	return merged
}

// ShellInit concatenates the init text of every loaded plugin in load order.
func (r *Registry) ShellInit(shell config.ShellType) string {
	var out string
	for _, name := range r.loadOrder {
		if r.states[name] != Loaded {
			continue
		}
		out += r.plugins[name].ShellInit(shell)
	}
	return out
}
