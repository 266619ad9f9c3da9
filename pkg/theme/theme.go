// Package theme provides oh-my-zsh-style prompt themes.
//
// A theme bundles per-segment display styles with ready-to-eval zsh and
// bash prompt strings. Five themes ship built in (robbyrussell, agnoster,
// simple, pure, spaceship) and custom themes load from YAML files.
package theme

import (
	"fmt"
	"os"
	"sort"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// StyleSpec names a foreground/background color pair plus bold, and
// resolves to a terminal style on demand.
type StyleSpec struct {
	Fg   string `yaml:"fg,omitempty"`
	Bg   string `yaml:"bg,omitempty"`
	Bold bool   `yaml:"bold,omitempty"`
}

var fgColors = map[string]pterm.Color{
	"black":   pterm.FgBlack,
	"red":     pterm.FgRed,
	"green":   pterm.FgGreen,
	"yellow":  pterm.FgYellow,
	"blue":    pterm.FgBlue,
	"magenta": pterm.FgMagenta,
	"cyan":    pterm.FgCyan,
	"white":   pterm.FgWhite,
	"gray":    pterm.FgGray,
}

var bgColors = map[string]pterm.Color{
	"black":   pterm.BgBlack,
	"red":     pterm.BgRed,
	"green":   pterm.BgGreen,
	"yellow":  pterm.BgYellow,
	"blue":    pterm.BgBlue,
	"magenta": pterm.BgMagenta,
	"cyan":    pterm.BgCyan,
	"white":   pterm.BgWhite,
	"gray":    pterm.BgGray,
}

// Style resolves the color names to a pterm style. Unknown names error.
func (s StyleSpec) Style() (*pterm.Style, error) {
	var colors []pterm.Color
	if s.Fg != "" {
		c, ok := fgColors[s.Fg]
		if !ok {
			return nil, fmt.Errorf("unknown foreground color %q", s.Fg)
		}
		colors = append(colors, c)
	}
	if s.Bg != "" {
		c, ok := bgColors[s.Bg]
		if !ok {
			return nil, fmt.Errorf("unknown background color %q", s.Bg)
		}
		colors = append(colors, c)
	}
	if s.Bold {
		colors = append(colors, pterm.Bold)
	}
	return pterm.NewStyle(colors...), nil
}

// Styles holds one spec per prompt segment.
type Styles struct {
	User       StyleSpec `yaml:"user,omitempty"`
	Host       StyleSpec `yaml:"host,omitempty"`
	Cwd        StyleSpec `yaml:"cwd,omitempty"`
	GitClean   StyleSpec `yaml:"git_clean,omitempty"`
	GitDirty   StyleSpec `yaml:"git_dirty,omitempty"`
	PromptChar StyleSpec `yaml:"prompt_char,omitempty"`
	PromptRoot StyleSpec `yaml:"prompt_root,omitempty"`
	Error      StyleSpec `yaml:"error,omitempty"`
	Success    StyleSpec `yaml:"success,omitempty"`
}

// Theme is a named prompt appearance. ZshPrompt and BashPrompt are
// complete shell statements ready to be emitted into an init script.
type Theme struct {
	Name       string `yaml:"name"`
	Styles     Styles `yaml:"styles"`
	ZshPrompt  string `yaml:"zsh_prompt"`
	BashPrompt string `yaml:"bash_prompt"`
}

// DefaultName is the theme selected when none is configured.
const DefaultName = "robbyrussell"

func builtinThemes() []Theme {
	return []Theme{
		{
			Name: "robbyrussell",
			Styles: Styles{
				Cwd:        StyleSpec{Fg: "cyan", Bold: true},
				GitClean:   StyleSpec{Fg: "blue"},
				GitDirty:   StyleSpec{Fg: "yellow"},
				PromptChar: StyleSpec{Fg: "green", Bold: true},
				PromptRoot: StyleSpec{Fg: "red", Bold: true},
				Error:      StyleSpec{Fg: "red", Bold: true},
				Success:    StyleSpec{Fg: "green"},
			},
			ZshPrompt:  `PROMPT='%(?:%F{green}➜:%F{red}➜) %F{cyan}%c%f $(__pzsh_git_info) '`,
			BashPrompt: `PS1='\[\033[32m\]➜ \[\033[36m\]\W\[\033[0m\] $(__pzsh_git_info) '`,
		},
		{
			Name: "agnoster",
			Styles: Styles{
				User:       StyleSpec{Fg: "black", Bg: "blue", Bold: true},
				Host:       StyleSpec{Fg: "black", Bg: "blue", Bold: true},
				Cwd:        StyleSpec{Fg: "white", Bg: "blue"},
				GitClean:   StyleSpec{Fg: "black", Bg: "green"},
				GitDirty:   StyleSpec{Fg: "black", Bg: "yellow"},
				PromptRoot: StyleSpec{Fg: "yellow"},
				Error:      StyleSpec{Fg: "white", Bg: "red"},
				Success:    StyleSpec{Fg: "black", Bg: "green"},
			},
			ZshPrompt:  `PROMPT='%K{blue}%F{black} %n@%m %k%F{blue}%K{cyan}%F{black} %~ %k%F{cyan}$(__pzsh_git_segment)%k%f '`,
			BashPrompt: `PS1='\[\033[44m\]\[\033[30m\] \u@\h \[\033[0m\]\[\033[34m\]\[\033[46m\]\[\033[30m\] \w \[\033[0m\]\[\033[36m\] '`,
		},
		{
			Name: "simple",
			Styles: Styles{
				User:       StyleSpec{Fg: "green"},
				Host:       StyleSpec{Fg: "blue"},
				Cwd:        StyleSpec{Fg: "cyan"},
				GitClean:   StyleSpec{Fg: "green"},
				GitDirty:   StyleSpec{Fg: "yellow"},
				PromptChar: StyleSpec{Fg: "white"},
				PromptRoot: StyleSpec{Fg: "red"},
				Error:      StyleSpec{Fg: "red"},
				Success:    StyleSpec{Fg: "green"},
			},
			ZshPrompt:  `PROMPT='%F{green}%n%f@%F{blue}%m%f %F{cyan}%~%f $(__pzsh_git_info) %# '`,
			BashPrompt: `PS1='\[\033[32m\]\u\[\033[0m\]@\[\033[34m\]\h\[\033[0m\] \[\033[36m\]\w\[\033[0m\] \$ '`,
		},
		{
			Name: "pure",
			Styles: Styles{
				User:       StyleSpec{Fg: "magenta"},
				Host:       StyleSpec{Fg: "yellow"},
				Cwd:        StyleSpec{Fg: "blue", Bold: true},
				GitClean:   StyleSpec{Fg: "gray"},
				GitDirty:   StyleSpec{Fg: "cyan"},
				PromptChar: StyleSpec{Fg: "magenta"},
				PromptRoot: StyleSpec{Fg: "red"},
				Error:      StyleSpec{Fg: "red"},
				Success:    StyleSpec{Fg: "magenta"},
			},
			ZshPrompt:  "PROMPT='\n%F{blue}%~%f $(__pzsh_git_info)\n%(?:%F{magenta}❯:%F{red}❯)%f '",
			BashPrompt: `PS1='\n\[\033[34m\]\w\[\033[0m\] $(__pzsh_git_info)\n\[\033[35m\]❯\[\033[0m\] '`,
		},
		{
			Name: "spaceship",
			Styles: Styles{
				User:       StyleSpec{Fg: "yellow"},
				Host:       StyleSpec{Fg: "green"},
				Cwd:        StyleSpec{Fg: "cyan", Bold: true},
				GitClean:   StyleSpec{Fg: "green"},
				GitDirty:   StyleSpec{Fg: "red"},
				PromptChar: StyleSpec{Fg: "green"},
				PromptRoot: StyleSpec{Fg: "red"},
				Error:      StyleSpec{Fg: "red"},
				Success:    StyleSpec{Fg: "green"},
			},
			ZshPrompt:  "PROMPT='\n%F{cyan}%~%f $(__pzsh_git_info)\n%(?:%F{green}❯:%F{red}❯)%f '",
			BashPrompt: `PS1='\n\[\033[36m\]\w\[\033[0m\] $(__pzsh_git_info)\n\[\033[32m\]❯\[\033[0m\] '`,
		},
	}
}

// Registry maps theme names to themes and tracks the current selection.
type Registry struct {
	themes  map[string]Theme
	current string
}

// NewRegistry returns a registry populated with the built-in themes,
// with robbyrussell selected.
func NewRegistry() *Registry {
	r := &Registry{
		themes:  make(map[string]Theme),
		current: DefaultName,
	}
	for _, t := range builtinThemes() {
		r.Register(t)
	}
	return r
}

// Register adds or replaces a theme under its own name.
func (r *Registry) Register(t Theme) {
	r.themes[t.Name] = t
}

// Get looks up a theme by name.
func (r *Registry) Get(name string) (Theme, bool) {
	t, ok := r.themes[name]
	return t, ok
}

// Current returns the selected theme.
func (r *Registry) Current() Theme {
	return r.themes[r.current]
}

// SetCurrent selects a theme by name.
func (r *Registry) SetCurrent(name string) error {
	if _, ok := r.themes[name]; !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	r.current = name
	return nil
}

// List returns all theme names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count reports the number of registered themes.
func (r *Registry) Count() int {
	return len(r.themes)
}

// LoadFile parses a YAML theme file and registers the result.
func (r *Registry) LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return Theme{}, fmt.Errorf("parsing theme file %s: %w", path, err)
	}
	r.Register(t)
	return t, nil
}

// Parse decodes a YAML theme document and validates it.
func Parse(data []byte) (Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, err
	}
	if t.Name == "" {
		return Theme{}, fmt.Errorf("theme is missing a name")
	}
	for _, spec := range []StyleSpec{
		t.Styles.User, t.Styles.Host, t.Styles.Cwd,
		t.Styles.GitClean, t.Styles.GitDirty,
		t.Styles.PromptChar, t.Styles.PromptRoot,
		t.Styles.Error, t.Styles.Success,
	} {
		if _, err := spec.Style(); err != nil {
			return Theme{}, fmt.Errorf("theme %s: %w", t.Name, err)
		}
	}
	return t, nil
}
