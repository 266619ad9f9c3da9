package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Loader resolves the pzshrc path and compiles the document it finds,
// applying environment variable overrides on top of the file contents.
//
// Path priority: explicit path > $PZSH_CONFIG > XDG config dir > ~/.pzshrc.
type Loader struct {
	envPrefix string
}

// NewLoader creates a configuration loader.
func NewLoader() *Loader {
	return &Loader{envPrefix: "PZSH"}
}

// ConfigPath returns the pzshrc path that Load would read. explicit wins
// when non-empty; it is not required to exist.
func (l *Loader) ConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if custom := os.Getenv(l.envPrefix + "_CONFIG"); custom != "" {
		return custom
	}
	xdgPath := filepath.Join(xdg.ConfigHome, "pzsh", "pzshrc.toml")
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return xdgPath
	}
	return filepath.Join(home, ".pzshrc")
}

// StateDir returns the XDG state directory for pzsh (history, jump database).
func (l *Loader) StateDir() string {
	return filepath.Join(xdg.StateHome, "pzsh")
}

// Load reads, decodes, and compiles the configuration at path (resolved via
// ConfigPath when path is empty). A missing file compiles the defaults.
func (l *Loader) Load(path string) (*Compiled, error) {
	resolved := l.ConfigPath(path)

	src := DefaultSource()
	data, err := os.ReadFile(resolved)
	switch {
	case os.IsNotExist(err):
		// No pzshrc is fine: defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", resolved, err)
	default:
		decoded := DefaultSource()
		if derr := decodeTOML(string(data), &decoded); derr != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", resolved, derr)
		}
		src = decoded
	}

	l.applyEnvOverrides(&src)
	return Compile(src)
}

// applyEnvOverrides lets PZSH_* environment variables override individual
// source fields without editing the file.
func (l *Loader) applyEnvOverrides(src *Source) {
	v := viper.New()
	v.SetEnvPrefix(l.envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if v.IsSet("startup_budget_ms") {
		src.Performance.StartupBudgetMS = v.GetUint64("startup_budget_ms")
	}
	if v.IsSet("prompt_budget_ms") {
		src.Performance.PromptBudgetMS = v.GetUint64("prompt_budget_ms")
	}
	if v.IsSet("prompt_format") {
		src.Prompt.Format = v.GetString("prompt_format")
	}
	if v.IsSet("shell") {
		// Invalid values keep the configured shell rather than failing the
		// whole load.
		_ = src.Pzsh.Shell.UnmarshalText([]byte(v.GetString("shell")))
	}
}
