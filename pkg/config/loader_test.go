package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pzshrc.toml")
	doc := "[aliases]\nll = \"ls -la\"\n"
	if err := os.WriteFile(path, []byte(doc), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exp, ok := cfg.GetAlias("ll"); !ok || exp != "ls -la" {
		t.Errorf("GetAlias(ll) = %q, %v", exp, ok)
	}
}

func TestLoaderMissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load of missing file should fall back to defaults: %v", err)
	}
	if cfg.StartupBudgetMS != 10 {
		t.Errorf("expected default startup budget, got %d", cfg.StartupBudgetMS)
	}
}

func TestLoaderEnvOverrides(t *testing.T) {
	t.Setenv("PZSH_STARTUP_BUDGET_MS", "25")
	t.Setenv("PZSH_PROMPT_FORMAT", "{user} {char}")

	cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StartupBudgetMS != 25 {
		t.Errorf("env override should win: startup budget = %d", cfg.StartupBudgetMS)
	}
	if cfg.PromptFormat != "{user} {char}" {
		t.Errorf("env override should win: format = %q", cfg.PromptFormat)
	}
}

func TestLoaderEnvConfigPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte("[env]\nEDITOR = \"vim\"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PZSH_CONFIG", path)

	loader := NewLoader()
	if got := loader.ConfigPath(""); got != path {
		t.Errorf("ConfigPath = %q, want %q", got, path)
	}

	cfg, err := loader.Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if val, ok := cfg.GetEnv("EDITOR"); !ok || val != "vim" {
		t.Errorf("GetEnv(EDITOR) = %q, %v", val, ok)
	}
}

func TestLoaderRejectsForbiddenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pzshrc.toml")
	doc := "[env]\nGOROOT = \"$(brew --prefix golang)/libexec\"\n"
	if err := os.WriteFile(path, []byte(doc), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewLoader().Load(path); err == nil {
		t.Fatal("expected forbidden-pattern failure")
	}
}
