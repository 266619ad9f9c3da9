package config

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()

	if cfg.StartupBudgetMS != 10 {
		t.Errorf("expected startup budget 10ms, got %d", cfg.StartupBudgetMS)
	}
	if cfg.PromptBudgetMS != 2 {
		t.Errorf("expected prompt budget 2ms, got %d", cfg.PromptBudgetMS)
	}
	if cfg.ParserBudgetMS != 2 {
		t.Errorf("expected parser budget 2ms, got %d", cfg.ParserBudgetMS)
	}
	if cfg.ExecutorBudgetMS != 2 {
		t.Errorf("expected executor budget 2ms, got %d", cfg.ExecutorBudgetMS)
	}
	if !cfg.LazyLoad {
		t.Error("expected lazy_load true by default")
	}
	if !cfg.GitAsync {
		t.Error("expected git_async true by default")
	}
	if cfg.GitCacheMS != 1000 {
		t.Errorf("expected git cache 1000ms, got %d", cfg.GitCacheMS)
	}
	if cfg.PromptFormat != DefaultPromptFormat {
		t.Errorf("expected default prompt format, got %q", cfg.PromptFormat)
	}
	if cfg.ShellType != Zsh {
		t.Errorf("expected default shell zsh, got %v", cfg.ShellType)
	}
}

func TestValidConfigParses(t *testing.T) {
	doc := `
[pzsh]
version = "0.1.0"
shell = "zsh"

[performance]
startup_budget_ms = 10
lazy_load = true

[aliases]
ll = "ls -la"
gs = "git status"

[env]
EDITOR = "vim"
GOROOT = "/usr/local/opt/go/libexec"
`
	cfg, err := ParseTOML(doc)
	if err != nil {
		t.Fatalf("ParseTOML failed: %v", err)
	}

	if exp, ok := cfg.GetAlias("ll"); !ok || exp != "ls -la" {
		t.Errorf("GetAlias(ll) = %q, %v; want 'ls -la', true", exp, ok)
	}
	if val, ok := cfg.GetEnv("EDITOR"); !ok || val != "vim" {
		t.Errorf("GetEnv(EDITOR) = %q, %v; want 'vim', true", val, ok)
	}
}

func TestForbiddenPatterns(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "subprocess in env",
			doc:  "[env]\nGOROOT = \"$(brew --prefix golang)/libexec\"\n",
			want: "subprocess",
		},
		{
			name: "brew prefix in env",
			doc:  "[env]\nPATH = \"/usr/bin:$(brew --prefix)/bin\"\n",
			want: "forbidden pattern",
		},
		{
			name: "eval in alias",
			doc:  "[aliases]\ndangerous = \"eval $SOME_VAR\"\n",
			want: "eval",
		},
		{
			name: "backticks in alias",
			doc:  "[aliases]\ndate = \"`date`\"\n",
			want: "backticks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTOML(tt.doc)
			if err == nil {
				t.Fatal("expected compile to fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err.Error(), tt.want)
			}

			var fpe *ForbiddenPatternError
			if !errors.As(err, &fpe) {
				t.Errorf("expected *ForbiddenPatternError, got %T", err)
			}
		})
	}
}

func TestCompileIsAtomic(t *testing.T) {
	// One bad value among good ones must fail the whole compile.
	src := DefaultSource()
	src.Aliases = map[string]string{
		"ll":  "ls -la",
		"bad": "eval $X",
		"gs":  "git status",
	}

	cfg, err := Compile(src)
	if err == nil {
		t.Fatal("expected compile to fail")
	}
	if cfg != nil {
		t.Error("failed compile must not return a partial artifact")
	}
}

func TestForbiddenPatternErrorIdentifiesField(t *testing.T) {
	src := DefaultSource()
	src.Env = map[string]string{"GOROOT": "$(brew --prefix golang)/libexec"}

	_, err := Compile(src)
	var fpe *ForbiddenPatternError
	if !errors.As(err, &fpe) {
		t.Fatalf("expected *ForbiddenPatternError, got %T", err)
	}
	if fpe.Field != "env.GOROOT" {
		t.Errorf("expected field env.GOROOT, got %q", fpe.Field)
	}
	if fpe.Value != "$(brew --prefix golang)/libexec" {
		t.Errorf("error should carry the offending value, got %q", fpe.Value)
	}
}

func TestShellTypeDecoding(t *testing.T) {
	tests := []struct {
		doc     string
		want    ShellType
		wantErr bool
	}{
		{"[pzsh]\nshell = \"zsh\"\n", Zsh, false},
		{"[pzsh]\nshell = \"bash\"\n", Bash, false},
		{"[pzsh]\nshell = \"fish\"\n", Zsh, true},
	}

	for _, tt := range tests {
		cfg, err := ParseTOML(tt.doc)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTOML(%q) should fail", tt.doc)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTOML(%q) failed: %v", tt.doc, err)
			continue
		}
		if cfg.ShellType != tt.want {
			t.Errorf("ParseTOML(%q) shell = %v, want %v", tt.doc, cfg.ShellType, tt.want)
		}
	}
}

func TestMalformedDocument(t *testing.T) {
	_, err := ParseTOML("[pzsh\nshell = zsh")
	if err == nil {
		t.Fatal("expected parse error for malformed TOML")
	}
	if !strings.Contains(err.Error(), "parse error") {
		t.Errorf("expected wrapped parse error, got %q", err.Error())
	}
}

func TestAliasLookupIsO1(t *testing.T) {
	src := DefaultSource()
	src.Aliases = make(map[string]string, 10000)
	for i := 0; i < 10000; i++ {
		src.Aliases[fmt.Sprintf("alias%d", i)] = fmt.Sprintf("command%d", i)
	}

	cfg, err := Compile(src)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	for _, name := range []string{"alias0", "alias9999"} {
		start := time.Now()
		if _, ok := cfg.GetAlias(name); !ok {
			t.Fatalf("GetAlias(%s) missing", name)
		}
		if elapsed := time.Since(start); elapsed > time.Millisecond {
			t.Errorf("GetAlias(%s) took %v, want sub-millisecond", name, elapsed)
		}
	}
}

func TestEnvLookup(t *testing.T) {
	src := DefaultSource()
	src.Env = map[string]string{"TEST": "value"}

	cfg, err := Compile(src)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if val, ok := cfg.GetEnv("TEST"); !ok || val != "value" {
		t.Errorf("GetEnv(TEST) = %q, %v; want 'value', true", val, ok)
	}
	if _, ok := cfg.GetEnv("NONEXISTENT"); ok {
		t.Error("GetEnv(NONEXISTENT) should miss")
	}
	if _, ok := cfg.GetAlias("nonexistent"); ok {
		t.Error("GetAlias(nonexistent) should miss")
	}
}

func TestCompileIsFast(t *testing.T) {
	doc := "[aliases]\nll = \"ls -la\"\n\n[env]\nEDITOR = \"vim\"\n"

	start := time.Now()
	for i := 0; i < 1000; i++ {
		if _, err := ParseTOML(doc); err != nil {
			t.Fatalf("ParseTOML failed: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("1000 compiles took %v", elapsed)
	}
}

func TestPromptSection(t *testing.T) {
	doc := `
[prompt]
format = "{user}@{host}"
git_async = false
git_cache_ms = 500
`
	cfg, err := ParseTOML(doc)
	if err != nil {
		t.Fatalf("ParseTOML failed: %v", err)
	}
	if cfg.PromptFormat != "{user}@{host}" {
		t.Errorf("format = %q", cfg.PromptFormat)
	}
	if cfg.GitAsync {
		t.Error("git_async should be false")
	}
	if cfg.GitCacheMS != 500 {
		t.Errorf("git_cache_ms = %d", cfg.GitCacheMS)
	}
}

func TestPluginsSection(t *testing.T) {
	doc := `
[plugins]
enabled = ["git", "docker"]
lazy = ["kubectl"]
`
	cfg, err := ParseTOML(doc)
	if err != nil {
		t.Fatalf("ParseTOML failed: %v", err)
	}
	if len(cfg.PluginsEnabled) != 2 {
		t.Errorf("enabled = %v", cfg.PluginsEnabled)
	}
	if len(cfg.PluginsLazy) != 1 {
		t.Errorf("lazy = %v", cfg.PluginsLazy)
	}
}

func TestCloneIsolation(t *testing.T) {
	src := DefaultSource()
	src.Aliases = map[string]string{"ll": "ls -la"}

	cfg, err := Compile(src)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	clone := cfg.CloneAliases()
	clone["ll"] = "mutated"
	clone["new"] = "entry"

	if exp, _ := cfg.GetAlias("ll"); exp != "ls -la" {
		t.Error("mutating a clone must not affect the compiled config")
	}
	if _, ok := cfg.GetAlias("new"); ok {
		t.Error("mutating a clone must not affect the compiled config")
	}
}

func TestCompileDoesNotAliasSourceMaps(t *testing.T) {
	src := DefaultSource()
	src.Aliases = map[string]string{"ll": "ls -la"}

	cfg, err := Compile(src)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	src.Aliases["ll"] = "mutated-after-compile"
	if exp, _ := cfg.GetAlias("ll"); exp != "ls -la" {
		t.Error("compiled config must not share storage with the source")
	}
}

func TestErrorMessages(t *testing.T) {
	inv := &InvalidError{Message: "test"}
	if !strings.Contains(inv.Error(), "invalid") {
		t.Errorf("InvalidError message: %q", inv.Error())
	}

	fpe := &ForbiddenPatternError{Field: "env.X", Reason: "test"}
	if !strings.Contains(fpe.Error(), "forbidden") {
		t.Errorf("ForbiddenPatternError message: %q", fpe.Error())
	}
}
