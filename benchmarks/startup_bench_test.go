package benchmarks

import (
	"fmt"
	"testing"

	"github.com/pzsh/pzsh/pkg/config"
	"github.com/pzsh/pzsh/pkg/shell"
)

// BenchmarkStartupDefault benchmarks full shell construction with defaults
func BenchmarkStartupDefault(b *testing.B) {
	cfg := config.Default()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := shell.New(cfg)
		if err != nil {
			b.Fatalf("failed to start shell: %v", err)
		}
	}
}

// BenchmarkStartupSmall benchmarks startup with a small configuration (10 aliases)
func BenchmarkStartupSmall(b *testing.B) {
	benchmarkStartup(b, generateConfig(10))
}

// BenchmarkStartupMedium benchmarks startup with a medium configuration (100 aliases)
func BenchmarkStartupMedium(b *testing.B) {
	benchmarkStartup(b, generateConfig(100))
}

// BenchmarkStartupLarge benchmarks startup with a large configuration (1000 aliases)
func BenchmarkStartupLarge(b *testing.B) {
	benchmarkStartup(b, generateConfig(1000))
}

// Helper function to benchmark startup with different configuration sizes
func benchmarkStartup(b *testing.B, cfg *config.Compiled) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := shell.New(cfg)
		if err != nil {
			b.Fatalf("failed to start shell: %v", err)
		}
	}
}

// BenchmarkConfigCompile benchmarks compiling a source configuration
func BenchmarkConfigCompile(b *testing.B) {
	src := generateSource(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := config.Compile(src)
		if err != nil {
			b.Fatalf("failed to compile config: %v", err)
		}
	}
}

// BenchmarkConfigParseTOML benchmarks decoding and compiling a TOML document
func BenchmarkConfigParseTOML(b *testing.B) {
	doc := `
[pzsh]
version = "0.1.0"
shell = "zsh"

[performance]
startup_budget_ms = 10
prompt_budget_ms = 2

[aliases]
ll = "ls -la"
gs = "git status"
gp = "git push"

[env]
EDITOR = "vim"
`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := config.ParseTOML(doc)
		if err != nil {
			b.Fatalf("failed to parse config: %v", err)
		}
	}
}

// Generate compiled configurations of different sizes
func generateConfig(aliases int) *config.Compiled {
	cfg, err := config.Compile(generateSource(aliases))
	if err != nil {
		panic(err)
	}
	return cfg
}

func generateSource(aliases int) config.Source {
	src := config.DefaultSource()
	src.Aliases = make(map[string]string, aliases)
	for i := 0; i < aliases; i++ {
		src.Aliases[fmt.Sprintf("alias%d", i)] = fmt.Sprintf("command %d --flag", i)
	}
	src.Env = map[string]string{"EDITOR": "vim", "PAGER": "less"}
	return src
}
