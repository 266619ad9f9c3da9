package benchmarks

import (
	"fmt"
	"testing"

	"github.com/pzsh/pzsh/pkg/executor"
	"github.com/pzsh/pzsh/pkg/parser"
	"github.com/pzsh/pzsh/pkg/prompt"
)

// BenchmarkParseCold benchmarks parsing with an empty cache
func BenchmarkParseCold(b *testing.B) {
	cfg := generateConfig(100)
	p := parser.New(cfg)

	commands := make([]string, 1000)
	for i := range commands {
		commands[i] = fmt.Sprintf("command-%d --arg value", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%len(commands) == 0 {
			b.StopTimer()
			p.ClearCache()
			b.StartTimer()
		}
		_, err := p.Parse(commands[i%len(commands)])
		if err != nil {
			b.Fatalf("failed to parse: %v", err)
		}
	}
}

// BenchmarkParseCached benchmarks repeated parsing of the same command
func BenchmarkParseCached(b *testing.B) {
	cfg := generateConfig(100)
	p := parser.New(cfg)

	if _, err := p.Parse("git status"); err != nil {
		b.Fatalf("failed to warm cache: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := p.Parse("git status")
		if err != nil {
			b.Fatalf("failed to parse: %v", err)
		}
	}
}

// BenchmarkAliasExpansion benchmarks expanding an aliased command
func BenchmarkAliasExpansion(b *testing.B) {
	cfg := generateConfig(1000)
	ex := executor.New(cfg)
	if err := ex.Initialize(); err != nil {
		b.Fatalf("failed to initialize executor: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ex.ExpandAlias("alias500")
	}
}

// BenchmarkGenerateExports benchmarks generating export statements
func BenchmarkGenerateExports(b *testing.B) {
	cfg := generateConfig(100)
	ex := executor.New(cfg)
	if err := ex.Initialize(); err != nil {
		b.Fatalf("failed to initialize executor: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ex.GenerateExports()
	}
}

// BenchmarkPromptRender benchmarks rendering the default prompt
func BenchmarkPromptRender(b *testing.B) {
	cfg := generateConfig(0)
	p := prompt.New(cfg)
	p.UpdateGitCache("main", false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := p.Render()
		if err != nil {
			b.Fatalf("failed to render prompt: %v", err)
		}
	}
}

// BenchmarkGitCacheUpdate benchmarks swapping the git status snapshot
func BenchmarkGitCacheUpdate(b *testing.B) {
	cache := prompt.NewGitCache()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Update("main", i%2 == 0)
	}
}

// BenchmarkGitCacheRender benchmarks reading the git segment
func BenchmarkGitCacheRender(b *testing.B) {
	cache := prompt.NewGitCache()
	cache.Update("feature/benchmarks", true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Render()
	}
}
