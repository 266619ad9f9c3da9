// Package parser converts raw input lines into classified commands.
//
// Classification is O(1): the command token is checked against the compiled
// alias table, then against the fixed builtin set. Results are memoized in a
// bounded LRU cache keyed by the exact input text, which is correct because
// parsing is referentially transparent for a fixed alias table. The uncached
// path is measured against the parser budget; overages fail loudly and are
// never cached.
package parser

import (
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pzsh/pzsh/pkg/budget"
	"github.com/pzsh/pzsh/pkg/config"
)

// CacheCapacity bounds the parse cache. Eviction drops the least recently
// touched entry.
const CacheCapacity = 1024

// CommandKind classifies a parsed command.
type CommandKind int

// Command kinds.
const (
	// KindEmpty means the input was blank or whitespace-only.
	KindEmpty CommandKind = iota
	// KindSimple is an ordinary command with arguments.
	KindSimple
	// KindAlias is a command token matching a configured alias.
	KindAlias
	// KindBuiltin is a command token from the fixed builtin set.
	KindBuiltin
)

// String returns the kind name for diagnostics.
func (k CommandKind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindAlias:
		return "alias"
	case KindBuiltin:
		return "builtin"
	default:
		return "empty"
	}
}

// ParsedCommand is the immutable result of classifying one input line.
// Name and Args are set for simple and builtin commands; Name and Expansion
// for aliases.
type ParsedCommand struct {
	Kind      CommandKind
	Name      string
	Args      []string
	Expansion string
}

// builtinNames is the closed set of recognized shell builtins.
var builtinNames = []string{
	"cd", "exit", "export", "source", "alias", "unalias", "set", "unset",
	"echo", "printf", "test", "[", "true", "false", "pwd", "pushd", "popd",
	"dirs", "history", "fg", "bg", "jobs", "kill", "wait", "trap", "eval",
	"exec", "builtin", "command", "type", "which", "hash", "help", "let",
	"local", "readonly", "return", "shift", "times", "ulimit", "umask",
}

// Parser classifies input lines using a compiled configuration's alias
// table. Each Parser owns its cache exclusively; no instance is shared
// across goroutines.
type Parser struct {
	cache    *lru.Cache[string, ParsedCommand]
	aliases  map[string]string
	builtins map[string]struct{}
	budgetMS uint64
}

// New creates a parser from a compiled configuration, taking its own
// snapshot of the alias table.
func New(cfg *config.Compiled) *Parser {
	builtins := make(map[string]struct{}, len(builtinNames))
	for _, name := range builtinNames {
		builtins[name] = struct{}{}
	}

	// The only constructor error is a non-positive capacity.
	cache, _ := lru.New[string, ParsedCommand](CacheCapacity)

	budgetMS := cfg.ParserBudgetMS
	if budgetMS == 0 {
		budgetMS = budget.DefaultParserMS
	}

	return &Parser{
		cache:    cache,
		aliases:  cfg.CloneAliases(),
		builtins: builtins,
		budgetMS: budgetMS,
	}
}

// Parse classifies one input line. Cache hits return immediately and are
// never budget-checked. Cache misses are timed against the parser budget;
// an overage returns a *budget.Error and the result is not cached.
func (p *Parser) Parse(input string) (ParsedCommand, error) {
	if cached, ok := p.cache.Get(input); ok {
		return cached, nil
	}

	start := time.Now()
	parsed := p.parseUncached(input)

	if err := budget.Check(budget.StageParser, p.budgetMS, start); err != nil {
		return ParsedCommand{}, err
	}

	p.cache.Add(input, parsed)
	return parsed, nil
}

// parseUncached performs the actual classification: alias wins over builtin,
// so a user alias named after a builtin shadows it.
func (p *Parser) parseUncached(input string) ParsedCommand {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ParsedCommand{Kind: KindEmpty}
	}

	words := strings.Fields(trimmed)
	command := words[0]
	args := words[1:]

	if expansion, ok := p.aliases[command]; ok {
		return ParsedCommand{
			Kind:      KindAlias,
			Name:      command,
			Expansion: expansion,
		}
	}

	if _, ok := p.builtins[command]; ok {
		return ParsedCommand{
			Kind: KindBuiltin,
			Name: command,
			Args: args,
		}
	}

	return ParsedCommand{
		Kind: KindSimple,
		Name: command,
		Args: args,
	}
}

// ClearCache drops all memoized results. Called on configuration reload.
func (p *Parser) ClearCache() {
	p.cache.Purge()
}

// CacheLen returns the number of memoized results.
func (p *Parser) CacheLen() int {
	return p.cache.Len()
}
