// Package lint pattern-matches shell configuration text for idioms known to
// slow shell startup.
//
// Built-in rules cover the same denylist the compiler enforces plus the
// common plugin-manager offenders. Custom rules carry an expr condition
// compiled once and evaluated per line.
package lint

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Severity grades a lint finding.
type Severity int

// Finding severities.
const (
	Info Severity = iota
	Warning
	Error
)

// String returns the severity label used in reports.
func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "info"
	}
}

// Issue is one lint finding.
type Issue struct {
	Severity Severity
	Message  string
	Line     int    // 1-based; 0 means no line attribution
	Fix      string // suggested remedy, may be empty
}

// Result collects the findings for one document.
type Result struct {
	Issues []Issue
}

// Passed reports whether the document has no error-severity findings.
func (r *Result) Passed() bool {
	for _, issue := range r.Issues {
		if issue.Severity == Error {
			return false
		}
	}
	return true
}

// Format renders the findings as a line-oriented report.
func (r *Result) Format() string {
	if len(r.Issues) == 0 {
		return "✓ 0 issues found"
	}

	var b strings.Builder
	var errorCount, warningCount int
	for _, issue := range r.Issues {
		switch issue.Severity {
		case Error:
			errorCount++
		case Warning:
			warningCount++
		}

		if issue.Line > 0 {
			fmt.Fprintf(&b, "[%s] (line %d): %s\n", issue.Severity, issue.Line, issue.Message)
		} else {
			fmt.Fprintf(&b, "[%s]: %s\n", issue.Severity, issue.Message)
		}
		if issue.Fix != "" {
			fmt.Fprintf(&b, "  fix: %s\n", issue.Fix)
		}
	}

	fmt.Fprintf(&b, "\n%d errors, %d warnings", errorCount, warningCount)
	return b.String()
}

// builtinRule is a substring-triggered rule. Rules with skipComments set
// ignore lines whose first non-blank character is '#'.
type builtinRule struct {
	fragment     string
	severity     Severity
	message      string
	fix          string
	skipComments bool
}

var builtinRules = []builtinRule{
	{
		fragment: "$(",
		severity: Error,
		message:  "subprocess call $() not allowed at startup",
		fix:      "use a pre-resolved path instead",
	},
	{
		fragment:     "`",
		severity:     Error,
		message:      "backtick substitution not allowed",
		fix:          "use a pre-resolved value instead",
		skipComments: true,
	},
	{
		fragment: "brew --prefix",
		severity: Error,
		message:  "brew --prefix is slow (50-100ms)",
		fix:      "run `brew --prefix <formula>` once and hardcode the path",
	},
	{
		fragment:     "eval ",
		severity:     Error,
		message:      "eval not allowed for safety",
		skipComments: true,
	},
	{
		fragment: "oh-my-zsh",
		severity: Error,
		message:  "oh-my-zsh is slow (500-2000ms startup)",
		fix:      "remove oh-my-zsh, use pzsh plugins instead",
	},
	{
		fragment:     "nvm.sh",
		severity:     Warning,
		message:      "NVM adds 200-500ms to startup",
		fix:          "use fnm or volta instead, or lazy-load NVM",
		skipComments: true,
	},
	{
		fragment: "conda.sh",
		severity: Warning,
		message:  "conda init adds 200-400ms to startup",
		fix:      "lazy-load conda or use mamba",
	},
	{
		fragment: "conda init",
		severity: Warning,
		message:  "conda init adds 200-400ms to startup",
		fix:      "lazy-load conda or use mamba",
	},
}

// customRule pairs a compiled expr condition with its finding template. The
// condition sees `line` (1-based number), `text` (the raw line), and
// `comment` (whether the line is a comment).
type customRule struct {
	name     string
	program  *vm.Program
	severity Severity
	message  string
	fix      string
}

// Linter scans configuration text line by line.
type Linter struct {
	custom []customRule
}

// NewLinter creates a linter with the built-in rule set.
func NewLinter() *Linter {
	return &Linter{}
}

// AddRule registers a custom rule. condition is an expr expression over
// {line int, text string, comment bool} that triggers the finding when true.
// The expression is compiled once here, not per line.
func (l *Linter) AddRule(name, condition string, severity Severity, message, fix string) error {
	program, err := expr.Compile(condition, expr.Env(lineEnv{}), expr.AsBool())
	if err != nil {
		return fmt.Errorf("failed to compile rule %q: %w", name, err)
	}
	l.custom = append(l.custom, customRule{
		name:     name,
		program:  program,
		severity: severity,
		message:  message,
		fix:      fix,
	})
	return nil
}

type lineEnv struct {
	Line    int    `expr:"line"`
	Text    string `expr:"text"`
	Comment bool   `expr:"comment"`
}

// Lint scans content and returns every finding in line order.
func (l *Linter) Lint(content string) *Result {
	result := &Result{}

	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1
		isComment := strings.HasPrefix(strings.TrimSpace(line), "#")

		for _, rule := range builtinRules {
			if rule.skipComments && isComment {
				continue
			}
			if strings.Contains(line, rule.fragment) {
				result.Issues = append(result.Issues, Issue{
					Severity: rule.severity,
					Message:  rule.message,
					Line:     lineNum,
					Fix:      rule.fix,
				})
			}
		}

		for _, rule := range l.custom {
			matched, err := expr.Run(rule.program, lineEnv{Line: lineNum, Text: line, Comment: isComment})
			if err != nil {
				continue
			}
			if matched.(bool) {
				result.Issues = append(result.Issues, Issue{
					Severity: rule.severity,
					Message:  rule.message,
					Line:     lineNum,
					Fix:      rule.fix,
				})
			}
		}
	}

	return result
}

// Lint scans content with the built-in rules only.
func Lint(content string) *Result {
	return NewLinter().Lint(content)
}
