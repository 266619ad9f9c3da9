package lint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectsSubprocess(t *testing.T) {
	result := Lint(`export GOROOT="$(brew --prefix golang)/libexec"`)

	assert.False(t, result.Passed())
	require.NotEmpty(t, result.Issues)
	assert.Equal(t, Error, result.Issues[0].Severity)
}

func TestDetectsBackticks(t *testing.T) {
	result := Lint("export DATE=`date`")

	assert.False(t, result.Passed())
}

func TestDetectsOhMyZsh(t *testing.T) {
	result := Lint("source $ZSH/oh-my-zsh.sh")

	assert.False(t, result.Passed())
}

func TestDetectsNvmAsWarning(t *testing.T) {
	result := Lint("source ~/.nvm/nvm.sh")

	require.NotEmpty(t, result.Issues)
	assert.Equal(t, Warning, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Message, "NVM")
	// Warnings alone do not fail the lint.
	assert.True(t, result.Passed())
}

func TestDetectsConda(t *testing.T) {
	result := Lint("source ~/miniconda3/etc/profile.d/conda.sh")

	require.NotEmpty(t, result.Issues)
	assert.Contains(t, result.Issues[0].Message, "conda")
}

func TestDetectsEval(t *testing.T) {
	result := Lint(`eval "$(pyenv init -)"`)

	assert.False(t, result.Passed())

	found := false
	for _, issue := range result.Issues {
		if strings.Contains(issue.Message, "eval") {
			found = true
		}
	}
	assert.True(t, found, "should report the eval rule")
}

func TestCleanConfigPasses(t *testing.T) {
	result := Lint("export EDITOR=\"vim\"\nalias ll=\"ls -la\"\n")

	assert.True(t, result.Passed())
	assert.Empty(t, result.Issues)
}

func TestCommentsExemptBacktickAndEval(t *testing.T) {
	result := Lint("# eval \"something\"\n# `backticks`\n# source nvm.sh\n")

	for _, issue := range result.Issues {
		assert.NotContains(t, issue.Message, "eval", "eval in comments is exempt")
		assert.NotContains(t, issue.Message, "backtick", "backticks in comments are exempt")
		assert.NotContains(t, issue.Message, "NVM", "nvm in comments is exempt")
	}
}

func TestLineNumbers(t *testing.T) {
	result := Lint("export EDITOR=\"vim\"\nexport DATE=`date`\n")

	require.Len(t, result.Issues, 1)
	assert.Equal(t, 2, result.Issues[0].Line)
}

func TestCustomRule(t *testing.T) {
	l := NewLinter()
	err := l.AddRule(
		"no-rvm",
		`text contains "rvm" and not comment`,
		Warning,
		"rvm adds 100ms+ to startup",
		"use a static ruby path",
	)
	require.NoError(t, err)

	result := l.Lint("source ~/.rvm/scripts/rvm\n# rvm comment is fine\n")

	require.Len(t, result.Issues, 1)
	assert.Equal(t, 1, result.Issues[0].Line)
	assert.Contains(t, result.Issues[0].Message, "rvm")
}

func TestCustomRuleCompileError(t *testing.T) {
	err := NewLinter().AddRule("broken", "this is not ((( valid", Error, "msg", "")
	assert.Error(t, err)
}

func TestFormatReport(t *testing.T) {
	result := &Result{
		Issues: []Issue{
			{Severity: Error, Message: "test error", Line: 10, Fix: "fix it"},
			{Severity: Warning, Message: "test warning"},
			{Severity: Info, Message: "test info", Line: 5},
		},
	}

	formatted := result.Format()
	assert.Contains(t, formatted, "[error]")
	assert.Contains(t, formatted, "[warning]")
	assert.Contains(t, formatted, "[info]")
	assert.Contains(t, formatted, "(line 10)")
	assert.Contains(t, formatted, "fix: fix it")
	assert.Contains(t, formatted, "1 errors, 1 warnings")
}

func TestFormatEmptyReport(t *testing.T) {
	result := &Result{}
	assert.Contains(t, result.Format(), "0 issues found")
}
