// Package prompt compiles a prompt format string into typed segments once
// and renders them on every call.
//
// Rendering is O(k) in the number of segments and independent of
// configuration size. The git segment reads an asynchronously updated cache
// and never blocks; a stale or empty git segment is acceptable degraded
// output. Every render is measured against the prompt budget.
package prompt

import (
	"os"
	"strings"
	"time"

	"github.com/pzsh/pzsh/pkg/budget"
	"github.com/pzsh/pzsh/pkg/config"
)

// Prompt renders a compiled prompt format. The segment sequence, user name,
// and hostname are resolved once at construction; the working directory is
// resolved fresh on every render because it changes between renders.
type Prompt struct {
	segments []Segment
	git      *GitCache
	user     string
	host     string
	budgetMS uint64
}

// New compiles the configured prompt format and resolves process identity.
func New(cfg *config.Compiled) *Prompt {
	user := os.Getenv("USER")
	if user == "" {
		user = "user"
	}
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "localhost"
	}

	budgetMS := cfg.PromptBudgetMS
	if budgetMS == 0 {
		budgetMS = budget.DefaultPromptMS
	}

	return &Prompt{
		segments: CompileFormat(cfg.PromptFormat),
		git:      NewGitCache(),
		user:     user,
		host:     host,
		budgetMS: budgetMS,
	}
}

// Render evaluates every segment into the final prompt string. The call is
// timed end-to-end; an overage returns a *budget.Error instead of a late
// result.
func (p *Prompt) Render() (string, error) {
	start := time.Now()

	var b strings.Builder
	b.Grow(128)

	for _, seg := range p.segments {
		switch seg.Kind {
		case SegLiteral:
			b.WriteString(seg.Text)
		case SegUser:
			b.WriteString(p.user)
		case SegHost:
			b.WriteString(p.host)
		case SegCwd:
			b.WriteString(currentDir())
		case SegGit:
			b.WriteString(p.git.Render())
		case SegChar:
			if p.user == "root" {
				b.WriteByte('#')
			} else {
				b.WriteByte('$')
			}
		case SegCustom:
			b.WriteByte('{')
			b.WriteString(seg.Text)
			b.WriteByte('}')
		}
	}

	if err := budget.Check(budget.StagePrompt, p.budgetMS, start); err != nil {
		return "", err
	}
	return b.String(), nil
}

// currentDir resolves the working directory without spawning anything:
// $PWD first, then the process's actual directory, then "~".
func currentDir() string {
	if pwd := os.Getenv("PWD"); pwd != "" {
		return pwd
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "~"
}

// UpdateGitCache overwrites the git segment's cached status. Called by the
// out-of-band updater, never by the render path.
func (p *Prompt) UpdateGitCache(branch string, dirty bool) {
	p.git.Update(branch, dirty)
}

// InvalidateGitCache marks the git cache stale without clearing it.
func (p *Prompt) InvalidateGitCache() {
	p.git.Invalidate()
}

// GitCache exposes the cache for the asynchronous updater.
func (p *Prompt) GitCache() *GitCache {
	return p.git
}

// SegmentCount returns the number of compiled segments.
func (p *Prompt) SegmentCount() int {
	return len(p.segments)
}

// User returns the user name resolved at construction.
func (p *Prompt) User() string {
	return p.user
}

// Host returns the hostname resolved at construction.
func (p *Prompt) Host() string {
	return p.host
}
