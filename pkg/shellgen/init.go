package shellgen

import (
	"strings"

	"github.com/pzsh/pzsh/pkg/config"
	"github.com/pzsh/pzsh/pkg/executor"
	"github.com/pzsh/pzsh/pkg/plugin"
	"github.com/pzsh/pzsh/pkg/theme"
)

// Options selects what goes into a generated init script.
type Options struct {
	Shell       config.ShellType
	Theme       theme.Theme
	Completions bool
	Widgets     bool
	Jump        bool
}

// InitScript assembles the script a shell sources at startup: exports
// and aliases from the frozen environment, loaded plugin init text, the
// theme prompt, and optionally the zsh-only extras. Bash receives only
// the portable sections.
func InitScript(ex *executor.Executor, reg *plugin.Registry, opts Options) string {
	var b strings.Builder
	b.WriteString("# Generated by pzsh. Do not edit; regenerate instead.\n\n")

	if exports := ex.GenerateExports(); exports != "" {
		b.WriteString("# Environment\n")
		b.WriteString(exports)
		b.WriteByte('\n')
	}

	if aliases := ex.GenerateAliases(); aliases != "" {
		b.WriteString("# Aliases\n")
		b.WriteString(aliases)
		b.WriteByte('\n')
	}

	if reg != nil {
		if pluginInit := reg.ShellInit(opts.Shell); pluginInit != "" {
			b.WriteString("# Plugins\n")
			b.WriteString(pluginInit)
			b.WriteByte('\n')
		}
	}

	b.WriteString("# Prompt\n")
	switch opts.Shell {
	case config.Bash:
		b.WriteString(opts.Theme.BashPrompt)
	default:
		b.WriteString(opts.Theme.ZshPrompt)
	}
	b.WriteByte('\n')

	// The line-editor integrations are zsh only.
	if opts.Shell == config.Zsh {
		if opts.Completions {
			b.WriteByte('\n')
			b.WriteString(NewCompletions().All())
		}
		if opts.Widgets {
			b.WriteByte('\n')
			b.WriteString(AutoSuggestWidget())
			b.WriteByte('\n')
			b.WriteString(HighlightWidget(DefaultHighlightStyles()))
			b.WriteByte('\n')
			b.WriteString(HistorySearchWidget())
		}
		if opts.Jump {
			b.WriteByte('\n')
			b.WriteString(ZCommand())
		}
	}

	return b.String()
}
