package shellgen

import "fmt"

// AutoSuggest proposes completions of a partial command line from
// shell history, most recent match first. The zsh side of the same
// behavior is emitted by AutoSuggestWidget.
type AutoSuggest struct {
	history []string
}

// NewAutoSuggest returns an empty suggester.
func NewAutoSuggest() *AutoSuggest {
	return &AutoSuggest{}
}

// LoadHistory replaces the history entries, oldest first.
func (a *AutoSuggest) LoadHistory(entries []string) {
	a.history = entries
}

// Suggest returns the most recent history entry extending input, or ""
// when input is empty or nothing matches. An entry equal to the input
// is not a suggestion.
func (a *AutoSuggest) Suggest(input string) string {
	if input == "" {
		return ""
	}
	for i := len(a.history) - 1; i >= 0; i-- {
		entry := a.history[i]
		if entry != input && len(entry) > len(input) && entry[:len(input)] == input {
			return entry
		}
	}
	return ""
}

// AutoSuggestWidget returns the zsh widget that shows gray inline
// suggestions from history, accepted with right arrow or ctrl+space.
func AutoSuggestWidget() string {
	return `# pzsh auto-suggestions widget

typeset -g PZSH_AUTOSUGGEST_HIGHLIGHT_STYLE='fg=8'

_pzsh_autosuggest() {
    local suggestion
    suggestion=$(fc -ln -1000 | grep -m1 "^${BUFFER}")

    if [[ -n "$suggestion" && "$suggestion" != "$BUFFER" ]]; then
        local postfix="${suggestion#$BUFFER}"
        POSTDISPLAY="$postfix"
        region_highlight=("${#BUFFER} $((${#BUFFER} + ${#postfix})) $PZSH_AUTOSUGGEST_HIGHLIGHT_STYLE")
    else
        POSTDISPLAY=""
    fi
}

_pzsh_autosuggest_accept() {
    if [[ -n "$POSTDISPLAY" ]]; then
        BUFFER="$BUFFER$POSTDISPLAY"
        CURSOR=${#BUFFER}
        POSTDISPLAY=""
    fi
    zle redisplay
}

_pzsh_autosuggest_clear() {
    POSTDISPLAY=""
    zle redisplay
}

zle -N _pzsh_autosuggest
zle -N _pzsh_autosuggest_accept
zle -N _pzsh_autosuggest_clear

autoload -Uz add-zle-hook-widget
add-zle-hook-widget line-pre-redraw _pzsh_autosuggest

bindkey '^[[C' _pzsh_autosuggest_accept
bindkey '^ ' _pzsh_autosuggest_accept
`
}

// HighlightStyles holds the zle style string for each token class.
type HighlightStyles struct {
	Command string
	Alias   string
	Builtin string
	Error   string
	Path    string
	String  string
	Comment string
}

// DefaultHighlightStyles mirrors the zsh-syntax-highlighting defaults.
func DefaultHighlightStyles() HighlightStyles {
	return HighlightStyles{
		Command: "fg=green,bold",
		Alias:   "fg=cyan,bold",
		Builtin: "fg=yellow,bold",
		Error:   "fg=red,bold",
		Path:    "fg=blue,underline",
		String:  "fg=yellow",
		Comment: "fg=8",
	}
}

// HighlightWidget returns the zsh widget that colors the command word
// by its resolution class.
func HighlightWidget(styles HighlightStyles) string {
	return fmt.Sprintf(`# pzsh syntax highlighting

typeset -gA PZSH_HIGHLIGHT_STYLES
PZSH_HIGHLIGHT_STYLES[command]='%s'
PZSH_HIGHLIGHT_STYLES[alias]='%s'
PZSH_HIGHLIGHT_STYLES[builtin]='%s'
PZSH_HIGHLIGHT_STYLES[unknown]='%s'
PZSH_HIGHLIGHT_STYLES[path]='%s'
PZSH_HIGHLIGHT_STYLES[single-quoted-argument]='%s'
PZSH_HIGHLIGHT_STYLES[double-quoted-argument]='%s'
PZSH_HIGHLIGHT_STYLES[comment]='%s'

_pzsh_highlight() {
    region_highlight=()
    local word start=0
    local -a words
    words=(${(z)BUFFER})

    [[ -z "${words[1]}" ]] && return

    local cmd="${words[1]}"
    local style

    if (( $+commands[$cmd] )); then
        style=$PZSH_HIGHLIGHT_STYLES[command]
    elif (( $+aliases[$cmd] )); then
        style=$PZSH_HIGHLIGHT_STYLES[alias]
    elif (( $+builtins[$cmd] )); then
        style=$PZSH_HIGHLIGHT_STYLES[builtin]
    else
        style=$PZSH_HIGHLIGHT_STYLES[unknown]
    fi

    local end=${#cmd}
    region_highlight+=("0 $end $style")
}

autoload -Uz add-zle-hook-widget
add-zle-hook-widget line-pre-redraw _pzsh_highlight
`,
		styles.Command, styles.Alias, styles.Builtin, styles.Error,
		styles.Path, styles.String, styles.String, styles.Comment)
}

// HistorySearchWidget returns the zsh widget binding up/down arrows to
// substring search over history.
func HistorySearchWidget() string {
	return `# pzsh history substring search

typeset -g PZSH_HISTORY_SUBSTRING_SEARCH_HIGHLIGHT_FOUND='bg=magenta,fg=white,bold'
typeset -g PZSH_HISTORY_SUBSTRING_SEARCH_HIGHLIGHT_NOT_FOUND='bg=red,fg=white,bold'

_pzsh_history_search_up() {
    local search_term="$BUFFER"
    local -a matches

    matches=(${(f)"$(fc -ln -1000 | grep -F "$search_term" | tac)"})

    if [[ ${#matches} -gt 0 ]]; then
        BUFFER="${matches[1]}"
        CURSOR=${#BUFFER}
        region_highlight=("0 ${#BUFFER} $PZSH_HISTORY_SUBSTRING_SEARCH_HIGHLIGHT_FOUND")
    else
        region_highlight=("0 ${#BUFFER} $PZSH_HISTORY_SUBSTRING_SEARCH_HIGHLIGHT_NOT_FOUND")
    fi
}

_pzsh_history_search_down() {
    _pzsh_history_search_up
}

zle -N _pzsh_history_search_up
zle -N _pzsh_history_search_down

bindkey '^[[A' _pzsh_history_search_up
bindkey '^[[B' _pzsh_history_search_down
`
}
