package shellgen

import "strings"

// DirectoryJump tracks directory visit frequency and answers fuzzy
// queries, the in-process half of the z command.
type DirectoryJump struct {
	frecency map[string]float64
}

// NewDirectoryJump returns an empty jump table.
func NewDirectoryJump() *DirectoryJump {
	return &DirectoryJump{frecency: make(map[string]float64)}
}

// Record notes one visit to path.
func (d *DirectoryJump) Record(path string) {
	d.frecency[path]++
}

// Len reports the number of tracked directories.
func (d *DirectoryJump) Len() int {
	return len(d.frecency)
}

// Find returns the highest-scoring directory whose path contains query,
// case-insensitively, or "" when nothing matches.
func (d *DirectoryJump) Find(query string) string {
	queryLower := strings.ToLower(query)

	best := ""
	bestScore := 0.0
	for path, score := range d.frecency {
		if !strings.Contains(strings.ToLower(path), queryLower) {
			continue
		}
		if best == "" || score > bestScore {
			best = path
			bestScore = score
		}
	}
	return best
}

// ZCommand returns the zsh z function and its chpwd recording hook.
func ZCommand() string {
	return `# pzsh directory jump

typeset -g PZSH_Z_DATA="${XDG_DATA_HOME:-$HOME/.local/share}/pzsh/z_data"

[[ -d "${PZSH_Z_DATA%/*}" ]] || mkdir -p "${PZSH_Z_DATA%/*}"

_pzsh_z_record() {
    local pwd="${PWD:A}"
    [[ "$pwd" == "$HOME" ]] && return

    echo "$pwd|$(date +%s)" >> "$PZSH_Z_DATA"
}

z() {
    local query="$1"

    if [[ -z "$query" ]]; then
        cd ~ && return
    fi

    local match
    match=$(awk -F'|' -v q="$query" '
        tolower($1) ~ tolower(q) { print $1; exit }
    ' "$PZSH_Z_DATA" 2>/dev/null)

    if [[ -n "$match" && -d "$match" ]]; then
        cd "$match"
    else
        echo "z: no match for: $query" >&2
        return 1
    fi
}

autoload -Uz add-zsh-hook
add-zsh-hook chpwd _pzsh_z_record
`
}
