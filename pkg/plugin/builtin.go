package plugin

import "github.com/pzsh/pzsh/pkg/config"

// GitPlugin bundles the common git aliases and prompt integration.
type GitPlugin struct {
	enabled bool
}

// NewGitPlugin creates the git plugin.
func NewGitPlugin() *GitPlugin {
	return &GitPlugin{}
}

// Info implements Plugin.
func (p *GitPlugin) Info() Info {
	return Info{
		Name:        "git",
		Description: "Git aliases and integration",
		Version:     "1.0.0",
	}
}

// Init implements Plugin.
func (p *GitPlugin) Init() error {
	p.enabled = true
	return nil
}

// ShellInit implements Plugin.
func (p *GitPlugin) ShellInit(shell config.ShellType) string {
	if !p.enabled {
		return ""
	}
	switch shell {
	case config.Bash:
		return `
# pzsh git plugin
__pzsh_git_branch() {
    git branch 2>/dev/null | grep '^\*' | sed 's/^\* //'
}
`
	default:
		return `
# pzsh git plugin
autoload -Uz vcs_info
precmd_functions+=( vcs_info )
zstyle ':vcs_info:*' enable git
zstyle ':vcs_info:git:*' formats '%b'
`
	}
}

// Aliases implements Plugin.
func (p *GitPlugin) Aliases() map[string]string {
	return map[string]string{
		"g":    "git",
		"ga":   "git add",
		"gaa":  "git add --all",
		"gb":   "git branch",
		"gc":   "git commit",
		"gcm":  "git commit -m",
		"gco":  "git checkout",
		"gd":   "git diff",
		"gf":   "git fetch",
		"gl":   "git pull",
		"gp":   "git push",
		"gs":   "git status",
		"gst":  "git stash",
		"glog": "git log --oneline --graph",
	}
}

// EnvVars implements Plugin.
func (p *GitPlugin) EnvVars() map[string]string {
	return nil
}

// DockerPlugin bundles docker and compose aliases.
type DockerPlugin struct {
	enabled bool
}

// NewDockerPlugin creates the docker plugin.
func NewDockerPlugin() *DockerPlugin {
	return &DockerPlugin{}
}

// Info implements Plugin.
func (p *DockerPlugin) Info() Info {
	return Info{
		Name:        "docker",
		Description: "Docker aliases and completions",
		Version:     "1.0.0",
	}
}

// Init implements Plugin.
func (p *DockerPlugin) Init() error {
	p.enabled = true
	return nil
}

// ShellInit implements Plugin.
func (p *DockerPlugin) ShellInit(config.ShellType) string {
	return ""
}

// Aliases implements Plugin.
func (p *DockerPlugin) Aliases() map[string]string {
	return map[string]string{
		"d":    "docker",
		"dc":   "docker compose",
		"dcu":  "docker compose up",
		"dcd":  "docker compose down",
		"dps":  "docker ps",
		"di":   "docker images",
		"drm":  "docker rm",
		"drmi": "docker rmi",
		"dex":  "docker exec -it",
	}
}

// EnvVars implements Plugin.
func (p *DockerPlugin) EnvVars() map[string]string {
	return nil
}
