// Package shellenv defines the aliases the provisioned environment
// exposes as an explicit, versioned configuration object. Consumers
// (the summary report, the shell snippet command) read this object
// instead of relying on ambient exported variables.
package shellenv

import (
	"fmt"
	"strings"
)

// Alias is one named shell alias with a documented effect.
type Alias struct {
	Name        string
	Command     string
	Description string
}

// Category groups related aliases for display.
type Category struct {
	Name    string
	Aliases []Alias
}

// Config is the full alias configuration. Version is bumped whenever
// the alias set changes incompatibly so shell integrations can detect
// stale snippets.
type Config struct {
	Version    int
	Categories []Category
}

// Default returns the built-in alias configuration.
func Default() Config {
	return Config{
		Version: 1,
		Categories: []Category{
			{
				Name: "Shell",
				Aliases: []Alias{
					{Name: "ll", Command: "eza -la --git", Description: "long listing with git status"},
					{Name: "lt", Command: "eza --tree --level=2", Description: "two-level tree listing"},
					{Name: "cat", Command: "bat --paging=never", Description: "syntax-highlighted cat"},
					{Name: "grep", Command: "rg", Description: "ripgrep"},
					{Name: "find", Command: "fd", Description: "fd"},
				},
			},
			{
				Name: "Git",
				Aliases: []Alias{
					{Name: "gs", Command: "git status -sb", Description: "short status"},
					{Name: "gd", Command: "git diff", Description: "diff working tree"},
					{Name: "gl", Command: "git log --oneline --graph -20", Description: "recent history graph"},
					{Name: "gp", Command: "git pull --rebase", Description: "pull with rebase"},
				},
			},
			{
				Name: "Containers",
				Aliases: []Alias{
					{Name: "dps", Command: "docker ps --format 'table {{.Names}}\\t{{.Status}}'", Description: "running containers"},
					{Name: "dcu", Command: "docker compose up -d", Description: "compose up detached"},
					{Name: "dcd", Command: "docker compose down", Description: "compose down"},
				},
			},
		},
	}
}

// Snippet renders the configuration as a POSIX shell fragment suitable
// for eval in a shell rc file.
func (c Config) Snippet() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# nixup aliases (v%d)\n", c.Version)
	for _, cat := range c.Categories {
		fmt.Fprintf(&b, "\n# %s\n", cat.Name)
		for _, a := range cat.Aliases {
			fmt.Fprintf(&b, "alias %s=%q\n", a.Name, a.Command)
		}
	}
	return b.String()
}

// Lookup returns the alias with the given name.
func (c Config) Lookup(name string) (Alias, bool) {
	for _, cat := range c.Categories {
		for _, a := range cat.Aliases {
			if a.Name == name {
				return a, true
			}
		}
	}
	return Alias{}, false
}
