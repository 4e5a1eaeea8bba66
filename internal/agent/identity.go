// Package agent resolves the name of whoever is running a command. The name
// feeds the author field on new items and the agent field on log entries so
// multi-agent setups can tell their work apart without passing flags.
package agent

import (
	"os"
	"os/user"

	"github.com/example/wrk/internal/config"
)

// Environment overrides, checked before the workspace config.
const (
	AuthorEnv = "WRK_AUTHOR"
	AgentEnv  = "WRK_AGENT"
)

// Identity is the resolved acting identity for one command invocation.
type Identity struct {
	Author string
	Agent  string
}

// Current resolves the acting identity. Resolution order is environment,
// workspace config, then the OS username. The agent name falls back to the
// author so a configured author also signs log entries.
func Current(cfg *config.Config) Identity {
	id := Identity{
		Author: firstNonEmpty(os.Getenv(AuthorEnv), cfg.Author, osUsername()),
	}
	id.Agent = firstNonEmpty(os.Getenv(AgentEnv), cfg.Agent, id.Author)
	return id
}

func osUsername() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return u.Username
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
