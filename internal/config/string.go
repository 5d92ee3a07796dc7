package config

import (
	"fmt"

	"github.com/atlanticdynamic/greeter/internal/fancy"
)

// String returns a pretty-printed tree representation of the config
func (c *Config) String() string {
	return ConfigTree(c)
}

// ConfigTree converts a Config struct into a rendered tree string
func ConfigTree(cfg *Config) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render(fmt.Sprintf("Greeter Config (%s)", cfg.Version)))

	listener := fancy.BranchNode("Listener", fmt.Sprintf("(port %d)", cfg.Port))
	listener.Child(fmt.Sprintf("Address: :%d", cfg.Port))
	listener.Child(fmt.Sprintf("Read Timeout: %s", timeoutOrDefault(cfg.HTTP.ReadTimeout)))
	listener.Child(fmt.Sprintf("Write Timeout: %s", timeoutOrDefault(cfg.HTTP.WriteTimeout)))
	listener.Child(fmt.Sprintf("Idle Timeout: %s", timeoutOrDefault(cfg.HTTP.IdleTimeout)))
	t.Child(listener)

	greeting := fancy.BranchNode("Greeting", fmt.Sprintf("(%d bytes)", len(cfg.Greeting)))
	greeting.Child(fancy.TruncateString(cfg.Greeting, 60))
	t.Child(greeting)

	logging := fancy.BranchNode("Logging", "")
	logging.Child(fmt.Sprintf("Level: %s", cfg.Logging.Level))
	logging.Child(fmt.Sprintf("Format: %s", cfg.Logging.Format))
	logging.Child(fmt.Sprintf("Output: %s", cfg.Logging.Output))
	t.Child(logging)

	return t.String()
}

func timeoutOrDefault(d Duration) string {
	if d == 0 {
		return "default"
	}
	return d.String()
}
