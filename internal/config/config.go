// Package config holds the greeter's process configuration: defaults, TOML
// loading, validation, and a tree rendering for the CLI.
package config

const (
	// VersionLatest is the only config file version currently understood.
	VersionLatest = "v1"

	// DefaultPort is the TCP port bound when nothing else is configured.
	DefaultPort = 3000

	// DefaultGreeting is the body returned for GET /.
	DefaultGreeting = "專題伺服器已啟動！歡迎使用 Node.js 進行展示。"

	// DefaultLogOutput is where diagnostic logs are written.
	DefaultLogOutput = "stderr"
)

// Config is the full set of values the greeter reads once at startup. It is
// built by NewDefault or one of the loaders and never mutated after the
// server starts.
type Config struct {
	Version  string      `toml:"version"`
	Port     int         `toml:"port"`
	Greeting string      `toml:"greeting"`
	Logging  Logging     `toml:"logging"`
	HTTP     HTTPOptions `toml:"http"`
}

// Logging contains logging-related configuration options
type Logging struct {
	Level  LogLevel  `toml:"level"`
	Format LogFormat `toml:"format"`
	Output string    `toml:"output"`
}

// HTTPOptions are the net/http server timeouts. Zero leaves the net/http
// default in place.
type HTTPOptions struct {
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
	IdleTimeout  Duration `toml:"idle_timeout"`
}

// NewDefault returns a Config populated with the built-in defaults.
func NewDefault() *Config {
	return &Config{
		Version:  VersionLatest,
		Port:     DefaultPort,
		Greeting: DefaultGreeting,
		Logging: Logging{
			Level:  LogLevelInfo,
			Format: LogFormatText,
			Output: DefaultLogOutput,
		},
	}
}

// WithPort returns a copy of the config with the port replaced.
func (c *Config) WithPort(port int) *Config {
	clone := *c
	clone.Port = port
	return &clone
}
