// Package config loads the casegraph configuration from TOML files and
// CASEGRAPH_* environment variables.
package config

// Config is the casegraph core configuration.
type Config struct {
	Output    OutputConfig `mapstructure:"output"`
	Namespace string       `mapstructure:"namespace"`
	Log       LogConfig    `mapstructure:"log"`
}

// OutputConfig controls where and how serialized graphs are written.
type OutputConfig struct {
	Directory string `mapstructure:"directory"` // "" = next to the input config
	Suffix    string `mapstructure:"suffix"`    // appended to the config basename (default: .json)
	Indent    string `mapstructure:"indent"`    // JSON indent string (default: two spaces)
}

// LogConfig controls log output format.
type LogConfig struct {
	JSON bool `mapstructure:"json"` // machine-readable JSON records instead of console lines
}
