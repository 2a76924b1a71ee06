package config

import (
	"github.com/spf13/viper"

	"github.com/casework/casegraph/graph"
)

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	// Output defaults
	v.SetDefault("output.directory", "")
	v.SetDefault("output.suffix", ".json")
	v.SetDefault("output.indent", "  ")

	// Vocabulary namespace default
	v.SetDefault("namespace", graph.Namespace)

	// Log defaults
	v.SetDefault("log.json", false)
}
