// File: config.go
// Role: ~/.vfgraphctl.toml defaults (relation, timeout), grounded on
// matzehuels-stacktower/pkg/integrations/python/poetry.go and
// .../rust/cargo.go's use of BurntSushi/toml to decode a small config
// struct from a well-known file path.
package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// config holds the subset of vfgraphctl's behavior a user can override
// via ~/.vfgraphctl.toml instead of passing flags on every invocation.
type config struct {
	Relation string `toml:"relation"` // "iso", "subgraph", or "mono"
	Timeout  string `toml:"timeout"`  // parsed with time.ParseDuration
}

// defaultConfig is used whenever no config file is present or it fails
// to parse a field; loadConfig never returns an error for a missing
// file, since having no ~/.vfgraphctl.toml is the common case.
func defaultConfig() config {
	return config{Relation: "iso", Timeout: "30s"}
}

// loadConfig reads ~/.vfgraphctl.toml, falling back to defaultConfig
// for any field the file omits or for the whole struct if the file
// does not exist.
func loadConfig() config {
	cfg := defaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}
	path := filepath.Join(home, ".vfgraphctl.toml")

	if _, err := os.Stat(path); err != nil {
		return cfg
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return defaultConfig()
	}
	return cfg
}

// timeout parses c.Timeout, falling back to 30s on a malformed value.
func (c config) timeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}
