// Copyright © 2016, The T Authors.

package qeditor

import "github.com/BurntSushi/toml"

// Config holds the settings for a qedserve process, loaded from a TOML
// file at startup.
type Config struct {
	// Addr is the address the HTTP server listens on, e.g. ":8080".
	Addr string `toml:"addr"`

	// MaxDocuments bounds how many documents may be open at once. Zero
	// means unbounded.
	MaxDocuments int `toml:"max_documents"`

	// LogPath is a file to which every applied command is logged. Empty
	// disables command logging.
	LogPath string `toml:"log_path"`
}

// DefaultConfig returns the Config a qedserve process uses when no
// config file is given.
func DefaultConfig() Config {
	return Config{Addr: ":8080"}
}

// LoadConfig reads and parses a TOML config file at path.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}
