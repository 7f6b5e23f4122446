package engine

import (
	"github.com/BurntSushi/toml"
)

// Config holds the realization engine's tunables, decoded with
// BurntSushi/toml the same way Typst documents read arbitrary TOML
// data files; here the same library configures the engine itself
// rather than document content.
type Config struct {
	MaxShowRuleDepth int `toml:"max_show_rule_depth"`
}

// LoadConfig decodes a TOML configuration file. A missing or zero
// MaxShowRuleDepth is resolved to DefaultMaxShowRuleDepth by NewRoute,
// not here, so an absent key and an empty file behave identically. A
// file that cannot be read is returned as an error.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
