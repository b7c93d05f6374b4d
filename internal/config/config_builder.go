package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects partially filled configs, one per source, and merges
// them in build. Append order sets precedence: mergo keeps the first non-zero
// value it sees, so a source appended earlier wins the fields it filled.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 3),
	}
}

func (b *configBuilder) add(cfg *StructuredConfig) *configBuilder {
	b.configs = append(b.configs, cfg)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := &StructuredConfig{}
	if err := parseEnv(cfg); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("env source: %w", err))
		return b
	}
	return b.add(cfg)
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add(ParseFlags())
}

// withJSON loads the optional JSON file. The path comes from the sources
// already collected; the last source naming a path wins, so a flag can point
// somewhere else than the environment did.
func (b *configBuilder) withJSON() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	cfg, err := parseJSON(path)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("json source: %w", err))
		return b
	}
	return b.add(cfg)
}

// build merges the collected sources and validates the result. Any source
// failure recorded along the way aborts the build before merging.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("load config sources: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg); err != nil {
			return nil, fmt.Errorf("merge config sources: %w", err)
		}
	}

	return merged, merged.validate()
}
