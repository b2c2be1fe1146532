package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/solstice-go/ahocorasick/acerrors"
)

// config is accensor's on-disk configuration: the default replacement
// token and the set of characters matching should treat as transparent
// noise, analogous to acopts.Config but expressed as a serializable file
// rather than functional options.
type config struct {
	Replacement string `toml:"replacement"`
	IgnoreChars string `toml:"ignore_chars"`
}

func defaultConfig() config {
	return config{Replacement: "*"}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", acerrors.ErrInvalidConfig, path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", acerrors.ErrInvalidConfig, path, err)
	}
	if cfg.Replacement == "" {
		cfg.Replacement = "*"
	}
	return cfg, nil
}

func (c config) ignoreSet() map[rune]struct{} {
	if c.IgnoreChars == "" {
		return nil
	}
	set := make(map[rune]struct{}, len(c.IgnoreChars))
	for _, r := range c.IgnoreChars {
		set[r] = struct{}{}
	}
	return set
}
