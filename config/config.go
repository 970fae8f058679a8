// Package config loads the stream route table that applications use to wire
// a router. The table is declarative YAML so the set of streams a client
// binds can ship alongside deployment config rather than being hard-coded.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/c360/streambind/errors"
)

// Route kinds.
const (
	KindBinding = "binding" // incremental create/update/delete events
	KindInitial = "initial" // one-shot bulk snapshot
)

// Route declares one logical stream the client binds.
type Route struct {
	// Stream is the wire name carried in the envelope's stream field.
	Stream string `yaml:"stream"`
	// Model is the server-side model name, informational only.
	Model string `yaml:"model,omitempty"`
	// Kind is either "binding" or "initial".
	Kind string `yaml:"kind"`
}

// Config is the complete route table.
type Config struct {
	Routes []Route `yaml:"routes"`
}

// Validate checks the route table for structural problems: empty or
// duplicate stream names and unknown kinds.
func (c *Config) Validate() error {
	if len(c.Routes) == 0 {
		return errors.WrapFatal(errors.ErrMissingConfig, "Config", "Validate", "routes check")
	}

	seen := make(map[string]struct{}, len(c.Routes))
	for i, route := range c.Routes {
		if route.Stream == "" {
			return errors.WrapFatal(
				fmt.Errorf("%w: routes[%d]: stream is required", errors.ErrInvalidConfig, i),
				"Config", "Validate", "stream check")
		}
		if _, dup := seen[route.Stream]; dup {
			return errors.WrapFatal(
				fmt.Errorf("%w: routes[%d]: duplicate stream %q", errors.ErrInvalidConfig, i, route.Stream),
				"Config", "Validate", "duplicate check")
		}
		seen[route.Stream] = struct{}{}

		if route.Kind != KindBinding && route.Kind != KindInitial {
			return errors.WrapFatal(
				fmt.Errorf("%w: routes[%d]: unknown kind %q", errors.ErrInvalidConfig, i, route.Kind),
				"Config", "Validate", "kind check")
		}
	}
	return nil
}

// Parse decodes and validates a YAML route table.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapFatal(
			fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err),
			"Config", "Parse", "yaml unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads and parses a route table from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFatal(err, "Config", "Load", "read file")
	}
	return Parse(data)
}

// FallbackTag is the tag Classifier assigns to stream names outside the
// route table.
const FallbackTag = ""

// Classifier returns a classify function suitable for stream.Classify: known
// stream names map to themselves, everything else maps to the fallback tag.
// The second return value is the fallback tag to pass alongside it.
func (c *Config) Classifier() (func(name string) string, string) {
	known := make(map[string]struct{}, len(c.Routes))
	for _, route := range c.Routes {
		known[route.Stream] = struct{}{}
	}
	classify := func(name string) string {
		if _, ok := known[name]; ok {
			return name
		}
		return FallbackTag
	}
	return classify, FallbackTag
}

// Route returns the route declared for a stream name.
func (c *Config) Route(stream string) (Route, bool) {
	for _, route := range c.Routes {
		if route.Stream == stream {
			return route, true
		}
	}
	return Route{}, false
}
