// Package config loads and validates the assembly configuration.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the full assembly configuration.
type Config struct {
	// Layout is the id of the default layout applied to views that do
	// not name one in their front matter.
	Layout string `yaml:"layout"`

	// Glob patterns, expanded with ** support. An empty match set is
	// not an error; the namespace simply stays empty.
	Layouts        []string `yaml:"layouts"`
	LayoutIncludes []string `yaml:"layoutIncludes"`
	Views          []string `yaml:"views"`
	Materials      []string `yaml:"materials"`
	Data           []string `yaml:"data"`
	Docs           []string `yaml:"docs"`

	// Src lists the directories the templating engine resolves
	// includes and imports against.
	Src []string `yaml:"src"`

	// ViewsRoot is the directory keyword that marks the top of the
	// views tree; views directly under it are collection-less.
	ViewsRoot string `yaml:"viewsRoot"`

	// BuildData is merged into every view's context.
	BuildData map[string]any `yaml:"buildData"`

	// Keys renames the store namespaces inside view contexts.
	Keys Keys `yaml:"keys"`

	Dest      string            `yaml:"dest"`
	Extension string            `yaml:"extension"`
	DestMap   map[string]string `yaml:"destMap"`

	// Beautifier options are decoded and held for an external
	// formatter; the pipeline itself does not consume them.
	Beautifier map[string]any `yaml:"beautifier"`

	LogErrors bool `yaml:"logErrors"`

	// AutoModule is a glob; views matching it are wrapped in the
	// ModuleWrapper template before rendering.
	AutoModule    string `yaml:"autoModule"`
	ModuleWrapper string `yaml:"moduleWrapper"`

	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// Keys holds the context names the three store namespaces are exposed
// under.
type Keys struct {
	Materials string `yaml:"materials"`
	Views     string `yaml:"views"`
	Docs      string `yaml:"docs"`
}

// MetricsConfig toggles the Prometheus recorder.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns a configuration with every default applied, suitable
// as a base for programmatic use.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Layout == "" {
		c.Layout = "default"
	}
	if len(c.Layouts) == 0 {
		c.Layouts = []string{"src/views/layouts/*"}
	}
	if len(c.Views) == 0 {
		c.Views = []string{"src/views/**/*", "!src/views/layouts/**"}
	}
	if len(c.Materials) == 0 {
		c.Materials = []string{"src/materials/**/*"}
	}
	if len(c.Data) == 0 {
		c.Data = []string{"src/data/**/*.json", "src/data/**/*.yml", "src/data/**/*.yaml"}
	}
	if len(c.Docs) == 0 {
		c.Docs = []string{"src/docs/**/*.md"}
	}
	if len(c.Src) == 0 {
		c.Src = []string{"src"}
	}
	if c.Keys.Materials == "" {
		c.Keys.Materials = "materials"
	}
	if c.Keys.Views == "" {
		c.Keys.Views = "views"
	}
	if c.Keys.Docs == "" {
		c.Keys.Docs = "docs"
	}
	// The views namespace key doubles as the top-of-tree directory
	// keyword, matching the original contract.
	if c.ViewsRoot == "" {
		c.ViewsRoot = c.Keys.Views
	}
	if c.Dest == "" {
		c.Dest = "dist"
	}
	if c.Extension == "" {
		c.Extension = ".html"
	}
	if c.BuildData == nil {
		c.BuildData = map[string]any{}
	}
}

// Validate reports configuration errors that would make a run
// meaningless.
func (c *Config) Validate() error {
	if c.Extension != "" && c.Extension[0] != '.' {
		return fmt.Errorf("extension must start with a dot: %q", c.Extension)
	}
	if c.AutoModule != "" && c.ModuleWrapper == "" {
		return fmt.Errorf("autoModule requires moduleWrapper")
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// Load reads the configuration file, expanding ${VAR} references from
// the process environment (a .env file is loaded first, best effort).
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s", path)
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
