// Package config loads and validates mediaband configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Dicklesworthstone/mediaband/pkg/mediaquery"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "mediaband.yaml"

// Config describes a breakpoint set and how its outputs are produced.
type Config struct {
	// Breakpoints maps breakpoint name to pixel width.
	Breakpoints map[string]int `yaml:"breakpoints"`

	// ClassPrefix overrides the generated hide-rule class prefix.
	ClassPrefix string `yaml:"class_prefix,omitempty"`

	// RenderWidths lists the breakpoint names a server pre-renders for.
	// Used by render-admission checks; empty means every breakpoint.
	RenderWidths []string `yaml:"render_widths,omitempty"`

	Output  Output  `yaml:"output,omitempty"`
	Preview Preview `yaml:"preview,omitempty"`
}

// Output controls bundle generation.
type Output struct {
	// Dir is the bundle output directory.
	Dir string `yaml:"dir,omitempty"`

	// Formats selects which artifacts to write: css, json, svg, png.
	Formats []string `yaml:"formats,omitempty"`
}

// Preview controls the local preview server.
type Preview struct {
	// Port to serve on; 0 selects one automatically.
	Port int `yaml:"port,omitempty"`

	// OpenBrowser determines whether to auto-open a browser.
	OpenBrowser bool `yaml:"open_browser,omitempty"`
}

// Default returns a config with sensible defaults and no breakpoints.
func Default() Config {
	return Config{
		ClassPrefix: mediaquery.DefaultClassPrefix,
		Output: Output{
			Dir:     "dist",
			Formats: []string{"css", "json", "svg"},
		},
		Preview: Preview{
			OpenBrowser: true,
		},
	}
}

// Load reads the config from dir, falling back to the working directory.
func Load(dir string) (Config, error) {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("failed to get current working directory: %w", err)
		}
	}
	return LoadFile(filepath.Join(dir, DefaultFileName))
}

// LoadFile reads the config from a specific path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, fmt.Errorf("no breakpoint config found at %s (run 'mband init' to create one)", path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks if the config is logically valid
func (c Config) Validate() error {
	if len(c.Breakpoints) == 0 {
		return fmt.Errorf("no breakpoints defined")
	}
	seen := make(map[int]string, len(c.Breakpoints))
	for name, width := range c.Breakpoints {
		if name == "" {
			return fmt.Errorf("breakpoint name cannot be empty")
		}
		if width < 0 {
			return fmt.Errorf("breakpoint %q has negative width %d", name, width)
		}
		if other, ok := seen[width]; ok {
			return fmt.Errorf("breakpoints %q and %q share width %dpx", other, name, width)
		}
		seen[width] = name
	}
	for _, name := range c.RenderWidths {
		if _, ok := c.Breakpoints[name]; !ok {
			return fmt.Errorf("render_widths references unknown breakpoint %q", name)
		}
	}
	for _, format := range c.Output.Formats {
		switch format {
		case "css", "json", "svg", "png":
		default:
			return fmt.Errorf("unknown output format %q (expected css, json, svg or png)", format)
		}
	}
	return nil
}

// Registry builds the media-query registry for this config.
func (c Config) Registry() (*mediaquery.Registry, error) {
	prefix := c.ClassPrefix
	if prefix == "" {
		prefix = mediaquery.DefaultClassPrefix
	}
	return mediaquery.NewWithOptions(c.Breakpoints, mediaquery.Options{ClassPrefix: prefix})
}

// ServerRenderNames returns the breakpoint names used for render-admission
// checks: the configured render_widths, or every breakpoint when unset.
func (c Config) ServerRenderNames(reg *mediaquery.Registry) []string {
	if len(c.RenderWidths) > 0 {
		out := make([]string, len(c.RenderWidths))
		copy(out, c.RenderWidths)
		return out
	}
	return reg.SortedNames()
}

// WriteFile marshals the config to YAML at path. Used by the init wizard.
func (c Config) WriteFile(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
