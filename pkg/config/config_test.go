package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
breakpoints:
  sm: 0
  md: 768
  lg: 1024
class_prefix: hide-
render_widths: [sm, lg]
output:
  dir: build
  formats: [css, json]
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	if len(cfg.Breakpoints) != 3 {
		t.Errorf("got %d breakpoints, want 3", len(cfg.Breakpoints))
	}
	if cfg.Breakpoints["md"] != 768 {
		t.Errorf("md = %d, want 768", cfg.Breakpoints["md"])
	}
	if cfg.ClassPrefix != "hide-" {
		t.Errorf("ClassPrefix = %q, want %q", cfg.ClassPrefix, "hide-")
	}
	if cfg.Output.Dir != "build" {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "build")
	}
	if len(cfg.RenderWidths) != 2 {
		t.Errorf("got %d render widths, want 2", len(cfg.RenderWidths))
	}
}

func TestLoadFileDefaults(t *testing.T) {
	path := writeConfig(t, "breakpoints:\n  sm: 0\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if cfg.Output.Dir != "dist" {
		t.Errorf("default Output.Dir = %q, want %q", cfg.Output.Dir, "dist")
	}
	if len(cfg.Output.Formats) == 0 {
		t.Error("default Output.Formats should not be empty")
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), DefaultFileName))
	if err == nil {
		t.Fatal("LoadFile() should fail for a missing file")
	}
	if !strings.Contains(err.Error(), "mband init") {
		t.Errorf("missing-file error %q should point at mband init", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"no breakpoints", func(c *Config) { c.Breakpoints = nil }, "no breakpoints"},
		{"negative width", func(c *Config) { c.Breakpoints["sm"] = -5 }, "negative width"},
		{"duplicate width", func(c *Config) { c.Breakpoints["other"] = 768 }, "share width"},
		{"unknown render width", func(c *Config) { c.RenderWidths = []string{"nope"} }, "unknown breakpoint"},
		{"unknown format", func(c *Config) { c.Output.Formats = []string{"pdf"} }, "unknown output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Breakpoints = map[string]int{"sm": 0, "md": 768, "lg": 1024}
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestRegistryFromConfig(t *testing.T) {
	cfg := Default()
	cfg.Breakpoints = map[string]int{"sm": 0, "lg": 1024}
	cfg.ClassPrefix = "x-"

	reg, err := cfg.Registry()
	if err != nil {
		t.Fatalf("Registry() failed: %v", err)
	}
	if reg.Largest() != "lg" {
		t.Errorf("Largest() = %q, want %q", reg.Largest(), "lg")
	}
	for _, rule := range reg.RuleSets() {
		if !strings.HasPrefix(rule.ClassName, "x-") {
			t.Errorf("class %q missing configured prefix", rule.ClassName)
		}
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Breakpoints = map[string]int{"sm": 0, "md": 768}
	cfg.RenderWidths = []string{"sm"}

	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := cfg.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() after WriteFile() failed: %v", err)
	}
	if loaded.Breakpoints["md"] != 768 {
		t.Errorf("round-tripped md = %d, want 768", loaded.Breakpoints["md"])
	}
	if len(loaded.RenderWidths) != 1 || loaded.RenderWidths[0] != "sm" {
		t.Errorf("round-tripped render widths = %v, want [sm]", loaded.RenderWidths)
	}
}

func TestServerRenderNames(t *testing.T) {
	cfg := Default()
	cfg.Breakpoints = map[string]int{"sm": 0, "md": 768, "lg": 1024}

	reg, err := cfg.Registry()
	if err != nil {
		t.Fatalf("Registry() failed: %v", err)
	}

	// Unset render_widths falls back to every breakpoint, ascending.
	names := cfg.ServerRenderNames(reg)
	if len(names) != 3 || names[0] != "sm" || names[2] != "lg" {
		t.Errorf("ServerRenderNames() = %v, want [sm md lg]", names)
	}

	cfg.RenderWidths = []string{"sm", "lg"}
	names = cfg.ServerRenderNames(reg)
	if len(names) != 2 || names[0] != "sm" || names[1] != "lg" {
		t.Errorf("ServerRenderNames() = %v, want [sm lg]", names)
	}
}
