package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolver_Defaults(t *testing.T) {
	resolver := NewResolverWithPaths(ResolverConfig{
		Defaults: Defaults,
	}, "", "")

	cfg := resolver.Resolve()

	if got := cfg.Get(KeyLabels); got != "FOO,BAR" {
		t.Errorf("labels = %q, want %q", got, "FOO,BAR")
	}
	if got := cfg.Source(KeyLabels); got != SourceDefault {
		t.Errorf("source = %q, want %q", got, SourceDefault)
	}
}

func TestResolver_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("GITHOOKS_LABELS", "PROJ")

	resolver := NewResolverWithPaths(ResolverConfig{
		EnvPrefix: "GITHOOKS_",
		Defaults:  Defaults,
	}, "", "")

	cfg := resolver.Resolve()

	if got := cfg.Get(KeyLabels); got != "PROJ" {
		t.Errorf("labels = %q, want %q", got, "PROJ")
	}
	if got := cfg.Source(KeyLabels); got != SourceEnv {
		t.Errorf("source = %q, want %q", got, SourceEnv)
	}
}

func TestResolver_GlobalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	globalPath := filepath.Join(tmpDir, "config.yaml")
	os.WriteFile(globalPath, []byte("prefix: 'Issue: '\n"), 0o644)

	resolver := NewResolverWithPaths(ResolverConfig{
		Defaults: Defaults,
	}, globalPath, "")

	cfg := resolver.Resolve()

	if got := cfg.Get(KeyPrefix); got != "Issue: " {
		t.Errorf("prefix = %q, want %q", got, "Issue: ")
	}
	if got := cfg.Source(KeyPrefix); got != SourceGlobal {
		t.Errorf("source = %q, want %q", got, SourceGlobal)
	}
}

func TestResolver_LocalOverridesGlobal(t *testing.T) {
	tmpDir := t.TempDir()

	globalPath := filepath.Join(tmpDir, "config.yaml")
	os.WriteFile(globalPath, []byte("labels: GLOB\n"), 0o644)

	localPath := filepath.Join(tmpDir, ".githooks.yaml")
	os.WriteFile(localPath, []byte("labels: LOC\n"), 0o644)

	resolver := NewResolverWithPaths(ResolverConfig{
		Defaults: Defaults,
	}, globalPath, localPath)

	cfg := resolver.Resolve()

	if got := cfg.Get(KeyLabels); got != "LOC" {
		t.Errorf("labels = %q, want %q", got, "LOC")
	}
	if got := cfg.Source(KeyLabels); got != SourceLocal {
		t.Errorf("source = %q, want %q", got, SourceLocal)
	}
}

func TestResolver_YAMLListValues(t *testing.T) {
	tmpDir := t.TempDir()
	localPath := filepath.Join(tmpDir, ".githooks.yaml")
	os.WriteFile(localPath, []byte("labels:\n  - ABC\n  - XYZ\n"), 0o644)

	resolver := NewResolverWithPaths(ResolverConfig{
		Defaults: Defaults,
	}, "", localPath)

	cfg := resolver.Resolve()

	if got := cfg.Get(KeyLabels); got != "ABC,XYZ" {
		t.Errorf("labels = %q, want %q", got, "ABC,XYZ")
	}
}

func TestResolver_InvalidYAMLWarns(t *testing.T) {
	tmpDir := t.TempDir()
	localPath := filepath.Join(tmpDir, ".githooks.yaml")
	os.WriteFile(localPath, []byte("labels: [unclosed\n"), 0o644)

	var warnings bytes.Buffer
	resolver := NewResolverWithPaths(ResolverConfig{
		Defaults:  Defaults,
		ErrWriter: &warnings,
	}, "", localPath)

	cfg := resolver.Resolve()

	// Falls back to defaults
	if got := cfg.Get(KeyLabels); got != "FOO,BAR" {
		t.Errorf("labels = %q, want default", got)
	}
	if len(resolver.Warnings) == 0 {
		t.Error("expected a parse warning")
	}
	if !strings.Contains(warnings.String(), "could not parse") {
		t.Errorf("warning output = %q", warnings.String())
	}
}

func TestResolver_MissingFilesIgnored(t *testing.T) {
	resolver := NewResolverWithPaths(ResolverConfig{
		Defaults: Defaults,
	}, "/nonexistent/global.yaml", "/nonexistent/.githooks.yaml")

	cfg := resolver.Resolve()

	if got := cfg.Get(KeyPrefix); got != "Ticket: " {
		t.Errorf("prefix = %q, want default", got)
	}
	if len(resolver.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", resolver.Warnings)
	}
}
