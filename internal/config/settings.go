package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/matthewhughes934/githooks/internal/commitmsg"
)

// Compiled-in defaults. These keep the hook usable with no config files at
// all: two example tracker labels, the conventional "Ticket: " prefix, and
// the sources where appending a ticket is safe.
var Defaults = map[string]string{
	KeyLabels:  "FOO,BAR",
	KeyPrefix:  "Ticket: ",
	KeySources: "none,message,commit",
}

// Settings is the typed view of the resolved configuration.
type Settings struct {
	// Labels are the ticket labels, in scan order.
	Labels []string

	// Prefix is the literal prefix for the inserted ticket line.
	Prefix string

	// Sources are the commit sources eligible for insertion.
	Sources []commitmsg.Source
}

// Load resolves settings from defaults, config files, and environment.
// Warnings go to errWriter; a nil errWriter means os.Stderr.
func Load(errWriter io.Writer) (*Settings, error) {
	resolver := NewResolver(ResolverConfig{
		EnvPrefix:       "GITHOOKS_",
		GlobalConfigDir: "githooks",
		LocalConfigName: ".githooks.yaml",
		Defaults:        Defaults,
		ErrWriter:       errWriter,
	})
	return SettingsFrom(resolver.Resolve())
}

// SettingsFrom converts resolved key-value configuration into Settings.
func SettingsFrom(resolved *Resolved) (*Settings, error) {
	labels := splitList(resolved.Get(KeyLabels))
	if len(labels) == 0 {
		return nil, fmt.Errorf("no ticket labels configured (key %q, from %s)",
			KeyLabels, resolved.Source(KeyLabels))
	}
	for i, label := range labels {
		labels[i] = strings.ToUpper(label)
	}

	prefix := resolved.Get(KeyPrefix)
	if prefix == "" {
		return nil, fmt.Errorf("empty ticket prefix (key %q)", KeyPrefix)
	}

	var sources []commitmsg.Source
	for _, name := range splitList(resolved.Get(KeySources)) {
		source, err := commitmsg.ParseSourceName(name)
		if err != nil {
			return nil, fmt.Errorf("invalid %q entry (from %s): %w",
				KeySources, resolved.Source(KeySources), err)
		}
		sources = append(sources, source)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no eligible commit sources configured (key %q)", KeySources)
	}

	return &Settings{
		Labels:  labels,
		Prefix:  prefix,
		Sources: sources,
	}, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
