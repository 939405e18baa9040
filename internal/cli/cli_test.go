package cli

import (
	"io"
	"testing"
)

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != appName {
		t.Errorf("Use = %q, want %q", root.Use, appName)
	}

	want := map[string]bool{"generate": false, "gallery": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	if c.Logger.GetLevel() != LogInfo {
		t.Errorf("initial level = %v, want info", c.Logger.GetLevel())
	}
	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level after SetLogLevel = %v, want debug", c.Logger.GetLevel())
	}
}

func TestGenerateCommandFlags(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := c.generateCommand()

	for _, name := range []string{
		"collection", "output", "images", "points", "size", "width",
		"height", "scale", "margin", "generator", "distortion", "seed",
		"close", "caption", "preset", "config",
	} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("flag --%s not registered", name)
		}
	}
}
