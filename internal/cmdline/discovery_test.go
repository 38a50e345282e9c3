package cmdline_test

import (
	"strings"
	"testing"

	"trawl/internal/cmdline"
	"trawl/internal/commands"
	"trawl/internal/plugins"
	"trawl/internal/settings"
)

func TestDiscoverIncludesBuiltins(t *testing.T) {
	resetPlugins(t)

	registry, err := cmdline.Discover(newTestSettings(t), true)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	for _, name := range []string{"version", "fetch", "crawl", "list", "settings", "edit", "startproject", "cache"} {
		if _, ok := registry[name]; !ok {
			t.Fatalf("builtin %q missing from registry", name)
		}
	}
}

func TestDiscoverHidesProjectCommandsOutsideProject(t *testing.T) {
	resetPlugins(t)

	registry, err := cmdline.Discover(newTestSettings(t), false)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	for _, name := range []string{"crawl", "list", "edit", "cache"} {
		if _, ok := registry[name]; ok {
			t.Fatalf("project-only command %q visible outside a project", name)
		}
	}
	if _, ok := registry["version"]; !ok {
		t.Fatal("global command version missing")
	}
}

func TestDiscoverPluginOverridesBuiltin(t *testing.T) {
	resetPlugins(t)
	override := &stubCommand{name: "version", short: "plugin version"}
	plugins.Register("version", func() commands.Command { return override })

	registry, err := cmdline.Discover(newTestSettings(t), true)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if registry["version"] != commands.Command(override) {
		t.Fatal("expected plugin to override the builtin version command")
	}
}

func TestDiscoverPluginBypassesProjectFilter(t *testing.T) {
	resetPlugins(t)
	plugins.Register("audit", func() commands.Command {
		return &stubCommand{name: "audit", requires: true}
	})

	registry, err := cmdline.Discover(newTestSettings(t), false)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if _, ok := registry["audit"]; !ok {
		t.Fatal("plugin command should be visible outside a project")
	}
}

func TestDiscoverRejectsBrokenPluginEntry(t *testing.T) {
	resetPlugins(t)
	plugins.Register("broken", nil)

	_, err := cmdline.Discover(newTestSettings(t), true)
	if err == nil {
		t.Fatal("expected error for nil plugin factory")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Fatalf("error should name the offending entry: %v", err)
	}
}

func TestDiscoverRejectsNilPluginCommand(t *testing.T) {
	resetPlugins(t)
	plugins.Register("empty", func() commands.Command { return nil })

	if _, err := cmdline.Discover(newTestSettings(t), true); err == nil {
		t.Fatal("expected error for factory returning nil")
	}
}

func TestDiscoverCommandsModuleOverrides(t *testing.T) {
	resetPlugins(t)
	override := &stubCommand{name: "fetch", short: "project fetch"}
	plugins.RegisterModule("extra", func() commands.Command { return override })

	s := newTestSettings(t)
	s.Set("commands_module", "extra", settings.PriorityProject)

	registry, err := cmdline.Discover(s, true)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if registry["fetch"] != commands.Command(override) {
		t.Fatal("expected commands_module to override the builtin fetch command")
	}
}

func TestDiscoverCommandsModuleRespectsProjectFilter(t *testing.T) {
	resetPlugins(t)
	plugins.RegisterModule("extra", func() commands.Command {
		return &stubCommand{name: "deploy", requires: true}
	})

	s := newTestSettings(t)
	s.Set("commands_module", "extra", settings.PriorityProject)

	registry, err := cmdline.Discover(s, false)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if _, ok := registry["deploy"]; ok {
		t.Fatal("commands_module entries must honor the project filter")
	}
}

func TestDiscoverUnknownCommandsModuleFails(t *testing.T) {
	resetPlugins(t)

	s := newTestSettings(t)
	s.Set("commands_module", "missing", settings.PriorityProject)

	if _, err := cmdline.Discover(s, true); err == nil {
		t.Fatal("expected error for unregistered commands_module")
	}
}
