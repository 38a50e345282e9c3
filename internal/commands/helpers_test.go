package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"trawl/internal/logging"
	"trawl/internal/project"
	"trawl/internal/settings"
)

func testSettings(t *testing.T) *settings.Settings {
	t.Helper()
	s := settings.New()
	s.SetDict(settings.Defaults(), settings.PriorityDefault)
	return s
}

func bindForTest(t *testing.T, cmd Command, s *settings.Settings) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.Bind(s, logging.NewNop(), stdout, stderr)
	return stdout, stderr
}

// newTestProject scaffolds a project under a temp dir, rewrites its file with
// contents when provided, and records the root on s.
func newTestProject(t *testing.T, s *settings.Settings, contents string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "proj")
	if _, err := project.Scaffold(dir, "proj", "Proj"); err != nil {
		t.Fatalf("Scaffold: %v", err)
	}
	if contents != "" {
		if err := os.WriteFile(filepath.Join(dir, project.FileName), []byte(contents), 0o644); err != nil {
			t.Fatalf("write project file: %v", err)
		}
	}
	s.Set("project_root", dir, settings.PriorityProject)
	s.Set("project_name", "proj", settings.PriorityProject)
	return dir
}
