package project

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed sample_trawl.toml
var sampleProject string

// Scaffold writes a fresh trawl.toml plus the cache directory under dir.
// It refuses to overwrite an existing project file.
func Scaffold(dir, name, title string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create project directory %q: %w", dir, err)
	}

	target := filepath.Join(dir, FileName)
	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("project file already exists at %s", target)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("check project path: %w", err)
	}

	tmpl, err := template.New(FileName).Parse(sampleProject)
	if err != nil {
		return "", fmt.Errorf("parse project template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Name, Title string }{Name: name, Title: title}); err != nil {
		return "", fmt.Errorf("render project template: %w", err)
	}

	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write project file: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, ".trawl", "cache"), 0o755); err != nil {
		return "", fmt.Errorf("create cache directory: %w", err)
	}
	return target, nil
}
