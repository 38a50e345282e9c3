package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"trawl/internal/settings"
)

// FileName is the marker file that makes a directory a trawl project root.
const FileName = "trawl.toml"

// Spider is one named seed-URL set declared by the project.
type Spider struct {
	Name           string   `toml:"name"`
	StartURLs      []string `toml:"start_urls"`
	AllowedDomains []string `toml:"allowed_domains"`
	MaxDepth       int      `toml:"max_depth"`
}

// Meta holds the identity section of the project file.
type Meta struct {
	Name  string `toml:"name"`
	Title string `toml:"title"`
}

// File is the parsed trawl.toml contents.
type File struct {
	Project  Meta           `toml:"project"`
	Settings map[string]any `toml:"settings"`
	Spiders  []Spider       `toml:"spiders"`

	root string
}

// Find walks upward from dir looking for a trawl.toml marker and returns the
// containing directory. The second result is false when dir is outside any
// project.
func Find(dir string) (string, bool) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		marker := filepath.Join(current, FileName)
		if info, err := os.Stat(marker); err == nil && !info.IsDir() {
			return current, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// Load reads and validates the project file rooted at root.
func Load(root string) (*File, error) {
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	f.root = root

	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("invalid project file %s: %w", path, err)
	}
	return &f, nil
}

// Root returns the directory containing the project file.
func (f *File) Root() string { return f.root }

// Path returns the absolute path of the project file.
func (f *File) Path() string { return filepath.Join(f.root, FileName) }

// Spider returns the spider declared under name.
func (f *File) Spider(name string) (Spider, bool) {
	for _, s := range f.Spiders {
		if s.Name == name {
			return s, true
		}
	}
	return Spider{}, false
}

// SpiderNames returns the declared spider names sorted alphabetically.
func (f *File) SpiderNames() []string {
	names := make([]string, 0, len(f.Spiders))
	for _, s := range f.Spiders {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names
}

func (f *File) validate() error {
	if strings.TrimSpace(f.Project.Name) == "" {
		return errors.New("project.name is required")
	}
	seen := make(map[string]struct{}, len(f.Spiders))
	for _, s := range f.Spiders {
		if strings.TrimSpace(s.Name) == "" {
			return errors.New("spider name is required")
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("duplicate spider %q", s.Name)
		}
		seen[s.Name] = struct{}{}
		if len(s.StartURLs) == 0 {
			return fmt.Errorf("spider %q declares no start_urls", s.Name)
		}
		if s.MaxDepth < 0 {
			return fmt.Errorf("spider %q has negative max_depth", s.Name)
		}
	}
	return nil
}

// Apply loads the project at root and layers its configuration into the
// settings store at project priority. The project root and name are recorded
// so commands can reopen the file without re-walking directories.
func Apply(s *settings.Settings, root string) (*File, error) {
	f, err := Load(root)
	if err != nil {
		return nil, err
	}
	s.SetDict(f.Settings, settings.PriorityProject)
	s.Set("project_root", f.root, settings.PriorityProject)
	s.Set("project_name", f.Project.Name, settings.PriorityProject)
	return f, nil
}

// CacheDir resolves the page-cache directory for the bound settings,
// relative paths anchored at the project root.
func CacheDir(s *settings.Settings) string {
	dir := s.GetString("cache_dir")
	if dir == "" {
		dir = ".trawl/cache"
	}
	if !filepath.IsAbs(dir) {
		if root := s.GetString("project_root"); root != "" {
			dir = filepath.Join(root, dir)
		}
	}
	return dir
}
