package commands

import (
	"errors"

	"trawl/internal/project"
	"trawl/internal/settings"
)

// loadProject reopens the project file recorded in the bound settings.
func loadProject(s *settings.Settings) (*project.File, error) {
	root := s.GetString("project_root")
	if root == "" {
		return nil, errors.New("not inside a project directory")
	}
	return project.Load(root)
}
