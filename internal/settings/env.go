package settings

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type envOverrides struct {
	Editor    string `env:"EDITOR"`
	UserAgent string `env:"TRAWL_USER_AGENT"`
	LogLevel  string `env:"TRAWL_LOG_LEVEL"`
	LogFormat string `env:"TRAWL_LOG_FORMAT"`
}

// ApplyEnv seeds the store from process environment variables. EDITOR lands
// at command-line priority so it beats every other layer; trawl-specific
// variables land at environment priority.
func ApplyEnv(s *Settings) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	if o.Editor != "" {
		s.Set("editor", o.Editor, PriorityCmdline)
	}
	if o.UserAgent != "" {
		s.Set("user_agent", o.UserAgent, PriorityEnv)
	}
	if o.LogLevel != "" {
		s.Set("log_level", o.LogLevel, PriorityEnv)
	}
	if o.LogFormat != "" {
		s.Set("log_format", o.LogFormat, PriorityEnv)
	}
	return nil
}
