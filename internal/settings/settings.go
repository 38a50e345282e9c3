package settings

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Priority orders competing writes to the same key. Higher wins.
type Priority int

const (
	PriorityDefault Priority = 0
	PriorityCommand Priority = 10
	PriorityProject Priority = 20
	PriorityEnv     Priority = 30
	PriorityCmdline Priority = 40
)

// String returns the label used when dumping settings.
func (p Priority) String() string {
	switch p {
	case PriorityDefault:
		return "default"
	case PriorityCommand:
		return "command"
	case PriorityProject:
		return "project"
	case PriorityEnv:
		return "env"
	case PriorityCmdline:
		return "cmdline"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

type entry struct {
	value    any
	priority Priority
}

// Settings is a priority-layered key/value store. The zero value is not
// usable; construct with New.
type Settings struct {
	values map[string]entry
	frozen bool
}

// New returns an empty settings store.
func New() *Settings {
	return &Settings{values: make(map[string]entry)}
}

// Set records value for key at the given priority. Writes below the current
// entry's priority are ignored; equal or higher priorities replace the entry.
// Set panics if the store has been frozen.
func (s *Settings) Set(key string, value any, priority Priority) {
	if s.frozen {
		panic(fmt.Sprintf("settings: write to frozen store (key %q)", key))
	}
	if existing, ok := s.values[key]; ok && existing.priority > priority {
		return
	}
	s.values[key] = entry{value: value, priority: priority}
}

// SetDict records every key/value pair of values at the given priority.
func (s *Settings) SetDict(values map[string]any, priority Priority) {
	for key, value := range values {
		s.Set(key, value, priority)
	}
}

// Get returns the highest-priority value written for key, or nil.
func (s *Settings) Get(key string) any {
	e, ok := s.values[key]
	if !ok {
		return nil
	}
	return e.value
}

// GetString returns the value for key rendered as a string, or "" when the
// key is unset.
func (s *Settings) GetString(key string) string {
	value := s.Get(key)
	if value == nil {
		return ""
	}
	return render(value)
}

// GetInt returns the value for key coerced to an int. Unset or
// non-numeric values yield the provided fallback.
func (s *Settings) GetInt(key string, fallback int) int {
	switch v := s.Get(key).(type) {
	case nil:
		return fallback
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fallback
		}
		return parsed
	default:
		return fallback
	}
}

// GetBool returns the value for key coerced to a bool. Unset or
// unparseable values yield the provided fallback.
func (s *Settings) GetBool(key string, fallback bool) bool {
	switch v := s.Get(key).(type) {
	case nil:
		return fallback
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fallback
		}
		return parsed
	default:
		return fallback
	}
}

// PriorityOf reports the priority of the current entry for key.
func (s *Settings) PriorityOf(key string) (Priority, bool) {
	e, ok := s.values[key]
	return e.priority, ok
}

// Freeze marks the store read-only. Further Set calls panic.
func (s *Settings) Freeze() {
	s.frozen = true
}

// Frozen reports whether the store has been frozen.
func (s *Settings) Frozen() bool {
	return s.frozen
}

// Entry is one key/value pair exported for inspection.
type Entry struct {
	Key      string
	Value    any
	Priority Priority
}

// Entries returns every entry sorted by key.
func (s *Settings) Entries() []Entry {
	entries := make([]Entry, 0, len(s.values))
	for key, e := range s.values {
		entries = append(entries, Entry{Key: key, Value: e.value, Priority: e.priority})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

// Snapshot exports the effective key/value view as a plain map.
func (s *Settings) Snapshot() map[string]any {
	out := make(map[string]any, len(s.values))
	for key, e := range s.values {
		out[key] = e.value
	}
	return out
}

func render(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ",")
	default:
		return fmt.Sprintf("%v", v)
	}
}
