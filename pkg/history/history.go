// Package history stores the command history pzsh uses for
// auto-suggestions and frequency reports. Entries persist as JSON in
// the XDG state directory with atomic writes.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// DefaultMaxEntries bounds the history file size.
const DefaultMaxEntries = 1000

// formatVersion is the current history file format version.
const formatVersion = "1.0"

// Entry is one recorded command.
type Entry struct {
	Command   string    `json:"command"`
	Timestamp time.Time `json:"timestamp"`
	Cwd       string    `json:"cwd,omitempty"`
}

type fileData struct {
	History    []Entry `json:"history"`
	MaxEntries int     `json:"max_entries"`
	Version    string  `json:"version,omitempty"`
}

// Store is a bounded, persistent command history. Safe for concurrent
// use.
type Store struct {
	mu         sync.RWMutex
	path       string
	entries    []Entry
	maxEntries int
}

// Open loads the history file under stateDir, creating an empty store
// when the file does not exist yet.
func Open(stateDir string, maxEntries int) (*Store, error) {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	s := &Store{
		path:       filepath.Join(stateDir, "history.json"),
		maxEntries: maxEntries,
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var fd fileData
	if err := json.Unmarshal(data, &fd); err != nil {
		return fmt.Errorf("parsing history file: %w", err)
	}

	s.entries = fd.History
	if fd.MaxEntries > 0 {
		s.maxEntries = fd.MaxEntries
	}
	s.trim()
	return nil
}

// Save writes the history to disk, replacing the file atomically.
func (s *Store) Save() error {
	s.mu.RLock()
	fd := fileData{
		History:    append([]Entry(nil), s.entries...),
		MaxEntries: s.maxEntries,
		Version:    formatVersion,
	}
	s.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	data, err := json.MarshalIndent(fd, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing history file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing history file: %w", err)
	}
	return nil
}

// Add records a command with the current time and working directory.
func (s *Store) Add(command string) {
	command = strings.TrimSpace(command)
	if command == "" {
		return
	}
	cwd, _ := os.Getwd()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, Entry{
		Command:   command,
		Timestamp: time.Now(),
		Cwd:       cwd,
	})
	s.trim()
}

// trim drops the oldest entries past maxEntries. Caller holds the lock.
func (s *Store) trim() {
	if len(s.entries) > s.maxEntries {
		s.entries = s.entries[len(s.entries)-s.maxEntries:]
	}
}

// Commands returns every stored command, oldest first, in the shape
// the auto-suggest widget consumes.
func (s *Store) Commands() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Command
	}
	return out
}

// Recent returns the newest n entries, newest last.
func (s *Store) Recent(n int) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 || n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]Entry, n)
	copy(out, s.entries[len(s.entries)-n:])
	return out
}

// Search returns entries whose command contains pattern,
// case-insensitively.
func (s *Store) Search(pattern string) []Entry {
	pattern = strings.ToLower(pattern)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Entry
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Command), pattern) {
			out = append(out, e)
		}
	}
	return out
}

// Frequency is how often a base command appears in history.
type Frequency struct {
	Command string `json:"command"`
	Count   int    `json:"count"`
}

// MostUsed returns the most frequent base commands, highest first.
// Ties break alphabetically so the output is stable.
func (s *Store) MostUsed(limit int) []Frequency {
	s.mu.RLock()
	counts := make(map[string]int)
	for _, e := range s.entries {
		fields := strings.Fields(e.Command)
		if len(fields) > 0 {
			counts[fields[0]]++
		}
	}
	s.mu.RUnlock()

	out := make([]Frequency, 0, len(counts))
	for cmd, n := range counts {
		out = append(out, Frequency{Command: cmd, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Command < out[j].Command
	})

	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// Clear removes every entry. The file is not rewritten until Save.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// Count reports the number of stored entries.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Path returns the history file location.
func (s *Store) Path() string {
	return s.path
}
