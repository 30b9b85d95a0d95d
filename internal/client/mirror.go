package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ErrNoMirror indicates no local mirror exists yet (never logged in on
// this machine)
var ErrNoMirror = errors.New("no local mirror")

// Stats is the progression slice of the record kept locally
type Stats struct {
	Level      int `json:"level"`
	Experience int `json:"experience"`
	Score      int `json:"score"`
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
}

// State is the locally mirrored view of the player's own record. It
// never contains credential material of any form.
type State struct {
	ServerURL  string    `json:"server_url,omitempty"`
	Handle     string    `json:"handle"`
	Stats      Stats     `json:"stats"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// Mirror persists the local record copy as a single JSON file,
// rewritten whole on every change
type Mirror struct {
	mu   sync.Mutex
	path string
}

// NewMirror creates a mirror at the given file path
func NewMirror(path string) (*Mirror, error) {
	if path == "" {
		return nil, errors.New("mirror path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating mirror directory: %w", err)
	}
	return &Mirror{path: path}, nil
}

// DefaultMirrorPath returns the mirror location under the user config
// directory
func DefaultMirrorPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(dir, "gamebackend", "mirror.json"), nil
}

// Load reads the mirrored state; ErrNoMirror if none exists
func (m *Mirror) Load() (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load()
}

func (m *Mirror) load() (*State, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoMirror
		}
		return nil, fmt.Errorf("reading mirror: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decoding mirror: %w", err)
	}
	return &state, nil
}

// Save overwrites the mirrored state via temp file and rename
func (m *Mirror) Save(state *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.save(state)
}

func (m *Mirror) save(state *State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding mirror: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(m.path), ".mirror-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("writing mirror: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), m.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replacing mirror: %w", err)
	}
	return nil
}

// Reconcile overwrites the mirror from an authoritative server record
func (m *Mirror) Reconcile(serverURL string, record *Record, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.save(&State{
		ServerURL: serverURL,
		Handle:    record.Handle,
		Stats: Stats{
			Level:      record.Level,
			Experience: record.Experience,
			Score:      record.Score,
			Wins:       record.Wins,
			Losses:     record.Losses,
		},
		LastSeenAt: now,
	})
}

// ApplyOutcome updates the mirrored stats for a game outcome: a win
// adds a win and a score point, a loss adds a loss and removes one,
// floored at zero. The updated state is persisted and returned.
func (m *Mirror) ApplyOutcome(won bool, now time.Time) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, err := m.load()
	if err != nil {
		return nil, err
	}

	if won {
		state.Stats.Wins++
		state.Stats.Score++
	} else {
		state.Stats.Losses++
		state.Stats.Score--
		if state.Stats.Score < 0 {
			state.Stats.Score = 0
		}
	}
	state.LastSeenAt = now

	if err := m.save(state); err != nil {
		return nil, err
	}
	return state, nil
}
