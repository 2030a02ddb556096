package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"flexarea/log"
)

const (
	StateFileName = "state.json"
)

// HistoryStorage handles sent-message history operations
type HistoryStorage interface {
	// SaveHistory saves the raw history data
	SaveHistory(historyJSON json.RawMessage) error
	// GetHistory returns the raw history data
	GetHistory() json.RawMessage
	// DeleteAllHistory removes all stored history
	DeleteAllHistory() error
}

// DraftState handles the unsent composer draft
type DraftState interface {
	// GetDraft returns the saved draft text
	GetDraft() string
	// SetDraft updates the saved draft text
	SetDraft(draft string) error
}

// StateManager combines history storage and draft management
type StateManager interface {
	HistoryStorage
	DraftState
}

// State represents the application state that persists between sessions
type State struct {
	// Draft is the composer's unsent text
	Draft string `json:"draft"`
	// HistoryData stores the serialized sent messages as raw JSON
	HistoryData json.RawMessage `json:"history"`

	// lastModTime tracks when we last read the state file (not serialized)
	lastModTime time.Time `json:"-"`
}

// DefaultState returns the default state
func DefaultState() *State {
	return &State{
		Draft:       "",
		HistoryData: json.RawMessage("[]"),
	}
}

// LoadState loads the state from disk. If it cannot be done, we return the default state.
// This function acquires a shared lock to allow concurrent reads.
func LoadState() *State {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultState()
	}

	statePath := filepath.Join(configDir, StateFileName)

	// Acquire shared lock for reading
	lock := NewFileLock(statePath)
	if err := lock.RLock(); err != nil {
		log.WarningLog.Printf("failed to acquire read lock: %v", err)
		// Continue without lock - better to have stale data than fail
	} else {
		defer lock.Unlock()
	}

	// Get file mod time before reading
	var modTime time.Time
	if info, err := os.Stat(statePath); err == nil {
		modTime = info.ModTime()
	}

	data, err := os.ReadFile(statePath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create and save default state if file doesn't exist
			defaultState := DefaultState()
			defaultState.lastModTime = time.Now()
			if saveErr := SaveState(defaultState); saveErr != nil {
				log.WarningLog.Printf("failed to save default state: %v", saveErr)
			}
			return defaultState
		}

		log.WarningLog.Printf("failed to get state file: %v", err)
		return DefaultState()
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		log.ErrorLog.Printf("failed to parse state file: %v", err)
		return DefaultState()
	}

	state.lastModTime = modTime
	return &state
}

// SaveState saves the state to disk.
// This function acquires an exclusive lock to prevent concurrent writes.
func SaveState(state *State) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	statePath := filepath.Join(configDir, StateFileName)

	// Acquire exclusive lock for writing
	lock := NewFileLock(statePath)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	defer lock.Unlock()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(statePath, data, 0644); err != nil {
		return err
	}

	// Update lastModTime after successful write
	if info, err := os.Stat(statePath); err == nil {
		state.lastModTime = info.ModTime()
	}

	return nil
}

// HistoryStorage interface implementation

// SaveHistory saves the raw history data
func (s *State) SaveHistory(historyJSON json.RawMessage) error {
	s.HistoryData = historyJSON
	return SaveState(s)
}

// GetHistory returns the raw history data
func (s *State) GetHistory() json.RawMessage {
	return s.HistoryData
}

// DeleteAllHistory removes all stored history
func (s *State) DeleteAllHistory() error {
	s.HistoryData = json.RawMessage("[]")
	return SaveState(s)
}

// DraftState interface implementation

// GetDraft returns the saved draft text
func (s *State) GetDraft() string {
	return s.Draft
}

// SetDraft updates the saved draft text
func (s *State) SetDraft(draft string) error {
	s.Draft = draft
	return SaveState(s)
}

// State sync methods

// GetLastModTime returns the modification time when this state was last read from disk.
func (s *State) GetLastModTime() time.Time {
	return s.lastModTime
}

// GetStateModTime returns the current modification time of the state file on disk.
func GetStateModTime() (time.Time, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return time.Time{}, err
	}

	statePath := filepath.Join(configDir, StateFileName)
	info, err := os.Stat(statePath)
	if err != nil {
		return time.Time{}, err
	}

	return info.ModTime(), nil
}

// NeedsRefresh checks if the state file has been modified since the given time.
// Returns true if the file has been modified and should be refreshed.
func NeedsRefresh(since time.Time) bool {
	modTime, err := GetStateModTime()
	if err != nil {
		return false
	}
	return modTime.After(since)
}

// RefreshFromDisk reloads the state from disk if it has been modified.
// Returns true if the state was refreshed, false if no refresh was needed.
func (s *State) RefreshFromDisk() (bool, error) {
	if !NeedsRefresh(s.lastModTime) {
		return false, nil
	}

	configDir, err := GetConfigDir()
	if err != nil {
		return false, fmt.Errorf("failed to get config directory: %w", err)
	}

	statePath := filepath.Join(configDir, StateFileName)

	// Acquire shared lock for reading
	lock := NewFileLock(statePath)
	if err := lock.RLock(); err != nil {
		return false, fmt.Errorf("failed to acquire read lock: %w", err)
	}
	defer lock.Unlock()

	// Get current mod time
	info, err := os.Stat(statePath)
	if err != nil {
		return false, fmt.Errorf("failed to stat state file: %w", err)
	}

	data, err := os.ReadFile(statePath)
	if err != nil {
		return false, fmt.Errorf("failed to read state file: %w", err)
	}

	var newState State
	if err := json.Unmarshal(data, &newState); err != nil {
		return false, fmt.Errorf("failed to parse state file: %w", err)
	}

	// Update this state with the new data
	s.Draft = newState.Draft
	s.HistoryData = newState.HistoryData
	s.lastModTime = info.ModTime()

	return true, nil
}
