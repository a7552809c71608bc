package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"inflo_backend/internal/logger"
	"inflo_backend/internal/models"
)

// Snapshot is the persisted subset of the store. Loading/error flags and
// creator profiles are deliberately session-only.
type Snapshot struct {
	User             *models.User      `json:"user"`
	IsAuthenticated  bool              `json:"isAuthenticated"`
	Campaigns        []models.Campaign `json:"campaigns"`
	AppliedCampaigns []string          `json:"appliedCampaigns"`
}

// Persister writes snapshots to a single JSON file via temp-file rename so a
// crash mid-write never leaves a truncated snapshot.
type Persister struct {
	path string
}

func NewPersister(path string) *Persister {
	return &Persister{path: path}
}

// Save writes the snapshot. Failures are logged, not returned: persistence
// is best-effort and must never break a state mutation.
func (p *Persister) Save(snap *Snapshot) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		logger.WithError(err).Error("Failed to encode snapshot")
		return
	}

	dir := filepath.Dir(p.path)
	tmp, err := os.CreateTemp(dir, ".inflo-snapshot-*")
	if err != nil {
		logger.WithError(err).Error("Failed to create snapshot temp file")
		return
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		logger.WithError(err).Error("Failed to write snapshot")
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		logger.WithError(err).Error("Failed to close snapshot temp file")
		return
	}
	if err := os.Rename(tmp.Name(), p.path); err != nil {
		os.Remove(tmp.Name())
		logger.WithError(err).Error("Failed to replace snapshot")
	}
}

// Load reads the snapshot. A missing file returns (nil, nil); a corrupt one
// is discarded so the client starts fresh instead of failing to boot.
func (p *Persister) Load() (*Snapshot, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.WithError(err).Warn("Discarding corrupt snapshot", "path", p.path)
		os.Remove(p.path)
		return nil, nil
	}
	return &snap, nil
}

// Remove deletes the snapshot file. Missing file is fine.
func (p *Persister) Remove() error {
	if err := os.Remove(p.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
