package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/laser-defender/components"
	"github.com/automoto/laser-defender/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const (
	appName     = "laser-defender"
	settingsKey = "settings"
	statsKey    = "stats"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Muted      bool `json:"muted"`
	Fullscreen bool `json:"fullscreen"`
	Debug      bool `json:"debug"`
}

// SavedStats are lifetime counters kept across sessions
type SavedStats struct {
	TotalShots int `json:"totalShots"`
	Sessions   int `json:"sessions"`
}

// itemStore is the part of *gdata.Manager the game uses.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

var persistLog = logger.WithSystem("persistence")

// InitPersistence opens the per-user data directory for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open save data: %w", err)
	}
	store = m
	return nil
}

func loadJSON(key string, v any) (bool, error) {
	if store == nil {
		return false, nil
	}
	data, err := store.LoadItem(key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return true, nil
}

func saveJSON(key string, v any) error {
	if store == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", key, err)
	}
	if err := store.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing has
// been saved yet.
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	found, err := loadJSON(settingsKey, &settings)
	if err != nil || !found {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveJSON(settingsKey, s)
}

// SaveCurrentSettings saves the settings held by the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	err := SaveSettings(&SavedSettings{
		Muted:      s.Muted,
		Fullscreen: s.Fullscreen,
		Debug:      s.Debug,
	})
	if err != nil {
		persistLog.WithError(err).Warn("could not save settings")
	}
}

// LoadStats loads lifetime counters, returning zero values when none exist.
func LoadStats() (SavedStats, error) {
	var stats SavedStats
	_, err := loadJSON(statsKey, &stats)
	return stats, err
}

// SaveStats writes lifetime counters to disk.
func SaveStats(stats SavedStats) error {
	return saveJSON(statsKey, stats)
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before scenes are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	globalMuted = saved.Muted
	globalDebug = saved.Debug
	ebiten.SetFullscreen(saved.Fullscreen)
}
