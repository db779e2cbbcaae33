package systems

import (
	"errors"
	"testing"

	cfg "github.com/automoto/laser-defender/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items   map[string][]byte
	loadErr error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	m.items[key] = append([]byte(nil), data...)
	return nil
}

func useMemStore(t *testing.T) *memStore {
	t.Helper()
	saved := store
	m := &memStore{items: map[string][]byte{}}
	store = m
	t.Cleanup(func() { store = saved })
	return m
}

func TestSettingsRoundTrip(t *testing.T) {
	useMemStore(t)

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Nil(t, loaded, "nothing saved yet")

	require.NoError(t, SaveSettings(&SavedSettings{Muted: true, Debug: true}))

	loaded, err = LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.True(t, loaded.Muted)
	assert.True(t, loaded.Debug)
	assert.False(t, loaded.Fullscreen)
}

func TestLoadSettingsErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		loadErr error
		wantErr string
	}{
		{"corrupt json", "{not json", nil, "parse settings"},
		{"store failure", "", errors.New("disk gone"), "load settings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := useMemStore(t)
			m.items[settingsKey] = []byte(tt.data)
			m.loadErr = tt.loadErr

			_, err := LoadSettings()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPersistenceWithoutStore(t *testing.T) {
	saved := store
	store = nil
	t.Cleanup(func() { store = saved })

	require.NoError(t, SaveStats(SavedStats{TotalShots: 3}))
	stats, err := LoadStats()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalShots)
}

func TestSessionStatsPersist(t *testing.T) {
	useMemStore(t)
	require.NoError(t, SaveStats(SavedStats{TotalShots: 10, Sessions: 2}))

	e, _ := newTestWorld(t)
	UpdateBoundaries(e)
	StartSession(e)
	assert.Equal(t, 10, GetOrCreateSession(e).LifetimeShots)

	for i := 0; i < 3; i++ {
		frame(e, cfg.ActionFire)
		UpdatePlayer(e)
		frame(e)
		UpdatePlayer(e)
	}
	session := GetOrCreateSession(e)
	assert.Equal(t, 3, session.ShotsFired)
	assert.Equal(t, 13, session.LifetimeShots)

	EndSession(e)

	stats, err := LoadStats()
	require.NoError(t, err)
	assert.Equal(t, SavedStats{TotalShots: 13, Sessions: 3}, stats)
}
