package systems

import (
	"encoding/json"
	"testing"

	"github.com/automoto/laser-defender/components"
	cfg "github.com/automoto/laser-defender/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newSettingsWorld(t *testing.T) (*ecs.ECS, *components.SettingsData) {
	t.Helper()
	savedMuted, savedDebug := globalMuted, globalDebug
	t.Cleanup(func() { globalMuted, globalDebug = savedMuted, savedDebug })

	e := ecs.NewECS(donburi.NewWorld())
	entry := e.World.Entry(e.World.Create(components.Settings))
	return e, components.Settings.Get(entry)
}

func TestUpdateSettingsToggles(t *testing.T) {
	tests := []struct {
		name      string
		action    cfg.ActionID
		wantMuted bool
		wantDebug bool
	}{
		{"mute", cfg.ActionToggleMute, true, false},
		{"debug overlay", cfg.ActionToggleDebug, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := useMemStore(t)
			e, settings := newSettingsWorld(t)

			frame(e, tt.action)
			UpdateSettings(e)

			assert.Equal(t, tt.wantMuted, settings.Muted)
			assert.Equal(t, tt.wantDebug, settings.Debug)
			assert.Equal(t, tt.wantMuted, globalMuted)
			assert.Equal(t, tt.wantDebug, globalDebug)

			var saved SavedSettings
			require.NoError(t, json.Unmarshal(m.items[settingsKey], &saved))
			assert.Equal(t, SavedSettings{Muted: tt.wantMuted, Debug: tt.wantDebug}, saved)
		})
	}
}

func TestUpdateSettingsHeldKeyTogglesOnce(t *testing.T) {
	useMemStore(t)
	e, settings := newSettingsWorld(t)

	frame(e, cfg.ActionToggleMute)
	UpdateSettings(e)
	frame(e, cfg.ActionToggleMute)
	UpdateSettings(e)
	assert.True(t, settings.Muted)

	frame(e)
	UpdateSettings(e)
	frame(e, cfg.ActionToggleMute)
	UpdateSettings(e)
	assert.False(t, settings.Muted)
}

func TestUpdateSettingsNoChangeNoSave(t *testing.T) {
	m := useMemStore(t)
	e, _ := newSettingsWorld(t)

	frame(e)
	UpdateSettings(e)

	assert.Empty(t, m.items)
}
