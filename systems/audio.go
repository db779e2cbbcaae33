package systems

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/automoto/laser-defender/components"
	cfg "github.com/automoto/laser-defender/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSFX          map[components.SoundID][]byte
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalSFX = map[components.SoundID][]byte{
			components.SoundLaser: synthSweep(cfg.Audio.SampleRate, cfg.Audio.LaserBlipMs,
				cfg.Audio.LaserStartHz, cfg.Audio.LaserEndHz),
			components.SoundMenuSelect: synthSweep(cfg.Audio.SampleRate, 60, 660, 880),
		}
	})
}

// PlaySFX queues a sound effect to be played by UpdateAudio.
func PlaySFX(e *ecs.ECS, id components.SoundID) {
	audioData := getOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, id)
}

// UpdateAudio plays the sound effects queued during the frame.
func UpdateAudio(e *ecs.ECS) {
	audioData := getOrCreateAudio(e)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	if GetOrCreateSettings(e).Muted {
		audioData.PendingSFX = audioData.PendingSFX[:0]
		return
	}

	initGlobalAudio()
	for _, id := range audioData.PendingSFX {
		pcm, ok := globalSFX[id]
		if !ok {
			continue
		}
		player := globalAudioContext.NewPlayerFromBytes(pcm)
		player.SetVolume(cfg.Audio.SFXVolume)
		player.Play()
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	return components.Audio.Get(entry)
}

// synthSweep renders a square-wave pitch sweep as 16-bit little-endian
// stereo PCM with a linear fade out.
func synthSweep(sampleRate, durationMs int, startHz, endHz float64) []byte {
	n := sampleRate * durationMs / 1000
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := startHz + (endHz-startHz)*t
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		v := 0.3
		if phase >= 0.5 {
			v = -0.3
		}
		v *= 1 - t

		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], sample)
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample)
	}
	return buf
}
