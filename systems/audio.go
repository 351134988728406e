package systems

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/automoto/glassdialog/components"
	cfg "github.com/automoto/glassdialog/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSFX          map[cfg.SoundID][]byte
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context and synthesizes all
// UI tones (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalSFX = make(map[cfg.SoundID][]byte, len(cfg.Audio.Tones))
		for id, tone := range cfg.Audio.Tones {
			globalSFX[id] = SynthesizeTone(cfg.Audio.SampleRate, tone)
		}
	})
}

// UpdateAudio plays the sound effects queued this frame
func UpdateAudio(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	initGlobalAudio()
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	buf, ok := globalSFX[soundID]
	if !ok {
		return
	}

	player := globalAudioContext.NewPlayerFromBytes(buf)
	player.SetVolume(globalSFXVolume * cfg.Audio.Tones[soundID].Volume)
	player.Play()
}

// PlaySFX queues a sound effect for the next UpdateAudio
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the sound effect volume, clamped to 0.0 - 1.0.
// Zero mutes the UI sounds.
func SetSFXVolume(volume float64) {
	globalSFXVolume = min(max(volume, 0), 1)
}

// SFXVolume returns the current sound effect volume
func SFXVolume() float64 {
	return globalSFXVolume
}

// SynthesizeTone renders a sine blip with a linear fade out as 16-bit
// little-endian stereo PCM, the format expected by audio.Context.
func SynthesizeTone(sampleRate int, tone cfg.ToneConfig) []byte {
	samples := sampleRate * tone.DurationMS / 1000
	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		envelope := 1 - float64(i)/float64(samples)
		v := math.Sin(2*math.Pi*tone.Frequency*float64(i)/float64(sampleRate)) * envelope
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}

// GetOrCreateAudio returns the singleton Audio component, creating if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	return components.Audio.Get(entry)
}
