package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// ToneConfig describes a synthesized blip
type ToneConfig struct {
	Frequency  float64 // Hz
	DurationMS int
	Volume     float64 // 0.0 - 1.0, multiplied with the SFX volume
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Tones         map[SoundID]ToneConfig
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		Tones: map[SoundID]ToneConfig{
			SoundMenuNavigate: {Frequency: 660, DurationMS: 40, Volume: 0.3},
			SoundMenuSelect:   {Frequency: 880, DurationMS: 90, Volume: 0.4},
		},
	}
}
