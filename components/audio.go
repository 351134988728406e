package components

import (
	cfg "github.com/automoto/glassdialog/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects requested during a frame (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
