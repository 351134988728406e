package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData tracks elapsed real time since the first update (singleton component).
type ClockData struct {
	Start   time.Time
	Ticks   int
	Elapsed float64 // seconds
}

var Clock = donburi.NewComponentType[ClockData]()
