package systems

import (
	"time"

	"github.com/automoto/glassdialog/components"
	"github.com/yohamta/donburi/ecs"
)

// clockNow is replaced in tests.
var clockNow = time.Now

// UpdateClock records the wall time elapsed since the first tick.
func UpdateClock(e *ecs.ECS) {
	AdvanceClock(GetOrCreateClock(e), clockNow())
}

// AdvanceClock sets the clock to now. The first call starts it at zero.
func AdvanceClock(c *components.ClockData, now time.Time) {
	if c.Start.IsZero() {
		c.Start = now
	}
	c.Ticks++
	c.Elapsed = max(now.Sub(c.Start).Seconds(), c.Elapsed)
}

// Elapsed returns the seconds since the clock was started.
func Elapsed(e *ecs.ECS) float64 {
	return GetOrCreateClock(e).Elapsed
}

// GetOrCreateClock returns the singleton Clock component, creating if needed
func GetOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
