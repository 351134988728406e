package systems

import (
	"testing"
	"time"

	"github.com/automoto/glassdialog/components"
	cfg "github.com/automoto/glassdialog/config"
	"github.com/automoto/glassdialog/dialog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap/zaptest"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	SetLogger(zaptest.NewLogger(t).Sugar())
	t.Cleanup(func() { SetLogger(nil) })
	return ecs.NewECS(donburi.NewWorld())
}

// press simulates one frame in which exactly the given actions are held.
func press(e *ecs.ECS, ids ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, id := range ids {
		input.Current[id] = true
	}
}

func pendingSFX(e *ecs.ECS) []cfg.SoundID {
	return GetOrCreateAudio(e).PendingSFX
}

func TestOpenDialogRejectsEmptyDialog(t *testing.T) {
	e := newTestECS(t)
	err := OpenDialog(e, dialog.New("Nothing to choose"), nil)
	assert.ErrorIs(t, err, ErrNoButtons)
	assert.False(t, IsDialogOpen(e))
}

func TestOpenDialogRejectsNil(t *testing.T) {
	e := newTestECS(t)
	err := OpenDialog(e, nil, func(int) {})
	assert.ErrorIs(t, err, ErrNilDialog)
	assert.False(t, IsDialogOpen(e))
}

func TestOpenDialogSingleSlot(t *testing.T) {
	e := newTestECS(t)
	require.NoError(t, OpenDialog(e, dialog.New("First?", "Yes", "No"), nil))
	err := OpenDialog(e, dialog.New("Second?", "Yes", "No"), nil)
	assert.ErrorIs(t, err, ErrDialogActive)
	assert.Equal(t, "First?", GetOrCreateDialogHost(e).Active.Text())
}

func TestUpdateDialogReleasesBeforeCallback(t *testing.T) {
	e := newTestECS(t)
	d := dialog.New("Quit game?", "Yes", "No")

	var chosen []int
	require.NoError(t, OpenDialog(e, d, func(index int) {
		assert.False(t, IsDialogOpen(e), "slot is cleared before the callback runs")
		chosen = append(chosen, index)
	}))

	press(e, cfg.ActionMenuLeft)
	UpdateDialog(e)
	assert.Equal(t, 0, d.Selected())
	assert.Empty(t, pendingSFX(e), "clamped move makes no sound")

	press(e, cfg.ActionMenuRight)
	UpdateDialog(e)
	assert.Equal(t, 1, d.Selected())
	assert.Equal(t, []cfg.SoundID{cfg.SoundMenuNavigate}, pendingSFX(e))

	press(e, cfg.ActionMenuRight)
	UpdateDialog(e)
	assert.Equal(t, 1, d.Selected())

	press(e, cfg.ActionMenuSelect)
	UpdateDialog(e)
	assert.Equal(t, []int{1}, chosen)
	assert.False(t, IsDialogOpen(e))
	assert.True(t, DialogBlocksInput(e), "the confirming frame stays blocked")
	assert.Equal(t, cfg.SoundMenuSelect, pendingSFX(e)[len(pendingSFX(e))-1])

	// Holding the confirm key does nothing further.
	press(e, cfg.ActionMenuSelect)
	UpdateDialog(e)
	assert.Equal(t, []int{1}, chosen)
	assert.False(t, DialogBlocksInput(e))
}

func TestUpdateDialogWithoutDialog(t *testing.T) {
	e := newTestECS(t)
	press(e, cfg.ActionMenuSelect)
	UpdateDialog(e)
	assert.False(t, DialogBlocksInput(e))
	assert.Empty(t, pendingSFX(e))
}

func TestUpdateDialogFiresOnSelectOnce(t *testing.T) {
	e := newTestECS(t)
	d := dialog.New("Ok?", "Ok")
	count := 0
	d.OnSelect = func(int) { count++ }
	require.NoError(t, OpenDialog(e, d, nil))

	for i := 0; i < 3; i++ {
		press(e, cfg.ActionAttack)
		UpdateDialog(e)
		press(e)
		UpdateDialog(e)
	}
	assert.Equal(t, 1, count)
}

type quitRecorder struct{ quit bool }

func (q *quitRecorder) RequestQuit() { q.quit = true }

func TestTitleQuitFlow(t *testing.T) {
	for _, tc := range []struct {
		name     string
		moves    []cfg.ActionID
		expected bool
	}{
		{"default answer keeps playing", nil, false},
		{"yes quits", []cfg.ActionID{cfg.ActionMenuRight}, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestECS(t)
			q := &quitRecorder{}
			updateTitle := NewUpdateTitle(q)
			frame := func(ids ...cfg.ActionID) {
				press(e, ids...)
				UpdateDialog(e)
				updateTitle(e)
			}

			frame(cfg.ActionMenuBack)
			require.True(t, IsDialogOpen(e))
			assert.Equal(t, cfg.Title.QuitPrompt, GetOrCreateDialogHost(e).Active.Text())

			for _, id := range tc.moves {
				frame()
				frame(id)
			}
			frame()
			frame(cfg.ActionMenuSelect)

			assert.False(t, IsDialogOpen(e), "confirm does not reopen a dialog")
			assert.Equal(t, tc.expected, q.quit)
		})
	}
}

func TestTitlePromptRecordsAnswer(t *testing.T) {
	e := newTestECS(t)
	updateTitle := NewUpdateTitle(&quitRecorder{})
	frame := func(ids ...cfg.ActionID) {
		press(e, ids...)
		UpdateDialog(e)
		updateTitle(e)
	}

	title := GetOrCreateTitle(e)
	title.Prompt = "Save before leaving?"

	frame(cfg.ActionMenuSelect)
	require.True(t, IsDialogOpen(e))
	assert.Equal(t, "Save before leaving?", GetOrCreateDialogHost(e).Active.Text())

	frame()
	frame(cfg.ActionMenuRight, cfg.ActionMenuSelect)
	assert.Equal(t, cfg.Title.PromptButtons[1], title.LastAnswer)
	assert.Equal(t, 1, title.Answers)
	assert.False(t, IsDialogOpen(e))
}

func TestClockTracksRealTime(t *testing.T) {
	e := newTestECS(t)
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := start
	clockNow = func() time.Time { return now }
	t.Cleanup(func() { clockNow = time.Now })

	UpdateClock(e)
	assert.Equal(t, 0.0, Elapsed(e))

	// Ticks are irregular; elapsed follows the wall clock.
	for _, step := range []time.Duration{16 * time.Millisecond, 250 * time.Millisecond, 734 * time.Millisecond} {
		now = now.Add(step)
		UpdateClock(e)
	}
	assert.InDelta(t, 1.0, Elapsed(e), 1e-9)
	assert.Equal(t, 4, GetOrCreateClock(e).Ticks)

	// A clock stepping backwards never rewinds the pulse.
	now = start
	UpdateClock(e)
	assert.InDelta(t, 1.0, Elapsed(e), 1e-9)
}

func TestTitleHint(t *testing.T) {
	assert.Contains(t, GetTitleHint(components.InputKeyboard, false), "Enter")
	assert.Contains(t, GetTitleHint(components.InputXbox, true), "A: Confirm")
	assert.Contains(t, GetTitleHint(components.InputPlayStation, true), "Cross")
}

func TestControllerTypeFromName(t *testing.T) {
	assert.Equal(t, components.InputPlayStation, controllerTypeFromName("Sony DualSense Wireless Controller"))
	assert.Equal(t, components.InputPlayStation, controllerTypeFromName("PS4 Controller"))
	assert.Equal(t, components.InputXbox, controllerTypeFromName("Xbox Wireless Controller"))
	assert.Equal(t, components.InputXbox, controllerTypeFromName("8BitDo Pro 2"))
}
