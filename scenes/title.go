package scenes

import (
	"sync"

	"github.com/automoto/glassdialog/components"
	cfg "github.com/automoto/glassdialog/config"
	"github.com/automoto/glassdialog/systems"
	"github.com/automoto/glassdialog/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// layerDialog draws the dialog above anything the title scene renders
const layerDialog ecs.LayerID = ecs.LayerDefault + 1

// TitleScene shows the title screen and hosts its dialogs
type TitleScene struct {
	ecs     *ecs.ECS
	titleUI *ui.TitleUI
	quitter systems.Quitter
	prompt  string
	once    sync.Once
}

// NewTitleScene creates a new title scene. An empty prompt uses the configured one.
func NewTitleScene(q systems.Quitter, prompt string) *TitleScene {
	return &TitleScene{quitter: q, prompt: prompt}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()

	input, _ := components.Input.First(ts.ecs.World)
	method := components.Input.Get(input).LastInputMethod
	ts.titleUI.Update(method, systems.IsDialogOpen(ts.ecs))
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Title.BackgroundColor)

	if ts.ecs == nil {
		return
	}
	ts.titleUI.UI.Draw(screen)
	ts.ecs.Draw(screen)
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	title := systems.GetOrCreateTitle(ts.ecs)
	if ts.prompt != "" {
		title.Prompt = ts.prompt
	}
	ts.titleUI = ui.NewTitleUI(title)

	// Input and time first, dialog before the title so it owns the confirm press
	ts.ecs.AddSystem(systems.UpdateInput)
	ts.ecs.AddSystem(systems.UpdateClock)
	ts.ecs.AddSystem(systems.UpdateDialog)
	ts.ecs.AddSystem(systems.NewUpdateTitle(ts.quitter))
	ts.ecs.AddSystem(systems.UpdateAudio)

	ts.ecs.AddRenderer(layerDialog, systems.DrawDialog)
}
