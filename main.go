package main

import (
	"errors"
	"image"
	"log"
	"os"

	"github.com/automoto/glassdialog/config"
	"github.com/automoto/glassdialog/fonts"
	"github.com/automoto/glassdialog/scenes"
	"github.com/automoto/glassdialog/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// RequestQuit ends the game after the current update
func (g *Game) RequestQuit() {
	g.quit = true
}

func NewGame(prompt string) (*Game, error) {
	err := errors.Join(
		fonts.LoadFontWithSize(fonts.Normal, goregular.TTF, 14),
		fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 24),
		fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 12),
	)
	if err != nil {
		return nil, err
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewTitleScene(g, prompt)

	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func newLogger(level string) (*zap.SugaredLogger, error) {
	loggerCfg := zap.NewDevelopmentConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	loggerCfg.Level = lvl
	l, err := loggerCfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

func main() {
	fs := pflag.NewFlagSet("glassdialog", pflag.ExitOnError)
	fs.IntVar(&config.C.Width, "width", config.C.Width, "Logical screen width")
	fs.IntVar(&config.C.Height, "height", config.C.Height, "Logical screen height")
	fs.StringVar(&config.Debug.LogLevel, "log-level", config.Debug.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&config.Debug.WriteTheme, "write-theme", false, "Save the active dialog theme so it can be edited")
	prompt := fs.String("prompt", "", "Question asked from the title screen")
	sfxVolume := fs.Float64("sfx-volume", config.Audio.DefaultSFXVol, "UI sound volume (0 mutes)")
	_ = fs.Parse(os.Args[1:])

	logger, err := newLogger(config.Debug.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	systems.SetLogger(logger)
	systems.SetSFXVolume(*sfxVolume)

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.Title.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load a saved theme
	if err := systems.InitPersistence("glassdialog"); err != nil {
		logger.Warnw("could not initialize persistence", "error", err)
	}
	saved, err := systems.LoadTheme()
	if err != nil {
		logger.Warnw("could not load dialog theme", "error", err)
	}
	systems.ApplySavedTheme(&config.Dialog, saved)
	if config.Debug.WriteTheme {
		if err := systems.SaveTheme(systems.ThemeFromConfig(config.Dialog)); err != nil {
			logger.Warnw("could not save dialog theme", "error", err)
		}
	}

	game, err := NewGame(*prompt)
	if err != nil {
		logger.Fatalw("could not create game", "error", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatalw("game exited", "error", err)
	}
}
