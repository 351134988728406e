package main

import (
	"testing"

	"github.com/automoto/glassdialog/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingScene struct{ updates int }

func (s *countingScene) Update()                   { s.updates++ }
func (s *countingScene) Draw(screen *ebiten.Image) {}

func TestGameTerminatesAfterQuitRequest(t *testing.T) {
	scene := &countingScene{}
	g := &Game{scene: scene}

	require.NoError(t, g.Update())
	g.RequestQuit()
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.Equal(t, 2, scene.updates)
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = newLogger("loud")
	assert.Error(t, err)
}

func TestNewGameLoadsTitleFonts(t *testing.T) {
	g, err := NewGame("")
	require.NoError(t, err)
	assert.NotNil(t, g.scene)
	for _, name := range []fonts.FontName{fonts.Normal, fonts.Title, fonts.Small} {
		assert.True(t, fonts.Loaded(name), "font %s", name)
	}
}
