package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func loadTestFont(t *testing.T) *Metrics {
	t.Helper()
	require.NoError(t, LoadFontWithSize(Normal, goregular.TTF, 12))
	return NewMetrics(Normal)
}

func TestMetricsMeasure(t *testing.T) {
	m := loadTestFont(t)
	lh := m.LineHeight()
	require.Greater(t, lh, 0.0)

	w, h := m.Measure("")
	assert.Equal(t, 0.0, w)
	assert.Equal(t, lh, h)

	short, _ := m.Measure("Yes")
	long, _ := m.Measure("Yes, definitely")
	assert.Greater(t, short, 0.0)
	assert.Greater(t, long, short)

	w, h = m.Measure("Yes\nYes, definitely")
	assert.Equal(t, long, w, "width is the widest line")
	assert.Equal(t, 2*lh, h)
}

func TestMetricsAscent(t *testing.T) {
	m := loadTestFont(t)
	assert.Greater(t, m.Ascent(), 0.0)
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	err := LoadFont(FontName("broken"), []byte("not a font"))
	assert.Error(t, err)
	assert.False(t, Loaded(FontName("broken")))
}

func TestGetUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
