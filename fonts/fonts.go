package fonts

import (
	"fmt"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

type FontName string

const (
	Normal FontName = "normal"
	Title  FontName = "title"
	Small  FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// Loaded reports whether a face was registered under name.
func Loaded(name FontName) bool {
	_, ok := fonts[name]
	return ok
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

// Metrics measures text set in a single face. Lines are split on '\n' and
// never wrapped.
type Metrics struct {
	face font.Face
}

// NewMetrics returns metrics for a registered font.
func NewMetrics(name FontName) *Metrics {
	return &Metrics{face: getFont(name)}
}

// NewMetricsForFace wraps an already constructed face.
func NewMetricsForFace(face font.Face) *Metrics {
	return &Metrics{face: face}
}

// Measure returns the width of the widest line and the height of all lines.
func (m *Metrics) Measure(s string) (w, h float64) {
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		lw := float64(font.MeasureString(m.face, line).Ceil())
		if lw > w {
			w = lw
		}
	}
	return w, float64(len(lines)) * m.LineHeight()
}

// LineHeight is the recommended distance between two baselines.
func (m *Metrics) LineHeight() float64 {
	return float64(m.face.Metrics().Height.Ceil())
}

// Ascent is the distance from the top of a line to its baseline.
func (m *Metrics) Ascent() float64 {
	return float64(m.face.Metrics().Ascent.Ceil())
}
