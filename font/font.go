// Package font caches system font faces and exposes the 26.6 fixed-point
// metric helpers the executor measures text with.
package font

import (
	"fmt"
	"math"
	"strings"

	"github.com/adrg/sysfont"
	"github.com/fogleman/gg"
	fnt "golang.org/x/image/font"
)

var (
	finder *sysfont.Finder
	cache  = map[Key]fnt.Face{}
)

type Key struct {
	Family string
	Size   float64
	Weight string
	Style  string
}

// Get returns a cached face for the query, matching through the system
// font database on first use. Font loading failures panic: a drawing
// surface without a usable font cannot do anything sensible.
func Get(family string, size float64, weight, style string) fnt.Face {
	key := Key{Family: family, Size: size, Weight: weight, Style: style}
	if face, exists := cache[key]; exists {
		return face
	}

	if finder == nil {
		finder = sysfont.NewFinder(nil)
	}
	query := strings.TrimSpace(family + " " + weight + " " + style)
	match := finder.Match(query)
	face, err := gg.LoadFontFace(match.Filename, size)
	if err != nil {
		panic(fmt.Sprint("Error loading font: ", match.Filename, ": ", err))
	}

	cache[key] = face
	return face
}

// Measure returns the rendered advance width of text in pixels.
func Measure(face fnt.Face, text string) float64 {
	return math.Ceil(float64(fnt.MeasureString(face, text)) / 64.0)
}

func Linespace(face fnt.Face) float64 {
	// note: without the scaling factor, the lines are too narrow
	return math.Ceil(float64(face.Metrics().Height) / 64.0 * 96 / 72)
}

func Ascent(face fnt.Face) float64 {
	return float64(face.Metrics().Ascent) / 64.0
}

func Descent(face fnt.Face) float64 {
	return float64(face.Metrics().Descent) / 64.0
}
