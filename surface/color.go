package surface

import (
	col "image/color"

	"github.com/mazznoer/csscolorparser"
)

var colorCache = map[string]col.Color{}

// ParseColor resolves a CSS style string to a concrete color. Styles repeat
// heavily across frames, so parses are cached. An unparseable style falls
// back to black rather than erroring, matching the executor's forgiving
// contract.
func ParseColor(style string) col.Color {
	if cached, ok := colorCache[style]; ok {
		return cached
	}
	parsed, err := csscolorparser.Parse(style)
	if err != nil {
		return col.Black
	}
	r, g, b, a := parsed.RGBA255()
	c := col.RGBA{r, g, b, a}
	colorCache[style] = c
	return c
}
