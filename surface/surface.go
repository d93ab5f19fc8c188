// Package surface is the in-process reference executor: it runs a command
// stream against a fogleman/gg raster context and produces the round-trip
// value batch (text metrics, stored values) the next frame's render
// consumes.
package surface

import (
	"encoding/json"
	"image"
	col "image/color"
	"image/draw"
	"math"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
	fnt "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"gocanvas/command"
	"gocanvas/font"
	"gocanvas/texture"
)

// paintState mirrors the fill/stroke styles and font across save/restore.
// gg keeps a single current color, while the canvas model scopes fill and
// stroke styles independently, so the surface tracks them itself.
type paintState struct {
	fill   col.Color
	stroke col.Color
	face   fnt.Face
}

type Surface struct {
	ctx           *gg.Context
	width, height int

	paint paintState
	stack []paintState

	store      map[string]json.RawMessage
	storeOrder []string
	pending    []command.CanvasValue

	textures map[string]image.Image
}

func New(width, height int) *Surface {
	return &Surface{
		ctx:      gg.NewContext(width, height),
		width:    width,
		height:   height,
		paint:    paintState{fill: col.Black, stroke: col.Black},
		store:    map[string]json.RawMessage{},
		textures: map[string]image.Image{},
	}
}

func (s *Surface) Image() image.Image { return s.ctx.Image() }

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

// SetFontFace overrides the face used for text drawing and measurement;
// nil restores the gg default (basicfont).
func (s *Surface) SetFontFace(face fnt.Face) { s.paint.face = face }

// AddTexture makes an image resolvable by DrawImage commands.
func (s *Surface) AddTexture(name string, img image.Image) {
	s.textures[name] = img
}

// AttachTextures registers the images behind a set of texture handles.
func (s *Surface) AttachTextures(textures ...*texture.Texture) {
	for _, t := range textures {
		if t.Image() != nil {
			s.textures[t.Name()] = t.Image()
		}
	}
}

// Execute runs one frame's command stream in order. Unknown Field and Call
// names are ignored; every command the surface does understand honors the
// save/restore stack semantics of the drawing-context model.
func (s *Surface) Execute(cmds []command.Command) {
	for _, cmd := range cmds {
		s.execute(cmd)
	}
}

func (s *Surface) execute(cmd command.Command) {
	switch c := cmd.(type) {
	case command.Save:
		s.ctx.Push()
		s.stack = append(s.stack, s.paint)
	case command.Restore:
		s.ctx.Pop()
		if n := len(s.stack); n > 0 {
			s.paint = s.stack[n-1]
			s.stack = s.stack[:n-1]
		}
	case command.BeginPath:
		s.ctx.ClearPath()
	case command.MoveTo:
		s.ctx.MoveTo(c.X, c.Y)
	case command.LineTo:
		s.ctx.LineTo(c.X, c.Y)
	case command.Arc:
		a1, a2 := c.StartAngle, c.EndAngle
		if c.Counterclockwise && a2 > a1 {
			a2 -= 2 * math.Pi
		} else if !c.Counterclockwise && a2 < a1 {
			a2 += 2 * math.Pi
		}
		s.ctx.DrawArc(c.X, c.Y, c.Radius, a1, a2)
	case command.ArcTo:
		// gg has no arcTo; a quadratic through the control point is close
		// enough for the reference executor.
		s.ctx.QuadraticTo(c.X1, c.Y1, c.X2, c.Y2)
	case command.BezierCurveTo:
		s.ctx.CubicTo(c.CP1X, c.CP1Y, c.CP2X, c.CP2Y, c.X, c.Y)
	case command.QuadraticCurveTo:
		s.ctx.QuadraticTo(c.CPX, c.CPY, c.X, c.Y)
	case command.RectPath:
		s.ctx.DrawRectangle(c.X, c.Y, c.Width, c.Height)
	case command.RoundRectPath:
		// gg supports one radius; the first entry governs all corners here.
		radius := 0.0
		if len(c.Radii) > 0 {
			radius = c.Radii[0]
		}
		s.ctx.DrawRoundedRectangle(c.X, c.Y, c.Width, c.Height, radius)
	case command.Fill:
		s.ctx.SetColor(s.paint.fill)
		s.ctx.FillPreserve()
	case command.Stroke:
		s.ctx.SetColor(s.paint.stroke)
		s.ctx.StrokePreserve()
	case command.FillStyle:
		s.paint.fill = ParseColor(c.Style)
	case command.StrokeStyle:
		s.paint.stroke = ParseColor(c.Style)
	case command.FillText:
		s.drawText(c.Text, c.X, c.Y, c.MaxWidth, s.paint.fill)
	case command.StrokeText:
		// Raster text outlines are not available through gg; stroked text
		// draws as a fill in the stroke style.
		s.drawText(c.Text, c.X, c.Y, c.MaxWidth, s.paint.stroke)
	case command.ClearRect:
		s.clearRect(c)
	case command.DrawImage:
		s.drawImage(c)
	case command.MeasureText:
		width := font.Measure(s.face(), c.Text)
		s.pending = append(s.pending, command.NewTextMetricsValue(c.Label, width))
	case command.Store:
		raw, err := json.Marshal(c.Value)
		if err != nil {
			return
		}
		if _, exists := s.store[c.Label]; !exists {
			s.storeOrder = append(s.storeOrder, c.Label)
		}
		s.store[c.Label] = raw
	case command.Field:
		s.setField(c)
	case command.Call:
		s.applyCall(c)
	}
}

// Flush hands back the value batch for the next frame: each text metric
// measured since the last flush exactly once, and every stored value on
// every flush (the surface is the store of record across frames).
func (s *Surface) Flush() []command.CanvasValue {
	values := s.pending
	s.pending = nil
	for _, label := range s.storeOrder {
		values = append(values, command.NewStoreValue(label, s.store[label]))
	}
	return values
}

func (s *Surface) face() fnt.Face {
	if s.paint.face != nil {
		return s.paint.face
	}
	return basicfont.Face7x13
}

func (s *Surface) drawText(text string, x, y, maxWidth float64, c col.Color) {
	s.ctx.SetColor(c)
	s.ctx.SetFontFace(s.face())
	width := font.Measure(s.face(), text)
	if maxWidth > 0 && width > maxWidth {
		// Condense horizontally to fit, as the drawing-context contract
		// specifies for a constrained maxWidth.
		s.ctx.Push()
		s.ctx.Translate(x, y)
		s.ctx.Scale(maxWidth/width, 1)
		s.ctx.DrawString(text, 0, 0)
		s.ctx.Pop()
		return
	}
	s.ctx.DrawString(text, x, y)
}

func (s *Surface) clearRect(c command.ClearRect) {
	img, ok := s.ctx.Image().(*image.RGBA)
	if !ok {
		return
	}
	rect := image.Rect(int(c.X), int(c.Y), int(c.X+c.Width), int(c.Y+c.Height))
	draw.Draw(img, rect, image.Transparent, image.Point{}, draw.Src)
}

func (s *Surface) drawImage(c command.DrawImage) {
	src, ok := s.textures[c.Texture]
	if !ok {
		return
	}
	dst, ok := s.ctx.Image().(*image.RGBA)
	if !ok {
		return
	}
	bounds := src.Bounds()
	srcRect := image.Rect(
		bounds.Min.X+int(c.Sx), bounds.Min.Y+int(c.Sy),
		bounds.Min.X+int(c.Sx+c.Sw), bounds.Min.Y+int(c.Sy+c.Sh),
	).Intersect(bounds)
	dstRect := image.Rect(int(c.Dx), int(c.Dy), int(c.Dx+c.Dw), int(c.Dy+c.Dh))
	xdraw.ApproxBiLinear.Scale(dst, dstRect, src, srcRect, xdraw.Over, nil)
}

func (s *Surface) setField(c command.Field) {
	switch c.Name {
	case "lineWidth":
		if w, ok := floatValue(c.Value); ok {
			s.ctx.SetLineWidth(w)
		}
	case "font":
		s.setFont(c.Value)
	}
}

// setFont understands "<size>px <family>" specifications; anything else is
// treated as a bare family name at the current default size.
func (s *Surface) setFont(value any) {
	spec, ok := value.(string)
	if !ok {
		return
	}
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return
	}
	size := 16.0
	family := spec
	if strings.HasSuffix(fields[0], "px") {
		if v, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], "px"), 64); err == nil {
			size = v
			family = strings.Join(fields[1:], " ")
		}
	}
	s.paint.face = font.Get(family, size, "", "")
}

func (s *Surface) applyCall(c command.Call) {
	args := floatArgs(c.Args)
	switch c.Name {
	case "translate":
		if len(args) >= 2 {
			s.ctx.Translate(args[0], args[1])
		}
	case "scale":
		if len(args) >= 2 {
			s.ctx.Scale(args[0], args[1])
		}
	case "rotate":
		if len(args) >= 1 {
			s.ctx.Rotate(args[0])
		}
	}
}

func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

func floatArgs(args []any) []float64 {
	out := make([]float64, 0, len(args))
	for _, a := range args {
		if f, ok := floatValue(a); ok {
			out = append(out, f)
		}
	}
	return out
}
