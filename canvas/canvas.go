// Package canvas compiles a declarative tree of renderables into the
// ordered command stream a 2D drawing context executes. The caller
// describes what to draw; rendering the tree each frame with whatever
// round-trip values have arrived so far produces the imperative command
// batch, including the measure/store negotiation that auto-wrapped text
// needs with the executor.
package canvas

import (
	"fmt"

	"gocanvas/command"
	"gocanvas/texture"
)

// Renderable is one immutable drawing unit: raw prefix commands (the
// escape hatch settings lower into), a merge-able paint intent, and
// exactly one drawable payload.
type Renderable struct {
	Commands []command.Command
	DrawOp   DrawOp
	Drawable Drawable
}

func (r Renderable) String() string {
	return fmt.Sprintf("Renderable(op=%v, drawable=%v, prefix=%d)", r.DrawOp, r.Drawable, len(r.Commands))
}

// Drawable is the payload variant of a renderable.
type Drawable interface {
	isDrawable()
	String() string
}

type Shapes struct {
	Shapes []Shape
}

func (Shapes) isDrawable()      {}
func (s Shapes) String() string { return fmt.Sprintf("Shapes(count=%d)", len(s.Shapes)) }

// Text draws a string at a baseline point. MaxWidth of zero leaves the text
// unconstrained; AutoSwap selects the line-handling strategy (nil means
// Oneline).
type Text struct {
	Point    Point
	Text     string
	MaxWidth float64
	AutoSwap AutoSwapOp
}

func (Text) isDrawable() {}
func (t Text) String() string {
	return fmt.Sprintf("Text(at=%v, text='%s', swap=%v)", t.Point, t.Text, t.AutoSwap)
}

type Texture struct {
	Point   Point
	Texture *texture.Texture
}

func (Texture) isDrawable() {}
func (t Texture) String() string {
	return fmt.Sprintf("Texture(at=%v, texture=%v)", t.Point, t.Texture)
}

type Clear struct {
	Point         Point
	Width, Height float64
}

func (Clear) isDrawable() {}
func (c Clear) String() string {
	return fmt.Sprintf("Clear(at=%v, w=%.2f, h=%.2f)", c.Point, c.Width, c.Height)
}

type Group struct {
	Renderables []Renderable
}

func (Group) isDrawable()      {}
func (g Group) String() string { return fmt.Sprintf("Group(count=%d)", len(g.Renderables)) }

type Empty struct{}

func (Empty) isDrawable()    {}
func (Empty) String() string { return "Empty()" }

// Setting configures a renderable at construction time. Paint settings
// merge into the draw op; context settings with no typed command lower into
// the raw prefix command list.
type Setting func(*Renderable)

func WithFill(style Style) Setting {
	return func(r *Renderable) {
		r.DrawOp = MergeDrawOp(r.DrawOp, Fill{Style: style})
	}
}

func WithStroke(style Style) Setting {
	return func(r *Renderable) {
		r.DrawOp = MergeDrawOp(r.DrawOp, Stroke{Style: style})
	}
}

func WithFillAndStroke(fill, stroke Style) Setting {
	return func(r *Renderable) {
		r.DrawOp = FillAndStroke{FillStyle: fill, StrokeStyle: stroke}
	}
}

// WithAutoSwap selects the text wrap strategy; it only affects Text
// drawables.
func WithAutoSwap(op AutoSwapOp) Setting {
	return func(r *Renderable) {
		if t, ok := r.Drawable.(Text); ok {
			t.AutoSwap = op
			r.Drawable = t
		}
	}
}

func WithMaxWidth(w float64) Setting {
	return func(r *Renderable) {
		if t, ok := r.Drawable.(Text); ok {
			t.MaxWidth = w
			r.Drawable = t
		}
	}
}

func WithLineWidth(w float64) Setting {
	return WithField("lineWidth", w)
}

// WithFont sets the context font ("16px sans-serif" style specification);
// it also determines what MeasureText results report for auto-swapped text.
func WithFont(font string) Setting {
	return WithField("font", font)
}

func WithAlign(align string) Setting {
	return WithField("textAlign", align)
}

func WithBaseline(baseline string) Setting {
	return WithField("textBaseline", baseline)
}

func WithAlpha(alpha float64) Setting {
	return WithField("globalAlpha", alpha)
}

// WithField lowers to a raw context-property command, the escape hatch for
// any styling the typed settings do not cover.
func WithField(name string, value any) Setting {
	return func(r *Renderable) {
		r.Commands = append(r.Commands, command.Field{Name: name, Value: value})
	}
}

// WithCommands prepends arbitrary raw commands to the renderable.
func WithCommands(cmds ...command.Command) Setting {
	return func(r *Renderable) {
		r.Commands = append(r.Commands, cmds...)
	}
}

func newRenderable(drawable Drawable, settings []Setting) Renderable {
	r := Renderable{DrawOp: NotSpecified{}, Drawable: drawable}
	for _, setting := range settings {
		setting(&r)
	}
	return r
}

// NewShapes batches shapes under one paint operation: the whole batch
// shares a single path and a single fill/stroke application.
func NewShapes(settings []Setting, shapes ...Shape) Renderable {
	return newRenderable(Shapes{Shapes: shapes}, settings)
}

func NewText(settings []Setting, at Point, text string) Renderable {
	return newRenderable(Text{Point: at, Text: text, AutoSwap: Oneline{}}, settings)
}

func NewTexture(settings []Setting, at Point, t *texture.Texture) Renderable {
	return newRenderable(Texture{Point: at, Texture: t}, settings)
}

func NewClear(at Point, width, height float64) Renderable {
	return newRenderable(Clear{Point: at, Width: width, Height: height}, nil)
}

// NewGroup nests renderables under shared settings; the group's draw op is
// inherited by every child that does not override it.
func NewGroup(settings []Setting, renderables ...Renderable) Renderable {
	return newRenderable(Group{Renderables: renderables}, settings)
}

func NewEmpty() Renderable {
	return newRenderable(Empty{}, nil)
}
