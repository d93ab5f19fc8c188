package canvas

import (
	"gocanvas/command"
)

// Render lowers a renderable tree into one frame's command stream. The
// stream order mirrors the depth-first, in-order traversal of the tree,
// since the drawing primitives are stateful and order-sensitive. Incoming
// values are the round-trip batch the executor produced for an earlier
// frame; the text reflow engine reads them to decide wrapping.
//
// Render is pure: it holds no state between calls, so the caller invokes
// it fresh every frame with whatever values have arrived so far.
func Render(renderables []Renderable, values []command.CanvasValue) []command.Command {
	return renderWith(renderables, NotSpecified{}, values)
}

func renderWith(renderables []Renderable, parent DrawOp, values []command.CanvasValue) []command.Command {
	var out []command.Command
	for _, r := range renderables {
		out = append(out, r.Commands...)
		out = append(out, command.Save{})
		op := MergeDrawOp(parent, r.DrawOp)
		switch d := r.Drawable.(type) {
		case Shapes:
			out = append(out, renderShapes(d, op)...)
		case Text:
			out = append(out, renderText(d, op, values)...)
		case Texture:
			out = append(out, renderTexture(d)...)
		case Clear:
			// Clearing has no paint; the draw op is ignored.
			out = append(out, command.ClearRect{X: d.Point.X, Y: d.Point.Y, Width: d.Width, Height: d.Height})
		case Group:
			// Set the group's styles once instead of per child; children
			// that override emit their own style commands on top.
			out = append(out, groupStyles(op)...)
			out = append(out, renderWith(d.Renderables, op, values)...)
		case Empty:
			// Keeps its save/restore bracket as a no-op placeholder.
		}
		out = append(out, command.Restore{})
	}
	return out
}

// renderShapes folds every shape into one continuous path and applies the
// merged draw op once for the whole batch.
func renderShapes(d Shapes, op DrawOp) []command.Command {
	out := []command.Command{command.BeginPath{}}
	for _, shape := range d.Shapes {
		out = append(out, compileShape(shape)...)
	}
	return append(out, paintShape(op)...)
}

func paintShape(op DrawOp) []command.Command {
	switch o := op.(type) {
	case Fill:
		return []command.Command{command.FillStyle{Style: string(o.Style)}, command.Fill{}}
	case Stroke:
		return []command.Command{command.StrokeStyle{Style: string(o.Style)}, command.Stroke{}}
	case FillAndStroke:
		return []command.Command{
			command.FillStyle{Style: string(o.FillStyle)},
			command.Fill{},
			command.StrokeStyle{Style: string(o.StrokeStyle)},
			command.Stroke{},
		}
	default:
		// No intent specified anywhere up the tree: paint both with the
		// executor's ambient styles.
		return []command.Command{command.Fill{}, command.Stroke{}}
	}
}

func groupStyles(op DrawOp) []command.Command {
	switch o := op.(type) {
	case Fill:
		return []command.Command{command.FillStyle{Style: string(o.Style)}}
	case Stroke:
		return []command.Command{command.StrokeStyle{Style: string(o.Style)}}
	case FillAndStroke:
		return []command.Command{
			command.FillStyle{Style: string(o.FillStyle)},
			command.StrokeStyle{Style: string(o.StrokeStyle)},
		}
	default:
		return nil
	}
}

func renderTexture(d Texture) []command.Command {
	t := d.Texture
	if t == nil {
		return nil
	}
	sx, sy, sw, sh := t.Clip()
	return []command.Command{command.DrawImage{
		Texture: t.Name(),
		Sx:      sx, Sy: sy, Sw: sw, Sh: sh,
		Dx: d.Point.X, Dy: d.Point.Y, Dw: t.Width(), Dh: t.Height(),
	}}
}
