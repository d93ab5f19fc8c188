package canvas

import "fmt"

// Style is a CSS-style paint description ("red", "#ff0040", "rgba(...)").
// The core never interprets styles; resolution to concrete colors happens
// in whatever executor runs the command stream.
type Style string

// DrawOp is the paint intent of a renderable: whether its drawable is
// filled, stroked, both, or left to whatever the ancestor group decided.
// Draw ops merge down the tree, so a group can set a fill once and have
// every child inherit it unless the child overrides its own channel.
type DrawOp interface {
	isDrawOp()
	String() string
}

// NotSpecified inherits the ancestor's paint intent unchanged. It is the
// identity of the merge: merging it with any op, on either side, yields
// the other op.
type NotSpecified struct{}

func (NotSpecified) isDrawOp()      {}
func (NotSpecified) String() string { return "NotSpecified()" }

type Fill struct {
	Style Style
}

func (Fill) isDrawOp()        {}
func (f Fill) String() string { return fmt.Sprintf("Fill(style='%s')", f.Style) }

type Stroke struct {
	Style Style
}

func (Stroke) isDrawOp()        {}
func (s Stroke) String() string { return fmt.Sprintf("Stroke(style='%s')", s.Style) }

type FillAndStroke struct {
	FillStyle   Style
	StrokeStyle Style
}

func (FillAndStroke) isDrawOp() {}
func (f FillAndStroke) String() string {
	return fmt.Sprintf("FillAndStroke(fill='%s', stroke='%s')", f.FillStyle, f.StrokeStyle)
}

// MergeDrawOp resolves a child's paint intent against the inherited one.
// Later writes win per channel: a child Fill replaces the fill component of
// whatever was accumulated but keeps an inherited stroke, and vice versa.
// An incoming FillAndStroke overrides both channels outright.
func MergeDrawOp(parent, child DrawOp) DrawOp {
	switch c := child.(type) {
	case NotSpecified:
		return parent
	case FillAndStroke:
		return c
	case Fill:
		switch p := parent.(type) {
		case Stroke:
			return FillAndStroke{FillStyle: c.Style, StrokeStyle: p.Style}
		case FillAndStroke:
			return FillAndStroke{FillStyle: c.Style, StrokeStyle: p.StrokeStyle}
		default:
			return c
		}
	case Stroke:
		switch p := parent.(type) {
		case Fill:
			return FillAndStroke{FillStyle: p.Style, StrokeStyle: c.Style}
		case FillAndStroke:
			return FillAndStroke{FillStyle: p.FillStyle, StrokeStyle: c.Style}
		default:
			return c
		}
	}
	return parent
}
