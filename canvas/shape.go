package canvas

import (
	"fmt"
	"math"

	"gocanvas/command"
)

type Point struct {
	X, Y float64
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("Point(x=%.2f, y=%.2f)", p.X, p.Y)
}

// Shape is one closed geometric figure. Shapes in a batch are folded into a
// single path so the whole batch fills and strokes under one paint
// operation.
type Shape interface {
	isShape()
	String() string
}

type Rect struct {
	Point         Point
	Width, Height float64
}

func (Rect) isShape() {}
func (r Rect) String() string {
	return fmt.Sprintf("Rect(at=%v, w=%.2f, h=%.2f)", r.Point, r.Width, r.Height)
}

// RoundRect carries 1 to 4 non-negative corner radii, interpreted the way
// the drawing context interprets them. The list is a caller contract and is
// handed to the primitive unvalidated.
type RoundRect struct {
	Point         Point
	Width, Height float64
	Radii         []float64
}

func (RoundRect) isShape() {}
func (r RoundRect) String() string {
	return fmt.Sprintf("RoundRect(at=%v, w=%.2f, h=%.2f, radii=%v)", r.Point, r.Width, r.Height, r.Radii)
}

type Circle struct {
	Center Point
	Radius float64
}

func (Circle) isShape() {}
func (c Circle) String() string {
	return fmt.Sprintf("Circle(center=%v, r=%.2f)", c.Center, c.Radius)
}

type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Clockwise  bool
}

func (Arc) isShape() {}
func (a Arc) String() string {
	return fmt.Sprintf("Arc(center=%v, r=%.2f, start=%.2f, end=%.2f)", a.Center, a.Radius, a.StartAngle, a.EndAngle)
}

// Path is a starting point plus an ordered segment list; the two fully
// determine the figure. Compilation always opens with a move to Start, so
// no pen position ever leaks in from an earlier shape in the batch.
type Path struct {
	Start    Point
	Segments []PathSegment
}

func (Path) isShape() {}
func (p Path) String() string {
	return fmt.Sprintf("Path(start=%v, segments=%d)", p.Start, len(p.Segments))
}

type PathSegment interface {
	isSegment()
	String() string
}

type MoveTo struct {
	To Point
}

func (MoveTo) isSegment()       {}
func (m MoveTo) String() string { return fmt.Sprintf("MoveTo(to=%v)", m.To) }

type LineTo struct {
	To Point
}

func (LineTo) isSegment()       {}
func (l LineTo) String() string { return fmt.Sprintf("LineTo(to=%v)", l.To) }

type ArcTo struct {
	Control1 Point
	Control2 Point
	Radius   float64
}

func (ArcTo) isSegment() {}
func (a ArcTo) String() string {
	return fmt.Sprintf("ArcTo(c1=%v, c2=%v, r=%.2f)", a.Control1, a.Control2, a.Radius)
}

type BezierCurveTo struct {
	Control1 Point
	Control2 Point
	To       Point
}

func (BezierCurveTo) isSegment() {}
func (b BezierCurveTo) String() string {
	return fmt.Sprintf("BezierCurveTo(c1=%v, c2=%v, to=%v)", b.Control1, b.Control2, b.To)
}

type QuadraticCurveTo struct {
	Control Point
	To      Point
}

func (QuadraticCurveTo) isSegment() {}
func (q QuadraticCurveTo) String() string {
	return fmt.Sprintf("QuadraticCurveTo(c=%v, to=%v)", q.Control, q.To)
}

// compileShape lowers one shape to path-construction commands. It is a pure
// function of the shape and never fails: degenerate parameters pass through
// to the primitive, which no-ops or clips as it sees fit.
func compileShape(shape Shape) []command.Command {
	switch s := shape.(type) {
	case Rect:
		return []command.Command{
			command.RectPath{X: s.Point.X, Y: s.Point.Y, Width: s.Width, Height: s.Height},
		}
	case RoundRect:
		return []command.Command{
			command.RoundRectPath{X: s.Point.X, Y: s.Point.Y, Width: s.Width, Height: s.Height, Radii: s.Radii},
		}
	case Circle:
		return []command.Command{
			command.MoveTo{X: s.Center.X + s.Radius, Y: s.Center.Y},
			command.Arc{X: s.Center.X, Y: s.Center.Y, Radius: s.Radius, StartAngle: 0, EndAngle: 2 * math.Pi},
		}
	case Arc:
		return []command.Command{
			command.MoveTo{
				X: s.Center.X + s.Radius*math.Cos(s.StartAngle),
				Y: s.Center.Y + s.Radius*math.Sin(s.StartAngle),
			},
			command.Arc{
				X: s.Center.X, Y: s.Center.Y, Radius: s.Radius,
				StartAngle: s.StartAngle, EndAngle: s.EndAngle,
				Counterclockwise: !s.Clockwise,
			},
		}
	case Path:
		cmds := make([]command.Command, 0, len(s.Segments)+1)
		cmds = append(cmds, command.MoveTo{X: s.Start.X, Y: s.Start.Y})
		for _, seg := range s.Segments {
			cmds = append(cmds, compileSegment(seg))
		}
		return cmds
	}
	return nil
}

// compileSegment maps one path segment to its primitive 1:1.
func compileSegment(seg PathSegment) command.Command {
	switch s := seg.(type) {
	case MoveTo:
		return command.MoveTo{X: s.To.X, Y: s.To.Y}
	case LineTo:
		return command.LineTo{X: s.To.X, Y: s.To.Y}
	case ArcTo:
		return command.ArcTo{
			X1: s.Control1.X, Y1: s.Control1.Y,
			X2: s.Control2.X, Y2: s.Control2.Y,
			Radius: s.Radius,
		}
	case BezierCurveTo:
		return command.BezierCurveTo{
			CP1X: s.Control1.X, CP1Y: s.Control1.Y,
			CP2X: s.Control2.X, CP2Y: s.Control2.Y,
			X: s.To.X, Y: s.To.Y,
		}
	case QuadraticCurveTo:
		return command.QuadraticCurveTo{
			CPX: s.Control.X, CPY: s.Control.Y,
			X: s.To.X, Y: s.To.Y,
		}
	}
	return nil
}
