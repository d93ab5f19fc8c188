package command

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Command is one primitive drawing instruction in the stream handed to the
// executor. Commands are plain data: execution lives with the executor
// (surface package in-process, or the JS runtime behind the server bridge),
// and the stream itself can be encoded for a remote host.
type Command interface {
	wire() wireCommand
	String() string
}

// wireCommand is the host-executor protocol shape: a "function" entry is a
// drawing-context method call, a "field" entry sets a context property.
type wireCommand struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Args  []any  `json:"args,omitempty"`
	Value any    `json:"value,omitempty"`
}

func call(name string, args ...any) wireCommand {
	return wireCommand{Type: "function", Name: name, Args: args}
}

func field(name string, value any) wireCommand {
	return wireCommand{Type: "field", Name: name, Value: value}
}

type Save struct{}

func (Save) wire() wireCommand { return call("save") }
func (Save) String() string    { return "Save()" }

type Restore struct{}

func (Restore) wire() wireCommand { return call("restore") }
func (Restore) String() string    { return "Restore()" }

type BeginPath struct{}

func (BeginPath) wire() wireCommand { return call("beginPath") }
func (BeginPath) String() string    { return "BeginPath()" }

type MoveTo struct {
	X, Y float64
}

func (c MoveTo) wire() wireCommand { return call("moveTo", c.X, c.Y) }
func (c MoveTo) String() string    { return fmt.Sprintf("MoveTo(x=%.2f, y=%.2f)", c.X, c.Y) }

type LineTo struct {
	X, Y float64
}

func (c LineTo) wire() wireCommand { return call("lineTo", c.X, c.Y) }
func (c LineTo) String() string    { return fmt.Sprintf("LineTo(x=%.2f, y=%.2f)", c.X, c.Y) }

type Arc struct {
	X, Y             float64
	Radius           float64
	StartAngle       float64
	EndAngle         float64
	Counterclockwise bool
}

func (c Arc) wire() wireCommand {
	return call("arc", c.X, c.Y, c.Radius, c.StartAngle, c.EndAngle, c.Counterclockwise)
}

func (c Arc) String() string {
	return fmt.Sprintf("Arc(x=%.2f, y=%.2f, r=%.2f, start=%.2f, end=%.2f, ccw=%v)",
		c.X, c.Y, c.Radius, c.StartAngle, c.EndAngle, c.Counterclockwise)
}

type ArcTo struct {
	X1, Y1 float64
	X2, Y2 float64
	Radius float64
}

func (c ArcTo) wire() wireCommand { return call("arcTo", c.X1, c.Y1, c.X2, c.Y2, c.Radius) }
func (c ArcTo) String() string {
	return fmt.Sprintf("ArcTo(x1=%.2f, y1=%.2f, x2=%.2f, y2=%.2f, r=%.2f)", c.X1, c.Y1, c.X2, c.Y2, c.Radius)
}

type BezierCurveTo struct {
	CP1X, CP1Y float64
	CP2X, CP2Y float64
	X, Y       float64
}

func (c BezierCurveTo) wire() wireCommand {
	return call("bezierCurveTo", c.CP1X, c.CP1Y, c.CP2X, c.CP2Y, c.X, c.Y)
}

func (c BezierCurveTo) String() string {
	return fmt.Sprintf("BezierCurveTo(cp1=(%.2f, %.2f), cp2=(%.2f, %.2f), to=(%.2f, %.2f))",
		c.CP1X, c.CP1Y, c.CP2X, c.CP2Y, c.X, c.Y)
}

type QuadraticCurveTo struct {
	CPX, CPY float64
	X, Y     float64
}

func (c QuadraticCurveTo) wire() wireCommand {
	return call("quadraticCurveTo", c.CPX, c.CPY, c.X, c.Y)
}

func (c QuadraticCurveTo) String() string {
	return fmt.Sprintf("QuadraticCurveTo(cp=(%.2f, %.2f), to=(%.2f, %.2f))", c.CPX, c.CPY, c.X, c.Y)
}

type RectPath struct {
	X, Y          float64
	Width, Height float64
}

func (c RectPath) wire() wireCommand { return call("rect", c.X, c.Y, c.Width, c.Height) }
func (c RectPath) String() string {
	return fmt.Sprintf("RectPath(x=%.2f, y=%.2f, w=%.2f, h=%.2f)", c.X, c.Y, c.Width, c.Height)
}

type RoundRectPath struct {
	X, Y          float64
	Width, Height float64
	Radii         []float64
}

func (c RoundRectPath) wire() wireCommand {
	return call("roundRect", c.X, c.Y, c.Width, c.Height, c.Radii)
}

func (c RoundRectPath) String() string {
	return fmt.Sprintf("RoundRectPath(x=%.2f, y=%.2f, w=%.2f, h=%.2f, radii=%v)",
		c.X, c.Y, c.Width, c.Height, c.Radii)
}

type Fill struct{}

func (Fill) wire() wireCommand { return call("fill") }
func (Fill) String() string    { return "Fill()" }

type Stroke struct{}

func (Stroke) wire() wireCommand { return call("stroke") }
func (Stroke) String() string    { return "Stroke()" }

type FillStyle struct {
	Style string
}

func (c FillStyle) wire() wireCommand { return field("fillStyle", c.Style) }
func (c FillStyle) String() string    { return fmt.Sprintf("FillStyle(style='%s')", c.Style) }

type StrokeStyle struct {
	Style string
}

func (c StrokeStyle) wire() wireCommand { return field("strokeStyle", c.Style) }
func (c StrokeStyle) String() string    { return fmt.Sprintf("StrokeStyle(style='%s')", c.Style) }

// FillText draws filled text at a baseline point. MaxWidth of zero means
// the text is not constrained.
type FillText struct {
	Text     string
	X, Y     float64
	MaxWidth float64
}

func (c FillText) wire() wireCommand {
	if c.MaxWidth > 0 {
		return call("fillText", c.Text, c.X, c.Y, c.MaxWidth)
	}
	return call("fillText", c.Text, c.X, c.Y)
}

func (c FillText) String() string {
	return fmt.Sprintf("FillText(text='%s', x=%.2f, y=%.2f)", c.Text, c.X, c.Y)
}

type StrokeText struct {
	Text     string
	X, Y     float64
	MaxWidth float64
}

func (c StrokeText) wire() wireCommand {
	if c.MaxWidth > 0 {
		return call("strokeText", c.Text, c.X, c.Y, c.MaxWidth)
	}
	return call("strokeText", c.Text, c.X, c.Y)
}

func (c StrokeText) String() string {
	return fmt.Sprintf("StrokeText(text='%s', x=%.2f, y=%.2f)", c.Text, c.X, c.Y)
}

type ClearRect struct {
	X, Y          float64
	Width, Height float64
}

func (c ClearRect) wire() wireCommand { return call("clearRect", c.X, c.Y, c.Width, c.Height) }
func (c ClearRect) String() string {
	return fmt.Sprintf("ClearRect(x=%.2f, y=%.2f, w=%.2f, h=%.2f)", c.X, c.Y, c.Width, c.Height)
}

// DrawImage draws the region (Sx, Sy, Sw, Sh) of the named texture into the
// destination rectangle (Dx, Dy, Dw, Dh). The executor resolves Texture
// against the images attached to it by the embedding layer.
type DrawImage struct {
	Texture        string
	Sx, Sy, Sw, Sh float64
	Dx, Dy, Dw, Dh float64
}

func (c DrawImage) wire() wireCommand {
	return call("drawImage", c.Texture, c.Sx, c.Sy, c.Sw, c.Sh, c.Dx, c.Dy, c.Dw, c.Dh)
}

func (c DrawImage) String() string {
	return fmt.Sprintf("DrawImage(texture='%s', src=(%.2f, %.2f, %.2f, %.2f), dst=(%.2f, %.2f, %.2f, %.2f))",
		c.Texture, c.Sx, c.Sy, c.Sw, c.Sh, c.Dx, c.Dy, c.Dw, c.Dh)
}

// MeasureText asks the executor for the rendered width of Text under its
// current font. The result arrives on a later frame as a CanvasValue with
// valuetype "TextMetrics" and the same label.
type MeasureText struct {
	Label string
	Text  string
}

func (c MeasureText) wire() wireCommand { return call("measureText", c.Label, c.Text) }
func (c MeasureText) String() string {
	return fmt.Sprintf("MeasureText(label='%s', text='%s')", c.Label, c.Text)
}

// Store asks the executor to persist Value under Label and echo it back as
// a "storeValue" CanvasValue on every subsequent frame.
type Store struct {
	Label string
	Value any
}

func (c Store) wire() wireCommand { return call("storeValue", c.Label, c.Value) }
func (c Store) String() string    { return fmt.Sprintf("Store(label='%s', value=%v)", c.Label, c.Value) }

// Field sets an arbitrary drawing-context property. This is the escape
// hatch for styling calls the typed commands do not cover (font, lineWidth,
// globalAlpha, textAlign, ...). Executors ignore fields they do not know.
type Field struct {
	Name  string
	Value any
}

func (c Field) wire() wireCommand { return field(c.Name, c.Value) }
func (c Field) String() string    { return fmt.Sprintf("Field(name='%s', value=%v)", c.Name, c.Value) }

// Call invokes an arbitrary drawing-context method, same escape hatch as
// Field but for methods (translate, rotate, setLineDash, ...).
type Call struct {
	Name string
	Args []any
}

func (c Call) wire() wireCommand { return wireCommand{Type: "function", Name: c.Name, Args: c.Args} }
func (c Call) String() string    { return fmt.Sprintf("Call(name='%s', args=%v)", c.Name, c.Args) }

// Encode serializes a command stream into the JSON batch the host executor
// consumes, in order.
func Encode(cmds []Command) ([]byte, error) {
	wires := make([]wireCommand, 0, len(cmds))
	for _, cmd := range cmds {
		wires = append(wires, cmd.wire())
	}
	return json.Marshal(wires)
}

func PrintCommands(list []Command) {
	for _, cmd := range list {
		fmt.Println("Command:", cmd)
	}
}

func CommandsToString(list []Command) string {
	var sb strings.Builder
	for _, cmd := range list {
		sb.WriteString(cmd.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
