package canvas

import (
	"fmt"
	"strings"

	"gocanvas/command"
)

// AutoSwapOp selects how a text renderable handles line breaking.
type AutoSwapOp interface {
	isAutoSwap()
	String() string
}

// Oneline draws the string exactly once at its point.
type Oneline struct{}

func (Oneline) isAutoSwap()    {}
func (Oneline) String() string { return "Oneline()" }

// Manual splits the string on its embedded newlines and draws each line at
// a point advanced by LineSpacing per line, top to bottom.
type Manual struct {
	LineSpacing float64
}

func (Manual) isAutoSwap()      {}
func (m Manual) String() string { return fmt.Sprintf("Manual(spacing=%.2f)", m.LineSpacing) }

// Letter wraps the text at measured pixel widths, one character at a time.
// Label names this text's independent negotiation with the executor over
// the round-trip channel.
type Letter struct {
	Label     string
	LineWidth float64
	LineSpace float64
}

func (Letter) isAutoSwap() {}
func (l Letter) String() string {
	return fmt.Sprintf("Letter(label='%s', lineWidth=%.2f, lineSpace=%.2f)", l.Label, l.LineWidth, l.LineSpace)
}

// Word wraps at measured widths one word at a time, words being tokens
// separated by collapsing runs of spaces.
type Word struct {
	Label     string
	LineWidth float64
	LineSpace float64
}

func (Word) isAutoSwap() {}
func (w Word) String() string {
	return fmt.Sprintf("Word(label='%s', lineWidth=%.2f, lineSpace=%.2f)", w.Label, w.LineWidth, w.LineSpace)
}

type swapMode int

const (
	letterMode swapMode = iota
	wordMode
)

// renderText dispatches a text drawable on its strategy. The executor is
// the only party that can measure rendered widths, and it reports them a
// frame late, so the Letter and Word strategies run a per-label state
// machine over the incoming value batch rather than wrapping synchronously.
func renderText(t Text, op DrawOp, values []command.CanvasValue) []command.Command {
	switch swap := t.AutoSwap.(type) {
	case Manual:
		return drawManual(t, op, swap.LineSpacing)
	case Letter:
		return renderSwap(t, op, values, swap.Label, swap.LineWidth, swap.LineSpace, letterMode)
	case Word:
		return renderSwap(t, op, values, swap.Label, swap.LineWidth, swap.LineSpace, wordMode)
	default:
		return paintText(op, t.Text, t.Point, t.MaxWidth)
	}
}

// renderSwap is the reflow state machine for one label:
//
//   - no usable stored decision, or the stored origin no longer matches the
//     text: store the original as a placeholder decision and request one
//     measurement per unit, drawing the unwrapped text this frame;
//   - stored decision matches and fresh metrics arrived: run the greedy
//     wrap, store the wrapped result, draw it;
//   - stored decision matches, no metrics, and the decision is a real wrap
//     (changed differs from origin): steady state, draw the stored wrap;
//   - stored decision matches but is still the placeholder and metrics have
//     not arrived: same as the first case, re-request everything.
//
// Every path degrades toward re-measuring; a measurement that never comes
// back just leaves the label re-requesting each frame.
func renderSwap(t Text, op DrawOp, values []command.CanvasValue, label string, lineWidth, lineSpace float64, mode swapMode) []command.Command {
	units := splitUnits(t.Text, mode)
	stored, hasStored := command.StoredSwap(values, label)
	widths, hasMetrics := command.Metrics(values, label)

	if hasStored && stored.OriginText == t.Text {
		if hasMetrics {
			wrapped := wrapUnits(units, widths, lineWidth, mode)
			out := []command.Command{storeSwap(label, t.Text, wrapped)}
			shown := t
			shown.Text = wrapped
			return append(out, drawManual(shown, op, lineSpace)...)
		}
		if stored.ChangedText != stored.OriginText {
			shown := t
			shown.Text = stored.ChangedText
			return drawManual(shown, op, lineSpace)
		}
	}

	out := []command.Command{storeSwap(label, t.Text, t.Text)}
	for _, u := range units {
		out = append(out, command.MeasureText{Label: label, Text: u})
	}
	return append(out, drawManual(t, op, lineSpace)...)
}

func storeSwap(label, origin, changed string) command.Command {
	return command.Store{
		Label: label,
		Value: command.SwapValue{OriginText: origin, ChangedText: changed, Usage: command.SwapUsage},
	}
}

// splitUnits breaks text into measurement/wrap units. Newlines stay in the
// unit list as explicit break markers so the measurement list and the unit
// list stay index-aligned.
func splitUnits(text string, mode swapMode) []string {
	if mode == letterMode {
		units := make([]string, 0, len(text))
		for _, r := range text {
			units = append(units, string(r))
		}
		return units
	}
	var units []string
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			units = append(units, word.String())
			word.Reset()
		}
	}
	for _, r := range text {
		switch r {
		case ' ':
			flush()
		case '\n':
			flush()
			units = append(units, "\n")
		default:
			word.WriteRune(r)
		}
	}
	flush()
	return units
}

// wrapUnits is the greedy breaker: accumulate unit widths until adding the
// next unit would reach the line width, then break before it. A width
// exactly equal to the line width counts as overflow. An explicit newline
// unit forces a break, resets the running width, and skips the units (and
// with them the measurement entries) of any leading spaces that follow.
func wrapUnits(units []string, widths []float64, lineWidth float64, mode swapMode) string {
	var b strings.Builder
	running := 0.0
	atLineStart := true
	i := 0
	for i < len(units) {
		u := units[i]
		if u == "\n" {
			b.WriteString("\n")
			running = 0
			atLineStart = true
			i++
			for i < len(units) && units[i] == " " {
				i++
			}
			continue
		}
		w := 0.0
		if i < len(widths) {
			w = widths[i]
		}
		switch {
		case atLineStart:
			b.WriteString(u)
			running = w
			atLineStart = false
		case running+w >= lineWidth:
			b.WriteString("\n")
			b.WriteString(u)
			running = w
		default:
			if mode == wordMode {
				b.WriteString(" ")
			}
			b.WriteString(u)
			running += w
		}
		i++
	}
	return b.String()
}

// drawManual renders each newline-delimited line as its own fill/stroke
// pair, stepping the baseline down by the line spacing.
func drawManual(t Text, op DrawOp, lineSpacing float64) []command.Command {
	var out []command.Command
	for i, line := range strings.Split(t.Text, "\n") {
		at := Point{X: t.Point.X, Y: t.Point.Y + float64(i)*lineSpacing}
		out = append(out, paintText(op, line, at, t.MaxWidth)...)
	}
	return out
}

// paintText emits the fill/stroke commands for one drawn string. With no
// specified op, both a fill and a stroke are drawn under the executor's
// ambient styles.
func paintText(op DrawOp, text string, at Point, maxWidth float64) []command.Command {
	switch o := op.(type) {
	case Fill:
		return []command.Command{
			command.FillStyle{Style: string(o.Style)},
			command.FillText{Text: text, X: at.X, Y: at.Y, MaxWidth: maxWidth},
		}
	case Stroke:
		return []command.Command{
			command.StrokeStyle{Style: string(o.Style)},
			command.StrokeText{Text: text, X: at.X, Y: at.Y, MaxWidth: maxWidth},
		}
	case FillAndStroke:
		return []command.Command{
			command.FillStyle{Style: string(o.FillStyle)},
			command.FillText{Text: text, X: at.X, Y: at.Y, MaxWidth: maxWidth},
			command.StrokeStyle{Style: string(o.StrokeStyle)},
			command.StrokeText{Text: text, X: at.X, Y: at.Y, MaxWidth: maxWidth},
		}
	default:
		return []command.Command{
			command.FillText{Text: text, X: at.X, Y: at.Y, MaxWidth: maxWidth},
			command.StrokeText{Text: text, X: at.X, Y: at.Y, MaxWidth: maxWidth},
		}
	}
}
