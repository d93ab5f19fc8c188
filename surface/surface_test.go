package surface

import (
	"encoding/json"
	"image"
	col "image/color"
	"testing"

	"golang.org/x/image/font/basicfont"

	"gocanvas/command"
	"gocanvas/font"
)

func TestFillRect(t *testing.T) {
	s := New(50, 50)
	s.Execute([]command.Command{
		command.BeginPath{},
		command.RectPath{X: 10, Y: 10, Width: 20, Height: 20},
		command.FillStyle{Style: "red"},
		command.Fill{},
	})
	r, g, b, a := s.Image().At(15, 15).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 || a>>8 != 255 {
		t.Errorf("pixel inside filled rect = (%d, %d, %d, %d), want red", r>>8, g>>8, b>>8, a>>8)
	}
	if _, _, _, a := s.Image().At(40, 40).RGBA(); a != 0 {
		t.Error("pixel outside rect should stay transparent")
	}
}

func TestSaveRestoreScopesBothStyles(t *testing.T) {
	s := New(40, 40)
	s.Execute([]command.Command{
		command.FillStyle{Style: "red"},
		command.Save{},
		command.FillStyle{Style: "blue"},
		command.StrokeStyle{Style: "green"},
		command.Restore{},
		command.BeginPath{},
		command.RectPath{X: 0, Y: 0, Width: 10, Height: 10},
		command.Fill{},
	})
	r, _, b, _ := s.Image().At(5, 5).RGBA()
	if r>>8 != 255 || b>>8 != 0 {
		t.Error("restore did not bring back the saved fill style")
	}
}

func TestFillPreservesPathForStroke(t *testing.T) {
	// The canvas model keeps the path alive after fill so one batch can be
	// filled and stroked.
	s := New(40, 40)
	s.Execute([]command.Command{
		command.BeginPath{},
		command.RectPath{X: 5, Y: 5, Width: 20, Height: 20},
		command.FillStyle{Style: "blue"},
		command.Fill{},
		command.StrokeStyle{Style: "red"},
		command.Field{Name: "lineWidth", Value: 4.0},
		command.Stroke{},
	})
	// Border pixel strokes red over the blue fill.
	r, _, _, _ := s.Image().At(5, 15).RGBA()
	if r>>8 < 200 {
		t.Error("stroke after fill did not draw; path was not preserved")
	}
	// Interior stays filled blue.
	_, _, b, _ := s.Image().At(15, 15).RGBA()
	if b>>8 < 200 {
		t.Error("fill missing from batch interior")
	}
}

func TestMeasureTextDeliversMetricsOnce(t *testing.T) {
	s := New(20, 20)
	s.SetFontFace(basicfont.Face7x13)
	s.Execute([]command.Command{
		command.MeasureText{Label: "L", Text: "abc"},
		command.MeasureText{Label: "L", Text: "x"},
	})

	values := s.Flush()
	widths, ok := command.Metrics(values, "L")
	if !ok || len(widths) != 2 {
		t.Fatalf("expected 2 metrics, got %v", values)
	}
	want := font.Measure(basicfont.Face7x13, "abc")
	if widths[0] != want {
		t.Errorf("width = %v, want %v", widths[0], want)
	}

	if again := s.Flush(); len(again) != 0 {
		t.Errorf("metrics must be delivered exactly once, second flush = %v", again)
	}
}

func TestStorePersistsAcrossFlushes(t *testing.T) {
	s := New(20, 20)
	s.Execute([]command.Command{command.Store{
		Label: "L",
		Value: command.SwapValue{OriginText: "a", ChangedText: "b", Usage: command.SwapUsage},
	}})

	for i := 0; i < 3; i++ {
		sv, ok := command.StoredSwap(s.Flush(), "L")
		if !ok {
			t.Fatalf("flush %d lost the stored value", i)
		}
		if sv.OriginText != "a" || sv.ChangedText != "b" {
			t.Errorf("flush %d returned %+v", i, sv)
		}
	}
}

func TestStoreOverwriteKeepsLatest(t *testing.T) {
	s := New(20, 20)
	s.Execute([]command.Command{
		command.Store{Label: "L", Value: command.SwapValue{OriginText: "a", ChangedText: "a", Usage: command.SwapUsage}},
		command.Store{Label: "L", Value: command.SwapValue{OriginText: "a", ChangedText: "a\nb", Usage: command.SwapUsage}},
	})
	sv, ok := command.StoredSwap(s.Flush(), "L")
	if !ok || sv.ChangedText != "a\nb" {
		t.Errorf("expected latest store to win, got %+v", sv)
	}
}

func TestClearRectMakesPixelsTransparent(t *testing.T) {
	s := New(30, 30)
	s.Execute([]command.Command{
		command.BeginPath{},
		command.RectPath{X: 0, Y: 0, Width: 30, Height: 30},
		command.FillStyle{Style: "red"},
		command.Fill{},
		command.ClearRect{X: 10, Y: 10, Width: 5, Height: 5},
	})
	if _, _, _, a := s.Image().At(12, 12).RGBA(); a != 0 {
		t.Error("cleared pixel still opaque")
	}
	if _, _, _, a := s.Image().At(2, 2).RGBA(); a == 0 {
		t.Error("clear rect spilled outside its bounds")
	}
}

func TestDrawImageResolvesTexture(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, col.RGBA{0, 255, 0, 255})
		}
	}
	s := New(20, 20)
	s.AddTexture("tex", src)
	s.Execute([]command.Command{command.DrawImage{
		Texture: "tex",
		Sx:      0, Sy: 0, Sw: 4, Sh: 4,
		Dx: 8, Dy: 8, Dw: 4, Dh: 4,
	}})
	_, g, _, _ := s.Image().At(10, 10).RGBA()
	if g>>8 < 200 {
		t.Error("texture pixels not drawn at destination")
	}
}

func TestUnknownTextureAndFieldsIgnored(t *testing.T) {
	s := New(10, 10)
	s.Execute([]command.Command{
		command.DrawImage{Texture: "missing", Sw: 1, Sh: 1, Dw: 1, Dh: 1},
		command.Field{Name: "shadowBlur", Value: 4.0},
		command.Call{Name: "setLineDash", Args: []any{1.0, 2.0}},
	})
	// Nothing to assert beyond not panicking and not leaking pixels.
	if _, _, _, a := s.Image().At(0, 0).RGBA(); a != 0 {
		t.Error("ignored commands drew something")
	}
}

func TestFlushOrderMetricsBeforeStores(t *testing.T) {
	s := New(10, 10)
	s.SetFontFace(basicfont.Face7x13)
	raw, _ := json.Marshal(command.SwapValue{OriginText: "o", ChangedText: "c", Usage: command.SwapUsage})
	s.Execute([]command.Command{
		command.Store{Label: "S", Value: json.RawMessage(raw)},
		command.MeasureText{Label: "M", Text: "w"},
	})
	values := s.Flush()
	if len(values) != 2 {
		t.Fatalf("expected 2 values, got %v", values)
	}
	if values[0].ValueType != command.ValueTypeTextMetrics {
		t.Errorf("metrics should flush before stores, got %v first", values[0].ValueType)
	}
}
