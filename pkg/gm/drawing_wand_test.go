package gm

import (
	"math"
	"testing"
)

func newDrawingWandT(t *testing.T) *DrawingWand {
	t.Helper()
	dw := NewDrawingWand()
	t.Cleanup(dw.Destroy)
	return dw
}

func TestDrawStrokeState(t *testing.T) {
	dw := newDrawingWandT(t)

	dw.SetStrokeWidth(3.5)
	if w := dw.GetStrokeWidth(); math.Abs(w-3.5) > 1e-9 {
		t.Errorf("GetStrokeWidth() = %v, want 3.5", w)
	}

	dw.SetStrokeOpacity(0.25)
	if o := dw.GetStrokeOpacity(); math.Abs(o-0.25) > 1e-6 {
		t.Errorf("GetStrokeOpacity() = %v, want 0.25", o)
	}

	dw.SetStrokeLineCap(RoundCap)
	if c := dw.GetStrokeLineCap(); c != RoundCap {
		t.Errorf("GetStrokeLineCap() = %v, want RoundCap", c)
	}

	dw.SetStrokeLineJoin(BevelJoin)
	if j := dw.GetStrokeLineJoin(); j != BevelJoin {
		t.Errorf("GetStrokeLineJoin() = %v, want BevelJoin", j)
	}

	dw.SetStrokeMiterLimit(7)
	if m := dw.GetStrokeMiterLimit(); m != 7 {
		t.Errorf("GetStrokeMiterLimit() = %d, want 7", m)
	}

	dw.SetStrokeAntialias(false)
	if dw.GetStrokeAntialias() {
		t.Error("GetStrokeAntialias() = true after SetStrokeAntialias(false)")
	}
}

func TestDrawStrokeDashArray(t *testing.T) {
	dw := newDrawingWandT(t)

	if dash := dw.GetStrokeDashArray(); len(dash) != 0 {
		t.Fatalf("GetStrokeDashArray() on fresh wand = %v, want empty", dash)
	}

	want := []float64{4, 2, 1, 2}
	dw.SetStrokeDashArray(want)
	dw.SetStrokeDashOffset(1.5)

	got := dw.GetStrokeDashArray()
	if len(got) != len(want) {
		t.Fatalf("GetStrokeDashArray() = %v, want %v", got, want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("GetStrokeDashArray()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if off := dw.GetStrokeDashOffset(); math.Abs(off-1.5) > 1e-9 {
		t.Errorf("GetStrokeDashOffset() = %v, want 1.5", off)
	}
}

func TestDrawFillState(t *testing.T) {
	dw := newDrawingWandT(t)

	fill := newPixelWand(t)
	if !fill.SetColor("red") {
		t.Fatal("SetColor(red) failed")
	}
	dw.SetFillColor(fill)

	got := dw.GetFillColor()
	if got == nil {
		t.Fatal("GetFillColor() returned nil")
	}
	defer got.Destroy()
	if r := got.GetRed(); math.Abs(r-1.0) > 1e-6 {
		t.Errorf("fill red = %v, want 1.0", r)
	}

	dw.SetFillOpacity(0.75)
	if o := dw.GetFillOpacity(); math.Abs(o-0.75) > 1e-6 {
		t.Errorf("GetFillOpacity() = %v, want 0.75", o)
	}

	dw.SetFillRule(EvenOddRule)
	if r := dw.GetFillRule(); r != EvenOddRule {
		t.Errorf("GetFillRule() = %v, want EvenOddRule", r)
	}
}

func TestDrawFontState(t *testing.T) {
	dw := newDrawingWandT(t)

	dw.SetFontSize(18)
	if s := dw.GetFontSize(); math.Abs(s-18) > 1e-9 {
		t.Errorf("GetFontSize() = %v, want 18", s)
	}

	dw.SetFontWeight(700)
	if w := dw.GetFontWeight(); w != 700 {
		t.Errorf("GetFontWeight() = %d, want 700", w)
	}

	dw.SetFontStyle(ItalicStyle)
	if s := dw.GetFontStyle(); s != ItalicStyle {
		t.Errorf("GetFontStyle() = %v, want ItalicStyle", s)
	}

	dw.SetFontStretch(CondensedStretch)
	if s := dw.GetFontStretch(); s != CondensedStretch {
		t.Errorf("GetFontStretch() = %v, want CondensedStretch", s)
	}

	dw.SetFontFamily("sans-serif")
	fam := dw.GetFontFamily()
	if fam == nil {
		t.Fatal("GetFontFamily() returned nil")
	}
	defer fam.Close()
	if fam.String() != "sans-serif" {
		t.Errorf("GetFontFamily() = %q, want %q", fam.String(), "sans-serif")
	}
}

func TestDrawTextState(t *testing.T) {
	dw := newDrawingWandT(t)

	dw.SetTextDecoration(UnderlineDecoration)
	if d := dw.GetTextDecoration(); d != UnderlineDecoration {
		t.Errorf("GetTextDecoration() = %v, want UnderlineDecoration", d)
	}

	dw.SetTextAntialias(false)
	if dw.GetTextAntialias() {
		t.Error("GetTextAntialias() = true after SetTextAntialias(false)")
	}

	dw.SetGravity(SouthEastGravity)
	if g := dw.GetGravity(); g != SouthEastGravity {
		t.Errorf("GetGravity() = %v, want SouthEastGravity", g)
	}
}

func TestDrawOnCanvas(t *testing.T) {
	w := newCanvasWand(t, 64, 64, "white")

	fill := newPixelWand(t)
	fill.SetColor("black")

	dw := newDrawingWandT(t)
	dw.SetFillColor(fill)
	dw.Rectangle(8, 8, 56, 56)

	if err := w.DrawImage(dw); err != nil {
		t.Fatalf("DrawImage: %v", err)
	}

	// The drawn rectangle must change the pixel at the center.
	pixels, err := w.GetImagePixels(32, 32, 1, 1, "RGB")
	if err != nil {
		t.Fatalf("GetImagePixels: %v", err)
	}
	if pixels[0] != 0 || pixels[1] != 0 || pixels[2] != 0 {
		t.Fatalf("center pixel = %v, want black", pixels)
	}
}

func TestDrawDestroyIdempotent(t *testing.T) {
	dw := NewDrawingWand()
	dw.Destroy()
	dw.Destroy()
}
