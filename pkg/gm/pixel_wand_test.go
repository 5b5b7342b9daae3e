package gm

import (
	"math"
	"testing"
)

func newPixelWand(t *testing.T) *PixelWand {
	t.Helper()
	pw := NewPixelWand()
	t.Cleanup(pw.Destroy)
	return pw
}

func TestPixelSetColor(t *testing.T) {
	tests := []struct {
		color string
		ok    bool
	}{
		{"red", true},
		{"#ff0000", true},
		{"rgb(0,128,255)", true},
		{"not-a-color", false},
		{"", false},
	}
	pw := newPixelWand(t)
	for _, tt := range tests {
		if got := pw.SetColor(tt.color); got != tt.ok {
			t.Errorf("SetColor(%q) = %v, want %v", tt.color, got, tt.ok)
		}
	}
}

func TestPixelNormalizedAccessors(t *testing.T) {
	pw := newPixelWand(t)
	if !pw.SetColor("red") {
		t.Fatal("SetColor(red) failed")
	}
	if r := pw.GetRed(); math.Abs(r-1.0) > 1e-6 {
		t.Errorf("GetRed() = %v, want 1.0", r)
	}
	if g := pw.GetGreen(); g != 0 {
		t.Errorf("GetGreen() = %v, want 0", g)
	}
	if b := pw.GetBlue(); b != 0 {
		t.Errorf("GetBlue() = %v, want 0", b)
	}

	pw.SetGreen(0.5)
	if g := pw.GetGreen(); math.Abs(g-0.5) > 0.01 {
		t.Errorf("GetGreen() after SetGreen(0.5) = %v", g)
	}
}

func TestPixelQuantumAccessors(t *testing.T) {
	pw := newPixelWand(t)
	maxQ := Quantum(MaxRGB())

	pw.SetRedQuantum(maxQ)
	if r := pw.GetRedQuantum(); r != maxQ {
		t.Errorf("GetRedQuantum() = %v, want %v", r, maxQ)
	}
	if r := pw.GetRed(); math.Abs(r-1.0) > 1e-6 {
		t.Errorf("GetRed() = %v, want 1.0 after SetRedQuantum(max)", r)
	}

	pw.SetBlueQuantum(0)
	if b := pw.GetBlueQuantum(); b != 0 {
		t.Errorf("GetBlueQuantum() = %v, want 0", b)
	}
}

func TestPixelSetQuantumColor(t *testing.T) {
	pw := newPixelWand(t)
	maxQ := Quantum(MaxRGB())
	pw.SetQuantumColor(PixelPacket{Red: maxQ, Green: 0, Blue: maxQ})

	if r := pw.GetRedQuantum(); r != maxQ {
		t.Errorf("GetRedQuantum() = %v, want %v", r, maxQ)
	}
	if g := pw.GetGreenQuantum(); g != 0 {
		t.Errorf("GetGreenQuantum() = %v, want 0", g)
	}
	if b := pw.GetBlueQuantum(); b != maxQ {
		t.Errorf("GetBlueQuantum() = %v, want %v", b, maxQ)
	}
}

func TestPixelColorAsString(t *testing.T) {
	pw := newPixelWand(t)
	if !pw.SetColor("#102030") {
		t.Fatal("SetColor failed")
	}
	s := pw.GetColorAsString()
	if s == nil {
		t.Fatal("GetColorAsString() returned nil")
	}
	defer s.Close()
	text, err := s.Text()
	if err != nil {
		t.Fatalf("Text() error: %v", err)
	}
	if text == "" {
		t.Fatal("GetColorAsString() returned empty string")
	}
}

func TestPixelColorCount(t *testing.T) {
	pw := newPixelWand(t)
	pw.SetColorCount(42)
	if n := pw.GetColorCount(); n != 42 {
		t.Errorf("GetColorCount() = %d, want 42", n)
	}
}

func TestPixelCloneIndependence(t *testing.T) {
	pw := newPixelWand(t)
	pw.SetColor("blue")

	dup := pw.Clone()
	defer dup.Destroy()
	if b := dup.GetBlue(); math.Abs(b-1.0) > 1e-6 {
		t.Fatalf("clone GetBlue() = %v, want 1.0", b)
	}

	dup.SetColor("green")
	if b := pw.GetBlue(); math.Abs(b-1.0) > 1e-6 {
		t.Fatalf("original mutated by clone: GetBlue() = %v", b)
	}
}

func TestPixelDestroyIdempotent(t *testing.T) {
	pw := NewPixelWand()
	pw.Destroy()
	pw.Destroy()
}
