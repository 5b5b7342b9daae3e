package gm

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestMagickStringText(t *testing.T) {
	w := newLogoWand(t)

	s := w.GetImageFormat()
	if s == nil {
		t.Fatal("GetImageFormat() returned nil")
	}
	defer s.Close()

	text, err := s.Text()
	if err != nil {
		t.Fatalf("Text() error: %v", err)
	}
	if text != "PNG" {
		t.Fatalf("Text() = %q, want PNG", text)
	}
	if s.String() != text {
		t.Fatalf("String() = %q, want %q", s.String(), text)
	}
}

func TestMagickStringBytes(t *testing.T) {
	w := newLogoWand(t)

	s := w.GetImageSignature()
	if s == nil {
		t.Fatal("GetImageSignature() returned nil")
	}
	defer s.Close()

	b := s.Bytes()
	if len(b) == 0 {
		t.Fatal("signature is empty")
	}
	if !utf8.Valid(b) {
		t.Fatal("signature bytes are not valid utf-8")
	}
	if strings.TrimLeft(string(b), "0123456789abcdef") != "" {
		t.Fatalf("signature is not hex: %q", b)
	}
}

func TestMagickStringCloseIdempotent(t *testing.T) {
	w := newLogoWand(t)

	s := w.DescribeImage()
	if s == nil {
		t.Fatal("DescribeImage() returned nil")
	}
	s.Close()
	s.Close()

	if s.Bytes() != nil {
		t.Fatal("Bytes() after Close() should be nil")
	}
	if s.String() != "" {
		t.Fatal("String() after Close() should be empty")
	}
}

func TestMagickStringNil(t *testing.T) {
	var s *MagickString
	if s.Bytes() != nil {
		t.Fatal("nil Bytes() should be nil")
	}
	if s.String() != "" {
		t.Fatal("nil String() should be empty")
	}
	if _, err := s.Text(); err != nil {
		t.Fatalf("nil Text() error: %v", err)
	}
	s.Close()
}

func TestSamplingFactorsRoundTrip(t *testing.T) {
	w := newCanvasWand(t, 8, 8, "white")

	want := []float64{2, 1, 1}
	if err := w.SetSamplingFactors(want); err != nil {
		t.Fatalf("SetSamplingFactors: %v", err)
	}
	got := w.GetSamplingFactors()
	if len(got) != len(want) {
		t.Fatalf("GetSamplingFactors() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("GetSamplingFactors()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
