package gm

import (
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	banner, packed := Version()
	if !strings.Contains(banner, "GraphicsMagick") {
		t.Fatalf("Version() banner = %q; want it to name GraphicsMagick", banner)
	}
	if packed == 0 {
		t.Fatal("Version() packed = 0")
	}
}

func TestLibVersion(t *testing.T) {
	v := LibVersion()
	if v.Major != 1 {
		t.Fatalf("LibVersion() = %s; want a 1.x release", v)
	}
	if !Supports(1, 3, 29) {
		t.Fatalf("Supports(1, 3, 29) = false for library %s; the build floor guarantees it", v)
	}
	if Supports(99, 0, 0) {
		t.Fatal("Supports(99, 0, 0) = true")
	}
}

func TestUnsupportedError(t *testing.T) {
	err := &UnsupportedError{Op: "MagickAutoOrientImage", Min: "1.3.26"}
	msg := err.Error()
	for _, want := range []string{"MagickAutoOrientImage", "1.3.26"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("UnsupportedError message %q missing %q", msg, want)
		}
	}
}

func TestGetQuantumDepth(t *testing.T) {
	depth, s := GetQuantumDepth()
	switch depth {
	case 8, 16, 32:
	default:
		t.Fatalf("GetQuantumDepth() = %d; want 8, 16, or 32", depth)
	}
	if !strings.HasPrefix(s, "Q") {
		t.Fatalf("GetQuantumDepth() text = %q; want a Q-prefixed form", s)
	}
}
