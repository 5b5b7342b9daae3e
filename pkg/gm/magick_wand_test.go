package gm

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

// newLogoWand reads the checked-in 311x177 fixture.
func newLogoWand(t *testing.T) *MagickWand {
	t.Helper()
	w := NewMagickWand()
	t.Cleanup(w.Destroy)
	if err := w.ReadImage(filepath.Join("testdata", "logo.png")); err != nil {
		t.Fatalf("ReadImage(logo.png): %v", err)
	}
	return w
}

// newCanvasWand builds a small in-memory solid-color image, avoiding any
// file dependency.
func newCanvasWand(t *testing.T, columns, rows uint, color string) *MagickWand {
	t.Helper()
	w := NewMagickWand()
	t.Cleanup(w.Destroy)
	if err := w.SetSize(columns, rows); err != nil {
		t.Fatalf("SetSize: %v", err)
	}
	if err := w.ReadImage("xc:" + color); err != nil {
		t.Fatalf("ReadImage(xc:%s): %v", color, err)
	}
	return w
}

func TestReadImage(t *testing.T) {
	w := newLogoWand(t)
	if got, want := w.GetImageWidth(), uint(311); got != want {
		t.Fatalf("GetImageWidth() = %d; want %d", got, want)
	}
	if got, want := w.GetImageHeight(), uint(177); got != want {
		t.Fatalf("GetImageHeight() = %d; want %d", got, want)
	}
	format := w.GetImageFormat()
	defer format.Close()
	if got := format.String(); got != "PNG" {
		t.Fatalf("GetImageFormat() = %q; want PNG", got)
	}
}

func TestReadImageMissing(t *testing.T) {
	w := NewMagickWand()
	defer w.Destroy()
	err := w.ReadImage(filepath.Join("testdata", "no-such-file.png"))
	if err == nil {
		t.Fatal("ReadImage of a missing file succeeded")
	}
	var gmErr *Error
	if !errors.As(err, &gmErr) {
		t.Fatalf("ReadImage error is %T; want *Error", err)
	}
	if gmErr.Description == "" {
		t.Fatal("translated error has empty description")
	}
}

func TestReadImageBlob(t *testing.T) {
	blob, err := os.ReadFile(filepath.Join("testdata", "logo.png"))
	if err != nil {
		t.Fatal(err)
	}
	w := NewMagickWand()
	defer w.Destroy()
	if err := w.ReadImageBlob(blob); err != nil {
		t.Fatalf("ReadImageBlob: %v", err)
	}
	if got := w.GetImageWidth(); got != 311 {
		t.Fatalf("GetImageWidth() = %d; want 311", got)
	}
}

func TestReadImageBlobGarbage(t *testing.T) {
	w := NewMagickWand()
	defer w.Destroy()
	err := w.ReadImageBlob([]byte("definitely not an image"))
	if err == nil {
		t.Fatal("ReadImageBlob of garbage succeeded")
	}
	var gmErr *Error
	if !errors.As(err, &gmErr) {
		t.Fatalf("error is %T; want *Error", err)
	}
	switch gmErr.Kind.Severity() {
	case SeverityError, SeverityFatal, SeverityWarning:
	default:
		t.Fatalf("garbage blob produced severity %v (kind %d)", gmErr.Kind.Severity(), gmErr.Kind)
	}
}

// TestResizeRoundTrip resizes the fixture, encodes it as BMP, and decodes
// the blob with an independent pure-Go decoder to confirm the pixels
// survived the trip.
func TestResizeRoundTrip(t *testing.T) {
	w := newLogoWand(t)
	require.NoError(t, w.ResizeImage(100, 100, LanczosFilter, 1.0))
	require.Equal(t, uint(100), w.GetImageWidth())
	require.Equal(t, uint(100), w.GetImageHeight())

	require.NoError(t, w.SetImageFormat("BMP"))
	blob := w.WriteImageBlob()
	require.NotEmpty(t, blob)

	img, err := bmp.Decode(bytes.NewReader(blob))
	require.NoError(t, err)
	bounds := img.Bounds()
	require.Equal(t, 100, bounds.Dx())
	require.Equal(t, 100, bounds.Dy())
}

func TestResizeZeroDimensionPanics(t *testing.T) {
	w := newCanvasWand(t, 4, 4, "white")
	defer func() {
		if recover() == nil {
			t.Fatal("ResizeImage(0, 10) did not panic")
		}
	}()
	_ = w.ResizeImage(0, 10, LanczosFilter, 1.0)
}

func TestGetImagePixelsEmptyPixmapPanics(t *testing.T) {
	w := newCanvasWand(t, 4, 4, "white")
	defer func() {
		msg, ok := recover().(string)
		if !ok {
			t.Fatal(`GetImagePixels with pixmap "" did not panic`)
		}
		if !strings.Contains(msg, "pixmap") {
			t.Fatalf("panic message %q does not mention the pixmap precondition", msg)
		}
	}()
	_, _ = w.GetImagePixels(0, 0, 4, 4, "")
}

func TestSetImagePixelsEmptyPixmapPanics(t *testing.T) {
	w := newCanvasWand(t, 4, 4, "white")
	defer func() {
		if recover() == nil {
			t.Fatal(`SetImagePixels with pixmap "" did not panic`)
		}
	}()
	_ = w.SetImagePixels(0, 0, 4, 4, "", nil)
}

func TestCloneIndependence(t *testing.T) {
	w := newLogoWand(t)
	clone := w.Clone()
	defer clone.Destroy()

	if err := clone.ResizeImage(50, 50, BoxFilter, 1.0); err != nil {
		t.Fatalf("ResizeImage on clone: %v", err)
	}
	if got := clone.GetImageWidth(); got != 50 {
		t.Fatalf("clone width = %d; want 50", got)
	}
	if got := w.GetImageWidth(); got != 311 {
		t.Fatalf("original width changed to %d after resizing the clone", got)
	}
}

func TestDestroyIdempotent(t *testing.T) {
	w := NewMagickWand()
	w.Destroy()
	w.Destroy()
	if w.Ptr() != nil {
		t.Fatal("Ptr() non-nil after Destroy")
	}
}

func TestMaybeOperationsOnEmptyWand(t *testing.T) {
	w := NewMagickWand()
	defer w.Destroy()
	if got := w.AverageImages(); got != nil {
		got.Destroy()
		t.Fatal("AverageImages on an empty wand returned a wand")
	}
	if got := w.CoalesceImages(); got != nil {
		got.Destroy()
		t.Fatal("CoalesceImages on an empty wand returned a wand")
	}
	if got := w.GetImage(); got != nil {
		got.Destroy()
		t.Fatal("GetImage on an empty wand returned a wand")
	}
	if got := w.WriteImageBlob(); got != nil {
		t.Fatal("WriteImageBlob on an empty wand returned a blob")
	}
}

func TestImageListIteration(t *testing.T) {
	w := newCanvasWand(t, 2, 2, "red")
	second := newCanvasWand(t, 2, 2, "blue")
	if err := w.AddImage(second); err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	if got := w.GetNumberImages(); got != 2 {
		t.Fatalf("GetNumberImages() = %d; want 2", got)
	}

	w.ResetIterator()
	n := 0
	for w.NextImage() {
		n++
	}
	if n != 2 {
		t.Fatalf("iterated %d images; want 2", n)
	}

	appended := w.AppendImages(false)
	if appended == nil {
		t.Fatal("AppendImages returned nil for a two-image wand")
	}
	defer appended.Destroy()
	if got := appended.GetImageWidth(); got != 4 {
		t.Fatalf("appended width = %d; want 4", got)
	}
}

func TestImageAttributes(t *testing.T) {
	w := newCanvasWand(t, 2, 2, "white")
	if err := w.SetImageAttribute("comment", "fixture"); err != nil {
		t.Fatalf("SetImageAttribute: %v", err)
	}
	attr := w.GetImageAttribute("comment")
	if attr == nil {
		t.Fatal("GetImageAttribute returned nil for a set attribute")
	}
	defer attr.Close()
	if got := attr.String(); got != "fixture" {
		t.Fatalf("attribute = %q; want fixture", got)
	}
	if got := w.GetImageAttribute("no-such-attribute"); got != nil {
		got.Close()
		t.Fatal("GetImageAttribute returned non-nil for an unset attribute")
	}
}

func TestImageHistogram(t *testing.T) {
	w := newCanvasWand(t, 4, 4, "red")
	hist := w.GetImageHistogram()
	if len(hist) != 1 {
		t.Fatalf("histogram of a solid image has %d colors; want 1", len(hist))
	}
	defer func() {
		for _, px := range hist {
			px.Destroy()
		}
	}()
	if got := hist[0].GetColorCount(); got != 16 {
		t.Fatalf("color count = %d; want 16", got)
	}
	if red := hist[0].GetRed(); red < 0.99 {
		t.Fatalf("histogram color red = %v; want ~1", red)
	}
}

func TestCompositeAndCompare(t *testing.T) {
	base := newCanvasWand(t, 8, 8, "white")
	overlay := newCanvasWand(t, 4, 4, "black")
	if err := base.CompositeImage(overlay, OverCompositeOp, 2, 2); err != nil {
		t.Fatalf("CompositeImage: %v", err)
	}

	ref := newCanvasWand(t, 8, 8, "white")
	diff, distortion := base.CompareImages(ref, MeanSquaredErrorMetric)
	if diff != nil {
		diff.Destroy()
	}
	if distortion == 0 {
		t.Fatal("distortion = 0 after compositing a black square")
	}
}

func TestGetImagePixels(t *testing.T) {
	w := newCanvasWand(t, 2, 2, "red")
	px, err := w.GetImagePixels(0, 0, 2, 2, "RGB")
	if err != nil {
		t.Fatalf("GetImagePixels: %v", err)
	}
	if len(px) != 2*2*3 {
		t.Fatalf("pixel buffer length = %d; want 12", len(px))
	}
	if px[0] != 255 || px[1] != 0 || px[2] != 0 {
		t.Fatalf("first pixel = %v; want 255 0 0", px[:3])
	}
}

func TestImageProfileAbsent(t *testing.T) {
	w := newCanvasWand(t, 2, 2, "white")
	if got := w.GetImageProfile("ICC"); got != nil {
		t.Fatalf("GetImageProfile on a bare canvas = %v; want nil", got)
	}
	if got := w.RemoveImageProfile("ICC"); got != nil {
		t.Fatalf("RemoveImageProfile on a bare canvas = %v; want nil", got)
	}
}

func TestClassQueries(t *testing.T) {
	w := newCanvasWand(t, 2, 2, "white")
	gray, err := w.IsGrayImage()
	if err != nil {
		t.Fatalf("IsGrayImage: %v", err)
	}
	if !gray {
		t.Fatal("IsGrayImage(white canvas) = false")
	}
	opaque, err := w.IsOpaqueImage()
	if err != nil {
		t.Fatalf("IsOpaqueImage: %v", err)
	}
	if !opaque {
		t.Fatal("IsOpaqueImage(white canvas) = false")
	}
}

func TestQueryFormats(t *testing.T) {
	formats := QueryFormats("*")
	if len(formats) == 0 {
		t.Fatal("QueryFormats(*) returned nothing")
	}
	found := false
	for _, f := range formats {
		if f == "PNG" {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("QueryFormats(*) missing PNG (got %d formats)", len(formats))
	}
}

func TestResourceLimits(t *testing.T) {
	if !SetResourceLimit(DiskResource, 1<<30) {
		t.Fatal("SetResourceLimit(DiskResource) rejected")
	}
	if got := GetResourceLimit(DiskResource); got != 1<<30 {
		t.Fatalf("GetResourceLimit(DiskResource) = %d; want %d", got, int64(1<<30))
	}
}
