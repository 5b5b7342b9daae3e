package gm

/*
#include <stdlib.h>
#include <wand/magick_wand.h>

// MagickSetDepth is exported by libGraphicsMagickWand but missing from the
// installed headers; declare it so cgo can resolve the call.
extern unsigned int MagickSetDepth(MagickWand *wand, const unsigned long depth);
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// MagickWand wraps the native image-processing context. A wand owns its
// handle exclusively; Clone allocates an independent copy and Destroy
// releases the handle exactly once. A MagickWand must not be shared across
// goroutines without external locking.
type MagickWand struct {
	mw *C.MagickWand

	// blob keeps the caller's buffer reachable while the native side holds a
	// reference to it (ReadImageBlob does not copy).
	blob []byte
}

// NewMagickWand allocates a wand. It panics if Initialize has not been
// called, or if the native allocator returns null.
func NewMagickWand() *MagickWand {
	assertInitialized()
	mw := C.NewMagickWand()
	if mw == nil {
		panic("gm: NewMagickWand returned nil")
	}
	return &MagickWand{mw: mw}
}

// newMagickWandFromNative wraps a native handle returned by an operation,
// or nil if the native call produced no result.
func newMagickWandFromNative(mw *C.MagickWand) *MagickWand {
	if mw == nil {
		return nil
	}
	return &MagickWand{mw: mw}
}

// Clone allocates an independent copy of the wand and its images.
func (w *MagickWand) Clone() *MagickWand {
	clone := C.CloneMagickWand(w.mw)
	if clone == nil {
		panic("gm: CloneMagickWand returned nil")
	}
	return &MagickWand{mw: clone}
}

// Destroy releases the native handle. Subsequent calls are no-ops, and any
// other method call after Destroy is invalid.
func (w *MagickWand) Destroy() {
	if w.mw != nil {
		C.DestroyMagickWand(w.mw)
		w.mw = nil
		w.blob = nil
	}
}

// Ptr exposes the native handle for interoperation with other bindings.
// The pointer is valid until Destroy.
func (w *MagickWand) Ptr() unsafe.Pointer {
	return unsafe.Pointer(w.mw)
}

// checkStatus translates a native pass/fail status into a Go error,
// fetching the wand exception on failure.
func (w *MagickWand) checkStatus(status C.uint) error {
	if status == C.MagickFail {
		return w.exception()
	}
	return nil
}

// exception fetches and translates the wand's current exception.
func (w *MagickWand) exception() error {
	var severity C.ExceptionType
	description := C.MagickGetException(w.mw, &severity)
	err := newError(severity, description)
	runtime.KeepAlive(w)
	return err
}

func assertDims(columns, rows uint) {
	if columns == 0 || rows == 0 {
		panic("gm: columns and rows must be positive")
	}
}

func assertPixmap(pixmap string) {
	if pixmap == "" {
		panic("gm: pixmap must name at least one component")
	}
}

// GetFilename returns the filename associated with the wand.
func (w *MagickWand) GetFilename() *MagickString {
	return newMagickString(C.MagickGetFilename(w.mw))
}

// SetFilename sets the filename before you read or write an image file.
func (w *MagickWand) SetFilename(filename string) error {
	cs := C.CString(filename)
	defer C.free(unsafe.Pointer(cs))
	return w.checkStatus(C.MagickSetFilename(w.mw, cs))
}

// SetFormat sets the file format used when reading from a blob with no
// discernible header.
func (w *MagickWand) SetFormat(format string) error {
	cs := C.CString(format)
	defer C.free(unsafe.Pointer(cs))
	return w.checkStatus(C.MagickSetFormat(w.mw, cs))
}

// SetCompressionQuality sets the quality used when writing the image.
func (w *MagickWand) SetCompressionQuality(quality uint) error {
	return w.checkStatus(C.MagickSetCompressionQuality(w.mw, C.ulong(quality)))
}

// SetDepth sets the depth used when reading raw formats that carry no
// depth information of their own.
func (w *MagickWand) SetDepth(depth uint) error {
	return w.checkStatus(C.MagickSetDepth(w.mw, C.ulong(depth)))
}

// GetSize returns the size associated with the wand.
func (w *MagickWand) GetSize() (columns, rows uint) {
	var c, r C.ulong
	C.MagickGetSize(w.mw, &c, &r)
	return uint(c), uint(r)
}

// SetSize sets the size of the wand, for use before reading a raw or
// size-less format (e.g. an xc: pseudo-image).
func (w *MagickWand) SetSize(columns, rows uint) error {
	return w.checkStatus(C.MagickSetSize(w.mw, C.ulong(columns), C.ulong(rows)))
}

// SetInterlaceScheme sets the interlace scheme used when writing the image.
func (w *MagickWand) SetInterlaceScheme(scheme InterlaceType) error {
	return w.checkStatus(C.MagickSetInterlaceScheme(w.mw, C.InterlaceType(scheme)))
}

// SetResolution sets the resolution used when reading formats that lack an
// intrinsic size (e.g. Postscript).
func (w *MagickWand) SetResolution(x, y float64) error {
	return w.checkStatus(C.MagickSetResolution(w.mw, C.double(x), C.double(y)))
}

// SetResolutionUnits sets the units the wand resolution is expressed in.
func (w *MagickWand) SetResolutionUnits(units ResolutionType) error {
	return w.checkStatus(C.MagickSetResolutionUnits(w.mw, C.ResolutionType(units)))
}

// SetPassphrase sets the passphrase used to decrypt protected images.
func (w *MagickWand) SetPassphrase(passphrase string) error {
	cs := C.CString(passphrase)
	defer C.free(unsafe.Pointer(cs))
	return w.checkStatus(C.MagickSetPassphrase(w.mw, cs))
}

// GetSamplingFactors returns the horizontal and vertical sampling factors,
// or nil if none are set.
func (w *MagickWand) GetSamplingFactors() []float64 {
	var n C.ulong
	p := C.MagickGetSamplingFactors(w.mw, &n)
	ds := newDoubleSlice(p, int(n))
	if ds == nil {
		return nil
	}
	defer ds.Close()
	out := make([]float64, ds.Len())
	copy(out, ds.Float64s())
	return out
}

// SetSamplingFactors sets the image sampling factors.
func (w *MagickWand) SetSamplingFactors(factors []float64) error {
	var p *C.double
	if len(factors) > 0 {
		p = (*C.double)(unsafe.Pointer(&factors[0]))
	}
	err := w.checkStatus(C.MagickSetSamplingFactors(w.mw, C.ulong(len(factors)), p))
	runtime.KeepAlive(factors)
	return err
}

// GetConfigureInfo returns the value of the named configure option (e.g.
// "CC", "LIB_VERSION"), or nil if it is not defined.
func (w *MagickWand) GetConfigureInfo(name string) *MagickString {
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	return newMagickString(C.MagickGetConfigureInfo(w.mw, cs))
}

// GetCopyright returns the library copyright string.
func GetCopyright() string {
	assertInitialized()
	return C.GoString(C.MagickGetCopyright())
}

// GetHomeURL returns the library home URL.
func GetHomeURL() string {
	assertInitialized()
	return C.GoString(C.MagickGetHomeURL())
}

// GetPackageName returns the library package name.
func GetPackageName() string {
	assertInitialized()
	return C.GoString(C.MagickGetPackageName())
}

// GetQuantumDepth returns the depth the library quantums were compiled at,
// with its textual form (e.g. "Q8").
func GetQuantumDepth() (uint, string) {
	assertInitialized()
	var depth C.ulong
	s := C.GoString(C.MagickGetQuantumDepth(&depth))
	return uint(depth), s
}

// GetReleaseDate returns the library release date string.
func GetReleaseDate() string {
	assertInitialized()
	return C.GoString(C.MagickGetReleaseDate())
}

// GetResourceLimit returns the current limit for a library resource.
// WidthResource and HeightResource report 0 on libraries older than
// 1.3.21, which do not track them.
func GetResourceLimit(kind ResourceType) uint64 {
	assertInitialized()
	if (kind == WidthResource || kind == HeightResource) && !caps.dimensionResources {
		return 0
	}
	return uint64(C.MagickGetResourceLimit(C.ResourceType(kind)))
}

// SetResourceLimit sets the limit for a library resource. It reports
// whether the limit was accepted; WidthResource and HeightResource are
// never accepted by libraries older than 1.3.21.
func SetResourceLimit(kind ResourceType, limit uint) bool {
	assertInitialized()
	if (kind == WidthResource || kind == HeightResource) && !caps.dimensionResources {
		return false
	}
	return C.MagickSetResourceLimit(C.ResourceType(kind), C.ulong(limit)) != C.MagickFail
}

// QueryFonts returns the fonts matching a glob pattern (e.g. "*"), or nil
// if none match.
func QueryFonts(pattern string) []string {
	assertInitialized()
	cs := C.CString(pattern)
	defer C.free(unsafe.Pointer(cs))
	var n C.ulong
	arr := C.MagickQueryFonts(cs, &n)
	return goStringArray(arr, int(n))
}

// QueryFormats returns the image formats matching a glob pattern (e.g.
// "*"), or nil if none match.
func QueryFormats(pattern string) []string {
	assertInitialized()
	cs := C.CString(pattern)
	defer C.free(unsafe.Pointer(cs))
	var n C.ulong
	arr := C.MagickQueryFormats(cs, &n)
	return goStringArray(arr, int(n))
}

// goStringArray consumes a native array of native strings, releasing every
// element and the array itself. A null array yields nil.
func goStringArray(arr **C.char, n int) []string {
	if arr == nil {
		return nil
	}
	defer relinquish(unsafe.Pointer(arr))
	out := make([]string, 0, n)
	for _, p := range unsafe.Slice(arr, n) {
		out = append(out, goStringFree(p))
	}
	return out
}
