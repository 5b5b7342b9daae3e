package gm

/*
#include <wand/magick_wand.h>
*/
import "C"

import (
	"fmt"
	"regexp"

	"github.com/blang/semver"
)

// Minimum GraphicsMagick release this package is built against. Every C
// symbol used here exists from this release on; linking against anything
// older fails at build time, and loading an older shared library at run
// time makes the gated operations return an UnsupportedError.
const minLibVersion = "1.3.29"

var (
	libVersion    semver.Version
	libVersionRaw string
	caps          capabilities
)

// capabilities are resolved once, during Initialize, from the running
// library's reported version. Operations whose native support arrived after
// GraphicsMagick 1.3.20 consult these flags instead of scattering version
// comparisons through call sites.
type capabilities struct {
	dimensionResources bool // width/height resource limits, >= 1.3.21
	imageGravity       bool // MagickGet/SetImageGravity, >= 1.3.22
	imageOrientation   bool // orientation, auto-orient, iterations, image options, >= 1.3.26
	classQueries       bool // MagickIs*Image, MagickHasColormap, MagickDisplayImages, >= 1.3.29
}

// semver substring like 1.3.38 inside the version banner
// "GraphicsMagick 1.3.38 2022-03-26 Q16 http://www.GraphicsMagick.org/".
var libVersionRe = regexp.MustCompile(`\d+\.\d+\.\d+`)

func resolveCapabilities() {
	var packed C.ulong
	libVersionRaw = C.GoString(C.MagickGetVersion(&packed))

	v, err := semver.Parse(libVersionRe.FindString(libVersionRaw))
	if err != nil {
		// An unparseable banner means a library far outside the supported
		// range; leave every capability off rather than guessing.
		return
	}
	libVersion = v

	caps = capabilities{
		dimensionResources: atLeast(v, 1, 3, 21),
		imageGravity:       atLeast(v, 1, 3, 22),
		imageOrientation:   atLeast(v, 1, 3, 26),
		classQueries:       atLeast(v, 1, 3, 29),
	}
}

func atLeast(v semver.Version, major, minor, patch uint64) bool {
	return v.GE(semver.Version{Major: major, Minor: minor, Patch: patch})
}

// Version returns the native library's version banner string and its packed
// numeric version constant.
func Version() (string, uint) {
	assertInitialized()
	var packed C.ulong
	banner := C.GoString(C.MagickGetVersion(&packed))
	return banner, uint(packed)
}

// LibVersion returns the running library's release number parsed from its
// version banner. It is the zero Version if the banner was unparseable.
func LibVersion() semver.Version {
	assertInitialized()
	return libVersion
}

// Supports reports whether the running native library is at least the given
// release.
func Supports(major, minor, patch uint64) bool {
	assertInitialized()
	return atLeast(libVersion, major, minor, patch)
}

// UnsupportedError is returned by operations whose native support arrived in
// a GraphicsMagick release newer than the one loaded at run time.
type UnsupportedError struct {
	Op  string // native function name
	Min string // first release providing it
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("gm: %s requires GraphicsMagick >= %s, running %s", e.Op, e.Min, libVersionRaw)
}

func unsupported(ok bool, op, min string) error {
	if ok {
		return nil
	}
	return &UnsupportedError{Op: op, Min: min}
}
