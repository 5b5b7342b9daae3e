package gm

/*
#cgo pkg-config: GraphicsMagickWand
#include <wand/magick_wand.h>

static unsigned long gmMaxRGB() { return MaxRGB; }
static double gmMaxRGBDouble() { return MaxRGBDouble; }
*/
import "C"

import (
	"sync"
	"sync/atomic"
)

var (
	initOnce    sync.Once
	initialized atomic.Bool

	// initRuns counts executions of the native init call; it exists so the
	// exactly-once guarantee is observable from tests.
	initRuns atomic.Int32
)

// Initialize runs the native library's global initialization
// (InitializeMagick) exactly once for the process. It must be called before
// any other function in this package.
//
// GraphicsMagick requires initialization to happen on the process's original
// thread, before any worker threads exist. Call Initialize from the primary
// goroutine during program startup, before spawning concurrency. Subsequent
// calls, from any goroutine, are no-ops; racing first calls are safe and
// all of them return only after initialization has completed.
func Initialize() {
	initOnce.Do(func() {
		C.InitializeMagick(nil)
		resolveCapabilities()
		initRuns.Add(1)
		initialized.Store(true)
	})
}

// HasInitialized reports whether Initialize has completed. It never blocks.
func HasInitialized() bool {
	return initialized.Load()
}

// assertInitialized panics when Initialize has not run. Proceeding into the
// native library uninitialized is undefined behavior, so this is a
// programmer error rather than a recoverable one.
func assertInitialized() {
	if !HasInitialized() {
		panic("gm: Initialize must be called before any other gm function")
	}
}

// MaxRGB returns the largest quantum value supported by the linked library
// (255, 65535 or 4294967295 depending on its configured quantum depth).
func MaxRGB() uint32 {
	return uint32(C.gmMaxRGB())
}

// MaxRGBDouble returns MaxRGB as a float64, for normalized color math.
func MaxRGBDouble() float64 {
	return float64(C.gmMaxRGBDouble())
}
