// Package gm is a memory-safe Go binding over the GraphicsMagick wand C API.
//
// All image work (decoding, encoding, resampling, color transforms,
// compression) happens inside the GraphicsMagick shared library; this package
// only translates between Go and the native wand interfaces: typed enums for
// the C integer constants, exclusive-ownership wrappers for the opaque wand
// handles, and typed errors built from the native exception state.
//
// # Requirements
//
// GraphicsMagick 1.3.29 or newer with development headers, discoverable via
// pkg-config (package GraphicsMagickWand). On Debian/Ubuntu:
//
//	sudo apt install graphicsmagick libgraphicsmagick1-dev
//
// Newest tested release is 1.3.45. The running library's version can be
// inspected with Version or LibVersion, and Supports reports whether a
// given minimum is met.
//
// # Initialization
//
// Call Initialize once, from the primary goroutine, before spawning worker
// goroutines and before any other call in this package:
//
//	gm.Initialize()
//
//	w := gm.NewMagickWand()
//	defer w.Destroy()
//	if err := w.ReadImage("in.png"); err != nil {
//		return err
//	}
//	if err := w.ResizeImage(100, 100, gm.LanczosFilter, 1.0); err != nil {
//		return err
//	}
//	if err := w.WriteImage("out.png"); err != nil {
//		return err
//	}
//
// Using a wand before Initialize is a programmer error and panics.
//
// # Concurrency
//
// Every call blocks the calling goroutine until the native operation
// finishes; nothing here is cancellable. A wand is owned by exactly one
// goroutine at a time — this package adds no locking. GraphicsMagick may
// parallelize pixel work internally with OpenMP; that is controlled by the
// OMP_NUM_THREADS environment variable, which the native library reads
// directly. See http://www.graphicsmagick.org/OpenMP.html.
//
// # Resource management
//
// Wands and native allocations are not garbage collected. Call Destroy on
// every wand (defer is fine; Destroy is idempotent) and Close on any
// MagickString or DoubleSlice you hold onto.
package gm
