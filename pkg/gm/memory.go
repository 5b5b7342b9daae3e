package gm

/*
#include <stdlib.h>
#include <string.h>
#include <wand/magick_wand.h>
*/
import "C"

import (
	"fmt"
	"strings"
	"unicode/utf8"
	"unsafe"
)

// relinquish returns a buffer allocated by the native library to its
// allocator. Safe to call with nil.
func relinquish(p unsafe.Pointer) {
	if p != nil {
		C.MagickRelinquishMemory(p)
	}
}

// MagickString owns a NUL-terminated C string allocated by the native
// library. The accessors are valid until Close; Close releases the buffer
// and is idempotent. A MagickString is not safe for concurrent use.
type MagickString struct {
	p *C.char
}

// newMagickString wraps a native string, or returns nil if the native call
// produced a null pointer.
func newMagickString(p *C.char) *MagickString {
	if p == nil {
		return nil
	}
	return &MagickString{p: p}
}

// Bytes returns the string contents as a byte slice aliasing the native
// buffer, without the terminating NUL. The slice must not be used after
// Close. Returns nil after Close.
func (s *MagickString) Bytes() []byte {
	if s == nil || s.p == nil {
		return nil
	}
	n := C.strlen(s.p)
	if n == 0 {
		return []byte{}
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(s.p)), n)
}

// Text copies the contents out as a Go string, failing if the bytes are not
// valid UTF-8.
func (s *MagickString) Text() (string, error) {
	if s == nil || s.p == nil {
		return "", nil
	}
	v := C.GoString(s.p)
	if !utf8.ValidString(v) {
		return "", fmt.Errorf("gm: string %q is not valid utf-8", v)
	}
	return v, nil
}

// String copies the contents out as a Go string, replacing invalid UTF-8
// sequences with the replacement character.
func (s *MagickString) String() string {
	if s == nil || s.p == nil {
		return ""
	}
	return strings.ToValidUTF8(C.GoString(s.p), "�")
}

// Close releases the native buffer. Subsequent calls are no-ops.
func (s *MagickString) Close() {
	if s != nil && s.p != nil {
		relinquish(unsafe.Pointer(s.p))
		s.p = nil
	}
}

// goStringFree copies a native string into a Go string (lossily, as
// MagickString.String does) and releases the native buffer. Returns "" for
// a null pointer.
func goStringFree(p *C.char) string {
	s := newMagickString(p)
	if s == nil {
		return ""
	}
	defer s.Close()
	return s.String()
}

// DoubleSlice owns an array of doubles allocated by the native library.
type DoubleSlice struct {
	p *C.double
	n int
}

func newDoubleSlice(p *C.double, n int) *DoubleSlice {
	if p == nil {
		return nil
	}
	return &DoubleSlice{p: p, n: n}
}

// Float64s returns the values as a slice aliasing the native buffer. The
// slice must not be used after Close. Returns nil after Close.
func (d *DoubleSlice) Float64s() []float64 {
	if d == nil || d.p == nil {
		return nil
	}
	if d.n == 0 {
		return []float64{}
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(d.p)), d.n)
}

// Len returns the number of values.
func (d *DoubleSlice) Len() int {
	if d == nil || d.p == nil {
		return 0
	}
	return d.n
}

// Close releases the native buffer. Subsequent calls are no-ops.
func (d *DoubleSlice) Close() {
	if d != nil && d.p != nil {
		relinquish(unsafe.Pointer(d.p))
		d.p = nil
		d.n = 0
	}
}
