package gm

/*
#include <stdlib.h>
#include <wand/magick_wand.h>
*/
import "C"

import "unsafe"

// Quantum is a single color sample at the depth the native library was
// compiled with (see GetQuantumDepth). Values range from 0 to MaxRGB.
type Quantum C.Quantum

// PixelWand wraps the native pixel (color) context. Color components are
// addressable either as normalized doubles in [0, 1] or as raw quantums.
type PixelWand struct {
	pw *C.PixelWand
}

// NewPixelWand allocates a pixel wand. It panics if Initialize has not
// been called, or if the native allocator returns null.
func NewPixelWand() *PixelWand {
	assertInitialized()
	pw := C.NewPixelWand()
	if pw == nil {
		panic("gm: NewPixelWand returned nil")
	}
	return &PixelWand{pw: pw}
}

// Clone allocates an independent copy of the pixel wand.
func (p *PixelWand) Clone() *PixelWand {
	clone := C.ClonePixelWand(p.pw)
	if clone == nil {
		panic("gm: ClonePixelWand returned nil")
	}
	return &PixelWand{pw: clone}
}

// Destroy releases the native handle. Subsequent calls are no-ops.
func (p *PixelWand) Destroy() {
	if p.pw != nil {
		C.DestroyPixelWand(p.pw)
		p.pw = nil
	}
}

// Ptr exposes the native handle for interoperation with other bindings.
// The pointer is valid until Destroy.
func (p *PixelWand) Ptr() unsafe.Pointer {
	return unsafe.Pointer(p.pw)
}

// SetColor sets the color from a string, e.g. "blue", "#0000ff",
// "rgb(0,0,255)", or "cmyk(100,100,100,10)". It reports whether the color
// string was valid.
func (p *PixelWand) SetColor(color string) bool {
	cs := C.CString(color)
	defer C.free(unsafe.Pointer(cs))
	return C.PixelSetColor(p.pw, cs) != 0
}

// GetColorAsString returns the color as a string, e.g. "rgb(255,0,0)".
func (p *PixelWand) GetColorAsString() *MagickString {
	return newMagickString(C.PixelGetColorAsString(p.pw))
}

// PixelPacket is a device-level pixel: channel values in quantum units.
type PixelPacket struct {
	Red     Quantum
	Green   Quantum
	Blue    Quantum
	Opacity Quantum
}

// SetQuantumColor sets the color from device-level quantum values.
func (p *PixelWand) SetQuantumColor(color PixelPacket) {
	packet := C.PixelPacket{
		red:     C.Quantum(color.Red),
		green:   C.Quantum(color.Green),
		blue:    C.Quantum(color.Blue),
		opacity: C.Quantum(color.Opacity),
	}
	C.PixelSetQuantumColor(p.pw, &packet)
}

// GetColorCount returns the color count associated with this color, e.g.
// the pixel population when the wand came from a histogram.
func (p *PixelWand) GetColorCount() uint {
	return uint(C.PixelGetColorCount(p.pw))
}

// SetColorCount sets the color count associated with this color.
func (p *PixelWand) SetColorCount(count uint) {
	C.PixelSetColorCount(p.pw, C.ulong(count))
}

// GetRed returns the normalized red value of the color.
func (p *PixelWand) GetRed() float64 { return float64(C.PixelGetRed(p.pw)) }

// SetRed sets the normalized red value of the color.
func (p *PixelWand) SetRed(red float64) { C.PixelSetRed(p.pw, C.double(red)) }

// GetRedQuantum returns the red value of the color as a quantum.
func (p *PixelWand) GetRedQuantum() Quantum { return Quantum(C.PixelGetRedQuantum(p.pw)) }

// SetRedQuantum sets the red value of the color as a quantum.
func (p *PixelWand) SetRedQuantum(red Quantum) { C.PixelSetRedQuantum(p.pw, C.Quantum(red)) }

// GetGreen returns the normalized green value of the color.
func (p *PixelWand) GetGreen() float64 { return float64(C.PixelGetGreen(p.pw)) }

// SetGreen sets the normalized green value of the color.
func (p *PixelWand) SetGreen(green float64) { C.PixelSetGreen(p.pw, C.double(green)) }

// GetGreenQuantum returns the green value of the color as a quantum.
func (p *PixelWand) GetGreenQuantum() Quantum { return Quantum(C.PixelGetGreenQuantum(p.pw)) }

// SetGreenQuantum sets the green value of the color as a quantum.
func (p *PixelWand) SetGreenQuantum(green Quantum) { C.PixelSetGreenQuantum(p.pw, C.Quantum(green)) }

// GetBlue returns the normalized blue value of the color.
func (p *PixelWand) GetBlue() float64 { return float64(C.PixelGetBlue(p.pw)) }

// SetBlue sets the normalized blue value of the color.
func (p *PixelWand) SetBlue(blue float64) { C.PixelSetBlue(p.pw, C.double(blue)) }

// GetBlueQuantum returns the blue value of the color as a quantum.
func (p *PixelWand) GetBlueQuantum() Quantum { return Quantum(C.PixelGetBlueQuantum(p.pw)) }

// SetBlueQuantum sets the blue value of the color as a quantum.
func (p *PixelWand) SetBlueQuantum(blue Quantum) { C.PixelSetBlueQuantum(p.pw, C.Quantum(blue)) }

// GetOpacity returns the normalized opacity value of the color.
func (p *PixelWand) GetOpacity() float64 { return float64(C.PixelGetOpacity(p.pw)) }

// SetOpacity sets the normalized opacity value of the color.
func (p *PixelWand) SetOpacity(opacity float64) { C.PixelSetOpacity(p.pw, C.double(opacity)) }

// GetOpacityQuantum returns the opacity value of the color as a quantum.
func (p *PixelWand) GetOpacityQuantum() Quantum { return Quantum(C.PixelGetOpacityQuantum(p.pw)) }

// SetOpacityQuantum sets the opacity value of the color as a quantum.
func (p *PixelWand) SetOpacityQuantum(opacity Quantum) {
	C.PixelSetOpacityQuantum(p.pw, C.Quantum(opacity))
}

// GetCyan returns the normalized cyan value of the color.
func (p *PixelWand) GetCyan() float64 { return float64(C.PixelGetCyan(p.pw)) }

// SetCyan sets the normalized cyan value of the color.
func (p *PixelWand) SetCyan(cyan float64) { C.PixelSetCyan(p.pw, C.double(cyan)) }

// GetCyanQuantum returns the cyan value of the color as a quantum.
func (p *PixelWand) GetCyanQuantum() Quantum { return Quantum(C.PixelGetCyanQuantum(p.pw)) }

// SetCyanQuantum sets the cyan value of the color as a quantum.
func (p *PixelWand) SetCyanQuantum(cyan Quantum) { C.PixelSetCyanQuantum(p.pw, C.Quantum(cyan)) }

// GetMagenta returns the normalized magenta value of the color.
func (p *PixelWand) GetMagenta() float64 { return float64(C.PixelGetMagenta(p.pw)) }

// SetMagenta sets the normalized magenta value of the color.
func (p *PixelWand) SetMagenta(magenta float64) { C.PixelSetMagenta(p.pw, C.double(magenta)) }

// GetMagentaQuantum returns the magenta value of the color as a quantum.
func (p *PixelWand) GetMagentaQuantum() Quantum { return Quantum(C.PixelGetMagentaQuantum(p.pw)) }

// SetMagentaQuantum sets the magenta value of the color as a quantum.
func (p *PixelWand) SetMagentaQuantum(magenta Quantum) {
	C.PixelSetMagentaQuantum(p.pw, C.Quantum(magenta))
}

// GetYellow returns the normalized yellow value of the color.
func (p *PixelWand) GetYellow() float64 { return float64(C.PixelGetYellow(p.pw)) }

// SetYellow sets the normalized yellow value of the color.
func (p *PixelWand) SetYellow(yellow float64) { C.PixelSetYellow(p.pw, C.double(yellow)) }

// GetYellowQuantum returns the yellow value of the color as a quantum.
func (p *PixelWand) GetYellowQuantum() Quantum { return Quantum(C.PixelGetYellowQuantum(p.pw)) }

// SetYellowQuantum sets the yellow value of the color as a quantum.
func (p *PixelWand) SetYellowQuantum(yellow Quantum) {
	C.PixelSetYellowQuantum(p.pw, C.Quantum(yellow))
}

// GetBlack returns the normalized black value of the color.
func (p *PixelWand) GetBlack() float64 { return float64(C.PixelGetBlack(p.pw)) }

// SetBlack sets the normalized black value of the color.
func (p *PixelWand) SetBlack(black float64) { C.PixelSetBlack(p.pw, C.double(black)) }

// GetBlackQuantum returns the black value of the color as a quantum.
func (p *PixelWand) GetBlackQuantum() Quantum { return Quantum(C.PixelGetBlackQuantum(p.pw)) }

// SetBlackQuantum sets the black value of the color as a quantum.
func (p *PixelWand) SetBlackQuantum(black Quantum) { C.PixelSetBlackQuantum(p.pw, C.Quantum(black)) }
