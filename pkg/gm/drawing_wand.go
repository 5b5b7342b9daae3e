package gm

/*
#include <stdlib.h>
#include <wand/magick_wand.h>
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// AffineMatrix holds the coefficients of an affine transformation.
type AffineMatrix struct {
	Sx, Rx, Ry, Sy, Tx, Ty float64
}

// PointInfo is a coordinate pair used by the polygon, polyline, and bezier
// primitives.
type PointInfo struct {
	X, Y float64
}

func cPoints(points []PointInfo) []C.PointInfo {
	out := make([]C.PointInfo, len(points))
	for i, p := range points {
		out[i] = C.PointInfo{x: C.double(p.X), y: C.double(p.Y)}
	}
	return out
}

// DrawingWand wraps the native vector drawing context. Drawing calls
// accumulate state and primitives; nothing is rasterized until the wand is
// passed to MagickWand.DrawImage. The native drawing calls do not report
// errors, so setters and primitives return nothing.
type DrawingWand struct {
	dw *C.DrawingWand
}

// NewDrawingWand allocates a drawing wand. It panics if Initialize has not
// been called, or if the native allocator returns null.
func NewDrawingWand() *DrawingWand {
	assertInitialized()
	dw := C.MagickNewDrawingWand()
	if dw == nil {
		panic("gm: MagickNewDrawingWand returned nil")
	}
	return &DrawingWand{dw: dw}
}

// Destroy releases the native handle. Subsequent calls are no-ops.
func (d *DrawingWand) Destroy() {
	if d.dw != nil {
		C.MagickDestroyDrawingWand(d.dw)
		d.dw = nil
	}
}

// Ptr exposes the native handle for interoperation with other bindings.
// The pointer is valid until Destroy.
func (d *DrawingWand) Ptr() unsafe.Pointer {
	return unsafe.Pointer(d.dw)
}

// Annotation draws text at the given position.
func (d *DrawingWand) Annotation(x, y float64, text string) {
	cs := C.CString(text)
	defer C.free(unsafe.Pointer(cs))
	C.MagickDrawAnnotation(d.dw, C.double(x), C.double(y), (*C.uchar)(unsafe.Pointer(cs)))
}

// Affine adjusts the current affine transformation. The new transformation
// composes with the current one.
func (d *DrawingWand) Affine(m AffineMatrix) {
	cm := C.AffineMatrix{
		sx: C.double(m.Sx), rx: C.double(m.Rx),
		ry: C.double(m.Ry), sy: C.double(m.Sy),
		tx: C.double(m.Tx), ty: C.double(m.Ty),
	}
	C.MagickDrawAffine(d.dw, &cm)
}

// Arc draws an arc within the bounding rectangle from the start to the end
// angle, in degrees.
func (d *DrawingWand) Arc(sx, sy, ex, ey, sd, ed float64) {
	C.MagickDrawArc(d.dw, C.double(sx), C.double(sy), C.double(ex), C.double(ey), C.double(sd), C.double(ed))
}

// Bezier draws a bezier curve through the given points.
func (d *DrawingWand) Bezier(points []PointInfo) {
	if len(points) == 0 {
		return
	}
	pts := cPoints(points)
	C.MagickDrawBezier(d.dw, C.ulong(len(pts)), &pts[0])
	runtime.KeepAlive(pts)
}

// Circle draws a circle centered on (ox, oy) passing through (px, py).
func (d *DrawingWand) Circle(ox, oy, px, py float64) {
	C.MagickDrawCircle(d.dw, C.double(ox), C.double(oy), C.double(px), C.double(py))
}

// GetClipPath returns the current clip path identifier, or nil if none is
// set.
func (d *DrawingWand) GetClipPath() *MagickString {
	return newMagickString(C.MagickDrawGetClipPath(d.dw))
}

// SetClipPath associates a named clip path with the image.
func (d *DrawingWand) SetClipPath(clipPath string) {
	cs := C.CString(clipPath)
	defer C.free(unsafe.Pointer(cs))
	C.MagickDrawSetClipPath(d.dw, cs)
}

// GetClipRule returns the current polygon fill rule used by clipping.
func (d *DrawingWand) GetClipRule() FillRule {
	return FillRuleFromNative(uint32(C.MagickDrawGetClipRule(d.dw)))
}

// SetClipRule sets the polygon fill rule used by clipping.
func (d *DrawingWand) SetClipRule(rule FillRule) {
	C.MagickDrawSetClipRule(d.dw, C.FillRule(rule))
}

// GetClipUnits returns the interpretation of clip path units.
func (d *DrawingWand) GetClipUnits() ClipPathUnits {
	return ClipPathUnitsFromNative(uint32(C.MagickDrawGetClipUnits(d.dw)))
}

// SetClipUnits sets the interpretation of clip path units.
func (d *DrawingWand) SetClipUnits(units ClipPathUnits) {
	C.MagickDrawSetClipUnits(d.dw, C.ClipPathUnits(units))
}

// Color draws color on the image using the current fill color, starting at
// the given point and spreading per the paint method.
func (d *DrawingWand) Color(x, y float64, method PaintMethod) {
	C.MagickDrawColor(d.dw, C.double(x), C.double(y), C.PaintMethod(method))
}

// Comment adds a comment to a vector output stream.
func (d *DrawingWand) Comment(comment string) {
	cs := C.CString(comment)
	defer C.free(unsafe.Pointer(cs))
	C.MagickDrawComment(d.dw, cs)
}

// Ellipse draws an ellipse within the bounding rectangle from the start to
// the end angle, in degrees.
func (d *DrawingWand) Ellipse(ox, oy, rx, ry, start, end float64) {
	C.MagickDrawEllipse(d.dw, C.double(ox), C.double(oy), C.double(rx), C.double(ry), C.double(start), C.double(end))
}

// GetFillColor returns the fill color used by filled objects.
func (d *DrawingWand) GetFillColor() *PixelWand {
	px := NewPixelWand()
	C.MagickDrawGetFillColor(d.dw, px.pw)
	return px
}

// SetFillColor sets the fill color used by filled objects.
func (d *DrawingWand) SetFillColor(fill *PixelWand) {
	C.MagickDrawSetFillColor(d.dw, fill.pw)
}

// SetFillPatternURL sets the URL of a pattern (e.g. "#pattern_id" defined
// by PushPattern/PopPattern) to use as the fill.
func (d *DrawingWand) SetFillPatternURL(url string) {
	cs := C.CString(url)
	defer C.free(unsafe.Pointer(cs))
	C.MagickDrawSetFillPatternURL(d.dw, cs)
}

// GetFillOpacity returns the opacity used by filled objects.
func (d *DrawingWand) GetFillOpacity() float64 {
	return float64(C.MagickDrawGetFillOpacity(d.dw))
}

// SetFillOpacity sets the opacity used by filled objects.
func (d *DrawingWand) SetFillOpacity(opacity float64) {
	C.MagickDrawSetFillOpacity(d.dw, C.double(opacity))
}

// GetFillRule returns the polygon fill rule.
func (d *DrawingWand) GetFillRule() FillRule {
	return FillRuleFromNative(uint32(C.MagickDrawGetFillRule(d.dw)))
}

// SetFillRule sets the polygon fill rule.
func (d *DrawingWand) SetFillRule(rule FillRule) {
	C.MagickDrawSetFillRule(d.dw, C.FillRule(rule))
}

// GetFont returns the font used when rendering text, or nil if none is
// set.
func (d *DrawingWand) GetFont() *MagickString {
	return newMagickString(C.MagickDrawGetFont(d.dw))
}

// SetFont sets the fully-qualified font name used when rendering text.
func (d *DrawingWand) SetFont(fontName string) {
	cs := C.CString(fontName)
	defer C.free(unsafe.Pointer(cs))
	C.MagickDrawSetFont(d.dw, cs)
}

// GetFontFamily returns the font family used when rendering text, or nil
// if none is set.
func (d *DrawingWand) GetFontFamily() *MagickString {
	return newMagickString(C.MagickDrawGetFontFamily(d.dw))
}

// SetFontFamily sets the font family used when rendering text.
func (d *DrawingWand) SetFontFamily(fontFamily string) {
	cs := C.CString(fontFamily)
	defer C.free(unsafe.Pointer(cs))
	C.MagickDrawSetFontFamily(d.dw, cs)
}

// GetFontSize returns the font point size used when rendering text.
func (d *DrawingWand) GetFontSize() float64 {
	return float64(C.MagickDrawGetFontSize(d.dw))
}

// SetFontSize sets the font point size used when rendering text.
func (d *DrawingWand) SetFontSize(pointSize float64) {
	C.MagickDrawSetFontSize(d.dw, C.double(pointSize))
}

// GetFontStretch returns the font stretch used when rendering text.
func (d *DrawingWand) GetFontStretch() StretchType {
	return StretchTypeFromNative(uint32(C.MagickDrawGetFontStretch(d.dw)))
}

// SetFontStretch sets the font stretch used when rendering text.
func (d *DrawingWand) SetFontStretch(stretch StretchType) {
	C.MagickDrawSetFontStretch(d.dw, C.StretchType(stretch))
}

// GetFontStyle returns the font style used when rendering text.
func (d *DrawingWand) GetFontStyle() StyleType {
	return StyleTypeFromNative(uint32(C.MagickDrawGetFontStyle(d.dw)))
}

// SetFontStyle sets the font style used when rendering text.
func (d *DrawingWand) SetFontStyle(style StyleType) {
	C.MagickDrawSetFontStyle(d.dw, C.StyleType(style))
}

// GetFontWeight returns the font weight used when rendering text.
func (d *DrawingWand) GetFontWeight() uint {
	return uint(C.MagickDrawGetFontWeight(d.dw))
}

// SetFontWeight sets the font weight used when rendering text.
func (d *DrawingWand) SetFontWeight(weight uint) {
	C.MagickDrawSetFontWeight(d.dw, C.ulong(weight))
}

// GetGravity returns the text placement gravity.
func (d *DrawingWand) GetGravity() GravityType {
	return GravityTypeFromNative(uint32(C.MagickDrawGetGravity(d.dw)))
}

// SetGravity sets the text placement gravity.
func (d *DrawingWand) SetGravity(gravity GravityType) {
	C.MagickDrawSetGravity(d.dw, C.GravityType(gravity))
}

// Line draws a line between the two points.
func (d *DrawingWand) Line(sx, sy, ex, ey float64) {
	C.MagickDrawLine(d.dw, C.double(sx), C.double(sy), C.double(ex), C.double(ey))
}

// Matte paints on the image's opacity channel, starting at the given
// point and spreading per the paint method.
func (d *DrawingWand) Matte(x, y float64, method PaintMethod) {
	C.MagickDrawMatte(d.dw, C.double(x), C.double(y), C.PaintMethod(method))
}

// PathClose adds a path element to the current path which closes the
// current subpath by drawing a straight line from the current point to the
// current subpath's starting point.
func (d *DrawingWand) PathClose() {
	C.MagickDrawPathClose(d.dw)
}

// PathCurveToAbsolute draws a cubic bezier curve to (x, y) using absolute
// coordinates, with (x1, y1) and (x2, y2) as control points.
func (d *DrawingWand) PathCurveToAbsolute(x1, y1, x2, y2, x, y float64) {
	C.MagickDrawPathCurveToAbsolute(d.dw, C.double(x1), C.double(y1), C.double(x2), C.double(y2), C.double(x), C.double(y))
}

// PathCurveToRelative draws a cubic bezier curve using coordinates
// relative to the current point.
func (d *DrawingWand) PathCurveToRelative(x1, y1, x2, y2, x, y float64) {
	C.MagickDrawPathCurveToRelative(d.dw, C.double(x1), C.double(y1), C.double(x2), C.double(y2), C.double(x), C.double(y))
}

// PathCurveToQuadraticBezierAbsolute draws a quadratic bezier curve to
// (x, y) using absolute coordinates, with (x1, y1) as the control point.
func (d *DrawingWand) PathCurveToQuadraticBezierAbsolute(x1, y1, x, y float64) {
	C.MagickDrawPathCurveToQuadraticBezierAbsolute(d.dw, C.double(x1), C.double(y1), C.double(x), C.double(y))
}

// PathCurveToQuadraticBezierRelative draws a quadratic bezier curve using
// coordinates relative to the current point.
func (d *DrawingWand) PathCurveToQuadraticBezierRelative(x1, y1, x, y float64) {
	C.MagickDrawPathCurveToQuadraticBezierRelative(d.dw, C.double(x1), C.double(y1), C.double(x), C.double(y))
}

// PathCurveToQuadraticBezierSmoothAbsolute draws a smooth quadratic bezier
// curve to (x, y) using absolute coordinates, with the control point
// reflected from the previous curve segment.
func (d *DrawingWand) PathCurveToQuadraticBezierSmoothAbsolute(x, y float64) {
	C.MagickDrawPathCurveToQuadraticBezierSmoothAbsolute(d.dw, C.double(x), C.double(y))
}

// PathCurveToQuadraticBezierSmoothRelative draws a smooth quadratic bezier
// curve using coordinates relative to the current point.
func (d *DrawingWand) PathCurveToQuadraticBezierSmoothRelative(x, y float64) {
	C.MagickDrawPathCurveToQuadraticBezierSmoothRelative(d.dw, C.double(x), C.double(y))
}

// PathCurveToSmoothAbsolute draws a smooth cubic bezier curve to (x, y)
// using absolute coordinates, with the first control point reflected from
// the previous curve segment and (x2, y2) as the second.
func (d *DrawingWand) PathCurveToSmoothAbsolute(x2, y2, x, y float64) {
	C.MagickDrawPathCurveToSmoothAbsolute(d.dw, C.double(x2), C.double(y2), C.double(x), C.double(y))
}

// PathCurveToSmoothRelative draws a smooth cubic bezier curve using
// coordinates relative to the current point.
func (d *DrawingWand) PathCurveToSmoothRelative(x2, y2, x, y float64) {
	C.MagickDrawPathCurveToSmoothRelative(d.dw, C.double(x2), C.double(y2), C.double(x), C.double(y))
}

// PathEllipticArcAbsolute draws an elliptical arc to (x, y) using absolute
// coordinates.
func (d *DrawingWand) PathEllipticArcAbsolute(rx, ry, xAxisRotation float64, largeArc, sweep bool, x, y float64) {
	C.MagickDrawPathEllipticArcAbsolute(d.dw, C.double(rx), C.double(ry), C.double(xAxisRotation), bToUint(largeArc), bToUint(sweep), C.double(x), C.double(y))
}

// PathEllipticArcRelative draws an elliptical arc using coordinates
// relative to the current point.
func (d *DrawingWand) PathEllipticArcRelative(rx, ry, xAxisRotation float64, largeArc, sweep bool, x, y float64) {
	C.MagickDrawPathEllipticArcRelative(d.dw, C.double(rx), C.double(ry), C.double(xAxisRotation), bToUint(largeArc), bToUint(sweep), C.double(x), C.double(y))
}

// PathFinish terminates the current path.
func (d *DrawingWand) PathFinish() {
	C.MagickDrawPathFinish(d.dw)
}

// PathLineToAbsolute draws a line to (x, y) using absolute coordinates.
func (d *DrawingWand) PathLineToAbsolute(x, y float64) {
	C.MagickDrawPathLineToAbsolute(d.dw, C.double(x), C.double(y))
}

// PathLineToRelative draws a line using coordinates relative to the
// current point.
func (d *DrawingWand) PathLineToRelative(x, y float64) {
	C.MagickDrawPathLineToRelative(d.dw, C.double(x), C.double(y))
}

// PathLineToHorizontalAbsolute draws a horizontal line to the absolute x
// coordinate.
func (d *DrawingWand) PathLineToHorizontalAbsolute(x float64) {
	C.MagickDrawPathLineToHorizontalAbsolute(d.dw, C.double(x))
}

// PathLineToHorizontalRelative draws a horizontal line relative to the
// current point.
func (d *DrawingWand) PathLineToHorizontalRelative(x float64) {
	C.MagickDrawPathLineToHorizontalRelative(d.dw, C.double(x))
}

// PathLineToVerticalAbsolute draws a vertical line to the absolute y
// coordinate.
func (d *DrawingWand) PathLineToVerticalAbsolute(y float64) {
	C.MagickDrawPathLineToVerticalAbsolute(d.dw, C.double(y))
}

// PathLineToVerticalRelative draws a vertical line relative to the
// current point.
func (d *DrawingWand) PathLineToVerticalRelative(y float64) {
	C.MagickDrawPathLineToVerticalRelative(d.dw, C.double(y))
}

// PathMoveToAbsolute starts a new subpath at the given absolute
// coordinate.
func (d *DrawingWand) PathMoveToAbsolute(x, y float64) {
	C.MagickDrawPathMoveToAbsolute(d.dw, C.double(x), C.double(y))
}

// PathMoveToRelative starts a new subpath at a coordinate relative to the
// current point.
func (d *DrawingWand) PathMoveToRelative(x, y float64) {
	C.MagickDrawPathMoveToRelative(d.dw, C.double(x), C.double(y))
}

// PathStart declares the start of a path drawing list, terminated by
// PathFinish.
func (d *DrawingWand) PathStart() {
	C.MagickDrawPathStart(d.dw)
}

// Point draws a point at the given coordinate.
func (d *DrawingWand) Point(x, y float64) {
	C.MagickDrawPoint(d.dw, C.double(x), C.double(y))
}

// Polygon draws a polygon through the given points, stroking the outline
// and filling the interior per the current settings.
func (d *DrawingWand) Polygon(points []PointInfo) {
	if len(points) == 0 {
		return
	}
	pts := cPoints(points)
	C.MagickDrawPolygon(d.dw, C.ulong(len(pts)), &pts[0])
	runtime.KeepAlive(pts)
}

// Polyline draws a polyline through the given points.
func (d *DrawingWand) Polyline(points []PointInfo) {
	if len(points) == 0 {
		return
	}
	pts := cPoints(points)
	C.MagickDrawPolyline(d.dw, C.ulong(len(pts)), &pts[0])
	runtime.KeepAlive(pts)
}

// PopClipPath terminates a clip path definition.
func (d *DrawingWand) PopClipPath() {
	C.MagickDrawPopClipPath(d.dw)
}

// PopDefs terminates a definition list.
func (d *DrawingWand) PopDefs() {
	C.MagickDrawPopDefs(d.dw)
}

// PopGraphicContext restores the graphic context saved by the matching
// PushGraphicContext.
func (d *DrawingWand) PopGraphicContext() {
	C.MagickDrawPopGraphicContext(d.dw)
}

// PopPattern terminates a pattern definition.
func (d *DrawingWand) PopPattern() {
	C.MagickDrawPopPattern(d.dw)
}

// PushClipPath starts a clip path definition addressable by the given id.
func (d *DrawingWand) PushClipPath(clipPathID string) {
	cs := C.CString(clipPathID)
	defer C.free(unsafe.Pointer(cs))
	C.MagickDrawPushClipPath(d.dw, cs)
}

// PushDefs indicates that following commands create named elements for
// early processing.
func (d *DrawingWand) PushDefs() {
	C.MagickDrawPushDefs(d.dw)
}

// PushGraphicContext saves the current graphic context so a later
// PopGraphicContext can restore it.
func (d *DrawingWand) PushGraphicContext() {
	C.MagickDrawPushGraphicContext(d.dw)
}

// PushPattern starts a pattern definition with the given id and bounds.
func (d *DrawingWand) PushPattern(patternID string, x, y, width, height float64) {
	cs := C.CString(patternID)
	defer C.free(unsafe.Pointer(cs))
	C.MagickDrawPushPattern(d.dw, cs, C.double(x), C.double(y), C.double(width), C.double(height))
}

// Rectangle draws a rectangle between the two corners.
func (d *DrawingWand) Rectangle(x1, y1, x2, y2 float64) {
	C.MagickDrawRectangle(d.dw, C.double(x1), C.double(y1), C.double(x2), C.double(y2))
}

// Rotate composes a rotation, in degrees, onto the current affine
// transformation.
func (d *DrawingWand) Rotate(degrees float64) {
	C.MagickDrawRotate(d.dw, C.double(degrees))
}

// RoundRectangle draws a rectangle with rounded corners of the given
// radii.
func (d *DrawingWand) RoundRectangle(x1, y1, x2, y2, rx, ry float64) {
	C.MagickDrawRoundRectangle(d.dw, C.double(x1), C.double(y1), C.double(x2), C.double(y2), C.double(rx), C.double(ry))
}

// Scale composes a scaling onto the current affine transformation.
func (d *DrawingWand) Scale(x, y float64) {
	C.MagickDrawScale(d.dw, C.double(x), C.double(y))
}

// SkewX composes a horizontal skew, in degrees, onto the current affine
// transformation.
func (d *DrawingWand) SkewX(degrees float64) {
	C.MagickDrawSkewX(d.dw, C.double(degrees))
}

// SkewY composes a vertical skew, in degrees, onto the current affine
// transformation.
func (d *DrawingWand) SkewY(degrees float64) {
	C.MagickDrawSkewY(d.dw, C.double(degrees))
}

// GetStrokeColor returns the color used to stroke object outlines.
func (d *DrawingWand) GetStrokeColor() *PixelWand {
	px := NewPixelWand()
	C.MagickDrawGetStrokeColor(d.dw, px.pw)
	return px
}

// SetStrokeColor sets the color used to stroke object outlines.
func (d *DrawingWand) SetStrokeColor(stroke *PixelWand) {
	C.MagickDrawSetStrokeColor(d.dw, stroke.pw)
}

// SetStrokePatternURL sets the pattern used to stroke object outlines.
func (d *DrawingWand) SetStrokePatternURL(url string) {
	cs := C.CString(url)
	defer C.free(unsafe.Pointer(cs))
	C.MagickDrawSetStrokePatternURL(d.dw, cs)
}

// GetStrokeAntialias reports whether stroked outlines are antialiased.
func (d *DrawingWand) GetStrokeAntialias() bool {
	return C.MagickDrawGetStrokeAntialias(d.dw) != 0
}

// SetStrokeAntialias controls whether stroked outlines are antialiased.
func (d *DrawingWand) SetStrokeAntialias(antialias bool) {
	C.MagickDrawSetStrokeAntialias(d.dw, bToUint(antialias))
}

// GetStrokeDashArray returns the pattern of dashes and gaps used to stroke
// paths, or nil for a solid stroke.
func (d *DrawingWand) GetStrokeDashArray() []float64 {
	var n C.ulong
	p := C.MagickDrawGetStrokeDashArray(d.dw, &n)
	ds := newDoubleSlice(p, int(n))
	if ds == nil {
		return nil
	}
	defer ds.Close()
	out := make([]float64, ds.Len())
	copy(out, ds.Float64s())
	return out
}

// SetStrokeDashArray sets the pattern of dashes and gaps used to stroke
// paths. An empty slice restores a solid stroke.
func (d *DrawingWand) SetStrokeDashArray(dash []float64) {
	var p *C.double
	if len(dash) > 0 {
		p = (*C.double)(unsafe.Pointer(&dash[0]))
	}
	C.MagickDrawSetStrokeDashArray(d.dw, C.ulong(len(dash)), p)
	runtime.KeepAlive(dash)
}

// GetStrokeDashOffset returns the offset into the dash pattern at which
// the stroke starts.
func (d *DrawingWand) GetStrokeDashOffset() float64 {
	return float64(C.MagickDrawGetStrokeDashOffset(d.dw))
}

// SetStrokeDashOffset sets the offset into the dash pattern at which the
// stroke starts.
func (d *DrawingWand) SetStrokeDashOffset(offset float64) {
	C.MagickDrawSetStrokeDashOffset(d.dw, C.double(offset))
}

// GetStrokeLineCap returns the shape used at the ends of open stroked
// subpaths.
func (d *DrawingWand) GetStrokeLineCap() LineCap {
	return LineCapFromNative(uint32(C.MagickDrawGetStrokeLineCap(d.dw)))
}

// SetStrokeLineCap sets the shape used at the ends of open stroked
// subpaths.
func (d *DrawingWand) SetStrokeLineCap(lineCap LineCap) {
	C.MagickDrawSetStrokeLineCap(d.dw, C.LineCap(lineCap))
}

// GetStrokeLineJoin returns the shape used at the corners of stroked
// paths.
func (d *DrawingWand) GetStrokeLineJoin() LineJoin {
	return LineJoinFromNative(uint32(C.MagickDrawGetStrokeLineJoin(d.dw)))
}

// SetStrokeLineJoin sets the shape used at the corners of stroked paths.
func (d *DrawingWand) SetStrokeLineJoin(lineJoin LineJoin) {
	C.MagickDrawSetStrokeLineJoin(d.dw, C.LineJoin(lineJoin))
}

// GetStrokeMiterLimit returns the miter limit of stroked paths.
func (d *DrawingWand) GetStrokeMiterLimit() uint {
	return uint(C.MagickDrawGetStrokeMiterLimit(d.dw))
}

// SetStrokeMiterLimit sets the miter limit: when two line segments meet at
// a sharp angle, a miter join past this limit is converted to a bevel.
func (d *DrawingWand) SetStrokeMiterLimit(miterLimit uint) {
	C.MagickDrawSetStrokeMiterLimit(d.dw, C.ulong(miterLimit))
}

// GetStrokeOpacity returns the opacity of stroked object outlines.
func (d *DrawingWand) GetStrokeOpacity() float64 {
	return float64(C.MagickDrawGetStrokeOpacity(d.dw))
}

// SetStrokeOpacity sets the opacity of stroked object outlines.
func (d *DrawingWand) SetStrokeOpacity(opacity float64) {
	C.MagickDrawSetStrokeOpacity(d.dw, C.double(opacity))
}

// GetStrokeWidth returns the width of the stroke used to draw object
// outlines.
func (d *DrawingWand) GetStrokeWidth() float64 {
	return float64(C.MagickDrawGetStrokeWidth(d.dw))
}

// SetStrokeWidth sets the width of the stroke used to draw object
// outlines.
func (d *DrawingWand) SetStrokeWidth(width float64) {
	C.MagickDrawSetStrokeWidth(d.dw, C.double(width))
}

// GetTextAntialias reports whether text is antialiased.
func (d *DrawingWand) GetTextAntialias() bool {
	return C.MagickDrawGetTextAntialias(d.dw) != 0
}

// SetTextAntialias controls whether text is antialiased.
func (d *DrawingWand) SetTextAntialias(antialias bool) {
	C.MagickDrawSetTextAntialias(d.dw, bToUint(antialias))
}

// GetTextDecoration returns the text decoration.
func (d *DrawingWand) GetTextDecoration() DecorationType {
	return DecorationTypeFromNative(uint32(C.MagickDrawGetTextDecoration(d.dw)))
}

// SetTextDecoration sets the text decoration.
func (d *DrawingWand) SetTextDecoration(decoration DecorationType) {
	C.MagickDrawSetTextDecoration(d.dw, C.DecorationType(decoration))
}

// GetTextEncoding returns the code set used for text annotations, or nil
// if none is set.
func (d *DrawingWand) GetTextEncoding() *MagickString {
	return newMagickString(C.MagickDrawGetTextEncoding(d.dw))
}

// SetTextEncoding sets the code set used for text annotations (e.g.
// "UTF-8").
func (d *DrawingWand) SetTextEncoding(encoding string) {
	cs := C.CString(encoding)
	defer C.free(unsafe.Pointer(cs))
	C.MagickDrawSetTextEncoding(d.dw, cs)
}

// GetTextUnderColor returns the color drawn under text annotations.
func (d *DrawingWand) GetTextUnderColor() *PixelWand {
	px := NewPixelWand()
	C.MagickDrawGetTextUnderColor(d.dw, px.pw)
	return px
}

// SetTextUnderColor sets the color drawn under text annotations.
func (d *DrawingWand) SetTextUnderColor(under *PixelWand) {
	C.MagickDrawSetTextUnderColor(d.dw, under.pw)
}

// Translate composes a translation onto the current affine transformation.
func (d *DrawingWand) Translate(x, y float64) {
	C.MagickDrawTranslate(d.dw, C.double(x), C.double(y))
}

// SetViewbox sets the overall canvas size for vector output.
func (d *DrawingWand) SetViewbox(x1, y1, x2, y2 uint) {
	C.MagickDrawSetViewbox(d.dw, C.ulong(x1), C.ulong(y1), C.ulong(x2), C.ulong(y2))
}
