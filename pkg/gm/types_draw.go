package gm

/*
#include <wand/magick_wand.h>
*/
import "C"

// Enum categories consumed by the drawing wand.

// FillRule determines the algorithm used to decide whether a point is
// inside a polygon being filled.
//
// http://www.graphicsmagick.org/api/types.html#fillrule
type FillRule uint32

const (
	UndefinedRule FillRule = FillRule(C.UndefinedRule)
	EvenOddRule   FillRule = FillRule(C.EvenOddRule)
	NonZeroRule   FillRule = FillRule(C.NonZeroRule)

	UnknownRule FillRule = unknownEnum
)

var knownFillRules = []FillRule{UndefinedRule, EvenOddRule, NonZeroRule}

func FillRuleFromNative(v uint32) FillRule {
	return fromNative(knownFillRules, v, UnknownRule)
}

func (t FillRule) Native() uint32 { return uint32(t) }

// ClipPathUnits defines the coordinate system a clip path is interpreted in.
//
// http://www.graphicsmagick.org/api/types.html#clippathunits
type ClipPathUnits uint32

const (
	UserSpace         ClipPathUnits = ClipPathUnits(C.UserSpace)
	UserSpaceOnUse    ClipPathUnits = ClipPathUnits(C.UserSpaceOnUse)
	ObjectBoundingBox ClipPathUnits = ClipPathUnits(C.ObjectBoundingBox)

	UnknownClipPathUnits ClipPathUnits = unknownEnum
)

var knownClipPathUnits = []ClipPathUnits{
	UserSpace, UserSpaceOnUse, ObjectBoundingBox,
}

func ClipPathUnitsFromNative(v uint32) ClipPathUnits {
	return fromNative(knownClipPathUnits, v, UnknownClipPathUnits)
}

func (t ClipPathUnits) Native() uint32 { return uint32(t) }

// PaintMethod selects the pixel-filling algorithm employed when replacing
// pixel colors: a single point, every matching pixel, floodfill from a
// point, floodfill up to a border color, or every pixel in the image.
//
// http://www.graphicsmagick.org/api/types.html#paintmethod
type PaintMethod uint32

const (
	PointMethod        PaintMethod = PaintMethod(C.PointMethod)
	ReplaceMethod      PaintMethod = PaintMethod(C.ReplaceMethod)
	FloodfillMethod    PaintMethod = PaintMethod(C.FloodfillMethod)
	FillToBorderMethod PaintMethod = PaintMethod(C.FillToBorderMethod)
	ResetMethod        PaintMethod = PaintMethod(C.ResetMethod)

	UnknownMethod PaintMethod = unknownEnum
)

var knownPaintMethods = []PaintMethod{
	PointMethod, ReplaceMethod, FloodfillMethod, FillToBorderMethod,
	ResetMethod,
}

func PaintMethodFromNative(v uint32) PaintMethod {
	return fromNative(knownPaintMethods, v, UnknownMethod)
}

func (t PaintMethod) Native() uint32 { return uint32(t) }

// StretchType expresses the font stretch to request when rendering text.
//
// http://www.graphicsmagick.org/api/types.html#stretchtype
type StretchType uint32

const (
	NormalStretch         StretchType = StretchType(C.NormalStretch)
	UltraCondensedStretch StretchType = StretchType(C.UltraCondensedStretch)
	ExtraCondensedStretch StretchType = StretchType(C.ExtraCondensedStretch)
	CondensedStretch      StretchType = StretchType(C.CondensedStretch)
	SemiCondensedStretch  StretchType = StretchType(C.SemiCondensedStretch)
	SemiExpandedStretch   StretchType = StretchType(C.SemiExpandedStretch)
	ExpandedStretch       StretchType = StretchType(C.ExpandedStretch)
	ExtraExpandedStretch  StretchType = StretchType(C.ExtraExpandedStretch)
	UltraExpandedStretch  StretchType = StretchType(C.UltraExpandedStretch)
	AnyStretch            StretchType = StretchType(C.AnyStretch)

	UnknownStretch StretchType = unknownEnum
)

var knownStretchTypes = []StretchType{
	NormalStretch, UltraCondensedStretch, ExtraCondensedStretch,
	CondensedStretch, SemiCondensedStretch, SemiExpandedStretch,
	ExpandedStretch, ExtraExpandedStretch, UltraExpandedStretch,
	AnyStretch,
}

func StretchTypeFromNative(v uint32) StretchType {
	return fromNative(knownStretchTypes, v, UnknownStretch)
}

func (t StretchType) Native() uint32 { return uint32(t) }

// StyleType expresses the font style to request when rendering text.
//
// http://www.graphicsmagick.org/api/types.html#styletype
type StyleType uint32

const (
	NormalStyle  StyleType = StyleType(C.NormalStyle)
	ItalicStyle  StyleType = StyleType(C.ItalicStyle)
	ObliqueStyle StyleType = StyleType(C.ObliqueStyle)
	AnyStyle     StyleType = StyleType(C.AnyStyle)

	UnknownStyle StyleType = unknownEnum
)

var knownStyleTypes = []StyleType{
	NormalStyle, ItalicStyle, ObliqueStyle, AnyStyle,
}

func StyleTypeFromNative(v uint32) StyleType {
	return fromNative(knownStyleTypes, v, UnknownStyle)
}

func (t StyleType) Native() uint32 { return uint32(t) }

// LineCap is the shape drawn at the end of open subpaths when stroked.
type LineCap uint32

const (
	UndefinedCap LineCap = LineCap(C.UndefinedCap)
	ButtCap      LineCap = LineCap(C.ButtCap)
	RoundCap     LineCap = LineCap(C.RoundCap)
	SquareCap    LineCap = LineCap(C.SquareCap)

	UnknownCap LineCap = unknownEnum
)

var knownLineCaps = []LineCap{UndefinedCap, ButtCap, RoundCap, SquareCap}

func LineCapFromNative(v uint32) LineCap {
	return fromNative(knownLineCaps, v, UnknownCap)
}

func (t LineCap) Native() uint32 { return uint32(t) }

// LineJoin is the shape drawn at the corners of stroked paths.
type LineJoin uint32

const (
	UndefinedJoin LineJoin = LineJoin(C.UndefinedJoin)
	MiterJoin     LineJoin = LineJoin(C.MiterJoin)
	RoundJoin     LineJoin = LineJoin(C.RoundJoin)
	BevelJoin     LineJoin = LineJoin(C.BevelJoin)

	UnknownJoin LineJoin = unknownEnum
)

var knownLineJoins = []LineJoin{
	UndefinedJoin, MiterJoin, RoundJoin, BevelJoin,
}

func LineJoinFromNative(v uint32) LineJoin {
	return fromNative(knownLineJoins, v, UnknownJoin)
}

func (t LineJoin) Native() uint32 { return uint32(t) }

// DecorationType applies a decoration (underline, overline, line-through)
// to rendered text.
//
// http://www.graphicsmagick.org/api/types.html#decorationtype
type DecorationType uint32

const (
	NoDecoration          DecorationType = DecorationType(C.NoDecoration)
	UnderlineDecoration   DecorationType = DecorationType(C.UnderlineDecoration)
	OverlineDecoration    DecorationType = DecorationType(C.OverlineDecoration)
	LineThroughDecoration DecorationType = DecorationType(C.LineThroughDecoration)

	UnknownDecoration DecorationType = unknownEnum
)

var knownDecorationTypes = []DecorationType{
	NoDecoration, UnderlineDecoration, OverlineDecoration,
	LineThroughDecoration,
}

func DecorationTypeFromNative(v uint32) DecorationType {
	return fromNative(knownDecorationTypes, v, UnknownDecoration)
}

func (t DecorationType) Native() uint32 { return uint32(t) }
