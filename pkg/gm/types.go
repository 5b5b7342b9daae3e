package gm

/*
#include <wand/magick_wand.h>
*/
import "C"

// Each enum below mirrors one native constant category. Conversion to the
// native integer is a plain cast (every constant is defined from the C
// enumerator, so it is total and lossless); conversion from a native integer
// goes through fromNative over the enum's known-value table, and every enum
// uses the same policy for unmapped input: a dedicated Unknown sentinel.

// unknownEnum is the shared sentinel value for enum variants the native
// library reported but this build does not know.
const unknownEnum = 1<<32 - 1

func fromNative[E ~uint32](known []E, v uint32, unknown E) E {
	for _, k := range known {
		if uint32(k) == v {
			return k
		}
	}
	return unknown
}

// ChannelType selects the image channel an operation applies to.
//
// http://www.graphicsmagick.org/api/types.html#channeltype
type ChannelType uint32

const (
	UndefinedChannel ChannelType = ChannelType(C.UndefinedChannel)
	RedChannel       ChannelType = ChannelType(C.RedChannel)
	CyanChannel      ChannelType = ChannelType(C.CyanChannel)
	GreenChannel     ChannelType = ChannelType(C.GreenChannel)
	MagentaChannel   ChannelType = ChannelType(C.MagentaChannel)
	BlueChannel      ChannelType = ChannelType(C.BlueChannel)
	YellowChannel    ChannelType = ChannelType(C.YellowChannel)
	OpacityChannel   ChannelType = ChannelType(C.OpacityChannel)
	BlackChannel     ChannelType = ChannelType(C.BlackChannel)
	MatteChannel     ChannelType = ChannelType(C.MatteChannel)
	AllChannels      ChannelType = ChannelType(C.AllChannels)
	GrayChannel      ChannelType = ChannelType(C.GrayChannel)

	UnknownChannel ChannelType = unknownEnum
)

var knownChannelTypes = []ChannelType{
	UndefinedChannel, RedChannel, CyanChannel, GreenChannel, MagentaChannel,
	BlueChannel, YellowChannel, OpacityChannel, BlackChannel, MatteChannel,
	AllChannels, GrayChannel,
}

func ChannelTypeFromNative(v uint32) ChannelType {
	return fromNative(knownChannelTypes, v, UnknownChannel)
}

func (t ChannelType) Native() uint32 { return uint32(t) }

// FilterType adjusts the resampling filter used when resizing. GraphicsMagick
// defaults to Lanczos, which gives the best results for most images in a
// reasonable amount of time; simpler filters (Triangle, Box) run faster but
// may show artifacts.
//
// http://www.graphicsmagick.org/api/types.html#filtertypes
type FilterType uint32

const (
	UndefinedFilter FilterType = FilterType(C.UndefinedFilter)
	PointFilter     FilterType = FilterType(C.PointFilter)
	BoxFilter       FilterType = FilterType(C.BoxFilter)
	TriangleFilter  FilterType = FilterType(C.TriangleFilter)
	HermiteFilter   FilterType = FilterType(C.HermiteFilter)
	HanningFilter   FilterType = FilterType(C.HanningFilter)
	HammingFilter   FilterType = FilterType(C.HammingFilter)
	BlackmanFilter  FilterType = FilterType(C.BlackmanFilter)
	GaussianFilter  FilterType = FilterType(C.GaussianFilter)
	QuadraticFilter FilterType = FilterType(C.QuadraticFilter)
	CubicFilter     FilterType = FilterType(C.CubicFilter)
	CatromFilter    FilterType = FilterType(C.CatromFilter)
	MitchellFilter  FilterType = FilterType(C.MitchellFilter)
	LanczosFilter   FilterType = FilterType(C.LanczosFilter)
	BesselFilter    FilterType = FilterType(C.BesselFilter)
	SincFilter      FilterType = FilterType(C.SincFilter)

	UnknownFilter FilterType = unknownEnum
)

var knownFilterTypes = []FilterType{
	UndefinedFilter, PointFilter, BoxFilter, TriangleFilter, HermiteFilter,
	HanningFilter, HammingFilter, BlackmanFilter, GaussianFilter,
	QuadraticFilter, CubicFilter, CatromFilter, MitchellFilter,
	LanczosFilter, BesselFilter, SincFilter,
}

func FilterTypeFromNative(v uint32) FilterType {
	return fromNative(knownFilterTypes, v, UnknownFilter)
}

func (t FilterType) Native() uint32 { return uint32(t) }

// CompositeOperator selects the algorithm used to compose one image onto
// another.
//
// http://www.graphicsmagick.org/api/types.html#compositeoperator
type CompositeOperator uint32

const (
	UndefinedCompositeOp   CompositeOperator = CompositeOperator(C.UndefinedCompositeOp)
	OverCompositeOp        CompositeOperator = CompositeOperator(C.OverCompositeOp)
	InCompositeOp          CompositeOperator = CompositeOperator(C.InCompositeOp)
	OutCompositeOp         CompositeOperator = CompositeOperator(C.OutCompositeOp)
	AtopCompositeOp        CompositeOperator = CompositeOperator(C.AtopCompositeOp)
	XorCompositeOp         CompositeOperator = CompositeOperator(C.XorCompositeOp)
	PlusCompositeOp        CompositeOperator = CompositeOperator(C.PlusCompositeOp)
	MinusCompositeOp       CompositeOperator = CompositeOperator(C.MinusCompositeOp)
	AddCompositeOp         CompositeOperator = CompositeOperator(C.AddCompositeOp)
	SubtractCompositeOp    CompositeOperator = CompositeOperator(C.SubtractCompositeOp)
	DifferenceCompositeOp  CompositeOperator = CompositeOperator(C.DifferenceCompositeOp)
	MultiplyCompositeOp    CompositeOperator = CompositeOperator(C.MultiplyCompositeOp)
	BumpmapCompositeOp     CompositeOperator = CompositeOperator(C.BumpmapCompositeOp)
	CopyCompositeOp        CompositeOperator = CompositeOperator(C.CopyCompositeOp)
	CopyRedCompositeOp     CompositeOperator = CompositeOperator(C.CopyRedCompositeOp)
	CopyGreenCompositeOp   CompositeOperator = CompositeOperator(C.CopyGreenCompositeOp)
	CopyBlueCompositeOp    CompositeOperator = CompositeOperator(C.CopyBlueCompositeOp)
	CopyOpacityCompositeOp CompositeOperator = CompositeOperator(C.CopyOpacityCompositeOp)
	ClearCompositeOp       CompositeOperator = CompositeOperator(C.ClearCompositeOp)
	DissolveCompositeOp    CompositeOperator = CompositeOperator(C.DissolveCompositeOp)
	DisplaceCompositeOp    CompositeOperator = CompositeOperator(C.DisplaceCompositeOp)
	ModulateCompositeOp    CompositeOperator = CompositeOperator(C.ModulateCompositeOp)
	ThresholdCompositeOp   CompositeOperator = CompositeOperator(C.ThresholdCompositeOp)
	NoCompositeOp          CompositeOperator = CompositeOperator(C.NoCompositeOp)
	DarkenCompositeOp      CompositeOperator = CompositeOperator(C.DarkenCompositeOp)
	LightenCompositeOp     CompositeOperator = CompositeOperator(C.LightenCompositeOp)
	HueCompositeOp         CompositeOperator = CompositeOperator(C.HueCompositeOp)
	SaturateCompositeOp    CompositeOperator = CompositeOperator(C.SaturateCompositeOp)
	ColorizeCompositeOp    CompositeOperator = CompositeOperator(C.ColorizeCompositeOp)
	LuminizeCompositeOp    CompositeOperator = CompositeOperator(C.LuminizeCompositeOp)
	ScreenCompositeOp      CompositeOperator = CompositeOperator(C.ScreenCompositeOp)
	OverlayCompositeOp     CompositeOperator = CompositeOperator(C.OverlayCompositeOp)
	CopyCyanCompositeOp    CompositeOperator = CompositeOperator(C.CopyCyanCompositeOp)
	CopyMagentaCompositeOp CompositeOperator = CompositeOperator(C.CopyMagentaCompositeOp)
	CopyYellowCompositeOp  CompositeOperator = CompositeOperator(C.CopyYellowCompositeOp)
	CopyBlackCompositeOp   CompositeOperator = CompositeOperator(C.CopyBlackCompositeOp)
	DivideCompositeOp      CompositeOperator = CompositeOperator(C.DivideCompositeOp)
	HardLightCompositeOp   CompositeOperator = CompositeOperator(C.HardLightCompositeOp)
	ExclusionCompositeOp   CompositeOperator = CompositeOperator(C.ExclusionCompositeOp)
	ColorDodgeCompositeOp  CompositeOperator = CompositeOperator(C.ColorDodgeCompositeOp)
	ColorBurnCompositeOp   CompositeOperator = CompositeOperator(C.ColorBurnCompositeOp)
	SoftLightCompositeOp   CompositeOperator = CompositeOperator(C.SoftLightCompositeOp)
	LinearBurnCompositeOp  CompositeOperator = CompositeOperator(C.LinearBurnCompositeOp)
	LinearDodgeCompositeOp CompositeOperator = CompositeOperator(C.LinearDodgeCompositeOp)
	LinearLightCompositeOp CompositeOperator = CompositeOperator(C.LinearLightCompositeOp)
	VividLightCompositeOp  CompositeOperator = CompositeOperator(C.VividLightCompositeOp)
	PinLightCompositeOp    CompositeOperator = CompositeOperator(C.PinLightCompositeOp)
	HardMixCompositeOp     CompositeOperator = CompositeOperator(C.HardMixCompositeOp)

	UnknownCompositeOp CompositeOperator = unknownEnum
)

var knownCompositeOperators = []CompositeOperator{
	UndefinedCompositeOp, OverCompositeOp, InCompositeOp, OutCompositeOp,
	AtopCompositeOp, XorCompositeOp, PlusCompositeOp, MinusCompositeOp,
	AddCompositeOp, SubtractCompositeOp, DifferenceCompositeOp,
	MultiplyCompositeOp, BumpmapCompositeOp, CopyCompositeOp,
	CopyRedCompositeOp, CopyGreenCompositeOp, CopyBlueCompositeOp,
	CopyOpacityCompositeOp, ClearCompositeOp, DissolveCompositeOp,
	DisplaceCompositeOp, ModulateCompositeOp, ThresholdCompositeOp,
	NoCompositeOp, DarkenCompositeOp, LightenCompositeOp, HueCompositeOp,
	SaturateCompositeOp, ColorizeCompositeOp, LuminizeCompositeOp,
	ScreenCompositeOp, OverlayCompositeOp, CopyCyanCompositeOp,
	CopyMagentaCompositeOp, CopyYellowCompositeOp, CopyBlackCompositeOp,
	DivideCompositeOp, HardLightCompositeOp, ExclusionCompositeOp,
	ColorDodgeCompositeOp, ColorBurnCompositeOp, SoftLightCompositeOp,
	LinearBurnCompositeOp, LinearDodgeCompositeOp, LinearLightCompositeOp,
	VividLightCompositeOp, PinLightCompositeOp, HardMixCompositeOp,
}

func CompositeOperatorFromNative(v uint32) CompositeOperator {
	return fromNative(knownCompositeOperators, v, UnknownCompositeOp)
}

func (t CompositeOperator) Native() uint32 { return uint32(t) }

// NoiseType selects the kind of noise added by AddNoiseImage.
//
// http://www.graphicsmagick.org/api/types.html#noisetype
type NoiseType uint32

const (
	UniformNoise                NoiseType = NoiseType(C.UniformNoise)
	GaussianNoise               NoiseType = NoiseType(C.GaussianNoise)
	MultiplicativeGaussianNoise NoiseType = NoiseType(C.MultiplicativeGaussianNoise)
	ImpulseNoise                NoiseType = NoiseType(C.ImpulseNoise)
	LaplacianNoise              NoiseType = NoiseType(C.LaplacianNoise)
	PoissonNoise                NoiseType = NoiseType(C.PoissonNoise)
	RandomNoise                 NoiseType = NoiseType(C.RandomNoise)
	UndefinedNoise              NoiseType = NoiseType(C.UndefinedNoise)

	UnknownNoise NoiseType = unknownEnum
)

var knownNoiseTypes = []NoiseType{
	UniformNoise, GaussianNoise, MultiplicativeGaussianNoise, ImpulseNoise,
	LaplacianNoise, PoissonNoise, RandomNoise, UndefinedNoise,
}

func NoiseTypeFromNative(v uint32) NoiseType {
	return fromNative(knownNoiseTypes, v, UnknownNoise)
}

func (t NoiseType) Native() uint32 { return uint32(t) }

// OrientationType specifies the orientation of the image, for images
// produced via a different ordinate system (e.g. a camera turned on its
// side).
//
// http://www.graphicsmagick.org/api/types.html#orientationtype
type OrientationType uint32

const (
	UndefinedOrientation   OrientationType = OrientationType(C.UndefinedOrientation)
	TopLeftOrientation     OrientationType = OrientationType(C.TopLeftOrientation)
	TopRightOrientation    OrientationType = OrientationType(C.TopRightOrientation)
	BottomRightOrientation OrientationType = OrientationType(C.BottomRightOrientation)
	BottomLeftOrientation  OrientationType = OrientationType(C.BottomLeftOrientation)
	LeftTopOrientation     OrientationType = OrientationType(C.LeftTopOrientation)
	RightTopOrientation    OrientationType = OrientationType(C.RightTopOrientation)
	RightBottomOrientation OrientationType = OrientationType(C.RightBottomOrientation)
	LeftBottomOrientation  OrientationType = OrientationType(C.LeftBottomOrientation)

	UnknownOrientation OrientationType = unknownEnum
)

var knownOrientationTypes = []OrientationType{
	UndefinedOrientation, TopLeftOrientation, TopRightOrientation,
	BottomRightOrientation, BottomLeftOrientation, LeftTopOrientation,
	RightTopOrientation, RightBottomOrientation, LeftBottomOrientation,
}

func OrientationTypeFromNative(v uint32) OrientationType {
	return fromNative(knownOrientationTypes, v, UnknownOrientation)
}

func (t OrientationType) Native() uint32 { return uint32(t) }

// MetricType selects the pixel error metric used when comparing images.
type MetricType uint32

const (
	MeanAbsoluteErrorMetric      MetricType = MetricType(C.MeanAbsoluteErrorMetric)
	MeanSquaredErrorMetric       MetricType = MetricType(C.MeanSquaredErrorMetric)
	PeakAbsoluteErrorMetric      MetricType = MetricType(C.PeakAbsoluteErrorMetric)
	PeakSignalToNoiseRatioMetric MetricType = MetricType(C.PeakSignalToNoiseRatioMetric)
	RootMeanSquaredErrorMetric   MetricType = MetricType(C.RootMeanSquaredErrorMetric)

	UnknownMetric MetricType = unknownEnum
)

var knownMetricTypes = []MetricType{
	MeanAbsoluteErrorMetric, MeanSquaredErrorMetric, PeakAbsoluteErrorMetric,
	PeakSignalToNoiseRatioMetric, RootMeanSquaredErrorMetric,
}

func MetricTypeFromNative(v uint32) MetricType {
	return fromNative(knownMetricTypes, v, UnknownMetric)
}

func (t MetricType) Native() uint32 { return uint32(t) }

// ColorspaceType specifies the colorspace quantization is done under, or the
// colorspace used when encoding an output image.
//
// http://www.graphicsmagick.org/api/types.html#colorspacetype
type ColorspaceType uint32

const (
	UndefinedColorspace    ColorspaceType = ColorspaceType(C.UndefinedColorspace)
	RGBColorspace          ColorspaceType = ColorspaceType(C.RGBColorspace)
	GRAYColorspace         ColorspaceType = ColorspaceType(C.GRAYColorspace)
	TransparentColorspace  ColorspaceType = ColorspaceType(C.TransparentColorspace)
	OHTAColorspace         ColorspaceType = ColorspaceType(C.OHTAColorspace)
	XYZColorspace          ColorspaceType = ColorspaceType(C.XYZColorspace)
	YCCColorspace          ColorspaceType = ColorspaceType(C.YCCColorspace)
	YIQColorspace          ColorspaceType = ColorspaceType(C.YIQColorspace)
	YPbPrColorspace        ColorspaceType = ColorspaceType(C.YPbPrColorspace)
	YUVColorspace          ColorspaceType = ColorspaceType(C.YUVColorspace)
	CMYKColorspace         ColorspaceType = ColorspaceType(C.CMYKColorspace)
	SRGBColorspace         ColorspaceType = ColorspaceType(C.sRGBColorspace)
	HSLColorspace          ColorspaceType = ColorspaceType(C.HSLColorspace)
	HWBColorspace          ColorspaceType = ColorspaceType(C.HWBColorspace)
	LABColorspace          ColorspaceType = ColorspaceType(C.LABColorspace)
	CineonLogRGBColorspace ColorspaceType = ColorspaceType(C.CineonLogRGBColorspace)
	Rec601LumaColorspace   ColorspaceType = ColorspaceType(C.Rec601LumaColorspace)
	Rec601YCbCrColorspace  ColorspaceType = ColorspaceType(C.Rec601YCbCrColorspace)
	Rec709LumaColorspace   ColorspaceType = ColorspaceType(C.Rec709LumaColorspace)
	Rec709YCbCrColorspace  ColorspaceType = ColorspaceType(C.Rec709YCbCrColorspace)

	UnknownColorspace ColorspaceType = unknownEnum
)

var knownColorspaceTypes = []ColorspaceType{
	UndefinedColorspace, RGBColorspace, GRAYColorspace,
	TransparentColorspace, OHTAColorspace, XYZColorspace, YCCColorspace,
	YIQColorspace, YPbPrColorspace, YUVColorspace, CMYKColorspace,
	SRGBColorspace, HSLColorspace, HWBColorspace, LABColorspace,
	CineonLogRGBColorspace, Rec601LumaColorspace, Rec601YCbCrColorspace,
	Rec709LumaColorspace, Rec709YCbCrColorspace,
}

func ColorspaceTypeFromNative(v uint32) ColorspaceType {
	return fromNative(knownColorspaceTypes, v, UnknownColorspace)
}

func (t ColorspaceType) Native() uint32 { return uint32(t) }

// CompressionType expresses the desired compression when encoding an image.
// Most formats support only a subset; an incompatible choice makes the
// library pick a compatible one.
//
// http://www.graphicsmagick.org/api/types.html#compressiontype
type CompressionType uint32

const (
	UndefinedCompression    CompressionType = CompressionType(C.UndefinedCompression)
	NoCompression           CompressionType = CompressionType(C.NoCompression)
	BZipCompression         CompressionType = CompressionType(C.BZipCompression)
	FaxCompression          CompressionType = CompressionType(C.FaxCompression)
	Group4Compression       CompressionType = CompressionType(C.Group4Compression)
	JPEGCompression         CompressionType = CompressionType(C.JPEGCompression)
	LosslessJPEGCompression CompressionType = CompressionType(C.LosslessJPEGCompression)
	LZWCompression          CompressionType = CompressionType(C.LZWCompression)
	RLECompression          CompressionType = CompressionType(C.RLECompression)
	ZipCompression          CompressionType = CompressionType(C.ZipCompression)
	LZMACompression         CompressionType = CompressionType(C.LZMACompression)
	JPEG2000Compression     CompressionType = CompressionType(C.JPEG2000Compression)
	JBIG1Compression        CompressionType = CompressionType(C.JBIG1Compression)

	UnknownCompression CompressionType = unknownEnum
)

var knownCompressionTypes = []CompressionType{
	UndefinedCompression, NoCompression, BZipCompression, FaxCompression,
	Group4Compression, JPEGCompression, LosslessJPEGCompression,
	LZWCompression, RLECompression, ZipCompression, LZMACompression,
	JPEG2000Compression, JBIG1Compression,
}

func CompressionTypeFromNative(v uint32) CompressionType {
	return fromNative(knownCompressionTypes, v, UnknownCompression)
}

func (t CompressionType) Native() uint32 { return uint32(t) }

// DisposeType controls GIF frame disposal.
type DisposeType uint32

const (
	UndefinedDispose  DisposeType = DisposeType(C.UndefinedDispose)
	NoneDispose       DisposeType = DisposeType(C.NoneDispose)
	BackgroundDispose DisposeType = DisposeType(C.BackgroundDispose)
	PreviousDispose   DisposeType = DisposeType(C.PreviousDispose)

	UnknownDispose DisposeType = unknownEnum
)

var knownDisposeTypes = []DisposeType{
	UndefinedDispose, NoneDispose, BackgroundDispose, PreviousDispose,
}

func DisposeTypeFromNative(v uint32) DisposeType {
	return fromNative(knownDisposeTypes, v, UnknownDispose)
}

func (t DisposeType) Native() uint32 { return uint32(t) }

// GravityType positions an object (text, image) within a bounding region
// without absolute coordinates.
//
// http://www.graphicsmagick.org/api/types.html#gravitytype
type GravityType uint32

const (
	ForgetGravity    GravityType = GravityType(C.ForgetGravity)
	NorthWestGravity GravityType = GravityType(C.NorthWestGravity)
	NorthGravity     GravityType = GravityType(C.NorthGravity)
	NorthEastGravity GravityType = GravityType(C.NorthEastGravity)
	WestGravity      GravityType = GravityType(C.WestGravity)
	CenterGravity    GravityType = GravityType(C.CenterGravity)
	EastGravity      GravityType = GravityType(C.EastGravity)
	SouthWestGravity GravityType = GravityType(C.SouthWestGravity)
	SouthGravity     GravityType = GravityType(C.SouthGravity)
	SouthEastGravity GravityType = GravityType(C.SouthEastGravity)
	StaticGravity    GravityType = GravityType(C.StaticGravity)

	UnknownGravity GravityType = unknownEnum
)

var knownGravityTypes = []GravityType{
	ForgetGravity, NorthWestGravity, NorthGravity, NorthEastGravity,
	WestGravity, CenterGravity, EastGravity, SouthWestGravity, SouthGravity,
	SouthEastGravity, StaticGravity,
}

func GravityTypeFromNative(v uint32) GravityType {
	return fromNative(knownGravityTypes, v, UnknownGravity)
}

func (t GravityType) Native() uint32 { return uint32(t) }

// InterlaceType specifies the ordering of pixel information in the image,
// e.g. for progressive JPEG or interlaced GIF.
//
// http://www.graphicsmagick.org/api/types.html#interlacetype
type InterlaceType uint32

const (
	UndefinedInterlace InterlaceType = InterlaceType(C.UndefinedInterlace)
	NoInterlace        InterlaceType = InterlaceType(C.NoInterlace)
	LineInterlace      InterlaceType = InterlaceType(C.LineInterlace)
	PlaneInterlace     InterlaceType = InterlaceType(C.PlaneInterlace)
	PartitionInterlace InterlaceType = InterlaceType(C.PartitionInterlace)

	UnknownInterlace InterlaceType = unknownEnum
)

var knownInterlaceTypes = []InterlaceType{
	UndefinedInterlace, NoInterlace, LineInterlace, PlaneInterlace,
	PartitionInterlace,
}

func InterlaceTypeFromNative(v uint32) InterlaceType {
	return fromNative(knownInterlaceTypes, v, UnknownInterlace)
}

func (t InterlaceType) Native() uint32 { return uint32(t) }

// StorageType describes the element type of a raw pixel buffer.
//
// http://www.graphicsmagick.org/api/types.html#storagetype
type StorageType uint32

const (
	CharPixel    StorageType = StorageType(C.CharPixel)
	ShortPixel   StorageType = StorageType(C.ShortPixel)
	IntegerPixel StorageType = StorageType(C.IntegerPixel)
	LongPixel    StorageType = StorageType(C.LongPixel)
	FloatPixel   StorageType = StorageType(C.FloatPixel)
	DoublePixel  StorageType = StorageType(C.DoublePixel)

	UnknownStorage StorageType = unknownEnum
)

var knownStorageTypes = []StorageType{
	CharPixel, ShortPixel, IntegerPixel, LongPixel, FloatPixel, DoublePixel,
}

func StorageTypeFromNative(v uint32) StorageType {
	return fromNative(knownStorageTypes, v, UnknownStorage)
}

func (t StorageType) Native() uint32 { return uint32(t) }

// RenderingIntent supports ICC color profiles (ICC.1:1998-09).
//
// http://www.graphicsmagick.org/api/types.html#renderingintent
type RenderingIntent uint32

const (
	UndefinedIntent  RenderingIntent = RenderingIntent(C.UndefinedIntent)
	SaturationIntent RenderingIntent = RenderingIntent(C.SaturationIntent)
	PerceptualIntent RenderingIntent = RenderingIntent(C.PerceptualIntent)
	AbsoluteIntent   RenderingIntent = RenderingIntent(C.AbsoluteIntent)
	RelativeIntent   RenderingIntent = RenderingIntent(C.RelativeIntent)

	UnknownIntent RenderingIntent = unknownEnum
)

var knownRenderingIntents = []RenderingIntent{
	UndefinedIntent, SaturationIntent, PerceptualIntent, AbsoluteIntent,
	RelativeIntent,
}

func RenderingIntentFromNative(v uint32) RenderingIntent {
	return fromNative(knownRenderingIntents, v, UnknownIntent)
}

func (t RenderingIntent) Native() uint32 { return uint32(t) }

// ImageType indicates the type classification of the image.
//
// http://www.graphicsmagick.org/api/types.html#imagetype
type ImageType uint32

const (
	UndefinedType           ImageType = ImageType(C.UndefinedType)
	BilevelType             ImageType = ImageType(C.BilevelType)
	GrayscaleType           ImageType = ImageType(C.GrayscaleType)
	GrayscaleMatteType      ImageType = ImageType(C.GrayscaleMatteType)
	PaletteType             ImageType = ImageType(C.PaletteType)
	PaletteMatteType        ImageType = ImageType(C.PaletteMatteType)
	TrueColorType           ImageType = ImageType(C.TrueColorType)
	TrueColorMatteType      ImageType = ImageType(C.TrueColorMatteType)
	ColorSeparationType     ImageType = ImageType(C.ColorSeparationType)
	ColorSeparationMatteType ImageType = ImageType(C.ColorSeparationMatteType)
	OptimizeType            ImageType = ImageType(C.OptimizeType)

	UnknownType ImageType = unknownEnum
)

var knownImageTypes = []ImageType{
	UndefinedType, BilevelType, GrayscaleType, GrayscaleMatteType,
	PaletteType, PaletteMatteType, TrueColorType, TrueColorMatteType,
	ColorSeparationType, ColorSeparationMatteType, OptimizeType,
}

func ImageTypeFromNative(v uint32) ImageType {
	return fromNative(knownImageTypes, v, UnknownType)
}

func (t ImageType) Native() uint32 { return uint32(t) }

// ResolutionType adjusts the units image resolutions are expressed in.
//
// http://www.graphicsmagick.org/api/types.html#resolutiontype
type ResolutionType uint32

const (
	UndefinedResolution           ResolutionType = ResolutionType(C.UndefinedResolution)
	PixelsPerInchResolution       ResolutionType = ResolutionType(C.PixelsPerInchResolution)
	PixelsPerCentimeterResolution ResolutionType = ResolutionType(C.PixelsPerCentimeterResolution)

	UnknownResolution ResolutionType = unknownEnum
)

var knownResolutionTypes = []ResolutionType{
	UndefinedResolution, PixelsPerInchResolution,
	PixelsPerCentimeterResolution,
}

func ResolutionTypeFromNative(v uint32) ResolutionType {
	return fromNative(knownResolutionTypes, v, UnknownResolution)
}

func (t ResolutionType) Native() uint32 { return uint32(t) }

// VirtualPixelMethod chooses how pixels outside the image area are
// synthesized.
//
// http://www.graphicsmagick.org/api/types.html#virtualpixelmethod
type VirtualPixelMethod uint32

const (
	UndefinedVirtualPixelMethod VirtualPixelMethod = VirtualPixelMethod(C.UndefinedVirtualPixelMethod)
	ConstantVirtualPixelMethod  VirtualPixelMethod = VirtualPixelMethod(C.ConstantVirtualPixelMethod)
	EdgeVirtualPixelMethod      VirtualPixelMethod = VirtualPixelMethod(C.EdgeVirtualPixelMethod)
	MirrorVirtualPixelMethod    VirtualPixelMethod = VirtualPixelMethod(C.MirrorVirtualPixelMethod)
	TileVirtualPixelMethod      VirtualPixelMethod = VirtualPixelMethod(C.TileVirtualPixelMethod)

	UnknownVirtualPixelMethod VirtualPixelMethod = unknownEnum
)

var knownVirtualPixelMethods = []VirtualPixelMethod{
	UndefinedVirtualPixelMethod, ConstantVirtualPixelMethod,
	EdgeVirtualPixelMethod, MirrorVirtualPixelMethod,
	TileVirtualPixelMethod,
}

func VirtualPixelMethodFromNative(v uint32) VirtualPixelMethod {
	return fromNative(knownVirtualPixelMethods, v, UnknownVirtualPixelMethod)
}

func (t VirtualPixelMethod) Native() uint32 { return uint32(t) }

// ResourceType names a library-wide resource limit.
//
// http://www.graphicsmagick.org/api/types.html#resourcetype
type ResourceType uint32

const (
	UndefinedResource ResourceType = ResourceType(C.UndefinedResource)
	DiskResource      ResourceType = ResourceType(C.DiskResource)
	FileResource      ResourceType = ResourceType(C.FileResource)
	MapResource       ResourceType = ResourceType(C.MapResource)
	MemoryResource    ResourceType = ResourceType(C.MemoryResource)
	PixelsResource    ResourceType = ResourceType(C.PixelsResource)
	ThreadsResource   ResourceType = ResourceType(C.ThreadsResource)
	WidthResource     ResourceType = ResourceType(C.WidthResource)
	HeightResource    ResourceType = ResourceType(C.HeightResource)

	UnknownResource ResourceType = unknownEnum
)

var knownResourceTypes = []ResourceType{
	UndefinedResource, DiskResource, FileResource, MapResource,
	MemoryResource, PixelsResource, ThreadsResource, WidthResource,
	HeightResource,
}

func ResourceTypeFromNative(v uint32) ResourceType {
	return fromNative(knownResourceTypes, v, UnknownResource)
}

func (t ResourceType) Native() uint32 { return uint32(t) }

// MontageMode selects the framing style used by MontageImage.
type MontageMode uint32

const (
	UndefinedMode   MontageMode = MontageMode(C.UndefinedMode)
	FrameMode       MontageMode = MontageMode(C.FrameMode)
	UnframeMode     MontageMode = MontageMode(C.UnframeMode)
	ConcatenateMode MontageMode = MontageMode(C.ConcatenateMode)

	UnknownMode MontageMode = unknownEnum
)

var knownMontageModes = []MontageMode{
	UndefinedMode, FrameMode, UnframeMode, ConcatenateMode,
}

func MontageModeFromNative(v uint32) MontageMode {
	return fromNative(knownMontageModes, v, UnknownMode)
}

func (t MontageMode) Native() uint32 { return uint32(t) }

// PreviewType selects the operation sampled by PreviewImages.
type PreviewType uint32

const (
	UndefinedPreview       PreviewType = PreviewType(C.UndefinedPreview)
	RotatePreview          PreviewType = PreviewType(C.RotatePreview)
	ShearPreview           PreviewType = PreviewType(C.ShearPreview)
	RollPreview            PreviewType = PreviewType(C.RollPreview)
	HuePreview             PreviewType = PreviewType(C.HuePreview)
	SaturationPreview      PreviewType = PreviewType(C.SaturationPreview)
	BrightnessPreview      PreviewType = PreviewType(C.BrightnessPreview)
	GammaPreview           PreviewType = PreviewType(C.GammaPreview)
	SpiffPreview           PreviewType = PreviewType(C.SpiffPreview)
	DullPreview            PreviewType = PreviewType(C.DullPreview)
	GrayscalePreview       PreviewType = PreviewType(C.GrayscalePreview)
	QuantizePreview        PreviewType = PreviewType(C.QuantizePreview)
	DespecklePreview       PreviewType = PreviewType(C.DespecklePreview)
	ReduceNoisePreview     PreviewType = PreviewType(C.ReduceNoisePreview)
	AddNoisePreview        PreviewType = PreviewType(C.AddNoisePreview)
	SharpenPreview         PreviewType = PreviewType(C.SharpenPreview)
	BlurPreview            PreviewType = PreviewType(C.BlurPreview)
	ThresholdPreview       PreviewType = PreviewType(C.ThresholdPreview)
	EdgeDetectPreview      PreviewType = PreviewType(C.EdgeDetectPreview)
	SpreadPreview          PreviewType = PreviewType(C.SpreadPreview)
	SolarizePreview        PreviewType = PreviewType(C.SolarizePreview)
	ShadePreview           PreviewType = PreviewType(C.ShadePreview)
	RaisePreview           PreviewType = PreviewType(C.RaisePreview)
	SegmentPreview         PreviewType = PreviewType(C.SegmentPreview)
	SwirlPreview           PreviewType = PreviewType(C.SwirlPreview)
	ImplodePreview         PreviewType = PreviewType(C.ImplodePreview)
	WavePreview            PreviewType = PreviewType(C.WavePreview)
	OilPaintPreview        PreviewType = PreviewType(C.OilPaintPreview)
	CharcoalDrawingPreview PreviewType = PreviewType(C.CharcoalDrawingPreview)
	JPEGPreview            PreviewType = PreviewType(C.JPEGPreview)

	UnknownPreview PreviewType = unknownEnum
)

var knownPreviewTypes = []PreviewType{
	UndefinedPreview, RotatePreview, ShearPreview, RollPreview, HuePreview,
	SaturationPreview, BrightnessPreview, GammaPreview, SpiffPreview,
	DullPreview, GrayscalePreview, QuantizePreview, DespecklePreview,
	ReduceNoisePreview, AddNoisePreview, SharpenPreview, BlurPreview,
	ThresholdPreview, EdgeDetectPreview, SpreadPreview, SolarizePreview,
	ShadePreview, RaisePreview, SegmentPreview, SwirlPreview,
	ImplodePreview, WavePreview, OilPaintPreview, CharcoalDrawingPreview,
	JPEGPreview,
}

func PreviewTypeFromNative(v uint32) PreviewType {
	return fromNative(knownPreviewTypes, v, UnknownPreview)
}

func (t PreviewType) Native() uint32 { return uint32(t) }
