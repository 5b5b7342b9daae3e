package gm

/*
#include <stdlib.h>
#include <wand/magick_wand.h>

// No released GraphicsMagick declares or exports these two wand calls
// (they are ImageMagick-only API). Weak declarations let the package
// build and link; invoking them without a providing library will fault.
extern unsigned int MagickGaussianBlurImage(MagickWand *wand, const double radius,
  const double sigma) __attribute__((weak));
extern unsigned int MagickGaussianBlurImageChannel(MagickWand *wand,
  const ChannelType channel, const double radius, const double sigma)
  __attribute__((weak));
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// Image operations on a MagickWand, ordered as the native API documents
// them. Mutators return an error translated from the wand exception;
// operations that natively produce a new image list return a new wand, or
// nil when the native call yields no result.

// AdaptiveThresholdImage selects an individual threshold for each pixel
// based on the range of intensity values in its local neighborhood.
func (w *MagickWand) AdaptiveThresholdImage(width, height uint, offset int) error {
	assertDims(width, height)
	return w.checkStatus(C.MagickAdaptiveThresholdImage(w.mw, C.ulong(width), C.ulong(height), C.long(offset)))
}

// AddImage adds the images in add at the current image location.
func (w *MagickWand) AddImage(add *MagickWand) error {
	return w.checkStatus(C.MagickAddImage(w.mw, add.mw))
}

// AddNoiseImage adds random noise to the image.
func (w *MagickWand) AddNoiseImage(noise NoiseType) error {
	return w.checkStatus(C.MagickAddNoiseImage(w.mw, C.NoiseType(noise)))
}

// AffineTransformImage transforms the image as dictated by the affine
// matrix of the drawing wand.
func (w *MagickWand) AffineTransformImage(dw *DrawingWand) error {
	return w.checkStatus(C.MagickAffineTransformImage(w.mw, dw.dw))
}

// AnnotateImage annotates the image with text.
func (w *MagickWand) AnnotateImage(dw *DrawingWand, x, y, angle float64, text string) error {
	cs := C.CString(text)
	defer C.free(unsafe.Pointer(cs))
	return w.checkStatus(C.MagickAnnotateImage(w.mw, dw.dw, C.double(x), C.double(y), C.double(angle), cs))
}

// AnimateImages animates the image sequence on an X server.
func (w *MagickWand) AnimateImages(serverName string) error {
	cs := C.CString(serverName)
	defer C.free(unsafe.Pointer(cs))
	return w.checkStatus(C.MagickAnimateImages(w.mw, cs))
}

// AppendImages appends the images in the wand into a single image; stack
// selects top-to-bottom rather than left-to-right. Returns nil if the wand
// holds no images.
func (w *MagickWand) AppendImages(stack bool) *MagickWand {
	return newMagickWandFromNative(C.MagickAppendImages(w.mw, bToUint(stack)))
}

// AutoOrientImage adjusts the image so that its orientation is suitable
// for viewing, given its stored orientation. currentOrientation overrides
// the stored one unless it is UndefinedOrientation.
func (w *MagickWand) AutoOrientImage(currentOrientation OrientationType) error {
	if err := unsupported(caps.imageOrientation, "MagickAutoOrientImage", "1.3.26"); err != nil {
		return err
	}
	return w.checkStatus(C.MagickAutoOrientImage(w.mw, C.OrientationType(currentOrientation)))
}

// AverageImages averages the images in the wand. Returns nil if the wand
// holds no images.
func (w *MagickWand) AverageImages() *MagickWand {
	return newMagickWandFromNative(C.MagickAverageImages(w.mw))
}

// BlackThresholdImage forces all pixels below the threshold to black.
func (w *MagickWand) BlackThresholdImage(threshold *PixelWand) error {
	return w.checkStatus(C.MagickBlackThresholdImage(w.mw, threshold.pw))
}

// BlurImage convolves the image with a gaussian operator of the given
// radius and standard deviation. A radius of 0 selects a suitable radius.
func (w *MagickWand) BlurImage(radius, sigma float64) error {
	return w.checkStatus(C.MagickBlurImage(w.mw, C.double(radius), C.double(sigma)))
}

// BorderImage surrounds the image with a border of the given color.
func (w *MagickWand) BorderImage(borderColor *PixelWand, width, height uint) error {
	return w.checkStatus(C.MagickBorderImage(w.mw, borderColor.pw, C.ulong(width), C.ulong(height)))
}

// CdlImage applies an ASC CDL (color decision list) to the image.
func (w *MagickWand) CdlImage(cdl string) error {
	cs := C.CString(cdl)
	defer C.free(unsafe.Pointer(cs))
	return w.checkStatus(C.MagickCdlImage(w.mw, cs))
}

// CharcoalImage simulates a charcoal drawing.
func (w *MagickWand) CharcoalImage(radius, sigma float64) error {
	return w.checkStatus(C.MagickCharcoalImage(w.mw, C.double(radius), C.double(sigma)))
}

// ChopImage removes a region of the image and collapses it to occupy the
// removed portion.
func (w *MagickWand) ChopImage(width, height uint, x, y int) error {
	return w.checkStatus(C.MagickChopImage(w.mw, C.ulong(width), C.ulong(height), C.long(x), C.long(y)))
}

// ClipImage clips along the first path from the 8BIM profile, if present.
func (w *MagickWand) ClipImage() error {
	return w.checkStatus(C.MagickClipImage(w.mw))
}

// ClipPathImage clips along the named path from the 8BIM profile, if
// present. Later operations take effect inside (or, if inside is false,
// outside) the path.
func (w *MagickWand) ClipPathImage(pathName string, inside bool) error {
	cs := C.CString(pathName)
	defer C.free(unsafe.Pointer(cs))
	return w.checkStatus(C.MagickClipPathImage(w.mw, cs, bToUint(inside)))
}

// CoalesceImages composites the image sequence respecting scene geometry,
// producing fully defined frames (e.g. for an animation). Returns nil if
// the wand holds no images.
func (w *MagickWand) CoalesceImages() *MagickWand {
	return newMagickWandFromNative(C.MagickCoalesceImages(w.mw))
}

// ColorFloodfillImage changes the color value of any pixel that matches
// the color of the target pixel and is a neighbor, working outward from
// (x, y). If borderColor is set, matching stops at that color instead.
func (w *MagickWand) ColorFloodfillImage(fill *PixelWand, fuzz float64, borderColor *PixelWand, x, y int) error {
	var border *C.PixelWand
	if borderColor != nil {
		border = borderColor.pw
	}
	return w.checkStatus(C.MagickColorFloodfillImage(w.mw, fill.pw, C.double(fuzz), border, C.long(x), C.long(y)))
}

// ColorizeImage blends the fill color with each pixel.
func (w *MagickWand) ColorizeImage(colorize, opacity *PixelWand) error {
	return w.checkStatus(C.MagickColorizeImage(w.mw, colorize.pw, opacity.pw))
}

// CommentImage adds a comment to the image.
func (w *MagickWand) CommentImage(comment string) error {
	cs := C.CString(comment)
	defer C.free(unsafe.Pointer(cs))
	return w.checkStatus(C.MagickCommentImage(w.mw, cs))
}

// CompareImageChannels compares one or more image channels against a
// reference and returns the difference image (nil if the native call
// produced none) along with the computed distortion.
func (w *MagickWand) CompareImageChannels(reference *MagickWand, channel ChannelType, metric MetricType) (*MagickWand, float64) {
	var distortion C.double
	diff := C.MagickCompareImageChannels(w.mw, reference.mw, C.ChannelType(channel), C.MetricType(metric), &distortion)
	return newMagickWandFromNative(diff), float64(distortion)
}

// CompareImages compares the image against a reference and returns the
// difference image (nil if the native call produced none) along with the
// computed distortion.
func (w *MagickWand) CompareImages(reference *MagickWand, metric MetricType) (*MagickWand, float64) {
	var distortion C.double
	diff := C.MagickCompareImages(w.mw, reference.mw, C.MetricType(metric), &distortion)
	return newMagickWandFromNative(diff), float64(distortion)
}

// CompositeImage composites the images in composite onto the image at the
// given offset.
func (w *MagickWand) CompositeImage(composite *MagickWand, compose CompositeOperator, x, y int) error {
	return w.checkStatus(C.MagickCompositeImage(w.mw, composite.mw, C.CompositeOperator(compose), C.long(x), C.long(y)))
}

// ContrastImage enhances (sharpen true) or reduces the intensity
// differences between lighter and darker elements.
func (w *MagickWand) ContrastImage(sharpen bool) error {
	return w.checkStatus(C.MagickContrastImage(w.mw, bToUint(sharpen)))
}

// ConvolveImage applies a custom convolution kernel to the image. The
// kernel is given in row-major order and must be square.
func (w *MagickWand) ConvolveImage(order uint, kernel []float64) error {
	if uint(len(kernel)) != order*order {
		panic("gm: kernel length must be order squared")
	}
	var p *C.double
	if len(kernel) > 0 {
		p = (*C.double)(unsafe.Pointer(&kernel[0]))
	}
	err := w.checkStatus(C.MagickConvolveImage(w.mw, C.ulong(order), p))
	runtime.KeepAlive(kernel)
	return err
}

// CropImage extracts a region of the image.
func (w *MagickWand) CropImage(width, height uint, x, y int) error {
	return w.checkStatus(C.MagickCropImage(w.mw, C.ulong(width), C.ulong(height), C.long(x), C.long(y)))
}

// CycleColormapImage displaces the image colormap by a given number of
// positions.
func (w *MagickWand) CycleColormapImage(displace int) error {
	return w.checkStatus(C.MagickCycleColormapImage(w.mw, C.long(displace)))
}

// DeconstructImages returns a sequence where each frame holds only the
// pixels that differ from the previous one. Returns nil if the wand holds
// no images.
func (w *MagickWand) DeconstructImages() *MagickWand {
	return newMagickWandFromNative(C.MagickDeconstructImages(w.mw))
}

// DescribeImage describes the image, as `gm identify -verbose` would.
func (w *MagickWand) DescribeImage() *MagickString {
	return newMagickString(C.MagickDescribeImage(w.mw))
}

// DespeckleImage reduces speckle noise while preserving edges.
func (w *MagickWand) DespeckleImage() error {
	return w.checkStatus(C.MagickDespeckleImage(w.mw))
}

// DisplayImage displays the image on an X server.
func (w *MagickWand) DisplayImage(serverName string) error {
	cs := C.CString(serverName)
	defer C.free(unsafe.Pointer(cs))
	return w.checkStatus(C.MagickDisplayImage(w.mw, cs))
}

// DisplayImages displays the image sequence on an X server.
func (w *MagickWand) DisplayImages(serverName string) error {
	if err := unsupported(caps.classQueries, "MagickDisplayImages", "1.3.29"); err != nil {
		return err
	}
	cs := C.CString(serverName)
	defer C.free(unsafe.Pointer(cs))
	return w.checkStatus(C.MagickDisplayImages(w.mw, cs))
}

// DrawImage renders the drawing wand's vectors onto the image.
func (w *MagickWand) DrawImage(dw *DrawingWand) error {
	return w.checkStatus(C.MagickDrawImage(w.mw, dw.dw))
}

// EdgeImage enhances edges with a convolution filter of the given radius.
// A radius of 0 selects a suitable radius.
func (w *MagickWand) EdgeImage(radius float64) error {
	return w.checkStatus(C.MagickEdgeImage(w.mw, C.double(radius)))
}

// EmbossImage returns a grayscale image with a three-dimensional effect.
func (w *MagickWand) EmbossImage(radius, sigma float64) error {
	return w.checkStatus(C.MagickEmbossImage(w.mw, C.double(radius), C.double(sigma)))
}

// EnhanceImage applies a digital filter that improves the quality of a
// noisy image.
func (w *MagickWand) EnhanceImage() error {
	return w.checkStatus(C.MagickEnhanceImage(w.mw))
}

// EqualizeImage equalizes the image histogram.
func (w *MagickWand) EqualizeImage() error {
	return w.checkStatus(C.MagickEqualizeImage(w.mw))
}

// ExtentImage composites the image onto a canvas of the given size and
// offset, filling the rest with the background color.
func (w *MagickWand) ExtentImage(width, height uint, x, y int) error {
	return w.checkStatus(C.MagickExtentImage(w.mw, C.size_t(width), C.size_t(height), C.ssize_t(x), C.ssize_t(y)))
}

// FlattenImages merges the image sequence into one, respecting page
// offsets. Returns nil if the wand holds no images.
func (w *MagickWand) FlattenImages() *MagickWand {
	return newMagickWandFromNative(C.MagickFlattenImages(w.mw))
}

// FlipImage creates a vertical mirror image.
func (w *MagickWand) FlipImage() error {
	return w.checkStatus(C.MagickFlipImage(w.mw))
}

// FlopImage creates a horizontal mirror image.
func (w *MagickWand) FlopImage() error {
	return w.checkStatus(C.MagickFlopImage(w.mw))
}

// FrameImage adds a simulated three-dimensional border. Width and height
// sizes include the bevels.
func (w *MagickWand) FrameImage(matteColor *PixelWand, width, height uint, innerBevel, outerBevel int) error {
	return w.checkStatus(C.MagickFrameImage(w.mw, matteColor.pw, C.ulong(width), C.ulong(height), C.long(innerBevel), C.long(outerBevel)))
}

// FxImage evaluates an expression for each pixel and returns the result
// as a new wand, or nil if the native call produced none.
func (w *MagickWand) FxImage(expression string) *MagickWand {
	cs := C.CString(expression)
	defer C.free(unsafe.Pointer(cs))
	return newMagickWandFromNative(C.MagickFxImage(w.mw, cs))
}

// FxImageChannel evaluates an expression over the given channel and
// returns the result as a new wand, or nil if the native call produced
// none.
func (w *MagickWand) FxImageChannel(channel ChannelType, expression string) *MagickWand {
	cs := C.CString(expression)
	defer C.free(unsafe.Pointer(cs))
	return newMagickWandFromNative(C.MagickFxImageChannel(w.mw, C.ChannelType(channel), cs))
}

// GammaImage gamma-corrects the image. Values typically range from 0.8 to
// 2.3.
func (w *MagickWand) GammaImage(gamma float64) error {
	return w.checkStatus(C.MagickGammaImage(w.mw, C.double(gamma)))
}

// GammaImageChannel gamma-corrects a single channel.
func (w *MagickWand) GammaImageChannel(channel ChannelType, gamma float64) error {
	return w.checkStatus(C.MagickGammaImageChannel(w.mw, C.ChannelType(channel), C.double(gamma)))
}

// GaussianBlurImage blurs the image with a gaussian operator of the given
// radius and standard deviation. A radius of 0 selects a suitable radius.
func (w *MagickWand) GaussianBlurImage(radius, sigma float64) error {
	return w.checkStatus(C.MagickGaussianBlurImage(w.mw, C.double(radius), C.double(sigma)))
}

// GaussianBlurImageChannel blurs the given channel with a gaussian operator.
func (w *MagickWand) GaussianBlurImageChannel(channel ChannelType, radius, sigma float64) error {
	return w.checkStatus(C.MagickGaussianBlurImageChannel(w.mw, C.ChannelType(channel), C.double(radius), C.double(sigma)))
}

// GetImage extracts the current image as a new single-image wand, or nil
// if the wand holds no images.
func (w *MagickWand) GetImage() *MagickWand {
	return newMagickWandFromNative(C.MagickGetImage(w.mw))
}

// GetImageAttribute returns the named image attribute, or nil if it is
// not set.
func (w *MagickWand) GetImageAttribute(name string) *MagickString {
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	return newMagickString(C.MagickGetImageAttribute(w.mw, cs))
}

// GetImageBackgroundColor returns the image background color.
func (w *MagickWand) GetImageBackgroundColor() (*PixelWand, error) {
	px := NewPixelWand()
	if err := w.checkStatus(C.MagickGetImageBackgroundColor(w.mw, px.pw)); err != nil {
		px.Destroy()
		return nil, err
	}
	return px, nil
}

// SetImageBackgroundColor sets the image background color.
func (w *MagickWand) SetImageBackgroundColor(background *PixelWand) error {
	return w.checkStatus(C.MagickSetImageBackgroundColor(w.mw, background.pw))
}

// GetImageBluePrimary returns the chromaticity blue primary point.
func (w *MagickWand) GetImageBluePrimary() (x, y float64, err error) {
	var cx, cy C.double
	err = w.checkStatus(C.MagickGetImageBluePrimary(w.mw, &cx, &cy))
	return float64(cx), float64(cy), err
}

// SetImageBluePrimary sets the chromaticity blue primary point.
func (w *MagickWand) SetImageBluePrimary(x, y float64) error {
	return w.checkStatus(C.MagickSetImageBluePrimary(w.mw, C.double(x), C.double(y)))
}

// GetImageBorderColor returns the image border color.
func (w *MagickWand) GetImageBorderColor() (*PixelWand, error) {
	px := NewPixelWand()
	if err := w.checkStatus(C.MagickGetImageBorderColor(w.mw, px.pw)); err != nil {
		px.Destroy()
		return nil, err
	}
	return px, nil
}

// SetImageBorderColor sets the image border color.
func (w *MagickWand) SetImageBorderColor(border *PixelWand) error {
	return w.checkStatus(C.MagickSetImageBorderColor(w.mw, border.pw))
}

// GetImageBoundingBox measures the bounding box of the region that differs
// from the corner pixels by more than fuzz.
func (w *MagickWand) GetImageBoundingBox(fuzz float64) (width, height uint, x, y int, err error) {
	var cw, ch C.ulong
	var cx, cy C.long
	err = w.checkStatus(C.MagickGetImageBoundingBox(w.mw, C.double(fuzz), &cw, &ch, &cx, &cy))
	return uint(cw), uint(ch), int(cx), int(cy), err
}

// GetImageChannelDepth gets the depth of a particular image channel.
func (w *MagickWand) GetImageChannelDepth(channel ChannelType) uint {
	return uint(C.MagickGetImageChannelDepth(w.mw, C.ChannelType(channel)))
}

// SetImageChannelDepth sets the depth of a particular image channel.
func (w *MagickWand) SetImageChannelDepth(channel ChannelType, depth uint) error {
	return w.checkStatus(C.MagickSetImageChannelDepth(w.mw, C.ChannelType(channel), C.ulong(depth)))
}

// GetImageChannelExtrema gets the extrema of an image channel.
func (w *MagickWand) GetImageChannelExtrema(channel ChannelType) (minima, maxima uint, err error) {
	var lo, hi C.ulong
	err = w.checkStatus(C.MagickGetImageChannelExtrema(w.mw, C.ChannelType(channel), &lo, &hi))
	return uint(lo), uint(hi), err
}

// GetImageChannelMean gets the mean and standard deviation of an image
// channel.
func (w *MagickWand) GetImageChannelMean(channel ChannelType) (mean, stddev float64, err error) {
	var m, s C.double
	err = w.checkStatus(C.MagickGetImageChannelMean(w.mw, C.ChannelType(channel), &m, &s))
	return float64(m), float64(s), err
}

// GetImageColormapColor returns the colormap color at the given index.
func (w *MagickWand) GetImageColormapColor(index uint) (*PixelWand, error) {
	px := NewPixelWand()
	if err := w.checkStatus(C.MagickGetImageColormapColor(w.mw, C.ulong(index), px.pw)); err != nil {
		px.Destroy()
		return nil, err
	}
	return px, nil
}

// SetImageColormapColor sets the colormap color at the given index.
func (w *MagickWand) SetImageColormapColor(index uint, color *PixelWand) error {
	return w.checkStatus(C.MagickSetImageColormapColor(w.mw, C.ulong(index), color.pw))
}

// GetImageColors gets the number of unique colors in the image.
func (w *MagickWand) GetImageColors() uint {
	return uint(C.MagickGetImageColors(w.mw))
}

// GetImageColorspace gets the image colorspace.
func (w *MagickWand) GetImageColorspace() ColorspaceType {
	return ColorspaceTypeFromNative(uint32(C.MagickGetImageColorspace(w.mw)))
}

// SetImageColorspace sets the image colorspace.
func (w *MagickWand) SetImageColorspace(colorspace ColorspaceType) error {
	return w.checkStatus(C.MagickSetImageColorspace(w.mw, C.ColorspaceType(colorspace)))
}

// GetImageCompose returns the composite operator associated with the
// image.
func (w *MagickWand) GetImageCompose() CompositeOperator {
	return CompositeOperatorFromNative(uint32(C.MagickGetImageCompose(w.mw)))
}

// SetImageCompose sets the composite operator used by operations that
// merge images together.
func (w *MagickWand) SetImageCompose(compose CompositeOperator) error {
	return w.checkStatus(C.MagickSetImageCompose(w.mw, C.CompositeOperator(compose)))
}

// GetImageCompression gets the image compression.
func (w *MagickWand) GetImageCompression() CompressionType {
	return CompressionTypeFromNative(uint32(C.MagickGetImageCompression(w.mw)))
}

// SetImageCompression sets the image compression.
func (w *MagickWand) SetImageCompression(compression CompressionType) error {
	return w.checkStatus(C.MagickSetImageCompression(w.mw, C.CompressionType(compression)))
}

// GetImageDelay gets the image delay in 1/100ths of a second.
func (w *MagickWand) GetImageDelay() uint {
	return uint(C.MagickGetImageDelay(w.mw))
}

// SetImageDelay sets the image delay in 1/100ths of a second.
func (w *MagickWand) SetImageDelay(delay uint) error {
	return w.checkStatus(C.MagickSetImageDelay(w.mw, C.ulong(delay)))
}

// GetImageDepth gets the image depth.
func (w *MagickWand) GetImageDepth() uint {
	return uint(C.MagickGetImageDepth(w.mw))
}

// SetImageDepth sets the image depth.
func (w *MagickWand) SetImageDepth(depth uint) error {
	return w.checkStatus(C.MagickSetImageDepth(w.mw, C.ulong(depth)))
}

// GetImageDispose gets the image disposal method.
func (w *MagickWand) GetImageDispose() DisposeType {
	return DisposeTypeFromNative(uint32(C.MagickGetImageDispose(w.mw)))
}

// SetImageDispose sets the image disposal method.
func (w *MagickWand) SetImageDispose(dispose DisposeType) error {
	return w.checkStatus(C.MagickSetImageDispose(w.mw, C.DisposeType(dispose)))
}

// GetImageExtrema gets the extrema of the image.
func (w *MagickWand) GetImageExtrema() (minima, maxima uint, err error) {
	var lo, hi C.ulong
	err = w.checkStatus(C.MagickGetImageExtrema(w.mw, &lo, &hi))
	return uint(lo), uint(hi), err
}

// GetImageFilename returns the filename of the current image.
func (w *MagickWand) GetImageFilename() *MagickString {
	return newMagickString(C.MagickGetImageFilename(w.mw))
}

// SetImageFilename sets the filename of the current image.
func (w *MagickWand) SetImageFilename(filename string) error {
	cs := C.CString(filename)
	defer C.free(unsafe.Pointer(cs))
	return w.checkStatus(C.MagickSetImageFilename(w.mw, cs))
}

// GetImageFormat returns the format of the current image.
func (w *MagickWand) GetImageFormat() *MagickString {
	return newMagickString(C.MagickGetImageFormat(w.mw))
}

// SetImageFormat sets the format of the current image.
func (w *MagickWand) SetImageFormat(format string) error {
	cs := C.CString(format)
	defer C.free(unsafe.Pointer(cs))
	return w.checkStatus(C.MagickSetImageFormat(w.mw, cs))
}

// GetImageFuzz returns the color comparison fuzz factor.
func (w *MagickWand) GetImageFuzz() float64 {
	return float64(C.MagickGetImageFuzz(w.mw))
}

// SetImageFuzz sets the color comparison fuzz factor: colors within this
// distance are considered equal.
func (w *MagickWand) SetImageFuzz(fuzz float64) error {
	return w.checkStatus(C.MagickSetImageFuzz(w.mw, C.double(fuzz)))
}

// GetImageGamma gets the image gamma.
func (w *MagickWand) GetImageGamma() float64 {
	return float64(C.MagickGetImageGamma(w.mw))
}

// SetImageGamma sets the image gamma.
func (w *MagickWand) SetImageGamma(gamma float64) error {
	return w.checkStatus(C.MagickSetImageGamma(w.mw, C.double(gamma)))
}

// GetImageGravity gets the image gravity.
func (w *MagickWand) GetImageGravity() (GravityType, error) {
	if err := unsupported(caps.imageGravity, "MagickGetImageGravity", "1.3.22"); err != nil {
		return UnknownGravity, err
	}
	return GravityTypeFromNative(uint32(C.MagickGetImageGravity(w.mw))), nil
}

// SetImageGravity sets the image gravity.
func (w *MagickWand) SetImageGravity(gravity GravityType) error {
	if err := unsupported(caps.imageGravity, "MagickSetImageGravity", "1.3.22"); err != nil {
		return err
	}
	return w.checkStatus(C.MagickSetImageGravity(w.mw, C.GravityType(gravity)))
}

// GetImageGreenPrimary returns the chromaticity green primary point.
func (w *MagickWand) GetImageGreenPrimary() (x, y float64, err error) {
	var cx, cy C.double
	err = w.checkStatus(C.MagickGetImageGreenPrimary(w.mw, &cx, &cy))
	return float64(cx), float64(cy), err
}

// SetImageGreenPrimary sets the chromaticity green primary point.
func (w *MagickWand) SetImageGreenPrimary(x, y float64) error {
	return w.checkStatus(C.MagickSetImageGreenPrimary(w.mw, C.double(x), C.double(y)))
}

// GetImageHeight returns the image height.
func (w *MagickWand) GetImageHeight() uint {
	return uint(C.MagickGetImageHeight(w.mw))
}

// GetImageHistogram returns the image histogram as a list of pixel wands,
// one per unique color, or nil if the native call produced none. The
// caller owns the returned wands.
func (w *MagickWand) GetImageHistogram() []*PixelWand {
	var n C.ulong
	arr := C.MagickGetImageHistogram(w.mw, &n)
	if arr == nil {
		return nil
	}
	defer relinquish(unsafe.Pointer(arr))
	out := make([]*PixelWand, 0, int(n))
	for _, p := range unsafe.Slice(arr, int(n)) {
		out = append(out, &PixelWand{pw: p})
	}
	return out
}

// GetImageIndex returns the index of the current image.
func (w *MagickWand) GetImageIndex() int {
	return int(C.MagickGetImageIndex(w.mw))
}

// SetImageIndex makes the image at the given index the current one.
func (w *MagickWand) SetImageIndex(index int) error {
	return w.checkStatus(C.MagickSetImageIndex(w.mw, C.long(index)))
}

// GetImageInterlaceScheme gets the image interlace scheme.
func (w *MagickWand) GetImageInterlaceScheme() InterlaceType {
	return InterlaceTypeFromNative(uint32(C.MagickGetImageInterlaceScheme(w.mw)))
}

// SetImageInterlaceScheme sets the image interlace scheme.
func (w *MagickWand) SetImageInterlaceScheme(scheme InterlaceType) error {
	return w.checkStatus(C.MagickSetImageInterlaceScheme(w.mw, C.InterlaceType(scheme)))
}

// GetImageIterations gets the number of animation iterations.
func (w *MagickWand) GetImageIterations() (uint, error) {
	if err := unsupported(caps.imageOrientation, "MagickGetImageIterations", "1.3.26"); err != nil {
		return 0, err
	}
	return uint(C.MagickGetImageIterations(w.mw)), nil
}

// SetImageIterations sets the number of animation iterations.
func (w *MagickWand) SetImageIterations(iterations uint) error {
	if err := unsupported(caps.imageOrientation, "MagickSetImageIterations", "1.3.26"); err != nil {
		return err
	}
	return w.checkStatus(C.MagickSetImageIterations(w.mw, C.ulong(iterations)))
}

// GetImageMatteColor returns the image matte color.
func (w *MagickWand) GetImageMatteColor() (*PixelWand, error) {
	px := NewPixelWand()
	if err := w.checkStatus(C.MagickGetImageMatteColor(w.mw, px.pw)); err != nil {
		px.Destroy()
		return nil, err
	}
	return px, nil
}

// SetImageMatteColor sets the image matte color.
func (w *MagickWand) SetImageMatteColor(matte *PixelWand) error {
	return w.checkStatus(C.MagickSetImageMatteColor(w.mw, matte.pw))
}

// GetImageOrientation gets the image orientation.
func (w *MagickWand) GetImageOrientation() (OrientationType, error) {
	if err := unsupported(caps.imageOrientation, "MagickGetImageOrientation", "1.3.26"); err != nil {
		return UnknownOrientation, err
	}
	return OrientationTypeFromNative(uint32(C.MagickGetImageOrientation(w.mw))), nil
}

// SetImageOrientation sets the image orientation.
func (w *MagickWand) SetImageOrientation(orientation OrientationType) error {
	if err := unsupported(caps.imageOrientation, "MagickSetImageOrientation", "1.3.26"); err != nil {
		return err
	}
	return w.checkStatus(C.MagickSetImageOrientation(w.mw, C.OrientationType(orientation)))
}

// GetImagePage retrieves the image page size and offset.
func (w *MagickWand) GetImagePage() (width, height uint, x, y int, err error) {
	var cw, ch C.ulong
	var cx, cy C.long
	err = w.checkStatus(C.MagickGetImagePage(w.mw, &cw, &ch, &cx, &cy))
	return uint(cw), uint(ch), int(cx), int(cy), err
}

// SetImagePage sets the image page size and offset. Pass zeros to reset
// the page to its default.
func (w *MagickWand) SetImagePage(width, height uint, x, y int) error {
	return w.checkStatus(C.MagickSetImagePage(w.mw, C.ulong(width), C.ulong(height), C.long(x), C.long(y)))
}

// GetImagePixels extracts pixel data in the order given by pixmap (e.g.
// "RGB", "BGRA"), one byte per component.
func (w *MagickWand) GetImagePixels(x, y int, columns, rows uint, pixmap string) ([]byte, error) {
	assertDims(columns, rows)
	assertPixmap(pixmap)
	cs := C.CString(pixmap)
	defer C.free(unsafe.Pointer(cs))
	out := make([]byte, int(columns)*int(rows)*len(pixmap))
	status := C.MagickGetImagePixels(w.mw, C.long(x), C.long(y), C.ulong(columns), C.ulong(rows), cs, C.CharPixel, (*C.uchar)(unsafe.Pointer(&out[0])))
	if err := w.checkStatus(status); err != nil {
		return nil, err
	}
	return out, nil
}

// SetImagePixels stores pixel data into the image at the given location,
// in the order given by pixmap, one byte per component.
func (w *MagickWand) SetImagePixels(x, y int, columns, rows uint, pixmap string, pixels []byte) error {
	assertDims(columns, rows)
	assertPixmap(pixmap)
	if len(pixels) != int(columns)*int(rows)*len(pixmap) {
		panic("gm: pixel buffer length must match columns*rows*len(pixmap)")
	}
	cs := C.CString(pixmap)
	defer C.free(unsafe.Pointer(cs))
	err := w.checkStatus(C.MagickSetImagePixels(w.mw, C.long(x), C.long(y), C.ulong(columns), C.ulong(rows), cs, C.CharPixel, (*C.uchar)(unsafe.Pointer(&pixels[0]))))
	runtime.KeepAlive(pixels)
	return err
}

// GetImageProfile returns the named image profile (e.g. "ICC", "IPTC"),
// or nil if it is not present.
func (w *MagickWand) GetImageProfile(name string) []byte {
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	var length C.ulong
	p := C.MagickGetImageProfile(w.mw, cs, &length)
	if p == nil {
		return nil
	}
	defer relinquish(unsafe.Pointer(p))
	return C.GoBytes(unsafe.Pointer(p), C.int(length))
}

// SetImageProfile adds the named profile to the image.
func (w *MagickWand) SetImageProfile(name string, profile []byte) error {
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	var p unsafe.Pointer
	if len(profile) > 0 {
		p = unsafe.Pointer(&profile[0])
	}
	err := w.checkStatus(C.MagickSetImageProfile(w.mw, cs, p, C.ulong(len(profile))))
	runtime.KeepAlive(profile)
	return err
}

// ProfileImage adds or removes an ICC, IPTC, or generic profile. A nil
// profile removes the named profile; name "*" with a nil profile removes
// all profiles.
func (w *MagickWand) ProfileImage(name string, profile []byte) error {
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	var p unsafe.Pointer
	if len(profile) > 0 {
		p = unsafe.Pointer(&profile[0])
	}
	err := w.checkStatus(C.MagickProfileImage(w.mw, cs, p, C.size_t(len(profile))))
	runtime.KeepAlive(profile)
	return err
}

// RemoveImageProfile removes the named image profile and returns it, or
// nil if it was not present.
func (w *MagickWand) RemoveImageProfile(name string) []byte {
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	var length C.ulong
	p := C.MagickRemoveImageProfile(w.mw, cs, &length)
	if p == nil {
		return nil
	}
	defer relinquish(unsafe.Pointer(p))
	return C.GoBytes(unsafe.Pointer(p), C.int(length))
}

// GetImageRedPrimary returns the chromaticity red primary point.
func (w *MagickWand) GetImageRedPrimary() (x, y float64, err error) {
	var cx, cy C.double
	err = w.checkStatus(C.MagickGetImageRedPrimary(w.mw, &cx, &cy))
	return float64(cx), float64(cy), err
}

// SetImageRedPrimary sets the chromaticity red primary point.
func (w *MagickWand) SetImageRedPrimary(x, y float64) error {
	return w.checkStatus(C.MagickSetImageRedPrimary(w.mw, C.double(x), C.double(y)))
}

// GetImageRenderingIntent gets the image rendering intent.
func (w *MagickWand) GetImageRenderingIntent() RenderingIntent {
	return RenderingIntentFromNative(uint32(C.MagickGetImageRenderingIntent(w.mw)))
}

// SetImageRenderingIntent sets the image rendering intent.
func (w *MagickWand) SetImageRenderingIntent(intent RenderingIntent) error {
	return w.checkStatus(C.MagickSetImageRenderingIntent(w.mw, C.RenderingIntent(intent)))
}

// GetImageResolution gets the image x and y resolution.
func (w *MagickWand) GetImageResolution() (x, y float64, err error) {
	var cx, cy C.double
	err = w.checkStatus(C.MagickGetImageResolution(w.mw, &cx, &cy))
	return float64(cx), float64(cy), err
}

// SetImageResolution sets the image x and y resolution.
func (w *MagickWand) SetImageResolution(x, y float64) error {
	return w.checkStatus(C.MagickSetImageResolution(w.mw, C.double(x), C.double(y)))
}

// GetImageScene gets the image scene number.
func (w *MagickWand) GetImageScene() uint {
	return uint(C.MagickGetImageScene(w.mw))
}

// SetImageScene sets the image scene number.
func (w *MagickWand) SetImageScene(scene uint) error {
	return w.checkStatus(C.MagickSetImageScene(w.mw, C.ulong(scene)))
}

// GetImageSignature generates an SHA-256 message digest for the image
// pixel stream.
func (w *MagickWand) GetImageSignature() *MagickString {
	return newMagickString(C.MagickGetImageSignature(w.mw))
}

// GetImageSize returns the image size in bytes.
func (w *MagickWand) GetImageSize() int64 {
	return int64(C.MagickGetImageSize(w.mw))
}

// GetImageType gets the image type.
func (w *MagickWand) GetImageType() ImageType {
	return ImageTypeFromNative(uint32(C.MagickGetImageType(w.mw)))
}

// SetImageType sets the image type.
func (w *MagickWand) SetImageType(imageType ImageType) error {
	return w.checkStatus(C.MagickSetImageType(w.mw, C.ImageType(imageType)))
}

// GetImageSavedType gets the image type that will be used when the image
// is saved.
func (w *MagickWand) GetImageSavedType() ImageType {
	return ImageTypeFromNative(uint32(C.MagickGetImageSavedType(w.mw)))
}

// SetImageSavedType sets the image type that will be used when the image
// is saved.
func (w *MagickWand) SetImageSavedType(imageType ImageType) error {
	return w.checkStatus(C.MagickSetImageSavedType(w.mw, C.ImageType(imageType)))
}

// GetImageUnits gets the image resolution units.
func (w *MagickWand) GetImageUnits() ResolutionType {
	return ResolutionTypeFromNative(uint32(C.MagickGetImageUnits(w.mw)))
}

// SetImageUnits sets the image resolution units.
func (w *MagickWand) SetImageUnits(units ResolutionType) error {
	return w.checkStatus(C.MagickSetImageUnits(w.mw, C.ResolutionType(units)))
}

// GetImageVirtualPixelMethod gets the virtual pixel method of the image.
func (w *MagickWand) GetImageVirtualPixelMethod() VirtualPixelMethod {
	return VirtualPixelMethodFromNative(uint32(C.MagickGetImageVirtualPixelMethod(w.mw)))
}

// SetImageVirtualPixelMethod sets the virtual pixel method of the image.
func (w *MagickWand) SetImageVirtualPixelMethod(method VirtualPixelMethod) error {
	return w.checkStatus(C.MagickSetImageVirtualPixelMethod(w.mw, C.VirtualPixelMethod(method)))
}

// GetImageWhitePoint returns the chromaticity white point.
func (w *MagickWand) GetImageWhitePoint() (x, y float64, err error) {
	var cx, cy C.double
	err = w.checkStatus(C.MagickGetImageWhitePoint(w.mw, &cx, &cy))
	return float64(cx), float64(cy), err
}

// SetImageWhitePoint sets the chromaticity white point.
func (w *MagickWand) SetImageWhitePoint(x, y float64) error {
	return w.checkStatus(C.MagickSetImageWhitePoint(w.mw, C.double(x), C.double(y)))
}

// GetImageWidth returns the image width.
func (w *MagickWand) GetImageWidth() uint {
	return uint(C.MagickGetImageWidth(w.mw))
}

// GetNumberImages returns the number of images in the wand.
func (w *MagickWand) GetNumberImages() uint {
	return uint(C.MagickGetNumberImages(w.mw))
}

// HaldClutImage applies a Hald color lookup table to the image.
func (w *MagickWand) HaldClutImage(clut *MagickWand) error {
	return w.checkStatus(C.MagickHaldClutImage(w.mw, clut.mw))
}

// HasColormap reports whether the current image uses a colormap.
func (w *MagickWand) HasColormap() (bool, error) {
	if err := unsupported(caps.classQueries, "MagickHasColormap", "1.3.29"); err != nil {
		return false, err
	}
	var colormap C.uint
	if err := w.checkStatus(C.MagickHasColormap(w.mw, &colormap)); err != nil {
		return false, err
	}
	return colormap != 0, nil
}

// HasNextImage reports whether the wand has more images when traversing
// forward.
func (w *MagickWand) HasNextImage() bool {
	return C.MagickHasNextImage(w.mw) != 0
}

// HasPreviousImage reports whether the wand has more images when
// traversing backward.
func (w *MagickWand) HasPreviousImage() bool {
	return C.MagickHasPreviousImage(w.mw) != 0
}

// ImplodeImage applies a special effect, imploding the image pixels toward
// the center.
func (w *MagickWand) ImplodeImage(radius float64) error {
	return w.checkStatus(C.MagickImplodeImage(w.mw, C.double(radius)))
}

// IsGrayImage reports whether the image is entirely gray.
func (w *MagickWand) IsGrayImage() (bool, error) {
	if err := unsupported(caps.classQueries, "MagickIsGrayImage", "1.3.29"); err != nil {
		return false, err
	}
	var v C.uint
	if err := w.checkStatus(C.MagickIsGrayImage(w.mw, &v)); err != nil {
		return false, err
	}
	return v != 0, nil
}

// IsMonochromeImage reports whether the image is monochrome.
func (w *MagickWand) IsMonochromeImage() (bool, error) {
	if err := unsupported(caps.classQueries, "MagickIsMonochromeImage", "1.3.29"); err != nil {
		return false, err
	}
	var v C.uint
	if err := w.checkStatus(C.MagickIsMonochromeImage(w.mw, &v)); err != nil {
		return false, err
	}
	return v != 0, nil
}

// IsOpaqueImage reports whether the image has no transparency.
func (w *MagickWand) IsOpaqueImage() (bool, error) {
	if err := unsupported(caps.classQueries, "MagickIsOpaqueImage", "1.3.29"); err != nil {
		return false, err
	}
	var v C.uint
	if err := w.checkStatus(C.MagickIsOpaqueImage(w.mw, &v)); err != nil {
		return false, err
	}
	return v != 0, nil
}

// IsPaletteImage reports whether the image uses 256 colors or less.
func (w *MagickWand) IsPaletteImage() (bool, error) {
	if err := unsupported(caps.classQueries, "MagickIsPaletteImage", "1.3.29"); err != nil {
		return false, err
	}
	var v C.uint
	if err := w.checkStatus(C.MagickIsPaletteImage(w.mw, &v)); err != nil {
		return false, err
	}
	return v != 0, nil
}

// LabelImage assigns a label to the image.
func (w *MagickWand) LabelImage(label string) error {
	cs := C.CString(label)
	defer C.free(unsafe.Pointer(cs))
	return w.checkStatus(C.MagickLabelImage(w.mw, cs))
}

// LevelImage adjusts the image levels: values below black become black,
// values above white become white, and mid applies a gamma correction in
// between.
func (w *MagickWand) LevelImage(black, mid, white float64) error {
	return w.checkStatus(C.MagickLevelImage(w.mw, C.double(black), C.double(mid), C.double(white)))
}

// LevelImageChannel adjusts the levels of a single channel.
func (w *MagickWand) LevelImageChannel(channel ChannelType, black, mid, white float64) error {
	return w.checkStatus(C.MagickLevelImageChannel(w.mw, C.ChannelType(channel), C.double(black), C.double(mid), C.double(white)))
}

// MagnifyImage conveniently scales the image to twice its size.
func (w *MagickWand) MagnifyImage() error {
	return w.checkStatus(C.MagickMagnifyImage(w.mw))
}

// MapImage replaces the image colors with the closest colors from the
// reference image.
func (w *MagickWand) MapImage(mapWand *MagickWand, dither bool) error {
	return w.checkStatus(C.MagickMapImage(w.mw, mapWand.mw, bToUint(dither)))
}

// MatteFloodfillImage changes the opacity of any pixel that matches the
// opacity of the target pixel and is a neighbor, working outward from
// (x, y). If borderColor is set, matching stops at that color instead.
func (w *MagickWand) MatteFloodfillImage(opacity Quantum, fuzz float64, borderColor *PixelWand, x, y int) error {
	var border *C.PixelWand
	if borderColor != nil {
		border = borderColor.pw
	}
	return w.checkStatus(C.MagickMatteFloodfillImage(w.mw, C.Quantum(opacity), C.double(fuzz), border, C.long(x), C.long(y)))
}

// MedianFilterImage replaces each pixel with the median of its neighbors
// within the given radius.
func (w *MagickWand) MedianFilterImage(radius float64) error {
	return w.checkStatus(C.MagickMedianFilterImage(w.mw, C.double(radius)))
}

// MinifyImage conveniently scales the image to half its size.
func (w *MagickWand) MinifyImage() error {
	return w.checkStatus(C.MagickMinifyImage(w.mw))
}

// ModulateImage adjusts brightness, saturation, and hue as percentages of
// the current values (100 leaves the component unchanged).
func (w *MagickWand) ModulateImage(brightness, saturation, hue float64) error {
	return w.checkStatus(C.MagickModulateImage(w.mw, C.double(brightness), C.double(saturation), C.double(hue)))
}

// MontageImage creates a composite of tiled thumbnails from the image
// sequence, or nil if the native call produced none.
func (w *MagickWand) MontageImage(dw *DrawingWand, tileGeometry, thumbnailGeometry string, mode MontageMode, frame string) *MagickWand {
	ctile := C.CString(tileGeometry)
	defer C.free(unsafe.Pointer(ctile))
	cthumb := C.CString(thumbnailGeometry)
	defer C.free(unsafe.Pointer(cthumb))
	cframe := C.CString(frame)
	defer C.free(unsafe.Pointer(cframe))
	return newMagickWandFromNative(C.MagickMontageImage(w.mw, dw.dw, ctile, cthumb, C.MontageMode(mode), cframe))
}

// MorphImages morphs the image sequence, linearly interpolating pixels and
// size across the given number of in-between frames. Returns nil if the
// wand holds no images.
func (w *MagickWand) MorphImages(numberFrames uint) *MagickWand {
	return newMagickWandFromNative(C.MagickMorphImages(w.mw, C.ulong(numberFrames)))
}

// MosaicImages inlays the image sequence into a single coherent picture,
// compositing each image at its page offset. Returns nil if the wand
// holds no images.
func (w *MagickWand) MosaicImages() *MagickWand {
	return newMagickWandFromNative(C.MagickMosaicImages(w.mw))
}

// MotionBlurImage simulates motion blur along the given angle.
func (w *MagickWand) MotionBlurImage(radius, sigma, angle float64) error {
	return w.checkStatus(C.MagickMotionBlurImage(w.mw, C.double(radius), C.double(sigma), C.double(angle)))
}

// NegateImage negates the colors of the image. With gray true only
// grayscale pixels are negated.
func (w *MagickWand) NegateImage(gray bool) error {
	return w.checkStatus(C.MagickNegateImage(w.mw, bToUint(gray)))
}

// NegateImageChannel negates the colors of a single channel.
func (w *MagickWand) NegateImageChannel(channel ChannelType, gray bool) error {
	return w.checkStatus(C.MagickNegateImageChannel(w.mw, C.ChannelType(channel), bToUint(gray)))
}

// NextImage advances to the next image in the wand. It reports whether a
// next image existed.
func (w *MagickWand) NextImage() bool {
	return C.MagickNextImage(w.mw) != 0
}

// NormalizeImage enhances contrast by adjusting pixel colors to span the
// entire available range.
func (w *MagickWand) NormalizeImage() error {
	return w.checkStatus(C.MagickNormalizeImage(w.mw))
}

// OilPaintImage simulates an oil painting: each pixel is replaced by the
// most frequent color in its neighborhood.
func (w *MagickWand) OilPaintImage(radius float64) error {
	return w.checkStatus(C.MagickOilPaintImage(w.mw, C.double(radius)))
}

// OpaqueImage changes any pixel matching target into the fill color.
func (w *MagickWand) OpaqueImage(target, fill *PixelWand, fuzz float64) error {
	return w.checkStatus(C.MagickOpaqueImage(w.mw, target.pw, fill.pw, C.double(fuzz)))
}

// PingImage reads only the image metadata (size, format) without loading
// pixels.
func (w *MagickWand) PingImage(filename string) error {
	cs := C.CString(filename)
	defer C.free(unsafe.Pointer(cs))
	return w.checkStatus(C.MagickPingImage(w.mw, cs))
}

// PreviewImages tiles 9 thumbnails of the image varying a given operation
// parameter, or nil if the native call produced none.
func (w *MagickWand) PreviewImages(preview PreviewType) *MagickWand {
	return newMagickWandFromNative(C.MagickPreviewImages(w.mw, C.PreviewType(preview)))
}

// PreviousImage steps back to the previous image in the wand.
func (w *MagickWand) PreviousImage() error {
	return w.checkStatus(C.MagickPreviousImage(w.mw))
}

// QuantizeImage reduces the image to a fixed number of colors, minimizing
// color difference in the given colorspace. It panics if colorspace is
// UndefinedColorspace.
func (w *MagickWand) QuantizeImage(numberColors uint, colorspace ColorspaceType, treeDepth uint, dither, measureError bool) error {
	if colorspace == UndefinedColorspace {
		panic("gm: quantize colorspace must not be undefined")
	}
	return w.checkStatus(C.MagickQuantizeImage(w.mw, C.ulong(numberColors), C.ColorspaceType(colorspace), C.ulong(treeDepth), bToUint(dither), bToUint(measureError)))
}

// QuantizeImages reduces the image sequence to a fixed number of colors.
// It panics if colorspace is UndefinedColorspace.
func (w *MagickWand) QuantizeImages(numberColors uint, colorspace ColorspaceType, treeDepth uint, dither, measureError bool) error {
	if colorspace == UndefinedColorspace {
		panic("gm: quantize colorspace must not be undefined")
	}
	return w.checkStatus(C.MagickQuantizeImages(w.mw, C.ulong(numberColors), C.ColorspaceType(colorspace), C.ulong(treeDepth), bToUint(dither), bToUint(measureError)))
}

// QueryFontMetrics measures the text as it would render with the drawing
// wand's settings. The result holds character width and height, ascender,
// descender, text width, text height, and maximum horizontal advance.
func (w *MagickWand) QueryFontMetrics(dw *DrawingWand, text string) ([7]float64, error) {
	cs := C.CString(text)
	defer C.free(unsafe.Pointer(cs))
	p := C.MagickQueryFontMetrics(w.mw, dw.dw, cs)
	if p == nil {
		return [7]float64{}, w.exception()
	}
	ds := newDoubleSlice(p, 7)
	defer ds.Close()
	var out [7]float64
	copy(out[:], ds.Float64s())
	return out, nil
}

// RadialBlurImage blurs the image radially by the given angle.
func (w *MagickWand) RadialBlurImage(angle float64) error {
	return w.checkStatus(C.MagickRadialBlurImage(w.mw, C.double(angle)))
}

// RaiseImage creates a simulated three-dimensional button-like effect by
// lightening and darkening the region edges.
func (w *MagickWand) RaiseImage(width, height uint, x, y int, raise bool) error {
	return w.checkStatus(C.MagickRaiseImage(w.mw, C.ulong(width), C.ulong(height), C.long(x), C.long(y), bToUint(raise)))
}

// ReadImage reads an image or image sequence from a file. The filename may
// also name a pseudo-format (e.g. "xc:white").
func (w *MagickWand) ReadImage(filename string) error {
	cs := C.CString(filename)
	defer C.free(unsafe.Pointer(cs))
	return w.checkStatus(C.MagickReadImage(w.mw, cs))
}

// ReadImageBlob reads an image or image sequence from an in-memory blob.
// The native side keeps a reference into blob, so the wand retains the
// slice until Destroy; the caller must not mutate it while the wand is
// live.
func (w *MagickWand) ReadImageBlob(blob []byte) error {
	if len(blob) == 0 {
		return w.checkStatus(C.MagickReadImageBlob(w.mw, nil, 0))
	}
	w.blob = blob
	return w.checkStatus(C.MagickReadImageBlob(w.mw, (*C.uchar)(unsafe.Pointer(&blob[0])), C.size_t(len(blob))))
}

// ReduceNoiseImage smooths image contours while preserving edges, using
// the pixel neighbor closest in value within the given radius.
func (w *MagickWand) ReduceNoiseImage(radius float64) error {
	return w.checkStatus(C.MagickReduceNoiseImage(w.mw, C.double(radius)))
}

// RemoveImage removes the current image from the image list.
func (w *MagickWand) RemoveImage() error {
	return w.checkStatus(C.MagickRemoveImage(w.mw))
}

// SetImageOption sets a format-specific image option (e.g.
// SetImageOption("jpeg", "preserve-settings", "true")).
func (w *MagickWand) SetImageOption(format, key, value string) error {
	if err := unsupported(caps.imageOrientation, "MagickSetImageOption", "1.3.26"); err != nil {
		return err
	}
	cformat := C.CString(format)
	defer C.free(unsafe.Pointer(cformat))
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))
	cvalue := C.CString(value)
	defer C.free(unsafe.Pointer(cvalue))
	return w.checkStatus(C.MagickSetImageOption(w.mw, cformat, ckey, cvalue))
}

// RemoveImageOption removes a format-specific image option.
func (w *MagickWand) RemoveImageOption(format, key string) error {
	if err := unsupported(caps.imageOrientation, "MagickRemoveImageOption", "1.3.26"); err != nil {
		return err
	}
	cformat := C.CString(format)
	defer C.free(unsafe.Pointer(cformat))
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))
	return w.checkStatus(C.MagickRemoveImageOption(w.mw, cformat, ckey))
}

// ResampleImage resamples the image to the desired resolution.
func (w *MagickWand) ResampleImage(xResolution, yResolution float64, filter FilterType, blur float64) error {
	return w.checkStatus(C.MagickResampleImage(w.mw, C.double(xResolution), C.double(yResolution), C.FilterTypes(filter), C.double(blur)))
}

// ResetIterator resets the wand image iterator; use with NextImage to
// iterate over all images in the wand.
func (w *MagickWand) ResetIterator() {
	C.MagickResetIterator(w.mw)
}

// ResizeImage scales the image to the desired dimensions with the given
// filter. Blur above 1 blurs the result, below 1 sharpens it.
func (w *MagickWand) ResizeImage(columns, rows uint, filter FilterType, blur float64) error {
	assertDims(columns, rows)
	return w.checkStatus(C.MagickResizeImage(w.mw, C.ulong(columns), C.ulong(rows), C.FilterTypes(filter), C.double(blur)))
}

// RollImage offsets the image, wrapping pixels around the edges.
func (w *MagickWand) RollImage(xOffset, yOffset int) error {
	return w.checkStatus(C.MagickRollImage(w.mw, C.long(xOffset), C.long(yOffset)))
}

// RotateImage rotates the image by the given number of degrees, filling
// any empty triangles with the background color.
func (w *MagickWand) RotateImage(background *PixelWand, degrees float64) error {
	return w.checkStatus(C.MagickRotateImage(w.mw, background.pw, C.double(degrees)))
}

// SampleImage scales the image with pixel sampling; no new colors are
// introduced.
func (w *MagickWand) SampleImage(columns, rows uint) error {
	assertDims(columns, rows)
	return w.checkStatus(C.MagickSampleImage(w.mw, C.ulong(columns), C.ulong(rows)))
}

// ScaleImage scales the image to the desired dimensions.
func (w *MagickWand) ScaleImage(columns, rows uint) error {
	assertDims(columns, rows)
	return w.checkStatus(C.MagickScaleImage(w.mw, C.ulong(columns), C.ulong(rows)))
}

// SeparateImageChannel separates the given channel into a grayscale image.
func (w *MagickWand) SeparateImageChannel(channel ChannelType) error {
	return w.checkStatus(C.MagickSeparateImageChannel(w.mw, C.ChannelType(channel)))
}

// SetImage replaces the images in the wand with those of another wand.
func (w *MagickWand) SetImage(set *MagickWand) error {
	return w.checkStatus(C.MagickSetImage(w.mw, set.mw))
}

// SetImageAttribute sets an image attribute.
func (w *MagickWand) SetImageAttribute(name, value string) error {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	cvalue := C.CString(value)
	defer C.free(unsafe.Pointer(cvalue))
	return w.checkStatus(C.MagickSetImageAttribute(w.mw, cname, cvalue))
}

// SharpenImage sharpens the image with a gaussian operator of the given
// radius and standard deviation. A radius of 0 selects a suitable radius.
func (w *MagickWand) SharpenImage(radius, sigma float64) error {
	return w.checkStatus(C.MagickSharpenImage(w.mw, C.double(radius), C.double(sigma)))
}

// ShaveImage shaves pixels from the image edges.
func (w *MagickWand) ShaveImage(columns, rows uint) error {
	return w.checkStatus(C.MagickShaveImage(w.mw, C.ulong(columns), C.ulong(rows)))
}

// ShearImage slides one edge of the image along the x or y axis into a
// parallelogram, filling the empty triangles with the background color.
func (w *MagickWand) ShearImage(background *PixelWand, xShear, yShear float64) error {
	return w.checkStatus(C.MagickShearImage(w.mw, background.pw, C.double(xShear), C.double(yShear)))
}

// SolarizeImage applies a solarization effect, as from exposing
// photographic film to light during development.
func (w *MagickWand) SolarizeImage(threshold float64) error {
	return w.checkStatus(C.MagickSolarizeImage(w.mw, C.double(threshold)))
}

// SpreadImage randomly displaces each pixel within a block of the given
// radius.
func (w *MagickWand) SpreadImage(radius float64) error {
	return w.checkStatus(C.MagickSpreadImage(w.mw, C.double(radius)))
}

// SteganoImage hides a digital watermark within the image, offset by the
// given number of pixels. Returns nil if the native call produced none.
func (w *MagickWand) SteganoImage(watermark *MagickWand, offset int) *MagickWand {
	return newMagickWandFromNative(C.MagickSteganoImage(w.mw, watermark.mw, C.long(offset)))
}

// StereoImage composites the image with another into a single stereo
// anaglyph, or nil if the native call produced none.
func (w *MagickWand) StereoImage(offset *MagickWand) *MagickWand {
	return newMagickWandFromNative(C.MagickStereoImage(w.mw, offset.mw))
}

// StripImage removes all profiles and text attributes from the image.
func (w *MagickWand) StripImage() error {
	return w.checkStatus(C.MagickStripImage(w.mw))
}

// SwirlImage swirls the pixels about the center of the image by the given
// number of degrees.
func (w *MagickWand) SwirlImage(degrees float64) error {
	return w.checkStatus(C.MagickSwirlImage(w.mw, C.double(degrees)))
}

// TextureImage repeatedly tiles the texture across and down the image, or
// nil if the native call produced none.
func (w *MagickWand) TextureImage(texture *MagickWand) *MagickWand {
	return newMagickWandFromNative(C.MagickTextureImage(w.mw, texture.mw))
}

// ThresholdImage divides the image into foreground and background by
// intensity.
func (w *MagickWand) ThresholdImage(threshold float64) error {
	return w.checkStatus(C.MagickThresholdImage(w.mw, C.double(threshold)))
}

// ThresholdImageChannel thresholds a single channel.
func (w *MagickWand) ThresholdImageChannel(channel ChannelType, threshold float64) error {
	return w.checkStatus(C.MagickThresholdImageChannel(w.mw, C.ChannelType(channel), C.double(threshold)))
}

// TintImage tints the image with the given fill color, weighted per
// channel by opacity.
func (w *MagickWand) TintImage(tint, opacity *PixelWand) error {
	return w.checkStatus(C.MagickTintImage(w.mw, tint.pw, opacity.pw))
}

// TransformImage crops the image to a region and resizes it per the
// geometry specification. Returns nil if the operation produced no image.
func (w *MagickWand) TransformImage(crop, geometry string) *MagickWand {
	ccrop := C.CString(crop)
	defer C.free(unsafe.Pointer(ccrop))
	cgeometry := C.CString(geometry)
	defer C.free(unsafe.Pointer(cgeometry))
	return newMagickWandFromNative(C.MagickTransformImage(w.mw, ccrop, cgeometry))
}

// TransparentImage changes any pixel matching target to the given opacity.
func (w *MagickWand) TransparentImage(target *PixelWand, opacity Quantum, fuzz float64) error {
	return w.checkStatus(C.MagickTransparentImage(w.mw, target.pw, C.Quantum(opacity), C.double(fuzz)))
}

// TrimImage removes edges of the background color from the image.
func (w *MagickWand) TrimImage(fuzz float64) error {
	return w.checkStatus(C.MagickTrimImage(w.mw, C.double(fuzz)))
}

// UnsharpMaskImage sharpens the image by subtracting a blurred copy;
// amount scales the difference and threshold bounds the change per pixel.
func (w *MagickWand) UnsharpMaskImage(radius, sigma, amount, threshold float64) error {
	return w.checkStatus(C.MagickUnsharpMaskImage(w.mw, C.double(radius), C.double(sigma), C.double(amount), C.double(threshold)))
}

// WaveImage distorts the image along a sine wave.
func (w *MagickWand) WaveImage(amplitude, waveLength float64) error {
	return w.checkStatus(C.MagickWaveImage(w.mw, C.double(amplitude), C.double(waveLength)))
}

// WhiteThresholdImage forces all pixels above the threshold to white.
func (w *MagickWand) WhiteThresholdImage(threshold *PixelWand) error {
	return w.checkStatus(C.MagickWhiteThresholdImage(w.mw, threshold.pw))
}

// WriteImage writes the current image to a file, deriving the format from
// the filename extension or a prior SetImageFormat.
func (w *MagickWand) WriteImage(filename string) error {
	cs := C.CString(filename)
	defer C.free(unsafe.Pointer(cs))
	return w.checkStatus(C.MagickWriteImage(w.mw, cs))
}

// WriteImageBlob encodes the current image into an in-memory blob, or nil
// if the wand holds no image.
func (w *MagickWand) WriteImageBlob() []byte {
	var length C.size_t
	p := C.MagickWriteImageBlob(w.mw, &length)
	if p == nil {
		return nil
	}
	defer relinquish(unsafe.Pointer(p))
	return C.GoBytes(unsafe.Pointer(p), C.int(length))
}

// WriteImages writes the image sequence starting at the first frame;
// adjoin joins all frames into a single file when the format permits it.
func (w *MagickWand) WriteImages(filename string, adjoin bool) error {
	cs := C.CString(filename)
	defer C.free(unsafe.Pointer(cs))
	return w.checkStatus(C.MagickWriteImages(w.mw, cs, bToUint(adjoin)))
}

func bToUint(b bool) C.uint {
	if b {
		return 1
	}
	return 0
}
