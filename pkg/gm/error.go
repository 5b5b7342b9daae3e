package gm

/*
#include <wand/magick_wand.h>
*/
import "C"

import (
	"fmt"
	"strings"
	"unsafe"
)

// ExceptionType mirrors the native exception category constants.
//
// http://www.graphicsmagick.org/api/types.html#exceptiontype
type ExceptionType uint32

const (
	UndefinedException ExceptionType = ExceptionType(C.UndefinedException)

	EventException       ExceptionType = ExceptionType(C.EventException)
	ResourceEvent        ExceptionType = ExceptionType(C.ResourceEvent)
	TypeEvent            ExceptionType = ExceptionType(C.TypeEvent)
	OptionEvent          ExceptionType = ExceptionType(C.OptionEvent)
	DelegateEvent        ExceptionType = ExceptionType(C.DelegateEvent)
	MissingDelegateEvent ExceptionType = ExceptionType(C.MissingDelegateEvent)
	CorruptImageEvent    ExceptionType = ExceptionType(C.CorruptImageEvent)
	FileOpenEvent        ExceptionType = ExceptionType(C.FileOpenEvent)
	BlobEvent            ExceptionType = ExceptionType(C.BlobEvent)
	StreamEvent          ExceptionType = ExceptionType(C.StreamEvent)
	CacheEvent           ExceptionType = ExceptionType(C.CacheEvent)
	CoderEvent           ExceptionType = ExceptionType(C.CoderEvent)
	ModuleEvent          ExceptionType = ExceptionType(C.ModuleEvent)
	DrawEvent            ExceptionType = ExceptionType(C.DrawEvent)
	ImageEvent           ExceptionType = ExceptionType(C.ImageEvent)
	WandEvent            ExceptionType = ExceptionType(C.WandEvent)
	TemporaryFileEvent   ExceptionType = ExceptionType(C.TemporaryFileEvent)
	TransformEvent       ExceptionType = ExceptionType(C.TransformEvent)
	XServerEvent         ExceptionType = ExceptionType(C.XServerEvent)
	X11Event             ExceptionType = ExceptionType(C.X11Event)
	UserEvent            ExceptionType = ExceptionType(C.UserEvent)
	MonitorEvent         ExceptionType = ExceptionType(C.MonitorEvent)
	LocaleEvent          ExceptionType = ExceptionType(C.LocaleEvent)
	DeprecateEvent       ExceptionType = ExceptionType(C.DeprecateEvent)
	RegistryEvent        ExceptionType = ExceptionType(C.RegistryEvent)
	ConfigureEvent       ExceptionType = ExceptionType(C.ConfigureEvent)

	WarningException       ExceptionType = ExceptionType(C.WarningException)
	ResourceWarning        ExceptionType = ExceptionType(C.ResourceWarning)
	TypeWarning            ExceptionType = ExceptionType(C.TypeWarning)
	OptionWarning          ExceptionType = ExceptionType(C.OptionWarning)
	DelegateWarning        ExceptionType = ExceptionType(C.DelegateWarning)
	MissingDelegateWarning ExceptionType = ExceptionType(C.MissingDelegateWarning)
	CorruptImageWarning    ExceptionType = ExceptionType(C.CorruptImageWarning)
	FileOpenWarning        ExceptionType = ExceptionType(C.FileOpenWarning)
	BlobWarning            ExceptionType = ExceptionType(C.BlobWarning)
	StreamWarning          ExceptionType = ExceptionType(C.StreamWarning)
	CacheWarning           ExceptionType = ExceptionType(C.CacheWarning)
	CoderWarning           ExceptionType = ExceptionType(C.CoderWarning)
	ModuleWarning          ExceptionType = ExceptionType(C.ModuleWarning)
	DrawWarning            ExceptionType = ExceptionType(C.DrawWarning)
	ImageWarning           ExceptionType = ExceptionType(C.ImageWarning)
	WandWarning            ExceptionType = ExceptionType(C.WandWarning)
	TemporaryFileWarning   ExceptionType = ExceptionType(C.TemporaryFileWarning)
	TransformWarning       ExceptionType = ExceptionType(C.TransformWarning)
	XServerWarning         ExceptionType = ExceptionType(C.XServerWarning)
	X11Warning             ExceptionType = ExceptionType(C.X11Warning)
	UserWarning            ExceptionType = ExceptionType(C.UserWarning)
	MonitorWarning         ExceptionType = ExceptionType(C.MonitorWarning)
	LocaleWarning          ExceptionType = ExceptionType(C.LocaleWarning)
	DeprecateWarning       ExceptionType = ExceptionType(C.DeprecateWarning)
	RegistryWarning        ExceptionType = ExceptionType(C.RegistryWarning)
	ConfigureWarning       ExceptionType = ExceptionType(C.ConfigureWarning)

	ErrorException       ExceptionType = ExceptionType(C.ErrorException)
	ResourceError        ExceptionType = ExceptionType(C.ResourceError)
	TypeError            ExceptionType = ExceptionType(C.TypeError)
	OptionError          ExceptionType = ExceptionType(C.OptionError)
	DelegateError        ExceptionType = ExceptionType(C.DelegateError)
	MissingDelegateError ExceptionType = ExceptionType(C.MissingDelegateError)
	CorruptImageError    ExceptionType = ExceptionType(C.CorruptImageError)
	FileOpenError        ExceptionType = ExceptionType(C.FileOpenError)
	BlobError            ExceptionType = ExceptionType(C.BlobError)
	StreamError          ExceptionType = ExceptionType(C.StreamError)
	CacheError           ExceptionType = ExceptionType(C.CacheError)
	CoderError           ExceptionType = ExceptionType(C.CoderError)
	ModuleError          ExceptionType = ExceptionType(C.ModuleError)
	DrawError            ExceptionType = ExceptionType(C.DrawError)
	ImageError           ExceptionType = ExceptionType(C.ImageError)
	WandError            ExceptionType = ExceptionType(C.WandError)
	TemporaryFileError   ExceptionType = ExceptionType(C.TemporaryFileError)
	TransformError       ExceptionType = ExceptionType(C.TransformError)
	XServerError         ExceptionType = ExceptionType(C.XServerError)
	X11Error             ExceptionType = ExceptionType(C.X11Error)
	UserError            ExceptionType = ExceptionType(C.UserError)
	MonitorError         ExceptionType = ExceptionType(C.MonitorError)
	LocaleError          ExceptionType = ExceptionType(C.LocaleError)
	DeprecateError       ExceptionType = ExceptionType(C.DeprecateError)
	RegistryError        ExceptionType = ExceptionType(C.RegistryError)
	ConfigureError       ExceptionType = ExceptionType(C.ConfigureError)

	FatalErrorException       ExceptionType = ExceptionType(C.FatalErrorException)
	ResourceFatalError        ExceptionType = ExceptionType(C.ResourceFatalError)
	TypeFatalError            ExceptionType = ExceptionType(C.TypeFatalError)
	OptionFatalError          ExceptionType = ExceptionType(C.OptionFatalError)
	DelegateFatalError        ExceptionType = ExceptionType(C.DelegateFatalError)
	MissingDelegateFatalError ExceptionType = ExceptionType(C.MissingDelegateFatalError)
	CorruptImageFatalError    ExceptionType = ExceptionType(C.CorruptImageFatalError)
	FileOpenFatalError        ExceptionType = ExceptionType(C.FileOpenFatalError)
	BlobFatalError            ExceptionType = ExceptionType(C.BlobFatalError)
	StreamFatalError          ExceptionType = ExceptionType(C.StreamFatalError)
	CacheFatalError           ExceptionType = ExceptionType(C.CacheFatalError)
	CoderFatalError           ExceptionType = ExceptionType(C.CoderFatalError)
	ModuleFatalError          ExceptionType = ExceptionType(C.ModuleFatalError)
	DrawFatalError            ExceptionType = ExceptionType(C.DrawFatalError)
	ImageFatalError           ExceptionType = ExceptionType(C.ImageFatalError)
	WandFatalError            ExceptionType = ExceptionType(C.WandFatalError)
	TemporaryFileFatalError   ExceptionType = ExceptionType(C.TemporaryFileFatalError)
	TransformFatalError       ExceptionType = ExceptionType(C.TransformFatalError)
	XServerFatalError         ExceptionType = ExceptionType(C.XServerFatalError)
	X11FatalError             ExceptionType = ExceptionType(C.X11FatalError)
	UserFatalError            ExceptionType = ExceptionType(C.UserFatalError)
	MonitorFatalError         ExceptionType = ExceptionType(C.MonitorFatalError)
	LocaleFatalError          ExceptionType = ExceptionType(C.LocaleFatalError)
	DeprecateFatalError       ExceptionType = ExceptionType(C.DeprecateFatalError)
	RegistryFatalError        ExceptionType = ExceptionType(C.RegistryFatalError)
	ConfigureFatalError       ExceptionType = ExceptionType(C.ConfigureFatalError)

	// UnknownException is yielded when the native library reports a category
	// this build does not know about.
	UnknownException ExceptionType = unknownEnum
)

var knownExceptionTypes = []ExceptionType{
	UndefinedException,
	EventException, ResourceEvent, TypeEvent, OptionEvent, DelegateEvent,
	MissingDelegateEvent, CorruptImageEvent, FileOpenEvent, BlobEvent,
	StreamEvent, CacheEvent, CoderEvent, ModuleEvent, DrawEvent, ImageEvent,
	WandEvent, TemporaryFileEvent, TransformEvent, XServerEvent, X11Event,
	UserEvent, MonitorEvent, LocaleEvent, DeprecateEvent, RegistryEvent,
	ConfigureEvent,
	WarningException, ResourceWarning, TypeWarning, OptionWarning,
	DelegateWarning, MissingDelegateWarning, CorruptImageWarning,
	FileOpenWarning, BlobWarning, StreamWarning, CacheWarning, CoderWarning,
	ModuleWarning, DrawWarning, ImageWarning, WandWarning,
	TemporaryFileWarning, TransformWarning, XServerWarning, X11Warning,
	UserWarning, MonitorWarning, LocaleWarning, DeprecateWarning,
	RegistryWarning, ConfigureWarning,
	ErrorException, ResourceError, TypeError, OptionError, DelegateError,
	MissingDelegateError, CorruptImageError, FileOpenError, BlobError,
	StreamError, CacheError, CoderError, ModuleError, DrawError, ImageError,
	WandError, TemporaryFileError, TransformError, XServerError, X11Error,
	UserError, MonitorError, LocaleError, DeprecateError, RegistryError,
	ConfigureError,
	FatalErrorException, ResourceFatalError, TypeFatalError,
	OptionFatalError, DelegateFatalError, MissingDelegateFatalError,
	CorruptImageFatalError, FileOpenFatalError, BlobFatalError,
	StreamFatalError, CacheFatalError, CoderFatalError, ModuleFatalError,
	DrawFatalError, ImageFatalError, WandFatalError,
	TemporaryFileFatalError, TransformFatalError, XServerFatalError,
	X11FatalError, UserFatalError, MonitorFatalError, LocaleFatalError,
	DeprecateFatalError, RegistryFatalError, ConfigureFatalError,
}

// ExceptionTypeFromNative converts a native exception constant. Unmapped
// values yield UnknownException.
func ExceptionTypeFromNative(v uint32) ExceptionType {
	return fromNative(knownExceptionTypes, v, UnknownException)
}

// Native returns the C constant for the category.
func (t ExceptionType) Native() uint32 { return uint32(t) }

// ExceptionSeverity is the broad band an ExceptionType falls into.
type ExceptionSeverity int

const (
	SeverityUndefined ExceptionSeverity = iota
	SeverityEvent
	SeverityWarning
	SeverityError
	SeverityFatal
)

// Severity classifies the category into its native band: events are
// informational, warnings mean the operation completed imperfectly, errors
// mean it failed, fatal errors mean the library is in an unusable state.
func (t ExceptionType) Severity() ExceptionSeverity {
	switch {
	case t == UnknownException || t < EventException:
		return SeverityUndefined
	case t < WarningException:
		return SeverityEvent
	case t < ErrorException:
		return SeverityWarning
	case t < FatalErrorException:
		return SeverityError
	default:
		return SeverityFatal
	}
}

// Error is the typed failure reported by native wand operations: the native
// exception category plus its description.
type Error struct {
	Kind        ExceptionType
	Description string
}

func (e *Error) Error() string {
	return fmt.Sprintf("gm: %s (exception %d)", e.Description, uint32(e.Kind))
}

// newError builds an Error from a MagickGetException-style result. The
// description pointer is owned by the native library; it is copied with
// lossy UTF-8 substitution and released here, exactly once. A null
// description synthesizes a generic unknown-exception error.
func newError(severity C.ExceptionType, description *C.char) *Error {
	if description == nil {
		return &Error{Kind: UnknownException, Description: "unknown exception"}
	}
	defer relinquish(unsafe.Pointer(description))
	desc := strings.ToValidUTF8(C.GoString(description), "�")
	return &Error{Kind: ExceptionTypeFromNative(uint32(severity)), Description: desc}
}
