package overlay

import "errors"

// ErrUnsupported reports a platform capability that is not available.
var ErrUnsupported = errors.New("not supported by this platform")

// The platform handed to the controller may implement any subset of the
// interfaces below. Each one is probed independently and a missing
// capability only disables the feature that needs it.

type FullscreenRequester interface {
	RequestFullscreen() error
}

type FullscreenExiter interface {
	ExitFullscreen() error
}

// FullscreenWatcher reports fullscreen transitions, including those the user makes outside the controller.
type FullscreenWatcher interface {
	OnFullscreenChange(fn func(fullscreen bool)) (cancel func())
}

// OrientationLocker pins the display orientation, e.g. "landscape".
type OrientationLocker interface {
	LockOrientation(orientation string) error
}

type ViewportWatcher interface {
	OnViewportChange(fn func(width, height int)) (cancel func())
}

type ViewportReporter interface {
	Viewport() (width, height int)
}

// Rotator rotates the rendered picture, the fallback when the orientation cannot be locked.
type Rotator interface {
	SetRotation(degrees int) error
}

// VisualFilter applies a 0..1 brightness level to the picture, 0.5 being neutral.
type VisualFilter interface {
	SetBrightness(level float64) error
}

type AspectFitter interface {
	SetAspect(mode string) error
}
