// Package overlay implements the in-player interaction controller: it turns
// pointer input and media engine events into playback commands while driving
// an auto-hiding control surface, gesture disambiguation and a best-effort
// fullscreen transition.
//
// Everything in this package runs on a single Loop. Nothing here is safe for
// concurrent use; foreign goroutines hand work over through Loop.Post.
package overlay

import (
	"time"

	"github.com/marquee-cli/marquee/constant"
	"github.com/marquee-cli/marquee/key"
	"github.com/spf13/viper"
)

// Options tunes the controller. The zero value is not useful; start from DefaultOptions.
type Options struct {
	DoubleTapWindow time.Duration
	SeekStep        float64
	SeekDebounce    time.Duration
	HideAfter       time.Duration
	// DragSensitivity is the vertical travel mapping to the whole 0..1 range.
	DragSensitivity float64
	// TapSlop is the travel under which a press still counts as a tap.
	TapSlop    float64
	AxisLinger time.Duration

	FallbackURL string
	// ForceURL replaces every resolved source. Debugging aid, empty by default.
	ForceURL string

	Fullscreen bool
	EnterDelay time.Duration

	EstimateThroughput bool
	// AssumedBitrate is in bits per second.
	AssumedBitrate float64
	SampleInterval time.Duration
}

// DefaultOptions returns the built-in tuning.
func DefaultOptions() Options {
	return Options{
		DoubleTapWindow:    300 * time.Millisecond,
		SeekStep:           10,
		SeekDebounce:       800 * time.Millisecond,
		HideAfter:          4 * time.Second,
		DragSensitivity:    200,
		TapSlop:            10,
		AxisLinger:         500 * time.Millisecond,
		FallbackURL:        constant.FallbackMediaURL,
		Fullscreen:         true,
		EnterDelay:         600 * time.Millisecond,
		EstimateThroughput: true,
		AssumedBitrate:     2_500_000,
		SampleInterval:     800 * time.Millisecond,
	}
}

// OptionsFromConfig overlays the user configuration on DefaultOptions.
// Non-positive durations and sizes keep their defaults.
func OptionsFromConfig() Options {
	o := DefaultOptions()

	ms := func(k string, into *time.Duration) {
		if v := viper.GetInt(k); v > 0 {
			*into = time.Duration(v) * time.Millisecond
		}
	}
	positive := func(k string, into *float64) {
		if v := viper.GetFloat64(k); v > 0 {
			*into = v
		}
	}

	ms(key.GestureDoubleTapWindow, &o.DoubleTapWindow)
	ms(key.GestureSeekDebounce, &o.SeekDebounce)
	ms(key.OverlayHideAfter, &o.HideAfter)
	ms(key.PlayerEnterDelay, &o.EnterDelay)
	positive(key.GestureSeekStep, &o.SeekStep)
	positive(key.GestureDragSensitivity, &o.DragSensitivity)
	positive(key.PlayerAssumedBitrate, &o.AssumedBitrate)

	if v := viper.GetString(key.PlayerFallbackURL); v != "" {
		o.FallbackURL = v
	}
	o.ForceURL = viper.GetString(key.PlayerForceURL)
	o.Fullscreen = viper.GetBool(key.PlayerFullscreen)
	o.EstimateThroughput = viper.GetBool(key.PlayerEstimateThroughput)

	return o
}
