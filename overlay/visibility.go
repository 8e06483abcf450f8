package overlay

import "time"

// Visibility is the auto-hide state machine of the control surface.
// The countdown only runs while the media is active and the controls are unlocked.
type Visibility struct {
	loop      Loop
	hideAfter time.Duration
	timer     Timer
	armed     bool

	visible bool
	locked  bool
	active  func() bool
}

func newVisibility(loop Loop, hideAfter time.Duration, active func() bool) *Visibility {
	return &Visibility{
		loop:      loop,
		hideAfter: hideAfter,
		timer:     noTimer{},
		visible:   true,
		active:    active,
	}
}

// Visible reports whether the surface is shown. While locked only the lock affordance follows it.
func (v *Visibility) Visible() bool {
	return v.visible
}

// Armed reports whether a countdown is pending.
func (v *Visibility) Armed() bool {
	return v.armed
}

// Activity shows the surface and restarts the countdown.
func (v *Visibility) Activity() {
	v.visible = true
	v.disarm()
	v.arm()
}

// Toggle is the resolved single tap: hide at once when shown.
func (v *Visibility) Toggle() {
	if v.visible {
		v.visible = false
		v.disarm()
		return
	}
	v.Activity()
}

// Resumed starts the countdown when playback becomes active under a visible surface.
func (v *Visibility) Resumed() {
	if v.visible && !v.armed {
		v.arm()
	}
}

// SetLocked suppresses the countdown while locked; unlocking counts as activity.
func (v *Visibility) SetLocked(locked bool) {
	v.locked = locked
	if locked {
		v.disarm()
		return
	}
	v.Activity()
}

// Stop cancels any pending countdown.
func (v *Visibility) Stop() {
	v.disarm()
}

func (v *Visibility) arm() {
	if v.locked || !v.active() {
		return
	}
	v.armed = true
	v.timer = v.loop.AfterFunc(v.hideAfter, v.expire)
}

func (v *Visibility) disarm() {
	v.timer.Stop()
	v.timer = noTimer{}
	v.armed = false
}

func (v *Visibility) expire() {
	v.armed = false
	if v.locked || !v.active() {
		return
	}
	v.visible = false
}
