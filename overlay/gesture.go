package overlay

import (
	"math"
	"time"

	"github.com/marquee-cli/marquee/util"
)

// Side is the half of the surface a gesture landed on.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// sign is the seek direction of the side.
func (s Side) sign() float64 {
	if s == Left {
		return -1
	}
	return 1
}

// Axis is the value a vertical drag adjusts.
type Axis int

const (
	AxisBrightness Axis = iota
	AxisVolume
)

func (a Axis) String() string {
	if a == AxisBrightness {
		return "brightness"
	}
	return "volume"
}

// CommandKind classifies what a gesture resolved to.
type CommandKind int

const (
	CmdToggleVisibility CommandKind = iota
	CmdSeekBy
	CmdAdjustAxis
	// CmdAdjustDone follows the last CmdAdjustAxis of a drag.
	CmdAdjustDone
	// CmdActivity only counts as user activity.
	CmdActivity
)

type Command struct {
	Kind   CommandKind
	Side   Side
	Amount float64
	Axis   Axis
	Value  float64
}

// Point is a pointer position in surface units, origin at the top left.
type Point struct {
	X, Y float64
}

// GestureRouter classifies pointer sequences into commands.
type GestureRouter struct {
	loop Loop
	opts Options
	emit func(Command)

	locked   func() bool
	baseline func(Axis) float64

	width float64

	tapped  bool
	lastTap time.Time
	pending Timer

	pressed  bool
	dragging bool
	origin   Point
	axis     Axis
	base     float64
}

func newGestureRouter(loop Loop, opts Options, emit func(Command), locked func() bool, baseline func(Axis) float64) *GestureRouter {
	return &GestureRouter{
		loop:     loop,
		opts:     opts,
		emit:     emit,
		locked:   locked,
		baseline: baseline,
		pending:  noTimer{},
	}
}

// Resize records the surface width used to split it into halves.
func (g *GestureRouter) Resize(width float64) {
	g.width = width
}

func (g *GestureRouter) side(x float64) Side {
	if x < g.width/2 {
		return Left
	}
	return Right
}

func (g *GestureRouter) Down(p Point) {
	g.pressed = true
	g.dragging = false
	g.origin = p

	if g.locked() {
		return
	}

	g.axis = AxisVolume
	if g.side(p.X) == Left {
		g.axis = AxisBrightness
	}
	g.base = g.baseline(g.axis)
}

func (g *GestureRouter) Move(p Point) {
	if !g.pressed || g.locked() {
		return
	}

	if !g.dragging {
		if math.Abs(p.Y-g.origin.Y) <= g.opts.TapSlop {
			return
		}
		g.dragging = true
	}

	value := util.Clamp(g.base+(g.origin.Y-p.Y)/g.opts.DragSensitivity, 0, 1)
	g.emit(Command{Kind: CmdAdjustAxis, Axis: g.axis, Value: value})
}

func (g *GestureRouter) Up(p Point) {
	if !g.pressed {
		return
	}
	g.pressed = false

	if g.dragging {
		g.dragging = false
		g.emit(Command{Kind: CmdAdjustDone, Axis: g.axis})
		return
	}

	// A press that wandered off without becoming a drag is neither.
	if math.Hypot(p.X-g.origin.X, p.Y-g.origin.Y) > g.opts.TapSlop {
		return
	}

	if g.locked() {
		g.emit(Command{Kind: CmdActivity})
		return
	}

	g.tap(p)
}

// Hover reports pointer movement without a press.
func (g *GestureRouter) Hover() {
	g.emit(Command{Kind: CmdActivity})
}

func (g *GestureRouter) tap(p Point) {
	now := g.loop.Now()

	if g.tapped && now.Sub(g.lastTap) < g.opts.DoubleTapWindow {
		g.tapped = false
		g.pending.Stop()

		side := g.side(p.X)
		g.emit(Command{Kind: CmdSeekBy, Side: side, Amount: side.sign() * g.opts.SeekStep})
		return
	}

	g.tapped = true
	g.lastTap = now
	g.pending.Stop()
	g.pending = g.loop.AfterFunc(g.opts.DoubleTapWindow, func() {
		g.tapped = false
		g.emit(Command{Kind: CmdToggleVisibility})
	})
}

// Reset forgets any half-recognized gesture.
func (g *GestureRouter) Reset() {
	g.pending.Stop()
	g.pending = noTimer{}
	g.tapped = false
	g.pressed = false
	g.dragging = false
}
