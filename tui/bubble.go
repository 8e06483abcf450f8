package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/color"
	"github.com/marquee-cli/marquee/internal/ui"
	"github.com/marquee-cli/marquee/overlay"
	"github.com/marquee-cli/marquee/player"
	"github.com/marquee-cli/marquee/style"
	"github.com/marquee-cli/marquee/util"
)

// Pointer coordinates are scaled from terminal cells into surface units,
// so gesture distances keep roughly the proportions of a pixel screen.
const (
	cellWidth  = 8
	cellHeight = 16
)

// Rows reserved at the bottom of the player view: seek bar, status, help.
const controlRows = 3

// statefulBubble encapsulates the application state, including component models and workflow tracking.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	// components
	spinnerC  spinner.Model
	progressC progress.Model
	levelC    progress.Model
	linksC    list.Model
	helpC     help.Model
	notifier  *ui.Model

	options    *Options
	loop       *teaLoop
	mpv        *player.MPV
	controller *overlay.Controller

	record   catalog.Record
	notices  []string
	pressed  bool
	status   string
	lastErr  error
	fullHelp bool

	width, height int
}

// raiseError dispatches a terminal error and transitions the application to the failure view.
func (b *statefulBubble) raiseError(err error) {
	b.lastErr = err
	b.setState(errorState)
}

// setState performs a synchronous transition of both the application workflow and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// resize propagates terminal dimension changes to the child component models and the gesture surface.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width
	b.height = height

	b.progressC.Width = width
	b.helpC.Width = width
	b.linksC.SetSize(width-x, height-y)

	b.controller.Resize(float64(width * cellWidth))
}

// toSurface converts a terminal cell to the center of its surface area.
func toSurface(column, row int) overlay.Point {
	return overlay.Point{
		X: (float64(column) + 0.5) * cellWidth,
		Y: (float64(row) + 0.5) * cellHeight,
	}
}

// seekBarRow is the terminal row of the seek bar in the player view.
func (b *statefulBubble) seekBarRow() int {
	return b.height - controlRows
}

// shutdown releases the player after the program has stopped.
func (b *statefulBubble) shutdown() {
	b.controller.Close()
	_ = b.mpv.Close()
}

func newBubble(options *Options) *statefulBubble {
	loop := &teaLoop{}
	mpv := player.NewMPV(options.Binary)

	bubble := statefulBubble{
		keymap:   newStatefulKeymap(),
		notifier: &ui.Model{},
		options:  options,
		loop:     loop,
		mpv:      mpv,
	}

	bubble.controller = overlay.New(loop, mpv, options.Resolver, mpv, options.Overlay)
	bubble.controller.Notify = func(msg string) {
		bubble.notices = append(bubble.notices, msg)
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(color.Marquee)

	bubble.progressC = progress.New(progress.WithSolidFill(string(color.Marquee)), progress.WithoutPercentage())
	bubble.levelC = progress.New(progress.WithSolidFill(string(style.Text)), progress.WithoutPercentage())
	bubble.levelC.Width = 24

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(style.Text)

	bubble.linksC = list.New([]list.Item{}, delegate, 0, 0)
	bubble.linksC.KeyMap = bubble.keymap.forList()
	bubble.linksC.Title = "Choose a quality"
	bubble.linksC.Styles.Title = lipgloss.NewStyle().Foreground(color.HiWhite).Background(color.Marquee).Padding(0, 1)
	bubble.linksC.SetShowStatusBar(false)
	bubble.linksC.SetFilteringEnabled(false)
	bubble.linksC.SetStatusBarItemName("rendition", "renditions")

	bubble.setState(loadingState)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}
