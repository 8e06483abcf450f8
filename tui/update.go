package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marquee-cli/marquee/overlay"
)

// volumeStep and brightnessStep are the keyboard adjustments.
const (
	volumeStep     = 0.05
	brightnessStep = 0.05
)

func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(b.spinnerC.Tick, b.resolve(b.options.ContentID))
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Ephemeral notifications
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmds = append(cmds, uiCmd)
	}

	switch msg := msg.(type) {
	case loopMsg:
		msg.fn()
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		cmds = append(cmds, cmd)
	case mpvExitMsg:
		b.controller.Close()
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			b.controller.Close()
			return b, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch b.state {
	case loadingState:
		cmd = b.updateLoading(msg)
	case pickState:
		cmd = b.updatePick(msg)
	case playerState:
		cmd = b.updatePlayer(msg)
	case errorState:
		cmd = b.updateError(msg)
	}
	cmds = append(cmds, cmd, b.flushNotices())

	if b.state == playerState && b.controller.Closed() {
		return b, tea.Quit
	}

	return b, tea.Batch(cmds...)
}

func (b *statefulBubble) updateLoading(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case resolvedMsg:
		if b.pick(msg.record) {
			return nil
		}
		return b.start(msg.record)
	case startedMsg:
		if msg.err != nil {
			b.raiseError(msg.err)
			return nil
		}
		return b.open(msg.record)
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.quit, b.keymap.back) {
			return tea.Quit
		}
	}
	return nil
}

func (b *statefulBubble) updatePick(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.back, b.keymap.quit):
			return tea.Quit
		case key.Matches(msg, b.keymap.confirm):
			item, ok := b.linksC.SelectedItem().(*listItem)
			if !ok {
				return nil
			}
			record := b.record
			record.MediaURL = item.link.URL
			if item.link.Label != "" {
				record.Quality = item.link.Label
			}
			return b.start(record)
		}
	}

	var cmd tea.Cmd
	b.linksC, cmd = b.linksC.Update(msg)
	return cmd
}

func (b *statefulBubble) updatePlayer(msg tea.Msg) tea.Cmd {
	c := b.controller

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Any key counts as activity, even while locked.
		c.Activity()

		switch {
		case key.Matches(msg, b.keymap.quit, b.keymap.back):
			c.Close()
		case key.Matches(msg, b.keymap.lock):
			c.ToggleLock()
		case key.Matches(msg, b.keymap.playPause):
			c.TogglePlayPause()
		case key.Matches(msg, b.keymap.seekBack):
			c.Seek(-b.options.Overlay.SeekStep)
		case key.Matches(msg, b.keymap.seekForward):
			c.Seek(b.options.Overlay.SeekStep)
		case key.Matches(msg, b.keymap.volumeUp):
			c.AdjustBy(overlay.AxisVolume, volumeStep)
		case key.Matches(msg, b.keymap.volumeDown):
			c.AdjustBy(overlay.AxisVolume, -volumeStep)
		case key.Matches(msg, b.keymap.brightnessUp):
			c.AdjustBy(overlay.AxisBrightness, brightnessStep)
		case key.Matches(msg, b.keymap.brightnessDown):
			c.AdjustBy(overlay.AxisBrightness, -brightnessStep)
		case key.Matches(msg, b.keymap.speed):
			c.CyclePlaybackRate()
		case key.Matches(msg, b.keymap.aspect):
			c.CycleAspectRatio()
		case key.Matches(msg, b.keymap.audio):
			c.SelectAudioTrack()
		case key.Matches(msg, b.keymap.showHelp):
			b.fullHelp = !b.fullHelp
			b.helpC.ShowAll = b.fullHelp
		}
	case tea.MouseMsg:
		b.updateMouse(msg)
	}

	return nil
}

func (b *statefulBubble) updateMouse(msg tea.MouseMsg) {
	c := b.controller
	p := toSurface(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			// A press on the seek bar scrubs instead of starting a gesture.
			if msg.Y == b.seekBarRow() && b.progressC.Width > 0 && c.Snapshot().ControlsVisible {
				snap := c.Snapshot()
				c.Scrub(float64(msg.X) / float64(b.progressC.Width) * snap.Duration)
				return
			}
			b.pressed = true
			c.PointerDown(p)
		case tea.MouseButtonWheelUp:
			c.AdjustBy(overlay.AxisVolume, volumeStep)
		case tea.MouseButtonWheelDown:
			c.AdjustBy(overlay.AxisVolume, -volumeStep)
		}
	case tea.MouseActionMotion:
		if b.pressed {
			c.PointerMove(p)
		} else {
			c.Hover()
		}
	case tea.MouseActionRelease:
		if b.pressed {
			b.pressed = false
			c.PointerUp(p)
		}
	}
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, b.keymap.quit, b.keymap.back) {
			return tea.Quit
		}
	}
	return nil
}
