package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marquee-cli/marquee/color"
	"github.com/marquee-cli/marquee/icon"
	"github.com/marquee-cli/marquee/overlay"
	"github.com/marquee-cli/marquee/style"
	"github.com/marquee-cli/marquee/util"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wrap"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case pickState:
		output = paddingStyle.Render(b.linksC.View())
	case playerState:
		output = b.viewPlayer()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.status,
		},
	)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	body := wrap.String(errorStyle.Render(b.lastErr.Error()), max(b.width-4, 1))

	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " The player could not start:",
			"",
			body,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h+2 {
			l += strings.Repeat("\n", b.height-h-2)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}

// viewPlayer lays the overlay out as header, centered indicator and a
// fixed block of control rows, so the seek bar row stays stable for the mouse.
func (b *statefulBubble) viewPlayer() string {
	snap := b.controller.Snapshot()
	b.keymap.locked = snap.Locked

	header := b.viewHeader(snap)
	controls := b.viewControls(snap)

	bodyHeight := max(b.height-1-controlRows, 0)
	body := lipgloss.Place(b.width, bodyHeight, lipgloss.Center, lipgloss.Center, b.viewCenter(snap))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, controls)
}

func (b *statefulBubble) viewHeader(snap overlay.Snapshot) string {
	switch {
	case snap.Locked && snap.LockVisible:
		return style.Fg(color.Orange)(icon.Get(icon.Lock)+" Locked ") + style.Faint("press L to unlock")
	case !snap.ControlsVisible:
		return ""
	}

	var tags []string
	if snap.Quality != "" {
		tags = append(tags, style.Pill(snap.Quality))
	}
	if snap.FellBack {
		tags = append(tags, style.Tag(color.Black, color.Orange)("fallback"))
	}
	if snap.Rotated {
		tags = append(tags, style.Faint("rotated"))
	}

	suffix := strings.Join(tags, " ")
	room := max(b.width-lipgloss.Width(suffix)-4, 8)
	title := truncate.StringWithTail(snap.Title, uint(room), "…")
	if title == "" {
		title = "Untitled"
	}

	return style.Title(title) + " " + suffix
}

func (b *statefulBubble) viewCenter(snap overlay.Snapshot) string {
	switch {
	case snap.Seek.Visible:
		glyph := icon.Get(icon.Forward)
		if snap.Seek.Side == overlay.Left {
			glyph = icon.Get(icon.Rewind)
		}
		return style.Bold(fmt.Sprintf("%s %+.0fs", glyph, snap.Seek.Total))
	case snap.Axis.Visible:
		glyph := icon.Get(icon.Volume)
		if snap.Axis.Axis == overlay.AxisBrightness {
			glyph = icon.Get(icon.Brightness)
		}
		return fmt.Sprintf("%s %s %s %3.0f%%",
			glyph,
			util.Capitalize(snap.Axis.Axis.String()),
			b.levelC.ViewAs(snap.Axis.Value),
			snap.Axis.Value*100,
		)
	case snap.IsBuffering:
		line := b.spinnerC.View() + " Buffering"
		if snap.Throughput != "" {
			line += style.Faint(" " + snap.Throughput)
		}
		return line
	case snap.Errored:
		return style.ErrorTitle("Playback failed") + "\n\n" + style.Faint("press space to retry")
	case !snap.ControlsVisible:
		return ""
	case snap.IsPlaying:
		return icon.Get(icon.Play) + " Playing"
	default:
		return icon.Get(icon.Pause) + " Paused"
	}
}

func (b *statefulBubble) viewControls(snap overlay.Snapshot) string {
	blank := strings.Repeat("\n", controlRows-1)

	if !snap.ControlsVisible {
		if snap.Locked && snap.LockVisible {
			return blank + b.helpC.View(b.keymap)
		}
		return blank
	}

	fraction := 0.0
	if util.Finite(snap.Duration) && snap.Duration > 0 {
		fraction = util.Clamp(snap.CurrentTime/snap.Duration, 0, 1)
	}

	clock := fmt.Sprintf("%s / %s", util.FormatClock(snap.CurrentTime), util.FormatClock(snap.Duration))
	status := []string{
		clock,
		style.Pill(formatRate(snap.PlaybackRate)),
		style.Pill(string(snap.Aspect)),
		fmt.Sprintf("%s %.0f%%", icon.Get(icon.Volume), snap.Volume*100),
		style.Faint(icon.Get(icon.Audio) + " default"),
	}

	return strings.Join([]string{
		b.progressC.ViewAs(fraction),
		strings.Join(status, "  "),
		b.helpC.View(b.keymap),
	}, "\n")
}

// formatRate renders 1 as "1x" and 1.25 as "1.25x".
func formatRate(rate float64) string {
	if rate == math.Trunc(rate) {
		return fmt.Sprintf("%.0fx", rate)
	}
	return strings.TrimRight(fmt.Sprintf("%.2f", rate), "0") + "x"
}
