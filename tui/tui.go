// Package tui hosts the player overlay in the terminal.
//
// The terminal doubles as the gesture surface: mouse presses, drags and
// movement are scaled into surface units and handed to the overlay
// controller, while mpv renders the picture in its own window.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/overlay"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	ContentID string
	Resolver  catalog.Resolver
	// Binary is the mpv executable.
	Binary  string
	Overlay overlay.Options
	// Pick offers a choice when a title has several renditions and no preferred one.
	Pick bool
}

// Run plays options.ContentID until the player is closed.
func Run(options *Options) error {
	bubble := newBubble(options)

	program := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithMouseAllMotion())
	bubble.loop.program = program

	_, err := program.Run()
	bubble.shutdown()
	return err
}
