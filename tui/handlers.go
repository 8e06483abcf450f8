package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/internal/ui"
	"github.com/marquee-cli/marquee/log"
	"github.com/samber/lo"
)

type resolvedMsg struct {
	record catalog.Record
}

type startedMsg struct {
	record catalog.Record
	err    error
}

type mpvExitMsg struct{}

// resolve looks the content id up off the update goroutine.
func (b *statefulBubble) resolve(id string) tea.Cmd {
	b.status = fmt.Sprintf("Resolving %s...", id)
	controller := b.controller

	return func() tea.Msg {
		return resolvedMsg{record: controller.Resolve(context.Background(), id)}
	}
}

// start launches mpv off the update goroutine; the record is opened once it is ready.
func (b *statefulBubble) start(record catalog.Record) tea.Cmd {
	b.setState(loadingState)
	b.status = "Starting mpv..."
	mpv := b.mpv

	return tea.Batch(b.spinnerC.Tick, func() tea.Msg {
		return startedMsg{record: record, err: mpv.Start()}
	})
}

// open hands the record to the controller and watches the mpv process.
func (b *statefulBubble) open(record catalog.Record) tea.Cmd {
	b.record = record

	if err := b.controller.OpenRecord(record); err != nil {
		b.raiseError(err)
		return nil
	}
	b.setState(playerState)
	log.Infof("playing %s", record.ID)

	exited := b.mpv.Wait()
	return tea.Batch(b.spinnerC.Tick, func() tea.Msg {
		<-exited
		return mpvExitMsg{}
	})
}

// pick offers the renditions of record when there is no preferred source.
func (b *statefulBubble) pick(record catalog.Record) bool {
	if !b.options.Pick || record.MediaURL != "" {
		return false
	}

	links := lo.Filter(record.Links, func(l catalog.Link, _ int) bool {
		return l.URL != ""
	})
	if len(links) < 2 {
		return false
	}

	b.record = record
	b.linksC.SetItems(lo.Map(links, func(l catalog.Link, _ int) list.Item {
		return &listItem{link: l}
	}))
	b.linksC.Select(0)
	b.setState(pickState)
	return true
}

// flushNotices raises the messages the controller queued during the last callback.
func (b *statefulBubble) flushNotices() tea.Cmd {
	if len(b.notices) == 0 {
		return nil
	}

	cmds := lo.Map(b.notices, func(n string, _ int) tea.Cmd {
		return ui.Notify(n)
	})
	b.notices = nil
	return tea.Batch(cmds...)
}
