package tui

import (
	"net/url"
	"strings"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/style"
)

// listItem implements the list.Item interface for one rendition of a title.
type listItem struct {
	link catalog.Link
}

func (t *listItem) Title() string {
	var sb strings.Builder

	sb.WriteString(t.FilterValue())
	if t.link.Size != "" {
		sb.WriteString(" ")
		sb.WriteString(style.Faint(t.link.Size))
	}

	return sb.String()
}

// Description shows where the rendition is served from.
func (t *listItem) Description() string {
	u, err := url.Parse(t.link.URL)
	if err != nil || u.Host == "" {
		return t.link.URL
	}
	return u.Host
}

func (t *listItem) FilterValue() string {
	if t.link.Label == "" {
		return "HD"
	}
	return t.link.Label
}
