// Package catalog resolves content ids into playable records.
//
// Upstream catalog entries are loosely shaped: the same field may arrive as a
// string, a number, an array or a JSON-encoded string depending on who wrote
// the entry. Everything is normalized into Record at this boundary so the rest
// of the application only ever sees one shape.
package catalog

// Link is one downloadable or streamable rendition of a title.
type Link struct {
	URL   string `json:"url" jsonschema:"description=Direct media URL"`
	Label string `json:"label" jsonschema:"description=Quality label such as 1080p,default=HD"`
	Size  string `json:"size,omitempty" jsonschema:"description=Human readable file size"`
}

// Record is the normalized form of a catalog entry.
type Record struct {
	ID            string `json:"id" jsonschema:"description=Content id used for lookup"`
	Title         string `json:"title" jsonschema:"description=Display title,default=Untitled"`
	Quality       string `json:"quality" jsonschema:"description=Quality badge shown in the player header,default=HD"`
	Year          string `json:"year,omitempty"`
	Genre         string `json:"genre,omitempty" jsonschema:"description=Comma separated genres"`
	Runtime       string `json:"runtime,omitempty" jsonschema:"description=Runtime in minutes suffixed with m"`
	Certification string `json:"certification,omitempty"`
	Rating        string `json:"rating,omitempty"`
	Plot          string `json:"plot,omitempty"`
	Poster        string `json:"poster,omitempty"`
	Series        bool   `json:"series" jsonschema:"description=Series entries carry seasons instead of links"`
	MediaURL      string `json:"media_url,omitempty" jsonschema:"description=Preferred media source"`
	Links         []Link `json:"links,omitempty"`
}

// Source returns the URL playback should start from, or "" when the record has none.
func (r Record) Source() string {
	if r.MediaURL != "" {
		return r.MediaURL
	}
	for _, link := range r.Links {
		if link.URL != "" {
			return link.URL
		}
	}
	return ""
}
