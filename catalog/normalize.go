package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

const (
	untitled       = "Untitled"
	defaultQuality = "HD"
)

// Normalize converts a raw catalog entry into a Record.
// id is used when the entry does not carry its own movie_id.
func Normalize(id string, raw map[string]any) Record {
	r := Record{
		ID:            firstString(raw, "movie_id", "id"),
		Title:         firstString(raw, "title", "original_title"),
		Quality:       firstString(raw, "quality_name"),
		Year:          firstString(raw, "release_year", "year"),
		Certification: firstString(raw, "certification"),
		Rating:        firstString(raw, "rating"),
		Plot:          firstString(raw, "description", "overview"),
		Poster:        firstString(raw, "poster"),
		MediaURL:      firstString(raw, "video_url"),
	}

	if r.ID == "" {
		r.ID = id
	}
	if r.Title == "" {
		r.Title = untitled
	}
	if r.Quality == "" {
		r.Quality = defaultQuality
	}

	r.Genre = joinList(raw["genre"])
	if runtime := firstString(raw, "runtime"); runtime != "" {
		r.Runtime = runtime + "m"
	}

	r.Series = isSeries(raw)
	if !r.Series {
		links := raw["download_links"]
		if !present(links) {
			links = raw["qualities"]
		}
		r.Links = parseLinks(links)
	}

	return r
}

// present reports whether v carries a value: nil, blank strings, false and 0 do not.
func present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	case bool:
		return t
	case float64:
		return t != 0
	case json.Number:
		return t.String() != "0"
	default:
		return true
	}
}

func isSeries(raw map[string]any) bool {
	if asString(raw["content_type"]) == "series" || asString(raw["type"]) == "series" {
		return true
	}
	seasons, ok := raw["seasons"].([]any)
	return ok && len(seasons) > 0
}

// parseLinks accepts an array, an object keyed by anything, or a JSON string encoding either.
func parseLinks(v any) []Link {
	if s, ok := v.(string); ok {
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return nil
		}
	}

	var items []any
	switch t := v.(type) {
	case []any:
		items = t
	case map[string]any:
		keys := lo.Keys(t)
		slices.Sort(keys)
		for _, k := range keys {
			items = append(items, t[k])
		}
	default:
		return nil
	}

	var links []Link
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		url := firstString(m, "url", "link", "movie_link")
		if url == "" {
			continue
		}
		label := firstString(m, "quality")
		if label == "" {
			label = defaultQuality
		}
		links = append(links, Link{URL: url, Label: label, Size: firstString(m, "size")})
	}
	return links
}

func joinList(v any) string {
	if arr, ok := v.([]any); ok {
		parts := lo.FilterMap(arr, func(item any, _ int) (string, bool) {
			s := asString(item)
			return s, s != ""
		})
		return strings.Join(parts, ", ")
	}
	return asString(v)
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := asString(m[k]); s != "" {
			return s
		}
	}
	return ""
}

// asString renders scalar JSON values; objects and arrays yield "".
func asString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	case int:
		return fmt.Sprint(t)
	default:
		return ""
	}
}
