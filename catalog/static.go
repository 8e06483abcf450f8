package catalog

import (
	"context"
	"fmt"

	"github.com/marquee-cli/marquee/constant"
)

// Static resolves ids from a fixed in-memory table.
type Static map[string]Record

// Builtin returns the titles that ship with the binary.
func Builtin() Static {
	return Static{
		constant.SampleContentID: {
			ID:       constant.SampleContentID,
			Title:    "Sample Movie",
			Quality:  "720P HD",
			Year:     "2024",
			Rating:   "8.5",
			Poster:   "https://picsum.photos/seed/movie1/800/450",
			MediaURL: constant.FallbackMediaURL,
		},
	}
}

func (s Static) Resolve(_ context.Context, id string) (Record, error) {
	record, ok := s[id]
	if !ok {
		return Record{}, fmt.Errorf("builtin %q: %w", id, ErrNotFound)
	}
	return record, nil
}
