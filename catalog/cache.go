package catalog

import (
	"context"
	"time"

	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/log"
	"github.com/metafates/gache"
	"github.com/samber/mo"
)

// cacheData defines the structured format for persisting resolved titles to disk.
type cacheData struct {
	Records map[string]Record `json:"records"`
}

// Cached wraps a resolver with a disk-backed cache of successful lookups.
type Cached struct {
	next     Resolver
	internal *gache.Cache[*cacheData]
}

// NewCached caches the results of next in the file at path for lifetime.
func NewCached(next Resolver, path string, lifetime time.Duration) *Cached {
	return &Cached{
		next: next,
		internal: gache.New[*cacheData](&gache.Options{
			Path:       path,
			Lifetime:   lifetime,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

// Get returns the cached record for id, if present and fresh.
func (c *Cached) Get(id string) mo.Option[Record] {
	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[Record]()
	}

	record, ok := data.Records[id]
	if !ok {
		return mo.None[Record]()
	}
	return mo.Some(record)
}

// Set stores record under id.
func (c *Cached) Set(id string, record Record) error {
	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if expired || data == nil {
		data = &cacheData{Records: make(map[string]Record)}
	}
	data.Records[id] = record
	return c.internal.Set(data)
}

func (c *Cached) Resolve(ctx context.Context, id string) (Record, error) {
	if record, ok := c.Get(id).Get(); ok {
		return record, nil
	}

	record, err := c.next.Resolve(ctx, id)
	if err != nil {
		return Record{}, err
	}

	if err := c.Set(id, record); err != nil {
		log.Warnf("catalog: caching %s: %v", id, err)
	}
	return record, nil
}
