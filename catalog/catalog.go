package catalog

import (
	"time"

	"github.com/marquee-cli/marquee/auth"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/network"
	"github.com/marquee-cli/marquee/where"
	"github.com/spf13/viper"
)

// New assembles the configured resolver: the remote catalog, cached when
// enabled, followed by the built-in titles.
func New() Resolver {
	var remote Resolver = &Firebase{
		BaseURL: viper.GetString(key.CatalogBaseURL),
		Client:  network.Client,
		Token:   auth.Token,
	}

	if hours := viper.GetInt(key.CatalogCacheHours); hours > 0 {
		remote = NewCached(remote, where.Catalog(), time.Duration(hours)*time.Hour)
	}

	return Chain(remote, Builtin())
}

// Timeout is the deadline applied to a single lookup.
func Timeout() time.Duration {
	seconds := viper.GetInt(key.CatalogTimeout)
	if seconds <= 0 {
		seconds = 15
	}
	return time.Duration(seconds) * time.Second
}
