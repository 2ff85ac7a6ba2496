package global

import (
	"github.com/linkalls/norikae/pkg/config"
	"github.com/linkalls/norikae/pkg/dataaggregator"
	"github.com/linkalls/norikae/pkg/dataaggregator/source/cachedresults"
	"github.com/linkalls/norikae/pkg/dataaggregator/source/journeyplanner"
	"github.com/linkalls/norikae/pkg/dataaggregator/source/transitinfo"
	planner "github.com/linkalls/norikae/pkg/journeyplanner"
	"github.com/linkalls/norikae/pkg/navi"
	"github.com/linkalls/norikae/pkg/stationnames"
	"github.com/linkalls/norikae/pkg/transforms"
)

// Setup registers every data source on the global aggregator. Redis must already be connected for
// cached results to be shared.
func Setup(cfg *config.Config) error {
	if err := transforms.LoadFile(cfg.TransformsFile); err != nil {
		return err
	}

	dataaggregator.GlobalAggregator = dataaggregator.Aggregator{}

	client := NewClient(cfg.Upstream)

	resolver := &stationnames.Resolver{
		Lookup:        client,
		MaxConcurrent: cfg.Resolver.Concurrency,
	}

	cache := &cachedresults.Cache{}
	cache.Setup(cfg.Cache.SuggestTTL, cfg.Cache.LocalSize)

	dataaggregator.GlobalAggregator.RegisterSource(journeyplanner.Source{
		Searcher:   client,
		Normalizer: &planner.Normalizer{
			Resolver:        resolver,
			MaxStationCodes: cfg.Resolver.MaxStationCodes,
		},
	})

	dataaggregator.GlobalAggregator.RegisterSource(transitinfo.Source{
		Upstream:      client,
		Resolver:      resolver,
		CachedResults: cache,
		LineStatusTTL: cfg.Cache.DiainfoTTL,
		SuggestTTL:    cfg.Cache.SuggestTTL,
		TimetableTTL:  cfg.Cache.TimetableTTL,
	})

	return nil
}

func NewClient(upstream config.UpstreamConfig) *navi.Client {
	return navi.NewClient(navi.Config{
		NaviURL:      upstream.NaviURL,
		PoiURL:       upstream.PoiURL,
		DiainfoURL:   upstream.DiainfoURL,
		TimetableURL: upstream.TimetableURL,
		AppID:        upstream.AppID,
		AccessToken:  upstream.AccessToken,
		Timeout:      upstream.Timeout,
		MaxRetries:   upstream.Retries,
	})
}
