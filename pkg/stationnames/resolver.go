package stationnames

import (
	"context"
	"strings"

	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/util"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

const DefaultMaxConcurrent = 5

// Lookup resolves a single station identifier, usually the poi search of the upstream client
type Lookup interface {
	StationName(ctx context.Context, stationID string) (ctdf.StationNameInfo, error)
}

// Resolver looks up batches of station identifiers with a bounded number of lookups in flight.
// A lookup that fails degrades to the identifier itself and never fails the batch.
type Resolver struct {
	Lookup        Lookup
	MaxConcurrent int
}

type resolvedName struct {
	StationID string
	Info      ctdf.StationNameInfo
}

func (r *Resolver) Resolve(ctx context.Context, stationIDs []string) map[string]ctdf.StationNameInfo {
	stationIDs = util.RemoveDuplicateStrings(stationIDs, nil)
	names := make(map[string]ctdf.StationNameInfo, len(stationIDs))

	if len(stationIDs) == 0 {
		return names
	}

	maxConcurrent := r.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}

	p := pool.NewWithResults[resolvedName]().WithMaxGoroutines(maxConcurrent)

	for _, stationID := range stationIDs {
		stationID := stationID
		p.Go(func() resolvedName {
			return resolvedName{
				StationID: stationID,
				Info:      r.resolveOne(ctx, stationID),
			}
		})
	}

	for _, resolved := range p.Wait() {
		names[resolved.StationID] = resolved.Info
	}

	return names
}

func (r *Resolver) resolveOne(ctx context.Context, stationID string) ctdf.StationNameInfo {
	if r.Lookup == nil {
		return ctdf.FallbackStationName(stationID)
	}

	info, err := r.Lookup.StationName(ctx, stationID)
	if err != nil {
		log.Debug().Err(err).Str("station", stationID).Msg("Failed to resolve station name")
		return ctdf.FallbackStationName(stationID)
	}

	if strings.TrimSpace(info.Name) == "" {
		log.Debug().Str("station", stationID).Msg("Station lookup returned no name")
		return ctdf.FallbackStationName(stationID)
	}

	return info
}
