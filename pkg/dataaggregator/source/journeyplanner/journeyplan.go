package journeyplanner

import (
	"context"
	"fmt"
	"time"

	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/dataaggregator/query"
	planner "github.com/linkalls/norikae/pkg/journeyplanner"
	"github.com/linkalls/norikae/pkg/navi"
	"github.com/linkalls/norikae/pkg/transforms"
	"github.com/rs/zerolog/log"
)

type SearchContext = planner.SearchContext

func (s Source) JourneyPlanQuery(ctx context.Context, q query.JourneyPlan) (*ctdf.JourneyPlanResults, error) {
	now := time.Now()

	request := q.ToSearchRequest()
	request.Date = request.SearchDate(now)

	referenceTime, ok := ctdf.ParseUpstreamDateTime(request.Date, navi.Tokyo)
	if !ok {
		referenceTime = now
	}

	data, err := s.Searcher.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("journey planner search: %w", err)
	}

	journeyPlanResults := &ctdf.JourneyPlanResults{
		JourneyPlans: []*ctdf.JourneyPlan{},
		SearchDate:   request.Date,
		Origin:       q.From,
		Destination:  q.To,
	}

	if len(data.Feature) == 0 {
		log.Debug().Str("from", q.From).Str("to", q.To).Msg("Journey planner returned no routes")
		return journeyPlanResults, nil
	}

	journeyPlanResults.JourneyPlans = s.Normalizer.Normalize(ctx, data.Feature, SearchContext{
		OriginLabel:      q.From,
		DestinationLabel: q.To,
		ReferenceTime:    referenceTime,
	})

	transforms.Transform(journeyPlanResults.JourneyPlans)

	return journeyPlanResults, nil
}
