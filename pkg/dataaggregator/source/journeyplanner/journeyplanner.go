package journeyplanner

import (
	"context"
	"reflect"

	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/dataaggregator/query"
	"github.com/linkalls/norikae/pkg/dataaggregator/source"
	"github.com/linkalls/norikae/pkg/navi"
)

// Searcher is the upstream journey planner
type Searcher interface {
	Search(ctx context.Context, request navi.SearchRequest) (*navi.NaviData, error)
}

// Normalizer turns raw route features into journey plans
type Normalizer interface {
	Normalize(ctx context.Context, features []navi.NaviFeature, searchContext SearchContext) []*ctdf.JourneyPlan
}

type Source struct {
	Searcher   Searcher
	Normalizer Normalizer
}

func (s Source) GetName() string {
	return "Journey Planner"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(ctdf.JourneyPlanResults{}),
	}
}

func (s Source) Lookup(ctx context.Context, q any) (interface{}, error) {
	switch q := q.(type) {
	case query.JourneyPlan:
		return s.JourneyPlanQuery(ctx, q)
	default:
		return nil, source.UnsupportedSourceError
	}
}
