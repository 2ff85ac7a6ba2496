package journeyplanner

import (
	"context"
	"strings"
	"time"

	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/navi"
	"github.com/linkalls/norikae/pkg/util"
)

// SearchContext is what the caller searched for. The labels are compared against resolved station
// names when placing walking time, and ReferenceTime is used when a route carries no times.
type SearchContext struct {
	OriginLabel      string
	DestinationLabel string
	ReferenceTime    time.Time
}

type StationNameResolver interface {
	Resolve(ctx context.Context, stationIDs []string) map[string]ctdf.StationNameInfo
}

// DefaultMaxStationCodes is the most identifiers handed to the resolver in one call
const DefaultMaxStationCodes = 100

type Normalizer struct {
	Resolver StationNameResolver

	// MaxStationCodes caps each Resolve call, DefaultMaxStationCodes when zero
	MaxStationCodes int
}

type strategy int

const (
	strategyNone strategy = iota
	strategyEdges
	strategySections
	strategyPassStations
)

// Normalize turns raw route features into journey plans. The leg strategy is chosen once per route:
// precise Edge data when present, then legacy sections, then reconstruction from the pass-station
// list. A route's station names are all resolved before its legs are reconstructed.
func (n *Normalizer) Normalize(ctx context.Context, features []navi.NaviFeature, searchContext SearchContext) []*ctdf.JourneyPlan {
	plans := make([]*ctdf.JourneyPlan, 0, len(features))

	for _, feature := range features {
		routeStrategy := chooseStrategy(feature)

		var names map[string]ctdf.StationNameInfo
		if routeStrategy == strategyPassStations {
			names = n.resolve(ctx, routeProperty(feature).PassStation)
		}

		plans = append(plans, normalizeRoute(feature, routeStrategy, names, searchContext))
	}

	return plans
}

func (n *Normalizer) resolve(ctx context.Context, stationIDs []string) map[string]ctdf.StationNameInfo {
	names := map[string]ctdf.StationNameInfo{}
	if n.Resolver == nil {
		return names
	}

	chunkSize := n.MaxStationCodes
	if chunkSize <= 0 {
		chunkSize = DefaultMaxStationCodes
	}

	pending := util.RemoveDuplicateStrings(stationIDs, nil)
	for start := 0; start < len(pending); start += chunkSize {
		end := min(start+chunkSize, len(pending))

		for stationID, info := range n.Resolver.Resolve(ctx, pending[start:end]) {
			names[stationID] = info
		}
	}

	return names
}

func chooseStrategy(feature navi.NaviFeature) strategy {
	property := routeProperty(feature)

	switch {
	case feature.RouteInfo != nil && len(feature.RouteInfo.Edge) > 0:
		return strategyEdges
	case len(property.Section) > 0:
		return strategySections
	case len(property.PassStation) > 0:
		return strategyPassStations
	default:
		return strategyNone
	}
}

func routeProperty(feature navi.NaviFeature) *navi.RouteProperty {
	if feature.RouteInfo == nil || feature.RouteInfo.Property == nil {
		return &navi.RouteProperty{}
	}

	return feature.RouteInfo.Property
}

func normalizeRoute(feature navi.NaviFeature, routeStrategy strategy, names map[string]ctdf.StationNameInfo, searchContext SearchContext) *ctdf.JourneyPlan {
	property := routeProperty(feature)

	plan := &ctdf.JourneyPlan{
		Name:                strings.TrimSpace(feature.Name.String()),
		TotalOnBoardMinutes: nonNegative(property.TotalTime.Int()),
		TransferWaitMinutes: nonNegative(property.TimeOther.Int()),
		TotalWalkMinutes:    nonNegative(property.TimeWalk.Int()),
		TransferCount:       nonNegative(property.TransferCount.Int()),
		Fare:                fare(property.Fare),
		PassStationIDs:      append([]string{}, property.PassStation...),
		DistanceKm:          property.Distance.Float64(),
		CO2Grams:            property.Co2.Float64(),
		Badge:               ClassifyBadge(bool(property.IsFast), bool(property.IsEasy), bool(property.IsCheap)),
	}

	var edges []navi.Edge
	if routeStrategy == strategyEdges {
		edges = feature.RouteInfo.Edge
	}
	setRouteTimes(plan, property, edges, searchContext)

	switch routeStrategy {
	case strategyEdges:
		plan.Legs = BuildEdgeLegs(edges, searchContext)
		reconcileWalkMinutes(plan)
	case strategySections:
		plan.RawSections = normalizeSections(property.Section)
	case strategyPassStations:
		plan.Legs, plan.UnattributedWalkMinutes = reconstructLegs(plan, property, names, searchContext)
	}

	return plan
}

// setRouteTimes takes the route departure and arrival from the first and last leg, then the route
// summary, and otherwise derives them from the reference time and the total duration
func setRouteTimes(plan *ctdf.JourneyPlan, property *navi.RouteProperty, edges []navi.Edge, searchContext SearchContext) {
	departure := property.DepartureDatetime.String()
	arrival := property.ArrivalDatetime.String()

	var legDeparture, legArrival string
	if len(edges) > 0 {
		first, last := edges[0], edges[len(edges)-1]

		departure = firstNonEmpty(first.DepartureDatetime.String(), departure)
		arrival = firstNonEmpty(last.ArrivalDatetime.String(), arrival)

		legDeparture, _ = edgeTimes(first, edgeStops(first))
		_, legArrival = edgeTimes(last, edgeStops(last))
	}

	// Summary times never override the legs
	if legDeparture != "" && ctdf.FormatClock(departure) != legDeparture {
		departure = ""
	}
	if legArrival != "" && ctdf.FormatClock(arrival) != legArrival {
		arrival = ""
	}

	if departure == "" && legDeparture == "" && !searchContext.ReferenceTime.IsZero() {
		departure = util.FormatDateString(searchContext.ReferenceTime.In(navi.Tokyo))
	}
	if arrival == "" && legArrival == "" && isDateTime(departure) {
		arrival = util.AddMinutesToDateString(departure, plan.TotalOnBoardMinutes+plan.TransferWaitMinutes)
	}

	if isDateTime(departure) {
		plan.DepartureDateTime = departure
	}
	if isDateTime(arrival) {
		plan.ArrivalDateTime = arrival
	}

	plan.DepartureTime = firstNonEmpty(legDeparture, ctdf.FormatClock(departure))
	plan.ArrivalTime = firstNonEmpty(legArrival, ctdf.FormatClock(arrival))
}

// reconcileWalkMinutes fills the route walking total from the walking legs when the summary has none
func reconcileWalkMinutes(plan *ctdf.JourneyPlan) {
	if plan.TotalWalkMinutes > 0 {
		return
	}

	total := 0
	for _, leg := range plan.Legs {
		if leg.IsWalk() && leg.Walk.Minutes != nil {
			total += *leg.Walk.Minutes
		}
	}

	plan.TotalWalkMinutes = total
}

func fare(raw *navi.RouteFare) ctdf.Fare {
	if raw == nil {
		return ctdf.Fare{}
	}

	return ctdf.Fare{
		Total:  fareAmount(raw.Total),
		Teiki1: fareAmount(raw.Teiki1),
		Teiki3: fareAmount(raw.Teiki3),
		Teiki6: fareAmount(raw.Teiki6),
	}
}

func fareAmount(amount *navi.FlexInt) *int {
	if amount == nil {
		return nil
	}

	value := amount.Int()
	return &value
}

func nonNegative(value int) int {
	if value < 0 {
		return 0
	}

	return value
}

func isDateTime(value string) bool {
	_, ok := ctdf.ParseUpstreamDateTime(value, time.UTC)
	return ok
}
