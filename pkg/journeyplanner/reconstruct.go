package journeyplanner

import (
	"math"
	"time"

	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/navi"
)

// reconstructLegs builds approximate legs from the pass-station list of a route with no precise
// leg data. Walking can only be placed before the first or after the last stop; anything else is
// returned as unattributed walking minutes.
func reconstructLegs(plan *ctdf.JourneyPlan, property *navi.RouteProperty, names map[string]ctdf.StationNameInfo, searchContext SearchContext) ([]ctdf.Leg, int) {
	passes := plan.PassStationIDs
	if len(passes) == 0 {
		return nil, 0
	}

	firstName := stationName(names, passes[0]).Name
	lastName := stationName(names, passes[len(passes)-1]).Name

	boundary := ClassifyWalkBoundary(plan.TotalWalkMinutes, searchContext.OriginLabel, searchContext.DestinationLabel, firstName, lastName)

	displayNames := make(map[string]ctdf.StationNameInfo, len(passes))
	for _, stationID := range passes {
		displayNames[stationID] = stationName(names, stationID)
	}

	// Without walking on a side the searched label is a better name for the endpoint than the
	// resolved one
	if searchContext.OriginLabel != "" && !boundary.HasEntry {
		info := displayNames[passes[0]]
		info.Name = searchContext.OriginLabel
		displayNames[passes[0]] = info
	}
	if searchContext.DestinationLabel != "" && !boundary.HasExit {
		info := displayNames[passes[len(passes)-1]]
		info.Name = searchContext.DestinationLabel
		displayNames[passes[len(passes)-1]] = info
	}

	estimator := newStopTimeEstimator(property, plan.TotalOnBoardMinutes, len(passes))

	var legs []ctdf.Leg

	if boundary.HasEntry {
		minutes := boundary.EntryMinutes
		legs = append(legs, ctdf.NewWalkLeg(ctdf.WalkLeg{
			Role:      ctdf.WalkRoleEntry,
			FromLabel: searchContext.OriginLabel,
			ToLabel:   firstName,
			Minutes:   &minutes,
		}))
	}

	for i, segment := range ReconstructSegments(passes, displayNames, plan.TransferCount) {
		stops := make([]ctdf.Stop, 0, len(segment.StationIndices))

		for _, index := range segment.StationIndices {
			stop := ctdf.Stop{
				Name: displayNames[passes[index]].Name,
				Code: passes[index],
			}

			stopTime := estimator.at(index)
			if index > 0 {
				stop.ArrivalTime = stopTime
			}
			if index < len(passes)-1 {
				stop.DepartureTime = stopTime
			}

			stops = append(stops, stop)
		}

		legs = append(legs, ctdf.NewTransitLeg(ctdf.TransitLeg{
			LineName:       segment.LineName,
			CompanyName:    segment.CompanyName,
			IsBus:          segment.IsBus,
			TransferBefore: i > 0,
			DepartureTime:  estimator.at(segment.StationIndices[0]),
			ArrivalTime:    estimator.at(segment.StationIndices[len(segment.StationIndices)-1]),
			Estimated:      estimator.enabled(),
			Stops:          stops,
		}))
	}

	if boundary.HasExit {
		minutes := boundary.ExitMinutes
		legs = append(legs, ctdf.NewWalkLeg(ctdf.WalkLeg{
			Role:      ctdf.WalkRoleExit,
			FromLabel: lastName,
			ToLabel:   searchContext.DestinationLabel,
			Minutes:   &minutes,
		}))
	}

	return legs, boundary.UnattributedMinutes
}

func stationName(names map[string]ctdf.StationNameInfo, stationID string) ctdf.StationNameInfo {
	info, exists := names[stationID]
	if !exists || info.Name == "" {
		fallback := ctdf.FallbackStationName(stationID)
		fallback.LineName = info.LineName
		fallback.CompanyName = info.CompanyName
		return fallback
	}

	return info
}

// stopTimeEstimator spreads the on board time evenly over the stops. The last stop takes the route
// arrival time. Only times reported by the upstream are used, never the search reference time.
type stopTimeEstimator struct {
	departure     time.Time
	hasDeparture  bool
	arrival       string
	minutesPerHop float64
	count         int
}

func newStopTimeEstimator(property *navi.RouteProperty, onBoardMinutes int, count int) stopTimeEstimator {
	estimator := stopTimeEstimator{
		arrival: ctdf.FormatClock(property.ArrivalDatetime.String()),
		count:   count,
	}

	estimator.departure, estimator.hasDeparture = ctdf.ParseUpstreamDateTime(property.DepartureDatetime.String(), time.UTC)

	if count > 1 {
		estimator.minutesPerHop = float64(onBoardMinutes) / float64(count-1)
	}

	return estimator
}

func (e stopTimeEstimator) enabled() bool {
	return e.hasDeparture && e.minutesPerHop > 0
}

func (e stopTimeEstimator) at(index int) string {
	if index == e.count-1 && e.arrival != "" {
		return e.arrival
	}

	if !e.enabled() {
		return ""
	}

	offset := time.Duration(math.Round(float64(index)*e.minutesPerHop)) * time.Minute

	return e.departure.Add(offset).Format("15:04")
}
