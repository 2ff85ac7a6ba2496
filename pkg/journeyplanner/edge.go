package journeyplanner

import (
	"strings"

	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/navi"
	"github.com/linkalls/norikae/pkg/util"
)

// walkingLineName is the line name the upstream uses for walking legs
const walkingLineName = "徒歩"

// classifyEdge reports whether an edge is a walk. Walking edges sometimes carry a station exit or
// gate name in place of the line name, which is returned as the exit label.
func classifyEdge(edge navi.Edge) (bool, string) {
	lineName := strings.TrimSpace(edge.RailName.String())
	sentinel := lineName == walkingLineName || strings.EqualFold(lineName, "walking")

	colour, ok := ctdf.DecodeColour(edge.Color.String())
	walk := sentinel || (ok && colour.IsWalking())

	if walk && lineName != "" && !sentinel {
		return true, lineName
	}

	return walk, ""
}

// BuildEdgeLegs converts the precise per leg data one for one into legs, in upstream order
func BuildEdgeLegs(edges []navi.Edge, searchContext SearchContext) []ctdf.Leg {
	walks := make([]bool, len(edges))
	exitLabels := make([]string, len(edges))

	firstTransit, lastTransit := -1, -1
	for i, edge := range edges {
		walks[i], exitLabels[i] = classifyEdge(edge)

		if !walks[i] {
			if firstTransit == -1 {
				firstTransit = i
			}
			lastTransit = i
		}
	}

	legs := make([]ctdf.Leg, 0, len(edges))

	for i, edge := range edges {
		stops := edgeStops(edge)
		departureTime, arrivalTime := edgeTimes(edge, stops)

		if walks[i] {
			legs = append(legs, ctdf.NewWalkLeg(ctdf.WalkLeg{
				Role:          walkRole(i, firstTransit, lastTransit),
				FromLabel:     walkFromLabel(i, exitLabels[i], stops, searchContext),
				ToLabel:       walkToLabel(i, len(edges), stops, searchContext),
				Minutes:       edgeMinutes(edge, departureTime, arrivalTime),
				ExitLabel:     exitLabels[i],
				DepartureTime: departureTime,
				ArrivalTime:   arrivalTime,
			}))

			continue
		}

		lineName := strings.TrimSpace(edge.RailName.String())

		transit := ctdf.TransitLeg{
			LineName:          lineName,
			IsBus:             util.ContainsFold(lineName, "バス") || util.ContainsFold(lineName, "bus"),
			TransferBefore:    i > 0 && !walks[i-1],
			TrainKind:         edge.TrainKind.String(),
			Destination:       edge.Destination.String(),
			TrainNumber:       edge.TrainNo.String(),
			CarCount:          edge.NumOfCar.String(),
			DeparturePlatform: edge.DepartureTrackNumber.String(),
			ArrivalPlatform:   edge.ArrivalTrackNumber.String(),
			DepartureTime:     departureTime,
			ArrivalTime:       arrivalTime,
			Stops:             stops,
		}

		if colour, ok := ctdf.DecodeColour(edge.Color.String()); ok {
			transit.Colour = colour.String()
		}

		legs = append(legs, ctdf.NewTransitLeg(transit))
	}

	return legs
}

func edgeStops(edge navi.Edge) []ctdf.Stop {
	stops := make([]ctdf.Stop, 0, len(edge.Station))

	for _, station := range edge.Station {
		stops = append(stops, ctdf.Stop{
			Name:          station.Name.String(),
			Code:          station.Code.String(),
			ArrivalTime:   ctdf.FormatClock(station.ArrivalTime.String()),
			DepartureTime: ctdf.FormatClock(station.DepartureTime.String()),
		})
	}

	return stops
}

func edgeTimes(edge navi.Edge, stops []ctdf.Stop) (string, string) {
	departureTime := ctdf.FormatClock(edge.DepartureDatetime.String())
	arrivalTime := ctdf.FormatClock(edge.ArrivalDatetime.String())

	if len(stops) > 0 {
		first := stops[0]
		last := stops[len(stops)-1]

		if departureTime == "" {
			departureTime = firstNonEmpty(first.DepartureTime, first.ArrivalTime)
		}
		if arrivalTime == "" {
			arrivalTime = firstNonEmpty(last.ArrivalTime, last.DepartureTime)
		}
	}

	return departureTime, arrivalTime
}

func edgeMinutes(edge navi.Edge, departureTime string, arrivalTime string) *int {
	if edge.Time != nil {
		minutes := edge.Time.Int()
		return &minutes
	}

	if minutes, ok := ctdf.ClockMinutesBetween(departureTime, arrivalTime); ok {
		return &minutes
	}

	return nil
}

func walkRole(index int, firstTransit int, lastTransit int) ctdf.WalkRole {
	switch {
	case firstTransit == -1 || index < firstTransit:
		return ctdf.WalkRoleEntry
	case index > lastTransit:
		return ctdf.WalkRoleExit
	default:
		return ctdf.WalkRoleTransfer
	}
}

func walkFromLabel(index int, exitLabel string, stops []ctdf.Stop, searchContext SearchContext) string {
	if exitLabel != "" {
		return exitLabel
	}
	if len(stops) > 0 && stops[0].Name != "" {
		return stops[0].Name
	}
	if index == 0 {
		return searchContext.OriginLabel
	}

	return ""
}

func walkToLabel(index int, count int, stops []ctdf.Stop, searchContext SearchContext) string {
	if len(stops) > 0 && stops[len(stops)-1].Name != "" {
		return stops[len(stops)-1].Name
	}
	if index == count-1 {
		return searchContext.DestinationLabel
	}

	return ""
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
