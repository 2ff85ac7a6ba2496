package journeyplanner

import "strings"

// WalkBoundary is where the walking time of a route without precise leg data is placed
type WalkBoundary struct {
	HasEntry bool
	HasExit  bool

	EntryMinutes int
	ExitMinutes  int

	// UnattributedMinutes is walking that could not be placed at either end of the route
	UnattributedMinutes int
}

// ClassifyWalkBoundary decides whether the walking time of a route happens before the first stop,
// after the last stop or both, by comparing the searched labels against the resolved names of the
// first and last pass-stations. When both ends walk the time is split with the odd minute going to
// the entry walk.
func ClassifyWalkBoundary(totalWalkMinutes int, originLabel string, destinationLabel string, firstStopName string, lastStopName string) WalkBoundary {
	var boundary WalkBoundary

	if totalWalkMinutes <= 0 {
		return boundary
	}

	boundary.HasEntry = labelDiffers(originLabel, firstStopName)
	boundary.HasExit = labelDiffers(destinationLabel, lastStopName)

	switch {
	case boundary.HasEntry && boundary.HasExit:
		boundary.EntryMinutes = (totalWalkMinutes + 1) / 2
		boundary.ExitMinutes = totalWalkMinutes / 2
	case boundary.HasEntry:
		boundary.EntryMinutes = totalWalkMinutes
	case boundary.HasExit:
		boundary.ExitMinutes = totalWalkMinutes
	default:
		boundary.UnattributedMinutes = totalWalkMinutes
	}

	return boundary
}

func labelDiffers(label string, stopName string) bool {
	label = strings.TrimSpace(label)
	stopName = strings.TrimSpace(stopName)

	if label == "" || stopName == "" {
		return false
	}

	return label != stopName
}
