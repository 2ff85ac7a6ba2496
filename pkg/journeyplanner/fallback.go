package journeyplanner

import (
	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/util"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type LineInfo struct {
	LineName    string
	CompanyName string
}

// Segment is a run of consecutive pass-stations believed to be on the same line
type Segment struct {
	LineInfo

	StationIndices []int
	IsBus          bool
}

type lineVotes struct {
	LineInfo
	votes int
}

// DominantLine returns the most common line name among the stations. Ties go to the line seen first
// and the company is taken from the first station that reported the winning line.
func DominantLine(stationIDs []string, names map[string]ctdf.StationNameInfo) LineInfo {
	var tally []*lineVotes
	seen := map[string]*lineVotes{}

	for _, stationID := range stationIDs {
		info := names[stationID]
		if info.LineName == "" {
			continue
		}

		if entry, exists := seen[info.LineName]; exists {
			entry.votes++
			continue
		}

		entry := &lineVotes{
			LineInfo: LineInfo{LineName: info.LineName, CompanyName: info.CompanyName},
			votes:    1,
		}
		seen[info.LineName] = entry
		tally = append(tally, entry)
	}

	if len(tally) == 0 {
		return LineInfo{}
	}

	slices.SortStableFunc(tally, func(a, b *lineVotes) int {
		return b.votes - a.votes
	})

	return tally[0].LineInfo
}

// FindChangePoints returns every index i where the line name changes between station i and i+1.
// The first and last boundaries are skipped because large terminals often report the line of a
// neighbouring platform.
func FindChangePoints(stationIDs []string, names map[string]ctdf.StationNameInfo) []int {
	var changePoints []int

	for i := 1; i < len(stationIDs)-2; i++ {
		current := names[stationIDs[i]].LineName
		next := names[stationIDs[i+1]].LineName

		if current != "" && next != "" && current != next {
			changePoints = append(changePoints, i)
		}
	}

	return changePoints
}

// ReconstructSegments splits a flat pass-station list into line segments using at most
// transferCount detected line changes.
func ReconstructSegments(stationIDs []string, names map[string]ctdf.StationNameInfo, transferCount int) []Segment {
	if len(stationIDs) == 0 {
		return nil
	}

	if transferCount <= 0 {
		segment := Segment{StationIndices: make([]int, len(stationIDs))}
		for i := range stationIDs {
			segment.StationIndices[i] = i
		}

		segment.LineInfo = DominantLine(interior(stationIDs), names)
		if segment.LineName == "" {
			segment.LineInfo = DominantLine(stationIDs, names)
		}
		segment.IsBus = isBusCompany(segment.CompanyName)

		return []Segment{segment}
	}

	changePoints := FindChangePoints(stationIDs, names)
	if len(changePoints) != transferCount {
		log.Debug().
			Int("declared", transferCount).
			Int("detected", len(changePoints)).
			Msg("Transfer count does not match detected line changes")
	}
	if len(changePoints) > transferCount {
		changePoints = changePoints[:transferCount]
	}

	var segments []Segment
	for i := range stationIDs {
		if len(segments) == 0 || slices.Contains(changePoints, i-1) {
			segments = append(segments, Segment{})
		}

		current := &segments[len(segments)-1]
		current.StationIndices = append(current.StationIndices, i)
	}

	for i := range segments {
		members := make([]string, len(segments[i].StationIndices))
		for j, index := range segments[i].StationIndices {
			members[j] = stationIDs[index]
		}

		segments[i].LineInfo = DominantLine(members, names)
		segments[i].IsBus = isBusCompany(segments[i].CompanyName)
	}

	return segments
}

func interior(stationIDs []string) []string {
	if len(stationIDs) <= 2 {
		return nil
	}

	return stationIDs[1 : len(stationIDs)-1]
}

func isBusCompany(companyName string) bool {
	return util.ContainsFold(companyName, "バス") || util.ContainsFold(companyName, "bus")
}
