package journeyplanner

import (
	"strings"

	"github.com/linkalls/norikae/pkg/ctdf"
	"github.com/linkalls/norikae/pkg/navi"
)

func normalizeSections(raw []navi.RawSection) []ctdf.Section {
	sections := make([]ctdf.Section, 0, len(raw))

	for _, section := range raw {
		normalized := ctdf.Section{
			Name:     strings.TrimSpace(section.Name.String()),
			Minutes:  section.Time.Int(),
			Distance: section.Distance.Float64(),
			From:     sectionPoint(section.From),
			To:       sectionPoint(section.To),
		}

		if section.Type != nil {
			sectionType := section.Type.Int()
			normalized.Type = &sectionType
		}

		if section.Line != nil {
			line := &ctdf.SectionLine{
				Name:      section.Line.Name.String(),
				BusName:   section.Line.BusName.String(),
				TrainType: section.Line.TrainType.String(),
			}
			if colour, ok := ctdf.DecodeColour(section.Line.Color.String()); ok {
				line.Colour = colour.String()
			}

			normalized.Line = line
		}

		sections = append(sections, normalized)
	}

	return sections
}

func sectionPoint(point *navi.RawSectionPoint) *ctdf.SectionPoint {
	if point == nil {
		return nil
	}

	return &ctdf.SectionPoint{
		Name: point.Name.String(),
		Code: point.Code.String(),
		Time: ctdf.FormatClock(point.Time.String()),
	}
}
