package journeyplanner

import "github.com/linkalls/norikae/pkg/ctdf"

// ClassifyBadge picks at most one badge. Fastest wins over fewest transfers which wins over cheapest.
func ClassifyBadge(fastest bool, fewestTransfers bool, cheapest bool) ctdf.Badge {
	switch {
	case fastest:
		return ctdf.BadgeFastest
	case fewestTransfers:
		return ctdf.BadgeFewestTransfers
	case cheapest:
		return ctdf.BadgeCheapest
	default:
		return ctdf.BadgeNone
	}
}
