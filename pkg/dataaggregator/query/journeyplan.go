package query

import (
	"github.com/linkalls/norikae/pkg/navi"
)

type JourneyPlan struct {
	From string
	To   string
	Via  string

	FromCode string
	ToCode   string

	Date string
	Type int
	Sort int

	// Basic skips the precise per leg Edge data
	Basic bool
}

func (j *JourneyPlan) ToSearchRequest() navi.SearchRequest {
	return navi.SearchRequest{
		From:     j.From,
		To:       j.To,
		Via:      j.Via,
		FromCode: j.FromCode,
		ToCode:   j.ToCode,
		Date:     j.Date,
		Type:     navi.TimeType(j.Type),
		Sort:     navi.SortOrder(j.Sort),
		Detail:   !j.Basic,
	}
}
