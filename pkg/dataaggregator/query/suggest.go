package query

import (
	"fmt"
	"strings"
)

type Suggest struct {
	Query   string
	Results int
}

func (s *Suggest) CacheKey() string {
	return fmt.Sprintf("cachedresults/suggest/%d/%s", s.Results, strings.ToLower(strings.TrimSpace(s.Query)))
}
