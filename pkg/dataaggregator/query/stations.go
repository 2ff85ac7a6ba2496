package query

import (
	"fmt"
	"strings"
)

// Stations searches stations by their exact name
type Stations struct {
	Name string
}

func (s *Stations) CacheKey() string {
	return fmt.Sprintf("cachedresults/stations/%s", strings.TrimSpace(s.Name))
}
