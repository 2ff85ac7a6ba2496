package query

// LineStatus asks for the current operation status of every line
type LineStatus struct {
	// SkipCache forces a fresh upstream request
	SkipCache bool
}
