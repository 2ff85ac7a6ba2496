package query

type StationNames struct {
	StationIDs []string
}
