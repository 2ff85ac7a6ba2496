package source

import "errors"

var UnsupportedSourceError = errors.New("Data source does not support this query")
