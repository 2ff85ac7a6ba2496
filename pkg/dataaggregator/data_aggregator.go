package dataaggregator

import (
	"context"
	"errors"
	"reflect"

	"github.com/linkalls/norikae/pkg/dataaggregator/source"
	"github.com/rs/zerolog/log"
)

var ErrNoMatchingSource = errors.New("failed to find a matching data source for type")

type Aggregator struct {
	Sources []DataSource
}

var GlobalAggregator Aggregator

func (a *Aggregator) RegisterSource(source DataSource) {
	a.Sources = append(a.Sources, source)

	log.Debug().Str("name", source.GetName()).Msg("Registering new Data Source")
}

// Lookup asks the global aggregator for a T matching the query
func Lookup[T any](ctx context.Context, query any) (T, error) {
	return LookupWith[T](ctx, &GlobalAggregator, query)
}

// LookupWith tries every source that supports T in registration order. A source answering
// UnsupportedSourceError hands the query to the next one.
func LookupWith[T any](ctx context.Context, aggregator *Aggregator, query any) (T, error) {
	var empty T

	lookupType := reflect.TypeOf(*new(T))
	if lookupType.Kind() == reflect.Pointer {
		lookupType = lookupType.Elem()
	}

	for _, dataSource := range aggregator.Sources {
		if !supports(dataSource, lookupType) {
			continue
		}

		returnValue, err := dataSource.Lookup(ctx, query)
		if errors.Is(err, source.UnsupportedSourceError) {
			continue
		}

		if returnValue == nil {
			return empty, err
		}

		typed, ok := returnValue.(T)
		if !ok {
			log.Error().
				Str("source", dataSource.GetName()).
				Str("expected", lookupType.String()).
				Msg("Data Source returned an unexpected type")
			continue
		}

		return typed, err
	}

	return empty, ErrNoMatchingSource
}

func supports(dataSource DataSource, lookupType reflect.Type) bool {
	for _, supportedType := range dataSource.Supports() {
		if lookupType == supportedType {
			return true
		}
	}

	return false
}
