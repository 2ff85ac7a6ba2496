package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	config, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, ":3000", config.Listen)
	assert.Equal(t, "https://navi-transit.yahooapis.jp", config.Upstream.NaviURL)
	assert.Equal(t, 15*time.Second, config.Upstream.Timeout)
	assert.Equal(t, 3, config.Upstream.Retries)
	assert.Equal(t, 5, config.Resolver.Concurrency)
	assert.Equal(t, 100, config.Resolver.MaxStationCodes)
	assert.Equal(t, 2*time.Minute, config.Cache.DiainfoTTL)
	assert.Equal(t, time.Hour, config.Cache.TimetableTTL)
	assert.Equal(t, "https://cache-navi-transit.yahooapis.jp", config.Upstream.TimetableURL)
	assert.Empty(t, config.Redis.Address)
	assert.Empty(t, config.Elasticsearch.Address)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	config, err := LoadFrom(map[string]string{
		"NORIKAE_LISTEN":               ":8080",
		"NORIKAE_NAVI_URL":             "http://localhost:9000",
		"NORIKAE_APP_ID":               "app",
		"NORIKAE_HTTP_TIMEOUT":         "3s",
		"NORIKAE_HTTP_RETRIES":         "0",
		"NORIKAE_RESOLVER_CONCURRENCY": "8",
		"NORIKAE_REDIS_ADDRESS":        "localhost:6379",
		"NORIKAE_REDIS_DATABASE":       "2",
		"NORIKAE_TIMETABLE_URL":        "http://localhost:9001",
		"NORIKAE_TIMETABLE_TTL":        "15m",
	})
	require.NoError(t, err)

	assert.Equal(t, ":8080", config.Listen)
	assert.Equal(t, "http://localhost:9000", config.Upstream.NaviURL)
	assert.Equal(t, "app", config.Upstream.AppID)
	assert.Equal(t, 3*time.Second, config.Upstream.Timeout)
	assert.Equal(t, 0, config.Upstream.Retries)
	assert.Equal(t, 8, config.Resolver.Concurrency)
	assert.Equal(t, "localhost:6379", config.Redis.Address)
	assert.Equal(t, 2, config.Redis.Database)
	assert.Equal(t, "http://localhost:9001", config.Upstream.TimetableURL)
	assert.Equal(t, 15*time.Minute, config.Cache.TimetableTTL)
}

func TestLoadYAMLThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "norikae.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen: ":4000"
upstream:
  timeout: 5s
resolver:
  concurrency: 3
cache:
  diainfoTTL: 30s
elasticsearch:
  address: http://localhost:9200
`), 0o600))

	config, err := LoadFrom(map[string]string{
		"NORIKAE_CONFIG":               path,
		"NORIKAE_RESOLVER_CONCURRENCY": "4",
	})
	require.NoError(t, err)

	assert.Equal(t, ":4000", config.Listen)
	assert.Equal(t, 5*time.Second, config.Upstream.Timeout)
	assert.Equal(t, "https://poi-transit.yahooapis.jp", config.Upstream.PoiURL)
	assert.Equal(t, 4, config.Resolver.Concurrency)
	assert.Equal(t, 30*time.Second, config.Cache.DiainfoTTL)
	assert.Equal(t, "http://localhost:9200", config.Elasticsearch.Address)
	assert.Equal(t, "norikae-searches", config.Elasticsearch.Index)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad duration", map[string]string{"NORIKAE_HTTP_TIMEOUT": "soon"}},
		{"bad integer", map[string]string{"NORIKAE_HTTP_RETRIES": "three"}},
		{"concurrency out of range", map[string]string{"NORIKAE_RESOLVER_CONCURRENCY": "500"}},
		{"invalid url", map[string]string{"NORIKAE_NAVI_URL": "not a url"}},
		{"missing file", map[string]string{"NORIKAE_CONFIG": "/does/not/exist.yml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.env)
			assert.Error(t, err)
		})
	}
}
