package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/linkalls/norikae/pkg/navi"
	"github.com/linkalls/norikae/pkg/util"
	"gopkg.in/yaml.v3"
)

func Default() *Config {
	return &Config{
		Listen: ":3000",
		Upstream: UpstreamConfig{
			NaviURL:      navi.DefaultNaviURL,
			PoiURL:       navi.DefaultPoiURL,
			DiainfoURL:   navi.DefaultDiainfoURL,
			TimetableURL: navi.DefaultTimetableURL,
			Timeout:      15 * time.Second,
			Retries:      3,
		},
		Resolver: ResolverConfig{
			Concurrency:     5,
			MaxStationCodes: 100,
		},
		Cache: CacheConfig{
			DiainfoTTL:   2 * time.Minute,
			SuggestTTL:   10 * time.Minute,
			TimetableTTL: time.Hour,
			LocalSize:    1000,
		},
		Elasticsearch: ElasticsearchConfig{
			Index: "norikae-searches",
		},
	}
}

// Load reads the optional .env file and builds the configuration from the process environment
func Load() (*Config, error) {
	_ = godotenv.Load()

	return LoadFrom(util.GetEnvironmentVariables())
}

// LoadFrom layers the YAML file named by NORIKAE_CONFIG and then the environment over the defaults
func LoadFrom(env map[string]string) (*Config, error) {
	config := Default()

	if path := env["NORIKAE_CONFIG"]; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := applyEnvironment(config, env); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, err
	}

	return config, nil
}

func applyEnvironment(config *Config, env map[string]string) error {
	setString(&config.Listen, env["NORIKAE_LISTEN"])

	setString(&config.Upstream.NaviURL, env["NORIKAE_NAVI_URL"])
	setString(&config.Upstream.PoiURL, env["NORIKAE_POI_URL"])
	setString(&config.Upstream.DiainfoURL, env["NORIKAE_DIAINFO_URL"])
	setString(&config.Upstream.TimetableURL, env["NORIKAE_TIMETABLE_URL"])
	setString(&config.Upstream.AppID, env["NORIKAE_APP_ID"])
	setString(&config.Upstream.AccessToken, env["NORIKAE_ACCESS_TOKEN"])

	setString(&config.TransformsFile, env["NORIKAE_TRANSFORMS_FILE"])

	setString(&config.Redis.Address, env["NORIKAE_REDIS_ADDRESS"])
	setString(&config.Redis.Password, env["NORIKAE_REDIS_PASSWORD"])

	setString(&config.Elasticsearch.Address, env["NORIKAE_ELASTICSEARCH_ADDRESS"])
	setString(&config.Elasticsearch.Username, env["NORIKAE_ELASTICSEARCH_USERNAME"])
	setString(&config.Elasticsearch.Password, env["NORIKAE_ELASTICSEARCH_PASSWORD"])
	setString(&config.Elasticsearch.Index, env["NORIKAE_ELASTICSEARCH_INDEX"])

	durations := map[string]*time.Duration{
		"NORIKAE_HTTP_TIMEOUT":  &config.Upstream.Timeout,
		"NORIKAE_DIAINFO_TTL":   &config.Cache.DiainfoTTL,
		"NORIKAE_SUGGEST_TTL":   &config.Cache.SuggestTTL,
		"NORIKAE_TIMETABLE_TTL": &config.Cache.TimetableTTL,
	}
	for key, target := range durations {
		if value := env[key]; value != "" {
			duration, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*target = duration
		}
	}

	integers := map[string]*int{
		"NORIKAE_HTTP_RETRIES":         &config.Upstream.Retries,
		"NORIKAE_RESOLVER_CONCURRENCY": &config.Resolver.Concurrency,
		"NORIKAE_MAX_STATION_CODES":    &config.Resolver.MaxStationCodes,
		"NORIKAE_REDIS_DATABASE":       &config.Redis.Database,
		"NORIKAE_CACHE_LOCAL_SIZE":     &config.Cache.LocalSize,
	}
	for key, target := range integers {
		if value := env[key]; value != "" {
			number, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*target = number
		}
	}

	return nil
}

func setString(target *string, value string) {
	if value != "" {
		*target = value
	}
}
