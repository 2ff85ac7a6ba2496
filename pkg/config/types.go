package config

import "time"

type Config struct {
	Listen string `yaml:"listen" validate:"required"`

	Upstream      UpstreamConfig      `yaml:"upstream"`
	Resolver      ResolverConfig      `yaml:"resolver"`
	Cache         CacheConfig         `yaml:"cache"`
	Redis         RedisConfig         `yaml:"redis"`
	Elasticsearch ElasticsearchConfig `yaml:"elasticsearch"`

	// TransformsFile is an optional YAML list of display overrides applied to lines
	TransformsFile string `yaml:"transformsFile" validate:"omitempty,file"`
}

type UpstreamConfig struct {
	NaviURL      string `yaml:"naviURL" validate:"required,url"`
	PoiURL       string `yaml:"poiURL" validate:"required,url"`
	DiainfoURL   string `yaml:"diainfoURL" validate:"required,url"`
	TimetableURL string `yaml:"timetableURL" validate:"required,url"`

	AppID       string `yaml:"appID"`
	AccessToken string `yaml:"accessToken"`

	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
	Retries int           `yaml:"retries" validate:"gte=0,lte=10"`
}

type ResolverConfig struct {
	Concurrency     int `yaml:"concurrency" validate:"gt=0,lte=50"`
	MaxStationCodes int `yaml:"maxStationCodes" validate:"gt=0"`
}

type CacheConfig struct {
	DiainfoTTL   time.Duration `yaml:"diainfoTTL" validate:"gt=0"`
	SuggestTTL   time.Duration `yaml:"suggestTTL" validate:"gt=0"`
	TimetableTTL time.Duration `yaml:"timetableTTL" validate:"gt=0"`
	// LocalSize is the number of entries kept in memory when redis is not configured
	LocalSize int `yaml:"localSize" validate:"gt=0"`
}

// RedisConfig is optional, an empty address keeps caching in process
type RedisConfig struct {
	Address  string `yaml:"address" validate:"omitempty,hostname_port"`
	Password string `yaml:"password"`
	Database int    `yaml:"database" validate:"gte=0"`
}

// ElasticsearchConfig is optional, an empty address disables search event indexing
type ElasticsearchConfig struct {
	Address  string `yaml:"address" validate:"omitempty,url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Index    string `yaml:"index" validate:"required"`
}
