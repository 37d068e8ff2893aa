package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath         = "."
	defaultTimezone     = "America/St_Thomas"
	defaultFavoritesKey = "usvi-eats-favorites"
	defaultSnapshotKey  = "usvi-eats-cached-restaurants"
	defaultSnapshotTTL  = 5 * time.Minute
	defaultTokenTTL     = 12 * time.Hour
	defaultHTTPPort     = 8080
	defaultWorkerPort   = 8081
	defaultBodyLimit    = "1M"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
		// Echo body limit, e.g. "1M"
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Worker struct {
		Port int `json:"port" yaml:"port"`
	} `json:"worker" yaml:"worker"`

	// Postgres is optional. Without it the catalog and the owner data live in memory.
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis is optional. Without it favorites are kept in process and no snapshot is cached.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`

	Favorites FavoritesConfig `json:"favorites" yaml:"favorites"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	// PubSub configuration for engagement event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the connection to the key-value store
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// CatalogConfig controls where the restaurant catalog comes from and how it is evaluated
type CatalogConfig struct {
	// IANA zone used for "open now" and for "today" in special hours and analytics
	Timezone string `json:"timezone" yaml:"timezone"`

	// Optional JSON file replacing the embedded fixture catalog
	SeedPath string `json:"seedPath" yaml:"seedPath"`

	// Run gorm AutoMigrate on start (postgres only)
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// Seed the restaurants table from the fixture when it is empty (postgres only)
	SeedOnEmpty bool `json:"seedOnEmpty" yaml:"seedOnEmpty"`

	// Key and lifetime of the derived catalog snapshot kept for offline reuse
	SnapshotKey string        `json:"snapshotKey" yaml:"snapshotKey"`
	SnapshotTTL time.Duration `json:"snapshotTTL" yaml:"snapshotTTL"`
}

// FavoritesConfig defines the key-value slot holding favorite restaurant IDs
type FavoritesConfig struct {
	Key string `json:"key" yaml:"key"`
}

// AuthConfig defines owner token settings
type AuthConfig struct {
	TokenTTL time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Stats worker push endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment overrides. CATALOG_SNAPSHOTTTL -> catalog.snapshotTTL
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every optional setting that was left empty.
func (c *Config) ApplyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = defaultHTTPPort
	}
	if c.HTTP.MaxRequestBodySize == "" {
		c.HTTP.MaxRequestBodySize = defaultBodyLimit
	}
	if c.Worker.Port == 0 {
		c.Worker.Port = defaultWorkerPort
	}
	if strings.TrimSpace(c.Catalog.Timezone) == "" {
		c.Catalog.Timezone = defaultTimezone
	}
	if c.Catalog.SnapshotKey == "" {
		c.Catalog.SnapshotKey = defaultSnapshotKey
	}
	if c.Catalog.SnapshotTTL <= 0 {
		c.Catalog.SnapshotTTL = defaultSnapshotTTL
	}
	if c.Favorites.Key == "" {
		c.Favorites.Key = defaultFavoritesKey
	}
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = defaultTokenTTL
	}
}

// Location resolves the catalog time zone, falling back to UTC for an unknown name.
func (c *CatalogConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
