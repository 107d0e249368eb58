package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	LogFile         string
	ShutdownTimeout time.Duration
	CORSOrigins     []string

	// Reference data and dashboard defaults.
	DataDir               string
	DefaultTerm           string
	DefaultCharacteristic string

	// Popularity provider configuration.
	TrendsBaseURL           string
	TrendsTimeout           time.Duration
	TrendsLanguage          string
	TrendsTZ                int
	PositionalAbbreviations bool

	// Snapshot publishing.
	KafkaEnabled       bool
	KafkaBrokers       []string
	KafkaSnapshotTopic string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	trendsTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("TRENDS_TIMEOUT", "15s"))
	if err != nil || trendsTimeout <= 0 {
		return nil, errors.New("invalid TRENDS_TIMEOUT")
	}

	trendsTZ, err := strconv.Atoi(sharedcfg.EnvOrDefault("TRENDS_TZ", "360"))
	if err != nil {
		return nil, errors.New("invalid TRENDS_TZ")
	}

	positional, err := parseBool("POSITIONAL_ABBREVIATIONS")
	if err != nil {
		return nil, err
	}
	kafkaEnabled, err := parseBool("KAFKA_ENABLED")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		LogFile:         os.Getenv("LOG_FILE"),
		ShutdownTimeout: shutdownTimeout,
		CORSOrigins:     sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("CORS_ORIGINS", "*")),

		DataDir:               sharedcfg.EnvOrDefault("DATA_DIR", "data"),
		DefaultTerm:           sharedcfg.EnvOrDefault("DEFAULT_TERM", "Climate Change"),
		DefaultCharacteristic: sharedcfg.EnvOrDefault("DEFAULT_CHARACTERISTIC", "Median Age"),

		TrendsBaseURL:           strings.TrimRight(sharedcfg.EnvOrDefault("TRENDS_BASE_URL", "https://trends.google.com/trends/api"), "/"),
		TrendsTimeout:           trendsTimeout,
		TrendsLanguage:          sharedcfg.EnvOrDefault("TRENDS_HL", "en-US"),
		TrendsTZ:                trendsTZ,
		PositionalAbbreviations: positional,

		KafkaEnabled:       kafkaEnabled,
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSnapshotTopic: sharedcfg.EnvOrDefault("KAFKA_SNAPSHOT_TOPIC", "state-popularity-snapshots"),
	}

	if strings.TrimSpace(cfg.DefaultTerm) == "" {
		return nil, errors.New("DEFAULT_TERM must not be blank")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
	}
	if cfg.KafkaEnabled && cfg.KafkaSnapshotTopic == "" {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_SNAPSHOT_TOPIC is empty")
	}

	return cfg, nil
}

func parseBool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %q", key, v)
	}
	return b, nil
}
