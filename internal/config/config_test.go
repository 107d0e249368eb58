package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "Climate Change", cfg.DefaultTerm)
	assert.Equal(t, "Median Age", cfg.DefaultCharacteristic)
	assert.Equal(t, "https://trends.google.com/trends/api", cfg.TrendsBaseURL)
	assert.Equal(t, 15*time.Second, cfg.TrendsTimeout)
	assert.Equal(t, "en-US", cfg.TrendsLanguage)
	assert.Equal(t, 360, cfg.TrendsTZ)
	assert.False(t, cfg.PositionalAbbreviations)
	assert.False(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "state-popularity-snapshots", cfg.KafkaSnapshotTopic)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("LOG_FILE", "/var/log/dashboard.log")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DATA_DIR", "/srv/data")
	t.Setenv("DEFAULT_TERM", "Solar Power")
	t.Setenv("DEFAULT_CHARACTERISTIC", "Avg Temp")
	t.Setenv("TRENDS_BASE_URL", "http://localhost:9999/api/")
	t.Setenv("TRENDS_TIMEOUT", "3s")
	t.Setenv("TRENDS_HL", "en-GB")
	t.Setenv("TRENDS_TZ", "0")
	t.Setenv("POSITIONAL_ABBREVIATIONS", "true")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_SNAPSHOT_TOPIC", "snapshots")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "/var/log/dashboard.log", cfg.LogFile)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "/srv/data", cfg.DataDir)
	assert.Equal(t, "Solar Power", cfg.DefaultTerm)
	assert.Equal(t, "Avg Temp", cfg.DefaultCharacteristic)
	assert.Equal(t, "http://localhost:9999/api", cfg.TrendsBaseURL)
	assert.Equal(t, 3*time.Second, cfg.TrendsTimeout)
	assert.Equal(t, "en-GB", cfg.TrendsLanguage)
	assert.Equal(t, 0, cfg.TrendsTZ)
	assert.True(t, cfg.PositionalAbbreviations)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "snapshots", cfg.KafkaSnapshotTopic)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidTrendsTimeout(t *testing.T) {
	t.Setenv("TRENDS_TIMEOUT", "bad")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TRENDS_TIMEOUT")
}

func TestLoad_NonPositiveTrendsTimeout(t *testing.T) {
	t.Setenv("TRENDS_TIMEOUT", "0s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TRENDS_TIMEOUT")
}

func TestLoad_InvalidTrendsTZ(t *testing.T) {
	t.Setenv("TRENDS_TZ", "UTC")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TRENDS_TZ")
}

func TestLoad_InvalidPositionalFlag(t *testing.T) {
	t.Setenv("POSITIONAL_ABBREVIATIONS", "sometimes")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSITIONAL_ABBREVIATIONS")
}

func TestLoad_BlankDefaultTerm(t *testing.T) {
	t.Setenv("DEFAULT_TERM", "   ")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEFAULT_TERM")
}

func TestLoad_KafkaEnabledWithoutBrokers(t *testing.T) {
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", " , ")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_BROKERS")
}

func TestLoad_ListsTrimBlankEntries(t *testing.T) {
	t.Setenv("CORS_ORIGINS", " https://a.example ,, ,https://b.example,")
	t.Setenv("KAFKA_BROKERS", "broker1:9092 , ,broker2:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
}

func TestLoad_BlankCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ORIGINS", " , ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.CORSOrigins)
}
