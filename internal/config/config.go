// Package config loads yrpdecode.cfg.json through viper and exposes typed
// views of the sections other packages consume.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const FileName = "yrpdecode.cfg.json"

// DecodeConfig controls the decode pipeline.
type DecodeConfig struct {
	LegacyResponses bool `json:"legacyResponses" mapstructure:"legacyResponses"`
	Track           bool `json:"track" mapstructure:"track"`
	Trace           bool `json:"trace" mapstructure:"trace"`
	Workers         int  `json:"workers" mapstructure:"workers"`
}

// MemoryConfig holds file export settings of the memory backend.
type MemoryConfig struct {
	OutputDir   string `json:"outputDir" mapstructure:"outputDir"`
	Format      string `json:"format" mapstructure:"format"`
	Compression string `json:"compression" mapstructure:"compression"`
}

type SQLiteConfig struct {
	DumpPath string `json:"dumpPath" mapstructure:"dumpPath"`
	// DumpInterval enables periodic dumps while decoding; zero dumps on close only.
	DumpInterval time.Duration `json:"dumpInterval" mapstructure:"dumpInterval"`
}

type WebSocketConfig struct {
	URL     string        `json:"url" mapstructure:"url"`
	Secret  string        `json:"secret" mapstructure:"secret"`
	Timeout time.Duration `json:"timeout" mapstructure:"timeout"`
}

type DBConfig struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     string `json:"port" mapstructure:"port"`
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"password" mapstructure:"password"`
	Database string `json:"database" mapstructure:"database"`
	SSLMode  string `json:"sslmode" mapstructure:"sslmode"`
}

// StorageConfig selects and configures the replay storage backend.
type StorageConfig struct {
	Type      string
	Memory    MemoryConfig
	SQLite    SQLiteConfig
	WebSocket WebSocketConfig
	DB        DBConfig
}

type OTelConfig struct {
	Enabled      bool
	ServiceName  string
	BatchTimeout time.Duration
	Endpoint     string
	Insecure     bool
}

type InfluxConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Protocol string
	Token    string
	Org      string
	Bucket   string
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./logs")

	viper.SetDefault("decode.legacyResponses", false)
	viper.SetDefault("decode.track", true)
	viper.SetDefault("decode.trace", false)
	viper.SetDefault("decode.workers", 4)

	viper.SetDefault("storage.type", "memory")
	viper.SetDefault("storage.memory.outputDir", "./replays")
	viper.SetDefault("storage.memory.format", "json")
	viper.SetDefault("storage.memory.compression", "gzip")
	viper.SetDefault("storage.sqlite.dumpPath", "./replays/replays.db")
	viper.SetDefault("storage.sqlite.dumpInterval", "0s")
	viper.SetDefault("storage.websocket.url", "ws://localhost:5000/ingest")
	viper.SetDefault("storage.websocket.secret", "")
	viper.SetDefault("storage.websocket.timeout", "10s")

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "yrpdecode")
	viper.SetDefault("db.sslmode", "disable")

	viper.SetDefault("influx.enabled", false)
	viper.SetDefault("influx.host", "localhost")
	viper.SetDefault("influx.port", "8086")
	viper.SetDefault("influx.protocol", "http")
	viper.SetDefault("influx.token", "supersecrettoken")
	viper.SetDefault("influx.org", "yrpdecode")
	viper.SetDefault("influx.bucket", "decode")

	viper.SetDefault("monitor.interval", "2s")

	viper.SetDefault("graylog.enabled", false)
	viper.SetDefault("graylog.address", "localhost:12201")

	viper.SetDefault("otel.enabled", false)
	viper.SetDefault("otel.serviceName", "yrpdecode")
	viper.SetDefault("otel.batchTimeout", "5s")
	viper.SetDefault("otel.endpoint", "")
	viper.SetDefault("otel.insecure", true)
}

// Load reads configuration from the JSON file in configDir and sets default
// values.
func Load(configDir string) error {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// LoadDefaults sets the defaults without a config file.
func LoadDefaults() {
	setDefaults()
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetDecodeConfig() DecodeConfig {
	return DecodeConfig{
		LegacyResponses: viper.GetBool("decode.legacyResponses"),
		Track:           viper.GetBool("decode.track"),
		Trace:           viper.GetBool("decode.trace"),
		Workers:         viper.GetInt("decode.workers"),
	}
}

func GetStorageConfig() StorageConfig {
	return StorageConfig{
		Type: viper.GetString("storage.type"),
		Memory: MemoryConfig{
			OutputDir:   viper.GetString("storage.memory.outputDir"),
			Format:      viper.GetString("storage.memory.format"),
			Compression: viper.GetString("storage.memory.compression"),
		},
		SQLite: SQLiteConfig{
			DumpPath:     viper.GetString("storage.sqlite.dumpPath"),
			DumpInterval: viper.GetDuration("storage.sqlite.dumpInterval"),
		},
		WebSocket: WebSocketConfig{
			URL:     viper.GetString("storage.websocket.url"),
			Secret:  viper.GetString("storage.websocket.secret"),
			Timeout: viper.GetDuration("storage.websocket.timeout"),
		},
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetString("db.port"),
			Username: viper.GetString("db.username"),
			Password: viper.GetString("db.password"),
			Database: viper.GetString("db.database"),
			SSLMode:  viper.GetString("db.sslmode"),
		},
	}
}

func GetOTelConfig() OTelConfig {
	return OTelConfig{
		Enabled:      viper.GetBool("otel.enabled"),
		ServiceName:  viper.GetString("otel.serviceName"),
		BatchTimeout: viper.GetDuration("otel.batchTimeout"),
		Endpoint:     viper.GetString("otel.endpoint"),
		Insecure:     viper.GetBool("otel.insecure"),
	}
}

func GetInfluxConfig() InfluxConfig {
	return InfluxConfig{
		Enabled:  viper.GetBool("influx.enabled"),
		Host:     viper.GetString("influx.host"),
		Port:     viper.GetString("influx.port"),
		Protocol: viper.GetString("influx.protocol"),
		Token:    viper.GetString("influx.token"),
		Org:      viper.GetString("influx.org"),
		Bucket:   viper.GetString("influx.bucket"),
	}
}
