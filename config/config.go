// Application configuration: ./config/config.yaml on top of built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Kafka   KafkaConfig   `mapstructure:"kafka"`
}

type ServerConfig struct {
	AppVersion  string        `mapstructure:"app_version"`
	Port        string        `mapstructure:"port"`
	Timeout     time.Duration `mapstructure:"timeout"`
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
	Mode        string        `mapstructure:"mode"`
	MaxUploadMB int64         `mapstructure:"max_upload_mb"`
	MaxPixels   int64         `mapstructure:"max_pixels"`
}

type StorageConfig struct {
	UploadsDir   string `mapstructure:"uploads_dir"`
	ProcessedDir string `mapstructure:"processed_dir"`
	TemplatesDir string `mapstructure:"templates_dir"`
	HeartMask    string `mapstructure:"heart_mask"`
}

type KafkaConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Brokers string `mapstructure:"brokers"`
	Topic   string `mapstructure:"topic"`
}

// BrokerList splits the comma separated broker addresses.
func (k KafkaConfig) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(k.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func (s ServerConfig) MaxUploadBytes() int64 {
	return s.MaxUploadMB << 20
}

// LoadConfig reads config.yaml from the given folders (./config by default).
// A missing file is not an error: the defaults describe a working setup.
func LoadConfig(paths ...string) (*viper.Viper, error) {
	if len(paths) == 0 {
		paths = []string{"./config"}
	}

	viperInstance := viper.New()
	setDefaults(viperInstance)

	for _, p := range paths {
		viperInstance.AddConfigPath(p)
	}
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	err := viperInstance.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return nil, err
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config

	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return &c, nil
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.app_version", "1.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_upload_mb", 32)
	v.SetDefault("server.max_pixels", 89478485)

	v.SetDefault("storage.uploads_dir", "uploads")
	v.SetDefault("storage.processed_dir", "processed")
	v.SetDefault("storage.templates_dir", "templates")
	v.SetDefault("storage.heart_mask", "heart_base.png")

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", "localhost:9094")
	v.SetDefault("kafka.topic", "flag-combined")
}
