package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "CFOTIMES"
	ConfigName     = "cfotimes"
	DefaultSource  = "builtin:titan"
	DefaultFormat  = "html"
	DefaultAddress = "localhost:8080"
)

type ServerSettings struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	RateLimit       float64       `mapstructure:"rate_limit"`
	RateBurst       int           `mapstructure:"rate_burst"`
}

type AWSSettings struct {
	Profile string `mapstructure:"profile"`
	Region  string `mapstructure:"region"`
}

// Settings are the application settings shared by the CLI and the web server.
type Settings struct {
	Source   string         `mapstructure:"source"`
	Format   string         `mapstructure:"format"`
	Output   string         `mapstructure:"output"`
	LogLevel string         `mapstructure:"log_level"`
	Profiles string         `mapstructure:"profiles_file"`
	Server   ServerSettings `mapstructure:"server"`
	AWS      AWSSettings    `mapstructure:"aws"`
}

// New returns a viper instance with defaults and CFOTIMES_* environment
// binding, so nested keys map to e.g. CFOTIMES_SERVER_ADDR.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("source", DefaultSource)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("output", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("profiles_file", "")
	v.SetDefault("server.addr", DefaultAddress)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.rate_limit", 10.0)
	v.SetDefault("server.rate_burst", 20)
	v.SetDefault("aws.profile", "")
	v.SetDefault("aws.region", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path when given, otherwise looks for cfotimes.yaml in the working
// directory and the user config directory. A missing file is not an error
// unless path was set explicitly.
func Load(v *viper.Viper, path string) (*Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/cfotimes")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Settings
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &cfg, nil
}
