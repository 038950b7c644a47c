package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Addr string
}

type AppConfig struct {
	ServiceName string
	LogLevel    string
	HTTP        HTTPConfig
}

// NewEnv returns a viper instance bound to the process environment.
// Keys are looked up by their env name, e.g. v.GetString("HTTP_ADDR").
func NewEnv() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

func Load() (AppConfig, error) {
	return LoadFrom(NewEnv())
}

func LoadFrom(v *viper.Viper) (AppConfig, error) {
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := AppConfig{
		ServiceName: strings.TrimSpace(v.GetString("SERVICE_NAME")),
		LogLevel:    strings.TrimSpace(v.GetString("LOG_LEVEL")),
		HTTP: HTTPConfig{
			Addr: strings.TrimSpace(v.GetString("HTTP_ADDR")),
		},
	}
	if cfg.ServiceName == "" {
		return AppConfig{}, errors.New("SERVICE_NAME is required")
	}
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}
