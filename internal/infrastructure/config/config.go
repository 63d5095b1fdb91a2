package config

import (
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type ProcurementConfig struct {
	BaseURL string        `mapstructure:"baseURL"`
	APIKey  string        `mapstructure:"apiKey"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Procurement ProcurementConfig `mapstructure:"procurement"`
}

// LoadConfig reads config.yaml from path (optional) and overrides it with
// environment variables. Missing file is fine; the env vars are enough.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("procurement.baseURL", "PROCUREMENT_API_URL")
	viper.BindEnv("procurement.apiKey", "PROCUREMENT_API_KEY")
	viper.BindEnv("procurement.timeout", "PROCUREMENT_API_TIMEOUT")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("procurement.baseURL", "http://127.0.0.1:8000")
	viper.SetDefault("procurement.timeout", "15s")

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return
}
