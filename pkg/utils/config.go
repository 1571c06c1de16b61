package utils

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

type Config struct {
	App AppConfig
}

type AppConfig struct {
	Name      string
	Version   string
	Transport string
	Port      string
	Debug     bool
	LogPath   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movie-ticket-booking")
	viper.SetDefault("APP_VERSION", "0.1.0")
	viper.SetDefault("TRANSPORT", TransportStdio)
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")

	// .env is optional, the server must come up bare over stdio
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:      viper.GetString("APP_NAME"),
			Version:   viper.GetString("APP_VERSION"),
			Transport: viper.GetString("TRANSPORT"),
			Port:      viper.GetString("PORT"),
			Debug:     viper.GetBool("DEBUG"),
			LogPath:   viper.GetString("LOG_PATH"),
		},
	}

	return config, nil
}
