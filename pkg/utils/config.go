package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Identity IdentityConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type StorageConfig struct {
	DataPath string
}

type IdentityConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

type BookingConfig struct {
	SweepSeconds int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DATA_PATH", "data/")
	viper.SetDefault("IDENTITY_TIMEOUT_SECONDS", 5)
	viper.SetDefault("SWEEP_SECONDS", 30)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Storage: StorageConfig{
			DataPath: viper.GetString("DATA_PATH"),
		},
		Identity: IdentityConfig{
			BaseURL:        viper.GetString("IDENTITY_URL"),
			TimeoutSeconds: viper.GetInt("IDENTITY_TIMEOUT_SECONDS"),
		},
		Booking: BookingConfig{
			SweepSeconds: viper.GetInt("SWEEP_SECONDS"),
		},
	}

	return config, nil
}
