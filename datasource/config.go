package datasource

import (
	"encoding/json"
	"os"
)

// Config represents the application configuration
type Config struct {
	OpenWeatherMap struct {
		APIKey string `json:"apiKey"`
	} `json:"openWeatherMap"`

	// Default city shown when none is given on the command line
	DefaultCity string `json:"defaultCity"`

	// Path of the persisted JSON document
	DataFile string `json:"dataFile"`
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	if config.DataFile == "" {
		config.DataFile = "weather_data.json"
	}

	return &config, nil
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	config := &Config{}
	config.DataFile = "weather_data.json"
	return config
}
