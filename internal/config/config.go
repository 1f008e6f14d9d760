package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Addr          string `env:"ADDR" envDefault:":8080"`
	DBPath        string `env:"DB_PATH" envDefault:"charts.db"`
	NotionToken   string `env:"NOTION_TOKEN,required"`
	NotionVersion string `env:"NOTION_VERSION"`
	APISecret     string `env:"API_SECRET,required"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads .env when present, then parses the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file, using process environment")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigureLogging applies the configured log level to the global logger.
func (c Config) ConfigureLogging() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
