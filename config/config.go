package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config defines the app configuration.
type Config struct {
	Server struct {
		Port int    `yaml:"port" env:"PORT" env-default:"4000"`
		Env  string `yaml:"env" env:"ENV" env-default:"development"`
	} `yaml:"server"`
	Database struct {
		DSN          string `yaml:"dsn" env:"DSN"`
		MaxOpenConns int    `yaml:"max_open_conns" env:"MAXOPENCONNS" env-default:"25"`
		MaxIdleConns int    `yaml:"max_idle_conns" env:"MAXIDLECONNS" env-default:"25"`
		MaxIdleTime  string `yaml:"max_idle_time" env:"MAXIDLETIME" env-default:"15m"`
	} `yaml:"database"`
	Graphql struct {
		Graphiql bool `yaml:"graphiql" env:"GRAPHIQL" env-default:"true"`
		Pretty   bool `yaml:"pretty" env:"PRETTY" env-default:"false"`
	} `yaml:"graphql"`
	Limiter struct {
		RPS     float64 `yaml:"rps" env:"RPS" env-default:"2"`
		Burst   int     `yaml:"burst" env:"BURST" env-default:"4"`
		Enabled bool    `yaml:"enabled" env:"LENABLED" env-default:"true"`
	} `yaml:"limiter"`
	Cors struct {
		TrustedOrigins []string `yaml:"trusted_origins" env:"TRUSTEDORIGINS"`
	} `yaml:"cors"`
	Metrics struct {
		Enabled bool `yaml:"enabled" env:"MENABLED"`
	} `yaml:"metrics"`
	BasicAuth struct {
		Username string `yaml:"username" env:"USERNAME"`
		Password string `yaml:"password" env:"PASSWORD"`
	} `yaml:"basic_auth"`
}

// Decode reads the configuration file and decodes it into a Config struct.
// Environment variables override values from the file. If the file does not
// exist, configuration comes from environment variables and defaults alone.
func Decode() (Config, error) {
	var cfg Config
	path := os.Getenv("CONFIG")
	if path == "" {
		path = "config.yml"
	}
	err := cleanenv.ReadConfig(path, &cfg)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
		err = cleanenv.ReadEnv(&cfg)
		if err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}
