package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Env is the runtime environment the process runs in.
type Env string

const (
	EnvDevelopment Env = "development"
	EnvTest        Env = "test"
	EnvProduction  Env = "production"
)

// IsProduction reports whether the process runs as the production variant.
// Every other value, including an absent or unrecognized one, behaves as
// non-production.
func (e Env) IsProduction() bool { return e == EnvProduction }

type Config struct {
	Env   Env  `env:"APP_ENV" envDefault:"development"`
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Database struct {
		// URL is the datasource connection string. file: URIs and :memory:
		// select the SQLite driver, anything else is passed to Postgres.
		URL string `env:"DATABASE_URL" envDefault:"file:userboard.db"`
	}
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// Missing .env is fine, in production the variables are set directly.
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
