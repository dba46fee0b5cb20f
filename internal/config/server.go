package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	PostgresDSN string `env:"POSTGRES_DSN,required,notEmpty"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`

	SessionTTLHours int     `env:"SESSION_TTL_HOURS" envDefault:"24"`
	InitialBalance  float64 `env:"INITIAL_BALANCE" envDefault:"100"`

	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	StaticDir string `env:"STATIC_DIR" envDefault:"web/static"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
