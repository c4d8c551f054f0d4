// Package config holds configuration for the CLI client.
package config

import (
	"flag"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/dpetrov/authms/internal/flagx"
)

type Config struct {
	ServerEndpointAddr string `env:"AUTHMS_SERVER"`
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
}

// LoadConfig applies defaults, then the AUTHMS_SERVER environment variable,
// then the -a flag.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "auth server address")
	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	return cfg
}
