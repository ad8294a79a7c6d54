// Package config loads the calculator service configuration
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server Server `yaml:"server"`
	Log    Log    `yaml:"log"`
}

type Server struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdownTimeout"`
}

type Log struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Server: Server{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
		Log: Log{Level: "info"},
	}
}

// LoadYAML reads a config from r. Keys missing from the document keep their defaults.
func LoadYAML(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadFile reads a YAML config from path
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadYAML(f)
}

func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return ErrInvalidAddr
	}
	if c.Server.ReadHeaderTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}
