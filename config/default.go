package config

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"

	"github.com/zxfonline/unirand/log"
	"github.com/zxfonline/unirand/random"
)

const (
	FORMAT_FLOAT = "float"
	FORMAT_INT24 = "int24"
	FORMAT_HEX   = "hex"
)

var _default *Config

// Config drives the unirand command.
type Config struct {
	Seed     int32  `yaml:"seed"`
	Count    int    `yaml:"count"`
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
}

func New() *Config {
	return &Config{
		Seed:     170,
		Count:    1,
		Format:   FORMAT_FLOAT,
		LogLevel: "info",
	}
}

// Parse reads YAML over the built-in defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := New()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func ReadDefault(fname string) (*Config, error) {
	data, err := ioutil.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

//初始化全局配置文件
func InitConfig(fname string) (cfg *Config, err error) {
	cfg, err = ReadDefault(fname)
	if err != nil {
		return
	}
	_default = cfg
	log.Debugf("config: loaded %s", fname)
	return
}

// Default returns the config set by InitConfig, or the built-in defaults.
func Default() *Config {
	if _default == nil {
		return New()
	}
	c := *_default
	return &c
}

func (c *Config) Validate() error {
	if _, err := random.Decompose(c.Seed); err != nil {
		return fmt.Errorf("config: seed: %w", err)
	}
	if c.Count < 0 {
		return fmt.Errorf("config: count = %d -- must not be negative", c.Count)
	}
	switch c.Format {
	case FORMAT_FLOAT, FORMAT_INT24, FORMAT_HEX:
	default:
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	return nil
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
