package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App      `json:"app" yaml:"app"`
	Server   *Server   `json:"server" yaml:"server"`
	Database *Database `json:"database" yaml:"database"`
	Redis    *Redis    `json:"redis" yaml:"redis"`
	Jwt      *Jwt      `json:"jwt" yaml:"jwt"`
	Auth     *Auth     `json:"auth" yaml:"auth"`
	Log      *Log      `json:"log" yaml:"log"`
	Seed     *Seed     `json:"seed" yaml:"seed"`
}

type Server struct {
	Http    int  `json:"http" yaml:"http"`
	Metrics bool `json:"metrics" yaml:"metrics"`
}

// New reads a yaml file. ${VAR} references are expanded from the environment first.
func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("parse %s: %v", filename, err))
	}
	return conf
}

func Parse(content []byte) (*Config, error) {
	conf := Default()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(content))), conf); err != nil {
		return nil, err
	}
	return conf, nil
}

// Default returns the settings used for any section missing from the file.
func Default() *Config {
	return &Config{
		App:      &App{Env: "dev"},
		Server:   &Server{Http: 8000},
		Database: &Database{Driver: DriverSQLite, Name: "notes.db"},
		Redis:    &Redis{Address: "127.0.0.1", Port: 6379},
		Jwt:      &Jwt{AccessTTL: 3600, RefreshTTL: 86400},
		Auth:     &Auth{BcryptCost: 12},
		Log:      &Log{Level: "info", MaxSize: 100, MaxBackups: 7, MaxAge: 30},
		Seed:     &Seed{},
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
