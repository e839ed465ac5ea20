package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App      `json:"app" yaml:"app"`
	Redis    *Redis    `json:"redis" yaml:"redis"`
	Database *Database `json:"database" yaml:"database"`
	Jwt      *Jwt      `json:"jwt" yaml:"jwt"`
	Email    *Email    `json:"email" yaml:"email"`
	Server   *Server   `json:"server" yaml:"server"`
}

type Server struct {
	Http      int `json:"http" yaml:"http"`
	Websocket int `json:"websocket" yaml:"websocket"`
}

// New reads the yaml file, then lets .env and the process environment
// override secrets.
func New(filename string) *Config {
	_ = godotenv.Load()

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

// Parse decodes yaml content and fills defaults.
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}

	conf.applyEnv()
	conf.applyDefaults()

	return &conf, nil
}

func (c *Config) applyEnv() {
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Email == nil {
		c.Email = &Email{}
	}
	if c.Database == nil {
		c.Database = &Database{}
	}

	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Jwt.Secret = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		c.Email.Password = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" && c.Redis != nil {
		c.Redis.Password = v
	}
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.App.DefaultAvatar == "" {
		c.App.DefaultAvatar = DefaultAvatar
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 9000
	}
	if c.Server.Websocket == 0 {
		c.Server.Websocket = 9001
	}
	c.Jwt.applyDefaults()
	c.Database.applyDefaults()
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
